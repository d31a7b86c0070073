/*
Copyright 2026 The Perkeep Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
The qexif tool reads and edits the Exif metadata of JPEG files.

Usage:

	qexif [globalopts] <mode> [commandopts] [commandargs]

Modes:

	copy: Copy the Exif metadata of one JPEG file into others.
	set: Edit descriptive Exif fields of JPEG files.
	show: Print the Exif metadata of JPEG files.
	stamp: Write the configured artist and copyright into JPEG files.
	strip: Remove the Exif metadata of JPEG files.
	thumb: Extract the embedded thumbnail of a JPEG file.

Examples:

	qexif show -json photo.jpg
	qexif set -date 2025-09-06T07:56 -lat "37°46'29.64\"N" -long "122.4194 W" photo.jpg
	qexif set -clear gpslatitude,gpslongitude *.jpg
	qexif stamp -artist "Jane Doe" *.jpg
	qexif strip -backup *.jpg
	qexif copy original.jpg edited.jpg
	qexif thumb -o thumb.jpg photo.jpg

For mode-specific help:

	qexif <mode> -help

Global options:

	-help=false: print usage
	-legal=false: show licenses
	-verbose=false: extra debug logging
	-version=false: show version

Files are rewritten in place: the new contents are written to a
temporary file which replaces the original once complete. The
configuration file, $XDG_CONFIG_HOME/quickexif/config.json by default,
sets the number of files rewritten at once ("workers"), whether to keep
backups ("backup"), the values written by stamp ("artist" and
"copyright") and "verbose".
*/
package main
