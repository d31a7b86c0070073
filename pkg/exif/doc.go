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
Package exif reads and writes the Exif metadata of JPEG files.

Load decodes the TIFF structure of an Exif APP1 segment into a Set of
five directories (Zeroth, Exif, GPS, Interop and First) and an optional
thumbnail. Dump serializes a Set back into an "Exif\0\0" blob, which
Insert splices into a JPEG stream. Remove strips the Exif segments of a
JPEG stream.

Dump always produces the same big-endian layout: the Zeroth IFD at
offset 8, followed by the Exif, GPS, Interop and First IFDs, in that
order, each followed by its out-of-line values. Loading the output of
Dump yields the same tag values, so a Set survives any number of
Load/Dump round trips.

The functions of this package hold no state and are safe for concurrent
use on distinct buffers.
*/
package exif // import "quickexif.org/pkg/exif"
