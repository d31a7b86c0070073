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

package exif

import (
	"bytes"
	"fmt"

	"quickexif.org/pkg/jpegseg"
)

// Insert returns jpeg with its Exif segment replaced by exif, an
// "Exif\0\0" blob as returned by Dump. If jpeg has no Exif segment,
// one is added right after the start of image. If jpeg has several,
// the first is replaced and the others are dropped.
//
// jpeg may be a base64 data URI, in which case the result is one too.
func Insert(exif, jpeg []byte) ([]byte, error) {
	if !bytes.HasPrefix(exif, jpegseg.ExifHeader) {
		return nil, fmt.Errorf("%w: missing Exif signature", ErrFormat)
	}
	if size := len(exif) + 2; size > MaxSegmentSize {
		return nil, &SizeLimitError{What: "APP1 segment", Size: size, Limit: MaxSegmentSize}
	}
	raw, isURI, err := jpegInput(jpeg)
	if err != nil {
		return nil, err
	}
	segs, err := jpegseg.Split(raw)
	if err != nil {
		return nil, err
	}
	app1, err := jpegseg.NewSegment(jpegseg.APP1, exif)
	if err != nil {
		return nil, err
	}
	out := jpegseg.Merge(segs, app1)
	if isURI {
		return encodeDataURI(out), nil
	}
	return out, nil
}

// InsertString is like Insert, for a JPEG held in a string.
func InsertString(exif []byte, jpeg string) (string, error) {
	out, err := Insert(exif, []byte(jpeg))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Remove returns jpeg without any of its Exif segments. A JPEG without
// Exif is returned unchanged.
//
// jpeg may be a base64 data URI, in which case the result is one too.
func Remove(jpeg []byte) ([]byte, error) {
	raw, isURI, err := jpegInput(jpeg)
	if err != nil {
		return nil, err
	}
	segs, err := jpegseg.Split(raw)
	if err != nil {
		return nil, err
	}
	kept := jpegseg.Strip(segs)
	if len(kept) == len(segs) {
		return bytes.Clone(jpeg), nil
	}
	out := jpegseg.Join(kept)
	if isURI {
		return encodeDataURI(out), nil
	}
	return out, nil
}

// RemoveString is like Remove, for a JPEG held in a string.
func RemoveString(jpeg string) (string, error) {
	out, err := Remove([]byte(jpeg))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Thumbnail returns the thumbnail embedded in the Exif data of jpeg,
// or nil if there is none.
func Thumbnail(jpeg []byte) ([]byte, error) {
	s, err := Load(jpeg)
	if err != nil {
		return nil, err
	}
	return s.Thumbnail, nil
}
