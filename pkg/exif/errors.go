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
	"errors"
	"fmt"

	"quickexif.org/pkg/exif/tags"
	"quickexif.org/pkg/jpegseg"
)

var (
	// ErrFormat is returned when the input is none of a JPEG stream, a
	// JPEG data URI, a TIFF buffer or an "Exif\0\0" blob.
	ErrFormat = errors.New("exif: data is neither JPEG, TIFF nor Exif")

	// ErrMalformed is returned when a TIFF structure points outside of
	// its buffer, or is otherwise structurally broken.
	ErrMalformed = errors.New("exif: malformed TIFF data")

	// ErrInvalidValue is returned by Dump for a tag value whose Go type
	// or range doesn't fit the tag's TIFF type, or for a tag that is not
	// in the dictionary.
	ErrInvalidValue = errors.New("exif: invalid tag value")

	// ErrMalformedSegment is returned when the JPEG segment walk runs
	// past the end of the input.
	ErrMalformedSegment = jpegseg.ErrMalformedSegment
)

// UnsupportedTypeError is returned for a TIFF field type the codec
// can't decode or encode.
type UnsupportedTypeError struct {
	IFD  tags.IFD
	Tag  tags.ID
	Type tags.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("exif: %v tag %s has unsupported type %v", e.IFD, tags.Name(e.IFD, e.Tag), e.Type)
}

// MaxThumbnailSize is the largest thumbnail, after APPn stripping,
// that Dump accepts.
const MaxThumbnailSize = 64000

// MaxSegmentSize is the largest APP1 segment, length field included,
// that fits in a JPEG stream.
const MaxSegmentSize = 0xFFFF

// SizeLimitError is returned when a thumbnail or a new APP1 segment
// is too large.
type SizeLimitError struct {
	What  string // "thumbnail" or "APP1 segment"
	Size  int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("exif: %s is too large: %d bytes, max %d", e.What, e.Size, e.Limit)
}
