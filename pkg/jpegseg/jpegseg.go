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

// Package jpegseg splits an in-memory JPEG stream into its marker
// segments, and locates, replaces or removes the APP1 segment that
// carries Exif metadata.
//
// Segment data isn't decoded. Everything from the start-of-scan marker
// to the end of the input is kept as one opaque segment, so joining the
// segments of a split reproduces the input exactly.
package jpegseg // import "quickexif.org/pkg/jpegseg"

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/garyhouston/jpegsegs"
)

// Markers this package acts on. The full marker set and its names
// come from jpegsegs.
const (
	SOF0 = jpegsegs.SOF0
	RST0 = jpegsegs.RST0
	SOI  = jpegsegs.SOI
	EOI  = jpegsegs.EOI
	SOS  = jpegsegs.SOS
	DQT  = jpegsegs.DQT
	APP0 = jpegsegs.APP0
	APP1 = jpegsegs.APP0 + 1
	COM  = jpegsegs.COM
)

// Marker is the second byte of a JPEG marker.
type Marker uint8

func (m Marker) String() string {
	if name := jpegsegs.Marker(m).Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%#02x", uint8(m))
}

// IsApp reports whether m is one of the APP0-APP15 markers.
func (m Marker) IsApp() bool {
	return m >= APP0 && m <= APP0+0xF
}

// ErrMalformedSegment is returned when the segment walk runs past the
// end of the input before reaching the start-of-scan marker.
var ErrMalformedSegment = errors.New("jpegseg: malformed JPEG segment")

// ErrNotJPEG is returned when the input doesn't start with an SOI marker.
var ErrNotJPEG = errors.New("jpegseg: missing SOI marker")

// ExifHeader is the signature at the start of an Exif APP1 payload.
var ExifHeader = []byte("Exif\x00\x00")

// HeaderSize is the size of the SOI marker that starts a JPEG stream.
const HeaderSize = jpegsegs.HeaderSize

// IsJPEG reports whether buf starts with an SOI marker.
func IsJPEG(buf []byte) bool {
	return len(buf) >= HeaderSize && jpegsegs.IsJPEGHeader(buf)
}

// Segment is a marker and its segment data. Raw holds the complete
// bytes of the segment, starting with the 0xFF marker prefix, and
// including the length field for markers that have one. The SOS
// segment also holds the entropy-coded data and everything after it.
type Segment struct {
	Marker Marker
	Raw    []byte
}

// Payload returns the segment data following the marker and length
// field. It is empty for SOI.
func (s Segment) Payload() []byte {
	if s.Marker == SOI || len(s.Raw) < 4 {
		return nil
	}
	return s.Raw[4:]
}

// IsExif reports whether s is an APP1 segment holding Exif data.
func (s Segment) IsExif() bool {
	return s.Marker == APP1 && len(s.Raw) >= 10 && bytes.Equal(s.Raw[4:10], ExifHeader)
}

// Split walks buf from the SOI marker to the SOS marker and returns its
// segments in order. The returned segments alias buf.
func Split(buf []byte) ([]Segment, error) {
	if !IsJPEG(buf) {
		return nil, ErrNotJPEG
	}
	segs := make([]Segment, 0, 16)
	segs = append(segs, Segment{Marker: SOI, Raw: buf[:HeaderSize]})
	pos := HeaderSize
	for {
		if pos+2 > len(buf) {
			return nil, fmt.Errorf("%w: marker at %d past end of input (%d bytes)", ErrMalformedSegment, pos, len(buf))
		}
		if buf[pos] != 0xFF {
			return nil, fmt.Errorf("%w: 0xFF expected at %d, got %#02x", ErrMalformedSegment, pos, buf[pos])
		}
		marker := Marker(buf[pos+1])
		if marker == SOS {
			segs = append(segs, Segment{Marker: SOS, Raw: buf[pos:]})
			return segs, nil
		}
		if pos+4 > len(buf) {
			return nil, fmt.Errorf("%w: %v length at %d past end of input", ErrMalformedSegment, marker, pos)
		}
		length := int(binary.BigEndian.Uint16(buf[pos+2:]))
		if length < 2 {
			return nil, fmt.Errorf("%w: %v at %d has invalid length %d", ErrMalformedSegment, marker, pos, length)
		}
		end := pos + 2 + length
		if end > len(buf) {
			return nil, fmt.Errorf("%w: %v at %d extends past end of input", ErrMalformedSegment, marker, pos)
		}
		segs = append(segs, Segment{Marker: marker, Raw: buf[pos:end]})
		pos = end
	}
}

// FindExif returns the first Exif APP1 segment of segs.
func FindExif(segs []Segment) (Segment, bool) {
	for _, s := range segs {
		if s.IsExif() {
			return s, true
		}
	}
	return Segment{}, false
}

// Strip returns segs without any of its Exif APP1 segments.
func Strip(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.IsExif() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// StripApp returns segs without any APPn segment.
func StripApp(segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.Marker.IsApp() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Merge replaces the first Exif APP1 segment of segs with exif, drops
// any further Exif segments, and returns the joined stream. If segs
// has no Exif segment, exif is placed right after SOI.
func Merge(segs []Segment, exif Segment) []byte {
	out := make([]Segment, 0, len(segs)+1)
	replaced := false
	for _, s := range segs {
		if !s.IsExif() {
			out = append(out, s)
			continue
		}
		if replaced {
			continue
		}
		out = append(out, exif)
		replaced = true
	}
	if !replaced {
		out = append(out[:1], append([]Segment{exif}, out[1:]...)...)
	}
	return Join(out)
}

// Join concatenates the raw bytes of segs into a new buffer.
func Join(segs []Segment) []byte {
	n := 0
	for _, s := range segs {
		n += len(s.Raw)
	}
	buf := make([]byte, 0, n)
	for _, s := range segs {
		buf = append(buf, s.Raw...)
	}
	return buf
}

// MaxPayload is the largest payload a length-prefixed segment can hold.
const MaxPayload = 0xFFFF - 2

// NewSegment builds a length-prefixed segment with the given payload.
func NewSegment(m Marker, payload []byte) (Segment, error) {
	if len(payload) > MaxPayload {
		return Segment{}, fmt.Errorf("jpegseg: %v payload is too long (%d), max %d", m, len(payload), MaxPayload)
	}
	raw := make([]byte, 0, 4+len(payload))
	raw = append(raw, 0xFF, byte(m))
	raw = binary.BigEndian.AppendUint16(raw, uint16(len(payload)+2))
	raw = append(raw, payload...)
	return Segment{Marker: m, Raw: raw}, nil
}
