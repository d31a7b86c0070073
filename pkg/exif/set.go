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
	"reflect"
	"sort"

	"quickexif.org/pkg/exif/tags"
)

// Rational is an unsigned TIFF fraction.
type Rational struct {
	Num, Den uint32
}

func (r Rational) String() string { return fmt.Sprintf("%d/%d", r.Num, r.Den) }

// Float returns r as a float64, or 0 if its denominator is 0.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// SRational is a signed TIFF fraction.
type SRational struct {
	Num, Den int32
}

func (r SRational) String() string { return fmt.Sprintf("%d/%d", r.Num, r.Den) }

// Float returns r as a float64, or 0 if its denominator is 0.
func (r SRational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Presence is the state of a Directory.
type Presence int

const (
	Absent    Presence = iota // never read or set
	Empty                     // present, but without any content tag
	Populated                 // holds at least one content tag
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	}
	return fmt.Sprintf("Presence(%d)", int(p))
}

// bookkeeping reports whether id in ifd is a pointer the writer
// recomputes, rather than content.
func bookkeeping(ifd tags.IFD, id tags.ID) bool {
	switch ifd {
	case tags.Zeroth:
		return id == tags.ExifPointer || id == tags.GPSPointer
	case tags.Exif:
		return id == tags.InteropPointer
	case tags.First:
		return id == tags.ThumbnailOffset || id == tags.ThumbnailLength
	}
	return false
}

// IsBookkeeping reports whether id is one of the offset tags of ifd
// that Dump computes itself. Values stored under such tags are
// ignored when writing.
func IsBookkeeping(ifd tags.IFD, id tags.ID) bool { return bookkeeping(ifd, id) }

// A Directory maps tag ids to values for one IFD.
//
// Values are held in their Go form:
//
//	Byte       uint8 or []byte
//	Ascii      string
//	Short      uint16 or []uint16
//	Long       uint32 or []uint32
//	SLong      int32 or []int32
//	Rational   Rational or []Rational
//	SRational  SRational or []SRational
//	Undefined  []byte
//
// When writing, a string is also accepted for Undefined, []byte for
// Ascii, and any integer shape whose elements are in range for the
// tag's integer type.
type Directory struct {
	ifd     tags.IFD
	present bool
	m       map[tags.ID]any
}

func newDirectory(ifd tags.IFD) *Directory {
	return &Directory{ifd: ifd, m: make(map[tags.ID]any)}
}

// IFD returns which directory d is.
func (d *Directory) IFD() tags.IFD { return d.ifd }

// Get returns the value of tag id.
func (d *Directory) Get(id tags.ID) (any, bool) {
	v, ok := d.m[id]
	return v, ok
}

// Set sets the value of tag id, and marks d as present.
func (d *Directory) Set(id tags.ID, v any) {
	d.m[id] = v
	d.present = true
}

// Delete removes tag id. It does not change whether d is present.
func (d *Directory) Delete(id tags.ID) { delete(d.m, id) }

// Has reports whether d holds tag id.
func (d *Directory) Has(id tags.ID) bool {
	_, ok := d.m[id]
	return ok
}

// Len returns the number of tags in d, bookkeeping tags included.
func (d *Directory) Len() int { return len(d.m) }

// IDs returns the tag ids of d in ascending order.
func (d *Directory) IDs() []tags.ID {
	ids := make([]tags.ID, 0, len(d.m))
	for id := range d.m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Clear removes every tag and marks d as absent.
func (d *Directory) Clear() {
	clear(d.m)
	d.present = false
}

// MarkPresent marks d as present without adding any tag.
func (d *Directory) MarkPresent() { d.present = true }

// Presence reports whether d is absent, empty or populated.
// Bookkeeping tags don't count as content.
func (d *Directory) Presence() Presence {
	if !d.present {
		return Absent
	}
	if d.contentLen() > 0 {
		return Populated
	}
	return Empty
}

func (d *Directory) contentLen() int {
	n := 0
	for id := range d.m {
		if !bookkeeping(d.ifd, id) {
			n++
		}
	}
	return n
}

// A Set is the five directories of an Exif structure and its optional
// thumbnail.
//
// A Set is not safe for concurrent use.
type Set struct {
	dirs [5]*Directory

	// Thumbnail is the JPEG thumbnail referenced by the First IFD.
	// It is nil when there is none.
	Thumbnail []byte
}

// NewSet returns a Set with all directories absent.
func NewSet() *Set {
	s := new(Set)
	for _, ifd := range tags.IFDs {
		s.dirs[ifd] = newDirectory(ifd)
	}
	return s
}

// Dir returns the directory ifd of s.
func (s *Set) Dir(ifd tags.IFD) *Directory {
	if ifd < 0 || int(ifd) >= len(s.dirs) {
		panic(fmt.Sprintf("exif: invalid IFD %d", int(ifd)))
	}
	return s.dirs[ifd]
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	c := NewSet()
	for _, ifd := range tags.IFDs {
		src, dst := s.dirs[ifd], c.dirs[ifd]
		dst.present = src.present
		for id, v := range src.m {
			dst.m[id] = cloneValue(v)
		}
	}
	if s.Thumbnail != nil {
		c.Thumbnail = bytes.Clone(s.Thumbnail)
	}
	return c
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case []byte:
		return bytes.Clone(v)
	case []uint16:
		return append([]uint16{}, v...)
	case []uint32:
		return append([]uint32{}, v...)
	case []int32:
		return append([]int32{}, v...)
	case []int:
		return append([]int{}, v...)
	case []Rational:
		return append([]Rational{}, v...)
	case []SRational:
		return append([]SRational{}, v...)
	}
	return v
}

// Equal reports whether a and b hold the same content tags with the
// same values, and the same thumbnail. Bookkeeping tags and directory
// presence are ignored.
func Equal(a, b *Set) bool {
	if !bytes.Equal(a.Thumbnail, b.Thumbnail) || (a.Thumbnail == nil) != (b.Thumbnail == nil) {
		return false
	}
	for _, ifd := range tags.IFDs {
		da, db := a.dirs[ifd], b.dirs[ifd]
		if da.contentLen() != db.contentLen() {
			return false
		}
		for id, va := range da.m {
			if bookkeeping(ifd, id) {
				continue
			}
			vb, ok := db.m[id]
			if !ok || !reflect.DeepEqual(va, vb) {
				return false
			}
		}
	}
	return true
}
