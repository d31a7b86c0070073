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
	"fmt"
	"sort"

	"quickexif.org/pkg/exif/tags"
	"quickexif.org/pkg/jpegseg"
)

// header is the Exif signature followed by a big-endian TIFF header
// whose Zeroth IFD starts at offset 8.
var header = []byte("Exif\x00\x00MM\x00\x2a\x00\x00\x00\x08")

const tiffHeaderLen = 8

// A field is one encoded IFD entry.
type field struct {
	id    tags.ID
	typ   tags.Type
	count uint32
	data  []byte // encoded value, without padding

	// ptr, if set, computes the value of a Long pointer entry once
	// every directory has been laid out.
	ptr func() uint32
}

func (f *field) inline() bool {
	return f.ptr != nil || (f.typ != tags.Rational && f.typ != tags.SRational && len(f.data) <= 4)
}

// dirLayout is the serialized shape of one IFD.
type dirLayout struct {
	ifd    tags.IFD
	fields []*field // ascending by id
	start  uint32   // TIFF offset of the entry count
	values int      // size of the out-of-line region, padding included
}

// entriesLen is the size of the entry count, the entries, and the
// next-IFD field when ifd has one.
func (l *dirLayout) entriesLen() int {
	n := 2 + 12*len(l.fields)
	if l.ifd == tags.Zeroth || l.ifd == tags.First {
		n += 4
	}
	return n
}

func (l *dirLayout) size() int { return l.entriesLen() + l.values }

// encodeDir encodes the content tags of dir. Bookkeeping tags are left
// out; the caller adds the ones the new layout needs.
func encodeDir(dir *Directory) (*dirLayout, error) {
	l := &dirLayout{ifd: dir.IFD()}
	for _, id := range dir.IDs() {
		if bookkeeping(l.ifd, id) {
			continue
		}
		info, ok := tags.Lookup(l.ifd, id)
		if !ok {
			return nil, fmt.Errorf("%w: %v tag %#04x is not in the dictionary", ErrInvalidValue, l.ifd, uint16(id))
		}
		v, _ := dir.Get(id)
		count, data, err := encodeValue(info.Type, v)
		if err != nil {
			if ute, ok := err.(*UnsupportedTypeError); ok {
				ute.IFD, ute.Tag = l.ifd, id
				return nil, ute
			}
			return nil, fmt.Errorf("%v tag %s: %w", l.ifd, info.Name, err)
		}
		f := &field{id: id, typ: info.Type, count: count, data: data}
		if !f.inline() {
			l.values += len(data) + len(data)%2
		}
		l.fields = append(l.fields, f)
	}
	return l, nil
}

func (l *dirLayout) addPointer(id tags.ID, ptr func() uint32) {
	l.fields = append(l.fields, &field{id: id, typ: tags.Long, count: 1, ptr: ptr})
	sort.Slice(l.fields, func(i, j int) bool { return l.fields[i].id < l.fields[j].id })
}

// appendTo appends the entries and values of l to buf. next is the
// value of the next-IFD field, for the directories that have one.
func (l *dirLayout) appendTo(buf []byte, next uint32) []byte {
	buf = be.AppendUint16(buf, uint16(len(l.fields)))
	valuesAt := l.start + uint32(l.entriesLen())
	var values []byte
	for _, f := range l.fields {
		buf = be.AppendUint16(buf, uint16(f.id))
		buf = be.AppendUint16(buf, uint16(f.typ))
		buf = be.AppendUint32(buf, f.count)
		switch {
		case f.ptr != nil:
			buf = be.AppendUint32(buf, f.ptr())
		case f.inline():
			var v [4]byte
			copy(v[:], f.data)
			buf = append(buf, v[:]...)
		default:
			buf = be.AppendUint32(buf, valuesAt+uint32(len(values)))
			values = append(values, f.data...)
			if len(values)%2 != 0 {
				values = append(values, 0)
			}
		}
	}
	if l.ifd == tags.Zeroth || l.ifd == tags.First {
		buf = be.AppendUint32(buf, next)
	}
	return append(buf, values...)
}

// Dump serializes s as an "Exif\0\0" blob holding a big-endian TIFF
// structure, ready for Insert.
//
// Directories are written in the order Zeroth, Exif, GPS, Interop,
// First, each with its entries in ascending tag order. The pointer
// tags to the Exif, GPS and Interop IFDs and to the thumbnail are
// computed from the content of s, and any stale values s holds for
// them are ignored. Only the Zeroth and First IFDs end with a
// next-IFD offset.
//
// Dump never modifies s, and returns no output on error.
func Dump(s *Set) ([]byte, error) {
	var layouts [5]*dirLayout
	for _, ifd := range tags.IFDs {
		l, err := encodeDir(s.Dir(ifd))
		if err != nil {
			return nil, err
		}
		layouts[ifd] = l
	}
	zeroth := layouts[tags.Zeroth]
	exif := layouts[tags.Exif]
	gps := layouts[tags.GPS]
	interop := layouts[tags.Interop]
	first := layouts[tags.First]

	interopIs := len(interop.fields) > 0
	exifIs := len(exif.fields) > 0 || interopIs
	gpsIs := len(gps.fields) > 0
	thumbIs := s.Thumbnail != nil
	firstIs := len(first.fields) > 0 || thumbIs

	var thumb []byte
	if thumbIs {
		segs, err := jpegseg.Split(s.Thumbnail)
		if err != nil {
			return nil, fmt.Errorf("exif: thumbnail: %w", err)
		}
		thumb = jpegseg.Join(jpegseg.StripApp(segs))
		if len(thumb) > MaxThumbnailSize {
			return nil, &SizeLimitError{What: "thumbnail", Size: len(thumb), Limit: MaxThumbnailSize}
		}
	}

	if exifIs {
		zeroth.addPointer(tags.ExifPointer, func() uint32 { return exif.start })
	}
	if gpsIs {
		zeroth.addPointer(tags.GPSPointer, func() uint32 { return gps.start })
	}
	if interopIs {
		exif.addPointer(tags.InteropPointer, func() uint32 { return interop.start })
	}
	if thumbIs {
		first.addPointer(tags.ThumbnailOffset, func() uint32 { return first.start + uint32(first.size()) })
		n := uint32(len(thumb))
		first.addPointer(tags.ThumbnailLength, func() uint32 { return n })
	}

	order := []*dirLayout{zeroth}
	if exifIs {
		order = append(order, exif)
	}
	if gpsIs {
		order = append(order, gps)
	}
	if interopIs {
		order = append(order, interop)
	}
	if firstIs {
		order = append(order, first)
	}
	off := tiffHeaderLen
	for _, l := range order {
		l.start = uint32(off)
		off += l.size()
	}

	buf := make([]byte, 0, len(header)-tiffHeaderLen+off+len(thumb))
	buf = append(buf, header...)
	for _, l := range order {
		var next uint32
		if l == zeroth && firstIs {
			next = first.start
		}
		buf = l.appendTo(buf, next)
	}
	buf = append(buf, thumb...)
	return buf, nil
}
