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

	"quickexif.org/pkg/exif/tags"
	"quickexif.org/pkg/jpegseg"
)

// Load decodes the Exif structure held by data, which may be a JPEG
// stream, a base64 JPEG data URI, a TIFF buffer, or an "Exif\0\0"
// blob as returned by Dump.
//
// A JPEG without an Exif segment yields a Set with every directory
// absent. Tags missing from the dictionary are dropped. The returned
// Set doesn't alias data.
func Load(data []byte) (*Set, error) {
	b, err := tiffBytes(data)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return NewSet(), nil
	}
	return decode(b)
}

// LoadString is like Load, for data held in a string, typically a data URI.
func LoadString(s string) (*Set, error) {
	return Load([]byte(s))
}

// tiffBytes returns the TIFF buffer of data, or nil if data is a JPEG
// without Exif.
func tiffBytes(data []byte) ([]byte, error) {
	k := sniff(data)
	if k == kindDataURI {
		raw, err := decodeDataURI(data)
		if err != nil {
			return nil, err
		}
		data, k = raw, sniff(raw)
		if k == kindDataURI {
			k = kindUnknown
		}
	}
	switch k {
	case kindJPEG:
		segs, err := jpegseg.Split(data)
		if err != nil {
			return nil, err
		}
		seg, ok := jpegseg.FindExif(segs)
		if !ok {
			return nil, nil
		}
		return seg.Raw[4+len(jpegseg.ExifHeader):], nil
	case kindTIFF:
		return data, nil
	case kindExif:
		if len(data) < len(jpegseg.ExifHeader) {
			return nil, fmt.Errorf("%w: truncated Exif header", ErrFormat)
		}
		return data[len(jpegseg.ExifHeader):], nil
	}
	return nil, ErrFormat
}

type decoder struct {
	t   tiffBuf
	set *Set
}

func decode(b []byte) (*Set, error) {
	order, ok := byteOrder(b)
	if !ok {
		return nil, fmt.Errorf("%w: no II or MM byte order mark", ErrFormat)
	}
	d := &decoder{t: tiffBuf{b: b, order: order}, set: NewSet()}
	magic, err := d.t.uint16(2)
	if err != nil {
		return nil, err
	}
	if magic != 0x2A {
		return nil, fmt.Errorf("%w: TIFF magic is %#04x", ErrMalformed, magic)
	}
	off, err := d.t.uint32(4)
	if err != nil {
		return nil, err
	}
	next, err := d.readDir(tags.Zeroth, off)
	if err != nil {
		return nil, err
	}

	zeroth := d.set.Dir(tags.Zeroth)
	if err := d.follow(zeroth, tags.ExifPointer, tags.Exif); err != nil {
		return nil, err
	}
	if err := d.follow(zeroth, tags.GPSPointer, tags.GPS); err != nil {
		return nil, err
	}
	if err := d.follow(d.set.Dir(tags.Exif), tags.InteropPointer, tags.Interop); err != nil {
		return nil, err
	}
	if next != 0 {
		if _, err := d.readDir(tags.First, next); err != nil {
			return nil, err
		}
		if err := d.readThumbnail(); err != nil {
			return nil, err
		}
	}
	return d.set, nil
}

// follow decodes directory child if parent holds the pointer tag ptr.
func (d *decoder) follow(parent *Directory, ptr tags.ID, child tags.IFD) error {
	v, ok := parent.Get(ptr)
	if !ok {
		return nil
	}
	off, ok := Uint(v)
	if !ok {
		return fmt.Errorf("%w: %v pointer in %v has value %v", ErrMalformed, child, parent.IFD(), v)
	}
	_, err := d.readDir(child, off)
	return err
}

// readDir decodes the IFD at off into directory ifd. For the Zeroth
// IFD it also returns the offset of the next IFD.
func (d *decoder) readDir(ifd tags.IFD, off uint32) (next uint32, err error) {
	dir := d.set.Dir(ifd)
	dir.MarkPresent()
	n, err := d.t.uint16(uint64(off))
	if err != nil {
		return 0, fmt.Errorf("%v IFD: %w", ifd, err)
	}
	base := uint64(off) + 2
	for i := uint64(0); i < uint64(n); i++ {
		e, err := d.t.slice(base+12*i, 12)
		if err != nil {
			return 0, fmt.Errorf("%v IFD entry %d: %w", ifd, i, err)
		}
		id := tags.ID(d.t.order.Uint16(e[0:]))
		typ := tags.Type(d.t.order.Uint16(e[2:]))
		count := d.t.order.Uint32(e[4:])
		if !tags.Known(ifd, id) {
			continue
		}
		if !decodable(typ) {
			return 0, &UnsupportedTypeError{IFD: ifd, Tag: id, Type: typ}
		}
		size := uint64(count) * uint64(typ.Size())
		var p []byte
		if fitsInline(typ, count) {
			p = e[8 : 8+size]
		} else {
			p, err = d.t.slice(uint64(d.t.order.Uint32(e[8:])), size)
			if err != nil {
				return 0, fmt.Errorf("%v tag %s: %w", ifd, tags.Name(ifd, id), err)
			}
		}
		dir.Set(id, decodeValue(d.t.order, typ, count, p))
	}
	if ifd != tags.Zeroth {
		return 0, nil
	}
	next, err = d.t.uint32(base + 12*uint64(n))
	if err != nil {
		return 0, fmt.Errorf("%v next IFD pointer: %w", ifd, err)
	}
	return next, nil
}

func (d *decoder) readThumbnail() error {
	first := d.set.Dir(tags.First)
	ov, ok1 := first.Get(tags.ThumbnailOffset)
	lv, ok2 := first.Get(tags.ThumbnailLength)
	if !ok1 || !ok2 {
		return nil
	}
	off, ok1 := Uint(ov)
	n, ok2 := Uint(lv)
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: thumbnail offset %v, length %v", ErrMalformed, ov, lv)
	}
	if n == 0 {
		return nil
	}
	p, err := d.t.slice(uint64(off), uint64(n))
	if err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	d.set.Thumbnail = bytes.Clone(p)
	return nil
}
