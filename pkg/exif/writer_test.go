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
	"errors"
	"strings"
	"testing"

	"github.com/rwcarlsen/goexif/tiff"

	"quickexif.org/pkg/exif/tags"
)

// walkDump parses the output of Dump independently of the reader and
// returns the raw entries of every directory it reaches.
func walkDump(t *testing.T, out []byte) (b []byte, dirs map[tags.IFD][]rawEntry) {
	t.Helper()
	if !bytes.HasPrefix(out, []byte("Exif\x00\x00MM\x00\x2a\x00\x00\x00\x08")) {
		t.Fatalf("Dump output starts with % x", out[:min(len(out), 14)])
	}
	b = out[6:]
	dirs = make(map[tags.IFD][]rawEntry)
	zeroth, next := parseIFD(t, b, 8, true)
	dirs[tags.Zeroth] = zeroth
	if e, ok := find(zeroth, tags.ExifPointer); ok {
		dirs[tags.Exif], _ = parseIFD(t, b, e.value, false)
		if e, ok := find(dirs[tags.Exif], tags.InteropPointer); ok {
			dirs[tags.Interop], _ = parseIFD(t, b, e.value, false)
		}
	}
	if e, ok := find(zeroth, tags.GPSPointer); ok {
		dirs[tags.GPS], _ = parseIFD(t, b, e.value, false)
	}
	if next != 0 {
		var last uint32
		dirs[tags.First], last = parseIFD(t, b, next, true)
		if last != 0 {
			t.Errorf("First IFD next pointer = %d; want 0", last)
		}
	}
	return b, dirs
}

func TestDumpLayout(t *testing.T) {
	s := sampleSet(t)
	b, dirs := walkDump(t, mustDump(t, s))
	if len(dirs) != 5 {
		t.Fatalf("reached %d directories; want 5", len(dirs))
	}
	for ifd, entries := range dirs {
		pointers := map[tags.IFD]int{tags.Zeroth: 2, tags.Exif: 1, tags.First: 2}[ifd]
		if want := s.Dir(ifd).contentLen() + pointers; len(entries) != want {
			t.Errorf("%v has %d entries; want %d", ifd, len(entries), want)
		}
		for i, e := range entries {
			if i > 0 && entries[i-1].id >= e.id {
				t.Errorf("%v: tag %#04x follows %#04x", ifd, uint16(e.id), uint16(entries[i-1].id))
			}
			size := uint64(e.count) * uint64(e.typ.Size())
			if fitsInline(e.typ, e.count) {
				continue
			}
			if e.value%2 != 0 {
				t.Errorf("%v tag %s: odd value offset %d", ifd, tags.Name(ifd, e.id), e.value)
			}
			if uint64(e.value)+size > uint64(len(b)) {
				t.Errorf("%v tag %s: %d bytes at %d run past the %d-byte buffer", ifd, tags.Name(ifd, e.id), size, e.value, len(b))
			}
		}
	}

	// Pointer entries sit at their sorted position: DNGVersion (0xC612)
	// comes after both the Exif and GPS pointers.
	z := dirs[tags.Zeroth]
	if last := z[len(z)-1].id; last != 0xC612 {
		t.Errorf("last Zeroth tag = %#04x; want DNGVersion", uint16(last))
	}
	for _, ptr := range []tags.ID{tags.ExifPointer, tags.GPSPointer} {
		e, ok := find(z, ptr)
		if !ok {
			t.Fatalf("Zeroth lacks pointer %s", tags.Name(tags.Zeroth, ptr))
		}
		if e.typ != tags.Long || e.count != 1 {
			t.Errorf("%s entry = %+v; want one Long", tags.Name(tags.Zeroth, ptr), e)
		}
	}

	first := dirs[tags.First]
	off, ok1 := find(first, tags.ThumbnailOffset)
	n, ok2 := find(first, tags.ThumbnailLength)
	if !ok1 || !ok2 {
		t.Fatal("First lacks thumbnail pointers")
	}
	if int(off.value)+int(n.value) != len(b) {
		t.Errorf("thumbnail at %d+%d doesn't end the %d-byte buffer", off.value, n.value, len(b))
	}
	if got := b[off.value : off.value+n.value]; !bytes.Equal(got, s.Thumbnail) {
		t.Error("thumbnail bytes differ")
	}
}

// Cross-check Dump output with an independent TIFF decoder.
func TestDumpDecodesWithGoexif(t *testing.T) {
	s := sampleSet(t)
	out := mustDump(t, s)
	tf, err := tiff.Decode(bytes.NewReader(out[6:]))
	if err != nil {
		t.Fatalf("tiff.Decode: %v", err)
	}
	if len(tf.Dirs) != 2 {
		t.Fatalf("goexif found %d IFDs in the chain; want 2", len(tf.Dirs))
	}
	vals := make(map[uint16][]byte)
	for _, tag := range tf.Dirs[0].Tags {
		vals[tag.Id] = tag.Val
	}
	if got := strings.TrimRight(string(vals[uint16(tags.Make)]), "\x00"); got != "Canon" {
		t.Errorf("goexif Make = %q; want Canon", got)
	}
	if got := strings.TrimRight(string(vals[uint16(tags.Model)]), "\x00"); got != "Canon EOS 5D" {
		t.Errorf("goexif Model = %q", got)
	}
	if got := vals[uint16(tags.XResolution)]; !bytes.Equal(got, []byte{0, 0, 0, 72, 0, 0, 0, 1}) {
		t.Errorf("goexif XResolution = % x", got)
	}
	if len(tf.Dirs[0].Tags) != s.Dir(tags.Zeroth).Len()+2 {
		t.Errorf("goexif Zeroth has %d tags; want %d", len(tf.Dirs[0].Tags), s.Dir(tags.Zeroth).Len()+2)
	}
	if len(tf.Dirs[1].Tags) != s.Dir(tags.First).Len()+2 {
		t.Errorf("goexif First has %d tags; want %d", len(tf.Dirs[1].Tags), s.Dir(tags.First).Len()+2)
	}
}

func TestDumpThumbnailTooLarge(t *testing.T) {
	s := NewSet()
	s.Dir(tags.Zeroth).Set(tags.Make, "Canon")
	s.Dir(tags.First).Set(0x0103, uint16(6))
	thumb := append([]byte{0xFF, 0xD8, 0xFF, 0xDA}, make([]byte, 70000-4)...)
	s.Thumbnail = thumb
	before := s.Clone()

	out, err := Dump(s)
	var sle *SizeLimitError
	if !errors.As(err, &sle) {
		t.Fatalf("Dump error = %v; want a SizeLimitError", err)
	}
	if sle.Size != 70000 || sle.Limit != MaxThumbnailSize {
		t.Errorf("SizeLimitError = %+v", sle)
	}
	if out != nil {
		t.Errorf("Dump returned %d bytes along with an error", len(out))
	}
	if !Equal(s, before) || &s.Thumbnail[0] != &thumb[0] {
		t.Error("Dump modified the Set")
	}
	if s.Dir(tags.First).Has(tags.ThumbnailOffset) {
		t.Error("Dump added a thumbnail pointer to the caller's Set")
	}
}

func TestDumpStripsThumbnailApp(t *testing.T) {
	plain := testJPEG(t)
	s := NewSet()
	s.Thumbnail = withSegments(t, plain, []byte("JFIF\x00\x01\x02"), []byte("Exif\x00\x00MM"))
	got, err := Load(mustDump(t, s))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Thumbnail, plain) {
		t.Errorf("thumbnail is %d bytes; want %d without APPn segments", len(got.Thumbnail), len(plain))
	}
	if p := got.Dir(tags.First).Presence(); p != Empty {
		t.Errorf("First presence = %v; want empty", p)
	}
}

func TestDumpBadThumbnail(t *testing.T) {
	s := NewSet()
	s.Thumbnail = []byte("not a jpeg")
	if _, err := Dump(s); err == nil {
		t.Error("Dump accepted a non-JPEG thumbnail")
	}
}

func TestDumpPointerNormalization(t *testing.T) {
	tests := []struct {
		name      string
		build     func(s *Set)
		wantExif  bool
		wantGPS   bool
		wantIop   bool
		wantFirst bool
	}{
		{
			name: "stale pointers",
			build: func(s *Set) {
				s.Dir(tags.Zeroth).Set(tags.ExifPointer, uint32(999))
				s.Dir(tags.Zeroth).Set(tags.GPSPointer, uint32(999))
				s.Dir(tags.Exif).Set(tags.InteropPointer, uint32(999))
				s.Dir(tags.First).Set(tags.ThumbnailOffset, uint32(999))
				s.Dir(tags.First).Set(tags.ThumbnailLength, uint32(999))
			},
		},
		{
			name:     "interop only",
			build:    func(s *Set) { s.Dir(tags.Interop).Set(tags.InteroperabilityIndex, "R98") },
			wantExif: true,
			wantIop:  true,
		},
		{
			name:    "gps only",
			build:   func(s *Set) { s.Dir(tags.GPS).Set(tags.GPSLatitudeRef, "S") },
			wantGPS: true,
		},
		{
			name:      "first without thumbnail",
			build:     func(s *Set) { s.Dir(tags.First).Set(0x0103, uint16(6)) },
			wantFirst: true,
		},
	}
	for _, tt := range tests {
		s := NewSet()
		tt.build(s)
		before := s.Clone()
		_, dirs := walkDump(t, mustDump(t, s))
		_, gotExif := dirs[tags.Exif]
		_, gotGPS := dirs[tags.GPS]
		_, gotIop := dirs[tags.Interop]
		_, gotFirst := dirs[tags.First]
		if gotExif != tt.wantExif || gotGPS != tt.wantGPS || gotIop != tt.wantIop || gotFirst != tt.wantFirst {
			t.Errorf("%s: laid out Exif=%v GPS=%v Interop=%v First=%v; want %v %v %v %v", tt.name,
				gotExif, gotGPS, gotIop, gotFirst, tt.wantExif, tt.wantGPS, tt.wantIop, tt.wantFirst)
		}
		if _, ok := find(dirs[tags.First], tags.ThumbnailOffset); ok {
			t.Errorf("%s: thumbnail pointer written without a thumbnail", tt.name)
		}
		for _, ifd := range tags.IFDs {
			if got, want := s.Dir(ifd).Len(), before.Dir(ifd).Len(); got != want {
				t.Errorf("%s: Dump changed %v from %d to %d tags", tt.name, ifd, want, got)
			}
		}
	}
}

func TestDumpErrors(t *testing.T) {
	tests := []struct {
		name string
		ifd  tags.IFD
		id   tags.ID
		v    any
	}{
		{"ascii as short", tags.Zeroth, tags.Make, uint16(5)},
		{"short out of range", tags.Zeroth, tags.Orientation, uint32(70000)},
		{"negative long", tags.Exif, tags.PixelXDimension, int32(-1)},
		{"byte out of range", tags.GPS, tags.GPSAltitudeRef, uint16(256)},
		{"rational as long", tags.Zeroth, tags.XResolution, uint32(72)},
		{"negative rational", tags.Zeroth, tags.XResolution, SRational{-72, 1}},
		{"big srational", tags.Exif, tags.ExposureBias, Rational{1 << 31, 1}},
		{"unknown tag", tags.Zeroth, 0xFFF0, "x"},
		{"float", tags.Exif, tags.ExposureTime, 1.5},
	}
	for _, tt := range tests {
		s := NewSet()
		s.Dir(tags.Zeroth).Set(tags.Make, "ok")
		s.Dir(tt.ifd).Set(tt.id, tt.v)
		out, err := Dump(s)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("%s: Dump error = %v; want ErrInvalidValue", tt.name, err)
		}
		if out != nil {
			t.Errorf("%s: Dump returned output with an error", tt.name)
		}
	}
}

func TestDumpUnsupportedType(t *testing.T) {
	s := NewSet()
	s.Dir(tags.Zeroth).Set(0xC6FC, []byte{0, 0, 0, 0}) // ProfileToneCurve
	_, err := Dump(s)
	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("Dump error = %v; want an UnsupportedTypeError", err)
	}
	if ute.Type != tags.Float || ute.Tag != 0xC6FC || ute.IFD != tags.Zeroth {
		t.Errorf("UnsupportedTypeError = %+v", ute)
	}
}

func TestDumpDeterministic(t *testing.T) {
	a := mustDump(t, sampleSet(t))
	for i := 0; i < 10; i++ {
		if b := mustDump(t, sampleSet(t)); !bytes.Equal(a, b) {
			t.Fatal("Dump output varies between runs")
		}
	}
}
