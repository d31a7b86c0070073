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
	"encoding/base64"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"

	"quickexif.org/pkg/exif/tags"
)

// littleEndianTIFF returns a hand-built little-endian TIFF buffer:
//
//	8   Zeroth: Make "Nikon", Orientation 6, an unknown tag of type 99,
//	        ImageWidth as SLong -5, Exif pointer; next IFD 0
//	74  "Nikon\0"
//	80  Exif: ExposureBias -1/3, SubjectArea [10 20], ExifVersion "0231"
//	118 ExposureBias value
func littleEndianTIFF() []byte {
	le := binary.LittleEndian
	b := []byte("II\x2a\x00\x08\x00\x00\x00")
	entry := func(id, typ uint16, count uint32, val []byte) (pos int) {
		b = le.AppendUint16(b, id)
		b = le.AppendUint16(b, typ)
		b = le.AppendUint32(b, count)
		pos = len(b)
		var v [4]byte
		copy(v[:], val)
		b = append(b, v[:]...)
		return pos
	}
	here := func(pos int) { le.PutUint32(b[pos:], uint32(len(b))) }

	minus5 := int32(-5)
	b = le.AppendUint16(b, 5)
	makeAt := entry(0x010F, 2, 6, nil)
	entry(0x0112, 3, 1, []byte{6, 0})
	entry(0xFFF0, 99, 1, nil)
	entry(0x0100, 9, 1, le.AppendUint32(nil, uint32(minus5)))
	exifAt := entry(0x8769, 4, 1, nil)
	b = le.AppendUint32(b, 0)
	here(makeAt)
	b = append(b, "Nikon\x00"...)

	here(exifAt)
	b = le.AppendUint16(b, 3)
	biasAt := entry(0x9204, 10, 1, nil)
	entry(0x9214, 3, 2, []byte{10, 0, 20, 0})
	entry(0x9000, 7, 4, []byte("0231"))
	here(biasAt)
	minus1 := int32(-1)
	b = le.AppendUint32(b, uint32(minus1))
	b = le.AppendUint32(b, 3)
	return b
}

func TestLoadLittleEndian(t *testing.T) {
	tb := littleEndianTIFF()
	jpg := withSegments(t, testJPEG(t), append([]byte("Exif\x00\x00"), tb...))
	uri := "data:image/jpg;base64," + base64.StdEncoding.EncodeToString(jpg)

	inputs := map[string][]byte{
		"tiff":     tb,
		"exif":     append([]byte("Exif\x00\x00"), tb...),
		"jpeg":     jpg,
		"data uri": []byte(uri),
	}
	for name, in := range inputs {
		s, err := Load(in)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		z, e := s.Dir(tags.Zeroth), s.Dir(tags.Exif)
		want := map[*Directory]map[tags.ID]any{
			z: {
				tags.Make:        "Nikon",
				tags.Orientation: uint16(6),
				0x0100:           int32(-5),
				tags.ExifPointer: uint32(80),
			},
			e: {
				tags.ExposureBias: SRational{-1, 3},
				0x9214:            []uint16{10, 20},
				tags.ExifVersion:  []byte("0231"),
			},
		}
		for dir, tv := range want {
			if dir.Len() != len(tv) {
				t.Errorf("%s: %v has tags %v; want %d tags", name, dir.IFD(), dir.IDs(), len(tv))
			}
			for id, v := range tv {
				got, _ := dir.Get(id)
				if !reflect.DeepEqual(got, v) {
					t.Errorf("%s: %v %s = %#v; want %#v", name, dir.IFD(), tags.Name(dir.IFD(), id), got, v)
				}
			}
		}
		for _, ifd := range []tags.IFD{tags.GPS, tags.Interop, tags.First} {
			if p := s.Dir(ifd).Presence(); p != Absent {
				t.Errorf("%s: %v is %v; want absent", name, ifd, p)
			}
		}
	}

	// Re-encoding the little-endian input yields big-endian Exif data
	// with the same values.
	s, err := Load(tb)
	if err != nil {
		t.Fatal(err)
	}
	s.Dir(tags.Zeroth).Delete(0x0100)
	got, err := Load(mustDump(t, s))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(s, got) {
		t.Error("little-endian values changed through Dump")
	}
}

func TestLoadErrors(t *testing.T) {
	patched := func(at int, p ...byte) []byte {
		b := littleEndianTIFF()
		copy(b[at:], p)
		return b
	}
	var ute *UnsupportedTypeError
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, ErrFormat},
		{"gif", []byte("GIF89a......"), ErrFormat},
		{"bad base64", []byte("data:image/jpeg;base64,!!!"), ErrFormat},
		{"png in data uri", []byte("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n"))), ErrFormat},
		{"short exif", []byte("Exif\x00"), ErrFormat},
		{"exif without byte order", []byte("Exif\x00\x00XX\x00\x2a\x00\x00\x00\x08"), ErrFormat},
		{"truncated jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x01, 0x00, 'E'}, ErrMalformedSegment},
		{"header only", []byte("MM\x00"), ErrMalformed},
		{"bad magic", patched(2, 0x2b), ErrMalformed},
		{"zeroth past end", patched(4, 0x00, 0x10), ErrMalformed},
		{"too many entries", patched(8, 0x40), ErrMalformed},
		{"value past end", patched(18, 0xF0, 0xFF), ErrMalformed},
		{"exif pointer past end", patched(66, 0xF0, 0xFF), ErrMalformed},
	}
	for _, tt := range tests {
		s, err := Load(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: Load error = %v; want %v", tt.name, err, tt.want)
		}
		if s != nil {
			t.Errorf("%s: Load returned a Set along with an error", tt.name)
		}
	}

	// Make stored as Float.
	if _, err := Load(patched(12, 11)); !errors.As(err, &ute) || ute.Type != tags.Float || ute.Tag != tags.Make {
		t.Errorf("Load of a Float Make: error = %v; want UnsupportedTypeError", err)
	}
}

func TestLoadNoExif(t *testing.T) {
	jpg := withSegments(t, testJPEG(t), []byte("JFIF\x00\x01\x01"))
	s, err := Load(jpg)
	if err != nil {
		t.Fatal(err)
	}
	for _, ifd := range tags.IFDs {
		if d := s.Dir(ifd); d.Presence() != Absent || d.Len() != 0 {
			t.Errorf("%v = %v with %d tags; want absent", ifd, d.Presence(), d.Len())
		}
	}
	if s.Thumbnail != nil {
		t.Error("Load found a thumbnail")
	}
}

func TestLoadDoesNotAlias(t *testing.T) {
	s := sampleSet(t)
	out := mustDump(t, s)
	got, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	for i := range out {
		out[i] = 0
	}
	if !Equal(s, got) {
		t.Error("loaded Set changed when its input was overwritten")
	}
}

func TestLoadThumbnailPastEnd(t *testing.T) {
	s := NewSet()
	s.Thumbnail = testJPEG(t)
	out := mustDump(t, s)
	// Cut the last byte of the thumbnail.
	if _, err := Load(out[:len(out)-1]); !errors.Is(err, ErrMalformed) {
		t.Errorf("Load of a truncated thumbnail: error = %v; want ErrMalformed", err)
	}
	got, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Thumbnail, s.Thumbnail) {
		t.Error("thumbnail differs")
	}
}

func TestLoadEmptyThumbnail(t *testing.T) {
	s := NewSet()
	s.Dir(tags.Zeroth).Set(tags.Make, "Canon")
	s.Thumbnail = testJPEG(t)
	out := mustDump(t, s)

	// Set JPEGInterchangeFormatLength to 0.
	tb := out[6:]
	_, firstAt := parseIFD(t, tb, binary.BigEndian.Uint32(tb[4:]), true)
	first, _ := parseIFD(t, tb, firstAt, true)
	patched := false
	for i, e := range first {
		if e.id == tags.ThumbnailLength {
			binary.BigEndian.PutUint32(tb[int(firstAt)+2+12*i+8:], 0)
			patched = true
		}
	}
	if !patched {
		t.Fatal("First lacks JPEGInterchangeFormatLength")
	}

	got, err := Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Thumbnail != nil {
		t.Errorf("Thumbnail = %d bytes; want nil", len(got.Thumbnail))
	}
	if _, err := Dump(got); err != nil {
		t.Errorf("Dump after loading an empty thumbnail: %v", err)
	}
}
