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

// Package exifedit applies user edits of a fixed set of descriptive
// fields to an Exif Set.
//
// An edit maps a field to its new value as typed by a user. An empty
// value, or "(not set)", removes the field.
package exifedit // import "quickexif.org/pkg/exifedit"

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"quickexif.org/pkg/exif"
	"quickexif.org/pkg/exif/gps"
	"quickexif.org/pkg/exif/tags"
)

// A Field is an editable field.
type Field string

const (
	DateTimeOriginal Field = "datetimeoriginal"
	ImageDescription Field = "imagedescription"
	Artist           Field = "artist"
	Copyright        Field = "copyright"
	UserComment      Field = "usercomment"
	GPSLatitude      Field = "gpslatitude"
	GPSLongitude     Field = "gpslongitude"
)

// Fields lists the editable fields in display order.
var Fields = []Field{
	DateTimeOriginal,
	ImageDescription,
	Artist,
	Copyright,
	UserComment,
	GPSLatitude,
	GPSLongitude,
}

var fieldNames = map[Field]string{
	DateTimeOriginal: "DateTimeOriginal",
	ImageDescription: "ImageDescription",
	Artist:           "Artist",
	Copyright:        "Copyright",
	UserComment:      "UserComment",
	GPSLatitude:      "GPSLatitude",
	GPSLongitude:     "GPSLongitude",
}

// Name returns the Exif tag name of f.
func (f Field) Name() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return string(f)
}

func (f Field) known() bool {
	_, ok := fieldNames[f]
	return ok
}

// ParseField returns the field named s, matching either its key or its
// tag name without regard to case.
func ParseField(s string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	return f, f.known()
}

// UserCommentPrefix is the character code that precedes the text of a
// UserComment.
const UserCommentPrefix = "ASCII\x00\x00\x00"

// GPS defaults written whenever the GPS directory holds a tag.
var (
	DefaultGPSVersion  = []byte{2, 2, 0, 0}
	DefaultGPSMapDatum = "WGS-84"
)

// Edits maps fields to their new values.
type Edits map[Field]string

// sorted returns the fields of e in display order.
func (e Edits) sorted() []Field {
	fs := make([]Field, 0, len(e))
	for f := range e {
		fs = append(fs, f)
	}
	sortFields(fs)
	return fs
}

// sortFields sorts fs in display order, unknown fields last.
func sortFields(fs []Field) {
	rank := make(map[Field]int, len(Fields))
	for i, f := range Fields {
		rank[f] = i
	}
	sort.Slice(fs, func(i, j int) bool {
		ri, oki := rank[fs[i]]
		rj, okj := rank[fs[j]]
		if oki != okj {
			return oki
		}
		if ri != rj {
			return ri < rj
		}
		return fs[i] < fs[j]
	})
}

// Validate checks every edit and returns all the problems found, or nil.
func Validate(e Edits) error {
	var errs *multierror.Error
	for _, f := range e.sorted() {
		v := e[f]
		if !f.known() {
			errs = multierror.Append(errs, fmt.Errorf("unknown field %q", string(f)))
			continue
		}
		if IsEmpty(v) {
			continue
		}
		switch f {
		case GPSLatitude, GPSLongitude:
			deg, err := ParseCoordinate(v)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", f.Name(), err))
				continue
			}
			if f == GPSLatitude && !gps.ValidLatitude(deg) {
				errs = multierror.Append(errs, fmt.Errorf("invalid latitude %v: must be between -%d and %d", deg, gps.MaxLatitude, gps.MaxLatitude))
			}
			if f == GPSLongitude && !gps.ValidLongitude(deg) {
				errs = multierror.Append(errs, fmt.Errorf("invalid longitude %v: must be between -%d and %d", deg, gps.MaxLongitude, gps.MaxLongitude))
			}
		case DateTimeOriginal:
			if _, err := ParseDateTime(v); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", f.Name(), err))
			}
		}
	}
	return errs.ErrorOrNil()
}

// Apply validates e and writes it into s. Nothing is changed when
// validation fails.
func Apply(s *exif.Set, e Edits) error {
	if err := Validate(e); err != nil {
		return err
	}
	zeroth, ex := s.Dir(tags.Zeroth), s.Dir(tags.Exif)
	var date string
	for _, f := range e.sorted() {
		v := strings.TrimSpace(e[f])
		remove := IsEmpty(v)
		switch f {
		case DateTimeOriginal:
			if remove {
				ex.Delete(tags.DateTimeOriginal)
				ex.Delete(tags.DateTimeDigitized)
				continue
			}
			date, _ = ParseDateTime(v)
			ex.Set(tags.DateTimeOriginal, date)
			ex.Set(tags.DateTimeDigitized, date)
		case ImageDescription:
			setText(zeroth, tags.ImageDescription, v, remove)
		case Artist:
			setText(zeroth, tags.Artist, v, remove)
		case Copyright:
			setText(zeroth, tags.Copyright, v, remove)
		case UserComment:
			if remove {
				ex.Delete(tags.UserComment)
				continue
			}
			ex.Set(tags.UserComment, []byte(UserCommentPrefix+v))
		case GPSLatitude:
			if remove {
				s.Dir(tags.GPS).Delete(tags.GPSLatitude)
				s.Dir(tags.GPS).Delete(tags.GPSLatitudeRef)
				continue
			}
			lat, _ := ParseCoordinate(v)
			gps.SetLatitude(s, lat)
		case GPSLongitude:
			if remove {
				s.Dir(tags.GPS).Delete(tags.GPSLongitude)
				s.Dir(tags.GPS).Delete(tags.GPSLongitudeRef)
				continue
			}
			long, _ := ParseCoordinate(v)
			gps.SetLongitude(s, long)
		}
	}

	g := s.Dir(tags.GPS)
	if g.Len() == 0 {
		return nil
	}
	if !g.Has(tags.GPSVersionID) {
		g.Set(tags.GPSVersionID, bytes.Clone(DefaultGPSVersion))
	}
	if !g.Has(tags.GPSMapDatum) {
		g.Set(tags.GPSMapDatum, DefaultGPSMapDatum)
	}
	if !g.Has(tags.GPSDateStamp) && date != "" {
		g.Set(tags.GPSDateStamp, date[:len("2006:01:02")])
	}
	return nil
}

func setText(d *exif.Directory, id tags.ID, v string, remove bool) {
	if remove {
		d.Delete(id)
		return
	}
	d.Set(id, v)
}

// Current returns the value of every field as recorded in s, in the
// form accepted by Apply. Absent fields are omitted.
func Current(s *exif.Set) Edits {
	e := make(Edits)
	zeroth, ex := s.Dir(tags.Zeroth), s.Dir(tags.Exif)
	text := func(f Field, d *exif.Directory, id tags.ID) {
		switch v, _ := d.Get(id); v := v.(type) {
		case string:
			if v != "" {
				e[f] = v
			}
		case []byte:
			if len(v) > 0 {
				e[f] = string(v)
			}
		}
	}
	text(DateTimeOriginal, ex, tags.DateTimeOriginal)
	text(ImageDescription, zeroth, tags.ImageDescription)
	text(Artist, zeroth, tags.Artist)
	text(Copyright, zeroth, tags.Copyright)
	if v, ok := ex.Get(tags.UserComment); ok {
		if b, ok := v.([]byte); ok && len(b) > len(UserCommentPrefix) {
			e[UserComment] = strings.TrimRight(string(b[len(UserCommentPrefix):]), "\x00 ")
		}
	}
	if lat, long, ok := gps.Coordinates(s); ok {
		e[GPSLatitude] = strconv.FormatFloat(lat, 'f', 6, 64)
		e[GPSLongitude] = strconv.FormatFloat(long, 'f', 6, 64)
	}
	return e
}
