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

// Package gps converts between decimal degrees and the degree, minute,
// second rationals of the Exif GPS directory.
package gps // import "quickexif.org/pkg/exif/gps"

import (
	"math"
	"strings"

	"github.com/bradfitz/latlong"

	"quickexif.org/pkg/exif"
	"quickexif.org/pkg/exif/tags"
)

// Coordinate bounds, in degrees.
const (
	MaxLatitude  = 90
	MaxLongitude = 180
)

// ToDMS splits the absolute value of deg into whole degrees, whole
// minutes and seconds in hundredths.
func ToDMS(deg float64) [3]exif.Rational {
	deg = math.Abs(deg)
	_, minFrac := math.Modf(deg)
	minutes := minFrac * 60
	_, secFrac := math.Modf(minutes)
	seconds := secFrac * 60
	return [3]exif.Rational{
		{Num: uint32(math.Floor(deg)), Den: 1},
		{Num: uint32(math.Floor(minutes)), Den: 1},
		{Num: uint32(math.Floor(seconds*100 + 0.5)), Den: 100},
	}
}

// FromDMS returns the decimal degrees of dms, negated when ref is "S"
// or "W". Components with a zero denominator count as 0.
func FromDMS(dms [3]exif.Rational, ref string) float64 {
	deg := dms[0].Float() + dms[1].Float()/60 + dms[2].Float()/3600
	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		deg = -deg
	}
	return deg
}

// LatitudeRef returns "N" for lat >= 0 and "S" otherwise.
func LatitudeRef(lat float64) string {
	if lat >= 0 {
		return "N"
	}
	return "S"
}

// LongitudeRef returns "E" for long >= 0 and "W" otherwise.
func LongitudeRef(long float64) string {
	if long >= 0 {
		return "E"
	}
	return "W"
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// ValidLatitude reports whether lat is a finite number within ±90.
func ValidLatitude(lat float64) bool {
	return finite(lat) && lat >= -MaxLatitude && lat <= MaxLatitude
}

// ValidLongitude reports whether long is a finite number within ±180.
func ValidLongitude(long float64) bool {
	return finite(long) && long >= -MaxLongitude && long <= MaxLongitude
}

// Coordinates returns the position recorded in the GPS directory of s.
// ok is false unless both latitude and longitude are present as three
// rationals.
func Coordinates(s *exif.Set) (lat, long float64, ok bool) {
	d := s.Dir(tags.GPS)
	latDMS, ok1 := dms(d, tags.GPSLatitude)
	longDMS, ok2 := dms(d, tags.GPSLongitude)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return FromDMS(latDMS, ref(d, tags.GPSLatitudeRef)), FromDMS(longDMS, ref(d, tags.GPSLongitudeRef)), true
}

func dms(d *exif.Directory, id tags.ID) (v [3]exif.Rational, ok bool) {
	raw, _ := d.Get(id)
	rs, _ := raw.([]exif.Rational)
	if len(rs) != 3 {
		return v, false
	}
	copy(v[:], rs)
	return v, true
}

func ref(d *exif.Directory, id tags.ID) string {
	switch v, _ := d.Get(id); v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

// SetLatitude records lat, with its reference, in the GPS directory of s.
func SetLatitude(s *exif.Set, lat float64) {
	d := s.Dir(tags.GPS)
	r := ToDMS(lat)
	d.Set(tags.GPSLatitude, r[:])
	d.Set(tags.GPSLatitudeRef, LatitudeRef(lat))
}

// SetLongitude records long, with its reference, in the GPS directory of s.
func SetLongitude(s *exif.Set, long float64) {
	d := s.Dir(tags.GPS)
	r := ToDMS(long)
	d.Set(tags.GPSLongitude, r[:])
	d.Set(tags.GPSLongitudeRef, LongitudeRef(long))
}

// SetCoordinates records a position in the GPS directory of s.
func SetCoordinates(s *exif.Set, lat, long float64) {
	SetLatitude(s, lat)
	SetLongitude(s, long)
}

// ClearCoordinates removes the position tags from the GPS directory of s.
func ClearCoordinates(s *exif.Set) {
	d := s.Dir(tags.GPS)
	for _, id := range []tags.ID{tags.GPSLatitudeRef, tags.GPSLatitude, tags.GPSLongitudeRef, tags.GPSLongitude} {
		d.Delete(id)
	}
}

// ZoneName returns the IANA time zone name at the given position, or
// the empty string if it is unknown or the position is invalid.
func ZoneName(lat, long float64) string {
	if !ValidLatitude(lat) || !ValidLongitude(long) {
		return ""
	}
	return latlong.LookupZoneName(lat, long)
}
