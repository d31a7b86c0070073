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

// Package tags is the static dictionary of Exif tags, mapping a tag id
// within an Image File Directory to its name and TIFF value type.
//
// The tables are built once at init and never modified, so they are
// safe for concurrent use.
package tags // import "quickexif.org/pkg/exif/tags"

import (
	"fmt"
	"sort"
)

// ID is a 16-bit TIFF tag identifier.
type ID uint16

// Type is a TIFF field type code.
type Type uint16

const (
	Byte      Type = 1
	Ascii     Type = 2
	Short     Type = 3
	Long      Type = 4
	Rational  Type = 5
	Undefined Type = 7
	SLong     Type = 9
	SRational Type = 10
	Float     Type = 11 // only named by the DNG profile tags; not encodable
)

var typeNames = map[Type]string{
	Byte:      "Byte",
	Ascii:     "Ascii",
	Short:     "Short",
	Long:      "Long",
	Rational:  "Rational",
	Undefined: "Undefined",
	SLong:     "SLong",
	SRational: "SRational",
	Float:     "Float",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

// Size returns the width in bytes of one element of type t,
// or 0 if t is not a known type.
func (t Type) Size() int {
	switch t {
	case Byte, Ascii, Undefined:
		return 1
	case Short:
		return 2
	case Long, SLong, Float:
		return 4
	case Rational, SRational:
		return 8
	}
	return 0
}

// IFD names one of the five directories of an Exif structure.
type IFD int

const (
	Zeroth IFD = iota
	Exif
	GPS
	Interop
	First
)

// IFDs lists the directories in the order they are serialized.
var IFDs = []IFD{Zeroth, Exif, GPS, Interop, First}

func (ifd IFD) String() string {
	switch ifd {
	case Zeroth:
		return "0th"
	case Exif:
		return "Exif"
	case GPS:
		return "GPS"
	case Interop:
		return "Interop"
	case First:
		return "1st"
	}
	return fmt.Sprintf("IFD(%d)", int(ifd))
}

// Family returns the name of the tag table used by ifd. Zeroth and
// First share the "Image" table.
func (ifd IFD) Family() string {
	switch ifd {
	case Zeroth, First:
		return "Image"
	}
	return ifd.String()
}

// Info describes a known tag.
type Info struct {
	Name string
	Type Type
}

// Pointer and bookkeeping tags.
const (
	ExifPointer     ID = 0x8769 // Zeroth: offset of the Exif IFD
	GPSPointer      ID = 0x8825 // Zeroth: offset of the GPS IFD
	InteropPointer  ID = 0xA005 // Exif: offset of the Interop IFD
	ThumbnailOffset ID = 0x0201 // First: JPEGInterchangeFormat
	ThumbnailLength ID = 0x0202 // First: JPEGInterchangeFormatLength
)

// Image tags.
const (
	ImageDescription ID = 0x010E
	Make             ID = 0x010F
	Model            ID = 0x0110
	Orientation      ID = 0x0112
	XResolution      ID = 0x011A
	YResolution      ID = 0x011B
	ResolutionUnit   ID = 0x0128
	Software         ID = 0x0131
	DateTime         ID = 0x0132
	Artist           ID = 0x013B
	Copyright        ID = 0x8298
)

// Exif tags.
const (
	ExposureTime      ID = 0x829A
	FNumber           ID = 0x829D
	ExifVersion       ID = 0x9000
	DateTimeOriginal  ID = 0x9003
	DateTimeDigitized ID = 0x9004
	ExposureBias      ID = 0x9204
	MakerNote         ID = 0x927C
	UserComment       ID = 0x9286
	PixelXDimension   ID = 0xA002
	PixelYDimension   ID = 0xA003
)

// GPS tags.
const (
	GPSVersionID    ID = 0x0000
	GPSLatitudeRef  ID = 0x0001
	GPSLatitude     ID = 0x0002
	GPSLongitudeRef ID = 0x0003
	GPSLongitude    ID = 0x0004
	GPSAltitudeRef  ID = 0x0005
	GPSAltitude     ID = 0x0006
	GPSTimeStamp    ID = 0x0007
	GPSMapDatum     ID = 0x0012
	GPSDateStamp    ID = 0x001D
)

// Interop tags.
const (
	InteroperabilityIndex ID = 0x0001
)

var tables = map[string]map[ID]Info{
	"Image":   imageTags,
	"Exif":    exifTags,
	"GPS":     gpsTags,
	"Interop": interopTags,
}

func table(ifd IFD) map[ID]Info {
	return tables[ifd.Family()]
}

// Lookup returns the dictionary entry of tag id within ifd.
func Lookup(ifd IFD, id ID) (Info, bool) {
	info, ok := table(ifd)[id]
	return info, ok
}

// Known reports whether id is in the dictionary for ifd.
func Known(ifd IFD, id ID) bool {
	_, ok := table(ifd)[id]
	return ok
}

// Name returns the name of id within ifd, or a hex placeholder
// for tags outside the dictionary.
func Name(ifd IFD, id ID) string {
	if info, ok := table(ifd)[id]; ok {
		return info.Name
	}
	return fmt.Sprintf("Unknown_%04X", uint16(id))
}

var byName = map[IFD]map[string]ID{}

func init() {
	for _, ifd := range IFDs {
		m := make(map[string]ID)
		for id, info := range table(ifd) {
			m[info.Name] = id
		}
		byName[ifd] = m
	}
}

// ByName returns the id of the tag called name within ifd.
func ByName(ifd IFD, name string) (ID, bool) {
	id, ok := byName[ifd][name]
	return id, ok
}

// IDs returns the known tag ids of ifd in ascending order.
func IDs(ifd IFD) []ID {
	t := table(ifd)
	ids := make([]ID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
