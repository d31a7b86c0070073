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
	"fmt"
)

// kind is what an input buffer holds, judged by its prefix.
type kind int

const (
	kindUnknown kind = iota
	kindJPEG
	kindDataURI
	kindTIFF
	kindExif
)

func (k kind) String() string {
	switch k {
	case kindJPEG:
		return "JPEG"
	case kindDataURI:
		return "data URI"
	case kindTIFF:
		return "TIFF"
	case kindExif:
		return "Exif"
	}
	return "unknown"
}

// A matchEntry maps a byte prefix to the kind of input it starts.
type matchEntry struct {
	prefix []byte
	kind   kind
}

// matchTable is checked in order and the first match wins.
var matchTable = []matchEntry{
	{prefix: []byte("\xff\xd8"), kind: kindJPEG},
	{prefix: []byte(jpegDataURIPrefix), kind: kindDataURI},
	{prefix: []byte("data:image/jpg;base64,"), kind: kindDataURI},
	{prefix: []byte("II"), kind: kindTIFF},
	{prefix: []byte("MM"), kind: kindTIFF},
	{prefix: []byte("Exif"), kind: kindExif},
}

const jpegDataURIPrefix = "data:image/jpeg;base64,"

func sniff(data []byte) kind {
	for _, e := range matchTable {
		if bytes.HasPrefix(data, e.prefix) {
			return e.kind
		}
	}
	return kindUnknown
}

// decodeDataURI returns the payload of a base64 JPEG data URI.
func decodeDataURI(data []byte) ([]byte, error) {
	i := bytes.IndexByte(data, ',')
	if i < 0 {
		return nil, fmt.Errorf("%w: data URI without payload", ErrFormat)
	}
	enc := data[i+1:]
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(enc)))
	n, err := base64.StdEncoding.Decode(raw, enc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64 in data URI: %v", ErrFormat, err)
	}
	return raw[:n], nil
}

// encodeDataURI wraps raw JPEG bytes in a base64 data URI.
func encodeDataURI(raw []byte) []byte {
	out := make([]byte, len(jpegDataURIPrefix)+base64.StdEncoding.EncodedLen(len(raw)))
	n := copy(out, jpegDataURIPrefix)
	base64.StdEncoding.Encode(out[n:], raw)
	return out
}

// jpegInput returns the raw JPEG bytes of data, decoding it first if
// it is a data URI.
func jpegInput(data []byte) (raw []byte, isURI bool, err error) {
	switch sniff(data) {
	case kindJPEG:
		return data, false, nil
	case kindDataURI:
		raw, err := decodeDataURI(data)
		if err != nil {
			return nil, false, err
		}
		if sniff(raw) != kindJPEG {
			return nil, false, fmt.Errorf("%w: data URI doesn't hold a JPEG", ErrFormat)
		}
		return raw, true, nil
	}
	return nil, false, fmt.Errorf("%w: not a JPEG", ErrFormat)
}
