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
	"encoding/binary"
	"fmt"
	"math"

	"quickexif.org/pkg/exif/tags"
)

// byteOrder returns the byte order selected by the two-byte mark at
// the start of a TIFF buffer.
func byteOrder(mark []byte) (binary.ByteOrder, bool) {
	if len(mark) < 2 {
		return nil, false
	}
	switch string(mark[:2]) {
	case "II":
		return binary.LittleEndian, true
	case "MM":
		return binary.BigEndian, true
	}
	return nil, false
}

// tiffBuf is a TIFF buffer. Offsets passed to its methods are relative
// to the start of the buffer, and reads past its end return an
// ErrMalformed error instead of panicking.
type tiffBuf struct {
	b     []byte
	order binary.ByteOrder
}

func (t *tiffBuf) slice(off, n uint64) ([]byte, error) {
	if off > uint64(len(t.b)) || n > uint64(len(t.b))-off {
		return nil, fmt.Errorf("%w: %d bytes at offset %d, buffer is %d bytes", ErrMalformed, n, off, len(t.b))
	}
	return t.b[off : off+n], nil
}

func (t *tiffBuf) uint16(off uint64) (uint16, error) {
	p, err := t.slice(off, 2)
	if err != nil {
		return 0, err
	}
	return t.order.Uint16(p), nil
}

func (t *tiffBuf) uint32(off uint64) (uint32, error) {
	p, err := t.slice(off, 4)
	if err != nil {
		return 0, err
	}
	return t.order.Uint32(p), nil
}

// Writing is always big-endian.
var be = binary.BigEndian

// integers returns the elements of an integer-shaped tag value.
func integers(v any) ([]int64, bool) {
	switch v := v.(type) {
	case uint8:
		return []int64{int64(v)}, true
	case uint16:
		return []int64{int64(v)}, true
	case uint32:
		return []int64{int64(v)}, true
	case int32:
		return []int64{int64(v)}, true
	case int:
		return []int64{int64(v)}, true
	case []byte:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, true
	case []uint16:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, true
	case []uint32:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, true
	case []int32:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, true
	case []int:
		out := make([]int64, len(v))
		for i, x := range v {
			out[i] = int64(x)
		}
		return out, true
	}
	return nil, false
}

// fractions returns the numerator/denominator pairs of a
// rational-shaped tag value.
func fractions(v any) ([][2]int64, bool) {
	switch v := v.(type) {
	case Rational:
		return [][2]int64{{int64(v.Num), int64(v.Den)}}, true
	case SRational:
		return [][2]int64{{int64(v.Num), int64(v.Den)}}, true
	case []Rational:
		out := make([][2]int64, len(v))
		for i, r := range v {
			out[i] = [2]int64{int64(r.Num), int64(r.Den)}
		}
		return out, true
	case []SRational:
		out := make([][2]int64, len(v))
		for i, r := range v {
			out[i] = [2]int64{int64(r.Num), int64(r.Den)}
		}
		return out, true
	}
	return nil, false
}

func octets(v any) ([]byte, bool) {
	switch v := v.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	return nil, false
}

func intRange(typ tags.Type) (lo, hi int64) {
	switch typ {
	case tags.Byte:
		return 0, math.MaxUint8
	case tags.Short:
		return 0, math.MaxUint16
	case tags.Long, tags.Rational:
		return 0, math.MaxUint32
	case tags.SLong, tags.SRational:
		return math.MinInt32, math.MaxInt32
	}
	return 0, 0
}

// encodeValue returns the element count and big-endian encoding of v
// as a value of type typ. Ascii values get their terminator here.
func encodeValue(typ tags.Type, v any) (count uint32, p []byte, err error) {
	invalid := func() error {
		return fmt.Errorf("%w: %T can't be encoded as %v", ErrInvalidValue, v, typ)
	}
	switch typ {
	case tags.Ascii:
		s, ok := octets(v)
		if !ok {
			return 0, nil, invalid()
		}
		p = make([]byte, 0, len(s)+1)
		p = append(append(p, s...), 0)
		return uint32(len(p)), p, nil
	case tags.Undefined:
		b, ok := octets(v)
		if !ok {
			return 0, nil, invalid()
		}
		return uint32(len(b)), append([]byte(nil), b...), nil
	case tags.Byte, tags.Short, tags.Long, tags.SLong:
		vals, ok := integers(v)
		if !ok {
			return 0, nil, invalid()
		}
		lo, hi := intRange(typ)
		p = make([]byte, 0, len(vals)*typ.Size())
		for _, x := range vals {
			if x < lo || x > hi {
				return 0, nil, fmt.Errorf("%w: %d out of range for %v", ErrInvalidValue, x, typ)
			}
			switch typ {
			case tags.Byte:
				p = append(p, byte(x))
			case tags.Short:
				p = be.AppendUint16(p, uint16(x))
			case tags.Long:
				p = be.AppendUint32(p, uint32(x))
			case tags.SLong:
				p = be.AppendUint32(p, uint32(int32(x)))
			}
		}
		return uint32(len(vals)), p, nil
	case tags.Rational, tags.SRational:
		pairs, ok := fractions(v)
		if !ok {
			return 0, nil, invalid()
		}
		lo, hi := intRange(typ)
		p = make([]byte, 0, len(pairs)*8)
		for _, f := range pairs {
			for _, x := range f {
				if x < lo || x > hi {
					return 0, nil, fmt.Errorf("%w: %d/%d out of range for %v", ErrInvalidValue, f[0], f[1], typ)
				}
				if typ == tags.SRational {
					p = be.AppendUint32(p, uint32(int32(x)))
				} else {
					p = be.AppendUint32(p, uint32(x))
				}
			}
		}
		return uint32(len(pairs)), p, nil
	}
	return 0, nil, &UnsupportedTypeError{Type: typ}
}

// decodeValue decodes count elements of type typ from p, which holds
// exactly count*typ.Size() bytes. A single numeric element is returned
// as a scalar.
func decodeValue(order binary.ByteOrder, typ tags.Type, count uint32, p []byte) any {
	n := int(count)
	switch typ {
	case tags.Ascii:
		if n == 0 {
			return ""
		}
		return string(p[:n-1])
	case tags.Undefined:
		return append([]byte{}, p...)
	case tags.Byte:
		if n == 1 {
			return p[0]
		}
		return append([]byte{}, p...)
	case tags.Short:
		v := make([]uint16, n)
		for i := range v {
			v[i] = order.Uint16(p[2*i:])
		}
		if n == 1 {
			return v[0]
		}
		return v
	case tags.Long:
		v := make([]uint32, n)
		for i := range v {
			v[i] = order.Uint32(p[4*i:])
		}
		if n == 1 {
			return v[0]
		}
		return v
	case tags.SLong:
		v := make([]int32, n)
		for i := range v {
			v[i] = int32(order.Uint32(p[4*i:]))
		}
		if n == 1 {
			return v[0]
		}
		return v
	case tags.Rational:
		v := make([]Rational, n)
		for i := range v {
			v[i] = Rational{order.Uint32(p[8*i:]), order.Uint32(p[8*i+4:])}
		}
		if n == 1 {
			return v[0]
		}
		return v
	case tags.SRational:
		v := make([]SRational, n)
		for i := range v {
			v[i] = SRational{int32(order.Uint32(p[8*i:])), int32(order.Uint32(p[8*i+4:]))}
		}
		if n == 1 {
			return v[0]
		}
		return v
	}
	panic("exif: decodeValue called with unsupported type " + typ.String())
}

// decodable reports whether the reader knows how to decode typ.
func decodable(typ tags.Type) bool {
	switch typ {
	case tags.Byte, tags.Ascii, tags.Short, tags.Long, tags.Rational,
		tags.Undefined, tags.SLong, tags.SRational:
		return true
	}
	return false
}

// fitsInline reports whether count elements of typ are stored in the
// 4-byte value field of an IFD entry.
func fitsInline(typ tags.Type, count uint32) bool {
	switch typ {
	case tags.Rational, tags.SRational:
		return false
	}
	return uint64(count)*uint64(typ.Size()) <= 4
}

// Uint returns v as an unsigned integer if it is a single
// unsigned-integer tag value.
func Uint(v any) (uint32, bool) {
	switch v := v.(type) {
	case uint8:
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case uint32:
		return v, true
	}
	return 0, false
}
