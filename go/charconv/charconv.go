/*
Copyright 2024 The Charconv Authors.

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

// Package charconv converts IEEE-754 binary32 and binary64 values to
// their textual forms without allocating.
//
// The shortest mode (precision -1) produces the minimal digit string
// that parses back to exactly the input value; digits are found with
// the Dragonbox algorithm and emitted with Anhalt-style multiply-shift
// extraction. Four layouts are supported: scientific, fixed, hexfloat
// and general. Output is locale-independent ASCII.
package charconv

import (
	"errors"
	"math"

	"charconv.io/charconv/go/charconv/dragonbox"
	"charconv.io/charconv/go/hack"
)

// Format selects the output layout.
type Format uint8

const (
	// General uses scientific layout unless the decimal exponent is in
	// [-4, 0) for shortest output (or [-4, max(precision, 1)) with an
	// explicit precision), where fixed layout is used.
	General Format = iota
	// Scientific is d.ddde±EE with a two-digit exponent, three digits
	// for |exponent| >= 100.
	Scientific
	// Fixed is ddd.ddd with no exponent suffix.
	Fixed
	// Hex is (0|1).hhhp±E with raw mantissa nibbles and a binary
	// exponent in decimal. Rounding to a precision can carry into the
	// integer digit (2p+0).
	Hex
)

var (
	// ErrOutOfRange is returned when the output does not fit in the
	// destination buffer. The buffer is left untouched.
	ErrOutOfRange = errors.New("charconv: buffer too small")
	// ErrInvalidArgument is returned for an unknown format or a
	// precision below -1.
	ErrInvalidArgument = errors.New("charconv: invalid argument")
)

// maxDigits64 is the longest shortest-form significand: 17 digits for
// binary64 (9 for binary32).
const maxDigits64 = 17

// Write formats v into dst and returns the number of bytes written.
// prec -1 selects the shortest round-trip form; prec >= 0 the exact
// number of fractional digits (significand nibbles for Hex; for
// General, at most max(prec, 1) significant digits with trailing zeros
// removed). On ErrOutOfRange dst is untouched.
func Write(dst []byte, v float64, format Format, prec int) (int, error) {
	if prec < -1 || format > Hex {
		return 0, ErrInvalidArgument
	}
	return write64(dst, math.Float64bits(v), format, prec)
}

// Write32 is Write for binary32 values; the conversion is native, not
// a widening to binary64.
func Write32(dst []byte, v float32, format Format, prec int) (int, error) {
	if prec < -1 || format > Hex {
		return 0, ErrInvalidArgument
	}
	return write32(dst, math.Float32bits(v), format, prec)
}

func write64(dst []byte, bits uint64, format Format, prec int) (int, error) {
	neg := bits>>63 != 0
	expField := int(bits>>52) & 0x7ff
	sigField := bits & (1<<52 - 1)

	if expField == 0x7ff {
		return writeNonFinite(dst, neg, sigField != 0, sigField>>51 != 0)
	}
	if format == Hex {
		return writeHex64(dst, neg, sigField, expField, prec)
	}
	if expField == 0 && sigField == 0 {
		return writeZero(dst, neg, format, prec)
	}

	sig, exp := dragonbox.ToDecimal64(bits)
	var scratch [24]byte
	n, x := printSignificand64(scratch[:], sig, exp)

	if prec < 0 {
		return shapeShortest(dst, neg, scratch[:n], x, format)
	}
	return shapePrecision(dst, neg, scratch[:n], x, format, prec)
}

func write32(dst []byte, bits uint32, format Format, prec int) (int, error) {
	neg := bits>>31 != 0
	expField := int(bits>>23) & 0xff
	sigField := bits & (1<<23 - 1)

	if expField == 0xff {
		return writeNonFinite(dst, neg, sigField != 0, sigField>>22 != 0)
	}
	if format == Hex {
		return writeHex32(dst, neg, sigField, expField, prec)
	}
	if expField == 0 && sigField == 0 {
		return writeZero(dst, neg, format, prec)
	}

	sig, exp := dragonbox.ToDecimal32(bits)
	var scratch [16]byte
	n, x := print9Digits(scratch[:], sig, exp)

	if prec < 0 {
		return shapeShortest(dst, neg, scratch[:n], x, format)
	}
	return shapePrecision(dst, neg, scratch[:n], x, format, prec)
}

// writeNonFinite emits inf, nan, nan(ind) and nan(snan) forms, matching
// the spellings of mature C runtimes. Precision does not apply.
func writeNonFinite(dst []byte, neg, isNaN, isQuiet bool) (int, error) {
	var text string
	switch {
	case !isNaN:
		if neg {
			text = "-inf"
		} else {
			text = "inf"
		}
	case isQuiet:
		if neg {
			text = "-nan(ind)"
		} else {
			text = "nan"
		}
	default:
		if neg {
			text = "-nan(snan)"
		} else {
			text = "nan(snan)"
		}
	}
	if len(text) > len(dst) {
		return 0, ErrOutOfRange
	}
	return copy(dst, text), nil
}

// writeZero emits ±0 with the sign preserved: 0e+00 for scientific and
// general, 0 for fixed, zero padded when a precision is given (except
// for general, which stays 0e+00).
func writeZero(dst []byte, neg bool, format Format, prec int) (int, error) {
	pad := 0
	if prec > 0 && format != General {
		pad = 1 + prec
	}
	need := 1 + pad
	if format != Fixed {
		need += 4 // e+00
	}
	if neg {
		need++
	}
	if need > len(dst) {
		return 0, ErrOutOfRange
	}
	pos := writeSign(dst, neg)
	dst[pos] = '0'
	pos++
	if pad > 0 {
		dst[pos] = '.'
		pos++
		for i := 0; i < prec; i++ {
			dst[pos] = '0'
			pos++
		}
	}
	if format != Fixed {
		pos += copy(dst[pos:], "e+00")
	}
	return pos, nil
}

// appendBound is a conservative output size for AppendFloat growth.
func appendBound(format Format, prec int) int {
	p := prec
	if p < 0 {
		p = maxDigits64
	}
	switch format {
	case Fixed, General:
		// Sign, 309 integer digits, point, leading fraction zeros and
		// digits or padding.
		return 312 + p + 341
	default:
		return p + 12
	}
}

// AppendFloat appends the formatted v to dst and returns the extended
// slice, growing it as needed. Invalid arguments append nothing.
func AppendFloat(dst []byte, v float64, format Format, prec int) []byte {
	if n, err := Write(dst[len(dst):cap(dst)], v, format, prec); err == nil {
		return dst[:len(dst)+n]
	} else if err == ErrInvalidArgument {
		return dst
	}
	grown := append(dst, make([]byte, appendBound(format, prec))...)[:len(dst)]
	n, _ := Write(grown[len(dst):cap(grown)], v, format, prec)
	return grown[:len(dst)+n]
}

// AppendFloat32 is AppendFloat for binary32 values.
func AppendFloat32(dst []byte, v float32, format Format, prec int) []byte {
	if n, err := Write32(dst[len(dst):cap(dst)], v, format, prec); err == nil {
		return dst[:len(dst)+n]
	} else if err == ErrInvalidArgument {
		return dst
	}
	grown := append(dst, make([]byte, appendBound(format, prec))...)[:len(dst)]
	n, _ := Write32(grown[len(dst):cap(grown)], v, format, prec)
	return grown[:len(dst)+n]
}

// FormatFloat returns the formatted v as a string, or "" for invalid
// arguments.
func FormatFloat(v float64, format Format, prec int) string {
	buf := AppendFloat(nil, v, format, prec)
	return hack.String(buf)
}

// FormatFloat32 is FormatFloat for binary32 values.
func FormatFloat32(v float32, format Format, prec int) string {
	buf := AppendFloat32(nil, v, format, prec)
	return hack.String(buf)
}
