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

package charconv

// The shaper turns the emitted digits and their scientific exponent
// into the final layout. The scratch buffer from the digit emitter
// holds "d.ddd..." with the decimal point already placed after the
// leading digit; scientific output copies it verbatim, the other
// layouts index past the point.

// expLen returns the byte length of the scientific exponent suffix:
// "e±EE" or "e±EEE".
func expLen(x int) int {
	if x <= -100 || x >= 100 {
		return 5
	}
	return 4
}

// writeSciExp writes the exponent suffix at dst[pos:], minimum two
// digits, three for |x| >= 100.
func writeSciExp(dst []byte, pos, x int) int {
	dst[pos] = 'e'
	if x < 0 {
		dst[pos+1] = '-'
		x = -x
	} else {
		dst[pos+1] = '+'
	}
	pos += 2
	if x >= 100 {
		// d1 = x / 10, d2 = x % 10; 6554 = ceil(2^16 / 10)
		prod := uint32(x) * 6554
		d1 := prod >> 16
		d2 := (uint32(uint16(prod)) * 5) >> 15
		print2Digits(dst, pos, d1)
		dst[pos+2] = byte('0' + d2)
		return pos + 3
	}
	print2Digits(dst, pos, uint32(x))
	return pos + 2
}

// writeSign writes a leading '-' when neg.
func writeSign(dst []byte, neg bool) int {
	if neg {
		dst[0] = '-'
		return 1
	}
	return 0
}

// writeSciScratch copies the emitter scratch ("d.ddd") and appends the
// exponent; the shortest scientific path.
func writeSciScratch(dst []byte, neg bool, scratch []byte, x int) (int, error) {
	need := len(scratch) + expLen(x)
	if neg {
		need++
	}
	if need > len(dst) {
		return 0, ErrOutOfRange
	}
	pos := writeSign(dst, neg)
	pos += copy(dst[pos:], scratch)
	return writeSciExp(dst, pos, x), nil
}

// extractDigits copies the pure digits out of the emitter scratch,
// skipping the decimal point.
func extractDigits(digs []byte, scratch []byte) int {
	digs[0] = scratch[0]
	if len(scratch) == 1 {
		return 1
	}
	return 1 + copy(digs[1:], scratch[2:])
}

// roundDigits rounds digs[:n] to keep significant digits, half to
// even against the dropped tail. It returns the new digit count and
// exponent; a zero count means the value rounded to zero.
func roundDigits(digs []byte, n, x, keep int) (int, int) {
	if keep >= n {
		return n, x
	}
	if keep <= 0 {
		// Either zero or a single unit at the kept position. An exact
		// half (lone '5') ties to the even zero.
		if keep == 0 && (digs[0] > '5' || (digs[0] == '5' && n > 1)) {
			digs[0] = '1'
			return 1, x + 1
		}
		return 0, x
	}
	up := false
	switch {
	case digs[keep] > '5':
		up = true
	case digs[keep] == '5':
		for i := keep + 1; i < n; i++ {
			if digs[i] != '0' {
				up = true
				break
			}
		}
		if !up && (digs[keep-1]-'0')&1 != 0 {
			up = true
		}
	}
	if !up {
		return keep, x
	}
	for i := keep - 1; i >= 0; i-- {
		if digs[i] != '9' {
			digs[i]++
			return keep, x
		}
		digs[i] = '0'
	}
	digs[0] = '1'
	return keep, x + 1
}

// writeSciDigits writes digs[:n] in scientific layout with exactly
// total significand digits, zero padded.
func writeSciDigits(dst []byte, neg bool, digs []byte, n, x, total int) (int, error) {
	need := 1 + expLen(x)
	if total > 1 {
		need += 1 + (total - 1)
	}
	if neg {
		need++
	}
	if need > len(dst) {
		return 0, ErrOutOfRange
	}
	pos := writeSign(dst, neg)
	dst[pos] = digs[0]
	pos++
	if total > 1 {
		dst[pos] = '.'
		pos++
		pos += copy(dst[pos:], digs[1:n])
		for i := n; i < total; i++ {
			dst[pos] = '0'
			pos++
		}
	}
	return writeSciExp(dst, pos, x), nil
}

// writeFixedDigits writes digs[:n] in fixed layout. frac < 0 prints
// exactly the digits present; frac >= 0 pads the fraction with zeros
// to frac digits (the digits are assumed already rounded, so none are
// dropped here). A zero n stands for a rounded-away value.
func writeFixedDigits(dst []byte, neg bool, digs []byte, n, x, frac int) (int, error) {
	if n == 0 {
		digs[0] = '0'
		n = 1
		x = 0
	}
	var ipLen, fpZeros, fpDigits int
	if x >= 0 {
		ipLen = x + 1
		if n > x+1 {
			fpDigits = n - (x + 1)
		}
	} else {
		ipLen = 1
		fpZeros = -x - 1
		fpDigits = n
	}
	fpLen := fpZeros + fpDigits
	if frac >= 0 {
		fpLen = frac
	}
	need := ipLen + fpLen
	if fpLen > 0 {
		need++
	}
	if neg {
		need++
	}
	if need > len(dst) {
		return 0, ErrOutOfRange
	}

	pos := writeSign(dst, neg)
	if x >= 0 {
		m := n
		if m > x+1 {
			m = x + 1
		}
		pos += copy(dst[pos:], digs[:m])
		for i := m; i <= x; i++ {
			dst[pos] = '0'
			pos++
		}
		if fpLen == 0 {
			return pos, nil
		}
		dst[pos] = '.'
		pos++
		pos += copy(dst[pos:], digs[m:n])
		for i := fpDigits; i < fpLen; i++ {
			dst[pos] = '0'
			pos++
		}
		return pos, nil
	}

	dst[pos] = '0'
	pos++
	if fpLen == 0 {
		return pos, nil
	}
	dst[pos] = '.'
	pos++
	for i := 0; i < fpZeros; i++ {
		dst[pos] = '0'
		pos++
	}
	pos += copy(dst[pos:], digs[:n])
	for i := fpZeros + n; i < fpLen; i++ {
		dst[pos] = '0'
		pos++
	}
	return pos, nil
}

// shapeShortest finalizes a shortest-form result from the emitter
// scratch for the scientific, fixed and general layouts.
func shapeShortest(dst []byte, neg bool, scratch []byte, x int, format Format) (int, error) {
	switch format {
	case Scientific:
		return writeSciScratch(dst, neg, scratch, x)
	case Fixed:
		var digs [maxDigits64]byte
		n := extractDigits(digs[:], scratch)
		return writeFixedDigits(dst, neg, digs[:], n, x, -1)
	default: // General
		if x >= -4 && x < 0 {
			var digs [maxDigits64]byte
			n := extractDigits(digs[:], scratch)
			return writeFixedDigits(dst, neg, digs[:], n, x, -1)
		}
		return writeSciScratch(dst, neg, scratch, x)
	}
}

// shapePrecision finalizes a result with an explicit precision by
// rounding the shortest digits half-to-even and padding with zeros.
func shapePrecision(dst []byte, neg bool, scratch []byte, x int, format Format, prec int) (int, error) {
	var digs [maxDigits64]byte
	n := extractDigits(digs[:], scratch)

	switch format {
	case Scientific:
		n, x = roundDigits(digs[:], n, x, prec+1)
		return writeSciDigits(dst, neg, digs[:], n, x, prec+1)

	case Fixed:
		n, x = roundDigits(digs[:], n, x, x+prec+1)
		return writeFixedDigits(dst, neg, digs[:], n, x, prec)

	default: // General: %g selection with P = max(prec, 1)
		p := prec
		if p < 1 {
			p = 1
		}
		n, x = roundDigits(digs[:], n, x, p)
		for n > 1 && digs[n-1] == '0' {
			n--
		}
		if x >= -4 && x < p {
			return writeFixedDigits(dst, neg, digs[:], n, x, -1)
		}
		return writeSciDigits(dst, neg, digs[:], n, x, n)
	}
}
