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

// Digit generation is James Anhalt's itoa scheme: for a significand n
// of known digit band, pick y with floor(10^k * y / 2^32) = n; the top
// bits of y are the leading digits and each multiplication of the low
// 32 bits by 100 rolls the next two digits into the top.
//
// The head table emits the leading digit together with a decimal point;
// the point is overwritten later when the target format does not want
// one. Trailing zeros are stripped as digits are emitted: once the low
// bits of the running product drop below 2^32/10^m, the remaining m
// digits are all zero, and the final written pair is trimmed with a
// single buf[n] > '0' test.

const radix100Table = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

const radix100HeadTable = "" +
	"0.1.2.3.4.5.6.7.8.9." +
	"1.1.1.1.1.1.1.1.1.1." +
	"2.2.2.2.2.2.2.2.2.2." +
	"3.3.3.3.3.3.3.3.3.3." +
	"4.4.4.4.4.4.4.4.4.4." +
	"5.5.5.5.5.5.5.5.5.5." +
	"6.6.6.6.6.6.6.6.6.6." +
	"7.7.7.7.7.7.7.7.7.7." +
	"8.8.8.8.8.8.8.8.8.8." +
	"9.9.9.9.9.9.9.9.9.9."

// Thresholds for the all-remaining-digits-zero test: 2^32 / 10^m.
const (
	tailZero2 = (1 << 32) / 100
	tailZero4 = (1 << 32) / 10000
	tailZero6 = (1 << 32) / 1000000
)

func print2Digits(buf []byte, pos int, n uint32) {
	buf[pos] = radix100Table[n*2]
	buf[pos+1] = radix100Table[n*2+1]
}

func printHead(buf []byte, pos int, n uint32) {
	buf[pos] = radix100HeadTable[n*2]
	buf[pos+1] = radix100HeadTable[n*2+1]
}

// print9Digits writes up to 9 significand digits as "d.ddd" with
// trailing zeros stripped, returning the number of bytes written and
// the updated decimal exponent. The significand of a binary32 shortest
// result is 6-9 digits (fewer for subnormals); a 9-digit significand
// never has trailing zeros.
func print9Digits(buf []byte, s32 uint32, exp int) (int, int) {
	switch {
	case s32 >= 100000000:
		// 9 digits. 1441151882 = ceil(2^57 / 10^8) + 1
		prod := uint64(s32) * 1441151882 >> 25
		printHead(buf, 0, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 2, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 4, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 6, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 8, uint32(prod>>32))
		return 10, exp + 8

	case s32 >= 1000000:
		// 7 or 8 digits. 281474978 = ceil(2^48 / 10^6) + 1
		prod := uint64(s32) * 281474978 >> 16
		headDigits := uint32(prod >> 32)
		if headDigits >= 10 {
			exp += 7
		} else {
			exp += 6
		}
		printHead(buf, 0, headDigits)
		// May be overwritten by the next pair; harmless.
		buf[2] = radix100Table[headDigits*2+1]

		if uint32(prod) <= tailZero6 {
			// Only the head digits are nonzero.
			if headDigits >= 10 && buf[2] > '0' {
				return 3, exp
			}
			return 1, exp
		}
		pos := 0
		if headDigits >= 10 {
			pos = 1
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+2, uint32(prod>>32))
		if uint32(prod) <= tailZero4 {
			if buf[pos+3] > '0' {
				return pos + 4, exp
			}
			return pos + 3, exp
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+4, uint32(prod>>32))
		if uint32(prod) <= tailZero2 {
			if buf[pos+5] > '0' {
				return pos + 6, exp
			}
			return pos + 5, exp
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+6, uint32(prod>>32))
		if buf[pos+7] > '0' {
			return pos + 8, exp
		}
		return pos + 7, exp

	case s32 >= 10000:
		// 5 or 6 digits. 429497 = ceil(2^32 / 10^4)
		prod := uint64(s32) * 429497
		headDigits := uint32(prod >> 32)
		if headDigits >= 10 {
			exp += 5
		} else {
			exp += 4
		}
		printHead(buf, 0, headDigits)
		buf[2] = radix100Table[headDigits*2+1]

		if uint32(prod) <= tailZero4 {
			if headDigits >= 10 && buf[2] > '0' {
				return 3, exp
			}
			return 1, exp
		}
		pos := 0
		if headDigits >= 10 {
			pos = 1
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+2, uint32(prod>>32))
		if uint32(prod) <= tailZero2 {
			if buf[pos+3] > '0' {
				return pos + 4, exp
			}
			return pos + 3, exp
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+4, uint32(prod>>32))
		if buf[pos+5] > '0' {
			return pos + 6, exp
		}
		return pos + 5, exp

	case s32 >= 100:
		// 3 or 4 digits. 42949673 = ceil(2^32 / 100)
		prod := uint64(s32) * 42949673
		headDigits := uint32(prod >> 32)
		if headDigits >= 10 {
			exp += 3
		} else {
			exp += 2
		}
		printHead(buf, 0, headDigits)
		buf[2] = radix100Table[headDigits*2+1]

		if uint32(prod) <= tailZero2 {
			if headDigits >= 10 && buf[2] > '0' {
				return 3, exp
			}
			return 1, exp
		}
		pos := 0
		if headDigits >= 10 {
			pos = 1
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+2, uint32(prod>>32))
		if buf[pos+3] > '0' {
			return pos + 4, exp
		}
		return pos + 3, exp

	default:
		// 1 or 2 digits.
		if s32 >= 10 {
			exp++
		}
		printHead(buf, 0, s32)
		buf[2] = radix100Table[s32*2+1]
		if s32 >= 10 && buf[2] > '0' {
			return 3, exp
		}
		return 1, exp
	}
}

// printSignificand64 writes a binary64 shortest significand (1-17
// digits) as "d.ddd" with trailing zeros stripped, by splitting it into
// a 9-digit head block and an 8-digit tail block.
func printSignificand64(buf []byte, sig uint64, exp int) (int, int) {
	var firstBlock, secondBlock uint32
	noSecondBlock := true
	if sig >= 100000000 {
		firstBlock = uint32(sig / 100000000)
		secondBlock = uint32(sig) - firstBlock*100000000
		exp += 8
		noSecondBlock = secondBlock == 0
	} else {
		firstBlock = uint32(sig)
	}

	if noSecondBlock {
		return print9Digits(buf, firstBlock, exp)
	}

	// With a nonzero tail block the head block has no stripping to do.
	var pos int
	switch {
	case firstBlock >= 100000000:
		// 17 digits in total; no trailing zeros anywhere.
		prod := uint64(firstBlock) * 1441151882 >> 25
		printHead(buf, 0, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 2, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 4, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 6, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 8, uint32(prod>>32))

		prod = uint64(secondBlock)*281474978>>16 + 1
		print2Digits(buf, 10, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 12, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 14, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, 16, uint32(prod>>32))
		return 18, exp + 8

	case firstBlock >= 1000000:
		prod := uint64(firstBlock) * 281474978 >> 16
		headDigits := uint32(prod >> 32)
		printHead(buf, 0, headDigits)
		buf[2] = radix100Table[headDigits*2+1]
		if headDigits >= 10 {
			exp += 7
			pos = 1
		} else {
			exp += 6
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+2, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+4, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+6, uint32(prod>>32))
		pos += 8

	case firstBlock >= 10000:
		prod := uint64(firstBlock) * 429497
		headDigits := uint32(prod >> 32)
		printHead(buf, 0, headDigits)
		buf[2] = radix100Table[headDigits*2+1]
		if headDigits >= 10 {
			exp += 5
			pos = 1
		} else {
			exp += 4
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+2, uint32(prod>>32))
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+4, uint32(prod>>32))
		pos += 6

	case firstBlock >= 100:
		prod := uint64(firstBlock) * 42949673
		headDigits := uint32(prod >> 32)
		printHead(buf, 0, headDigits)
		buf[2] = radix100Table[headDigits*2+1]
		if headDigits >= 10 {
			exp += 3
			pos = 1
		} else {
			exp += 2
		}
		prod = uint64(uint32(prod)) * 100
		print2Digits(buf, pos+2, uint32(prod>>32))
		pos += 4

	default:
		printHead(buf, 0, firstBlock)
		buf[2] = radix100Table[firstBlock*2+1]
		if firstBlock >= 10 {
			exp++
			pos = 3
		} else {
			pos = 2
		}
	}

	// Tail block: 8 digits, possibly with trailing zeros.
	prod := uint64(secondBlock)*281474978>>16 + 1
	print2Digits(buf, pos, uint32(prod>>32))
	if uint32(prod) <= tailZero6 {
		if buf[pos+1] > '0' {
			return pos + 2, exp
		}
		return pos + 1, exp
	}
	prod = uint64(uint32(prod)) * 100
	print2Digits(buf, pos+2, uint32(prod>>32))
	if uint32(prod) <= tailZero4 {
		if buf[pos+3] > '0' {
			return pos + 4, exp
		}
		return pos + 3, exp
	}
	prod = uint64(uint32(prod)) * 100
	print2Digits(buf, pos+4, uint32(prod>>32))
	if uint32(prod) <= tailZero2 {
		if buf[pos+5] > '0' {
			return pos + 6, exp
		}
		return pos + 5, exp
	}
	prod = uint64(uint32(prod)) * 100
	print2Digits(buf, pos+6, uint32(prod>>32))
	if buf[pos+7] > '0' {
		return pos + 8, exp
	}
	return pos + 7, exp
}
