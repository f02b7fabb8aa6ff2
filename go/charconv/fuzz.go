//go:build gofuzz
// +build gofuzz

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

import (
	"math"
	"strconv"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// FuzzWrite drives Write across all formats and checks that the
// general shortest form round-trips.
func FuzzWrite(data []byte) int {
	f := fuzz.NewConsumer(data)
	bits, err := f.GetUint64()
	if err != nil {
		return 0
	}
	prec, err := f.GetInt()
	if err != nil {
		return 0
	}
	prec = prec%40 - 1

	var buf [4096]byte
	v := math.Float64frombits(bits)
	for _, format := range []Format{General, Scientific, Fixed, Hex} {
		if _, err := Write(buf[:], v, format, prec); err != nil {
			return 0
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 1
	}
	n, err := Write(buf[:], v, General, -1)
	if err != nil {
		panic(err)
	}
	back, err := strconv.ParseFloat(string(buf[:n]), 64)
	if err != nil {
		panic(err)
	}
	if math.Float64bits(back) != bits {
		panic("round trip failed")
	}
	return 1
}
