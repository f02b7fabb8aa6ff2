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

// goldenCases pins the precision behavior: shortest digits rounded
// half-to-even and zero padded to the requested count.
var goldenCases = []struct {
	v      float64
	format Format
	prec   int
	want   string
}{
	{0.0, Scientific, -1, "0e+00"},
	{0.0, Scientific, 0, "0e+00"},
	{0.0, Scientific, 2, "0.00e+00"},
	{0.0, Scientific, 6, "0.000000e+00"},
	{0.0, Fixed, -1, "0"},
	{0.0, Fixed, 0, "0"},
	{0.0, Fixed, 2, "0.00"},
	{0.0, Fixed, 6, "0.000000"},
	{0.0, General, -1, "0e+00"},
	{0.0, General, 0, "0e+00"},
	{0.0, General, 2, "0e+00"},
	{0.0, General, 6, "0e+00"},
	{1.0, Scientific, -1, "1e+00"},
	{1.0, Scientific, 0, "1e+00"},
	{1.0, Scientific, 2, "1.00e+00"},
	{1.0, Scientific, 6, "1.000000e+00"},
	{1.0, Fixed, -1, "1"},
	{1.0, Fixed, 0, "1"},
	{1.0, Fixed, 2, "1.00"},
	{1.0, Fixed, 6, "1.000000"},
	{1.0, General, -1, "1e+00"},
	{1.0, General, 0, "1"},
	{1.0, General, 2, "1"},
	{1.0, General, 6, "1"},
	{-1.0, Scientific, -1, "-1e+00"},
	{-1.0, Scientific, 0, "-1e+00"},
	{-1.0, Scientific, 2, "-1.00e+00"},
	{-1.0, Scientific, 6, "-1.000000e+00"},
	{-1.0, Fixed, -1, "-1"},
	{-1.0, Fixed, 0, "-1"},
	{-1.0, Fixed, 2, "-1.00"},
	{-1.0, Fixed, 6, "-1.000000"},
	{-1.0, General, -1, "-1e+00"},
	{-1.0, General, 0, "-1"},
	{-1.0, General, 2, "-1"},
	{-1.0, General, 6, "-1"},
	{1.5, Scientific, -1, "1.5e+00"},
	{1.5, Scientific, 0, "2e+00"},
	{1.5, Scientific, 2, "1.50e+00"},
	{1.5, Scientific, 6, "1.500000e+00"},
	{1.5, Fixed, -1, "1.5"},
	{1.5, Fixed, 0, "2"},
	{1.5, Fixed, 2, "1.50"},
	{1.5, Fixed, 6, "1.500000"},
	{1.5, General, -1, "1.5e+00"},
	{1.5, General, 0, "2"},
	{1.5, General, 2, "1.5"},
	{1.5, General, 6, "1.5"},
	{0.1, Scientific, -1, "1e-01"},
	{0.1, Scientific, 0, "1e-01"},
	{0.1, Scientific, 2, "1.00e-01"},
	{0.1, Scientific, 6, "1.000000e-01"},
	{0.1, Fixed, -1, "0.1"},
	{0.1, Fixed, 0, "0"},
	{0.1, Fixed, 2, "0.10"},
	{0.1, Fixed, 6, "0.100000"},
	{0.1, General, -1, "0.1"},
	{0.1, General, 0, "0.1"},
	{0.1, General, 2, "0.1"},
	{0.1, General, 6, "0.1"},
	{0.5, Scientific, -1, "5e-01"},
	{0.5, Scientific, 0, "5e-01"},
	{0.5, Scientific, 2, "5.00e-01"},
	{0.5, Scientific, 6, "5.000000e-01"},
	{0.5, Fixed, -1, "0.5"},
	{0.5, Fixed, 0, "0"},
	{0.5, Fixed, 2, "0.50"},
	{0.5, Fixed, 6, "0.500000"},
	{0.5, General, -1, "0.5"},
	{0.5, General, 0, "0.5"},
	{0.5, General, 2, "0.5"},
	{0.5, General, 6, "0.5"},
	{0.25, Scientific, -1, "2.5e-01"},
	{0.25, Scientific, 0, "2e-01"},
	{0.25, Scientific, 2, "2.50e-01"},
	{0.25, Scientific, 6, "2.500000e-01"},
	{0.25, Fixed, -1, "0.25"},
	{0.25, Fixed, 0, "0"},
	{0.25, Fixed, 2, "0.25"},
	{0.25, Fixed, 6, "0.250000"},
	{0.25, General, -1, "0.25"},
	{0.25, General, 0, "0.2"},
	{0.25, General, 2, "0.25"},
	{0.25, General, 6, "0.25"},
	{0.125, Scientific, -1, "1.25e-01"},
	{0.125, Scientific, 0, "1e-01"},
	{0.125, Scientific, 2, "1.25e-01"},
	{0.125, Scientific, 6, "1.250000e-01"},
	{0.125, Fixed, -1, "0.125"},
	{0.125, Fixed, 0, "0"},
	{0.125, Fixed, 2, "0.12"},
	{0.125, Fixed, 6, "0.125000"},
	{0.125, General, -1, "0.125"},
	{0.125, General, 0, "0.1"},
	{0.125, General, 2, "0.12"},
	{0.125, General, 6, "0.125"},
	{1.2345, Scientific, -1, "1.2345e+00"},
	{1.2345, Scientific, 0, "1e+00"},
	{1.2345, Scientific, 2, "1.23e+00"},
	{1.2345, Scientific, 6, "1.234500e+00"},
	{1.2345, Fixed, -1, "1.2345"},
	{1.2345, Fixed, 0, "1"},
	{1.2345, Fixed, 2, "1.23"},
	{1.2345, Fixed, 6, "1.234500"},
	{1.2345, General, -1, "1.2345e+00"},
	{1.2345, General, 0, "1"},
	{1.2345, General, 2, "1.2"},
	{1.2345, General, 6, "1.2345"},
	{-123.456, Scientific, -1, "-1.23456e+02"},
	{-123.456, Scientific, 0, "-1e+02"},
	{-123.456, Scientific, 2, "-1.23e+02"},
	{-123.456, Scientific, 6, "-1.234560e+02"},
	{-123.456, Fixed, -1, "-123.456"},
	{-123.456, Fixed, 0, "-123"},
	{-123.456, Fixed, 2, "-123.46"},
	{-123.456, Fixed, 6, "-123.456000"},
	{-123.456, General, -1, "-1.23456e+02"},
	{-123.456, General, 0, "-1e+02"},
	{-123.456, General, 2, "-1.2e+02"},
	{-123.456, General, 6, "-123.456"},
	{9.995, Scientific, -1, "9.995e+00"},
	{9.995, Scientific, 0, "1e+01"},
	{9.995, Scientific, 2, "1.00e+01"},
	{9.995, Scientific, 6, "9.995000e+00"},
	{9.995, Fixed, -1, "9.995"},
	{9.995, Fixed, 0, "10"},
	{9.995, Fixed, 2, "10.00"},
	{9.995, Fixed, 6, "9.995000"},
	{9.995, General, -1, "9.995e+00"},
	{9.995, General, 0, "1e+01"},
	{9.995, General, 2, "10"},
	{9.995, General, 6, "9.995"},
	{0.999999, Scientific, -1, "9.99999e-01"},
	{0.999999, Scientific, 0, "1e+00"},
	{0.999999, Scientific, 2, "1.00e+00"},
	{0.999999, Scientific, 6, "9.999990e-01"},
	{0.999999, Fixed, -1, "0.999999"},
	{0.999999, Fixed, 0, "1"},
	{0.999999, Fixed, 2, "1.00"},
	{0.999999, Fixed, 6, "0.999999"},
	{0.999999, General, -1, "0.999999"},
	{0.999999, General, 0, "1"},
	{0.999999, General, 2, "1"},
	{0.999999, General, 6, "0.999999"},
	{9.999999999999998, Scientific, -1, "9.999999999999998e+00"},
	{9.999999999999998, Scientific, 0, "1e+01"},
	{9.999999999999998, Scientific, 2, "1.00e+01"},
	{9.999999999999998, Scientific, 6, "1.000000e+01"},
	{9.999999999999998, Fixed, -1, "9.999999999999998"},
	{9.999999999999998, Fixed, 0, "10"},
	{9.999999999999998, Fixed, 2, "10.00"},
	{9.999999999999998, Fixed, 6, "10.000000"},
	{9.999999999999998, General, -1, "9.999999999999998e+00"},
	{9.999999999999998, General, 0, "1e+01"},
	{9.999999999999998, General, 2, "10"},
	{9.999999999999998, General, 6, "10"},
	{1e300, Scientific, -1, "1e+300"},
	{1e300, Scientific, 0, "1e+300"},
	{1e300, Scientific, 2, "1.00e+300"},
	{1e300, Scientific, 6, "1.000000e+300"},
	{1e300, General, -1, "1e+300"},
	{1e300, General, 0, "1e+300"},
	{1e300, General, 2, "1e+300"},
	{1e300, General, 6, "1e+300"},
	{1e-300, Scientific, -1, "1e-300"},
	{1e-300, Scientific, 0, "1e-300"},
	{1e-300, Scientific, 2, "1.00e-300"},
	{1e-300, Scientific, 6, "1.000000e-300"},
	{1e-300, Fixed, -1, "0.000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000001"},
	{1e-300, Fixed, 0, "0"},
	{1e-300, Fixed, 2, "0.00"},
	{1e-300, Fixed, 6, "0.000000"},
	{1e-300, General, -1, "1e-300"},
	{1e-300, General, 0, "1e-300"},
	{1e-300, General, 2, "1e-300"},
	{1e-300, General, 6, "1e-300"},
	{5e-324, Scientific, -1, "5e-324"},
	{5e-324, Scientific, 0, "5e-324"},
	{5e-324, Scientific, 2, "5.00e-324"},
	{5e-324, Scientific, 6, "5.000000e-324"},
	{5e-324, Fixed, -1, "0.000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000005"},
	{5e-324, Fixed, 0, "0"},
	{5e-324, Fixed, 2, "0.00"},
	{5e-324, Fixed, 6, "0.000000"},
	{5e-324, General, -1, "5e-324"},
	{5e-324, General, 0, "5e-324"},
	{5e-324, General, 2, "5e-324"},
	{5e-324, General, 6, "5e-324"},
	{0.0001234, Scientific, -1, "1.234e-04"},
	{0.0001234, Scientific, 0, "1e-04"},
	{0.0001234, Scientific, 2, "1.23e-04"},
	{0.0001234, Scientific, 6, "1.234000e-04"},
	{0.0001234, Fixed, -1, "0.0001234"},
	{0.0001234, Fixed, 0, "0"},
	{0.0001234, Fixed, 2, "0.00"},
	{0.0001234, Fixed, 6, "0.000123"},
	{0.0001234, General, -1, "0.0001234"},
	{0.0001234, General, 0, "0.0001"},
	{0.0001234, General, 2, "0.00012"},
	{0.0001234, General, 6, "0.0001234"},
	{2.5, Scientific, -1, "2.5e+00"},
	{2.5, Scientific, 0, "2e+00"},
	{2.5, Scientific, 2, "2.50e+00"},
	{2.5, Scientific, 6, "2.500000e+00"},
	{2.5, Fixed, -1, "2.5"},
	{2.5, Fixed, 0, "2"},
	{2.5, Fixed, 2, "2.50"},
	{2.5, Fixed, 6, "2.500000"},
	{2.5, General, -1, "2.5e+00"},
	{2.5, General, 0, "2"},
	{2.5, General, 2, "2.5"},
	{2.5, General, 6, "2.5"},
	{3.5, Scientific, -1, "3.5e+00"},
	{3.5, Scientific, 0, "4e+00"},
	{3.5, Scientific, 2, "3.50e+00"},
	{3.5, Scientific, 6, "3.500000e+00"},
	{3.5, Fixed, -1, "3.5"},
	{3.5, Fixed, 0, "4"},
	{3.5, Fixed, 2, "3.50"},
	{3.5, Fixed, 6, "3.500000"},
	{3.5, General, -1, "3.5e+00"},
	{3.5, General, 0, "4"},
	{3.5, General, 2, "3.5"},
	{3.5, General, 6, "3.5"},
	{0.05, Scientific, -1, "5e-02"},
	{0.05, Scientific, 0, "5e-02"},
	{0.05, Scientific, 2, "5.00e-02"},
	{0.05, Scientific, 6, "5.000000e-02"},
	{0.05, Fixed, -1, "0.05"},
	{0.05, Fixed, 0, "0"},
	{0.05, Fixed, 2, "0.05"},
	{0.05, Fixed, 6, "0.050000"},
	{0.05, General, -1, "0.05"},
	{0.05, General, 0, "0.05"},
	{0.05, General, 2, "0.05"},
	{0.05, General, 6, "0.05"},
	{0.15, Scientific, -1, "1.5e-01"},
	{0.15, Scientific, 0, "2e-01"},
	{0.15, Scientific, 2, "1.50e-01"},
	{0.15, Scientific, 6, "1.500000e-01"},
	{0.15, Fixed, -1, "0.15"},
	{0.15, Fixed, 0, "0"},
	{0.15, Fixed, 2, "0.15"},
	{0.15, Fixed, 6, "0.150000"},
	{0.15, General, -1, "0.15"},
	{0.15, General, 0, "0.2"},
	{0.15, General, 2, "0.15"},
	{0.15, General, 6, "0.15"},
	{1048576.0, Scientific, -1, "1.048576e+06"},
	{1048576.0, Scientific, 0, "1e+06"},
	{1048576.0, Scientific, 2, "1.05e+06"},
	{1048576.0, Scientific, 6, "1.048576e+06"},
	{1048576.0, Fixed, -1, "1048576"},
	{1048576.0, Fixed, 0, "1048576"},
	{1048576.0, Fixed, 2, "1048576.00"},
	{1048576.0, Fixed, 6, "1048576.000000"},
	{1048576.0, General, -1, "1.048576e+06"},
	{1048576.0, General, 0, "1e+06"},
	{1048576.0, General, 2, "1e+06"},
	{1048576.0, General, 6, "1.04858e+06"},
	{1.7976931348623157e308, Scientific, -1, "1.7976931348623157e+308"},
	{1.7976931348623157e308, Scientific, 0, "2e+308"},
	{1.7976931348623157e308, Scientific, 2, "1.80e+308"},
	{1.7976931348623157e308, Scientific, 6, "1.797693e+308"},
	{1.7976931348623157e308, General, -1, "1.7976931348623157e+308"},
	{1.7976931348623157e308, General, 0, "2e+308"},
	{1.7976931348623157e308, General, 2, "1.8e+308"},
	{1.7976931348623157e308, General, 6, "1.79769e+308"},
	{2.2250738585072014e-308, Scientific, -1, "2.2250738585072014e-308"},
	{2.2250738585072014e-308, Scientific, 0, "2e-308"},
	{2.2250738585072014e-308, Scientific, 2, "2.23e-308"},
	{2.2250738585072014e-308, Scientific, 6, "2.225074e-308"},
	{2.2250738585072014e-308, Fixed, -1, "0.000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000022250738585072014"},
	{2.2250738585072014e-308, Fixed, 0, "0"},
	{2.2250738585072014e-308, Fixed, 2, "0.00"},
	{2.2250738585072014e-308, Fixed, 6, "0.000000"},
	{2.2250738585072014e-308, General, -1, "2.2250738585072014e-308"},
	{2.2250738585072014e-308, General, 0, "2e-308"},
	{2.2250738585072014e-308, General, 2, "2.2e-308"},
	{2.2250738585072014e-308, General, 6, "2.22507e-308"},
	{42.0, Scientific, -1, "4.2e+01"},
	{42.0, Scientific, 0, "4e+01"},
	{42.0, Scientific, 2, "4.20e+01"},
	{42.0, Scientific, 6, "4.200000e+01"},
	{42.0, Fixed, -1, "42"},
	{42.0, Fixed, 0, "42"},
	{42.0, Fixed, 2, "42.00"},
	{42.0, Fixed, 6, "42.000000"},
	{42.0, General, -1, "4.2e+01"},
	{42.0, General, 0, "4e+01"},
	{42.0, General, 2, "42"},
	{42.0, General, 6, "42"},
	{1e16, Scientific, -1, "1e+16"},
	{1e16, Scientific, 0, "1e+16"},
	{1e16, Scientific, 2, "1.00e+16"},
	{1e16, Scientific, 6, "1.000000e+16"},
	{1e16, Fixed, -1, "10000000000000000"},
	{1e16, Fixed, 0, "10000000000000000"},
	{1e16, Fixed, 2, "10000000000000000.00"},
	{1e16, Fixed, 6, "10000000000000000.000000"},
	{1e16, General, -1, "1e+16"},
	{1e16, General, 0, "1e+16"},
	{1e16, General, 2, "1e+16"},
	{1e16, General, 6, "1e+16"},
	{123456789.0, Scientific, -1, "1.23456789e+08"},
	{123456789.0, Scientific, 0, "1e+08"},
	{123456789.0, Scientific, 2, "1.23e+08"},
	{123456789.0, Scientific, 6, "1.234568e+08"},
	{123456789.0, Fixed, -1, "123456789"},
	{123456789.0, Fixed, 0, "123456789"},
	{123456789.0, Fixed, 2, "123456789.00"},
	{123456789.0, Fixed, 6, "123456789.000000"},
	{123456789.0, General, -1, "1.23456789e+08"},
	{123456789.0, General, 0, "1e+08"},
	{123456789.0, General, 2, "1.2e+08"},
	{123456789.0, General, 6, "1.23457e+08"},
	{3.141592653589793, Scientific, -1, "3.141592653589793e+00"},
	{3.141592653589793, Scientific, 0, "3e+00"},
	{3.141592653589793, Scientific, 2, "3.14e+00"},
	{3.141592653589793, Scientific, 6, "3.141593e+00"},
	{3.141592653589793, Fixed, -1, "3.141592653589793"},
	{3.141592653589793, Fixed, 0, "3"},
	{3.141592653589793, Fixed, 2, "3.14"},
	{3.141592653589793, Fixed, 6, "3.141593"},
	{3.141592653589793, General, -1, "3.141592653589793e+00"},
	{3.141592653589793, General, 0, "3"},
	{3.141592653589793, General, 2, "3.1"},
	{3.141592653589793, General, 6, "3.14159"},
}
