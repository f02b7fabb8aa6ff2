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

// charconv is a command-line front end for the conversion library.
// It formats values given on the command line and can cross-check the
// shortest formatter against the Go runtime over random bit patterns.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"charconv.io/charconv/go/charconv"
	"charconv.io/charconv/go/log"
)

var (
	formatName string
	precision  int
	bitSize    int

	count int
	seed  int64
)

var root = &cobra.Command{
	Use:          "charconv",
	Short:        "Convert floating-point values to text.",
	SilenceUsage: true,
}

var formatCmd = &cobra.Command{
	Use:   "format <value> ...",
	Short: "Format each value with the selected layout.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFormat,
}

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Compare shortest output against the Go runtime over random bit patterns.",
	RunE:  runCrosscheck,
}

func parseFormat(name string) (charconv.Format, error) {
	switch name {
	case "general":
		return charconv.General, nil
	case "scientific", "sci":
		return charconv.Scientific, nil
	case "fixed":
		return charconv.Fixed, nil
	case "hex":
		return charconv.Hex, nil
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

func runFormat(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(formatName)
	if err != nil {
		return err
	}
	if bitSize != 32 && bitSize != 64 {
		return fmt.Errorf("bit size must be 32 or 64, got %d", bitSize)
	}
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, bitSize)
		if err != nil {
			return fmt.Errorf("cannot parse %q: %w", arg, err)
		}
		var text string
		if bitSize == 32 {
			text = charconv.FormatFloat32(float32(v), format, precision)
		} else {
			text = charconv.FormatFloat(v, format, precision)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	return nil
}

func runCrosscheck(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewSource(seed))
	mismatches := 0
	checked := 0
	for checked < count {
		bits := rng.Uint64()
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
			continue
		}
		checked++
		got := charconv.FormatFloat(v, charconv.Scientific, -1)
		want := strconv.FormatFloat(v, 'e', -1, 64)
		if got != want {
			mismatches++
			log.Errorf("bits %#x: got %s, want %s", bits, got, want)
			continue
		}
		if log.V(2) {
			log.Infof("bits %#x: %s", bits, got)
		}
	}
	log.Infof("checked %d values, %d mismatches", checked, mismatches)
	if mismatches > 0 {
		return fmt.Errorf("%d mismatches in %d values", mismatches, checked)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d values\n", checked)
	return nil
}

func main() {
	defer log.Flush()

	log.RegisterFlags(root.PersistentFlags())
	formatCmd.Flags().StringVar(&formatName, "format", "general", "output layout: general, scientific, fixed or hex")
	formatCmd.Flags().IntVar(&precision, "precision", -1, "fractional digits (significant digits for general, nibbles for hex); -1 for the shortest round-trip form")
	formatCmd.Flags().IntVar(&bitSize, "bits", 64, "float width: 32 or 64")
	crosscheckCmd.Flags().IntVar(&count, "count", 1000000, "number of random values to check")
	crosscheckCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	root.AddCommand(formatCmd, crosscheckCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
