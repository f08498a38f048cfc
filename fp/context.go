// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fp

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// =============================================================================
// Per-format constants
// =============================================================================

// Half precision (IEEE 754 binary16).
const (
	HalfEpsilon            = 0x1p-10
	HalfMinNormal          = 0x1p-14
	HalfMaxValue           = 65504
	HalfToleranceFactor    = 2
	HalfMaxIterations      = 300
	HalfIterationsPerRootS = 8
	HalfIterationCeiling   = 1 << 16
)

// Single precision (IEEE 754 binary32).
const (
	SingleEpsilon            = 0x1p-23
	SingleMinNormal          = 0x1p-126
	SingleMaxValue           = math.MaxFloat32
	SingleToleranceFactor    = 2
	SingleMaxIterations      = 300
	SingleIterationsPerRootS = 8
	SingleIterationCeiling   = 1 << 16
)

// Double precision (IEEE 754 binary64).
const (
	DoubleEpsilon            = 0x1p-52
	DoubleMinNormal          = 0x1p-1022
	DoubleMaxValue           = math.MaxFloat64
	DoubleToleranceFactor    = 2
	DoubleMaxIterations      = 500
	DoubleIterationsPerRootS = 10
	DoubleIterationCeiling   = 1 << 16
)

// Context holds the numeric limits of one floating-point format.
//
// The iteration cap of the series and continued-fraction evaluators grows
// with the square root of the shape parameter, because both need O(√s)
// terms when x is close to s. IterationCeiling bounds it regardless of s.
type Context struct {
	// Name is the format name as accepted by ParseContext.
	Name string

	// Bits is the storage width of the format.
	Bits int

	// Epsilon is the difference between 1 and the next representable value.
	Epsilon float64

	// MinNormal is the smallest positive normal magnitude.
	MinNormal float64

	// MaxValue is the largest finite magnitude.
	MaxValue float64

	// ToleranceFactor scales Epsilon into the convergence tolerance.
	ToleranceFactor float64

	// MaxIterations is the base iteration cap.
	MaxIterations int

	// IterationsPerRootS is added to the cap per unit of √s.
	IterationsPerRootS float64

	// IterationCeiling is the hard upper bound of IterationLimit.
	IterationCeiling int
}

// Supported formats. Should not be mutated.
var (
	Half = Context{
		Name:               "float16",
		Bits:               16,
		Epsilon:            HalfEpsilon,
		MinNormal:          HalfMinNormal,
		MaxValue:           HalfMaxValue,
		ToleranceFactor:    HalfToleranceFactor,
		MaxIterations:      HalfMaxIterations,
		IterationsPerRootS: HalfIterationsPerRootS,
		IterationCeiling:   HalfIterationCeiling,
	}

	Single = Context{
		Name:               "float32",
		Bits:               32,
		Epsilon:            SingleEpsilon,
		MinNormal:          SingleMinNormal,
		MaxValue:           SingleMaxValue,
		ToleranceFactor:    SingleToleranceFactor,
		MaxIterations:      SingleMaxIterations,
		IterationsPerRootS: SingleIterationsPerRootS,
		IterationCeiling:   SingleIterationCeiling,
	}

	Double = Context{
		Name:               "float64",
		Bits:               64,
		Epsilon:            DoubleEpsilon,
		MinNormal:          DoubleMinNormal,
		MaxValue:           DoubleMaxValue,
		ToleranceFactor:    DoubleToleranceFactor,
		MaxIterations:      DoubleMaxIterations,
		IterationsPerRootS: DoubleIterationsPerRootS,
		IterationCeiling:   DoubleIterationCeiling,
	}
)

// Contexts lists the supported formats from narrowest to widest.
func Contexts() []Context {
	return []Context{Half, Single, Double}
}

// ContextOf returns the context for the arithmetic type T.
// 4-byte types map to Single, everything else to Double.
func ContextOf[T Floats]() Context {
	var dummy T
	if unsafe.Sizeof(dummy) == 4 {
		return Single
	}
	return Double
}

// ParseContext returns the context with the given name. Besides the
// canonical names it accepts "half", "single" and "double".
func ParseContext(name string) (Context, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "float16", "half", "f16":
		return Half, nil
	case "float32", "single", "f32":
		return Single, nil
	case "float64", "double", "f64":
		return Double, nil
	default:
		return Context{}, fmt.Errorf("fp: unknown precision %q: expected float16, float32 or float64", name)
	}
}

// String returns the format name.
func (c Context) String() string {
	return c.Name
}

// Tolerance returns the relative convergence tolerance.
func (c Context) Tolerance() float64 {
	return c.ToleranceFactor * c.Epsilon
}

// Tiny returns the floor substituted for vanishing numerators and
// denominators in the modified Lentz algorithm.
func (c Context) Tiny() float64 {
	return c.MinNormal / c.Epsilon
}

// IterationLimit returns the iteration cap for shape parameter s.
func (c Context) IterationLimit(s float64) int {
	limit := float64(c.MaxIterations)
	if s > 0 {
		limit += math.Ceil(c.IterationsPerRootS * math.Sqrt(s))
	}
	if limit >= float64(c.IterationCeiling) || math.IsNaN(limit) {
		return c.IterationCeiling
	}
	return int(limit)
}
