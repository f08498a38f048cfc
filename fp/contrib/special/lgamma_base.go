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

package special

import (
	stdmath "math"

	"github.com/ajroetker/go-specfun/fp"
)

// LogGamma computes ln Γ(s) for s > 0.
//
// Algorithm: a fixed-coefficient Lanczos-type sum evaluated in float64 and
// rounded to T. Γ itself is never formed, so the result is finite wherever
// ln Γ(s) fits in T.
//
// Errors:
//   - *DomainError if s ≤ 0 (poles of Γ at the non-positive integers), NaN or ±Inf
//   - *OverflowError if ln Γ(s) exceeds the range of T
func LogGamma[T fp.Floats](s T) (T, error) {
	if err := checkShape("LogGamma", s); err != nil {
		return 0, err
	}
	v := logGamma(float64(s))
	if !(stdmath.Abs(v) <= fp.ContextOf[T]().MaxValue) {
		return 0, &OverflowError{Func: "LogGamma", Args: []float64{float64(s)}}
	}
	return T(v), nil
}

// logGamma is the float64 kernel behind LogGamma. s must be positive and finite.
func logGamma(s float64) float64 {
	y := s
	tmp := s + lgammaG
	tmp = (s+0.5)*stdmath.Log(tmp) - tmp

	ser := lgammaC0
	for _, c := range lgammaCoeffs {
		y++
		ser += c / y
	}
	// ln(√(2π)·ser) and ln(s) are taken apart: √(2π)·ser/s overflows for
	// subnormal s.
	return tmp + (stdmath.Log(lgammaSqrt2Pi*ser) - stdmath.Log(s))
}

// checkShape validates a shape parameter: finite and strictly positive.
func checkShape[T fp.Floats](fn string, s T) error {
	v := float64(s)
	if !(v > 0) || stdmath.IsInf(v, 1) {
		return &DomainError{Func: fn, Param: "s", Value: v}
	}
	return nil
}
