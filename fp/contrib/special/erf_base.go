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

import "github.com/ajroetker/go-specfun/fp"

// Erf computes the error function
//
//	erf(t) = 2/√π ∫₀ᵗ e^(-u²) du = sign(t)·P(½, t²)
//
// Properties:
//   - erf(-t) = -erf(t)
//   - erf(0) = 0, erf(±Inf) = ±1
//
// Returns *DomainError for NaN.
func Erf[T fp.Floats](t T) (T, error) {
	if isNaN(t) {
		return 0, &DomainError{Func: "Erf", Param: "t", Value: float64(t)}
	}
	u := square(t)
	if T(u.hi) == 0 && t != 0 {
		// t² underflowed; erf is linear this close to zero.
		return T(erfTinySlope) * t, nil
	}
	p, _, err := gammaPQAt("Erf", T(erfShape), T(u.hi), u)
	if err != nil {
		return 0, err
	}
	if t < 0 {
		return -p, nil
	}
	return p, nil
}

// Erfc computes the complementary error function erfc(t) = 1 - erf(t).
//
// For t ≥ 0 it is Q(½, t²), evaluated directly so that erfc of a large
// argument keeps its relative precision. For t < 0 it is 1 + P(½, t²).
// In both branches Erf(t) + Erfc(t) = 1.
//
// Special cases:
//   - erfc(0) = 1, erfc(+Inf) = 0, erfc(-Inf) = 2
//
// Returns *DomainError for NaN.
func Erfc[T fp.Floats](t T) (T, error) {
	if isNaN(t) {
		return 0, &DomainError{Func: "Erfc", Param: "t", Value: float64(t)}
	}
	u := square(t)
	p, q, err := gammaPQAt("Erfc", T(erfShape), T(u.hi), u)
	if err != nil {
		return 0, err
	}
	if t < 0 {
		return 1 + p, nil
	}
	return q, nil
}
