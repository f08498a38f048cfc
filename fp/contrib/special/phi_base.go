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

// Phi computes the standard normal cumulative distribution function
//
//	Φ(x) = ½·erfc(-x/√2)
//
// With u = x²/2, carried in float64 together with its rounding error so
// that the e⁻ᵘ factor keeps full relative precision however large u is:
//   - x < 0: Φ(x) = ½·Q(½, u), a small number computed directly, so the
//     lower tail keeps full relative precision (Φ(-8) ≈ 6.22e-16).
//   - x ≥ 0: Φ(x) = 1 - ½·Q(½, u).
//
// Properties:
//   - Φ(-x) = 1 - Φ(x)
//   - Φ(0) = 0.5, Φ(-Inf) = 0, Φ(+Inf) = 1
//
// Returns *DomainError for NaN.
func Phi[T fp.Floats](x T) (T, error) {
	if isNaN(x) {
		return 0, &DomainError{Func: "Phi", Param: "x", Value: float64(x)}
	}
	u := square(x).half()
	_, q, err := gammaPQAt("Phi", T(erfShape), T(u.hi), u)
	if err != nil {
		return 0, err
	}
	if x < 0 {
		return T(phiHalf) * q, nil
	}
	return 1 - T(phiHalf)*q, nil
}
