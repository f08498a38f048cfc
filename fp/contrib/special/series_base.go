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

// lowerSeries computes P(s,x) by its power series, for s > 0 and
// 0 < x < s+1, where the series converges fastest:
//
//	P(s,x) = xˢ·e⁻ˣ/Γ(s+1) · Σₙ xⁿ/((s+1)(s+2)…(s+n))
//
// The sum runs in T and stops once a term falls below the tolerance
// relative to the running sum. xw is x at full precision for the prefactor.
func lowerSeries[T fp.Floats](fn string, s, x T, xw split, lim limits[T]) (T, error) {
	ap := s
	term := T(1)
	sum := term
	for n := 1; n <= lim.maxIter; n++ {
		ap++
		term *= x / ap
		sum += term
		if abs(term) < abs(sum)*lim.tol {
			pre, err := scaledPower(fn, s, xw, float64(s)+1)
			if err != nil {
				return 0, err
			}
			return sum * pre, nil
		}
	}
	return 0, &ConvergenceError{Func: fn, S: float64(s), X: float64(x), Iterations: lim.maxIter}
}
