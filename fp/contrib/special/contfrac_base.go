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

// upperContinuedFraction computes Q(s,x) for s > 0 and x ≥ s+1 from
//
//	Q(s,x) = xˢ·e⁻ˣ/Γ(s) · 1/(x+1-s - 1·(1-s)/(x+3-s - 2·(2-s)/(x+5-s - …)))
//
// using the modified Lentz algorithm. A numerator or denominator that
// vanishes is replaced by lim.tiny so the recurrence stays defined.
// Iteration stops when a convergent changes the value by a relative
// amount of at most the tolerance. xw is x at full precision for the
// prefactor.
func upperContinuedFraction[T fp.Floats](fn string, s, x T, xw split, lim limits[T]) (T, error) {
	b := x + 1 - s
	c := 1 / lim.tiny
	d := 1 / b
	h := d
	for i := 1; i <= lim.maxIter; i++ {
		fi := T(i)
		an := -fi * (fi - s)
		b += 2

		d = an*d + b
		if abs(d) < lim.tiny {
			d = lim.tiny
		}
		c = b + an/c
		if abs(c) < lim.tiny {
			c = lim.tiny
		}
		d = 1 / d

		delta := d * c
		h *= delta
		if abs(delta-1) <= lim.tol {
			pre, err := scaledPower(fn, s, xw, float64(s))
			if err != nil {
				return 0, err
			}
			return h * pre, nil
		}
	}
	return 0, &ConvergenceError{Func: fn, S: float64(s), X: float64(x), Iterations: lim.maxIter}
}
