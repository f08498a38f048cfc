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

// GammaP computes the regularized lower incomplete gamma function
//
//	P(s,x) = γ(s,x)/Γ(s) = 1/Γ(s) ∫₀ˣ tˢ⁻¹ e⁻ᵗ dt
//
// for s > 0 and x ≥ 0.
//
// Special cases:
//   - GammaP(s, 0) = 0
//   - GammaP(s, +Inf) = 1
//
// Returns *DomainError for s ≤ 0, x < 0 or NaN arguments and
// *ConvergenceError if the iteration cap is exhausted.
//
// Accuracy: within 32·ε relative for 0 < s ≤ 7 and any x. For larger s
// the error grows with the condition of the prefactor exponent
// s·ln(x) - x - ln Γ(s): roughly 10²·ε at s = 50 and 3·10³·ε at s = 1000
// in double precision. Φ and erf use s = ½ and are not affected.
func GammaP[T fp.Floats](s, x T) (T, error) {
	p, _, err := gammaPQ("GammaP", s, x)
	return p, err
}

// GammaQ computes the regularized upper incomplete gamma function
// Q(s,x) = 1 - P(s,x) for s > 0 and x ≥ 0.
//
// Special cases:
//   - GammaQ(s, 0) = 1
//   - GammaQ(s, +Inf) = 0
//
// Errors and accuracy as for GammaP.
func GammaQ[T fp.Floats](s, x T) (T, error) {
	_, q, err := gammaPQ("GammaQ", s, x)
	return q, err
}

// GammaPQ returns P(s,x) and Q(s,x) from a single evaluation.
func GammaPQ[T fp.Floats](s, x T) (p, q T, err error) {
	return gammaPQ("GammaPQ", s, x)
}

// gammaPQ dispatches between the series and the continued fraction.
//
// For x < s+1 the series yields P directly and Q = 1 - P; for x ≥ s+1 the
// continued fraction yields Q directly and P = 1 - Q. In each branch the
// directly computed value is the one that can be close to zero, so it never
// comes out of a cancellation.
func gammaPQ[T fp.Floats](fn string, s, x T) (p, q T, err error) {
	return gammaPQAt(fn, s, x, exact(x))
}

// gammaPQAt is gammaPQ with x also given at full precision as xw, which
// the prefactor uses instead of the rounded x.
func gammaPQAt[T fp.Floats](fn string, s, x T, xw split) (p, q T, err error) {
	if err := checkShape(fn, s); err != nil {
		return 0, 0, err
	}
	if !(x >= 0) {
		return 0, 0, &DomainError{Func: fn, Param: "x", Value: float64(x)}
	}

	switch {
	case x == 0:
		return 0, 1, nil
	case isInf(x):
		return 1, 0, nil
	case x < s+1:
		p, err = lowerSeries(fn, s, x, xw, limitsFor(s))
		if err != nil {
			return 0, 0, err
		}
		return p, 1 - p, nil
	default:
		q, err = upperContinuedFraction(fn, s, x, xw, limitsFor(s))
		if err != nil {
			return 0, 0, err
		}
		return 1 - q, q, nil
	}
}
