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

// =============================================================================
// Constants for the special functions
// =============================================================================

// Lanczos-type approximation of ln Γ(s), g = 671/128, 14 terms.
// Evaluated in float64 for every precision:
//
//	ln Γ(s) = (s+½)·ln(s+g) - (s+g) + ln(√(2π)·(c0 + Σ cⱼ/(s+j)) / s)
var (
	lgammaG       float64 = 5.24218750000000000 // 671/128
	lgammaSqrt2Pi float64 = 2.5066282746310005  // √(2π)
	lgammaC0      float64 = 0.999999999999997092

	lgammaCoeffs = [14]float64{
		57.1562356658629235,
		-59.5979603554754912,
		14.1360979747417471,
		-0.491913816097620199,
		0.339946499848118887e-4,
		0.465236289270485756e-4,
		-0.983744753048795646e-4,
		0.158088703224912494e-3,
		-0.210264441724104883e-3,
		0.217439618115212643e-3,
		-0.164318106536763890e-3,
		0.844182239838527433e-4,
		-0.261908384015814087e-4,
		0.368991826595316234e-5,
	}
)

// Reduction of erf, erfc and Φ to the incomplete gamma functions.
const (
	erfShape     = 0.5                // erf(t) = P(½, t²)
	erfTinySlope = 1.1283791670955126 // 2/√π, erf(t) ≈ 2t/√π as t → 0
	phiHalf      = 0.5                // Φ(x) = ½·erfc(-x/√2)
)

// bulkBatchSize is the number of elements a worker claims at a time in the
// bulk functions. Cost per element varies with the argument (series versus
// continued fraction, iteration count), so batches are kept small.
const bulkBatchSize = 64
