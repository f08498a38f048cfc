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

import "math"

// DefaultMargin is the number of epsilons (relative) and smallest normals
// (absolute) a computed value may deviate from its reference.
const DefaultMargin = 32

// Bounds returns the acceptance window around the reference value y:
//
//	lo = (1 - margin·ε)·|y|,  hi = (1 + margin·ε)·|y|
//
// swapped if inverted. Either end whose magnitude is below margin·MinNormal
// is replaced by ∓margin·MinNormal, so references at or near zero still get
// a window of non-zero width.
func (c Context) Bounds(y, margin float64) (lo, hi float64) {
	rel := margin * c.Epsilon
	floor := margin * c.MinNormal

	lo = (1 - rel) * math.Abs(y)
	hi = (1 + rel) * math.Abs(y)
	if lo > hi {
		lo, hi = hi, lo
	}
	if math.Abs(lo) < floor {
		lo = -floor
	}
	if math.Abs(hi) < floor {
		hi = floor
	}
	return lo, hi
}

// Within reports whether got lies inside c.Bounds(want, margin).
// NaN is never within any window.
func Within[T Floats](c Context, got, want T, margin float64) bool {
	lo, hi := c.Bounds(float64(want), margin)
	g := float64(got)
	return lo <= g && g <= hi
}
