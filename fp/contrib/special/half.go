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

import "github.com/x448/float16"

// Half-precision entry points. The argument is widened to float32, the
// function is evaluated with the single-precision context and the result is
// rounded to the nearest half-precision value. Values below the smallest
// half subnormal (about 6e-8), such as Φ(-8), round to zero.

// PhiHalf computes Φ(x) at half precision.
func PhiHalf(x float16.Float16) (float16.Float16, error) {
	y, err := Phi(x.Float32())
	if err != nil {
		return 0, err
	}
	return float16.Fromfloat32(y), nil
}

// GammaPHalf computes P(s,x) at half precision.
func GammaPHalf(s, x float16.Float16) (float16.Float16, error) {
	p, _, err := gammaPQ("GammaP", s.Float32(), x.Float32())
	if err != nil {
		return 0, err
	}
	return float16.Fromfloat32(p), nil
}

// GammaQHalf computes Q(s,x) at half precision.
func GammaQHalf(s, x float16.Float16) (float16.Float16, error) {
	_, q, err := gammaPQ("GammaQ", s.Float32(), x.Float32())
	if err != nil {
		return 0, err
	}
	return float16.Fromfloat32(q), nil
}
