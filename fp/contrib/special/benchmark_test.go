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
	"fmt"
	"testing"

	"github.com/ajroetker/go-specfun/fp/contrib/workerpool"
)

var sinkF64 float64

func BenchmarkPhi(b *testing.B) {
	for _, x := range []float64{-6, -0.5, 0.5, 6} {
		b.Run(fmt.Sprint(x), func(b *testing.B) {
			for b.Loop() {
				sinkF64, _ = Phi(x)
			}
		})
	}
}

func BenchmarkGammaP(b *testing.B) {
	benchmarks := []struct {
		name string
		s, x float64
	}{
		{"series/small", 2, 0.5},
		{"series/large", 1000, 990},
		{"contfrac/small", 2, 8},
		{"contfrac/large", 1000, 1010},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for b.Loop() {
				sinkF64, _ = GammaP(bm.s, bm.x)
			}
		})
	}
}

func BenchmarkPhiFloat32(b *testing.B) {
	var sink float32
	for b.Loop() {
		sink, _ = Phi(float32(-1.5))
	}
	_ = sink
}

func BenchmarkPhiBulk(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	in := bulkInput[float64](1<<14, -8, 8)
	out := make([]float64, len(in))
	b.Run("sequential", func(b *testing.B) {
		for b.Loop() {
			_ = PhiBulk(nil, in, out)
		}
	})
	b.Run("pool", func(b *testing.B) {
		for b.Loop() {
			_ = PhiBulk(pool, in, out)
		}
	})
}
