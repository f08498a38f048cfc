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

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/workerpool"
)

// PhiBulk computes output[i] = Φ(input[i]) for the first
// min(len(input), len(output)) elements.
//
// With a nil pool the elements are evaluated in order on the calling
// goroutine; otherwise batches are spread across the pool. Results are
// identical either way. On failure the error of the lowest failing index is
// returned, wrapped with that index; output elements from that index on are
// unspecified.
func PhiBulk[T fp.Floats](pool *workerpool.Pool, input, output []T) error {
	return bulk(pool, min(len(input), len(output)), func(i int) (err error) {
		output[i], err = Phi(input[i])
		return err
	})
}

// GammaPBulk computes output[i] = P(s, input[i]). See PhiBulk.
func GammaPBulk[T fp.Floats](pool *workerpool.Pool, s T, input, output []T) error {
	return bulk(pool, min(len(input), len(output)), func(i int) (err error) {
		output[i], err = GammaP(s, input[i])
		return err
	})
}

// GammaQBulk computes output[i] = Q(s, input[i]). See PhiBulk.
func GammaQBulk[T fp.Floats](pool *workerpool.Pool, s T, input, output []T) error {
	return bulk(pool, min(len(input), len(output)), func(i int) (err error) {
		output[i], err = GammaQ(s, input[i])
		return err
	})
}

func bulk(pool *workerpool.Pool, n int, eval func(i int) error) error {
	run := func(start, end int) error {
		for i := start; i < end; i++ {
			if err := eval(i); err != nil {
				return fmt.Errorf("special: element %d: %w", i, err)
			}
		}
		return nil
	}
	if pool == nil {
		return run(0, n)
	}
	return pool.ParallelForBatched(n, bulkBatchSize, run)
}
