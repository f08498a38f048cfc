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

// Package fp describes the floating-point formats supported by go-specfun.
//
// Every numeric kernel in fp/contrib is written once, generically, and
// parameterized by a Context: the format's machine epsilon, its smallest
// normal magnitude and the convergence limits derived from them. The
// contexts are fixed package-level values and are never mutated, so they
// can be read from any number of goroutines.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-specfun/fp"
//
//	c := fp.ContextOf[float32]()
//	tol := float32(c.Tolerance())
//
//	// Verification window around an expected value
//	lo, hi := c.Bounds(expected, fp.DefaultMargin)
package fp

// Floats is a constraint for the floating-point types the generic kernels
// are instantiated with.
//
// Half precision is not part of the constraint: Go has no arithmetic
// half-precision type, so it is handled as a storage format that is widened
// to float32 for evaluation (see Half).
type Floats interface {
	~float32 | ~float64
}
