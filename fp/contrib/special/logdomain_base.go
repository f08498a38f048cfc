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
	stdmath "math"

	"github.com/ajroetker/go-specfun/fp"
)

// limits are the convergence parameters of one evaluation, taken from the
// precision context of T.
type limits[T fp.Floats] struct {
	tol     T
	tiny    T
	maxIter int
}

func limitsFor[T fp.Floats](s T) limits[T] {
	c := fp.ContextOf[T]()
	return limits[T]{
		tol:     T(c.Tolerance()),
		tiny:    T(c.Tiny()),
		maxIter: c.IterationLimit(float64(s)),
	}
}

// split is the unevaluated sum hi + lo, used to carry an argument such as
// x² more precisely than a single float64 can.
type split struct {
	hi, lo float64
}

// exact wraps a value that is already exact in float64.
func exact[T fp.Floats](x T) split {
	return split{hi: float64(x)}
}

// square returns t² with lo holding the rounding error of hi. lo is exact
// unless t² underflows.
func square[T fp.Floats](t T) split {
	tf := float64(t)
	hi := tf * tf
	return split{hi: hi, lo: stdmath.FMA(tf, tf, -hi)}
}

func (w split) half() split {
	return split{hi: w.hi / 2, lo: w.lo / 2}
}

// twoSum returns a+b rounded and the exact rounding error.
func twoSum(a, b float64) (sum, err float64) {
	sum = a + b
	bb := sum - a
	err = (a - (sum - bb)) + (b - bb)
	return sum, err
}

// scaledPower returns xˢ·e⁻ˣ/Γ(g) for a shape g of s or s+1, computed as one
// exponential of s·ln(x) - x - ln Γ(g) in float64 and rounded to T.
//
// Neither xˢ, e⁻ˣ nor Γ(g) is formed on its own, so the value underflows
// gracefully to zero instead of producing Inf/Inf. The exponent is summed
// with its rounding errors carried separately: an absolute error in the
// exponent is a relative error in the result, and x alone may be in the
// hundreds. A result that is still not representable in T is reported as
// *OverflowError.
func scaledPower[T fp.Floats](fn string, s T, x split, g float64) (T, error) {
	sf := float64(s)
	l := stdmath.Log(x.hi)
	p := sf * l
	perr := stdmath.FMA(sf, l, -p)
	a, e1 := twoSum(p, -x.hi)
	b, e2 := twoSum(a, -logGamma(g))
	// ln(hi+lo) = ln(hi) + lo/hi to first order.
	lo := perr + e1 + e2 - x.lo + sf*(x.lo/x.hi)

	v := stdmath.Exp(b)
	v += v * lo
	if !(v <= fp.ContextOf[T]().MaxValue) {
		return 0, &OverflowError{Func: fn, Args: []float64{sf, x.hi + x.lo}}
	}
	return T(v), nil
}

func abs[T fp.Floats](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func isNaN[T fp.Floats](x T) bool {
	return stdmath.IsNaN(float64(x))
}

func isInf[T fp.Floats](x T) bool {
	return stdmath.IsInf(float64(x), 0)
}
