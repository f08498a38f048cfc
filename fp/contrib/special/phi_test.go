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
	"errors"
	"fmt"
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-specfun/fp"
)

func testPhiMonotone[T fp.Floats](t *testing.T) {
	prev := T(0)
	for i := -1200; i <= 1200; i++ {
		x := T(float64(i) / 100)
		got, err := Phi(x)
		if err != nil {
			t.Fatalf("Phi(%v) error = %v", x, err)
		}
		if got < prev {
			t.Fatalf("Phi(%v) = %v < Phi of previous point %v", x, got, prev)
		}
		if got < 0 || got > 1 {
			t.Fatalf("Phi(%v) = %v, want in [0, 1]", x, got)
		}
		prev = got
	}
}

func TestPhiMonotone(t *testing.T) {
	t.Run("float32", testPhiMonotone[float32])
	t.Run("float64", testPhiMonotone[float64])
}

func testPhiSymmetry[T fp.Floats](t *testing.T) {
	tol := 4 * fp.ContextOf[T]().Epsilon
	for _, x := range []float64{0.001, 0.25, 1, 1.96, 3, 5.5, 8} {
		lo, err := Phi(T(-x))
		if err != nil {
			t.Fatalf("Phi(%v) error = %v", -x, err)
		}
		hi, err := Phi(T(x))
		if err != nil {
			t.Fatalf("Phi(%v) error = %v", x, err)
		}
		if d := stdmath.Abs(float64(lo+hi) - 1); d > tol {
			t.Errorf("Phi(%v) + Phi(%v) = %v, off by %g", -x, x, lo+hi, d)
		}
	}
}

func TestPhiSymmetry(t *testing.T) {
	t.Run("float32", testPhiSymmetry[float32])
	t.Run("float64", testPhiSymmetry[float64])
}

func TestPhiSpecialValues(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{0, 0.5},
		{stdmath.Copysign(0, -1), 0.5},
		{stdmath.Inf(-1), 0},
		{stdmath.Inf(1), 1},
		{-40, 0},
		{40, 1},
	}

	for _, tt := range tests {
		got, err := Phi(tt.x)
		if err != nil {
			t.Errorf("Phi(%v) error = %v", tt.x, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Phi(%v) = %v, want %v", tt.x, got, tt.want)
		}

		got32, err := Phi(float32(tt.x))
		if err != nil {
			t.Errorf("Phi(float32(%v)) error = %v", tt.x, err)
			continue
		}
		if float64(got32) != tt.want {
			t.Errorf("Phi(float32(%v)) = %v, want %v", tt.x, got32, tt.want)
		}
	}
}

func TestPhiLowerTail(t *testing.T) {
	// Far below epsilon; 1 - Φ(8) would round to zero. u = x²/2 reaches the
	// hundreds here, so any rounding of u or of the exponent sum shows up
	// as a relative error of the same size.
	tests := []struct {
		x, want float64
	}{
		{-8, 6.22096057427178412351599517e-16},
		{-10, 7.61985302416052545054e-24},
		{-12, 1.77648211207767903785e-33},
		{-20, 2.75362411860623373713e-89},
		{-25, 3.05669670638256101993e-138},
		{-37, 5.72557122252457710490e-300},
	}
	for _, tt := range tests {
		got, err := Phi(tt.x)
		if err != nil {
			t.Fatalf("Phi(%v) error = %v", tt.x, err)
		}
		checkWithin(t, fp.Double, fmt.Sprintf("Phi(%v)", tt.x), got, tt.want)
	}
}

func TestPhiNaN(t *testing.T) {
	_, err := Phi(stdmath.NaN())
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("Phi(NaN) error = %v, want ErrDomain", err)
	}
	_, err = Phi(float32(stdmath.NaN()))
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("Phi(float32 NaN) error = %v, want ErrDomain", err)
	}
}

type probability float64

func TestPhiDerivedType(t *testing.T) {
	got, err := Phi(probability(1))
	if err != nil {
		t.Fatalf("Phi(1) error = %v", err)
	}
	checkWithin(t, fp.Double, "Phi(1)", float64(got), 0.8413447460685429)
}
