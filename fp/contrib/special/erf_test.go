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

var erfGrid = []float64{1e-8, 0.01, 0.1, 0.4769362762044699, 0.5, 1, 1.5, 2, 3, 4.5, 6, 10, 27}

func testErfIdentities[T fp.Floats](t *testing.T) {
	tol := 4 * fp.ContextOf[T]().Epsilon
	for _, v := range erfGrid {
		for _, x := range []T{T(v), -T(v)} {
			e, err := Erf(x)
			if err != nil {
				t.Fatalf("Erf(%v) error = %v", x, err)
			}
			ec, err := Erfc(x)
			if err != nil {
				t.Fatalf("Erfc(%v) error = %v", x, err)
			}
			if d := stdmath.Abs(float64(e+ec) - 1); d > tol {
				t.Errorf("Erf(%v) + Erfc(%v) = %v, off by %g", x, x, e+ec, d)
			}
		}

		pos, _ := Erf(T(v))
		neg, _ := Erf(-T(v))
		if pos != -neg {
			t.Errorf("Erf(%v) = %v, Erf(%v) = %v, want odd symmetry", v, pos, -v, neg)
		}
	}
}

func TestErfIdentities(t *testing.T) {
	t.Run("float32", testErfIdentities[float32])
	t.Run("float64", testErfIdentities[float64])
}

func TestErfAgainstMath(t *testing.T) {
	for _, x := range erfGrid {
		got, err := Erf(x)
		if err != nil {
			t.Fatalf("Erf(%v) error = %v", x, err)
		}
		checkWithin(t, fp.Double, "Erf", got, stdmath.Erf(x))

		got, err = Erfc(x)
		if err != nil {
			t.Fatalf("Erfc(%v) error = %v", x, err)
		}
		checkWithin(t, fp.Double, "Erfc", got, stdmath.Erfc(x))
	}
}

func TestErfcTail(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{8, 1.12242971729829264301e-29},
		{10, 2.08848758376254487707e-45},
		{20, 5.39586561160790117874e-176},
	}
	for _, tt := range tests {
		got, err := Erfc(tt.x)
		if err != nil {
			t.Fatalf("Erfc(%v) error = %v", tt.x, err)
		}
		checkWithin(t, fp.Double, fmt.Sprintf("Erfc(%v)", tt.x), got, tt.want)
	}
}

func TestErfSpecialValues(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) (float64, error)
		x    float64
		want float64
	}{
		{"Erf(0)", Erf[float64], 0, 0},
		{"Erf(+Inf)", Erf[float64], stdmath.Inf(1), 1},
		{"Erf(-Inf)", Erf[float64], stdmath.Inf(-1), -1},
		{"Erfc(0)", Erfc[float64], 0, 1},
		{"Erfc(+Inf)", Erfc[float64], stdmath.Inf(1), 0},
		{"Erfc(-Inf)", Erfc[float64], stdmath.Inf(-1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.x)
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErfTinyArgument(t *testing.T) {
	// t² underflows to zero; erf must still be 2t/√π rather than 0.
	for _, x := range []float64{1e-200, -1e-200, 5e-324} {
		got, err := Erf(x)
		if err != nil {
			t.Fatalf("Erf(%v) error = %v", x, err)
		}
		if want := erfTinySlope * x; got != want {
			t.Errorf("Erf(%v) = %v, want %v", x, got, want)
		}
	}

	got, err := Erf(float32(1e-30))
	if err != nil {
		t.Fatalf("Erf(float32(1e-30)) error = %v", err)
	}
	if got <= 0 {
		t.Errorf("Erf(float32(1e-30)) = %v, want positive", got)
	}
}

func TestErfNaN(t *testing.T) {
	if _, err := Erf(stdmath.NaN()); !errors.Is(err, ErrDomain) {
		t.Errorf("Erf(NaN) error = %v, want ErrDomain", err)
	}
	if _, err := Erfc(stdmath.NaN()); !errors.Is(err, ErrDomain) {
		t.Errorf("Erfc(NaN) error = %v, want ErrDomain", err)
	}
}
