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

	"github.com/ajroetker/go-specfun/fp"
)

// Reference values at 27 significant digits.

var phiReference = []struct {
	x, y float64
}{
	{-8, 6.22096057427178412351599517e-16},
	{-7, 1.27981254388583500438362369e-12},
	{-6, 9.86587645037698140700864132e-10},
	{-5, 2.86651571879193911673752333e-07},
	{-4, 3.16712418331199212537707567e-05},
	{-3, 1.34989803163009452665181477e-03},
	{-2, 2.27501319481792072002826372e-02},
	{-1, 1.58655253931457051414767454e-01},
	{0, 5.00000000000000000000000000e-01},
	{1, 8.41344746068542948585232546e-01},
	{2, 9.77249868051820792799717363e-01},
	{3, 9.98650101968369905473348185e-01},
	{4, 9.99968328758166880078746229e-01},
	{5, 9.99999713348428120806088326e-01},
	{6, 9.99999999013412354962301859e-01},
	{7, 9.99999999998720187456114165e-01},
	{8, 9.99999999999999377903942573e-01},
}

var gammaPReference = []struct {
	s, x, y float64
}{
	{2, 0, 0},
	{2, 1, 2.64241117657115356808952460e-01},
	{2, 2, 5.93994150290161924318001515e-01},
	{2, 3, 8.00851726528544228082630337e-01},
	{2, 4, 9.08421805556329098531409894e-01},
	{2, 5, 9.59572318005487197420183709e-01},
	{2, 6, 9.82648734763335491038683828e-01},
	{2, 7, 9.92704944275563870335974911e-01},
	{2, 8, 9.96980836348877393450607498e-01},
}

var gammaQReference = []struct {
	s, x, y float64
}{
	{2, 0, 1},
	{2, 1, 7.35758882342884643191047540e-01},
	{2, 2, 4.06005849709838075681998485e-01},
	{2, 3, 1.99148273471455771917369663e-01},
	{2, 4, 9.15781944436709014685901064e-02},
	{2, 5, 4.04276819945128025798162905e-02},
	{2, 6, 1.73512652366645089613161720e-02},
	{2, 7, 7.29505572443612966402508868e-03},
	{2, 8, 3.01916365112260654939250213e-03},
}

// checkWithin fails the test when got is outside the DefaultMargin window of
// want for the precision c. want is rounded to T first, as a caller of that
// precision would see it.
func checkWithin[T fp.Floats](t *testing.T, c fp.Context, what string, got, want T) {
	t.Helper()
	if !fp.Within(c, got, want, fp.DefaultMargin) {
		lo, hi := c.Bounds(float64(want), fp.DefaultMargin)
		t.Errorf("%s = %v, want %v (window [%v, %v], %s)", what, got, want, lo, hi, c)
	}
}

func testPhiReference[T fp.Floats](t *testing.T) {
	c := fp.ContextOf[T]()
	for _, v := range phiReference {
		got, err := Phi(T(v.x))
		if err != nil {
			t.Fatalf("Phi(%v) error = %v", v.x, err)
		}
		checkWithin(t, c, fmt.Sprintf("Phi(%v)", v.x), got, T(v.y))
	}
}

func testGammaReference[T fp.Floats](t *testing.T) {
	c := fp.ContextOf[T]()
	for _, v := range gammaPReference {
		got, err := GammaP(T(v.s), T(v.x))
		if err != nil {
			t.Fatalf("GammaP(%v, %v) error = %v", v.s, v.x, err)
		}
		checkWithin(t, c, fmt.Sprintf("GammaP(%v, %v)", v.s, v.x), got, T(v.y))
	}
	for _, v := range gammaQReference {
		got, err := GammaQ(T(v.s), T(v.x))
		if err != nil {
			t.Fatalf("GammaQ(%v, %v) error = %v", v.s, v.x, err)
		}
		checkWithin(t, c, fmt.Sprintf("GammaQ(%v, %v)", v.s, v.x), got, T(v.y))
	}
}

func TestPhiReference(t *testing.T) {
	t.Run("float32", testPhiReference[float32])
	t.Run("float64", testPhiReference[float64])
}

func TestGammaReference(t *testing.T) {
	t.Run("float32", testGammaReference[float32])
	t.Run("float64", testGammaReference[float64])
}
