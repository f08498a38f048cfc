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

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/x448/float16"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/special"
	"github.com/ajroetker/go-specfun/fp/contrib/workerpool"
)

// function is one evaluable function, instantiated for every precision.
// One-argument functions ignore s.
type function struct {
	name  string
	use   string
	short string
	shape bool // the first argument is the shape parameter s

	f16 func(s, x float16.Float16) (float16.Float16, error)
	f32 func(s, x float32) (float32, error)
	f64 func(s, x float64) (float64, error)
}

var functions = []function{
	{
		name:  "phi",
		use:   "phi <x>...",
		short: "Standard normal cumulative distribution function Φ(x)",
		f16: func(_, x float16.Float16) (float16.Float16, error) {
			return special.PhiHalf(x)
		},
		f32: ignoreShape(special.Phi[float32]),
		f64: ignoreShape(special.Phi[float64]),
	},
	{
		name:  "erf",
		use:   "erf <t>...",
		short: "Error function erf(t)",
		f16:   widen(ignoreShape(special.Erf[float32])),
		f32:   ignoreShape(special.Erf[float32]),
		f64:   ignoreShape(special.Erf[float64]),
	},
	{
		name:  "erfc",
		use:   "erfc <t>...",
		short: "Complementary error function erfc(t)",
		f16:   widen(ignoreShape(special.Erfc[float32])),
		f32:   ignoreShape(special.Erfc[float32]),
		f64:   ignoreShape(special.Erfc[float64]),
	},
	{
		name:  "lgamma",
		use:   "lgamma <s>...",
		short: "Logarithm of the gamma function ln Γ(s)",
		f16:   widen(ignoreShape(special.LogGamma[float32])),
		f32:   ignoreShape(special.LogGamma[float32]),
		f64:   ignoreShape(special.LogGamma[float64]),
	},
	{
		name:  "gammap",
		use:   "gammap <s> <x>...",
		short: "Regularized lower incomplete gamma function P(s,x)",
		shape: true,
		f16:   special.GammaPHalf,
		f32:   special.GammaP[float32],
		f64:   special.GammaP[float64],
	},
	{
		name:  "gammaq",
		use:   "gammaq <s> <x>...",
		short: "Regularized upper incomplete gamma function Q(s,x)",
		shape: true,
		f16:   special.GammaQHalf,
		f32:   special.GammaQ[float32],
		f64:   special.GammaQ[float64],
	},
}

func ignoreShape[T any](f func(T) (T, error)) func(_, x T) (T, error) {
	return func(_, x T) (T, error) {
		return f(x)
	}
}

// widen evaluates a single-precision function on half-precision arguments
// and rounds the result to half precision.
func widen(f func(s, x float32) (float32, error)) func(s, x float16.Float16) (float16.Float16, error) {
	return func(s, x float16.Float16) (float16.Float16, error) {
		y, err := f(s.Float32(), x.Float32())
		if err != nil {
			return 0, err
		}
		return float16.Fromfloat32(y), nil
	}
}

func (a *app) functionCommand(fn function) *cobra.Command {
	minArgs := 1
	if fn.shape {
		minArgs = 2
	}
	return &cobra.Command{
		Use:   fn.use,
		Short: fn.short,
		Args:  cobra.MinimumNArgs(minArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			var s float64
			if fn.shape {
				s, values = values[0], values[1:]
			}

			pool := a.newPool()
			defer pool.Close()

			c := a.cfg.context()
			a.logger.Debug("evaluating",
				"function", fn.name,
				"precision", c.Name,
				"arguments", len(values),
				"workers", pool.NumWorkers())

			results, err := fn.evaluate(pool, c, s, values)
			if err != nil {
				return fmt.Errorf("%s: %w", fn.name, err)
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				fmt.Fprintln(out, formatValue(r, c))
			}
			return nil
		},
	}
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", arg)
		}
		values[i] = v
	}
	return values, nil
}

// evaluate computes fn(s, x) for every x at precision c. Arguments are
// rounded to the precision first; results are returned widened to float64.
func (fn function) evaluate(pool *workerpool.Pool, c fp.Context, s float64, xs []float64) ([]float64, error) {
	switch c.Bits {
	case 16:
		in := make([]float16.Float16, len(xs))
		for i, x := range xs {
			in[i] = float16.Fromfloat32(float32(x))
		}
		out, err := evaluate(pool, float16.Fromfloat32(float32(s)), in, fn.f16)
		if err != nil {
			return nil, err
		}
		res := make([]float64, len(out))
		for i, y := range out {
			res[i] = float64(y.Float32())
		}
		return res, nil
	case 32:
		out, err := evaluate(pool, float32(s), convert[float32](xs), fn.f32)
		return convert[float64](out), err
	default:
		return evaluate(pool, s, xs, fn.f64)
	}
}

// evaluate applies f to every element of xs on the pool. The error of the
// lowest failing argument is returned.
func evaluate[T any](pool *workerpool.Pool, s T, xs []T, f func(s, x T) (T, error)) ([]T, error) {
	out := make([]T, len(xs))
	err := pool.ParallelFor(len(xs), func(start, end int) error {
		for i := start; i < end; i++ {
			y, err := f(s, xs[i])
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			out[i] = y
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func convert[To, From fp.Floats](xs []From) []To {
	if xs == nil {
		return nil
	}
	out := make([]To, len(xs))
	for i, x := range xs {
		out[i] = To(x)
	}
	return out
}

// formatValue prints v with the shortest representation that round-trips
// at precision c.
func formatValue(v float64, c fp.Context) string {
	bits := 64
	if c.Bits < 64 {
		bits = 32
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}
