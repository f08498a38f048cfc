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
	"strings"
)

var (
	// ErrDomain is returned for arguments outside a function's domain.
	ErrDomain = errors.New("special: argument outside domain")

	// ErrConvergence is returned when a series or continued fraction does
	// not reach the tolerance within the iteration cap.
	ErrConvergence = errors.New("special: evaluation did not converge")

	// ErrOverflow is returned when a result is not representable in the
	// requested precision.
	ErrOverflow = errors.New("special: result overflows")
)

// DomainError reports the offending parameter of a call.
type DomainError struct {
	Func  string
	Param string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("special: %s: %s = %v outside domain", e.Func, e.Param, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// ConvergenceError reports the arguments and the exhausted iteration cap.
type ConvergenceError struct {
	Func       string
	S, X       float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("special: %s(%v, %v): no convergence after %d iterations", e.Func, e.S, e.X, e.Iterations)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergence
}

// OverflowError reports the arguments whose result left the representable range.
type OverflowError struct {
	Func string
	Args []float64
}

func (e *OverflowError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("special: %s(%s): result overflows", e.Func, strings.Join(args, ", "))
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
