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

// Command specfun evaluates the standard normal CDF, the regularized
// incomplete gamma functions and their relatives from the command line.
//
// Usage:
//
//	specfun phi -1.96 0 1.96
//	specfun gammap 2.5 0.5 1 4          # P(2.5, x) for x = 0.5, 1, 4
//	specfun --precision float32 erfc 3
//	specfun check --margin 16           # verify the reference table
//	specfun info                        # precision contexts and host FPU
//
// Every flag has an environment counterpart (SPECFUN_PRECISION,
// SPECFUN_MARGIN, SPECFUN_WORKERS, SPECFUN_LOG_LEVEL, SPECFUN_LOG_FORMAT);
// a flag given on the command line wins.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
