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

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-specfun/fp"
)

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the precision contexts and the host floating-point capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			table := tablewriter.NewWriter(out)
			table.Header("Precision", "Bits", "Epsilon", "MinNormal", "MaxValue", "Tolerance", "Iterations", "Ceiling")
			for _, c := range fp.Contexts() {
				if err := table.Append([]string{
					c.Name,
					strconv.Itoa(c.Bits),
					formatConstant(c.Epsilon),
					formatConstant(c.MinNormal),
					formatConstant(c.MaxValue),
					formatConstant(c.Tolerance()),
					fmt.Sprintf("%d + %g·√s", c.MaxIterations, c.IterationsPerRootS),
					strconv.Itoa(c.IterationCeiling),
				}); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}

			host := fp.Host()
			fmt.Fprintf(out, "host: arch=%s fma=%t half-conversions=%t\n", host.Arch, host.FMA, host.HalfConversions)
			return nil
		},
	}
}

func formatConstant(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
