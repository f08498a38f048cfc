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

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the built-in reference table at every precision",
		Long: "check evaluates Φ at x = -8..8 and P, Q at s = 2, x = 0..8 and compares\n" +
			"each result with its reference value within ±margin·ε relative, floored\n" +
			"at ±margin·MinNormal. It fails if any value is outside its window.\n" +
			"With --precision only that precision is checked.",
		Args: cobra.NoArgs,
		RunE: a.runCheck,
	}
}

func (a *app) runCheck(cmd *cobra.Command, _ []string) error {
	contexts := fp.Contexts()
	if cmd.Flags().Changed("precision") {
		contexts = []fp.Context{a.cfg.context()}
	}

	pool := a.newPool()
	defer pool.Close()

	byName := make(map[string]function, len(functions))
	for _, fn := range functions {
		byName[fn.name] = fn
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Precision", "Function", "Arguments", "Got", "Want", "Result")

	var total, misses int
	for _, c := range contexts {
		var cmisses int
		for _, rc := range referenceTable {
			fn := byName[rc.function]
			got, err := fn.evaluate(pool, c, rc.s, []float64{rc.x})
			if err != nil {
				return fmt.Errorf("check: %s at %s: %w", rc.function, c, err)
			}

			result := "ok"
			if !fp.Within(c, got[0], rc.want, a.cfg.Margin) {
				result = "MISS"
				cmisses++
			}
			if err := table.Append([]string{
				c.Name,
				rc.function,
				formatArgs(fn, rc),
				formatValue(got[0], c),
				strconv.FormatFloat(rc.want, 'g', 17, 64),
				result,
			}); err != nil {
				return err
			}
		}
		a.logger.Info("checked precision", "precision", c.Name, "values", len(referenceTable), "misses", cmisses)
		total += len(referenceTable)
		misses += cmisses
	}
	if err := table.Render(); err != nil {
		return err
	}

	if misses > 0 {
		return fmt.Errorf("check: %d of %d values outside the ±%v ε window", misses, total, a.cfg.Margin)
	}
	return nil
}

func formatArgs(fn function, rc referenceCase) string {
	x := strconv.FormatFloat(rc.x, 'g', -1, 64)
	if !fn.shape {
		return x
	}
	return strconv.FormatFloat(rc.s, 'g', -1, 64) + ", " + x
}
