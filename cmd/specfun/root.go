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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-specfun/fp/contrib/workerpool"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfg    config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "specfun",
		Short: "Evaluate the normal CDF and the regularized incomplete gamma functions.",
		Long: "specfun evaluates Φ(x), P(s,x), Q(s,x), erf, erfc and ln Γ at half, single\n" +
			"or double precision. Negative arguments must follow \"--\".",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	a.cfg.registerFlags(root.PersistentFlags())

	for _, fn := range functions {
		root.AddCommand(a.functionCommand(fn))
	}
	root.AddCommand(a.checkCommand())
	root.AddCommand(a.infoCommand())

	return root
}

// setup resolves the configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.cfg.applyEnv(cmd.Flags()); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	a.logger.Debug("configuration",
		"precision", a.cfg.Precision,
		"margin", a.cfg.Margin,
		"workers", a.cfg.Workers)
	return nil
}

// newPool returns a pool sized by --workers. The caller closes it.
func (a *app) newPool() *workerpool.Pool {
	return workerpool.New(a.cfg.Workers)
}
