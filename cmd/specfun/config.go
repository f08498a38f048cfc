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

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-specfun/fp"
)

// config holds the settings shared by all subcommands.
type config struct {
	Precision string  `env:"SPECFUN_PRECISION"  envDefault:"float64"`
	Margin    float64 `env:"SPECFUN_MARGIN"     envDefault:"32"`
	Workers   int     `env:"SPECFUN_WORKERS"    envDefault:"0"`
	LogLevel  string  `env:"SPECFUN_LOG_LEVEL"  envDefault:"warn"`
	LogFormat string  `env:"SPECFUN_LOG_FORMAT" envDefault:"text"`
}

func defaultConfig() config {
	return config{
		Precision: fp.Double.Name,
		Margin:    fp.DefaultMargin,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

func (c *config) registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Precision, "precision", c.Precision, "floating-point format: float16, float32 or float64")
	fs.Float64Var(&c.Margin, "margin", c.Margin, "verification window in epsilons (relative) and smallest normals (absolute)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines for evaluating many arguments (0 = GOMAXPROCS)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// applyEnv fills every setting whose flag was not given on the command line
// from the environment.
func (c *config) applyEnv(fs *pflag.FlagSet) error {
	var fromEnv config
	if err := env.Parse(&fromEnv); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if !fs.Changed("precision") {
		c.Precision = fromEnv.Precision
	}
	if !fs.Changed("margin") {
		c.Margin = fromEnv.Margin
	}
	if !fs.Changed("workers") {
		c.Workers = fromEnv.Workers
	}
	if !fs.Changed("log-level") {
		c.LogLevel = fromEnv.LogLevel
	}
	if !fs.Changed("log-format") {
		c.LogFormat = fromEnv.LogFormat
	}
	return c.validate()
}

func (c *config) validate() error {
	if _, err := fp.ParseContext(c.Precision); err != nil {
		return err
	}
	if !(c.Margin > 0) {
		return fmt.Errorf("invalid margin %v: must be positive", c.Margin)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d: must not be negative", c.Workers)
	}
	return nil
}

// context returns the precision context. Only valid after validate.
func (c *config) context() fp.Context {
	ctx, _ := fp.ParseContext(c.Precision)
	return ctx
}
