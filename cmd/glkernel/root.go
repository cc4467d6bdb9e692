// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// flag names
const (
	flagConfig     = "config"
	flagLogLevel   = "log-level"
	flagLogFormat  = "log-format"
	flagPairs      = "pairs"
	flagSeed       = "seed"
	flagWorkers    = "workers"
	flagRange      = "range"
	flagBackend    = "backend"
	flagIterations = "iterations"
)

// app carries the resolved config and logger into subcommands.
type app struct {
	configPath string
	cfg        Config
	log        *Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: NoopLogger()}

	root := &cobra.Command{
		Use:           "glkernel",
		Short:         "Verify and benchmark the 4x4 matrix product kernels",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, flagConfig, "", "YAML config file")
	pf.String(flagLogLevel, DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String(flagLogFormat, DefaultLogFormat, "log format (text, json)")

	root.AddCommand(newVerifyCmd(a), newBenchCmd(a), newInfoCmd(a))
	return root
}

// load reads the config file, applies explicitly set flags over it and
// builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, err := NewLogger(cmd.ErrOrStderr(), cfg.Log.Format, lvl)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	return nil
}

// applyFlags copies every flag the user actually set onto cfg.
func applyFlags(fs *pflag.FlagSet, cfg *Config) error {
	var err error
	set := func(name string, fn func() error) {
		if err == nil && fs.Changed(name) {
			err = fn()
		}
	}

	set(flagLogLevel, func() (e error) { cfg.Log.Level, e = fs.GetString(flagLogLevel); return })
	set(flagLogFormat, func() (e error) { cfg.Log.Format, e = fs.GetString(flagLogFormat); return })
	set(flagPairs, func() (e error) { cfg.Verify.Pairs, e = fs.GetInt(flagPairs); return })
	set(flagSeed, func() (e error) { cfg.Verify.Seed, e = fs.GetInt64(flagSeed); return })
	set(flagWorkers, func() (e error) { cfg.Verify.Workers, e = fs.GetInt(flagWorkers); return })
	set(flagRange, func() (e error) { cfg.Verify.Range, e = fs.GetFloat32(flagRange); return })
	set(flagBackend, func() (e error) { cfg.Verify.Backend, e = fs.GetString(flagBackend); return })
	set(flagIterations, func() (e error) { cfg.Bench.Iterations, e = fs.GetInt(flagIterations); return })

	return err
}
