// SPDX-License-Identifier: MIT
// Package: citegraph/cmd/citegraph

package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/citegraph/internal/config"
)

// flagKeys maps CLI flag names to config keys. Flags are bound for the
// command being executed only, so subcommands sharing a key do not shadow
// each other.
var flagKeys = map[string]string{
	"model":          "generator.model",
	"nodes":          "generator.n",
	"attach":         "generator.m",
	"prob":           "generator.p",
	"seed":           "generator.seed",
	"progress-every": "generator.progress_every",
	"source":         "source",
	"timeout":        "http_timeout",
	"out":            "output.graph",
	"plot":           "output.plot",
	"tsv":            "output.tsv",
	"report":         "output.report",
	"log-level":      "logging.level",
	"log-format":     "logging.format",
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "citegraph",
		Short: "Generate random digraphs and analyse in-degree distributions",
		Long: "citegraph builds DPA, Erdős–Rényi and complete digraphs, loads citation\n" +
			"graphs in adjacency-list form, and plots normalized in-degree distributions\n" +
			"on log-log axes.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .citegraph.yaml in . or $HOME)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.BoolP("verbose", "v", false, "shorthand for --log-level debug")

	root.AddCommand(
		newGenerateCmd(a),
		newAnalyzeCmd(a),
		newCompareCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup reads the config file, binds the executing command's flags and builds
// the logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.readConfigFile(cmd); err != nil {
		return err
	}

	flags := cmd.Flags()
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		a.v.Set("logging.level", "debug")
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.CreateLogger(cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug().Str("file", used).Msg("config loaded")
	}

	return nil
}

func (a *app) readConfigFile(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		return config.ReadFile(a.v, cfgFile)
	}

	a.v.SetConfigName(".citegraph")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}
	// A missing default file is fine; defaults and env still apply.
	var notFound viper.ConfigFileNotFoundError
	if err := a.v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

func (a *app) httpClient() *http.Client {
	return &http.Client{Timeout: a.cfg.HTTPTimeout}
}

// writeOutput writes to path via fn; "-" selects stdout.
func writeOutput(cmd *cobra.Command, path string, fn func(w io.Writer) error) (err error) {
	if path == "-" {
		return fn(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return fn(f)
}
