// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program strlit converts between quoted string literals, as written in C,
// GCC-extended C, Java, or Scala source, and the raw text they denote.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:   "strlit",
	Short: "Encode and decode quoted string literals",

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)
	},
	SilenceUsage: true,
}

var (
	dialectName string
	logLevel    string
)

func init() {
	root.PersistentFlags().StringVarP(&dialectName, "dialect", "d", "c",
		"escape dialect (c|gcc|java|scala|permissive)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level (trace|debug|info|warn|error)")
	root.AddCommand(unquoteCmd, quoteCmd)
}

func setupLogging(level string) {
	lv, err := zerolog.ParseLevel(level)
	if err != nil {
		lv = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lv)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// gatherInputs returns the non-flag arguments, or if there are none, the
// contents of stdin as a single input.
func gatherInputs(args []string) ([]string, error) {
	if len(args) != 0 {
		return args, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return []string{strings.TrimSuffix(string(data), "\n")}, nil
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
