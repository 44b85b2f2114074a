// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/strlit"
	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote [flags] [text...]",
	Short: "Encode raw text as quoted string literals",
	Long: `Quote encodes each argument as a quoted string literal in the chosen
dialect and prints it on a line of its own. With no arguments, the text
is read from stdin.`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Bool("ascii", false, "render characters above U+007F as unicode escapes")
}

func runQuote(cmd *cobra.Command, args []string) error {
	d, err := strlit.ParseDialect(dialectName)
	if err != nil {
		return err
	}
	ascii, _ := cmd.Flags().GetBool("ascii")

	inputs, err := gatherInputs(args)
	if err != nil {
		return err
	}
	for _, raw := range inputs {
		lit, err := strlit.Quote(ascii, d, raw)
		if err != nil {
			logMalformed(err)
			return err
		}
		fmt.Println(lit)
	}
	return nil
}
