// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/creachadair/strlit"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var unquoteCmd = &cobra.Command{
	Use:   "unquote [flags] [literal...]",
	Short: "Decode quoted string literals to the text they denote",
	Long: `Unquote decodes each argument as a quoted string literal and prints
the decoded content on a line of its own. With no arguments, a single
literal is read from stdin.`,
	RunE: runUnquote,
}

func init() {
	unquoteCmd.Flags().IntP("pos", "p", 0, "byte offset of the literal in its input")
	unquoteCmd.Flags().Bool("show-end", false, "also print the offset of the closing quote")
}

func runUnquote(cmd *cobra.Command, args []string) error {
	d, err := strlit.ParseDialect(dialectName)
	if err != nil {
		return err
	}
	pos, _ := cmd.Flags().GetInt("pos")
	showEnd, _ := cmd.Flags().GetBool("show-end")

	inputs, err := gatherInputs(args)
	if err != nil {
		return err
	}
	for _, src := range inputs {
		res, err := strlit.Unquote(d, src, pos)
		if err != nil {
			logMalformed(err)
			return err
		}
		log.Debug().Str("dialect", d.String()).Int("end", res.End).Msg("decoded literal")
		if showEnd {
			fmt.Printf("%s\t%d\n", res.Content, res.End)
		} else {
			fmt.Println(res.Content)
		}
	}
	return nil
}

// logMalformed reports the diagnostic fields of a codec error at error
// level, so they are visible without parsing the error text.
func logMalformed(err error) {
	var me *strlit.MalformedError
	if errors.As(err, &me) {
		log.Error().Int("offset", me.Offset).Str("phase", me.Phase).Msg(me.Message)
	}
}
