// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/creachadair/strlit"
)

// The benchmark literal sticks to escapes that Go also accepts, so the
// strconv baseline decodes the same input.
var benchLiteral = `"` + strings.Repeat(
	`plain text padding with \t and \n escapes, \x41 hex and \101 octal. `, 20) + `"`

func BenchmarkUnquote(b *testing.B) {
	b.Run("Strconv", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := strconv.Unquote(benchLiteral); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Strlit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := strlit.UnquoteC(benchLiteral, 0); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkQuote(b *testing.B) {
	raw := strings.Repeat("text with \t tabs, \x01 controls and \x1b escapes. ", 20)

	b.Run("Strconv", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			strconv.Quote(raw)
		}
	})

	b.Run("Strlit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := strlit.QuoteC(raw); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
