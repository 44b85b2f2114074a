// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit_test

import (
	"testing"

	"github.com/creachadair/strlit"
)

func TestFlagBits(t *testing.T) {
	// The bit assigned to each flag is a stable contract. A failure here
	// means a stored or transmitted Dialect would change meaning.
	tests := []struct {
		flag strlit.Dialect
		want uint16
	}{
		{strlit.Alert, 1 << 0},
		{strlit.Backspace, 1 << 1},
		{strlit.FormFeed, 1 << 2},
		{strlit.Newline, 1 << 3},
		{strlit.CarriageReturn, 1 << 4},
		{strlit.HorizontalTab, 1 << 5},
		{strlit.VerticalTab, 1 << 6},
		{strlit.Unicode, 1 << 7},
		{strlit.Hex, 1 << 8},
		{strlit.Backslash, 1 << 9},
		{strlit.SingleQuote, 1 << 10},
		{strlit.DoubleQuote, 1 << 11},
		{strlit.QuestionMark, 1 << 12},
		{strlit.Octal, 1 << 13},
		{strlit.EscapeLower, 1 << 14},
		{strlit.EscapeUpper, 1 << 15},
	}
	for _, test := range tests {
		if got := uint16(test.flag); got != test.want {
			t.Errorf("Flag %s: got bit %#x, want %#x", test.flag, got, test.want)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		dialect strlit.Dialect
		has     strlit.Dialect
		hasNot  strlit.Dialect
	}{
		{"C", strlit.C,
			strlit.Alert | strlit.VerticalTab | strlit.QuestionMark | strlit.Hex | strlit.Octal,
			strlit.Unicode | strlit.EscapeLower | strlit.EscapeUpper},
		{"GCC", strlit.GCC,
			strlit.C | strlit.EscapeLower | strlit.EscapeUpper,
			strlit.Unicode},
		{"Java", strlit.Java,
			strlit.Backspace | strlit.Newline | strlit.Unicode | strlit.Octal,
			strlit.Alert | strlit.VerticalTab | strlit.QuestionMark | strlit.Hex |
				strlit.EscapeLower | strlit.EscapeUpper},
		{"Permissive", strlit.Permissive, strlit.C | strlit.GCC | strlit.Java, 0},
	}
	for _, test := range tests {
		if !test.dialect.Has(test.has) {
			t.Errorf("Preset %s: missing flags %s", test.name, test.has&^test.dialect)
		}
		if bad := test.dialect & test.hasNot; bad != 0 {
			t.Errorf("Preset %s: unwanted flags %s", test.name, bad)
		}
	}
	if strlit.Scala != strlit.Java {
		t.Errorf("Preset Scala is %s, want %s", strlit.Scala, strlit.Java)
	}
}

func TestDialectString(t *testing.T) {
	tests := []struct {
		dialect strlit.Dialect
		want    string
	}{
		{0, "0"},
		{strlit.C, "C"},
		{strlit.GCC, "GCC"},
		{strlit.Java, "Java"},
		{strlit.Scala, "Java"},
		{strlit.Permissive, "Permissive"},
		{strlit.Newline, "Newline"},
		{strlit.Newline | strlit.Octal, "Newline+Octal"},
		{strlit.Alert | strlit.EscapeUpper, "Alert+EscapeUpper"},
	}
	for _, test := range tests {
		if got := test.dialect.String(); got != test.want {
			t.Errorf("String(%#x): got %q, want %q", uint16(test.dialect), got, test.want)
		}
	}
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name string
		want strlit.Dialect
	}{
		{"c", strlit.C},
		{"C", strlit.C},
		{"gcc", strlit.GCC},
		{"java", strlit.Java},
		{"Scala", strlit.Scala},
		{"permissive", strlit.Permissive},
		{"any", strlit.Permissive},
	}
	for _, test := range tests {
		got, err := strlit.ParseDialect(test.name)
		if err != nil {
			t.Errorf("ParseDialect(%q): unexpected error: %v", test.name, err)
		} else if got != test.want {
			t.Errorf("ParseDialect(%q): got %s, want %s", test.name, got, test.want)
		}
	}
	if got, err := strlit.ParseDialect("pascal"); err == nil {
		t.Errorf("ParseDialect(pascal): got %s, want error", got)
	}
}
