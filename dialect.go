// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit

import (
	"fmt"
	"strings"
)

// A Dialect is a set of escape sequences recognized by Unquote and emitted
// by Quote. Each bit of a Dialect enables one escape sequence; dialects are
// combined with bitwise OR, and any subset of the defined bits is a valid
// dialect.
//
// The bit assigned to each flag is a stable contract: a Dialect value may be
// stored or transmitted, and the flag constants will not be renumbered.
type Dialect uint16

// Constants defining the escape sequence flags.
const (
	Alert          Dialect = 1 << iota // \a audible bell (BEL, 0x07)
	Backspace                          // \b backspace (BS, 0x08)
	FormFeed                           // \f form feed (FF, 0x0C)
	Newline                            // \n line feed (LF, 0x0A)
	CarriageReturn                     // \r carriage return (CR, 0x0D)
	HorizontalTab                      // \t horizontal tab (HT, 0x09)
	VerticalTab                        // \v vertical tab (VT, 0x0B)
	Unicode                            // \uXXXX exactly four hex digits, one code unit
	Hex                                // \xXX exactly two hex digits
	Backslash                          // \\ literal backslash
	SingleQuote                        // \' literal single quotation mark
	DoubleQuote                        // \" literal double quotation mark
	QuestionMark                       // \? literal question mark
	Octal                              // \o, \oo, \ooo one to three octal digits
	EscapeLower                        // \e escape (ESC, 0x1B); GCC extension
	EscapeUpper                        // \E escape (ESC, 0x1B); GCC extension

	// Do not reorder these constants; their values are part of the contract.
)

// Preset dialects for the supported host languages.
const (
	// C is the escape set of a standard C string literal.
	C = Alert | Backspace | FormFeed | Newline | CarriageReturn |
		HorizontalTab | VerticalTab | Hex | Backslash | SingleQuote |
		DoubleQuote | QuestionMark | Octal

	// GCC is the C set extended with the GNU \e and \E escapes.
	GCC = C | EscapeLower | EscapeUpper

	// Java is the escape set of a Java string literal.
	Java = Backspace | FormFeed | Newline | CarriageReturn | HorizontalTab |
		Unicode | Backslash | SingleQuote | DoubleQuote | Octal

	// Scala string literals use the Java escape set.
	Scala = Java

	// Permissive enables every defined escape sequence.
	Permissive = GCC | Java
)

var flagName = [...]string{
	"Alert", "Backspace", "FormFeed", "Newline", "CarriageReturn",
	"HorizontalTab", "VerticalTab", "Unicode", "Hex", "Backslash",
	"SingleQuote", "DoubleQuote", "QuestionMark", "Octal",
	"EscapeLower", "EscapeUpper",
}

// Has reports whether every flag of f is enabled in d.
func (d Dialect) Has(f Dialect) bool { return d&f == f }

func (d Dialect) String() string {
	switch d {
	case 0:
		return "0"
	case C:
		return "C"
	case GCC:
		return "GCC"
	case Java: // also Scala
		return "Java"
	case Permissive:
		return "Permissive"
	}
	var names []string
	for i, name := range flagName {
		if d&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "+")
}

// ParseDialect returns the preset dialect with the given name. Names are
// matched without regard to case; "any" is accepted as an alias for
// "permissive".
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "c":
		return C, nil
	case "gcc":
		return GCC, nil
	case "java":
		return Java, nil
	case "scala":
		return Scala, nil
	case "permissive", "any":
		return Permissive, nil
	}
	return 0, fmt.Errorf("unknown dialect %q", name)
}

// mnemonics maps single-letter escape selectors to their substitutions and
// the flags gating them. Order matters for encoding: Quote scans the table
// in order and the first matching row wins, so ESC is always emitted in its
// lowercase \e form even when both GCC flags are enabled.
var mnemonics = []struct {
	sel  rune    // the selector character after the backslash
	sub  rune    // the character the escape denotes
	flag Dialect // the flag that enables this escape
}{
	{'a', 0x07, Alert},
	{'b', 0x08, Backspace},
	{'f', 0x0C, FormFeed},
	{'n', 0x0A, Newline},
	{'r', 0x0D, CarriageReturn},
	{'t', 0x09, HorizontalTab},
	{'v', 0x0B, VerticalTab},
	{'\\', '\\', Backslash},
	{'\'', '\'', SingleQuote},
	{'"', '"', DoubleQuote},
	{'?', '?', QuestionMark},
	{'e', 0x1B, EscapeLower},
	{'E', 0x1B, EscapeUpper},
}

// mnemonicSub returns the substitution for escape selector sel, if sel is a
// mnemonic whose flag is enabled in d.
func mnemonicSub(d Dialect, sel rune) (rune, bool) {
	for _, m := range mnemonics {
		if m.sel == sel && d.Has(m.flag) {
			return m.sub, true
		}
	}
	return 0, false
}

// mnemonicFor returns the escape selector denoting r, if some mnemonic
// whose flag is enabled in d substitutes for r.
func mnemonicFor(d Dialect, r rune) (rune, bool) {
	for _, m := range mnemonics {
		if m.sub == r && d.Has(m.flag) {
			return m.sel, true
		}
	}
	return 0, false
}
