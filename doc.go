// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package strlit implements a codec for quoted string literals as written
// in C, GCC-extended C, Java, and Scala source text.
//
// # Dialects
//
// A Dialect is a bitmask selecting which backslash escape sequences the
// codec recognizes and emits. Each flag enables one escape; any combination
// of flags is a valid dialect, and the package defines presets for the
// supported host languages:
//
//	Dialect     | Escapes
//	----------- | -------------------------------------------------------
//	C           | \a \b \f \n \r \t \v \\ \' \" \? \xXX \ooo
//	GCC         | C plus \e and \E
//	Java, Scala | \b \f \n \r \t \\ \' \" \uXXXX \ooo
//	Permissive  | all of the above
//
// # Decoding
//
// Unquote decodes one literal beginning at a designated offset of its
// input. It returns the decoded content together with the offset of the
// closing quotation mark, so a caller scanning a larger source can resume
// immediately past the literal:
//
//	res, err := strlit.Unquote(strlit.Java, src, pos)
//	if err != nil {
//	   log.Fatalf("Decoding failed: %v", err)
//	}
//	doSomethingWith(res.Content)
//	pos = res.End + 1
//
// Errors from Unquote have concrete type [*MalformedError], which records
// the offending character, its offset, and the phase of the codec that
// rejected it.
//
// # Encoding
//
// Quote performs the reverse transformation, wrapping raw text in
// quotation marks and escaping its contents according to the dialect.
// Mnemonic escapes are preferred, then octal, hex, and unicode escapes for
// control characters, in that order, among the forms the dialect permits:
//
//	lit, err := strlit.Quote(true, strlit.Java, "café")
//	// lit == `"caf\u00e9"`
//
// When its first argument is true, Quote renders every character above
// U+007F as a \u escape, or fails if the dialect has none. Fixed-dialect
// wrappers are provided for both directions; the C and GCC quoting
// wrappers are ASCII-only, since those dialects define no unicode escape.
//
// # Character model
//
// The codec works in terms of single code units: every escape decodes to
// exactly one rune no greater than U+FFFF, and surrogate pairs are never
// composed or emitted. Code points outside the Basic Multilingual Plane
// pass through only verbatim.
package strlit
