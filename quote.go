// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

var hexDigit = []byte("0123456789abcdef")

// Quote encodes raw as a double-quoted string literal using the escape
// sequences enabled by d. Each character is rendered by the first of these
// rules that applies: a mnemonic escape whose flag is enabled; a numeric
// escape (octal, then hex, then unicode, as enabled) for ISO control
// characters; or the character verbatim.
//
// If ascii is true, every character above U+007F is rendered as a \u escape
// instead. A dialect without the Unicode flag cannot render such characters
// as ASCII, and characters outside the Basic Multilingual Plane cannot be
// rendered by any escape; in those cases Quote reports a *MalformedError.
// No other input fails.
func Quote(ascii bool, d Dialect, raw string) (string, error) {
	in := mem.S(raw)
	buf := make([]byte, 0, in.Len()+2)
	buf = append(buf, '"')

	off := 0
	for rest := in; rest.Len() != 0; {
		r, n := mem.DecodeRune(rest)
		rest = rest.SliceFrom(n)

		if sel, ok := mnemonicFor(d, r); ok {
			buf = append(buf, '\\', byte(sel))
		} else if ascii && r > 0x7F {
			if !d.Has(Unicode) || r > 0xFFFF {
				return "", &MalformedError{
					Message: fmt.Sprintf("cannot format %q as ASCII: no unicode escape available", r),
					Char:    r,
					Source:  raw,
					Offset:  off,
					Phase:   phaseQuoting,
				}
			}
			buf = appendUnicode(buf, r)
		} else if isControl(r) && d.Has(Octal) {
			buf = append(buf, '\\', octDigit(r>>6), octDigit(r>>3), octDigit(r))
		} else if isControl(r) && d.Has(Hex) {
			buf = append(buf, '\\', 'x', hexDigit[r>>4&15], hexDigit[r&15])
		} else if isControl(r) && d.Has(Unicode) {
			buf = appendUnicode(buf, r)
		} else {
			var rbuf [utf8.UTFMax]byte
			k := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:k]...)
		}
		off += n
	}
	buf = append(buf, '"')
	return string(buf), nil
}

// QuoteC encodes raw as a C string literal. The C dialect defines no
// unicode escape, so output is always restricted to ASCII and characters
// above U+007F report an error.
func QuoteC(raw string) (string, error) { return Quote(true, C, raw) }

// QuoteGCC encodes raw as a GCC-dialect string literal. Like QuoteC, the
// output is always restricted to ASCII.
func QuoteGCC(raw string) (string, error) { return Quote(true, GCC, raw) }

// QuoteJava encodes raw as a Java string literal, emitting characters above
// U+007F verbatim.
func QuoteJava(raw string) (string, error) { return Quote(false, Java, raw) }

// QuoteJavaASCII encodes raw as a Java string literal, emitting characters
// above U+007F as \u escapes.
func QuoteJavaASCII(raw string) (string, error) { return Quote(true, Java, raw) }

// QuoteScala encodes raw as a Scala string literal, emitting characters
// above U+007F verbatim.
func QuoteScala(raw string) (string, error) { return Quote(false, Scala, raw) }

// QuoteScalaASCII encodes raw as a Scala string literal, emitting
// characters above U+007F as \u escapes.
func QuoteScalaASCII(raw string) (string, error) { return Quote(true, Scala, raw) }

// QuoteAny encodes raw using the Permissive dialect, emitting characters
// above U+007F verbatim.
func QuoteAny(raw string) (string, error) { return Quote(false, Permissive, raw) }

// QuoteAnyASCII encodes raw using the Permissive dialect, emitting
// characters above U+007F as \u escapes.
func QuoteAnyASCII(raw string) (string, error) { return Quote(true, Permissive, raw) }

// appendUnicode appends a four-digit \u escape for r, which must be at most
// 0xFFFF.
func appendUnicode(buf []byte, r rune) []byte {
	return append(buf, '\\', 'u',
		hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
}

func octDigit(v rune) byte { return byte(v&7) + '0' }

// isControl reports whether r is an ISO control character in the Basic
// Latin block (U+0000 through U+001F, or U+007F).
func isControl(r rune) bool { return r <= 0x1F || r == 0x7F }
