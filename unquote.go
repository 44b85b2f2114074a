// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Result is the outcome of successfully decoding a quoted string literal.
type Result struct {
	End     int    // byte offset of the closing quotation mark in the source
	Content string // the decoded content of the literal
}

// Unquote decodes the quoted string literal beginning at byte offset pos in
// src, recognizing the escape sequences enabled by d. The character at pos
// must be a double quotation mark. On success, Result.Content holds the
// decoded text, one rune per literal character or resolved escape, and
// Result.End is the offset of the closing quotation mark, so a caller
// scanning a larger input can resume at End+1.
//
// In case of error the concrete type of the error is *MalformedError, and
// no partial result is returned.
func Unquote(d Dialect, src string, pos int) (Result, error) {
	fail := func(phase string, off int, ch rune, msg string, args ...any) (Result, error) {
		return Result{}, &MalformedError{
			Message: fmt.Sprintf(msg, args...),
			Char:    ch,
			Source:  src,
			Offset:  off,
			Phase:   phase,
		}
	}

	in := mem.S(src)
	if pos < 0 || pos >= in.Len() {
		return fail(phaseStart, pos, 0, "offset %d is outside the input", pos)
	}
	open, n := mem.DecodeRune(in.SliceFrom(pos))
	if open != '"' {
		return fail(phaseStart, pos, open, "literal opens with %q, not '\"'", open)
	}

	dec := make([]byte, 0, in.Len()-pos)
	putRune := func(r rune) {
		var buf [utf8.UTFMax]byte
		k := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:k]...)
	}

	i := pos + n
	for i < in.Len() {
		ch, n := mem.DecodeRune(in.SliceFrom(i))
		if ch == '"' {
			return Result{End: i, Content: string(dec)}, nil
		}
		if ch != '\\' {
			putRune(ch)
			i += n
			continue
		}

		// Just saw a backslash: the next character selects the escape.
		i += n
		if i >= in.Len() {
			return fail(phaseEscape, i, 0, "input ends awaiting an escape selector")
		}
		sel, sn := mem.DecodeRune(in.SliceFrom(i))
		if sub, ok := mnemonicSub(d, sel); ok {
			putRune(sub)
			i += sn
			continue
		}
		switch {
		case sel == 'u' && d.Has(Unicode):
			v, next, err := readHex(src, in, i+sn, 4, phaseUnicode)
			if err != nil {
				return Result{}, err
			}
			putRune(v)
			i = next

		case sel == 'x' && d.Has(Hex):
			v, next, err := readHex(src, in, i+sn, 2, phaseHex)
			if err != nil {
				return Result{}, err
			}
			putRune(v)
			i = next

		case isOctal(sel) && d.Has(Octal):
			// The selector digit is not consumed here; the octal scan
			// reprocesses it as the first digit of the escape.
			v, next := readOctal(in, i)
			putRune(v)
			i = next

		default:
			return fail(phaseEscape, i, sel, "unsupported escape character %q", sel)
		}
	}
	return fail(phaseContent, in.Len(), 0, "input ends without a closing quote")
}

// UnquoteC decodes the literal at pos in src using the C dialect.
func UnquoteC(src string, pos int) (Result, error) { return Unquote(C, src, pos) }

// UnquoteGCC decodes the literal at pos in src using the GCC dialect.
func UnquoteGCC(src string, pos int) (Result, error) { return Unquote(GCC, src, pos) }

// UnquoteJava decodes the literal at pos in src using the Java dialect.
func UnquoteJava(src string, pos int) (Result, error) { return Unquote(Java, src, pos) }

// UnquoteScala decodes the literal at pos in src using the Scala dialect.
func UnquoteScala(src string, pos int) (Result, error) { return Unquote(Scala, src, pos) }

// UnquoteAny decodes the literal at pos in src using the Permissive dialect.
func UnquoteAny(src string, pos int) (Result, error) { return Unquote(Permissive, src, pos) }

// readHex decodes exactly count hexadecimal digits from in beginning at
// off, and returns the decoded value and the offset past the last digit.
// It reports a *MalformedError if the input ends or a non-hex character
// occurs before count digits are read.
func readHex(src string, in mem.RO, off, count int, phase string) (rune, int, error) {
	var v rune
	for i := 0; i < count; i++ {
		if off >= in.Len() {
			return 0, 0, &MalformedError{
				Message: fmt.Sprintf("input ends inside a %d-digit escape", count),
				Source:  src,
				Offset:  off,
				Phase:   phase,
			}
		}
		b := in.At(off)
		hv, ok := hexValue(b)
		if !ok {
			return 0, 0, &MalformedError{
				Message: fmt.Sprintf("invalid hex digit %q", rune(b)),
				Char:    rune(b),
				Source:  src,
				Offset:  off,
				Phase:   phase,
			}
		}
		v = v<<4 | hv
		off++
	}
	return v, off, nil
}

// readOctal decodes one to three octal digits from in beginning at off, and
// returns the decoded value and the offset past the last digit consumed.
// The scan ends at the third digit or at the first non-octal byte, which is
// left unconsumed for the caller to reprocess as ordinary content.
//
// The caller must have verified that the byte at off is an octal digit.
func readOctal(in mem.RO, off int) (rune, int) {
	var v rune
	seen := 0
	for seen < 3 && off < in.Len() {
		ov, ok := octValue(in.At(off))
		if !ok {
			break
		}
		v = v<<3 | ov
		seen++
		off++
	}
	if seen == 0 {
		panic("strlit: octal scan with no digits")
	}
	return v, off
}

func hexValue(b byte) (rune, bool) {
	switch {
	case b >= '0' && b <= '9':
		return rune(b - '0'), true
	case b >= 'a' && b <= 'f':
		return rune(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return rune(b-'A') + 10, true
	}
	return 0, false
}

func octValue(b byte) (rune, bool) {
	if b >= '0' && b <= '7' {
		return rune(b - '0'), true
	}
	return 0, false
}

func isOctal(r rune) bool { return r >= '0' && r <= '7' }
