// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit

import "fmt"

// MalformedError is the concrete type of errors reported by Unquote and
// Quote. It records the complete input, the offset and character at which
// processing failed, and the phase of the codec that gave up.
type MalformedError struct {
	Message string // description of the failure
	Char    rune   // the offending character, if any
	Source  string // the complete input being processed
	Offset  int    // byte offset of the offending character in Source
	Phase   string // the codec phase that reported the failure
}

// Error satisfies the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("at offset %d (%s): %s", e.Offset, e.Phase, e.Message)
}

// Phase names reported in a MalformedError.
const (
	phaseStart   = "awaiting opening quote"
	phaseContent = "literal content"
	phaseEscape  = "escape selector"
	phaseHex     = "hex escape"
	phaseUnicode = "unicode escape"
	phaseQuoting = "quoting"
)
