package hexcodec

import (
	"errors"
	"fmt"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("hexcodec: parse error")

// ParseError reports a token that is not a byte-sized hexadecimal literal.
type ParseError struct {
	// Line is the 1-based token line (1 = low plane, 2 = high plane).
	Line int
	// Index is the 0-based token position within the line, -1 for line-level errors.
	Index int
	// Token is the offending text with braces removed.
	Token string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("hexcodec: line %d: %s", e.Line, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("hexcodec: line %d token %d %q: %s: %v", e.Line, e.Index, e.Token, e.Msg, e.Err)
	}
	return fmt.Sprintf("hexcodec: line %d token %d %q: %s", e.Line, e.Index, e.Token, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}
