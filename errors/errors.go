// Package errors defines the diagnostic error type shared by all subpackages.
package errors

import (
	"fmt"

	"relex/source"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LangDefErrors = 1   // used by langdef
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by parser
	IncludeErrors = 301 // used by include
)

// Error is a rendered diagnostic. Message carries the full human-readable text,
// including the origin name, position, and offending source line when known.
type Error struct {
	Code       int
	Message    string
	SourceName string
	Line, Col  int
}

// SourcePos is used to locate an error when constructing it;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	Source() *source.Source
	Line() int
	Col() int
}

func New(code int, msg, name string, line, col int) *Error {
	return &Error{code, msg, name, line, col}
}

func (e *Error) Error() string {
	return e.Message
}

// Format creates an Error with no position information.
// params are applied to msg using fmt.Sprintf.
func Format(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return New(code, msg, "", 0, 0)
}

// FormatPos creates an Error located at pos, rendered as
// "<message> at <origin>:<line>:<col>: <source line>".
// The source line is reproduced without its trailing line break.
// pos must not be nil; a pos with no source yields a bare message.
func FormatPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}

	src := pos.Source()
	if src == nil {
		return New(code, msg, "", pos.Line(), pos.Col())
	}

	line, col := pos.Line(), pos.Col()
	msg = fmt.Sprintf("%s at %s:%d:%d: %s", msg, src.Name(), line, col, src.Line(line))
	return New(code, msg, src.Name(), line, col)
}
