// Package lexer defines the regexp-driven lexical analyzer.
package lexer

import (
	"regexp"
	"unicode/utf8"

	err "relex/errors"
	"relex/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that no token rule matches at the current position.
	WrongCharError = err.LexicalErrors + iota

	// BadTokenError indicates a fetched token of ErrorTokenType.
	BadTokenError
)

// TokenType describes the token produced by one capturing group of the lexer regexp.
type TokenType struct {
	// Type is the token type, any value; ErrorTokenType is treated specially.
	Type int

	// TypeName is the token type name.
	TypeName string
}

// Lexer fetches tokens from the active source of a source.Stack.
// A Lexer is immutable and stateless: the same instance may drive any number
// of stacks, all reading state lives in the stack.
// Each n-th element of types describes the token for the (n+1)-th capturing
// group of re. A match capturing no group is an insignificant lexeme
// (e.g. a non-token separator) and is skipped.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	copy(ts, types)
	return &Lexer{types: ts, re: re}
}

func wrongCharError(s *source.Source, content []byte, pos int) *err.Error {
	r, _ := utf8.DecodeRune(content[pos:])
	return err.FormatPos(source.NewPos(s, pos), WrongCharError, "Unexpected Character %c", r)
}

func badTokenError(t *Token) *err.Error {
	return err.FormatPos(t, BadTokenError, "Unexpected Character %s", t.Text())
}

func (l *Lexer) match(src *source.Source, content []byte, pos int) (*Token, int, error) {
	match := l.re.FindSubmatchIndex(content[pos:])
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(src, content, pos)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		tokenType := ErrorTokenType
		typeName := ErrorTokenName
		if len(l.types) >= (i >> 1) {
			tokenType = l.types[(i>>1)-1].Type
			typeName = l.types[(i>>1)-1].TypeName
		}
		sp := source.NewPos(src, pos+match[i])
		token := NewToken(tokenType, typeName, string(content[pos+match[i]:pos+match[i+1]]), sp)
		if tokenType == ErrorTokenType {
			return nil, 0, badTokenError(token)
		}

		return token, match[1], nil
	}

	return nil, match[1], nil
}

// Next fetches the token starting at the current position of the active source
// and advances that position. Returns an EoF token without changing anything
// when the active source is exhausted (or the stack is empty); the caller
// decides whether to pop and retry. Returns nil and a diagnostic on lexical errors.
func (l *Lexer) Next(st *source.Stack) (*Token, error) {
	for {
		src := st.Source()
		if src == nil {
			return EofToken(nil), nil
		}

		content, pos := st.ContentPos()
		if pos >= len(content) {
			return EofToken(src), nil
		}

		t, advance, e := l.match(src, content, pos)
		if e != nil {
			return nil, e
		}

		st.Skip(advance)
		if t != nil {
			return t, nil
		}
		if advance == 0 {
			return nil, wrongCharError(src, content, pos)
		}
	}
}
