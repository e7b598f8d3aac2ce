package lexer

import (
	"relex/source"
)

const (
	// EofTokenType marks the end of a single source file.
	EofTokenType = -2

	// ErrorTokenType is the type for fake tokens capturing broken lexemes
	// (e.g. incorrect string literals). Lexer never returns a token of this type,
	// an error containing the token text is returned instead.
	ErrorTokenType = -3

	EofTokenName   = "-eof-"
	ErrorTokenName = "-error-"
)

// Token is a lexeme stamped with the source it was produced from.
// The origin reflects provenance at the moment of production: a token fetched
// from an included file carries that file, never the including one.
// Tokens are immutable once created.
type Token struct {
	tokenType int
	typeName  string
	text      string
	source    *source.Source
	line, col int
}

func NewToken(tokenType int, typeName, text string, sp source.Pos) *Token {
	return &Token{tokenType, typeName, text, sp.Source(), sp.Line(), sp.Col()}
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}

	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// EofToken marks the end of source s, positioned just past its last byte.
// s may be nil when there is no source at all.
func EofToken(s *source.Source) *Token {
	line, col := 0, 0
	if s != nil {
		line, col = s.LineCol(s.Len())
	}
	return &Token{tokenType: EofTokenType, typeName: EofTokenName, source: s, line: line, col: col}
}
