package parser

import (
	"strings"

	err "relex/errors"
	"relex/lexer"
)

// Error codes used by parser:
const (
	UnexpectedEofError = err.SyntaxErrors + iota
	UnexpectedTokenError
	WrongRegexpError
	RecursionError
	DisjointGroupsError
)

func unexpectedEofError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, UnexpectedEofError, "Unexpected EOF")
}

func unexpectedTokenError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, UnexpectedTokenError, "Unexpected Token %s", t.Text())
}

func regexpError(name string, e error) *err.Error {
	return err.Format(WrongRegexpError, "incorrect RegExp for token %q (%s)", name, e.Error())
}

func recursionError(names []string) *err.Error {
	return err.Format(RecursionError, "left-recursive non-terminals: %s", strings.Join(names, ", "))
}

func disjointGroupsError(nonTerm string) *err.Error {
	return err.Format(DisjointGroupsError, "disjoint token groups in definition of %q", nonTerm)
}
