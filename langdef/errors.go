package langdef

import (
	"strings"

	err "relex/errors"
	"relex/lexer"
)

const (
	UnexpectedEofError = err.LangDefErrors + iota
	UnexpectedTokenError
	TokenDefinedError
	NonTermDefinedError
	WrongRegexpError
	UndefinedTokenError
	WrongTokenError
	NoLiteralTokenError
	IncludeDefinedError
	IncludeArityError
	UnknownNonTermError
	UnusedNonTermError
	NoNonTermsError
	GroupNumberError
)

func eofError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, UnexpectedEofError, "unexpected EoF")
}

func unexpectedTokenError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, UnexpectedTokenError, "unexpected %s token", t.TypeName())
}

func defTokenError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, TokenDefinedError, "token %q already defined", t.Text())
}

func defNonTermError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, NonTermDefinedError, "non-terminal %q already defined", t.Text())
}

func regexpError(t *lexer.Token, e error) *err.Error {
	return err.FormatPos(t, WrongRegexpError, "incorrect RegExp %s (%s)", t.Text(), e.Error())
}

func undefinedTokenError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, UndefinedTokenError, "token %q mentioned but not defined", t.Text())
}

func wrongTokenError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, WrongTokenError, "cannot use token %q in definitions", t.Text())
}

func noLiteralTokenError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, NoLiteralTokenError, "cannot find suitable token type for %s literal", t.Text())
}

func defIncludeError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, IncludeDefinedError, "include token already designated")
}

func includeArityError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, IncludeArityError, "!include takes exactly one token type")
}

func unknownNonTermError(names []string) *err.Error {
	return err.Format(UnknownNonTermError, "undefined non-terminals: "+strings.Join(names, ", "))
}

func unusedNonTermError(names []string) *err.Error {
	return err.Format(UnusedNonTermError, "unused non-terminals: "+strings.Join(names, ", "))
}

func noNonTermsError() *err.Error {
	return err.Format(NoNonTermsError, "no node definitions")
}

func groupNumberError(t *lexer.Token) *err.Error {
	return err.FormatPos(t, GroupNumberError, "too many token groups")
}
