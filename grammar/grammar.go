// Package grammar defines the structures describing a language:
// its token table and the expression tree of every nonterminal.
// The structures carry no behavior; langdef builds them and parser interprets them.
package grammar

type TokenFlags int

const (
	// AsideToken marks tokens that do not affect syntax (comments, whitespace).
	AsideToken TokenFlags = 1 << iota

	// ErrorToken marks tokens capturing broken lexemes.
	ErrorToken

	// CaselessToken marks tokens holding case-insensitive text.
	CaselessToken
)

// Token describes one token type. Groups is a bitmask of lexer groups the
// token belongs to; tokens of different groups are fetched by different
// lexers, which allows context-dependent tokenization (e.g. a bare file path
// only where a path is expected).
type Token struct {
	Name, Re string
	Groups   int
	Flags    TokenFlags
}

// NoInclude is the Include value of a grammar without an include directive.
const NoInclude = -1

// RootNonTerm is the index of the root nonterminal.
const RootNonTerm = 0

type NonTerm struct {
	Name string
	Expr Expr
}

// Grammar is a complete language description.
// Include is the index of the include-directive token: the token whose text
// names a file to splice into the token stream, or NoInclude.
type Grammar struct {
	Tokens   []Token
	NonTerms []NonTerm
	Include  int
}

// Expr is a node of a nonterminal definition.
// Implementations: Seq, Alt, Opt, Rep, TokenRef, LiteralRef, NonTermRef.
type Expr interface {
	expr()
}

// Seq matches its items in order.
type Seq struct {
	Items []Expr
}

// Alt matches the first variant accepting the lookahead token (ordered choice).
type Alt struct {
	Variants []Expr
}

// Opt matches its expression zero or one time.
type Opt struct {
	Expr Expr
}

// Rep matches its expression zero or more times.
type Rep struct {
	Expr Expr
}

// TokenRef matches one token of the given type.
type TokenRef struct {
	Type int
}

// LiteralRef matches one token of the given type with the given text.
type LiteralRef struct {
	Type int
	Text string
}

// NonTermRef matches the named nonterminal.
type NonTermRef struct {
	NonTerm int
}

func (*Seq) expr()        {}
func (*Alt) expr()        {}
func (*Opt) expr()        {}
func (*Rep) expr()        {}
func (*TokenRef) expr()   {}
func (*LiteralRef) expr() {}
func (*NonTermRef) expr() {}
