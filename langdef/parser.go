package langdef

import (
	"regexp"

	"relex/grammar"
	"relex/lexer"
	"relex/source"
)

// Token types of the grammar description language itself.
const (
	spaceType = iota
	commentType
	dirType
	tokenNameType
	nameType
	stringType
	regexpType
	opType
)

const maxGroups = 30

var ldTypes = []lexer.TokenType{
	{Type: spaceType, TypeName: "space"},
	{Type: commentType, TypeName: "comment"},
	{Type: dirType, TypeName: "dir"},
	{Type: tokenNameType, TypeName: "token-name"},
	{Type: nameType, TypeName: "name"},
	{Type: stringType, TypeName: "string"},
	{Type: regexpType, TypeName: "regexp"},
	{Type: opType, TypeName: "op"},
	{Type: lexer.ErrorTokenType, TypeName: lexer.ErrorTokenName},
}

var ldRe = regexp.MustCompile("(?s:" +
	"([ \\r\\n\\t\\f]+)" +
	"|(#[^\\n]*)" +
	"|(!(?:aside|caseless|error|group|include)\\b)" +
	"|(\\$[a-zA-Z_][a-zA-Z_0-9-]*)" +
	"|([a-zA-Z_][a-zA-Z_0-9-]*)" +
	"|((?:\".*?\")|(?:'.*?'))" +
	"|(/(?:[^\\\\/]|\\\\.)+/)" +
	"|([(){}\\[\\]=|,;])" +
	"|([\"'!].{0,10})" +
	")")

var ldLexer = lexer.New(ldRe, ldTypes)

type reader struct {
	st  *source.Stack
	tok *lexer.Token
}

func (r *reader) peek() (*lexer.Token, error) {
	for r.tok == nil {
		t, e := ldLexer.Next(r.st)
		if e != nil {
			return nil, e
		}
		if t.Type() == spaceType || t.Type() == commentType {
			continue
		}

		r.tok = t
	}
	return r.tok, nil
}

func (r *reader) next() (*lexer.Token, error) {
	t, e := r.peek()
	r.tok = nil
	return t, e
}

type dirArg struct {
	name string
	tok  *lexer.Token
}

type directive struct {
	kind string
	args []dirArg
	tok  *lexer.Token
}

type parseState struct {
	r        *reader
	tokens   []grammar.Token
	tokenIdx map[string]int
	litRes   []*regexp.Regexp
	nonTerms []grammar.NonTerm
	ntIdx    map[string]int
	used     []bool
	include  int
	dirs     []directive
}

// ParseString converts a grammar description to a grammar.Grammar.
// name is used in error messages only.
func ParseString(name, text string) (*grammar.Grammar, error) {
	return Parse(name, []byte(text))
}

func Parse(name string, content []byte) (*grammar.Grammar, error) {
	p := &parseState{
		r:        &reader{st: source.NewStack().Push(source.New(name, content))},
		tokenIdx: make(map[string]int),
		ntIdx:    make(map[string]int),
		include:  grammar.NoInclude,
	}

	for {
		t, e := p.r.peek()
		if e != nil {
			return nil, e
		}

		if t.Type() == tokenNameType {
			e = p.parseTokenDef()
		} else if t.Type() == dirType {
			e = p.parseDirective()
		} else {
			break
		}
		if e != nil {
			return nil, e
		}
	}

	if e := p.applyDirectives(); e != nil {
		return nil, e
	}
	p.litRes = make([]*regexp.Regexp, len(p.tokens))

	for {
		t, e := p.r.peek()
		if e != nil {
			return nil, e
		}
		if t.Type() == lexer.EofTokenType {
			break
		}

		if e = p.parseNodeDef(); e != nil {
			return nil, e
		}
	}

	if e := p.validate(); e != nil {
		return nil, e
	}

	return &grammar.Grammar{Tokens: p.tokens, NonTerms: p.nonTerms, Include: p.include}, nil
}

func (p *parseState) expectOp(op string) error {
	t, e := p.r.next()
	if e != nil {
		return e
	}
	if t.Type() == lexer.EofTokenType {
		return eofError(t)
	}
	if t.Type() != opType || t.Text() != op {
		return unexpectedTokenError(t)
	}
	return nil
}

func (p *parseState) parseTokenDef() error {
	nameTok, e := p.r.next()
	if e != nil {
		return e
	}

	bare := nameTok.Text()[1:]
	if _, f := p.tokenIdx[bare]; f {
		return defTokenError(nameTok)
	}

	if e = p.expectOp("="); e != nil {
		return e
	}

	reTok, e := p.r.next()
	if e != nil {
		return e
	}
	if reTok.Type() == lexer.EofTokenType {
		return eofError(reTok)
	}
	if reTok.Type() != regexpType {
		return unexpectedTokenError(reTok)
	}

	reText := reTok.Text()[1 : len(reTok.Text())-1]
	if _, ce := regexp.Compile("(?s:(?:" + reText + "))"); ce != nil {
		return regexpError(reTok, ce)
	}

	if e = p.expectOp(";"); e != nil {
		return e
	}

	p.tokenIdx[bare] = len(p.tokens)
	p.tokens = append(p.tokens, grammar.Token{Name: bare, Re: reText})
	return nil
}

func (p *parseState) parseDirective() error {
	dirTok, e := p.r.next()
	if e != nil {
		return e
	}

	d := directive{kind: dirTok.Text()[1:], tok: dirTok}
	for {
		t, e := p.r.peek()
		if e != nil {
			return e
		}
		if t.Type() != tokenNameType {
			break
		}

		p.r.next()
		d.args = append(d.args, dirArg{name: t.Text()[1:], tok: t})
	}

	if e = p.expectOp(";"); e != nil {
		return e
	}

	p.dirs = append(p.dirs, d)
	return nil
}

// applyDirectives sets token flags and group masks once all token types are known.
// Directives may mention token types defined after them.
func (p *parseState) applyDirectives() error {
	groupCnt := 0
	for _, d := range p.dirs {
		if d.kind == "group" {
			groupCnt++
			if groupCnt+1 > maxGroups {
				return groupNumberError(d.tok)
			}
		}
	}

	group := 0
	for _, d := range p.dirs {
		var flag grammar.TokenFlags
		switch d.kind {
		case "aside":
			flag = grammar.AsideToken
		case "caseless":
			flag = grammar.CaselessToken
		case "error":
			flag = grammar.ErrorToken
		case "include":
			if len(d.args) != 1 {
				return includeArityError(d.tok)
			}
			if p.include != grammar.NoInclude {
				return defIncludeError(d.tok)
			}
		case "group":
			group++
		}

		for _, a := range d.args {
			i, f := p.tokenIdx[a.name]
			if !f {
				return undefinedTokenError(a.tok)
			}

			switch d.kind {
			case "include":
				p.include = i
			case "group":
				p.tokens[i].Groups |= 1 << group
			default:
				p.tokens[i].Flags |= flag
			}
		}
	}

	allMask := (1 << (groupCnt + 1)) - 1
	for i := range p.tokens {
		t := &p.tokens[i]
		if t.Flags&(grammar.AsideToken|grammar.ErrorToken) != 0 {
			t.Groups = allMask
		} else if t.Groups == 0 {
			t.Groups = 1
		}
	}
	return nil
}

// literalType associates a string literal with the first defined token type
// whose regular expression matches the literal text in full.
func (p *parseState) literalType(t *lexer.Token) (int, string, error) {
	text := t.Text()
	text = text[1 : len(text)-1]

	for i := range p.tokens {
		tok := &p.tokens[i]
		if tok.Flags&(grammar.AsideToken|grammar.ErrorToken) != 0 {
			continue
		}

		if p.litRes[i] == nil {
			re := tok.Re
			if tok.Flags&grammar.CaselessToken != 0 {
				re = "(?i:" + re + ")"
			}
			p.litRes[i] = regexp.MustCompile("\\A(?s:" + re + ")\\z")
		}
		if p.litRes[i].MatchString(text) {
			return i, text, nil
		}
	}

	return 0, "", noLiteralTokenError(t)
}

func (p *parseState) ntIndex(name string) int {
	if i, f := p.ntIdx[name]; f {
		return i
	}

	i := len(p.nonTerms)
	p.ntIdx[name] = i
	p.nonTerms = append(p.nonTerms, grammar.NonTerm{Name: name})
	p.used = append(p.used, false)
	return i
}

func (p *parseState) parseNodeDef() error {
	nameTok, e := p.r.next()
	if e != nil {
		return e
	}
	if nameTok.Type() == lexer.EofTokenType {
		return eofError(nameTok)
	}
	if nameTok.Type() != nameType {
		return unexpectedTokenError(nameTok)
	}

	idx := p.ntIndex(nameTok.Text())
	if p.nonTerms[idx].Expr != nil {
		return defNonTermError(nameTok)
	}

	if e = p.expectOp("="); e != nil {
		return e
	}

	expr, e := p.parseSeq()
	if e != nil {
		return e
	}

	if e = p.expectOp(";"); e != nil {
		return e
	}

	p.nonTerms[idx].Expr = expr
	return nil
}

func (p *parseState) parseSeq() (grammar.Expr, error) {
	items := make([]grammar.Expr, 0, 4)
	for {
		item, e := p.parseItem()
		if e != nil {
			return nil, e
		}

		items = append(items, item)
		t, e := p.r.peek()
		if e != nil {
			return nil, e
		}
		if t.Type() != opType || t.Text() != "," {
			break
		}

		p.r.next()
	}

	if len(items) == 1 {
		return items[0], nil
	}
	return &grammar.Seq{Items: items}, nil
}

func (p *parseState) parseItem() (grammar.Expr, error) {
	variants := make([]grammar.Expr, 0, 2)
	for {
		v, e := p.parseVariant()
		if e != nil {
			return nil, e
		}

		variants = append(variants, v)
		t, e := p.r.peek()
		if e != nil {
			return nil, e
		}
		if t.Type() != opType || t.Text() != "|" {
			break
		}

		p.r.next()
	}

	if len(variants) == 1 {
		return variants[0], nil
	}
	return &grammar.Alt{Variants: variants}, nil
}

func (p *parseState) parseVariant() (grammar.Expr, error) {
	t, e := p.r.next()
	if e != nil {
		return nil, e
	}

	switch t.Type() {
	case nameType:
		idx := p.ntIndex(t.Text())
		p.used[idx] = true
		return &grammar.NonTermRef{NonTerm: idx}, nil

	case tokenNameType:
		i, f := p.tokenIdx[t.Text()[1:]]
		if !f {
			return nil, undefinedTokenError(t)
		}
		if p.tokens[i].Flags&(grammar.AsideToken|grammar.ErrorToken) != 0 {
			return nil, wrongTokenError(t)
		}
		return &grammar.TokenRef{Type: i}, nil

	case stringType:
		i, text, le := p.literalType(t)
		if le != nil {
			return nil, le
		}
		return &grammar.LiteralRef{Type: i, Text: text}, nil

	case opType:
		switch t.Text() {
		case "(":
			seq, e := p.parseSeq()
			if e != nil {
				return nil, e
			}
			return seq, p.expectOp(")")
		case "[":
			seq, e := p.parseSeq()
			if e != nil {
				return nil, e
			}
			return &grammar.Opt{Expr: seq}, p.expectOp("]")
		case "{":
			seq, e := p.parseSeq()
			if e != nil {
				return nil, e
			}
			return &grammar.Rep{Expr: seq}, p.expectOp("}")
		}
		return nil, unexpectedTokenError(t)

	case lexer.EofTokenType:
		return nil, eofError(t)
	}

	return nil, unexpectedTokenError(t)
}

func (p *parseState) validate() error {
	if len(p.nonTerms) == 0 {
		return noNonTermsError()
	}

	undefined := make([]string, 0)
	unused := make([]string, 0)
	for i, nt := range p.nonTerms {
		if nt.Expr == nil {
			undefined = append(undefined, nt.Name)
		}
		if i != grammar.RootNonTerm && !p.used[i] {
			unused = append(unused, nt.Name)
		}
	}

	if len(undefined) > 0 {
		return unknownNonTermError(undefined)
	}
	if len(unused) > 0 {
		return unusedNonTermError(unused)
	}
	return nil
}
