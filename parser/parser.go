/*
Package parser defines a predictive parsing engine interpreting a
grammar.Grammar over an externally supplied token stream.

The engine decides with one token of lookahead. Alternatives are ordered
choice: the first variant whose first set accepts the lookahead token is
taken; if none accepts it, the first nullable variant matches empty input.
First sets, nullability, and the lexer group of every decision point are
computed once when the parser is created.
*/
package parser

import (
	"math/bits"
	"strings"

	err "relex/errors"
	"relex/grammar"
	"relex/internal/ints"
	"relex/lexer"
	"relex/tree"
)

// TokenSource produces the token stream driving a parse. The group argument
// selects the lexer to fetch with (see Lexers); a source backed by a single
// pre-lexed token list may ignore it.
type TokenSource interface {
	Next(group int) (*lexer.Token, error)
}

// TokenHook is called for every fetched token, including aside tokens,
// before the engine looks at it. A non-nil result aborts the parse.
type TokenHook func(t *lexer.Token) error

type ParseOption func(*parseContext)

func WithTokenHook(h TokenHook) ParseOption {
	return func(pc *parseContext) {
		pc.hook = h
	}
}

type exprInfo struct {
	first    *ints.Set      // token types directly startable
	lits     map[string]int // normalized literal text -> token type
	nullable bool
	group    int
}

type Parser struct {
	grammar *grammar.Grammar
	lexers  []*lexer.Lexer
	info    map[grammar.Expr]*exprInfo
}

// New compiles g: builds the per-group lexers, computes first sets and
// nullability, resolves the lexer group of every decision point, and rejects
// left-recursive grammars (the interpreting engine cannot terminate on them).
func New(g *grammar.Grammar) (*Parser, error) {
	lexers, e := Lexers(g)
	if e != nil {
		return nil, e
	}

	p := &Parser{grammar: g, lexers: lexers, info: make(map[grammar.Expr]*exprInfo)}
	c := newCompiler(g)
	c.run()

	if ce := c.checkRecursion(); ce != nil {
		return nil, ce
	}

	for i, nt := range g.NonTerms {
		if fe := p.fillInfo(nt.Expr, c, i); fe != nil {
			return nil, fe
		}
	}

	return p, nil
}

// Lexers returns the compiled per-group lexers, for callers constructing
// their own token source over them.
func (p *Parser) Lexers() []*lexer.Lexer {
	return p.lexers
}

// Parse runs the engine over the tokens of ts and returns the parse tree.
// Any lexical, syntactic, or stream failure aborts the whole parse.
func (p *Parser) Parse(ts TokenSource, opts ...ParseOption) (*tree.Node, error) {
	pc := &parseContext{parser: p, ts: ts}
	for _, opt := range opts {
		opt(pc)
	}

	root := tree.NewNode(p.grammar.NonTerms[grammar.RootNonTerm].Name)
	e := pc.parseExpr(p.grammar.NonTerms[grammar.RootNonTerm].Expr, root)
	if e != nil {
		return nil, e
	}

	t, e := pc.peek(0)
	if e != nil {
		return nil, e
	}
	if t.Type() != lexer.EofTokenType {
		return nil, unexpectedTokenError(t)
	}

	return root, nil
}

// compiler computes nullability and first sets per nonterminal by fixpoint
// iteration, then per expression node on demand.
type compiler struct {
	g        *grammar.Grammar
	nullable []bool
	first    []*ints.Set
	lits     []map[string]int
}

func newCompiler(g *grammar.Grammar) *compiler {
	c := &compiler{
		g:        g,
		nullable: make([]bool, len(g.NonTerms)),
		first:    make([]*ints.Set, len(g.NonTerms)),
		lits:     make([]map[string]int, len(g.NonTerms)),
	}
	for i := range g.NonTerms {
		c.first[i] = ints.NewSet()
		c.lits[i] = make(map[string]int)
	}
	return c
}

func (c *compiler) run() {
	for changed := true; changed; {
		changed = false
		for i, nt := range c.g.NonTerms {
			first, lits, nullable := c.eval(nt.Expr)
			if nullable && !c.nullable[i] {
				c.nullable[i] = true
				changed = true
			}
			for _, t := range first.ToSlice() {
				if !c.first[i].Contains(t) {
					c.first[i].Add(t)
					changed = true
				}
			}
			for k, v := range lits {
				if _, f := c.lits[i][k]; !f {
					c.lits[i][k] = v
					changed = true
				}
			}
		}
	}
}

func (c *compiler) normLit(text string, tokenType int) string {
	if c.g.Tokens[tokenType].Flags&grammar.CaselessToken != 0 {
		return strings.ToUpper(text)
	}
	return text
}

func (c *compiler) eval(e grammar.Expr) (first *ints.Set, lits map[string]int, nullable bool) {
	first = ints.NewSet()
	lits = make(map[string]int)

	switch n := e.(type) {
	case *grammar.TokenRef:
		first.Add(n.Type)
	case *grammar.LiteralRef:
		lits[c.normLit(n.Text, n.Type)] = n.Type
	case *grammar.NonTermRef:
		first.Union(c.first[n.NonTerm])
		for k, v := range c.lits[n.NonTerm] {
			lits[k] = v
		}
		nullable = c.nullable[n.NonTerm]
	case *grammar.Seq:
		nullable = true
		for _, item := range n.Items {
			f, l, nl := c.eval(item)
			first.Union(f)
			for k, v := range l {
				lits[k] = v
			}
			if !nl {
				nullable = false
				break
			}
		}
	case *grammar.Alt:
		for _, v := range n.Variants {
			f, l, nl := c.eval(v)
			first.Union(f)
			for k, vt := range l {
				lits[k] = vt
			}
			nullable = nullable || nl
		}
	case *grammar.Opt:
		first, lits, _ = c.eval(n.Expr)
		nullable = true
	case *grammar.Rep:
		first, lits, _ = c.eval(n.Expr)
		nullable = true
	}
	return
}

// leftRefs collects nonterminals reachable at the left edge of e.
func (c *compiler) leftRefs(e grammar.Expr, res *ints.Set) {
	switch n := e.(type) {
	case *grammar.NonTermRef:
		res.Add(n.NonTerm)
	case *grammar.Seq:
		for _, item := range n.Items {
			c.leftRefs(item, res)
			_, _, nullable := c.eval(item)
			if !nullable {
				break
			}
		}
	case *grammar.Alt:
		for _, v := range n.Variants {
			c.leftRefs(v, res)
		}
	case *grammar.Opt:
		c.leftRefs(n.Expr, res)
	case *grammar.Rep:
		c.leftRefs(n.Expr, res)
	}
}

func (c *compiler) checkRecursion() *err.Error {
	refs := make([]*ints.Set, len(c.g.NonTerms))
	for i, nt := range c.g.NonTerms {
		refs[i] = ints.NewSet()
		c.leftRefs(nt.Expr, refs[i])
	}

	for changed := true; changed; {
		changed = false
		for i := range refs {
			for _, j := range refs[i].ToSlice() {
				for _, k := range refs[j].ToSlice() {
					if !refs[i].Contains(k) {
						refs[i].Add(k)
						changed = true
					}
				}
			}
		}
	}

	names := make([]string, 0)
	for i, r := range refs {
		if r.Contains(i) {
			names = append(names, c.g.NonTerms[i].Name)
		}
	}
	if len(names) > 0 {
		return recursionError(names)
	}
	return nil
}

// fillInfo records first set, nullability, and decision group for every node
// of a nonterminal definition.
func (p *Parser) fillInfo(e grammar.Expr, c *compiler, nonTerm int) *err.Error {
	if _, f := p.info[e]; f {
		return nil
	}

	first, lits, nullable := c.eval(e)
	group, ok := p.decisionGroup(first, lits)
	if !ok {
		return disjointGroupsError(p.grammar.NonTerms[nonTerm].Name)
	}
	p.info[e] = &exprInfo{first: first, lits: lits, nullable: nullable, group: group}

	switch n := e.(type) {
	case *grammar.Seq:
		for _, item := range n.Items {
			if fe := p.fillInfo(item, c, nonTerm); fe != nil {
				return fe
			}
		}
	case *grammar.Alt:
		for _, v := range n.Variants {
			if fe := p.fillInfo(v, c, nonTerm); fe != nil {
				return fe
			}
		}
	case *grammar.Opt:
		return p.fillInfo(n.Expr, c, nonTerm)
	case *grammar.Rep:
		return p.fillInfo(n.Expr, c, nonTerm)
	}
	return nil
}

// decisionGroup picks the lexer group shared by all token types a node can
// start with. Types spanning no common group make the grammar ambiguous for
// the lexer and are rejected.
func (p *Parser) decisionGroup(first *ints.Set, lits map[string]int) (int, bool) {
	mask := -1
	seen := false
	for _, t := range first.ToSlice() {
		mask &= p.grammar.Tokens[t].Groups
		seen = true
	}
	for _, t := range lits {
		mask &= p.grammar.Tokens[t].Groups
		seen = true
	}

	if !seen {
		return 0, true
	}
	if mask == 0 {
		return 0, false
	}
	return bits.TrailingZeros(uint(mask)), true
}

type parseContext struct {
	parser   *Parser
	ts       TokenSource
	tok      *lexer.Token
	hook     TokenHook
	consumed int
}

// peek returns the lookahead token, fetching it with the lexer of the given
// group if none is cached. Aside tokens are passed to the hook and skipped.
func (pc *parseContext) peek(group int) (*lexer.Token, error) {
	for pc.tok == nil {
		t, e := pc.ts.Next(group)
		if e != nil {
			return nil, e
		}

		if pc.hook != nil && t.Type() != lexer.EofTokenType {
			if e = pc.hook(t); e != nil {
				return nil, e
			}
		}

		if t.Type() >= 0 && t.Type() < len(pc.parser.grammar.Tokens) &&
			pc.parser.grammar.Tokens[t.Type()].Flags&grammar.AsideToken != 0 {
			continue
		}

		pc.tok = t
	}
	return pc.tok, nil
}

func (pc *parseContext) advance() {
	pc.tok = nil
	pc.consumed++
}

func (pc *parseContext) unexpected(t *lexer.Token) *err.Error {
	if t.Type() == lexer.EofTokenType {
		return unexpectedEofError(t)
	}
	return unexpectedTokenError(t)
}

// matches reports whether the lookahead token can start the node described by info.
func (pc *parseContext) matches(info *exprInfo, t *lexer.Token) bool {
	if t.Type() < 0 {
		return false
	}

	norm := t.Text()
	if pc.parser.grammar.Tokens[t.Type()].Flags&grammar.CaselessToken != 0 {
		norm = strings.ToUpper(norm)
	}
	if tt, f := info.lits[norm]; f && tt == t.Type() {
		return true
	}
	return info.first.Contains(t.Type())
}

func (pc *parseContext) parseExpr(e grammar.Expr, parent *tree.Node) error {
	info := pc.parser.info[e]

	switch n := e.(type) {
	case *grammar.TokenRef:
		t, err := pc.peek(info.group)
		if err != nil {
			return err
		}
		if t.Type() != n.Type {
			return pc.unexpected(t)
		}
		parent.AddChild(tree.NewTokenNode(t))
		pc.advance()

	case *grammar.LiteralRef:
		t, err := pc.peek(info.group)
		if err != nil {
			return err
		}
		if t.Type() != n.Type || !pc.literalMatches(n, t.Text()) {
			return pc.unexpected(t)
		}
		parent.AddChild(tree.NewTokenNode(t))
		pc.advance()

	case *grammar.NonTermRef:
		nt := pc.parser.grammar.NonTerms[n.NonTerm]
		child := tree.NewNode(nt.Name)
		if err := pc.parseExpr(nt.Expr, child); err != nil {
			return err
		}
		parent.AddChild(child)

	case *grammar.Seq:
		for _, item := range n.Items {
			if err := pc.parseExpr(item, parent); err != nil {
				return err
			}
		}

	case *grammar.Alt:
		t, err := pc.peek(info.group)
		if err != nil {
			return err
		}
		for _, v := range n.Variants {
			if pc.matches(pc.parser.info[v], t) {
				return pc.parseExpr(v, parent)
			}
		}
		for _, v := range n.Variants {
			if pc.parser.info[v].nullable {
				return nil
			}
		}
		return pc.unexpected(t)

	case *grammar.Opt:
		t, err := pc.peek(info.group)
		if err != nil {
			return err
		}
		if pc.matches(pc.parser.info[n.Expr], t) {
			return pc.parseExpr(n.Expr, parent)
		}

	case *grammar.Rep:
		for {
			t, err := pc.peek(info.group)
			if err != nil {
				return err
			}
			if !pc.matches(pc.parser.info[n.Expr], t) {
				return nil
			}

			before := pc.consumed
			if err = pc.parseExpr(n.Expr, parent); err != nil {
				return err
			}
			if pc.consumed == before {
				return nil
			}
		}
	}

	return nil
}

func (pc *parseContext) literalMatches(ref *grammar.LiteralRef, text string) bool {
	if pc.parser.grammar.Tokens[ref.Type].Flags&grammar.CaselessToken != 0 {
		return strings.EqualFold(ref.Text, text)
	}
	return ref.Text == text
}
