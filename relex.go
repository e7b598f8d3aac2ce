/*
Package relex is a parsing front-end with recursive file inclusion.

A Parser is built from a textual grammar description (see the langdef
package). Parsing a file yields a concrete syntax tree; wherever the input
produces a token of the grammar's include-directive type, the named file is
lexed and spliced into the token stream before the including file resumes,
so one parse covers a whole tree of files. Every token, and therefore every
diagnostic, carries the name and position of the file it actually came from.

A Parser holds no per-parse state and may be reused for any number of inputs.
*/
package relex

import (
	"fmt"
	"io"
	"os"

	"relex/grammar"
	"relex/include"
	"relex/langdef"
	"relex/lexer"
	"relex/parser"
	"relex/source"
	"relex/tree"
)

// Transformer post-processes a finished parse tree. Returning a different
// node replaces the tree; returning an error fails the parse.
type Transformer func(root *tree.Node) (*tree.Node, error)

type Option func(*Parser)

// WithDebug makes the parser dump the parse tree to w after every
// successful parse.
func WithDebug(w io.Writer) Option {
	return func(p *Parser) {
		p.debug = w
	}
}

func WithTransformer(t Transformer) Option {
	return func(p *Parser) {
		p.transformer = t
	}
}

// WithOpener overrides how include targets are read, e.g. to resolve them
// against a fixed root or serve them from memory. The default reads files
// relative to the process working directory.
func WithOpener(open include.Opener) Option {
	return func(p *Parser) {
		p.streamOpts = append(p.streamOpts, include.WithOpener(open))
	}
}

// WithIncludeDepth overrides the include nesting limit
// (include.DefaultMaxDepth).
func WithIncludeDepth(depth int) Option {
	return func(p *Parser) {
		p.streamOpts = append(p.streamOpts, include.WithMaxDepth(depth))
	}
}

// Parser parses source files according to a fixed grammar.
type Parser struct {
	g           *grammar.Grammar
	engine      *parser.Parser
	streamOpts  []include.Option
	transformer Transformer
	debug       io.Writer
}

// New builds a parser from a grammar description. name is used in grammar
// diagnostics only.
func New(name, grammarText string, opts ...Option) (*Parser, error) {
	g, e := langdef.ParseString(name, grammarText)
	if e != nil {
		return nil, e
	}

	engine, e := parser.New(g)
	if e != nil {
		return nil, e
	}

	p := &Parser{g: g, engine: engine}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewFromFile builds a parser from a grammar description file.
func NewFromFile(path string, opts ...Option) (*Parser, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}
	return New(path, string(content), opts...)
}

// ParseFile parses the named file and everything it includes.
func (p *Parser) ParseFile(path string) (*tree.Node, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}
	return p.parse(source.New(path, content))
}

// Parse parses the contents of r. name labels the root source in token
// provenance and diagnostics.
func (p *Parser) Parse(name string, r io.Reader) (*tree.Node, error) {
	content, e := io.ReadAll(r)
	if e != nil {
		return nil, e
	}
	return p.parse(source.New(name, content))
}

func (p *Parser) ParseString(name, text string) (*tree.Node, error) {
	return p.parse(source.New(name, []byte(text)))
}

func (p *Parser) parse(root *source.Source) (*tree.Node, error) {
	ts := include.NewStream(root, p.g, p.engine.Lexers(), p.streamOpts...)
	t, e := p.engine.Parse(ts)
	if e != nil {
		return nil, e
	}

	if p.debug != nil {
		fmt.Fprintln(p.debug, t.Pretty())
	}

	if p.transformer != nil {
		if p.debug != nil {
			fmt.Fprintln(p.debug, "DBG: transformer start")
		}
		return p.transformer(t)
	}
	return t, nil
}

// TokenizeFile runs the engine over the named file collecting every fetched
// token, aside tokens included, in stream order. On failure the tokens
// collected up to the failure point are returned along with the error.
func (p *Parser) TokenizeFile(path string) ([]*lexer.Token, error) {
	content, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}
	return p.Tokenize(path, content)
}

func (p *Parser) Tokenize(name string, content []byte) ([]*lexer.Token, error) {
	res := make([]*lexer.Token, 0)
	hook := func(t *lexer.Token) error {
		res = append(res, t)
		return nil
	}

	ts := include.NewStream(source.New(name, content), p.g, p.engine.Lexers(), p.streamOpts...)
	_, e := p.engine.Parse(ts, parser.WithTokenHook(hook))
	return res, e
}
