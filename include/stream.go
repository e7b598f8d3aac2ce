/*
Package include implements the include-aware token stream.

A Stream drives a stack of source contexts: tokens are fetched from the top
source; a token of the grammar's include-directive type names a file whose
contents are pushed onto the stack, so its tokens are spliced into the stream
before the including file resumes; an exhausted source is popped, resuming
the one below it exactly where it was suspended. Every produced token carries
the name and position of the source it was actually fetched from.
*/
package include

import (
	goerrors "errors"
	"io/fs"
	"os"

	err "relex/errors"
	"relex/grammar"
	"relex/lexer"
	"relex/source"
)

// Error codes used by include:
const (
	// OpenError indicates an include target that could not be read.
	OpenError = err.IncludeErrors + iota

	// DepthError indicates that the include nesting limit was hit,
	// usually a sign of an include cycle.
	DepthError
)

// DefaultMaxDepth is the default include nesting limit. There is no cycle
// detection: a self-including file fails against this limit instead of
// exhausting memory.
const DefaultMaxDepth = 64

// Opener reads the full contents of an include target. The path is passed
// exactly as written in the source, so the default opener (os.ReadFile)
// resolves it against the process working directory.
type Opener func(path string) ([]byte, error)

type Option func(*Stream)

func WithOpener(open Opener) Option {
	return func(s *Stream) {
		s.open = open
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Stream) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// Stream produces a single flattened lazy token sequence from a root source
// and everything it transitively includes. It is pull-based and stateful:
// one token per Next call, not safe for concurrent pulls.
type Stream struct {
	g            *grammar.Grammar
	lexers       []*lexer.Lexer
	stack        *source.Stack
	open         Opener
	maxDepth     int
	last         *source.Source
	prevSig      *lexer.Token
	prevSigGroup int
}

// NewStream creates a stream reading root, lexed by the given per-group
// lexers compiled for g (see parser.Lexers).
func NewStream(root *source.Source, g *grammar.Grammar, lexers []*lexer.Lexer, opts ...Option) *Stream {
	s := &Stream{
		g:        g,
		lexers:   lexers,
		stack:    source.NewStack().Push(root),
		open:     os.ReadFile,
		maxDepth: DefaultMaxDepth,
		last:     root,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the number of source contexts currently on the stack.
// It reaches 0 exactly when the stream is exhausted.
func (s *Stream) Depth() int {
	return s.stack.Depth()
}

// Next produces the next token of the flattened sequence, lexing with the
// lexer of the given token group. After all sources are exhausted it keeps
// returning an EoF token positioned at the end of the last drained source.
//
// An include-directive token is emitted like any other token, attributed to
// the including file; the tokens that follow it come from the included file.
// An unreadable include target aborts the stream with a diagnostic at the
// directive's position in the including file.
func (s *Stream) Next(group int) (*lexer.Token, error) {
	if group < 0 || group >= len(s.lexers) {
		group = 0
	}

	for {
		if s.stack.IsEmpty() {
			return lexer.EofToken(s.last), nil
		}

		t, e := s.lexers[group].Next(s.stack)
		if e != nil {
			return nil, e
		}

		if t.Type() == lexer.EofTokenType {
			s.last = s.stack.Pop()
			continue
		}

		if t.Type() == s.g.Include {
			if pe := s.push(t, group); pe != nil {
				return nil, pe
			}
		}

		if t.Type() >= 0 && t.Type() < len(s.g.Tokens) && s.g.Tokens[t.Type()].Flags&grammar.AsideToken == 0 {
			s.prevSig = t
			s.prevSigGroup = group
		}
		return t, nil
	}
}

// push reads the file named by directive and makes it the active source.
func (s *Stream) push(directive *lexer.Token, group int) *err.Error {
	if s.stack.Depth() >= s.maxDepth {
		return err.FormatPos(s.directivePos(directive, group), DepthError, "maximum include depth (%d) exceeded", s.maxDepth)
	}

	path := directive.Text()
	content, e := s.open(path)
	if e != nil {
		msg := e.Error()
		var pe *fs.PathError
		if goerrors.As(e, &pe) {
			msg = pe.Err.Error()
		}
		return err.FormatPos(s.directivePos(directive, group), OpenError, "%s", msg)
	}

	s.stack.Push(source.New(path, content))
	return nil
}

// directivePos locates the start of the include directive. In the keyword
// form ("include <path>", with the path in its own token group) the path is
// fetched with a different group than the keyword before it, and the
// directive starts at the keyword; a self-delimiting include token is the
// whole directive and reports its own position.
func (s *Stream) directivePos(directive *lexer.Token, group int) err.SourcePos {
	p := s.prevSig
	if p != nil && s.prevSigGroup != group && p.Source() == directive.Source() &&
		p.Line() == directive.Line() && p.Col() < directive.Col() {
		return p
	}
	return directive
}
