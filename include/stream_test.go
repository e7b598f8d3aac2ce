package include

import (
	goerrors "errors"
	"strings"
	"testing"

	err "relex/errors"
	"relex/langdef"
	"relex/lexer"
	"relex/parser"
	"relex/source"
)

const testGrammar = `
$space = /[ \r\n\t]+/;
$word = /[a-z]+/;
$inc = /@[a-z.\/-]+/;
!aside $space;
!include $inc;
file = {$word | $inc};
`

func buildStream(t *testing.T, files map[string]string, root string, opts ...Option) *Stream {
	g, e := langdef.ParseString("grammar", testGrammar)
	if e != nil {
		t.Fatalf("grammar error: %s", e.Error())
	}
	lexers, e := parser.Lexers(g)
	if e != nil {
		t.Fatalf("lexers error: %s", e.Error())
	}

	opener := func(path string) ([]byte, error) {
		content, f := files[path]
		if !f {
			return nil, goerrors.New("file not found")
		}
		return []byte(content), nil
	}

	rootSrc := source.New(root, []byte(files[root]))
	return NewStream(rootSrc, g, lexers, append([]Option{WithOpener(opener)}, opts...)...)
}

func drain(t *testing.T, s *Stream) []*lexer.Token {
	res := make([]*lexer.Token, 0)
	for i := 0; i < 100; i++ {
		tok, e := s.Next(0)
		if e != nil {
			t.Fatalf("unexpected error: %s", e.Error())
		}
		if tok.Type() == lexer.EofTokenType {
			return res
		}

		res = append(res, tok)
	}

	t.Fatal("stream did not terminate")
	return nil
}

func TestFlattening(t *testing.T) {
	files := map[string]string{
		"main.src": "a @one.src b",
		"@one.src": "c @two.src d",
		"@two.src": "e",
	}
	expected := []struct {
		text, origin string
	}{
		{"a", "main.src"},
		{"@one.src", "main.src"},
		{"c", "@one.src"},
		{"@two.src", "@one.src"},
		{"e", "@two.src"},
		{"d", "@one.src"},
		{"b", "main.src"},
	}

	s := buildStream(t, files, "main.src")
	toks := drain(t, s)
	if len(toks) != len(expected) {
		t.Fatalf("expecting %d tokens, got %d", len(expected), len(toks))
	}
	for i, sample := range expected {
		if toks[i].Text() != sample.text || toks[i].SourceName() != sample.origin {
			t.Errorf("token %d: expecting %q from %s, got %q from %s",
				i, sample.text, sample.origin, toks[i].Text(), toks[i].SourceName())
		}
	}

	// resumption: d follows the include directive in its own file
	if toks[5].Line() != 1 || toks[5].Col() != 12 {
		t.Errorf("expecting token d at 1:12, got %d:%d", toks[5].Line(), toks[5].Col())
	}
}

func TestTermination(t *testing.T) {
	files := map[string]string{
		"main.src": "a @one.src",
		"@one.src": "b",
	}

	s := buildStream(t, files, "main.src")
	drain(t, s)
	if s.Depth() != 0 {
		t.Fatalf("expecting empty stack after draining, depth is %d", s.Depth())
	}

	for i := 0; i < 3; i++ {
		tok, e := s.Next(0)
		if e != nil {
			t.Fatalf("unexpected error: %s", e.Error())
		}
		if tok.Type() != lexer.EofTokenType {
			t.Fatalf("expecting EoF, got %q", tok.Text())
		}
		if tok.SourceName() != "main.src" {
			t.Errorf("EoF must stay on the last drained source, got %s", tok.SourceName())
		}
	}
}

func TestIncludeTokenEmitted(t *testing.T) {
	files := map[string]string{
		"main.src": "a @one.src",
		"@one.src": "b",
	}

	s := buildStream(t, files, "main.src")
	if _, e := s.Next(0); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	tok, e := s.Next(0)
	if e != nil {
		t.Fatalf("a successful include must not fail: %v", e)
	}
	if tok == nil || tok.Text() != "@one.src" || tok.SourceName() != "main.src" {
		t.Fatalf("expecting the directive token from the includer, got %v", tok)
	}
	if s.Depth() != 2 {
		t.Errorf("expecting the included source on the stack, depth is %d", s.Depth())
	}
}

func TestMissingIncludeAfterToken(t *testing.T) {
	files := map[string]string{"main.src": "a @nope.src"}

	s := buildStream(t, files, "main.src")
	if _, e := s.Next(0); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	_, e := s.Next(0)
	if e == nil {
		t.Fatal("expecting an error for a missing include target")
	}
	ee, f := e.(*err.Error)
	if !f || ee.Code != OpenError {
		t.Fatalf("expecting code %d, got %v", OpenError, e)
	}

	// the token before the directive is not part of it
	expected := "file not found at main.src:1:3: a @nope.src"
	if ee.Message != expected {
		t.Errorf("expecting %q, got %q", expected, ee.Message)
	}
}

func TestMissingInclude(t *testing.T) {
	files := map[string]string{"main.src": "a\n@nope.src\n"}

	s := buildStream(t, files, "main.src")
	if _, e := s.Next(0); e != nil {
		t.Fatalf("unexpected error: %s", e.Error())
	}

	_, e := s.Next(0)
	if e == nil {
		t.Fatal("expecting an error for a missing include target")
	}
	ee, f := e.(*err.Error)
	if !f || ee.Code != OpenError {
		t.Fatalf("expecting code %d, got %v", OpenError, e)
	}

	expected := "file not found at main.src:2:1: @nope.src"
	if ee.Message != expected {
		t.Errorf("expecting %q, got %q", expected, ee.Message)
	}
}

func TestDepthLimit(t *testing.T) {
	files := map[string]string{"main.src": "@main.src x"}

	s := buildStream(t, files, "main.src", WithMaxDepth(3))
	var e error
	for i := 0; e == nil && i < 10; i++ {
		_, e = s.Next(0)
	}

	if e == nil {
		t.Fatal("expecting a depth limit error")
	}
	ee, f := e.(*err.Error)
	if !f || ee.Code != DepthError {
		t.Fatalf("expecting code %d, got %v", DepthError, e)
	}
	if !strings.Contains(ee.Message, "maximum include depth (3) exceeded") {
		t.Errorf("unexpected message: %q", ee.Message)
	}
}
