package tree

import (
	"testing"

	"relex/lexer"
	"relex/source"
)

func buildTestTree() *Node {
	src := source.New("test", []byte("a b"))
	root := NewNode("file")
	line := NewNode("line")
	root.AddChild(line)
	line.AddChild(NewTokenNode(lexer.NewToken(0, "word", "a", source.NewPos(src, 0))))
	line.AddChild(NewTokenNode(lexer.NewToken(0, "word", "b", source.NewPos(src, 2))))
	root.AddChild(NewNode("empty"))
	return root
}

func TestPretty(t *testing.T) {
	expected := "file\n" +
		"  line\n" +
		"    word \"a\"\n" +
		"    word \"b\"\n" +
		"  empty\n"

	root := buildTestTree()
	if root.Pretty() != expected {
		t.Errorf("expecting:\n%sgot:\n%s", expected, root.Pretty())
	}
	if root.String() != root.Pretty() {
		t.Error("String and Pretty disagree")
	}
}

func TestStructure(t *testing.T) {
	root := buildTestTree()
	line := root.Children()[0]
	if line.Parent() != root || line.Name() != "line" || line.IsToken() {
		t.Fatal("wrong first child")
	}

	leaf := line.Children()[0]
	if !leaf.IsToken() || leaf.Token().Text() != "a" || leaf.Name() != "word" {
		t.Fatal("wrong token leaf")
	}

	first := root.FirstToken()
	if first == nil || first.Text() != "a" {
		t.Error("FirstToken must return the leftmost leaf")
	}
	if root.Children()[1].FirstToken() != nil {
		t.Error("FirstToken of an empty subtree must be nil")
	}
}

func TestTokensAndWalk(t *testing.T) {
	root := buildTestTree()

	toks := root.Tokens()
	if len(toks) != 2 || toks[0].Text() != "a" || toks[1].Text() != "b" {
		t.Errorf("expecting tokens [a b], got %d tokens", len(toks))
	}

	visited := make([]string, 0)
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name())
		return n.Name() != "line"
	})
	if len(visited) != 3 || visited[0] != "file" || visited[1] != "line" || visited[2] != "empty" {
		t.Errorf("expecting [file line empty], got %v", visited)
	}
}
