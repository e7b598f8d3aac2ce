// Package tree defines concrete syntax tree nodes produced by the parser,
// with traversal helpers and an indented textual rendering.
package tree

import (
	"strconv"
	"strings"

	"relex/lexer"
)

// Node is either a nonterminal with children or a token leaf.
type Node struct {
	name     string
	token    *lexer.Token
	parent   *Node
	children []*Node
}

// NewNode creates a nonterminal node.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// NewTokenNode creates a token leaf.
func NewTokenNode(t *lexer.Token) *Node {
	return &Node{name: t.TypeName(), token: t}
}

// Name returns the nonterminal name, or the token type name for leaves.
func (n *Node) Name() string {
	return n.name
}

func (n *Node) IsToken() bool {
	return n.token != nil
}

// Token returns the leaf token, nil for nonterminal nodes.
func (n *Node) Token() *lexer.Token {
	return n.token
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// FirstToken returns the leftmost token under n, or nil for an empty subtree.
func (n *Node) FirstToken() *lexer.Token {
	if n.token != nil {
		return n.token
	}

	for _, c := range n.children {
		t := c.FirstToken()
		if t != nil {
			return t
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first document order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Tokens returns all token leaves under n in document order.
func (n *Node) Tokens() []*lexer.Token {
	res := make([]*lexer.Token, 0)
	n.Walk(func(c *Node) bool {
		if c.token != nil {
			res = append(res, c.token)
		}
		return true
	})
	return res
}

// Pretty renders the tree as an indented outline, one node per line:
// nonterminals by name, tokens as name followed by their quoted text.
func (n *Node) Pretty() string {
	var b strings.Builder
	n.pretty(&b, 0)
	return b.String()
}

func (n *Node) pretty(b *strings.Builder, level int) {
	b.WriteString(strings.Repeat("  ", level))
	b.WriteString(n.name)
	if n.token != nil {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(n.token.Text()))
	}
	b.WriteByte('\n')

	for _, c := range n.children {
		c.pretty(b, level+1)
	}
}

func (n *Node) String() string {
	return n.Pretty()
}
