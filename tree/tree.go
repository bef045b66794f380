// Package tree implements a phylogenetic tree topology with integer
// taxon ids on the leaves and a monophyly test over it. Trees are
// built from bare Newick-like topology strings (no branch lengths, no
// annotations), as produced by the nexus package.
package tree

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedNewick is returned for topology strings which do not
// follow the grammar: unbalanced brackets, an internal node with
// fewer than two children, or a non-integer leaf token.
var ErrMalformedNewick = errors.New("malformed newick string")

// Tree is a tree topology. The root node is the outermost bracket
// pair of the topology string; whether it represents a real ancestor
// is decided by the caller, not by the parser.
type Tree struct {
	*Node
	nLeaves int
}

// Node is a node of a tree. A node owns its children; Parent is a
// back-reference used for navigation only.
type Node struct {
	// Taxon is the taxon id; it is only meaningful for leaves.
	Taxon      int
	Parent     *Node
	childNodes []*Node
}

// AddChild adds a child node.
func (node *Node) AddChild(subNode *Node) {
	subNode.Parent = node
	node.childNodes = append(node.childNodes, subNode)
}

// ChildNodes returns the children of a node.
func (node *Node) ChildNodes() []*Node {
	return node.childNodes
}

// IsTerminal returns true if the node is a leaf.
func (node *Node) IsTerminal() bool {
	return len(node.childNodes) == 0
}

// IsRoot returns true if the node has no parent.
func (node *Node) IsRoot() bool {
	return node.Parent == nil
}

// String returns the node and its descendants in topology notation.
func (node *Node) String() (s string) {
	if node.IsTerminal() {
		return strconv.Itoa(node.Taxon)
	}
	s += "("
	for i, child := range node.childNodes {
		s += child.String()
		if i != len(node.childNodes)-1 {
			s += ","
		}
	}
	s += ")"
	if node.IsRoot() {
		s += ";"
	}
	return s
}

// leaves appends the taxon ids of all leaves under node.
func (node *Node) leaves(ids []int) []int {
	if node.IsTerminal() {
		return append(ids, node.Taxon)
	}
	for _, child := range node.childNodes {
		ids = child.leaves(ids)
	}
	return ids
}

// NLeaves returns the number of leaves of the tree.
func (tree *Tree) NLeaves() int {
	if tree.nLeaves == 0 {
		tree.nLeaves = len(tree.Leaves())
	}
	return tree.nLeaves
}

// Leaves returns the taxon ids of all leaves of the tree.
func (tree *Tree) Leaves() []int {
	return tree.leaves(nil)
}

func isSpecial(c rune) bool {
	switch c {
	case '(', ')', ';', ',':
		return true
	}
	return false
}

// topologySplit is a bufio.SplitFunc returning brackets, commas and
// semicolons as one-character tokens and everything else as words.
func topologySplit(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	// Skip leading spaces; and return 1-char tokens.
	for width := 0; start < len(data); start += width {
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if isSpecial(r) {
			return start + width, data[start : start+width], nil
		}
		if !unicode.IsSpace(r) {
			break
		}
	}
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// Scan until space or special character.
	for width, i := 0, start; i < len(data); i += width {
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) || isSpecial(r) {
			return i, data[start:i], nil
		}
	}
	// At EOF a final non-terminated word is a valid token.
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data.
	return 0, nil, nil
}

// tokenize splits a topology string into tokens.
func tokenize(s string) ([]string, error) {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(topologySplit)
	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens, scanner.Err()
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

// clade parses either a bracketed list of two or more clades or a
// single integer leaf token.
func (p *parser) clade() (*Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of string", ErrMalformedNewick)
	}
	if tok != "(" {
		taxon, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: bad leaf token %q", ErrMalformedNewick, tok)
		}
		return &Node{Taxon: taxon}, nil
	}

	node := &Node{}
	for {
		child, err := p.clade()
		if err != nil {
			return nil, err
		}
		node.AddChild(child)

		tok, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("%w: unbalanced brackets", ErrMalformedNewick)
		}
		if tok == "," {
			continue
		}
		if tok == ")" {
			break
		}
		return nil, fmt.Errorf("%w: unexpected token %q", ErrMalformedNewick, tok)
	}
	if len(node.childNodes) < 2 {
		return nil, fmt.Errorf("%w: clade with less than two children", ErrMalformedNewick)
	}
	return node, nil
}

// ParseTopology parses a bare topology string into a tree. The
// trailing semicolon is optional.
func ParseTopology(s string) (*Tree, error) {
	tokens, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.clade()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok && tok == ";" {
		p.next()
	}
	if tok, ok := p.peek(); ok {
		return nil, fmt.Errorf("%w: trailing %q", ErrMalformedNewick, tok)
	}

	return &Tree{Node: root}, nil
}
