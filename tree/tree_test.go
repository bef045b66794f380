package tree

import (
	"errors"
	"testing"
)

const (
	rootedTree   = "(((1,2),3),(4,5));"
	unrootedTree = "((1,2),(3,4),5)"
)

func TestParseTopology(tst *testing.T) {
	t, err := ParseTopology(rootedTree)
	if err != nil {
		tst.Fatal("Error parsing tree:", err)
	}
	if t.String() != rootedTree {
		tst.Error("Expected", rootedTree, "got", t.String())
	}
	if t.NLeaves() != 5 {
		tst.Error("Expected 5 leaves, got", t.NLeaves())
	}
}

func TestParseMultifurcation(tst *testing.T) {
	t, err := ParseTopology(unrootedTree)
	if err != nil {
		tst.Fatal("Error parsing tree:", err)
	}
	if len(t.ChildNodes()) != 3 {
		tst.Error("Expected trifurcating root, got", len(t.ChildNodes()), "children")
	}
}

func TestParseLeaves(tst *testing.T) {
	t, err := ParseTopology("((10,2),(30,4),500);")
	if err != nil {
		tst.Fatal("Error parsing tree:", err)
	}
	leaves := t.Leaves()
	expected := []int{10, 2, 30, 4, 500}
	if len(leaves) != len(expected) {
		tst.Fatal("Expected", expected, "got", leaves)
	}
	for i, id := range expected {
		if leaves[i] != id {
			tst.Error("Expected", expected, "got", leaves)
			break
		}
	}
}

func TestParseMalformed(tst *testing.T) {
	cases := []string{
		"((1,2),3",     // unbalanced brackets
		"(1,2));",      // trailing bracket
		"(1);",         // clade with a single child
		"();",          // empty clade
		"((a,b),c);",   // non-integer leaf
		"(1,2);(3,4);", // trailing content
		"",             // empty string
		"(1,2,(3,);",   // dangling comma
	}
	for _, c := range cases {
		if _, err := ParseTopology(c); !errors.Is(err, ErrMalformedNewick) {
			tst.Errorf("%q: expected malformed newick, got %v", c, err)
		}
	}
}
