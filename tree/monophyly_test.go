package tree

import (
	"errors"
	"testing"
)

func checkMonophyly(tst *testing.T, topology string, target []int, rooted, expected bool) {
	tst.Helper()
	t, err := ParseTopology(topology)
	if err != nil {
		tst.Fatal("Error parsing tree:", err)
	}
	mono, err := t.IsMonophyletic(target, rooted)
	if err != nil {
		tst.Fatal("Error checking monophyly:", err)
	}
	if mono != expected {
		tst.Errorf("%s: target %v (rooted=%v): expected %v, got %v",
			topology, target, rooted, expected, mono)
	}
}

func TestMonophylyRooted(tst *testing.T) {
	checkMonophyly(tst, rootedTree, []int{1, 2}, true, true)
	checkMonophyly(tst, rootedTree, []int{1, 3}, true, false)
	checkMonophyly(tst, rootedTree, []int{4, 5}, true, true)
	checkMonophyly(tst, rootedTree, []int{1, 2, 3}, true, true)
	checkMonophyly(tst, rootedTree, []int{2, 3, 4}, true, false)
}

func TestMonophylyUnrooted(tst *testing.T) {
	// {3,4,5} matches no node directly, but its complement {1,2}
	// does; in an unrooted tree that is the same split
	checkMonophyly(tst, unrootedTree, []int{3, 4, 5}, false, true)
	checkMonophyly(tst, unrootedTree, []int{3, 4, 5}, true, false)
	checkMonophyly(tst, unrootedTree, []int{1, 2}, false, true)
	checkMonophyly(tst, unrootedTree, []int{2, 3}, false, false)
	// complement of size one, the split above leaf 5
	checkMonophyly(tst, unrootedTree, []int{1, 2, 3, 4}, false, true)
	checkMonophyly(tst, unrootedTree, []int{1, 2, 3, 4}, true, false)
}

func TestMonophylySpeciesNotInTree(tst *testing.T) {
	t, err := ParseTopology(rootedTree)
	if err != nil {
		tst.Fatal("Error parsing tree:", err)
	}
	_, err = t.IsMonophyletic([]int{1, 6}, true)
	if !errors.Is(err, ErrSpeciesNotInTree) {
		tst.Error("Expected species not in tree, got:", err)
	}
}
