package tree

import (
	"errors"
	"fmt"
)

// ErrSpeciesNotInTree is returned when a target taxon id does not
// appear among the leaves of a tree. Tree lines are parsed
// independently of the translate table, so an inconsistent file can
// trigger this even after successful translation.
var ErrSpeciesNotInTree = errors.New("species is not in the tree")

// IsMonophyletic tests whether the target taxa form a clade: a node
// whose descendant leaves are exactly the target set. In an unrooted
// tree the serialized root is an artifact, so the target is also
// monophyletic if some node's descendant leaves are exactly the
// complement of the target; removing the branch above that node
// splits the tree into the target and everything else.
func (tree *Tree) IsMonophyletic(target []int, rooted bool) (bool, error) {
	inTree := make(map[int]bool, tree.NLeaves())
	for _, id := range tree.Leaves() {
		inTree[id] = true
	}

	targets := make(map[int]bool, len(target))
	for _, id := range target {
		if !inTree[id] {
			return false, fmt.Errorf("%w: taxon %d", ErrSpeciesNotInTree, id)
		}
		targets[id] = true
	}

	want := len(targets)
	complement := tree.NLeaves() - want

	// Post-order traversal counting, for every node, the leaves
	// below it and how many of them are targets. A node carries the
	// target clade when both counts equal the target size; it
	// carries the complement when no leaf below it is a target and
	// the leaf count matches exactly.
	found := false
	var count func(node *Node) (nTarget, nLeaves int)
	count = func(node *Node) (nTarget, nLeaves int) {
		if node.IsTerminal() {
			if targets[node.Taxon] {
				nTarget = 1
			}
			nLeaves = 1
		} else {
			for _, child := range node.childNodes {
				t, l := count(child)
				nTarget += t
				nLeaves += l
			}
		}
		if nTarget == want && nLeaves == want {
			found = true
		}
		if !rooted && nTarget == 0 && nLeaves == complement {
			found = true
		}
		return nTarget, nLeaves
	}
	count(tree.Node)

	return found, nil
}
