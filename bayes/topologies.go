// Package bayes computes the Bayesian monophyly test: it compares
// the fraction of sampled trees in which a set of taxa is
// monophyletic against the fraction expected from an uninformative
// prior over tree topologies, and reports the Bayes factor.
package bayes

import (
	"errors"
	"math/big"
)

// Evaluation errors. Degenerate parameter combinations make the test
// statistically meaningless and must not silently produce a number.
var (
	ErrDegeneratePrior     = errors.New("degenerate prior (exactly 0 or 1)")
	ErrDegeneratePosterior = errors.New("degenerate posterior (exactly 1)")
)

var one = big.NewRat(1, 1)

// doubleFactorial returns n!! for odd n; counts of labeled tree
// topologies are products of consecutive odd numbers. For n < 1 the
// empty product 1 is returned. Exact integers are required: float64
// overflows already at about 85 taxa.
func doubleFactorial(n int) *big.Int {
	f := big.NewInt(1)
	for k := int64(3); k <= int64(n); k += 2 {
		f.Mul(f, big.NewInt(k))
	}
	return f
}

// UnrootedTopologies returns the number of distinct unrooted
// bifurcating topologies on n labeled leaves, (2n-5)!!. For n < 3
// there is a single topology.
func UnrootedTopologies(n int) *big.Int {
	if n < 3 {
		return big.NewInt(1)
	}
	return doubleFactorial(2*n - 5)
}

// RootedTopologies returns the number of distinct rooted bifurcating
// topologies on n labeled leaves, (2n-3)!!. For n < 2 there is a
// single topology.
func RootedTopologies(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return doubleFactorial(2*n - 3)
}

func topologies(n int, rooted bool) *big.Int {
	if rooted {
		return RootedTopologies(n)
	}
	return UnrootedTopologies(n)
}

// Prior returns the probability that nSpecies out of nTaxa leaves
// form a clade in a topology drawn uniformly at random. The target
// leaves are collapsed into a single super-leaf; the arrangements
// inside the clade are counted as rooted topologies, because a
// resolved clade is rooted at its own ancestral node even in an
// unrooted tree.
func Prior(nTaxa, nSpecies int, rooted bool) (float64, error) {
	num := new(big.Int).Mul(topologies(nTaxa-nSpecies+1, rooted), RootedTopologies(nSpecies))
	den := topologies(nTaxa, rooted)
	prior := new(big.Rat).SetFrac(num, den)
	if prior.Sign() <= 0 || prior.Cmp(one) >= 0 {
		return 0, ErrDegeneratePrior
	}
	p, _ := prior.Float64()
	return p, nil
}
