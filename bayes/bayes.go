package bayes

import (
	"fmt"
	"math"

	"github.com/J-Moravec/BayesMonophyly/tree"
)

// Result stores the outcome of a monophyly test.
type Result struct {
	// TotalTrees is the number of trees read from all files.
	TotalTrees int `json:"totalTrees"`
	// RetainedTrees is the number of trees left after burn-in.
	RetainedTrees int `json:"retainedTrees"`
	// Monophyletic is the number of retained trees in which the
	// target species are monophyletic.
	Monophyletic int `json:"monophyleticTrees"`
	// Expected is the number of monophyletic trees expected from
	// noninformative data, round(prior * retained).
	Expected int `json:"expectedMonophyletic"`
	// Prior is the probability of monophyly under a uniform
	// topology prior.
	Prior float64 `json:"prior"`
	// Posterior is the observed fraction of monophyletic trees.
	Posterior float64 `json:"posterior"`
	// BayesFactor is the ratio of posterior odds to prior odds.
	BayesFactor float64 `json:"bayesFactor"`
	// ChanceAlone is the probability of observing zero
	// monophyletic trees under the prior-only model,
	// (1-prior)^retained. It is only set when BayesFactor is 0.
	ChanceAlone float64 `json:"chanceAlone,omitempty"`
	// Trace is the running posterior after each retained sample,
	// for convergence inspection.
	Trace []float64 `json:"trace,omitempty"`
}

// Burnin drops the first floor(len*fraction) trees of a single run.
// Burn-in is applied per run before runs are concatenated, because it
// removes the early, non-equilibrium part of each chain.
func Burnin(trees []string, fraction float64) []string {
	return trees[int(float64(len(trees))*fraction):]
}

// Count parses every topology string and classifies it with the
// monophyly test. It returns the monophyletic tree count and the
// running posterior trace, one value per tree. Trees are transient,
// each one is discarded right after classification.
func Count(topologies []string, target []int, rooted bool) (n int, trace []float64, err error) {
	trace = make([]float64, 0, len(topologies))
	for i, s := range topologies {
		t, err := tree.ParseTopology(s)
		if err != nil {
			return 0, nil, fmt.Errorf("tree %d: %w", i+1, err)
		}
		mono, err := t.IsMonophyletic(target, rooted)
		if err != nil {
			return 0, nil, fmt.Errorf("tree %d: %w", i+1, err)
		}
		if mono {
			n++
		}
		trace = append(trace, float64(n)/float64(i+1))
	}
	return n, trace, nil
}

// odds converts a probability into odds.
func odds(p float64) float64 {
	return p / (1 - p)
}

// Test computes prior, posterior and Bayes factor from the monophyly
// counts. A posterior of exactly 1 is rejected as degenerate, its
// odds are infinite; a posterior of 0 is valid and additionally
// yields the probability of such an outcome by chance alone.
func Test(monophyletic, retained, totalRead, nTaxa, nSpecies int, rooted bool) (*Result, error) {
	prior, err := Prior(nTaxa, nSpecies, rooted)
	if err != nil {
		return nil, err
	}

	posterior := float64(monophyletic) / float64(retained)
	if posterior == 1 {
		return nil, ErrDegeneratePosterior
	}

	res := &Result{
		TotalTrees:    totalRead,
		RetainedTrees: retained,
		Monophyletic:  monophyletic,
		Expected:      int(math.Round(prior * float64(retained))),
		Prior:         prior,
		Posterior:     posterior,
		BayesFactor:   odds(posterior) / odds(prior),
	}
	if res.BayesFactor == 0 {
		res.ChanceAlone = math.Pow(1-prior, float64(retained))
	}
	return res, nil
}
