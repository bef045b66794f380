package nexus

import (
	"errors"
	"fmt"
	"sort"
)

// Validation errors. They mean the request or the combination of
// input files does not make sense, even if every file parsed.
var (
	ErrTooFewSpecies    = errors.New("must specify at least 2 species")
	ErrDuplicateSpecies = errors.New("species are not unique")
	ErrTaxaMismatch     = errors.New("tree files are not equivalent")
	ErrUnknownSpecies   = errors.New("species is not among the tree taxa")
)

// TaxonTable maps taxon ids from the translate table to taxon names.
// Ids are not required to be contiguous.
type TaxonTable map[int]string

type taxonPair struct {
	id   int
	name string
}

// pairs returns the table entries sorted by id. Map iteration order
// is not stable, the comparison below must not depend on it.
func (t TaxonTable) pairs() []taxonPair {
	ps := make([]taxonPair, 0, len(t))
	for id, name := range t {
		ps = append(ps, taxonPair{id, name})
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].id < ps[j].id })
	return ps
}

// CheckEquivalency tests that every table contains the same taxa
// under the same ids as the first one. Multiple files make sense only
// when they come from the same analysis (e.g. the standard two runs
// of MrBayes), where the translate tables are identical.
func CheckEquivalency(tables []TaxonTable) error {
	if len(tables) <= 1 {
		return nil
	}
	template := tables[0].pairs()
	for num, table := range tables[1:] {
		if len(table) != len(tables[0]) {
			return fmt.Errorf("%w: number of taxa in file 1 and file %d differs",
				ErrTaxaMismatch, num+2)
		}
		matched := table.pairs()
		for i, p := range template {
			if matched[i] != p {
				return fmt.Errorf("%w: taxon (%d, %s) in file 1 versus (%d, %s) in file %d",
					ErrTaxaMismatch, p.id, p.name, matched[i].id, matched[i].name, num+2)
			}
		}
	}
	return nil
}

// ValidateSpecies checks the requested species list before any file
// is read: the test needs at least two distinct species.
func ValidateSpecies(species []string) error {
	if len(species) < 2 {
		return ErrTooFewSpecies
	}
	seen := make(map[string]bool, len(species))
	for _, s := range species {
		if seen[s] {
			return fmt.Errorf("%w: %q", ErrDuplicateSpecies, s)
		}
		seen[s] = true
	}
	return nil
}

// TranslateSpecies converts species names into taxon ids using
// reverse lookup on the table, preserving the caller's order.
func (t TaxonTable) TranslateSpecies(species []string) ([]int, error) {
	reversed := make(map[string]int, len(t))
	for id, name := range t {
		reversed[name] = id
	}
	ids := make([]int, 0, len(species))
	for _, s := range species {
		id, ok := reversed[s]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
