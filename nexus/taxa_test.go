package nexus

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckEquivalency(tst *testing.T) {
	a := TaxonTable{1: "a", 2: "b", 3: "c"}
	b := TaxonTable{3: "c", 1: "a", 2: "b"}

	if err := CheckEquivalency([]TaxonTable{a}); err != nil {
		tst.Error("Single table must pass:", err)
	}
	if err := CheckEquivalency([]TaxonTable{a, b}); err != nil {
		tst.Error("Equivalent tables must pass:", err)
	}
}

func TestCheckEquivalencyCount(tst *testing.T) {
	a := TaxonTable{1: "a", 2: "b", 3: "c"}
	b := TaxonTable{1: "a", 2: "b"}

	err := CheckEquivalency([]TaxonTable{a, b})
	if !errors.Is(err, ErrTaxaMismatch) {
		tst.Fatal("Expected taxa mismatch, got:", err)
	}
	if !strings.Contains(err.Error(), "file 2") {
		tst.Error("Error must name the offending file:", err)
	}
}

func TestCheckEquivalencyNames(tst *testing.T) {
	a := TaxonTable{1: "a", 2: "b", 3: "c"}
	b := TaxonTable{1: "a", 2: "x", 3: "c"}

	err := CheckEquivalency([]TaxonTable{a, a, b})
	if !errors.Is(err, ErrTaxaMismatch) {
		tst.Fatal("Expected taxa mismatch, got:", err)
	}
	if !strings.Contains(err.Error(), "file 3") {
		tst.Error("Error must name the offending file:", err)
	}
}

func TestValidateSpecies(tst *testing.T) {
	if err := ValidateSpecies([]string{"a", "b"}); err != nil {
		tst.Error("Two distinct species must pass:", err)
	}
	if err := ValidateSpecies([]string{"a"}); !errors.Is(err, ErrTooFewSpecies) {
		tst.Error("Expected too few species, got:", err)
	}
	if err := ValidateSpecies([]string{"a", "b", "a"}); !errors.Is(err, ErrDuplicateSpecies) {
		tst.Error("Expected duplicate species, got:", err)
	}
}

func TestTranslateSpecies(tst *testing.T) {
	taxa := TaxonTable{1: "a", 2: "b", 3: "c", 10: "d"}

	ids, err := taxa.TranslateSpecies([]string{"d", "b"})
	if err != nil {
		tst.Fatal("Error translating species:", err)
	}
	// caller's order is preserved
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 2 {
		tst.Error("Expected [10 2], got", ids)
	}

	_, err = taxa.TranslateSpecies([]string{"a", "z"})
	if !errors.Is(err, ErrUnknownSpecies) {
		tst.Error("Expected unknown species, got:", err)
	}
}
