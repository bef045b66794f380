package results

import (
	"path/filepath"
	"testing"

	"github.com/J-Moravec/BayesMonophyly/bayes"
)

func openStore(tst *testing.T) *Store {
	tst.Helper()
	store, err := Open(filepath.Join(tst.TempDir(), "results.db"))
	if err != nil {
		tst.Fatal("Error opening store:", err)
	}
	tst.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoad(tst *testing.T) {
	store := openStore(tst)

	res := &bayes.Result{
		TotalTrees:    12,
		RetainedTrees: 10,
		Monophyletic:  5,
		Expected:      2,
		Prior:         0.2,
		Posterior:     0.5,
		BayesFactor:   4,
		Trace:         []float64{1, 0.5, 2. / 3},
	}
	if err := store.Save("run1", res); err != nil {
		tst.Fatal("Error saving result:", err)
	}

	loaded, err := store.Load("run1")
	if err != nil {
		tst.Fatal("Error loading result:", err)
	}
	if loaded.BayesFactor != res.BayesFactor || loaded.Monophyletic != res.Monophyletic {
		tst.Error("Loaded result differs:", loaded)
	}
	if len(loaded.Trace) != 3 {
		tst.Error("Expected a trace of length 3, got", loaded.Trace)
	}
}

func TestLoadMissing(tst *testing.T) {
	store := openStore(tst)
	if _, err := store.Load("nothing"); err == nil {
		tst.Error("Expected an error for a missing run")
	}
}

func TestNames(tst *testing.T) {
	store := openStore(tst)

	for _, name := range []string{"b", "a"} {
		if err := store.Save(name, &bayes.Result{}); err != nil {
			tst.Fatal("Error saving result:", err)
		}
	}
	names, err := store.Names()
	if err != nil {
		tst.Fatal("Error listing runs:", err)
	}
	// bolt keeps keys sorted
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		tst.Error("Expected [a b], got", names)
	}
}
