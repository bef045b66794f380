package main

import "github.com/J-Moravec/BayesMonophyly/bayes"

// RunSummary is the json summary of a whole invocation.
type RunSummary struct {
	// Version stores the bayesmonophyly version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Species are the species tested for monophyly.
	Species []string `json:"species"`
	// InputFiles are the tree sample files, in input order.
	InputFiles []string `json:"inputFiles"`
	// Burnin is the burn-in fraction applied to every run.
	Burnin float64 `json:"burnin"`
	// Rooted is true when the trees were treated as rooted.
	Rooted bool `json:"rooted"`
	// Time is the computation time in seconds.
	Time float64 `json:"time"`
	// Result is the test outcome.
	Result *bayes.Result `json:"result"`
}
