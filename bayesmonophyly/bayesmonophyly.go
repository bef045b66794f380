/*

Bayesmonophyly performs a Bayesian monophyly test on tree samples
from MrBayes or BEAST. The test is a simple comparison of the number
of sampled trees in which the chosen species are monophyletic versus
the number of trees where they are not, corrected by the prior chance
of obtaining a monophyletic tree at random (i.e., from data that
contain no information regarding monophyly).

The basic usage looks like this:

	bayesmonophyly -s speciesA -s speciesB run1.t run2.t

, this will test the monophyly of speciesA and speciesB over both
runs, discarding the first 20% of every run as burn-in.

To see all the options run:

	bayesmonophyly --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"github.com/J-Moravec/BayesMonophyly/bayes"
	"github.com/J-Moravec/BayesMonophyly/nexus"
	"github.com/J-Moravec/BayesMonophyly/results"
	"github.com/J-Moravec/BayesMonophyly/trace"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("bayesmonophyly")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("bayesmonophyly", "Bayesian monophyly test on tree samples from MrBayes or BEAST").Version(version)

	// test parameters
	species = app.Flag("species", "species that should be monophyletic (repeat the flag for every species)").
		Short('s').Required().Strings()
	burnin = app.Flag("burnin", "fraction of every run to discard as burn-in").
		Short('b').Default("0.2").Float64()
	rooted = app.Flag("rooted", "treat the sampled trees as rooted; "+
		"by default trees are unrooted and the serialized root is ignored").Bool()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF   = app.Flag("json", "write json summary to a file").String()
	dbF     = app.Flag("db", "save the run result to a bolt database").String()
	runName = app.Flag("name", "run name used as the database key").Default("monophyly").String()
	traceF  = app.Flag("trace", "write a running posterior plot (png, svg or pdf)").String()

	// input trees
	inputFileNames = app.Arg("input", "one or more tree sample files; "+
		"multiple files should come from the same analysis "+
		"(such as the standard two runs of MrBayes)").Required().ExistingFiles()
)

// parseFile reads the taxon table and the topology strings of a
// single tree sample file.
func parseFile(fn string) (nexus.TaxonTable, []string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return nexus.Parse(f)
}

func run() (*bayes.Result, error) {
	// the test makes sense only for 2 or more distinct species;
	// fail before reading any file
	if err := nexus.ValidateSpecies(*species); err != nil {
		return nil, err
	}
	if *burnin < 0 || *burnin >= 1 {
		return nil, fmt.Errorf("burnin must be in [0, 1), got %v", *burnin)
	}

	tables := make([]nexus.TaxonTable, 0, len(*inputFileNames))
	runs := make([][]string, 0, len(*inputFileNames))
	for _, fn := range *inputFileNames {
		taxa, trees, err := parseFile(fn)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", fn, err)
		}
		log.Infof("Read %d trees and %d taxa from %s", len(trees), len(taxa), fn)
		tables = append(tables, taxa)
		runs = append(runs, trees)
	}

	if err := nexus.CheckEquivalency(tables); err != nil {
		return nil, err
	}

	// all files are equivalent, translate using the first table
	target, err := tables[0].TranslateSpecies(*species)
	if err != nil {
		return nil, err
	}
	log.Infof("Translated species ids: %v", target)

	// burn-in is applied to every run separately, then the runs
	// are concatenated in input order
	total := 0
	var retained []string
	for _, trees := range runs {
		total += len(trees)
		retained = append(retained, bayes.Burnin(trees, *burnin)...)
	}
	log.Infof("Retained %d of %d trees after burn-in", len(retained), total)

	n, tr, err := bayes.Count(retained, target, *rooted)
	if err != nil {
		return nil, err
	}

	res, err := bayes.Test(n, len(retained), total, len(tables[0]), len(target), *rooted)
	if err != nil {
		return nil, err
	}
	res.Trace = tr
	return res, nil
}

// report prints the test outcome in the format of the original
// BayesMonophyly script.
func report(res *bayes.Result) {
	fmt.Printf(`Total trees read: %d
Trees after burnin: %d
Monophyletic trees found: %d
Monophyletic trees expected: %d
(in the case of noninformative data)

Prior: %.4f
Posterior: %.4f
Bayes factor: %.4f
`, res.TotalTrees, res.RetainedTrees, res.Monophyletic, res.Expected,
		res.Prior, res.Posterior, res.BayesFactor)
	if res.BayesFactor == 0 {
		fmt.Printf("Probability of this by chance alone given prior: %.2e\n", res.ChanceAlone)
	}
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "bayesmonophyly")
	logging.SetLevel(level, "results")

	log.Info(version)
	log.Info("Command line:", os.Args)

	startTime := time.Now()

	res, err := run()
	if err != nil {
		log.Fatal(err)
	}

	report(res)

	summary := &RunSummary{
		Version:     version,
		CommandLine: os.Args,
		Species:     *species,
		InputFiles:  *inputFileNames,
		Burnin:      *burnin,
		Rooted:      *rooted,
		Time:        time.Since(startTime).Seconds(),
		Result:      res,
	}

	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}

	if *dbF != "" {
		store, err := results.Open(*dbF)
		if err != nil {
			log.Error("Error opening result database:", err)
		} else {
			if err := store.Save(*runName, res); err == nil {
				log.Noticef("Saved result as %q", *runName)
			}
			store.Close()
		}
	}

	if *traceF != "" {
		if err := trace.Plot(res.Trace, *traceF); err != nil {
			log.Error("Error writing trace plot:", err)
		}
	}
}
