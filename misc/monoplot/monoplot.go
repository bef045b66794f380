// Monoplot replots the running posterior of a monophyly test stored
// in a result database (bayesmonophyly --db).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/J-Moravec/BayesMonophyly/results"
	"github.com/J-Moravec/BayesMonophyly/trace"
)

func main() {
	dbF := flag.String("db", "results.db", "result database")
	name := flag.String("name", "monophyly", "run name")
	out := flag.String("o", "trace.png", "output file (png, svg or pdf)")
	list := flag.Bool("list", false, "list stored runs and exit")
	flag.Parse()

	store, err := results.Open(*dbF)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer store.Close()

	if *list {
		names, err := store.Names()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	res, err := store.Load(*name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(res.Trace) == 0 {
		fmt.Fprintf(os.Stderr, "run %q has no stored trace\n", *name)
		os.Exit(1)
	}

	if err := trace.Plot(res.Trace, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
