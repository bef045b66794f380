// Package nexus reads the trees block of NEXUS files produced by
// Bayesian phylogenetic samplers such as MrBayes and BEAST. Only the
// subset of the format written by those programs is supported: a
// translate table followed by tree definitions. Branch lengths and
// rate annotations are stripped, so the trees come out as bare
// topology strings.
package nexus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Parsing errors. Any of them means the input file is not a tree
// sample this package can read.
var (
	ErrNotNexus           = errors.New("not a NEXUS file")
	ErrNoTreesBlock       = errors.New("begin trees block not found")
	ErrMalformedTranslate = errors.New("malformed begin trees block, \"translate\" not found")
	ErrNoTranslateEnd     = errors.New("end of translate block not found")
	ErrNoTrees            = errors.New("no tree was found")
)

// BEAST writes per-branch rates as [&rate=1.234e-5] tags; MrBayes
// writes plain branch lengths. Both are removed to get a cladogram.
var (
	rateTag      = regexp.MustCompile(`\[&rate=[0-9]*\.?[0-9]*([eE]-[0-9]+)?\]`)
	branchLength = regexp.MustCompile(`:[0-9]+\.?[0-9]*([eE]-[0-9]+)?`)
)

const unrootedMarker = "[&U] "

// clean strips newline, tabs and spaces around a line.
func clean(line string) string {
	return strings.Trim(line, "\n\t\r ")
}

// Parse reads a single NEXUS tree file. It returns the translate
// table and all tree definitions as bare topology strings, in
// sampling order.
func Parse(rd io.Reader) (taxa TaxonTable, trees []string, err error) {
	var lines []string
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	// The first non-empty line must identify the format.
	i := 0
	for ; i < len(lines) && clean(lines[i]) == ""; i++ {
	}
	if i >= len(lines) || strings.ToLower(clean(lines[i])) != "#nexus" {
		return nil, nil, ErrNotNexus
	}

	// Find the trees block.
	blockStart := -1
	for ; i < len(lines); i++ {
		if strings.ToLower(clean(lines[i])) == "begin trees;" {
			blockStart = i
			break
		}
	}
	if blockStart < 0 {
		return nil, nil, ErrNoTreesBlock
	}

	// The translate table must follow immediately.
	if blockStart+1 >= len(lines) ||
		strings.ToLower(clean(lines[blockStart+1])) != "translate" {
		return nil, nil, ErrMalformedTranslate
	}

	// Read id/name pairs until the first line which is not a pair.
	// That line terminates the table and is examined again below.
	// A taxa block is not required by the samplers, so the number of
	// taxa is only known from the translate table. Duplicate ids
	// overwrite earlier entries.
	taxa = make(TaxonTable)
	blockEnd := -1
	for j := blockStart + 2; j < len(lines); j++ {
		pair := strings.Fields(strings.Trim(lines[j], "\n\t\r,; "))
		if len(pair) != 2 {
			blockEnd = j
			break
		}
		id, err := strconv.Atoi(pair[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: bad taxon id %q", ErrMalformedTranslate, pair[0])
		}
		taxa[id] = pair[1]
	}
	if blockEnd < 0 {
		return nil, nil, ErrNoTranslateEnd
	}

	// Every tree definition starts with "tree"; find the first one,
	// starting from the translate terminator itself.
	treesStart := -1
	for j := blockEnd; j < len(lines); j++ {
		line := clean(lines[j])
		if len(line) >= 4 && strings.ToLower(line[:4]) == "tree" {
			treesStart = j
			break
		}
	}
	if treesStart < 0 {
		return nil, nil, ErrNoTrees
	}

	for _, line := range lines[treesStart:] {
		line = strings.Trim(line, "\n\t\r; ")
		if line == "" {
			continue
		}
		if strings.ToLower(line) == "end" {
			break
		}
		split := strings.SplitN(line, " = ", 2)
		if len(split) != 2 {
			return nil, nil, fmt.Errorf("%w: tree definition without \" = \" separator", ErrNoTrees)
		}
		tree := strings.TrimSpace(split[1])
		tree = strings.TrimPrefix(tree, unrootedMarker)
		if strings.Contains(tree, "[") {
			tree = rateTag.ReplaceAllString(tree, "")
		}
		tree = branchLength.ReplaceAllString(tree, "")
		trees = append(trees, tree)
	}

	return taxa, trees, nil
}
