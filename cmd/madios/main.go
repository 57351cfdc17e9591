// Command madios runs ADIOS grammar induction over a tokenized corpus.
//
// Usage:
//
//	madios [flags] <input> <eta> <alpha> <context_size> <coverage> [new_sequences]
//
// The positional parameters mirror the classic ADIOS invocation: the corpus
// file, the descent threshold eta, the significance threshold alpha, the
// generalization context window, and the bootstrap overlap (coverage)
// threshold. The optional trailing count asks for that many freshly
// generated sequences after convergence.
//
// Flags:
//
//	-o file    write output to file instead of stdout
//	-json      emit the full report (corpus, paths, lexicon, grammar, timing) as JSON
//	-pcfg      emit only the learned grammar in PCFG format
//	-verbose   narrate progress on stdout
//	-quiet     suppress all non-error output
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/plan-systems/klog"

	"github.com/gitrdm/madios/corpus"
	"github.com/gitrdm/madios/mathutil"
	"github.com/gitrdm/madios/rds"
)

// report is the JSON output document.
type report struct {
	Corpus      [][]string    `json:"corpus"`
	SearchPaths [][]string    `json:"search_paths"`
	Lexicon     []lexiconNode `json:"lexicon"`
	Grammar     string        `json:"grammar"`
	Timing      float64       `json:"timing"`
}

type lexiconNode struct {
	ID      int    `json:"id"`
	Type    int    `json:"type"`
	String  string `json:"string"`
	Parents []int  `json:"parents"`
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{FileNameCharWidth: 16})

	code := run(os.Args[1:])
	klog.Flush()
	os.Exit(code)
}

func run(args []string) int {
	fs := flag.NewFlagSet("madios", flag.ContinueOnError)
	var (
		outputPath string
		jsonMode   bool
		pcfgMode   bool
		verbose    bool
		quiet      bool
	)
	fs.StringVar(&outputPath, "o", "", "output file (default: stdout)")
	fs.BoolVar(&jsonMode, "json", false, "output all results as JSON")
	fs.BoolVar(&pcfgMode, "pcfg", false, "output only the learned grammar in PCFG format")
	fs.BoolVar(&verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&quiet, "quiet", false, "suppress all non-error output")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: madios [flags] <input> <eta> <alpha> <context_size> <coverage> [new_sequences]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() < 5 {
		fs.Usage()
		return 1
	}
	if quiet {
		verbose = false
	}

	inputPath := fs.Arg(0)
	params := rds.DefaultParams()
	var err error
	if params.Eta, err = strconv.ParseFloat(fs.Arg(1), 64); err != nil {
		klog.Errorf("madios: bad eta %q: %v", fs.Arg(1), err)
		return 1
	}
	if params.Alpha, err = strconv.ParseFloat(fs.Arg(2), 64); err != nil {
		klog.Errorf("madios: bad alpha %q: %v", fs.Arg(2), err)
		return 1
	}
	if params.ContextSize, err = strconv.Atoi(fs.Arg(3)); err != nil {
		klog.Errorf("madios: bad context_size %q: %v", fs.Arg(3), err)
		return 1
	}
	if params.OverlapThreshold, err = strconv.ParseFloat(fs.Arg(4), 64); err != nil {
		klog.Errorf("madios: bad coverage %q: %v", fs.Arg(4), err)
		return 1
	}
	newSequences := 0
	if fs.NArg() > 5 {
		if newSequences, err = strconv.Atoi(fs.Arg(5)); err != nil {
			klog.Errorf("madios: bad new_sequences %q: %v", fs.Arg(5), err)
			return 1
		}
	}

	logInfo := func(format string, a ...interface{}) {
		if verbose {
			fmt.Printf(format+"\n", a...)
		}
	}

	logInfo("[madios] Reading input file: %s", inputPath)
	sequences, err := corpus.ReadFile(inputPath)
	if err != nil {
		klog.Errorf("madios: %v", err)
		return 2
	}
	if len(sequences) == 0 {
		klog.Errorf("madios: no sequences found in %s", inputPath)
		return 4
	}

	logInfo("[madios] Building initial graph...")
	mathutil.Seed(time.Now().UnixNano())
	graph, err := rds.NewGraph(sequences)
	if err != nil {
		klog.Errorf("madios: %v", err)
		return 4
	}

	logInfo("[madios] Running distillation...")
	start := time.Now()
	if err := graph.Distill(params); err != nil {
		klog.Errorf("madios: %v", err)
		return 1
	}
	elapsed := time.Since(start).Seconds()
	logInfo("[madios] Distillation complete. Time elapsed: %.3f seconds", elapsed)

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			klog.Errorf("madios: cannot open output file %s: %v", outputPath, err)
			return 5
		}
		defer f.Close()
		out = f
	}

	switch {
	case jsonMode:
		if err := writeJSON(out, graph, sequences, elapsed); err != nil {
			klog.Errorf("madios: %v", err)
			return 5
		}
	case pcfgMode:
		if err := graph.WritePCFG(out); err != nil {
			klog.Errorf("madios: %v", err)
			return 5
		}
	default:
		writeHuman(out, graph, sequences, params, quiet)
	}

	paths := graph.Paths()
	for i := 0; i < newSequences; i++ {
		pick := int(math.Floor(float64(len(paths)) * mathutil.UniformRand()))
		fmt.Fprintln(out, strings.Join(graph.GeneratePath(paths[pick]), " "))
	}

	return 0
}

func writeJSON(w io.Writer, graph *rds.Graph, sequences [][]string, elapsed float64) error {
	r := report{Corpus: sequences, Timing: elapsed}

	for _, path := range graph.Paths() {
		names := make([]string, len(path))
		for i, n := range path {
			names[i] = graph.NodeName(n)
		}
		r.SearchPaths = append(r.SearchPaths, names)
	}

	for i := range graph.Nodes() {
		node := &graph.Nodes()[i]
		parents := make([]int, len(node.Parents()))
		for j, p := range node.Parents() {
			parents[j] = p.Path
		}
		r.Lexicon = append(r.Lexicon, lexiconNode{
			ID:      i,
			Type:    int(node.Type),
			String:  graph.NodeString(i),
			Parents: parents,
		})
	}

	var grammar strings.Builder
	if err := graph.WritePCFG(&grammar); err != nil {
		return err
	}
	r.Grammar = grammar.String()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func writeHuman(w io.Writer, graph *rds.Graph, sequences [][]string, params rds.Params, quiet bool) {
	if quiet {
		return
	}

	fmt.Fprintf(w, "eta = %g\n", params.Eta)
	fmt.Fprintf(w, "alpha = %g\n", params.Alpha)
	fmt.Fprintf(w, "contextSize = %d\n", params.ContextSize)
	fmt.Fprintf(w, "overlapThreshold = %g\n", params.OverlapThreshold)

	fmt.Fprintln(w, "BEGIN CORPUS ----------")
	for _, seq := range sequences {
		fmt.Fprintln(w, strings.Join(seq, " "))
	}
	fmt.Fprintln(w, "END CORPUS ----------")

	fmt.Fprintln(w, graph.String())
}
