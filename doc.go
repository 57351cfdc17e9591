// Package madios learns a probabilistic context-free grammar from raw
// tokenized text, with no supervision beyond the sentences themselves.
//
// 🚀 What is madios?
//
//	An implementation of the ADIOS (Automatic DIstillation Of Structure)
//	algorithm over a redundancy-reduced sentence graph:
//		• Corpus loading: whitespace-tokenized sentences, one per line
//		• Pattern discovery: flow/descent statistics + binomial significance
//		• Generalization: context windows distilling equivalence classes
//		• Probability estimation: realization counts over parse trees
//		• Emission: PCFG rules, plus random sentence generation
//
// ✨ Why choose madios?
//
//   - Faithful statistics – the exact descent thresholds and two-sided
//     binomial boundary tests of the published algorithm
//   - Deterministic core – discovery order depends only on the corpus and
//     parameters; randomness is confined to generation
//   - Small surface – build a graph, distill, write the grammar
//
// Under the hood, everything is organized under four subpackages:
//
//	corpus/    — sentence readers and tokenization
//	rds/       — the graph, the distillation engine and grammar emission
//	parsetree/ — the index-arena parse forest backing probability estimation
//	mathutil/  — binomial and gamma-family helpers for the significance tests
//
// Quick example:
//
//	g, err := rds.NewGraph(sequences)
//	if err != nil { ... }
//	if err := g.Distill(rds.DefaultParams()); err != nil { ... }
//	g.WritePCFG(os.Stdout)
//
// The cmd/madios binary wraps the same pipeline behind a command line with
// JSON and plain-text reporting.
//
//	go get github.com/gitrdm/madios
package madios
