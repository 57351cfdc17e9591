// Package corpus reads tokenized training sequences for the grammar-induction
// engine.
//
// The input format is line oriented: each non-empty line is one sequence of
// whitespace-separated tokens. Lines in the classic ADIOS corpus format carry
// explicit start/end markers ("* the cat sat #"); those markers are stripped,
// since the engine adds its own boundary nodes.
package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Start and end markers used by the ADIOS corpus format.
const (
	startMarker = "*"
	endMarker   = "#"
)

// Read parses sequences from r, one per non-empty line.
func Read(r io.Reader) ([][]string, error) {
	var sequences [][]string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		tokens := Tokenize(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		sequences = append(sequences, tokens)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "corpus: reading input")
	}

	return sequences, nil
}

// ReadFile parses sequences from the file at path.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: opening %s", path)
	}
	defer f.Close()

	seqs, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "corpus: reading %s", path)
	}

	return seqs, nil
}

// Tokenize splits a line into whitespace-separated tokens, stripping a
// leading "*" and trailing "#" marker when both bound the line.
func Tokenize(line string) []string {
	tokens := strings.Fields(line)
	if len(tokens) >= 2 && tokens[0] == startMarker && tokens[len(tokens)-1] == endMarker {
		tokens = tokens[1 : len(tokens)-1]
	}

	return tokens
}
