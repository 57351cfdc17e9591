package corpus_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gitrdm/madios/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRead_PlainLines reads simple whitespace-tokenized lines.
func TestRead_PlainLines(t *testing.T) {
	in := "the cat sat\nthe dog ran\n\nthe cat ran\n"
	seqs, err := corpus.Read(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, seqs, 3, "blank line must be skipped")
	assert.Equal(t, []string{"the", "cat", "sat"}, seqs[0])
	assert.Equal(t, []string{"the", "cat", "ran"}, seqs[2])
}

// TestRead_ADIOSMarkers strips the * and # boundary markers.
func TestRead_ADIOSMarkers(t *testing.T) {
	in := "* the cat sat #\n* a b #\n"
	seqs, err := corpus.Read(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.Equal(t, []string{"the", "cat", "sat"}, seqs[0])
	assert.Equal(t, []string{"a", "b"}, seqs[1])
}

// TestTokenize_MarkersOnlyWhenPaired keeps a lone * or # literal.
func TestTokenize_MarkersOnlyWhenPaired(t *testing.T) {
	assert.Equal(t, []string{"*", "a"}, corpus.Tokenize("* a"))
	assert.Equal(t, []string{"a", "#"}, corpus.Tokenize("a #"))
	assert.Equal(t, []string{"a"}, corpus.Tokenize("* a #"))
	assert.Empty(t, corpus.Tokenize("   "))
}

// TestReadFile_RoundTrip writes a temp corpus and reads it back.
func TestReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte("* x y #\nz\n"), 0o644))

	seqs, err := corpus.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.Equal(t, []string{"x", "y"}, seqs[0])
	assert.Equal(t, []string{"z"}, seqs[1])
}

// TestReadFile_Missing reports a wrapped open error.
func TestReadFile_Missing(t *testing.T) {
	_, err := corpus.ReadFile(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corpus: opening")
}
