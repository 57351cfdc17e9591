package rds

import "errors"

var (
	// ErrEmptyCorpus indicates NewGraph received no sequences.
	ErrEmptyCorpus = errors.New("rds: corpus must contain at least one sequence")

	// ErrNodeIndex indicates a node index outside the node table.
	ErrNodeIndex = errors.New("rds: node index out of range")

	// ErrBadEta indicates Eta outside [0, 1].
	ErrBadEta = errors.New("rds: eta must be in [0, 1]")

	// ErrBadAlpha indicates Alpha outside [0, 1].
	ErrBadAlpha = errors.New("rds: alpha must be in [0, 1]")

	// ErrBadContextSize indicates a context window smaller than 1.
	ErrBadContextSize = errors.New("rds: context size must be at least 1")

	// ErrBadOverlap indicates an overlap threshold outside [0, 1].
	ErrBadOverlap = errors.New("rds: overlap threshold must be in [0, 1]")
)
