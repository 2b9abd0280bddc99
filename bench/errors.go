package bench

import (
	"github.com/kabu1204/go-sortbench/sorts"
	"github.com/kabu1204/go-sortbench/types"
)

var (
	// ErrNoData rejects a run over an empty sequence. It matches types.ErrInput.
	ErrNoData = types.NewKind(types.ErrInput, "no data: load or generate numbers first")
	// ErrNoAlgorithm rejects a run with nothing selected. It matches types.ErrSelection.
	ErrNoAlgorithm = types.NewKind(types.ErrSelection, "no algorithm selected")
	// ErrUnknownAlgorithm rejects an identifier outside the six algorithms.
	ErrUnknownAlgorithm = sorts.ErrUnknownAlgorithm
)
