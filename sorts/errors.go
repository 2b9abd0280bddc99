package sorts

import (
	"fmt"

	"github.com/kabu1204/go-sortbench/types"
)

// AlgorithmError reports a precondition an algorithm found violated at run
// time. It matches types.ErrAlgorithm.
type AlgorithmError struct {
	Algorithm Algorithm
	Index     int
	Value     int
	Reason    string
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("%s: value %d at index %d: %s", e.Algorithm, e.Value, e.Index, e.Reason)
}

func (e *AlgorithmError) Unwrap() error { return types.ErrAlgorithm }

// ErrUnknownAlgorithm is the selection error for a name or value outside the
// six algorithms.
var ErrUnknownAlgorithm = types.NewKind(types.ErrSelection, "unrecognized algorithm")

// UnknownAlgorithmError carries the offending name. It matches
// ErrUnknownAlgorithm and types.ErrSelection.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownAlgorithm, e.Name)
}

func (e *UnknownAlgorithmError) Unwrap() error { return ErrUnknownAlgorithm }
