package types

import "errors"

// Error kinds. Every error surfaced by the sort library, the benchmark runner
// or the input provider matches exactly one of them with errors.Is.
var (
	// ErrInput covers a missing, empty or unparseable number sequence.
	ErrInput = errors.New("input error")
	// ErrSelection covers an empty or unrecognized algorithm selection.
	ErrSelection = errors.New("selection error")
	// ErrAlgorithm covers a precondition violated while an algorithm runs.
	ErrAlgorithm = errors.New("algorithm error")
)

// KindError ties a concrete message to one of the error kinds above.
type KindError struct {
	Kind error
	Msg  string
}

func (e *KindError) Error() string { return e.Msg }
func (e *KindError) Unwrap() error { return e.Kind }

func NewKind(kind error, msg string) error {
	return &KindError{Kind: kind, Msg: msg}
}
