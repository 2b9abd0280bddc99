package stream

import (
	"github.com/kabu1204/go-sortbench/types"
)

// Of streams over elems without copying them.
func Of(elems ...int) *stream {
	return FromSequence(types.Sequence(elems))
}

func FromSequence(seq types.Sequence) *stream {
	return &stream{
		source:  seq,
		prev:    nil,
		wrapper: defaultWrapper,
		run:     &runState{},
		Name:    "Of",
	}
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	} else {
		return b
	}
}
