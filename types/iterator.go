package types

type Iterator interface {
	hasNext() bool
	Next() (int, bool)
	Len() int // a definite number for slices; -1 for unbounded sources
}

type sliceIterator struct {
	index int
	slice Sequence
}

func (s Sequence) Iterator() Iterator {
	return &sliceIterator{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator) Next() (int, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	return 0, false
}

func (it *sliceIterator) Len() int {
	return len(it.slice)
}
