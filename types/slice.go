package types

import "sort"

func (s Sequence) Len() int           { return len(s) }
func (s Sequence) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Sequence) Less(i, j int) bool { return s[i] < s[j] }

// Clone returns a copy that shares no memory with s. A nil sequence clones to
// an empty, non-nil one.
func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// IsSorted reports whether s is in non-decreasing order.
func (s Sequence) IsSorted() bool {
	return sort.IsSorted(s)
}
