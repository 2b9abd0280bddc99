package bench

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTimings prints one line per finished algorithm, in selection order.
func WriteTimings(w io.Writer, res *Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSECONDS\tRANK")
	rank := make(map[int]int, res.Len())
	for i, e := range res.Ranked() {
		rank[e.Index] = i + 1
	}
	for _, e := range res.Entries() {
		fmt.Fprintf(tw, "%s\t%.3f\t%d\n", e.Algorithm, e.Seconds(), rank[e.Index])
	}
	if !res.Complete {
		fmt.Fprintf(tw, "(incomplete: %d of %d algorithms finished)\t\t\n", res.Len(), res.Planned)
	}
	return tw.Flush()
}

// WriteNotes prints the advantages and disadvantages of every finished
// algorithm.
func WriteNotes(w io.Writer, res *Result) error {
	var b strings.Builder
	for _, n := range res.Notes {
		fmt.Fprintf(&b, "%s:\n - Advantages: %s\n - Disadvantages: %s\n\n",
			n.Algorithm, n.Advantages, n.Disadvantages)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
