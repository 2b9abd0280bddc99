// Package numbers supplies and persists the integer sequences that get
// benchmarked: parsing and writing whitespace-separated text, random
// generation, and bulk generation of input files.
package numbers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kabu1204/go-sortbench/types"
)

// ErrNotInteger marks a token that does not parse as an integer. It matches
// types.ErrInput.
var ErrNotInteger = types.NewKind(types.ErrInput, "not an integer")

// Parse reads whitespace-separated integers. An empty source yields an empty,
// non-nil sequence.
func Parse(r io.Reader) (types.Sequence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	seq := make(types.Sequence, 0, 1024)
	for pos := 1; sc.Scan(); pos++ {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q", ErrNotInteger, pos, sc.Text())
		}
		seq = append(seq, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read numbers: %w", err)
	}
	return seq, nil
}

func ReadFile(path string) (types.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seq, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// Write emits seq as integers joined by single spaces, with no trailing
// newline.
func Write(w io.Writer, seq types.Sequence) error {
	bw := bufio.NewWriterSize(w, 1<<16)
	buf := make([]byte, 0, 24)
	for i, v := range seq {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func WriteFile(path string, seq types.Sequence) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, seq); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
