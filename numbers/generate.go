package numbers

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/kabu1204/go-sortbench/types"
)

const (
	DefaultMin      = 1
	DefaultMax      = 1_000_000_000
	DefaultMinCount = 10_000
)

// Generator draws uniform samples from [Min, Max]. It is safe for concurrent
// use.
type Generator struct {
	Min      int
	Max      int
	MinCount int

	mu  sync.Mutex
	rng *rand.Rand
}

// ValidRange reports whether [lo, hi] can be sampled: lo must not exceed hi
// and the range must hold at most math.MaxInt64 values.
func ValidRange(lo, hi int) error {
	if lo > hi {
		return types.NewKind(types.ErrInput, fmt.Sprintf("min %d exceeds max %d", lo, hi))
	}
	if uint64(int64(hi))-uint64(int64(lo)) >= math.MaxInt64 {
		return types.NewKind(types.ErrInput, fmt.Sprintf("range %d .. %d is too wide to sample", lo, hi))
	}
	return nil
}

// NewGenerator seeds from the clock when seed is 0. minCount must be at
// least 1.
func NewGenerator(lo, hi, minCount int, seed int64) (*Generator, error) {
	if err := ValidRange(lo, hi); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	if minCount < 1 {
		return nil, fmt.Errorf("generator: minimum count must be at least 1, got %d", minCount)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Min:      lo,
		Max:      hi,
		MinCount: minCount,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate returns count samples. Counts below MinCount are an input error.
func (g *Generator) Generate(count int) (types.Sequence, error) {
	if count < g.MinCount {
		return nil, types.NewKind(types.ErrInput,
			fmt.Sprintf("enter a valid count: %d is below the minimum of %d", count, g.MinCount))
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return sample(g.rng, count, g.Min, g.Max), nil
}

func sample(rng *rand.Rand, count, lo, hi int) types.Sequence {
	span := int64(hi) - int64(lo) + 1
	seq := make(types.Sequence, count)
	for i := range seq {
		seq[i] = lo + int(rng.Int63n(span))
	}
	return seq
}
