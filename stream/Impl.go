package stream

import (
	"sync"
	"sync/atomic"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/kabu1204/go-sortbench/optional"
	"github.com/kabu1204/go-sortbench/types"
	"github.com/panjf2000/ants/v2"
)

// source <- Filtered <- ToSlice

type Option func(*stream)
type wrapperType func(next *stream) []Option

type stream struct {
	source    types.Sequence
	prev      *stream
	wrapper   wrapperType
	consumer  types.Consumer
	settler   func(size int64, opts ...Option)
	cleaner   func()
	canceller func() bool
	parallel  int
	run       *runState
	Name      string
}

// runState is shared by every stage of one chain and records the first
// failure of a terminal operation.
type runState struct {
	mu  sync.Mutex
	err error
}

func (r *runState) reset() {
	r.mu.Lock()
	r.err = nil
	r.mu.Unlock()
}

func (r *runState) fail(err error) {
	r.mu.Lock()
	if r.err == nil {
		r.err = err
	}
	r.mu.Unlock()
}

func (r *runState) failure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (s *stream) terminate() {
	s.run.reset()
	head := s.setFunctor()
	it := s.source.Iterator()
	head.settler(int64(it.Len()))
	for v, ok := it.Next(); ok && !head.canceller(); v, ok = it.Next() {
		head.consumeOne(v)
	}
	head.cleaner()
}

func (s *stream) consumeOne(e int) {
	s.consumer(e)
}

func (s *stream) unwrap(next *stream) {
	opts := s.wrapper(next)
	for _, o := range opts {
		o(s)
	}
}

func wrapConsumer(c types.Consumer) Option        { return func(s *stream) { s.consumer = c } }
func wrapSettler(c func(int64, ...Option)) Option { return func(s *stream) { s.settler = c } }
func wrapCleaner(c func()) Option                 { return func(s *stream) { s.cleaner = c } }
func wrapCanceller(c func() bool) Option          { return func(s *stream) { s.canceller = c } }

func (s *stream) setFunctor() *stream {
	run := s.run
	s.unwrap(&stream{
		source:    s.source,
		prev:      s,
		consumer:  func(_ int) {},
		settler:   func(_ int64, _ ...Option) {},
		cleaner:   func() {},
		canceller: func() bool { return run.failure() != nil },
		parallel:  0,
		run:       run,
		Name:      "DummyTail",
	})
	p := s
	for ; p.prev != nil; p = p.prev {
		p.prev.unwrap(p)
	}
	return p
}

func newStream(prev *stream, wrapper wrapperType, name string) *stream {
	return &stream{
		source:   prev.source,
		prev:     prev,
		wrapper:  wrapper,
		parallel: 0,
		run:      prev.run,
		Name:     name,
	}
}

func (s *stream) Err() error {
	return s.run.failure()
}

// stateless

func (s *stream) Filter(p types.Predicate) Stream {
	// s is prev
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			if p(e) {
				next.consumeOne(e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Filter")
}

func (s *stream) Map(f types.Function) Stream {
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			next.consumeOne(f(e))
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Map")
}

func (s *stream) Peek(f types.Consumer) Stream {
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			f(e)
			next.consumeOne(e)
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	return newStream(s, wrapper, "Peek")
}

func (s *stream) Parallel(n int) Stream {
	wrapper := func(next *stream) []Option {
		var wg sync.WaitGroup
		var pool *ants.Pool
		settler := func(sz int64, opts ...Option) {
			toggleParallel := func(this *stream) { this.parallel = MaxInt(n, 1) }
			opts = append(opts, toggleParallel)
			for _, o := range opts {
				o(next.prev)
			}
			var err error
			if pool, err = ants.NewPool(MaxInt(n, 1)); err != nil {
				s.run.fail(err)
			}
			next.settler(sz, opts...)
		}
		consumer := func(e int) {
			if pool == nil {
				next.consumeOne(e)
				return
			}
			wg.Add(1)
			f := func() {
				defer wg.Done()
				next.consumeOne(e)
			}
			if err := pool.Submit(f); err != nil {
				wg.Done()
				s.run.fail(err)
			}
		}
		cleaner := func() {
			wg.Wait()
			if pool != nil {
				pool.Release()
				pool = nil
			}
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Parallel")
}

// stateful

func (s *stream) Distinct(f types.IntFunction) Stream {
	wrapper := func(next *stream) []Option {
		var set *hashmap.HashMap
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			set = &hashmap.HashMap{}
			next.settler(sz, opts...)
		}
		consumer := func(e int) {
			if _, exist := set.GetOrInsert(f(e), struct{}{}); !exist {
				next.consumeOne(e)
			}
		}
		cleaner := func() {
			set = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Distinct")
}

// serial resets the parallel flag of every stage downstream of a sort, which
// always re-emits from a single goroutine.
func serial(this *stream) { this.parallel = 0 }

func (s *stream) Sorted(cmp types.Comparator) Stream {
	wrapper := func(next *stream) []Option {
		var buffer chan int
		var written chan struct{}
		var mp *treemap.Map
		this := next.prev
		put := func(e int) {
			if c, ok := mp.Get(e); ok {
				mp.Put(e, c.(int)+1)
			} else {
				mp.Put(e, 1)
			}
		}
		settler := func(capacity int64, opts ...Option) {
			for _, o := range opts {
				o(this)
			}
			mp = treemap.NewWith(func(a, b interface{}) int { return cmp(a.(int), b.(int)) })
			if this.parallel > 0 {
				buffer = make(chan int, capacity)
				written = make(chan struct{})
				go func() {
					defer close(written)
					for e := range buffer {
						put(e)
					}
				}()
			}
			next.settler(capacity, append(opts, serial)...)
		}
		consumer := func(e int) {
			if this.parallel > 0 {
				buffer <- e
			} else {
				put(e)
			}
		}
		cleaner := func() {
			if this.parallel > 0 {
				close(buffer)
				<-written
			}
			it := mp.Iterator()
			for it.Next() && !next.canceller() {
				e, c := it.Key().(int), it.Value().(int)
				for ; c > 0; c-- {
					next.consumeOne(e)
				}
			}
			mp.Clear()
			mp = nil
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Sorted")
}

func (s *stream) SortedBy(sort types.SortFunc) Stream {
	wrapper := func(next *stream) []Option {
		var mu sync.Mutex
		var collected types.Sequence
		settler := func(capacity int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			collected = make(types.Sequence, 0, capacity)
			next.settler(capacity, append(opts, serial)...)
		}
		consumer := func(e int) {
			mu.Lock()
			collected = append(collected, e)
			mu.Unlock()
		}
		cleaner := func() {
			sorted, err := sort(collected)
			collected = nil
			if err != nil {
				s.run.fail(err)
			} else {
				for _, e := range sorted {
					if next.canceller() {
						break
					}
					next.consumeOne(e)
				}
			}
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "SortedBy")
}

func (s *stream) Limit(N int64) Stream {
	wrapper := func(next *stream) []Option {
		var cnt *int64
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			if sz > N {
				sz = N
			}
			next.settler(sz, opts...)
		}
		consumer := func(e int) {
			for old := atomic.LoadInt64(cnt); old < N; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					next.consumeOne(e)
					break
				}
			}
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, N)
			next.cleaner()
		}
		canceller := func() bool {
			return atomic.LoadInt64(cnt) >= N || next.canceller()
		}
		return append(defaultWrapper(next), wrapSettler(settler),
			wrapConsumer(consumer), wrapCleaner(cleaner), wrapCanceller(canceller))
	}
	return newStream(s, wrapper, "Limit")
}

func (s *stream) Skip(N int64) Stream {
	wrapper := func(next *stream) []Option {
		var cnt *int64
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			cnt = new(int64)
			if sz -= N; sz < 0 {
				sz = 0
			}
			next.settler(sz, opts...)
		}
		consumer := func(e int) {
			for old := atomic.LoadInt64(cnt); old < N; old = atomic.LoadInt64(cnt) {
				if atomic.CompareAndSwapInt64(cnt, old, old+1) {
					return
				}
			}
			next.consumeOne(e)
		}
		cleaner := func() {
			atomic.StoreInt64(cnt, N)
			next.cleaner()
		}
		return append(defaultWrapper(next), wrapSettler(settler), wrapConsumer(consumer), wrapCleaner(cleaner))
	}
	return newStream(s, wrapper, "Skip")
}

// termination

func (s *stream) ToSlice() types.Sequence {
	var mu sync.Mutex
	var slice types.Sequence
	wrapper := func(next *stream) []Option {
		settler := func(sz int64, opts ...Option) {
			for _, o := range opts {
				o(next.prev)
			}
			if sz < 0 {
				sz = 0
			}
			slice = make(types.Sequence, 0, sz)
		}
		consumer := func(e int) {
			mu.Lock()
			slice = append(slice, e)
			mu.Unlock()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapSettler(settler))
	}
	newStream(s, wrapper, "ToSlice").terminate()
	return slice
}

func (s *stream) ForEach(f types.Consumer) {
	wrapper := func(next *stream) []Option {
		consumer := func(e int) { f(e) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ForEach").terminate()
}

// match drives AllMatch, AnyMatch and NoneMatch: it stops at the first element
// for which p(e) == stopOn and reports whether such an element was found.
func (s *stream) match(p types.Predicate, stopOn bool, name string) bool {
	var found int32
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			if p(e) == stopOn {
				atomic.StoreInt32(&found, 1)
			}
		}
		canceller := func() bool {
			return atomic.LoadInt32(&found) == 1 || next.canceller()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStream(s, wrapper, name).terminate()
	return atomic.LoadInt32(&found) == 1
}

func (s *stream) AllMatch(p types.Predicate) bool {
	return !s.match(p, false, "AllMatch")
}

func (s *stream) NoneMatch(p types.Predicate) bool {
	return !s.match(p, true, "NoneMatch")
}

func (s *stream) AnyMatch(p types.Predicate) bool {
	return s.match(p, true, "AnyMatch")
}

func (s *stream) Reduce(accumulator types.BinaryOperator) optional.Int {
	var mu sync.Mutex
	var result int
	none := true
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			mu.Lock()
			defer mu.Unlock()
			if none {
				result = e
				none = false
			} else {
				result = accumulator(result, e)
			}
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Reduce").terminate()
	if none {
		return optional.None{}
	}
	return optional.Some{Value: result}
}

func (s *stream) ReduceFrom(initValue int, accumulator types.BinaryOperator) int {
	var mu sync.Mutex
	result := initValue
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			mu.Lock()
			result = accumulator(result, e)
			mu.Unlock()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "ReduceFrom").terminate()
	return result
}

func (s *stream) FindFirst() optional.Int {
	var mu sync.Mutex
	none := true
	var result int
	wrapper := func(next *stream) []Option {
		consumer := func(e int) {
			mu.Lock()
			defer mu.Unlock()
			if none {
				result = e
				none = false
			}
		}
		canceller := func() bool {
			mu.Lock()
			defer mu.Unlock()
			return !none || next.canceller()
		}
		return append(defaultWrapper(next), wrapConsumer(consumer), wrapCanceller(canceller))
	}
	newStream(s, wrapper, "FindFirst").terminate()
	if none {
		return optional.None{}
	}
	return optional.Some{Value: result}
}

func (s *stream) Count() int64 {
	var cnt int64 = 0
	wrapper := func(next *stream) []Option {
		consumer := func(e int) { atomic.AddInt64(&cnt, 1) }
		return append(defaultWrapper(next), wrapConsumer(consumer))
	}
	newStream(s, wrapper, "Count").terminate()
	return cnt
}
