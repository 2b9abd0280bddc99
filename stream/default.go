package stream

func defaultWrapper(next *stream) []Option {
	defaultConsumer := func(e int) {
		next.consumeOne(e)
	}
	defaultSettler := func(capacity int64, opts ...Option) {
		next.settler(capacity, opts...)
	}
	defaultCleaner := func() {
		next.cleaner()
	}
	defaultCanceller := func() bool {
		return next.canceller()
	}
	return []Option{wrapConsumer(defaultConsumer), wrapSettler(defaultSettler),
		wrapCleaner(defaultCleaner), wrapCanceller(defaultCanceller)}
}
