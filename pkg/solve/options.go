package solve

import "runtime"

// defaultMemoryFloorBytes is the free-memory threshold below which a solver
// cancels itself with ErrOutOfMemory (§4.4, §4.5, §7).
const defaultMemoryFloorBytes = 15 << 20 // 15 MiB

// meqProgressInterval and btypeProgressInterval are the expansion/insertion
// counts between progress publications (§4.4, §4.5). Fixed by the spec, not
// configurable.
const (
	meqProgressInterval   = 512
	btypeProgressInterval = 65536
)

// Options are solver creation options, mirroring the teacher's
// engine.Options/engine.Option functional-options pattern.
type Options struct {
	// Workers is the number of b-type worker tasks to spawn, split evenly
	// between forward and backward search. Zero means runtime.GOMAXPROCS(0).
	Workers int
	// MemoryFloorBytes is the free-memory threshold below which the search
	// cancels with ErrOutOfMemory. Zero means defaultMemoryFloorBytes.
	MemoryFloorBytes uint64
	// TranspositionTableFactory overrides the default table constructor,
	// e.g. for tests that want to observe its contents.
	TranspositionTableFactory func() TranspositionTable
}

// Option configures an Options value.
type Option func(*Options)

// WithWorkers overrides the b-type worker count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMemoryFloorBytes overrides the free-memory cancellation threshold.
func WithMemoryFloorBytes(n uint64) Option {
	return func(o *Options) { o.MemoryFloorBytes = n }
}

// WithTranspositionTableFactory overrides the transposition table constructor.
func WithTranspositionTableFactory(f func() TranspositionTable) Option {
	return func(o *Options) { o.TranspositionTableFactory = f }
}

func newOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MemoryFloorBytes == 0 {
		o.MemoryFloorBytes = defaultMemoryFloorBytes
	}
	if o.TranspositionTableFactory == nil {
		o.TranspositionTableFactory = NewTranspositionTable
	}
	return o
}
