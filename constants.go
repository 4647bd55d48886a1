package genetic_crossover

import (
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"
)

// pooledRand uses sync.Pool to give each goroutine its own *rand.Rand,
// eliminating mutex contention in parallel workloads.
type pooledRand struct {
	pool sync.Pool
}

func newPooledRand(seed int64) *pooledRand {
	var counter uint64
	return &pooledRand{
		pool: sync.Pool{
			New: func() any {
				s := atomic.AddUint64(&counter, 1) - 1
				return rand.New(rand.NewSource(uint64(seed) + s))
			},
		},
	}
}

func (pr *pooledRand) Intn(n int) int {
	r := pr.pool.Get().(*rand.Rand)
	v := r.Intn(n)
	pr.pool.Put(r)
	return v
}

// with hands a pooled generator to fn for a sequence of draws that should not
// bounce between pool slots.
func (pr *pooledRand) with(fn func(r *rand.Rand)) {
	r := pr.pool.Get().(*rand.Rand)
	fn(r)
	pr.pool.Put(r)
}

// rng is the package-level random source backing DefaultRandomization.
var rng *pooledRand = newPooledRand(time.Now().UnixNano())

// InitRNG seeds the package-level rng. If seed is 0, the current
// time is used (non-deterministic). A non-zero seed gives
// reproducible results for single-goroutine callers.
func InitRNG(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng = newPooledRand(seed)
}

const (
	OrderedCrossoverName   = "Ordered Crossover (OX1)"
	OrderedParentsNumber   = 2
	OrderedChildrenNumber  = 2
	MinOrderedChromosome   = 2
	DefaultBatchSize       = 1000
	DefaultRecordListLimit = 50
)
