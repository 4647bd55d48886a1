package genetic_crossover

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Randomization is the source of entropy consumed by crossover operators.
// Implementations used from several goroutines must be safe for concurrent use.
type Randomization interface {
	// GetInt returns an int in [min, max).
	GetInt(min, max int) int
	// GetInts returns count distinct ints in [min, max).
	GetInts(count, min, max int) []int
}

// BasicRandomization draws from pooled golang.org/x/exp/rand generators. The
// zero value draws from the package-level rng, so InitRNG reseeds it.
type BasicRandomization struct {
	source *pooledRand
}

// NewBasicRandomization returns a Randomization with its own generator pool.
// A seed of 0 uses the current time.
func NewBasicRandomization(seed int64) *BasicRandomization {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &BasicRandomization{source: newPooledRand(seed)}
}

// DefaultRandomization returns the Randomization backed by the package rng.
func DefaultRandomization() Randomization {
	return &BasicRandomization{}
}

func (b *BasicRandomization) pool() *pooledRand {
	if b.source != nil {
		return b.source
	}
	return rng
}

func (b *BasicRandomization) GetInt(min, max int) int {
	if max <= min {
		panic(fmt.Sprintf("Invalid random range [%d, %d)", min, max))
	}
	return min + b.pool().Intn(max-min)
}

// GetInts runs a partial Fisher-Yates shuffle over [min, max) and keeps the
// first count picks. Only swapped slots are materialised, so wide ranges cost
// O(count).
func (b *BasicRandomization) GetInts(count, min, max int) []int {
	span := max - min
	if count < 0 || count > span {
		panic(fmt.Sprintf("Cannot draw %d distinct ints from [%d, %d)", count, min, max))
	}

	ints := make([]int, count)
	b.pool().with(func(r *rand.Rand) {
		swapped := make(map[int]int, count)
		for i := 0; i < count; i++ {
			j := i + r.Intn(span-i)
			vj, ok := swapped[j]
			if !ok {
				vj = j
			}
			vi, ok := swapped[i]
			if !ok {
				vi = i
			}
			swapped[j] = vi
			ints[i] = min + vj
		}
	})
	return ints
}
