package genetic_crossover

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// RecordingCrossover is a Crossover that also reports the cut points it used.
type RecordingCrossover[G comparable] interface {
	Crossover[G]
	CrossWithCuts(parents [2]Chromosome[G]) ([2]Chromosome[G], int, int, error)
}

type BreederConfig struct {
	Workers   int `toml:"workers"`
	BatchSize int `toml:"batch_size"`
}

// Breeder crosses many independent parent pairs in parallel. When a
// Persistence is attached every crossover is evaluated and stored as a
// CrossoverRecord.
type Breeder[G comparable] struct {
	Crossover RecordingCrossover[G]
	Evaluator *Evaluator[G]
	Config    *BreederConfig
	persist   *Persistence
}

func NewBreeder[G comparable](crossover RecordingCrossover[G], persist *Persistence, config *BreederConfig) *Breeder[G] {
	if config == nil {
		config = &BreederConfig{}
	}
	return &Breeder[G]{
		Crossover: crossover,
		Evaluator: NewEvaluator[G](nil),
		Config:    config,
		persist:   persist,
	}
}

func (b *Breeder[G]) workers() int {
	if b.Config.Workers > 0 {
		return b.Config.Workers
	}
	return runtime.NumCPU()
}

// Breed returns the offspring of every pair, in input order. The first
// crossover error stops the remaining workers and is returned.
func (b *Breeder[G]) Breed(ctx context.Context, pairs [][2]Chromosome[G]) ([][2]Chromosome[G], error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := b.workers()
	chunkSize := len(pairs) / workers
	if chunkSize == 0 {
		chunkSize = 1
	}

	offspring := make([][2]Chromosome[G], len(pairs))
	var records []*CrossoverRecord
	if b.persist != nil {
		records = make([]*CrossoverRecord, len(pairs))
	}
	errs := make([]error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		if start >= len(pairs) {
			break
		}
		end := start + chunkSize
		if i == workers-1 || end > len(pairs) {
			end = len(pairs)
		}
		wg.Add(1)
		go func(idx, start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				if runCtx.Err() != nil {
					return
				}
				children, low, high, err := b.Crossover.CrossWithCuts(pairs[j])
				if err != nil {
					errs[idx] = fmt.Errorf("pair %d: %w", j, err)
					cancel()
					return
				}
				offspring[j] = children
				if records != nil {
					evals := b.Evaluator.Evaluate(pairs[j], children)
					records[j] = NewCrossoverRecord(b.Crossover.Name(), pairs[j], children, low, high, evals)
				}
			}
		}(i, start, end)
	}
	wg.Wait()

	if err := firstError(errs); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if b.persist != nil {
		batchSize := b.Config.BatchSize
		if batchSize <= 0 {
			batchSize = DefaultBatchSize
		}
		for start := 0; start < len(records); start += batchSize {
			end := start + batchSize
			if end > len(records) {
				end = len(records)
			}
			if err := b.persist.SaveRecords(records[start:end]); err != nil {
				return nil, fmt.Errorf("failed to save crossover records: %w", err)
			}
		}
	}

	Logger.WithFields(logrus.Fields{
		"operator":  b.Crossover.Name(),
		"pairs":     len(pairs),
		"offspring": len(offspring) * b.Crossover.ChildrenNumber(),
		"persisted": b.persist != nil,
	}).Info("Breeding complete")

	return offspring, nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
