package genetic_crossover

import (
	"github.com/sirupsen/logrus"
)

// OrderedCrossover is the Ordered Crossover (OX1). Each child keeps the
// segment [low, high] of its primary parent and receives the remaining genes
// in the order they appear in the other parent, read circularly from high+1.
//
// Offspring 0 has parent 0 as primary, offspring 1 has parent 1.
type OrderedCrossover[G comparable] struct {
	Randomization Randomization
}

func NewOrderedCrossover[G comparable](rnd Randomization) *OrderedCrossover[G] {
	if rnd == nil {
		rnd = DefaultRandomization()
	}
	return &OrderedCrossover[G]{Randomization: rnd}
}

func (o *OrderedCrossover[G]) Name() string { return OrderedCrossoverName }
func (o *OrderedCrossover[G]) ParentsNumber() int { return OrderedParentsNumber }
func (o *OrderedCrossover[G]) ChildrenNumber() int { return OrderedChildrenNumber }
func (o *OrderedCrossover[G]) MinChromosomeLength() int { return MinOrderedChromosome }
func (o *OrderedCrossover[G]) IsOrdered() bool { return true }

func (o *OrderedCrossover[G]) Cross(parents [2]Chromosome[G]) ([2]Chromosome[G], error) {
	offspring, _, _, err := o.CrossWithCuts(parents)
	return offspring, err
}

// CrossWithCuts is Cross that also reports the normalised cut points.
func (o *OrderedCrossover[G]) CrossWithCuts(parents [2]Chromosome[G]) (offspring [2]Chromosome[G], low, high int, err error) {
	if err = o.validate(parents); err != nil {
		return
	}

	rnd := o.Randomization
	if rnd == nil {
		rnd = DefaultRandomization()
	}

	length := parents[0].Length()
	cuts := rnd.GetInts(2, 0, length)
	low, high = cuts[0], cuts[1]
	if low > high {
		low, high = high, low
	}

	if debugEnabled() {
		Logger.WithFields(logrus.Fields{
			"operator": o.Name(),
			"length":   length,
			"low":      low,
			"high":     high,
		}).Debug("Crossing parents")
	}

	if offspring[0], err = createOrderedChild(parents[0], parents[1], low, high); err != nil {
		return [2]Chromosome[G]{}, 0, 0, err
	}
	if offspring[1], err = createOrderedChild(parents[1], parents[0], low, high); err != nil {
		return [2]Chromosome[G]{}, 0, 0, err
	}
	return offspring, low, high, nil
}

// validate reports the first violation found, parent 0 before parent 1.
func (o *OrderedCrossover[G]) validate(parents [2]Chromosome[G]) error {
	for _, p := range parents {
		if p == nil {
			return newCrossoverError(o.Name(), ErrTooShortChromosome,
				"A chromosome should have, at least, %d genes. %s has only %d gene.",
				MinOrderedChromosome, chromosomeTypeName(p), 0)
		}
		if n := p.Length(); n < MinOrderedChromosome {
			return newCrossoverError(o.Name(), ErrTooShortChromosome,
				"A chromosome should have, at least, %d genes. %s has only %d gene.",
				MinOrderedChromosome, chromosomeTypeName(p), n)
		}
	}

	for _, p := range parents {
		if k := repeatedGenes(p); k > 0 {
			return newCrossoverError(o.Name(), ErrUnorderedChromosome,
				"The Ordered Crossover (OX1) can be only used with ordered chromosomes. The specified chromosome has %d repeated genes.", k)
		}
	}

	first, second := parents[0], parents[1]
	if first.Length() != second.Length() {
		return newCrossoverError(o.Name(), ErrIncompatibleParents,
			"Parents should have the same length. First parent has %d genes and second parent has %d genes.",
			first.Length(), second.Length())
	}

	genes := make(map[G]struct{}, first.Length())
	for i := 0; i < first.Length(); i++ {
		genes[first.GeneAt(i)] = struct{}{}
	}
	for i := 0; i < second.Length(); i++ {
		if _, ok := genes[second.GeneAt(i)]; !ok {
			return newCrossoverError(o.Name(), ErrIncompatibleParents,
				"Parents should carry the same genes. Gene %v of the second parent is missing from the first parent.",
				second.GeneAt(i))
		}
	}
	return nil
}

// createOrderedChild copies primary[low..high] into a new child and lays the
// filler genes not in that segment into the free slots. Both the filler genes
// and the free slots are walked circularly from high+1.
func createOrderedChild[G comparable](primary, filler Chromosome[G], low, high int) (Chromosome[G], error) {
	length := primary.Length()
	genes := make([]G, length)
	inSegment := make(map[G]struct{}, high-low+1)

	for i := low; i <= high; i++ {
		gene := primary.GeneAt(i)
		genes[i] = gene
		inSegment[gene] = struct{}{}
	}

	start := (high + 1) % length
	slot := start
	for i := 0; i < length; i++ {
		gene := filler.GeneAt((start + i) % length)
		if _, ok := inSegment[gene]; ok {
			continue
		}
		genes[slot] = gene
		slot = (slot + 1) % length
	}

	child := primary.CreateNew()
	if err := child.ReplaceGenes(0, genes); err != nil {
		return nil, err
	}
	return child, nil
}
