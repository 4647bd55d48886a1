package genetic_crossover

import (
	"fmt"
	"reflect"

	cp "github.com/jinzhu/copier"
)

// Chromosome is an ordered, fixed-length sequence of genes. Crossover
// operators only ever reach genes through this interface.
type Chromosome[G comparable] interface {
	Length() int
	GeneAt(index int) G
	// Genes returns a copy of the gene sequence.
	Genes() []G
	ReplaceGenes(startIndex int, genes []G) error
	// CreateNew returns an empty chromosome of the same kind and length.
	CreateNew() Chromosome[G]
}

// PermutationChromosome is the slice-backed Chromosome used by the tools.
type PermutationChromosome[G comparable] struct {
	genes []G
}

func NewPermutationChromosome[G comparable](length int) *PermutationChromosome[G] {
	return &PermutationChromosome[G]{genes: make([]G, length)}
}

func NewPermutationChromosomeFromGenes[G comparable](genes []G) *PermutationChromosome[G] {
	return &PermutationChromosome[G]{genes: copyGenes(genes)}
}

// NewRandomPermutation returns the genes 0..length-1 in random order.
func NewRandomPermutation(length int, rnd Randomization) *PermutationChromosome[int] {
	if rnd == nil {
		rnd = DefaultRandomization()
	}
	return &PermutationChromosome[int]{genes: rnd.GetInts(length, 0, length)}
}

func (c *PermutationChromosome[G]) Length() int {
	return len(c.genes)
}

func (c *PermutationChromosome[G]) GeneAt(index int) G {
	return c.genes[index]
}

func (c *PermutationChromosome[G]) Genes() []G {
	return copyGenes(c.genes)
}

func (c *PermutationChromosome[G]) ReplaceGenes(startIndex int, genes []G) error {
	if startIndex < 0 || (startIndex >= len(c.genes) && len(genes) > 0) {
		return fmt.Errorf("Start index [%d] is out of range [0, %d)", startIndex, len(c.genes))
	}
	if startIndex+len(genes) > len(c.genes) {
		return fmt.Errorf("Replacing %d genes from index [%d] overflows chromosome length [%d]",
			len(genes), startIndex, len(c.genes))
	}
	copy(c.genes[startIndex:], genes)
	return nil
}

func (c *PermutationChromosome[G]) CreateNew() Chromosome[G] {
	return NewPermutationChromosome[G](len(c.genes))
}

func (c *PermutationChromosome[G]) Clone() *PermutationChromosome[G] {
	return &PermutationChromosome[G]{genes: copyGenes(c.genes)}
}

func (c *PermutationChromosome[G]) String() string {
	return fmt.Sprint(c.genes)
}

func copyGenes[G comparable](genes []G) []G {
	clone := make([]G, 0, len(genes))
	if err := cp.CopyWithOption(&clone, genes, cp.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which a []G to []G copy never is
		panic(fmt.Errorf("Failed to copy genes: %w", err))
	}
	return clone
}

// chromosomeTypeName is the concrete type name reported in crossover errors.
func chromosomeTypeName(c any) string {
	t := reflect.TypeOf(c)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// repeatedGenes counts genes minus distinct genes.
func repeatedGenes[G comparable](c Chromosome[G]) int {
	length := c.Length()
	seen := make(map[G]struct{}, length)
	for i := 0; i < length; i++ {
		seen[c.GeneAt(i)] = struct{}{}
	}
	return length - len(seen)
}
