package genetic_crossover

import (
	"errors"
	"fmt"
)

// Crossover recombines ParentsNumber parents into ChildrenNumber offspring.
type Crossover[G comparable] interface {
	Name() string
	ParentsNumber() int
	ChildrenNumber() int
	MinChromosomeLength() int
	// IsOrdered reports whether the operator only accepts chromosomes
	// without repeated genes.
	IsOrdered() bool
	Cross(parents [2]Chromosome[G]) ([2]Chromosome[G], error)
}

var (
	ErrTooShortChromosome  = errors.New("chromosome too short")
	ErrUnorderedChromosome = errors.New("chromosome has repeated genes")
	ErrIncompatibleParents = errors.New("parents are not permutations of each other")
)

// CrossoverError is the only failure a crossover operator reports. Kind is
// one of the Err* sentinels and is matched by errors.Is.
type CrossoverError struct {
	Operator string
	Kind     error
	Message  string
}

func newCrossoverError(operator string, kind error, format string, args ...any) *CrossoverError {
	return &CrossoverError{
		Operator: operator,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *CrossoverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operator, e.Message)
}

func (e *CrossoverError) Unwrap() error {
	return e.Kind
}
