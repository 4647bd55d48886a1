package genetic_crossover

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CrossoverRecord is the persisted lineage of one crossover. Gene sequences
// are stored space separated in their fmt.Sprint form.
type CrossoverRecord struct {
	ID           uint
	UUID         string `gorm:"uniqueIndex;size:36"`
	Operator     string
	Length       int
	CutLow       int
	CutHigh      int
	Parent1      string
	Parent2      string
	Offspring1   string
	Offspring2   string
	SetFidelity1 byte
	SetFidelity2 byte
	Inversions1  uint
	Inversions2  uint
	CreatedAt    time.Time
}

func NewCrossoverRecord[G comparable](operator string, parents, offspring [2]Chromosome[G],
	low, high int, evals [2]*Evaluation) *CrossoverRecord {

	r := &CrossoverRecord{
		UUID:       uuid.NewString(),
		Operator:   operator,
		Length:     parents[0].Length(),
		CutLow:     low,
		CutHigh:    high,
		Parent1:    joinGenes(parents[0]),
		Parent2:    joinGenes(parents[1]),
		Offspring1: joinGenes(offspring[0]),
		Offspring2: joinGenes(offspring[1]),
	}
	if evals[0] != nil {
		r.SetFidelity1 = evals[0].SetFidelity
		r.Inversions1 = evals[0].Inversions
	}
	if evals[1] != nil {
		r.SetFidelity2 = evals[1].SetFidelity
		r.Inversions2 = evals[1].Inversions
	}
	return r
}

func (r *CrossoverRecord) String() string {
	return fmt.Sprintf("%s %s cut=[%d,%d] P1=[%s] P2=[%s] O1=[%s] O2=[%s]",
		r.UUID, r.Operator, r.CutLow, r.CutHigh, r.Parent1, r.Parent2, r.Offspring1, r.Offspring2)
}

func joinGenes[G comparable](c Chromosome[G]) string {
	var sb strings.Builder
	for i := 0; i < c.Length(); i++ {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprint(c.GeneAt(i)))
	}
	return sb.String()
}
