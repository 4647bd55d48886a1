package genetic_crossover

import (
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

// An Evaluation measures how an offspring relates to its parents. SetFidelity
// is the share [0,100] of the primary parent's genes found in the offspring,
// Inversions is the Kendall tau distance between the offspring order and the
// primary parent order, and the distances count differing positions.
// EditDistance is -1 when the parents and offspring hold more than 128
// distinct genes.
type Evaluation struct {
	SetFidelity     byte
	Inversions      uint
	PrimaryDistance int
	FillerDistance  int
	EditDistance    int
}

type EvaluatorConfig struct {
	InsertCost     int `toml:"insert_cost"`
	DeleteCost     int `toml:"delete_cost"`
	SubstituteCost int `toml:"substitute_cost"`
}

type Evaluator[G comparable] struct {
	Config *EvaluatorConfig
}

func NewEvaluator[G comparable](ec *EvaluatorConfig) *Evaluator[G] {
	if ec == nil {
		ec = &EvaluatorConfig{InsertCost: 1, DeleteCost: 1, SubstituteCost: 2}
	}
	return &Evaluator[G]{Config: ec}
}

// Evaluate scores both offspring of a crossover. Offspring i is compared with
// parent i as primary and the other parent as filler.
func (e *Evaluator[G]) Evaluate(parents, offspring [2]Chromosome[G]) [2]*Evaluation {
	return [2]*Evaluation{
		e.evaluate(parents[0], parents[1], offspring[0]),
		e.evaluate(parents[1], parents[0], offspring[1]),
	}
}

func (e *Evaluator[G]) evaluate(primary, filler, child Chromosome[G]) *Evaluation {
	eval := &Evaluation{EditDistance: -1}

	inMap := make(map[G]int, primary.Length())
	for i := 0; i < primary.Length(); i++ {
		inMap[primary.GeneAt(i)] = i
	}
	outMap := make(map[G]bool, child.Length())
	for i := 0; i < child.Length(); i++ {
		outMap[child.GeneAt(i)] = true
	}

	count := 0
	for k := range inMap {
		if outMap[k] {
			count++
		}
	}
	if len(inMap) > 0 {
		eval.SetFidelity = byte(uint(float32(count) / float32(len(inMap)) * 100))
	}

	if count == len(inMap) && child.Length() == primary.Length() {
		ranks := make([]uint, child.Length())
		for i := range ranks {
			ranks[i] = uint(inMap[child.GeneAt(i)])
		}
		eval.Inversions = mergeSort(ranks)
	}

	alphabet := newGeneAlphabet(primary, filler, child)
	primaryStr, ok1 := alphabet.encode(primary)
	fillerStr, ok2 := alphabet.encode(filler)
	childStr, ok3 := alphabet.encode(child)

	if ok1 && ok2 && ok3 {
		eval.PrimaryDistance = hamming(childStr, primaryStr)
		eval.FillerDistance = hamming(childStr, fillerStr)
		eval.EditDistance = smetrics.WagnerFischer(childStr, primaryStr,
			e.Config.InsertCost, e.Config.DeleteCost, e.Config.SubstituteCost)
	} else {
		eval.PrimaryDistance = positionDistance(child, primary)
		eval.FillerDistance = positionDistance(child, filler)
	}

	return eval
}

func hamming(a, b string) int {
	d, err := smetrics.Hamming(a, b)
	if err != nil {
		return -1
	}
	return d
}

func positionDistance[G comparable](a, b Chromosome[G]) int {
	if a.Length() != b.Length() {
		return -1
	}
	d := 0
	for i := 0; i < a.Length(); i++ {
		if a.GeneAt(i) != b.GeneAt(i) {
			d++
		}
	}
	return d
}

// geneAlphabet assigns each distinct gene one ASCII byte so chromosomes can
// be compared with smetrics. Hamming ranges over runes, so symbols stay below
// utf8.RuneSelf.
type geneAlphabet[G comparable] struct {
	symbols map[G]byte
	full    bool
}

func newGeneAlphabet[G comparable](chromosomes ...Chromosome[G]) *geneAlphabet[G] {
	a := &geneAlphabet[G]{symbols: make(map[G]byte)}
	for _, c := range chromosomes {
		for i := 0; i < c.Length(); i++ {
			gene := c.GeneAt(i)
			if _, ok := a.symbols[gene]; ok {
				continue
			}
			if len(a.symbols) == utf8.RuneSelf {
				a.full = true
				return a
			}
			a.symbols[gene] = byte(len(a.symbols))
		}
	}
	return a
}

func (a *geneAlphabet[G]) encode(c Chromosome[G]) (string, bool) {
	if a.full {
		return "", false
	}
	var sb strings.Builder
	sb.Grow(c.Length())
	for i := 0; i < c.Length(); i++ {
		sb.WriteByte(a.symbols[c.GeneAt(i)])
	}
	return sb.String(), true
}

func merge(a []uint, mid int) uint {
	c := make([]uint, len(a))
	copy(c, a)

	var inversions uint
	left, right, current := 0, mid, 0

	for left < mid && right < len(c) {
		if c[left] <= c[right] {
			a[current] = c[left]
			left++
		} else {
			a[current] = c[right]
			right++
			inversions += uint(mid - left)
		}
		current++
	}

	for left < mid {
		a[current] = c[left]
		current++
		left++
	}
	for right < len(c) {
		a[current] = c[right]
		current++
		right++
	}

	return inversions
}

// mergeSort sorts a in place and returns its inversion count. Halves above
// 1<<11 elements are sorted concurrently.
func mergeSort(a []uint) uint {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	if mid >= 1<<11 {
		reply := make(chan uint, 1)
		go func() {
			reply <- mergeSort(a[mid:])
		}()
		inv1 := mergeSort(a[:mid])
		inv2 := <-reply
		return inv1 + inv2 + merge(a, mid)
	}
	inv1 := mergeSort(a[:mid])
	inv2 := mergeSort(a[mid:])
	return inv1 + inv2 + merge(a, mid)
}
