package genetic_crossover

import (
	mop "reflect"
	test "testing"
)

func TestNewPermutationChromosome(t *test.T) {
	c := NewPermutationChromosome[int](5)

	if c.Length() != 5 {
		t.Errorf("Length [%v] is not expected value [5]", c.Length())
	}
	for i := 0; i < c.Length(); i++ {
		if c.GeneAt(i) != 0 {
			t.Errorf("Gene [%d] is [%v], expected the zero value", i, c.GeneAt(i))
		}
	}
}

func TestReplaceGenes(t *test.T) {
	c := NewPermutationChromosome[int](5)

	if err := c.ReplaceGenes(1, []int{7, 8, 9}); err != nil {
		t.Fatalf("ReplaceGenes failed: %v", err)
	}
	if !mop.DeepEqual(c.Genes(), []int{0, 7, 8, 9, 0}) {
		t.Errorf("Genes [%v] are not expected value [0 7 8 9 0]", c.Genes())
	}

	if err := c.ReplaceGenes(3, []int{1, 2, 3}); err == nil {
		t.Errorf("ReplaceGenes unexpectedly succeeded overflowing the chromosome")
	} else if err.Error() != "Replacing 3 genes from index [3] overflows chromosome length [5]" {
		t.Errorf("Error string doesn't match: %v", err)
	}

	if err := c.ReplaceGenes(-1, []int{1}); err == nil {
		t.Errorf("ReplaceGenes unexpectedly succeeded with a negative index")
	} else if err.Error() != "Start index [-1] is out of range [0, 5)" {
		t.Errorf("Error string doesn't match: %v", err)
	}

	if err := c.ReplaceGenes(5, nil); err != nil {
		t.Errorf("Replacing no genes at the end failed: %v", err)
	}
}

func TestCreateNew(t *test.T) {
	c := ints(3, 1, 2)
	n := c.CreateNew()

	if n.Length() != 3 {
		t.Errorf("CreateNew length [%v] is not expected value [3]", n.Length())
	}
	if !mop.DeepEqual(n.Genes(), []int{0, 0, 0}) {
		t.Errorf("CreateNew genes [%v] are not empty", n.Genes())
	}
}

func TestGenesIsACopy(t *test.T) {
	source := []int{1, 2, 3}
	c := NewPermutationChromosomeFromGenes(source)
	source[0] = 99

	genes := c.Genes()
	genes[1] = 42

	if !mop.DeepEqual(c.Genes(), []int{1, 2, 3}) {
		t.Errorf("Chromosome genes [%v] leaked through a shared slice", c.Genes())
	}
}

func TestPermutationClone(t *test.T) {
	c := NewPermutationChromosomeFromGenes([]string{"x", "y", "z"})
	clone := c.Clone()

	if !mop.DeepEqual(c, clone) {
		t.Errorf("Clone does not match original:\nOriginal: %v\nActual: %v", c, clone)
	}
	if err := clone.ReplaceGenes(0, []string{"w"}); err != nil {
		t.Fatalf("ReplaceGenes failed: %v", err)
	}
	if c.GeneAt(0) != "x" {
		t.Errorf("Mutating the clone changed the original: %v", c)
	}
}

func TestPermutationString(t *test.T) {
	if s := ints(8, 4, 7).String(); s != "[8 4 7]" {
		t.Errorf("String [%v] is not expected value [8 4 7]", s)
	}
}

func TestNewRandomPermutation(t *test.T) {
	c := NewRandomPermutation(30, NewBasicRandomization(5))

	if c.Length() != 30 {
		t.Fatalf("Length [%v] is not expected value [30]", c.Length())
	}
	if repeatedGenes[int](c) != 0 {
		t.Errorf("Random permutation has repeated genes: %v", c)
	}
	for i := 0; i < c.Length(); i++ {
		if g := c.GeneAt(i); g < 0 || g >= 30 {
			t.Errorf("Gene [%v] is outside [0, 30)", g)
		}
	}
}

func TestRepeatedGenes(t *test.T) {
	cases := map[int]*PermutationChromosome[int]{
		0: ints(1, 2, 3),
		1: ints(0, 1, 2, 3, 5, 5, 6, 7, 8, 9),
		3: ints(4, 4, 4, 4),
	}
	for expected, c := range cases {
		if k := repeatedGenes[int](c); k != expected {
			t.Errorf("repeatedGenes(%v) [%v] is not expected value [%v]", c, k, expected)
		}
	}
}

func TestChromosomeTypeName(t *test.T) {
	if name := chromosomeTypeName(ints(1)); name != "PermutationChromosome[int]" {
		t.Errorf("Type name [%v] is not expected value [PermutationChromosome[int]]", name)
	}
	if name := chromosomeTypeName(namedChromosome{}); name != "namedChromosome" {
		t.Errorf("Type name [%v] is not expected value [namedChromosome]", name)
	}
	if name := chromosomeTypeName(nil); name != "<nil>" {
		t.Errorf("Type name [%v] is not expected value [<nil>]", name)
	}
}
