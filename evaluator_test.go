package genetic_crossover

import (
	test "testing"
)

func TestEvaluateWorkedExample(t *test.T) {
	parents := makeParents()
	offspring := [2]Chromosome[int]{
		ints(0, 4, 7, 3, 6, 2, 5, 1, 8, 9),
		ints(8, 2, 1, 3, 4, 5, 6, 7, 9, 0),
	}

	evals := NewEvaluator[int](nil).Evaluate(parents, offspring)
	first := evals[0]

	if first.SetFidelity != 100 {
		t.Errorf("SetFidelity [%v] is not expected value [100]", first.SetFidelity)
	}
	if first.Inversions != 16 {
		t.Errorf("Inversions [%v] is not expected value [16]", first.Inversions)
	}
	if first.PrimaryDistance != 3 {
		t.Errorf("PrimaryDistance [%v] is not expected value [3]", first.PrimaryDistance)
	}
	if first.FillerDistance != 6 {
		t.Errorf("FillerDistance [%v] is not expected value [6]", first.FillerDistance)
	}
	if first.EditDistance != 4 {
		t.Errorf("EditDistance [%v] is not expected value [4]", first.EditDistance)
	}

	if evals[1].SetFidelity != 100 {
		t.Errorf("Second SetFidelity [%v] is not expected value [100]", evals[1].SetFidelity)
	}
}

func TestEvaluateIdenticalOffspring(t *test.T) {
	parents := makeParents()
	offspring := [2]Chromosome[int]{parents[0], parents[1]}

	for i, eval := range NewEvaluator[int](nil).Evaluate(parents, offspring) {
		if eval.Inversions != 0 || eval.PrimaryDistance != 0 || eval.EditDistance != 0 {
			t.Errorf("Evaluation %d of a parent copy is not zero: %+v", i, eval)
		}
	}
}

func TestEvaluateLostGenes(t *test.T) {
	parents := [2]Chromosome[int]{ints(1, 2, 3, 4), ints(4, 3, 2, 1)}
	offspring := [2]Chromosome[int]{ints(1, 1, 3, 4), ints(4, 3, 2, 1)}

	evals := NewEvaluator[int](nil).Evaluate(parents, offspring)
	if evals[0].SetFidelity != 75 {
		t.Errorf("SetFidelity [%v] is not expected value [75]", evals[0].SetFidelity)
	}
	if evals[0].Inversions != 0 {
		t.Errorf("Inversions [%v] should not be counted for a broken permutation", evals[0].Inversions)
	}
}

func TestEvaluateWideAlphabet(t *test.T) {
	length := 300
	primary := make([]int, length)
	reversed := make([]int, length)
	for i := range primary {
		primary[i] = i
		reversed[i] = length - 1 - i
	}
	parents := [2]Chromosome[int]{ints(primary...), ints(reversed...)}

	evals := NewEvaluator[int](nil).Evaluate(parents, parents)
	if evals[0].EditDistance != -1 {
		t.Errorf("EditDistance [%v] is not expected value [-1]", evals[0].EditDistance)
	}
	if evals[0].PrimaryDistance != 0 {
		t.Errorf("PrimaryDistance [%v] is not expected value [0]", evals[0].PrimaryDistance)
	}
	if evals[0].FillerDistance != length {
		t.Errorf("FillerDistance [%v] is not expected value [%v]", evals[0].FillerDistance, length)
	}
}

func TestMergeSortInversions(t *test.T) {
	cases := []struct {
		input    []uint
		expected uint
	}{
		{[]uint{}, 0},
		{[]uint{1}, 0},
		{[]uint{3, 1, 2}, 2},
		{[]uint{0, 1, 2, 3, 4}, 0},
		{[]uint{4, 3, 2, 1, 0}, 10},
		{[]uint{9, 1, 2, 3, 4, 5, 6, 7, 0, 8}, 16},
	}
	for _, c := range cases {
		input := append([]uint(nil), c.input...)
		if inv := mergeSort(input); inv != c.expected {
			t.Errorf("mergeSort(%v) [%v] is not expected value [%v]", c.input, inv, c.expected)
		}
		for i := 1; i < len(input); i++ {
			if input[i-1] > input[i] {
				t.Errorf("mergeSort(%v) left the input unsorted: %v", c.input, input)
				break
			}
		}
	}
}

func TestMergeSortLargeInput(t *test.T) {
	n := 5000
	input := make([]uint, n)
	for i := range input {
		input[i] = uint(n - 1 - i)
	}
	expected := uint(n * (n - 1) / 2)
	if inv := mergeSort(input); inv != expected {
		t.Errorf("mergeSort of %d reversed values [%v] is not expected value [%v]", n, inv, expected)
	}
}
