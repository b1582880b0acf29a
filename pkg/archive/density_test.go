package archive_test

import (
	"testing"

	"github.com/evolab/metabench/pkg/archive"
)

func ranks(t *testing.T, a *archive.Archive) []int {
	t.Helper()
	members := a.Members()
	out := make([]int, len(members))
	for i, m := range members {
		out[i] = m.DensityRank
	}
	return out
}

func TestDensityRanksCountBoxNeighbors(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})

	// Spread is 10 in both dimensions, so the neighborhood width is 0.5.
	// The first two members sit within 0.2 of each other in every dimension;
	// the third is far away in both.
	batch := []archive.Candidate{cand(0, 10), cand(0.2, 9.8), cand(10, 0)}
	if err := a.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got := ranks(t, a)
	want := []int{1, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("member %d rank = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDensityNeighborsRequireEveryDimension(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})

	// Close in the first dimension (0.1 < width 0.5) but far in the second:
	// the box test must reject the pair.
	batch := []archive.Candidate{cand(0, 10), cand(0.1, 5), cand(10, 0)}
	if err := a.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	for i, r := range ranks(t, a) {
		if r != 0 {
			t.Errorf("member %d rank = %d, want 0 (no full-box neighbors)", i, r)
		}
	}
}

func TestDensityZeroSpreadFallsBackToUnitWidth(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})

	// Identical objective vectors give zero spread in both dimensions. With
	// the fallback width of 1 the two members count each other as neighbors
	// instead of collapsing the box to nothing.
	batch := []archive.Candidate{
		{Variables: []float64{1}, Objectives: []float64{3, 3}},
		{Variables: []float64{2}, Objectives: []float64{3, 3}},
	}
	if err := a.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	for i, r := range ranks(t, a) {
		if r != 1 {
			t.Errorf("member %d rank = %d, want 1", i, r)
		}
	}
}
