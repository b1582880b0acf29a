package framework

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b ObjectiveSpacePoint
		want bool
	}{
		{
			name: "strictly better in all objectives",
			a:    ObjectiveSpacePoint{1, 1},
			b:    ObjectiveSpacePoint{2, 2},
			want: true,
		},
		{
			name: "better in one, equal in the other",
			a:    ObjectiveSpacePoint{1, 2},
			b:    ObjectiveSpacePoint{2, 2},
			want: true,
		},
		{
			name: "equal points do not dominate",
			a:    ObjectiveSpacePoint{1, 2},
			b:    ObjectiveSpacePoint{1, 2},
			want: false,
		},
		{
			name: "trade-off points do not dominate",
			a:    ObjectiveSpacePoint{1, 5},
			b:    ObjectiveSpacePoint{5, 1},
			want: false,
		},
		{
			name: "worse in one objective",
			a:    ObjectiveSpacePoint{1, 3},
			b:    ObjectiveSpacePoint{2, 2},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dominates(tt.a, tt.b); got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDominatesMax(t *testing.T) {
	a := ObjectiveSpacePoint{3, 3}
	b := ObjectiveSpacePoint{2, 3}

	if !DominatesMax(a, b) {
		t.Errorf("DominatesMax(%v, %v) = false, want true", a, b)
	}
	if DominatesMax(b, a) {
		t.Errorf("DominatesMax(%v, %v) = true, want false", b, a)
	}
	if DominatesMax(a, a) {
		t.Error("a point must not dominate itself under maximization")
	}
}

func TestNonDominatedSet(t *testing.T) {
	points := []ObjectiveSpacePoint{
		{1, 5},
		{5, 1},
		{3, 3},
		{4, 4}, // dominated by {3,3}
		{6, 6}, // dominated by everything above
	}

	got := NonDominatedSet(points, Dominates)
	want := []int{0, 1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NonDominatedSet mismatch (-want +got):\n%s", diff)
	}
}

func TestNonDominatedSetIdempotent(t *testing.T) {
	points := []ObjectiveSpacePoint{
		{1, 5},
		{5, 1},
		{3, 3},
	}

	first := NonDominatedSet(points, Dominates)
	if len(first) != len(points) {
		t.Fatalf("expected all %d points in the frontier, got %d", len(points), len(first))
	}

	again := NonDominatedSet(points, Dominates)
	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("frontier changed on a second pass (-first +again):\n%s", diff)
	}
}

func TestNonDominatedSetKeepsDuplicates(t *testing.T) {
	points := []ObjectiveSpacePoint{
		{2, 2},
		{2, 2},
	}

	got := NonDominatedSet(points, Dominates)
	if len(got) != 2 {
		t.Errorf("identical points must not dominate each other, got frontier %v", got)
	}
}

func TestNonDominatedSort(t *testing.T) {
	population := []Individual{
		{Objectives: []float64{1, 5}},
		{Objectives: []float64{5, 1}},
		{Objectives: []float64{2, 6}}, // dominated by {1,5}
		{Objectives: []float64{6, 6}}, // dominated by all of the above
	}

	fronts := NonDominatedSort(population)
	if len(fronts) != 3 {
		t.Fatalf("expected 3 fronts, got %d", len(fronts))
	}
	if len(fronts[0]) != 2 {
		t.Errorf("expected 2 individuals in the first front, got %d", len(fronts[0]))
	}
	for _, ind := range fronts[0] {
		if ind.Rank != 0 {
			t.Errorf("first front individual has rank %d, want 0", ind.Rank)
		}
	}
	if len(fronts[2]) != 1 || fronts[2][0].Objectives[0] != 6 {
		t.Errorf("expected {6,6} alone in the last front, got %v", fronts[2])
	}
}
