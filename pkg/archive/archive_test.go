package archive_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"github.com/evolab/metabench/pkg/archive"
	"github.com/evolab/metabench/pkg/framework"
)

func mustNew(t *testing.T, cfg archive.Config) *archive.Archive {
	t.Helper()
	a, err := archive.New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", cfg, err)
	}
	return a
}

func cand(objectives ...float64) archive.Candidate {
	return archive.Candidate{Variables: []float64{0}, Objectives: objectives}
}

func assertMutuallyNonDominated(t *testing.T, a *archive.Archive) {
	t.Helper()
	_, objectives := a.GetAll()
	for i := range objectives {
		for j := range objectives {
			if i == j {
				continue
			}
			if framework.Dominates(objectives[i], objectives[j]) {
				t.Errorf("member %v dominates member %v", objectives[i], objectives[j])
			}
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  archive.Config
		want error
	}{
		{
			name: "zero max size",
			cfg:  archive.Config{MaxSize: 0, NumObjectives: 2},
			want: archive.ErrInvalidMaxSize,
		},
		{
			name: "negative max size",
			cfg:  archive.Config{MaxSize: -3, NumObjectives: 2},
			want: archive.ErrInvalidMaxSize,
		},
		{
			name: "single objective",
			cfg:  archive.Config{MaxSize: 10, NumObjectives: 1},
			want: archive.ErrInvalidNumObjectives,
		},
		{
			name: "unknown eviction policy",
			cfg:  archive.Config{MaxSize: 10, NumObjectives: 2, Eviction: "Grid"},
			want: archive.ErrUnknownEvictionPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := archive.New(tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUpdateEmptyBatchLeavesArchiveEmpty(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 5, NumObjectives: 2})

	if err := a.Update(nil); err != nil {
		t.Fatalf("Update(nil) failed: %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
	decisions, objectives := a.GetAll()
	if len(decisions) != 0 || len(objectives) != 0 {
		t.Errorf("GetAll() = %v, %v, want empty snapshots", decisions, objectives)
	}
}

func TestUpdateSingleCandidate(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 5, NumObjectives: 2})

	if err := a.Update([]archive.Candidate{{Variables: []float64{1, 2}, Objectives: []float64{3, 4}}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	members := a.Members()
	if len(members) != 1 {
		t.Fatalf("Len() = %d, want 1", len(members))
	}
	if members[0].DensityRank != 0 {
		t.Errorf("DensityRank = %d, want 0 for a lone member", members[0].DensityRank)
	}
	if diff := cmp.Diff([]float64{1, 2}, members[0].Variables); diff != "" {
		t.Errorf("Variables mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3, 4}, members[0].Objectives); diff != "" {
		t.Errorf("Objectives mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateEvictsMostCrowdedAtCapacity(t *testing.T) {
	// All three candidates are mutually non-dominated and equally sparse
	// (ranks all zero), so the eviction tie falls to the first member.
	a := mustNew(t, archive.Config{MaxSize: 2, NumObjectives: 2})

	batch := []archive.Candidate{cand(1, 5), cand(5, 1), cand(3, 3)}
	if err := a.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	assertMutuallyNonDominated(t, a)

	_, objectives := a.GetAll()
	want := [][]float64{{5, 1}, {3, 3}}
	if diff := cmp.Diff(want, objectives); diff != "" {
		t.Errorf("survivors mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateDominatedCandidateChangesNothing(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})
	if err := a.Update([]archive.Candidate{cand(1, 5), cand(5, 1)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	_, before := a.GetAll()

	if err := a.Update([]archive.Candidate{cand(6, 6)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	_, after := a.GetAll()

	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("dominated candidate changed the member set (-before +after):\n%s", diff)
	}
}

func TestUpdateFrontierMonotonicity(t *testing.T) {
	// An old member leaves the archive only when a new candidate dominates it.
	a := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})
	if err := a.Update([]archive.Candidate{cand(1, 5), cand(5, 1), cand(3, 3)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if err := a.Update([]archive.Candidate{cand(0, 4)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	_, objectives := a.GetAll()
	want := [][]float64{{5, 1}, {3, 3}, {0, 4}}
	if diff := cmp.Diff(want, objectives); diff != "" {
		t.Errorf("frontier mismatch after dominating update (-want +got):\n%s", diff)
	}
}

func TestUpdateDimensionMismatchRejectsWholeBatch(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})
	if err := a.Update([]archive.Candidate{cand(1, 5)}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	_, before := a.GetAll()

	err := a.Update([]archive.Candidate{cand(0, 0), cand(1, 2, 3)})
	if err == nil {
		t.Fatal("Update accepted a batch with a mismatched objective vector")
	}
	var mismatch *archive.DimensionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error type = %T, want *DimensionMismatchError", err)
	}
	if mismatch.Index != 1 || mismatch.Expected != 2 || mismatch.Actual != 3 {
		t.Errorf("mismatch = %+v, want Index 1, Expected 2, Actual 3", mismatch)
	}

	_, after := a.GetAll()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("rejected batch still changed the archive (-before +after):\n%s", diff)
	}
}

func TestInvariantsUnderInsertionPressure(t *testing.T) {
	policies := []archive.EvictionPolicy{archive.EvictStaleRanks, archive.EvictRecomputeRanks}
	for _, policy := range policies {
		t.Run(string(policy), func(t *testing.T) {
			a := mustNew(t, archive.Config{MaxSize: 15, NumObjectives: 2, Eviction: policy})
			rng := rand.New(rand.NewSource(99))

			for gen := 0; gen < 40; gen++ {
				batch := make([]archive.Candidate, 10)
				for i := range batch {
					x := rng.Float64()
					y := rng.Float64()
					batch[i] = archive.Candidate{
						Variables:  []float64{x, y},
						Objectives: []float64{x, 1 - x + 0.2*y},
					}
				}
				if err := a.Update(batch); err != nil {
					t.Fatalf("generation %d: Update failed: %v", gen, err)
				}
				if a.Len() > 15 {
					t.Fatalf("generation %d: Len() = %d exceeds MaxSize 15", gen, a.Len())
				}
				assertMutuallyNonDominated(t, a)
			}
		})
	}
}

func TestEvictionPolicies(t *testing.T) {
	// Two clustered members and one isolated member: the cluster is evicted
	// first. Under StaleRanks the survivor keeps its pre-eviction rank;
	// under RecomputeRanks it is re-ranked against the shrunken set.
	batch := []archive.Candidate{cand(0, 10), cand(0.2, 9.8), cand(10, 0)}

	stale := mustNew(t, archive.Config{MaxSize: 2, NumObjectives: 2, Eviction: archive.EvictStaleRanks})
	if err := stale.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	staleMembers := stale.Members()
	if len(staleMembers) != 2 {
		t.Fatalf("Len() = %d, want 2", len(staleMembers))
	}
	if staleMembers[0].DensityRank != 1 {
		t.Errorf("stale policy: surviving cluster member rank = %d, want the stale 1", staleMembers[0].DensityRank)
	}

	fresh := mustNew(t, archive.Config{MaxSize: 2, NumObjectives: 2, Eviction: archive.EvictRecomputeRanks})
	if err := fresh.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	for _, m := range fresh.Members() {
		if m.DensityRank != 0 {
			t.Errorf("recompute policy: member %v rank = %d, want 0", m.Objectives, m.DensityRank)
		}
	}
}

func TestDeduplicateObjectives(t *testing.T) {
	dedup := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2, DeduplicateObjectives: true})
	batch := []archive.Candidate{
		{Variables: []float64{1}, Objectives: []float64{2, 2}},
		{Variables: []float64{7}, Objectives: []float64{2, 2}},
	}
	if err := dedup.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if dedup.Len() != 1 {
		t.Errorf("dedup archive Len() = %d, want 1", dedup.Len())
	}
	if err := dedup.Update([]archive.Candidate{{Variables: []float64{9}, Objectives: []float64{2, 2}}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if dedup.Len() != 1 {
		t.Errorf("dedup archive Len() = %d after repeated objectives, want 1", dedup.Len())
	}

	// Identical objective vectors do not dominate each other, so without
	// deduplication both stay.
	plain := mustNew(t, archive.Config{MaxSize: 10, NumObjectives: 2})
	if err := plain.Update(batch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if plain.Len() != 2 {
		t.Errorf("plain archive Len() = %d, want 2", plain.Len())
	}
}

func TestUpdateCopiesCandidateVectors(t *testing.T) {
	a := mustNew(t, archive.Config{MaxSize: 5, NumObjectives: 2})
	vars := []float64{1, 2}
	objs := []float64{3, 4}
	if err := a.Update([]archive.Candidate{{Variables: vars, Objectives: objs}}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	vars[0] = -100
	objs[0] = -100

	_, objectives := a.GetAll()
	if objectives[0][0] != 3 {
		t.Error("archive shares storage with the caller's candidate slices")
	}

	// Snapshots are copies too.
	objectives[0][0] = -7
	_, again := a.GetAll()
	if again[0][0] != 3 {
		t.Error("GetAll() handed out internal storage")
	}
}

func TestDeterminismAcrossInstances(t *testing.T) {
	build := func() *archive.Archive {
		return mustNew(t, archive.Config{MaxSize: 8, NumObjectives: 2})
	}
	run := func(a *archive.Archive) ([][]float64, []archive.Member) {
		rng := rand.New(rand.NewSource(1234))
		feed := rand.New(rand.NewSource(77))
		var picks []archive.Member
		for gen := 0; gen < 20; gen++ {
			batch := make([]archive.Candidate, 6)
			for i := range batch {
				x := feed.Float64()
				batch[i] = archive.Candidate{
					Variables:  []float64{x},
					Objectives: []float64{x, 1 - x},
				}
			}
			if err := a.Update(batch); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if m, ok := a.Select(rng, archive.FavorSparse); ok {
				picks = append(picks, m)
			}
		}
		_, objectives := a.GetAll()
		return objectives, picks
	}

	objsA, picksA := run(build())
	objsB, picksB := run(build())

	if diff := cmp.Diff(objsA, objsB); diff != "" {
		t.Errorf("member sets diverged across identically seeded runs (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(picksA, picksB); diff != "" {
		t.Errorf("selections diverged across identically seeded runs (-a +b):\n%s", diff)
	}
}
