// Package archive implements the bounded Pareto archive shared by the
// multi-objective drivers: a store of mutually non-dominated solutions with
// density-aware eviction and biased leader sampling.
package archive

import (
	"fmt"

	"github.com/evolab/metabench/pkg/framework"
)

// EvictionPolicy names the strategy used to shrink an over-capacity archive.
type EvictionPolicy string

const (
	// EvictStaleRanks removes the most crowded member repeatedly without
	// refreshing density ranks between removals, so ranks go stale during
	// the eviction loop. This matches the platform's historical behavior;
	// switching it changes convergence, so it stays the default.
	EvictStaleRanks EvictionPolicy = "StaleRanks"

	// EvictRecomputeRanks refreshes density ranks after every removal.
	EvictRecomputeRanks EvictionPolicy = "RecomputeRanks"
)

// Config parameterizes an Archive. MaxSize and NumObjectives are mandatory;
// the zero value of every other field selects the default behavior.
type Config struct {
	// MaxSize bounds the number of stored members. Must be positive.
	MaxSize int

	// NumObjectives is the expected objective vector length. Must be at
	// least two.
	NumObjectives int

	// Dominance decides which members survive an update. Defaults to
	// framework.Dominates (minimization).
	Dominance framework.DominanceFunc

	// Eviction selects the over-capacity removal strategy. Defaults to
	// EvictStaleRanks.
	Eviction EvictionPolicy

	// DeduplicateObjectives drops candidates whose objective vector exactly
	// matches one already present. Off by default: distinct decision
	// vectors may legitimately map to identical objectives.
	DeduplicateObjectives bool
}

// Candidate is one evaluated solution submitted to Update.
type Candidate struct {
	Variables  []float64
	Objectives []float64
}

// Member is a read-only copy of one stored solution.
type Member struct {
	Variables   []float64
	Objectives  []float64
	DensityRank int
}

// record is the archive-owned form of a solution. Vectors are copied on the
// way in and never handed out, so members stay immutable apart from rank.
type record struct {
	variables  []float64
	objectives framework.ObjectiveSpacePoint
	rank       int
}

// Archive is a bounded store of mutually non-dominated solutions. It is not
// safe for concurrent use: every run owns its own instance and drives it
// sequentially, one Update then any number of Selects per generation.
type Archive struct {
	maxSize   int
	numObj    int
	dominates framework.DominanceFunc
	eviction  EvictionPolicy
	dedup     bool

	members []record
}

// New validates cfg and returns an empty archive.
func New(cfg Config) (*Archive, error) {
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxSize, cfg.MaxSize)
	}
	if cfg.NumObjectives < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNumObjectives, cfg.NumObjectives)
	}
	dominates := cfg.Dominance
	if dominates == nil {
		dominates = framework.Dominates
	}
	eviction := cfg.Eviction
	if eviction == "" {
		eviction = EvictStaleRanks
	}
	switch eviction {
	case EvictStaleRanks, EvictRecomputeRanks:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvictionPolicy, cfg.Eviction)
	}

	return &Archive{
		maxSize:   cfg.MaxSize,
		numObj:    cfg.NumObjectives,
		dominates: dominates,
		eviction:  eviction,
		dedup:     cfg.DeduplicateObjectives,
	}, nil
}

// Len returns the current member count.
func (a *Archive) Len() int {
	return len(a.members)
}

// Update merges a batch of candidates into the archive: the union of the
// current members and the batch is reduced to its non-dominated frontier,
// density ranks are recomputed for the survivors, and the most crowded
// members are evicted one at a time (ties: first found) until the capacity
// bound holds again. Any candidate with a mismatched objective vector
// length rejects the entire batch and leaves the archive untouched.
func (a *Archive) Update(candidates []Candidate) error {
	for i, c := range candidates {
		if len(c.Objectives) != a.numObj {
			return &DimensionMismatchError{Index: i, Expected: a.numObj, Actual: len(c.Objectives)}
		}
	}

	union := make([]record, len(a.members), len(a.members)+len(candidates))
	copy(union, a.members)
	if a.dedup {
		seen := make(map[string]bool, len(union)+len(candidates))
		for _, r := range union {
			seen[objectiveKey(r.objectives)] = true
		}
		for _, c := range candidates {
			key := objectiveKey(c.Objectives)
			if seen[key] {
				continue
			}
			seen[key] = true
			union = append(union, newRecord(c))
		}
	} else {
		for _, c := range candidates {
			union = append(union, newRecord(c))
		}
	}

	points := make([]framework.ObjectiveSpacePoint, len(union))
	for i := range union {
		points[i] = union[i].objectives
	}
	frontier := framework.NonDominatedSet(points, a.dominates)

	next := make([]record, len(frontier))
	for i, idx := range frontier {
		next[i] = union[idx]
	}
	a.members = next
	a.refreshRanks()

	for len(a.members) > a.maxSize {
		drop := mostCrowded(a.members)
		a.members = append(a.members[:drop], a.members[drop+1:]...)
		if a.eviction == EvictRecomputeRanks {
			a.refreshRanks()
		}
	}
	return nil
}

// GetAll returns parallel copies of the stored decision and objective
// vectors, in matching order. Both slices may be empty.
func (a *Archive) GetAll() ([][]float64, [][]float64) {
	decisions := make([][]float64, len(a.members))
	objectives := make([][]float64, len(a.members))
	for i, r := range a.members {
		decisions[i] = make([]float64, len(r.variables))
		copy(decisions[i], r.variables)
		objectives[i] = make([]float64, len(r.objectives))
		copy(objectives[i], r.objectives)
	}
	return decisions, objectives
}

// Members returns a copy of the stored solutions with the density ranks
// left by the most recent Update.
func (a *Archive) Members() []Member {
	out := make([]Member, len(a.members))
	for i := range a.members {
		out[i] = a.memberAt(i)
	}
	return out
}

func (a *Archive) memberAt(i int) Member {
	r := a.members[i]
	vars := make([]float64, len(r.variables))
	copy(vars, r.variables)
	objs := make([]float64, len(r.objectives))
	copy(objs, r.objectives)
	return Member{Variables: vars, Objectives: objs, DensityRank: r.rank}
}

func newRecord(c Candidate) record {
	vars := make([]float64, len(c.Variables))
	copy(vars, c.Variables)
	objs := make(framework.ObjectiveSpacePoint, len(c.Objectives))
	copy(objs, c.Objectives)
	return record{variables: vars, objectives: objs}
}

// objectiveKey fingerprints an objective vector for deduplication. %v
// renders float64 values with their shortest round-trip form, so distinct
// vectors never collide.
func objectiveKey(objectives []float64) string {
	return fmt.Sprintf("%v", objectives)
}

// mostCrowded returns the first index holding the highest density rank.
func mostCrowded(members []record) int {
	drop := 0
	for i := 1; i < len(members); i++ {
		if members[i].rank > members[drop].rank {
			drop = i
		}
	}
	return drop
}
