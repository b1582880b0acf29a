package algorithms

import (
	"github.com/evolab/metabench/pkg/archive"
)

// Default parameter values shared by the drivers.
const (
	DefaultPopulationSize = 30
	DefaultMaxIterations  = 500
	DefaultArchiveSize    = 100
)

// Config carries the parameters every driver understands. Zero values select
// the defaults.
type Config struct {
	PopulationSize int
	MaxIterations  int

	// InitialSolutions seeds the starting population. Vectors are clamped
	// into the problem bounds; vectors of the wrong length are skipped and
	// missing slots are filled uniformly at random.
	InitialSolutions [][]float64

	// Progress, when set, is invoked once per iteration.
	Progress ProgressFunc
}

func (c *Config) setDefaults() {
	if c.PopulationSize <= 0 {
		c.PopulationSize = DefaultPopulationSize
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
}

// MultiConfig extends Config with the archive parameters used by the
// multi-objective drivers.
type MultiConfig struct {
	Config

	// ArchiveSize bounds the external archive. Defaults to 100.
	ArchiveSize int

	// Eviction and DeduplicateObjectives are passed through to the archive.
	Eviction              archive.EvictionPolicy
	DeduplicateObjectives bool
}

func (c *MultiConfig) setDefaults() {
	c.Config.setDefaults()
	if c.ArchiveSize <= 0 {
		c.ArchiveSize = DefaultArchiveSize
	}
}

// newArchive builds the external archive for a multi-objective run.
func (c *MultiConfig) newArchive(numObjectives int) (*archive.Archive, error) {
	return archive.New(archive.Config{
		MaxSize:               c.ArchiveSize,
		NumObjectives:         numObjectives,
		Eviction:              c.Eviction,
		DeduplicateObjectives: c.DeduplicateObjectives,
	})
}
