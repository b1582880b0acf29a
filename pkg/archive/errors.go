package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaxSize reports a non-positive archive capacity.
	ErrInvalidMaxSize = errors.New("archive: max size must be positive")
	// ErrInvalidNumObjectives reports an objective count below two.
	ErrInvalidNumObjectives = errors.New("archive: at least two objectives required")
	// ErrUnknownEvictionPolicy reports an unrecognized eviction policy name.
	ErrUnknownEvictionPolicy = errors.New("archive: unknown eviction policy")
)

// DimensionMismatchError reports a submitted objective vector whose length
// differs from the archive's configured objective count. The whole batch is
// rejected and the archive left unchanged; vectors are never truncated or
// padded.
type DimensionMismatchError struct {
	// Index is the position of the offending candidate within the batch.
	Index    int
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("archive: candidate %d has %d objectives, expected %d", e.Index, e.Actual, e.Expected)
}
