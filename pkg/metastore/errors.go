package metastore

import (
	"errors"
	"fmt"

	"github.com/luminal-health/seriesdesk/pkg/archive"
)

// ErrConflict is returned by writes that lost an optimistic-concurrency
// race: the document changed between the read that produced the merge base
// and the conditional PUT. The write was not applied; re-reading and
// re-merging is safe.
var ErrConflict = errors.New("metastore: document changed concurrently")

// translateWriteError maps archive-level failures onto the package taxonomy.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, archive.ErrConflict) {
		return fmt.Errorf("%w: %s", ErrConflict, err)
	}
	return err
}
