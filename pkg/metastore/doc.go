// Package metastore reads and writes the per-series custom-tags document.
//
// The archive stores the document as the raw text value of a single metadata
// key on the series resource. This package owns everything that makes that
// safe to share with other writers:
//
//   - an explicit existence cache, so repeated reads of series without a
//     document do not probe the archive's metadata index every time
//   - a two-stage JSON parse, because documents written by legacy clients
//     may be JSON-encoded twice
//   - read-merge-write semantics: a write merges a patch over the current
//     document, so keys owned by concurrent external writers survive
//   - optimistic concurrency via the entity tag from the last read; a losing
//     writer gets ErrConflict instead of silently clobbering
//
// Reads never fail: any outcome other than a successful parse degrades to an
// empty document, so a metadata outage costs custom tags, not rows. Writes
// report every non-success outcome.
package metastore
