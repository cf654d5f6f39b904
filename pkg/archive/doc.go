// Package archive is the REST client for the imaging archive service.
//
// The archive holds patients, studies and series, plus a per-series
// key/value metadata namespace. This package covers the full consumed
// surface:
//
//   - Find: bulk series search with requested-tag hints
//   - Series/Study/Patient: hierarchical resource detail
//   - ListMetadataKeys/GetMetadataKey/PutMetadataKey: raw metadata access
//     with entity-tag based conditional writes
//   - UploadInstances, DeleteSeries, OpenArchive: ingest, removal, export
//
// Responses from the archive are loosely typed; decoding here is tolerant
// where the wire format is known to vary (see find.go) and strict where it
// is not. Callers distinguish outcomes with errors.Is against ErrNotFound
// and ErrConflict; every other non-2xx is a *StatusError.
//
// The client is safe for concurrent use.
package archive
