package metastore

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/luminal-health/seriesdesk/pkg/archive"
)

// Logger defines the interface for logging operations within the metastore.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=metastore
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// MetadataAPI is the slice of the archive client the store needs.
type MetadataAPI interface {
	ListMetadataKeys(ctx context.Context, seriesID string) (map[string]string, error)
	GetMetadataKey(ctx context.Context, seriesID, key string) (body string, etag string, err error)
	PutMetadataKey(ctx context.Context, seriesID, key, body, ifMatch string) error
}

// Store is the custom-tags document client. It is safe for concurrent use;
// note that two overlapping writes to the same series still race at the
// archive, which is exactly what the conditional PUT guards against.
type Store struct {
	api    MetadataAPI
	cache  *ExistenceCache
	cfg    Config
	logger Logger
}

// NewStore creates a Store with a fresh existence cache.
func NewStore(cfg Config, api MetadataAPI, logger Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{
		api:    api,
		cache:  NewExistenceCache(),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Cache exposes the existence cache, mainly so callers can Invalidate a
// series after out-of-band changes.
func (s *Store) Cache() *ExistenceCache {
	return s.cache
}

// Read returns the current custom-tags document and the version token to use
// for a conditional write. Read never fails: not-found, transport errors and
// malformed payloads all degrade to an empty document, so a metadata outage
// costs custom tags, not rows. The existence cache is updated only from
// definite outcomes (a successful read or an explicit not-found), never from
// transport failures.
func (s *Store) Read(ctx context.Context, seriesID string) (Document, string) {
	doc, etag, err := s.read(ctx, seriesID)
	if err != nil {
		s.logger.Warn("custom tags unavailable, continuing without them", err, map[string]interface{}{
			"series_id": seriesID,
		})
		return Document{}, ""
	}
	return doc, etag
}

// read fetches the current document. A definite not-found is not an error:
// it yields an empty document with no version token. A transport failure is
// returned as an error so write paths can refuse to treat it as an empty
// merge base; only Read is allowed to swallow it.
func (s *Store) read(ctx context.Context, seriesID string) (Document, string, error) {
	_, known := s.cache.Lookup(seriesID)

	// The index probe is only worth spending a request on the first time we
	// see a series; once existence is cached either way, the direct fetch is
	// the cheaper call.
	if !known && s.cfg.ProbeIndex {
		if keys, err := s.api.ListMetadataKeys(ctx, seriesID); err == nil {
			if _, present := keys[s.cfg.Key]; !present {
				s.cache.Set(seriesID, false)
				return Document{}, "", nil
			}
			s.cache.Set(seriesID, true)
		}
		// An unavailable or unreadable index is not evidence of absence;
		// fall through to the direct read.
	}

	body, etag, err := s.api.GetMetadataKey(ctx, seriesID, s.cfg.Key)
	switch {
	case errors.Is(err, archive.ErrNotFound):
		s.cache.Set(seriesID, false)
		return Document{}, "", nil
	case err != nil:
		return Document{}, "", err
	}

	s.cache.Set(seriesID, true)
	return ParseDocument(body), etag, nil
}

// Write merges patch into the stored document (patch wins on collisions) and
// writes the result back under the version token obtained by the embedded
// read. A write that loses the race returns ErrConflict; callers decide
// whether to retry (see WriteWithRetry) or report to the operator. When the
// current document cannot be read at all, the write is aborted: an unreadable
// document is not an empty one, and merging a patch over nothing would drop
// every key a concurrent writer owns.
func (s *Store) Write(ctx context.Context, seriesID string, patch Document) error {
	current, etag, err := s.read(ctx, seriesID)
	if err != nil {
		return fmt.Errorf("read before write: %w", err)
	}

	merged := make(Document, len(current)+len(patch))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}

	return s.put(ctx, seriesID, merged, etag)
}

// put serializes the full document and stores it. The plain JSON encoding is
// tried first; if the archive rejects the body outright, the legacy
// double-encoded form is tried once, because the accepted encoding varies by
// archive deployment. The first accepted response wins.
func (s *Store) put(ctx context.Context, seriesID string, doc Document, etag string) error {
	plain, err := EncodeDocument(doc)
	if err != nil {
		return err
	}

	err = s.api.PutMetadataKey(ctx, seriesID, s.cfg.Key, plain, etag)
	if err != nil && archive.IsEncodingRejection(err) {
		s.logger.Debug("plain encoding rejected, retrying with legacy form", err, map[string]interface{}{
			"series_id": seriesID,
		})
		legacy, encErr := EncodeDocumentLegacy(doc)
		if encErr != nil {
			return encErr
		}
		err = s.api.PutMetadataKey(ctx, seriesID, s.cfg.Key, legacy, etag)
	}
	if err != nil {
		return translateWriteError(err)
	}

	s.cache.Set(seriesID, true)
	return nil
}

// WriteWithRetry behaves like Write but re-reads, re-merges and re-writes
// under backoff when the conditional write is rejected. Only ErrConflict is
// retried; every other failure is permanent.
func (s *Store) WriteWithRetry(ctx context.Context, seriesID string, patch Document) error {
	attempt := func() error {
		err := s.Write(ctx, seriesID, patch)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrConflict) {
			s.logger.Info("metadata write lost a concurrent race, retrying", err, map[string]interface{}{
				"series_id": seriesID,
			})
			return err
		}
		return backoff.Permanent(err)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(s.cfg.ConflictRetries)),
		ctx,
	)
	return backoff.Retry(attempt, policy)
}

// Set stores a single custom tag. It is a one-entry Write, so unrelated keys
// survive.
func (s *Store) Set(ctx context.Context, seriesID, key, value string) error {
	return s.Write(ctx, seriesID, Document{key: value})
}

// Delete removes a single custom tag. The archive has no per-key delete; the
// document is the unit of storage, so this reads the current document, drops
// the key locally and writes the remainder back in full. This is the only
// write path allowed to shrink the document.
func (s *Store) Delete(ctx context.Context, seriesID, key string) error {
	current, etag, err := s.read(ctx, seriesID)
	if err != nil {
		return fmt.Errorf("read before delete: %w", err)
	}
	if _, present := current[key]; !present {
		return nil
	}
	delete(current, key)
	return s.put(ctx, seriesID, current, etag)
}
