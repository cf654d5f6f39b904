package export

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// unknownSize tells the storage client to stream without a declared length.
const unknownSize int64 = -1

// ArchiveSource opens the zip export stream for one series.
type ArchiveSource interface {
	OpenArchive(ctx context.Context, seriesID string) (io.ReadCloser, error)
}

// Result describes one stored export.
type Result struct {
	Bucket    string
	ObjectKey string
	Size      int64
}

// Export streams the series' zip from the archive into the bucket and
// returns where it landed. The stream is piped through without local
// buffering.
func (s *Sink) Export(ctx context.Context, seriesID string) (Result, error) {
	body, err := s.source.OpenArchive(ctx, seriesID)
	if err != nil {
		return Result{}, fmt.Errorf("open archive for series %s: %w", seriesID, err)
	}
	defer body.Close()

	key := s.cfg.Prefix + "/" + seriesID + ".zip"
	info, err := s.client.PutObject(ctx, s.cfg.BucketName, key, body, unknownSize, minio.PutObjectOptions{
		ContentType: "application/zip",
	})
	if err != nil {
		return Result{}, fmt.Errorf("store export for series %s: %w", seriesID, err)
	}

	s.logger.Info("series export stored", nil, map[string]interface{}{
		"series_id": seriesID,
		"bucket":    s.cfg.BucketName,
		"object":    key,
		"size":      info.Size,
	})

	return Result{Bucket: s.cfg.BucketName, ObjectKey: key, Size: info.Size}, nil
}
