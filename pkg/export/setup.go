package export

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Logger defines the interface for logging operations within the export sink.
// This interface allows for dependency injection of any compatible logger implementation.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=export
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Sink writes series exports to an object-storage bucket.
type Sink struct {
	client *minio.Client
	cfg    Config
	source ArchiveSource
	logger Logger
}

// NewSink connects to the object store, validates the connection and makes
// sure the configured bucket exists.
func NewSink(cfg Config, source ArchiveSource, logger Logger) (*Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("connecting to export storage", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"secure":   cfg.UseSSL,
		"bucket":   cfg.BucketName,
	})

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		logger.Error("failed to connect to export storage", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
		})
		return nil, err
	}

	sink := &Sink{client: client, cfg: cfg, source: source, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sink.ensureBucketExists(ctx); err != nil {
		logger.Error("failed to verify export bucket", err, map[string]interface{}{
			"endpoint": cfg.Endpoint,
			"bucket":   cfg.BucketName,
		})
		return nil, err
	}

	return sink, nil
}

// ensureBucketExists checks the configured bucket and creates it if needed.
func (s *Sink) ensureBucketExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.BucketName)
	if err != nil {
		return fmt.Errorf("failed to check if bucket exists, bucket: %v, err: %w", s.cfg.BucketName, err)
	}

	if !exists {
		s.logger.Info("export bucket does not exist, creating it", nil, map[string]interface{}{
			"bucket": s.cfg.BucketName,
			"region": s.cfg.Region,
		})

		if err := s.client.MakeBucket(ctx, s.cfg.BucketName, minio.MakeBucketOptions{
			Region: s.cfg.Region,
		}); err != nil {
			return err
		}

		s.logger.Info("successfully created export bucket", nil, map[string]interface{}{
			"bucket": s.cfg.BucketName,
		})
	}

	return nil
}
