package metastore

import (
	"go.uber.org/fx"

	"github.com/luminal-health/seriesdesk/pkg/archive"
)

// FXModule defines the Fx module for the metastore. The archive client and a
// Logger come from the surrounding application.
var FXModule = fx.Module("metastore",
	fx.Provide(
		NewConfig,
		NewStoreFX,
	),
)

// NewStoreFX adapts NewStore to fx injection against the concrete archive
// client.
func NewStoreFX(cfg Config, client *archive.Client, logger Logger) (*Store, error) {
	return NewStore(cfg, client, logger)
}
