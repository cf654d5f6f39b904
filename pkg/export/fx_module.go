package export

import (
	"go.uber.org/fx"

	"github.com/luminal-health/seriesdesk/pkg/archive"
)

// FXModule defines the Fx module for the export sink.
var FXModule = fx.Module("export",
	fx.Provide(
		NewConfig,
		NewSinkFX,
	),
)

// NewSinkFX adapts NewSink to fx injection against the concrete archive
// client.
func NewSinkFX(cfg Config, client *archive.Client, logger Logger) (*Sink, error) {
	return NewSink(cfg, client, logger)
}
