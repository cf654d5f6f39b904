package aggregate

import (
	"go.uber.org/fx"

	"github.com/luminal-health/seriesdesk/pkg/archive"
	"github.com/luminal-health/seriesdesk/pkg/metastore"
)

// FXModule defines the Fx module for the aggregator.
var FXModule = fx.Module("aggregate",
	fx.Provide(
		NewAggregatorFX,
	),
)

// NewAggregatorFX adapts NewAggregator to fx injection against the concrete
// archive client and metadata store.
func NewAggregatorFX(client *archive.Client, store *metastore.Store, logger Logger) *Aggregator {
	return NewAggregator(client, store, logger)
}
