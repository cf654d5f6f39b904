package collection

import (
	"go.uber.org/fx"

	"github.com/luminal-health/seriesdesk/pkg/aggregate"
	"github.com/luminal-health/seriesdesk/pkg/archive"
)

// FXModule defines the Fx module for the collection loader.
var FXModule = fx.Module("collection",
	fx.Provide(
		NewConfig,
		NewLoaderFX,
	),
)

// Params collects the loader's dependencies for fx construction.
type Params struct {
	fx.In

	Config   Config
	Client   *archive.Client
	Agg      *aggregate.Aggregator
	Logger   Logger
	Observer LoadObserver `optional:"true"`
}

// NewLoaderFX adapts NewLoader to fx injection against the concrete archive
// client and aggregator.
func NewLoaderFX(p Params) (*Loader, error) {
	return NewLoader(p.Config, p.Client, p.Agg, p.Logger, p.Observer)
}
