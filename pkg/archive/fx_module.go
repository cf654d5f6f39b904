package archive

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the archive client. The consuming
// application provides the Logger; an Observer is optional.
var FXModule = fx.Module("archive",
	fx.Provide(
		NewConfig,
		NewClientFX,
	),
)

// Params collects the client's dependencies for fx construction.
type Params struct {
	fx.In

	Config   Config
	Logger   Logger
	Observer Observer `optional:"true"`
}

// NewClientFX adapts NewClient to fx injection.
func NewClientFX(p Params) (*Client, error) {
	return NewClient(p.Config, p.Logger, p.Observer)
}
