package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/luminal-health/seriesdesk/pkg/aggregate"
	"github.com/luminal-health/seriesdesk/pkg/archive"
)

// Logger defines the interface for logging operations within the loader.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Finder runs the bulk series find.
type Finder interface {
	FindSeries(ctx context.Context, query map[string]string, requestedTags []string) ([]archive.Match, error)
}

// Builder shapes one match into a row.
type Builder interface {
	Build(ctx context.Context, match archive.Match) aggregate.Row
}

// LoadObserver receives the outcome of every finished load. Implementations
// typically record metrics; the loader works fine without one.
type LoadObserver interface {
	ObserveLoad(rows int, duration time.Duration)
}

// Loader produces the full row set for a query.
type Loader struct {
	finder   Finder
	builder  Builder
	cfg      Config
	logger   Logger
	observer LoadObserver
}

// NewLoader creates a Loader. The observer may be nil.
func NewLoader(cfg Config, finder Finder, builder Builder, logger Logger, observer LoadObserver) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Loader{finder: finder, builder: builder, cfg: cfg, logger: logger, observer: observer}, nil
}

func (l *Loader) observeLoad(rows int, started time.Time) {
	if l.observer == nil {
		return
	}
	l.observer.ObserveLoad(rows, time.Since(started))
}

// Load finds every series matching query and aggregates each into a row. An
// empty find result short-circuits to an empty row set without touching the
// aggregator. Aggregation runs at most MaxParallel series at a time; rows
// come back in match order, minus the ones that resolved to nothing.
func (l *Loader) Load(ctx context.Context, query map[string]string) ([]aggregate.Row, error) {
	runID := uuid.NewString()
	started := time.Now()

	ctx, span := otel.Tracer("seriesdesk/collection").Start(ctx, "collection-load")
	span.SetAttributes(attribute.String("run_id", runID))
	defer span.End()

	matches, err := l.finder.FindSeries(ctx, query, RequestedTags())
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		l.observeLoad(0, started)
		l.logger.Info("load finished with no matches", nil, map[string]interface{}{
			"run_id": runID,
		})
		return []aggregate.Row{}, nil
	}

	// Build never returns an error, so the group never cancels: one series
	// failing to shape must not abort its siblings.
	rows := make([]aggregate.Row, len(matches))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.cfg.MaxParallel)
	for i, match := range matches {
		group.Go(func() error {
			rows[i] = l.builder.Build(groupCtx, match)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	kept := rows[:0]
	for _, row := range rows {
		if row.ID != "" {
			kept = append(kept, row)
		}
	}

	span.SetAttributes(attribute.Int("matches", len(matches)), attribute.Int("rows", len(kept)))
	l.observeLoad(len(kept), started)
	l.logger.Info("load finished", nil, map[string]interface{}{
		"run_id":      runID,
		"matches":     len(matches),
		"rows":        len(kept),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return kept, nil
}
