package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/luminal-health/seriesdesk/pkg/archive"
	"github.com/luminal-health/seriesdesk/pkg/collection"
)

// ObserveRequest records one archive request. *Metrics satisfies the archive
// client's Observer interface with this method; outcomes collapse to a small
// label set so the cardinality stays bounded.
func (m *Metrics) ObserveRequest(route, method string, status int, duration time.Duration, err error) {
	m.archiveRequests.WithLabelValues(route, method, outcomeLabel(status, err)).Inc()
	m.archiveLatency.WithLabelValues(route).Observe(duration.Seconds())
}

func outcomeLabel(status int, err error) string {
	switch {
	case err != nil:
		if errors.Is(err, context.DeadlineExceeded) {
			return "timeout"
		}
		return "transport_error"
	case status == http.StatusNotFound:
		return "not_found"
	case status == http.StatusConflict, status == http.StatusPreconditionFailed:
		return "conflict"
	case status >= 200 && status < 300:
		return "success"
	default:
		return "error"
	}
}

// ObserveLoad records the outcome of one collection load. *Metrics satisfies
// the collection loader's LoadObserver interface with this method.
func (m *Metrics) ObserveLoad(rows int, duration time.Duration) {
	m.SetRowsLoaded(rows)
	m.ObserveLoadDuration(duration.Seconds())
}

// ArchiveObserver returns the metrics sink typed as the archive client's
// observer, for wiring convenience.
func (m *Metrics) ArchiveObserver() archive.Observer {
	return m
}

// CollectionObserver returns the metrics sink typed as the collection
// loader's observer.
func (m *Metrics) CollectionObserver() collection.LoadObserver {
	return m
}
