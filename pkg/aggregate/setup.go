package aggregate

import (
	"context"

	"github.com/luminal-health/seriesdesk/pkg/archive"
	"github.com/luminal-health/seriesdesk/pkg/metastore"
)

// Logger defines the interface for logging operations within the aggregator.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// ResourceAPI is the slice of the archive client the aggregator needs.
type ResourceAPI interface {
	Series(ctx context.Context, id string) (*archive.SeriesResource, bool, error)
	Study(ctx context.Context, id string) (*archive.StudyResource, bool, error)
	Patient(ctx context.Context, id string) (*archive.PatientResource, bool, error)
}

// TagReader reads the custom-tags document for a series.
type TagReader interface {
	Read(ctx context.Context, seriesID string) (metastore.Document, string)
}

// Aggregator builds Rows.
type Aggregator struct {
	api    ResourceAPI
	tags   TagReader
	logger Logger
}

func NewAggregator(api ResourceAPI, tags TagReader, logger Logger) *Aggregator {
	return &Aggregator{api: api, tags: tags, logger: logger}
}

// Build produces the row for one find match. It never fails: each fetch that
// errors or comes back empty just removes that level's attributes from the
// merge. A series that resolves to nothing at all yields a row with an empty
// ID for the caller to filter.
//
// The steps are strictly ordered because each level's fetch needs the parent
// reference produced by the previous one.
func (a *Aggregator) Build(ctx context.Context, match archive.Match) Row {
	series, found, err := a.api.Series(ctx, match.ID)
	if err != nil {
		a.logger.Warn("series detail unavailable", err, map[string]interface{}{
			"series_id": match.ID,
		})
	}
	if series == nil || !found {
		return Row{Attributes: map[string]string{}, CustomTags: map[string]string{}}
	}

	var study *archive.StudyResource
	if series.ParentStudy != "" {
		study, _, err = a.api.Study(ctx, series.ParentStudy)
		if err != nil {
			a.logger.Warn("study detail unavailable", err, map[string]interface{}{
				"series_id": match.ID,
				"study_id":  series.ParentStudy,
			})
		}
	}

	var patient *archive.PatientResource
	if study != nil && study.ParentPatient != "" {
		patient, _, err = a.api.Patient(ctx, study.ParentPatient)
		if err != nil {
			a.logger.Warn("patient detail unavailable", err, map[string]interface{}{
				"series_id":  match.ID,
				"patient_id": study.ParentPatient,
			})
		}
	}

	// Precedence: patient < study < series < find hint. The more specific
	// level wins on key collisions, and the original query hint wins over
	// everything.
	attrs := map[string]string{}
	if patient != nil {
		mergeInto(attrs, patient.MainTags)
	}
	if study != nil {
		mergeInto(attrs, study.PatientTags)
		mergeInto(attrs, study.MainTags)
	}
	mergeInto(attrs, series.MainTags)
	mergeInto(attrs, match.RequestedTags)

	applyDisplayFallbacks(attrs)

	doc, _ := a.tags.Read(ctx, match.ID)
	custom := make(map[string]string, len(doc))
	for k, v := range doc {
		custom[k] = v
	}

	return Row{
		ID:         match.ID,
		SliceCount: series.SliceCount(),
		Attributes: attrs,
		CustomTags: custom,
	}
}

func mergeInto(dst map[string]string, src map[string]string) {
	for k, v := range src {
		dst[k] = v
	}
}
