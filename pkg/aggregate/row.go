package aggregate

// Row is the normalized, query-able representation of one series. Rows are
// built wholesale per refresh and never mutated in place afterwards.
type Row struct {
	// ID is the archive's series identifier and the row's primary key. A row
	// with an empty ID marks a series that resolved to nothing; callers
	// filter those out explicitly rather than this package dropping them.
	ID string

	// SliceCount is the number of instances in the series.
	SliceCount int

	// Attributes are the archive-native tags merged across resource levels.
	// Keys are case-sensitive and unique.
	Attributes map[string]string

	// CustomTags are the user-defined tags from the metadata store.
	CustomTags map[string]string
}

// Attribute names the display fallbacks operate on.
const (
	attrStudyDate   = "StudyDate"
	attrSeriesDate  = "SeriesDate"
	attrPatientName = "PatientName"
	attrPatientID   = "PatientID"
)

// applyDisplayFallbacks fills table-usability gaps in the merged attribute
// map. These substitutions exist purely for rendering and must never be
// written back to any store.
func applyDisplayFallbacks(attrs map[string]string) {
	if attrs[attrStudyDate] == "" && attrs[attrSeriesDate] != "" {
		attrs[attrStudyDate] = attrs[attrSeriesDate]
	}
	if attrs[attrPatientName] == "" && attrs[attrPatientID] != "" {
		attrs[attrPatientName] = attrs[attrPatientID]
	}
}
