package collection

// RequestedTagsVersion identifies the hint set below. Bump it when the set
// changes so cached find responses keyed on it are not mixed.
const RequestedTagsVersion = "v2"

// requestedTags is the fixed set of attribute names asked for inline with
// every bulk find. It covers the common display columns so loading a page of
// rows does not force a second round trip per series for them; everything
// else still comes from the per-level resource fetches.
var requestedTags = []string{
	"PatientID",
	"PatientName",
	"PatientBirthDate",
	"PatientSex",
	"StudyDate",
	"StudyDescription",
	"StudyInstanceUID",
	"SeriesDate",
	"SeriesDescription",
	"SeriesNumber",
	"SeriesInstanceUID",
	"Modality",
	"BodyPartExamined",
	"StationName",
}

// RequestedTags returns a copy of the hint set.
func RequestedTags() []string {
	out := make([]string, len(requestedTags))
	copy(out, requestedTags)
	return out
}
