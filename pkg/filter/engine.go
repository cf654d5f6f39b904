package filter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/luminal-health/seriesdesk/pkg/aggregate"
)

// dateToken matches the fixed-width numeric date form (YYYYMMDD). The
// fixed width is what makes plain lexicographic range comparison valid.
var dateToken = regexp.MustCompile(`\d{8}`)

// Apply returns the rows that pass every non-inert predicate and, when
// freeText is non-empty, contain it somewhere. Row order is preserved. The
// input slice is never modified.
func Apply(rows []aggregate.Row, freeText string, predicates []Predicate) []aggregate.Row {
	active := make([]Predicate, 0, len(predicates))
	for _, p := range predicates {
		if !p.Inert() {
			active = append(active, p)
		}
	}

	query := strings.ToLower(strings.TrimSpace(freeText))
	if len(active) == 0 && query == "" {
		out := make([]aggregate.Row, len(rows))
		copy(out, rows)
		return out
	}

	out := make([]aggregate.Row, 0, len(rows))
	for _, row := range rows {
		if !matchesAll(row, active) {
			continue
		}
		if query != "" && !matchesFreeText(row, query) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func matchesAll(row aggregate.Row, predicates []Predicate) bool {
	for _, p := range predicates {
		if !matchPredicate(row, p) {
			return false
		}
	}
	return true
}

// matchPredicate is satisfied when any candidate key's value matches. The
// key filter itself is a case-insensitive substring test; an empty filter
// admits every key in the namespace.
func matchPredicate(row aggregate.Row, p Predicate) bool {
	var space map[string]string
	switch p.Namespace {
	case NamespaceCustom:
		space = row.CustomTags
	default:
		space = row.Attributes
	}

	keyFilter := strings.ToLower(p.Key)
	for key, value := range space {
		if keyFilter != "" && !strings.Contains(strings.ToLower(key), keyFilter) {
			continue
		}
		if matchValue(p, value) {
			return true
		}
	}
	return false
}

func matchValue(p Predicate, value string) bool {
	switch p.Mode {
	case ModeDateRange:
		return matchDateRange(p, value)
	case ModeEquals:
		return strings.EqualFold(value, p.Value)
	case ModePrefix:
		return strings.HasPrefix(strings.ToLower(value), strings.ToLower(p.Value))
	case ModeSuffix:
		return strings.HasSuffix(strings.ToLower(value), strings.ToLower(p.Value))
	default:
		// contains; with an empty value this degenerates to "key exists
		// with a non-empty value".
		if p.Value == "" {
			return value != ""
		}
		return strings.Contains(strings.ToLower(value), strings.ToLower(p.Value))
	}
}

func matchDateRange(p Predicate, value string) bool {
	token := dateToken.FindString(value)
	if token == "" {
		return false
	}
	if p.RangeFrom != "" && token < p.RangeFrom {
		return false
	}
	if p.RangeTo != "" && token > p.RangeTo {
		return false
	}
	return true
}

// matchesFreeText scans every string-valued field of the row: native
// attributes, custom tags and the prioritized fields (identifier, slice
// count stringified).
func matchesFreeText(row aggregate.Row, query string) bool {
	if strings.Contains(strings.ToLower(row.ID), query) {
		return true
	}
	if strings.Contains(strconv.Itoa(row.SliceCount), query) {
		return true
	}
	for _, value := range row.Attributes {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	for _, value := range row.CustomTags {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	return false
}
