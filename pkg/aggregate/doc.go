// Package aggregate shapes one series into the row the browser renders.
//
// Attributes for a series are spread across three archive resource levels
// (patient, study, series) plus whatever the bulk find already returned
// inline. The aggregator fetches the levels in order, merges them with fixed
// precedence, applies two display fallbacks and attaches the custom-tags
// document. Missing or unreachable levels degrade to fewer attributes, never
// to a failed row.
package aggregate
