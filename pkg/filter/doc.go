// Package filter evaluates structured predicates and free-text search over
// loaded rows.
//
// The engine is a pure function: the same rows, query and predicates always
// produce the same subset, in the same order, with no I/O. Predicates are
// conjunctive across the list; within one predicate, any key of the selected
// namespace that passes the key filter may satisfy it. Inert predicates
// (nothing usable to match on) are skipped entirely.
package filter
