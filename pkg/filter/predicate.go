package filter

// Namespace selects which attribute map of a row a predicate matches
// against.
type Namespace string

const (
	// NamespaceNative targets the archive-native attributes.
	NamespaceNative Namespace = "native"
	// NamespaceCustom targets the user-defined custom tags.
	NamespaceCustom Namespace = "custom"
)

// Mode is the value-matching mode of a predicate.
type Mode string

const (
	ModeContains  Mode = "contains"
	ModeEquals    Mode = "equals"
	ModePrefix    Mode = "prefix"
	ModeSuffix    Mode = "suffix"
	ModeDateRange Mode = "daterange"
)

// Predicate is one structured filter condition.
//
// Key is a case-insensitive substring filter over the namespace's keys; an
// empty Key makes every key in the namespace a candidate. Value is used by
// the string modes; RangeFrom/RangeTo bound ModeDateRange (either may be
// empty for a half-open range).
type Predicate struct {
	Namespace Namespace
	Mode      Mode
	Key       string
	Value     string
	RangeFrom string
	RangeTo   string
}

// Inert reports whether the predicate has nothing usable to match on. Inert
// predicates are ignored by the engine.
func (p Predicate) Inert() bool {
	if p.Key != "" {
		return false
	}
	if p.Mode == ModeDateRange {
		return p.RangeFrom == "" && p.RangeTo == ""
	}
	return p.Value == ""
}
