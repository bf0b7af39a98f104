// Package listquery builds and executes paginated list queries: named filter
// parameters are compiled into typed predicates, a client sort token is
// resolved against a per-entity allow-list, and the row fetch runs alongside
// the matching count. Every listing endpoint in the dashboard goes through
// this package instead of hand-assembling WHERE clauses.
package listquery

import "time"

// Kind selects how a filter value compiles into a storage clause.
type Kind int

const (
	// KindEquals compiles to exact equality on a text column.
	KindEquals Kind = iota
	// KindContains compiles to a case-insensitive substring match.
	KindContains
	// KindInSet compiles to membership in a value set.
	KindInSet
	// KindDateRange compiles to an inclusive timestamp range.
	KindDateRange
	// KindBoolSet accepts a set of "true"/"false" strings. A set covering
	// both values compiles to no predicate at all.
	KindBoolSet
	// KindID compiles to equality on a UUID column. Malformed input
	// compiles to equality on uuid.Nil so the query matches nothing
	// instead of failing.
	KindID
)

// Field maps one client-facing filter name onto a storage column.
type Field struct {
	Column string
	Kind   Kind
}

// FieldMap is the per-entity declaration of recognized filter names.
type FieldMap map[string]Field

// Range is an inclusive timestamp interval.
type Range struct {
	From time.Time
	To   time.Time
}

// Predicate is one compiled filter condition. Value holds a string for
// KindEquals/KindContains, a []string for KindInSet, a bool for KindBoolSet,
// a uuid.UUID for KindID and a Range for KindDateRange.
type Predicate struct {
	Column string
	Kind   Kind
	Value  any
}

// Sort is a validated column/direction pair. Direction is "ASC" or "DESC".
type Sort struct {
	Column    string
	Direction string
}

// Spec drives one list fetch.
type Spec struct {
	Predicates    []Predicate
	Search        string
	SearchColumns []string
	Sort          Sort
	Page          int
	PageSize      int
}

// Page is the response triple every listing endpoint returns.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalCount int `json:"totalCount"`
	PageCount  int `json:"pageCount"`
}
