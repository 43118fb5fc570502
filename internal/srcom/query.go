package srcom

import "math/rand/v2"

// sortFields is the fixed rotation of orderby values. The speedrun.com
// API sits behind an edge cache keyed on the full query string, so the
// same query shape can serve a minutes-old run list. Rotating the sort
// field (and randomizing direction and page size) makes each cycle's
// query distinct, which keeps freshly submitted runs visible promptly.
// The rotation is cosmetic to correctness; any shape eventually
// surfaces every new run.
var sortFields = [...]string{
	"game",
	"category",
	"level",
	"platform",
	"region",
	"emulated",
	"date",
	"submitted",
	"status",
	"verify-date",
}

// Page size bounds for the randomized max parameter.
const (
	minPageSize = 100
	maxPageSize = 200
)

// Query holds the listing parameters for one cycle.
type Query struct {
	// OrderBy is the sort field, from the fixed rotation.
	OrderBy string

	// Direction is "asc" or "desc".
	Direction string

	// Max is the page size, in [100, 200].
	Max int
}

// Rotator produces the per-cycle listing query.
//
// The sort-field index advances exactly once per Next call; the
// scheduler calls Next once at the start of each cycle and reuses the
// returned query for every game in that cycle. Not safe for
// concurrent use, which the single-loop design never needs.
type Rotator struct {
	idx int
}

// NewRotator creates a Rotator starting at the first sort field.
func NewRotator() *Rotator {
	return &Rotator{}
}

// Next returns the query for the next cycle and advances the
// sort-field rotation by one, wrapping after the last field.
func (r *Rotator) Next() Query {
	q := Query{
		OrderBy: sortFields[r.idx],
		Max:     minPageSize + rand.IntN(maxPageSize-minPageSize+1),
	}
	if rand.IntN(2) == 0 {
		q.Direction = "desc"
	} else {
		q.Direction = "asc"
	}
	r.idx = (r.idx + 1) % len(sortFields)
	return q
}

// SortFieldCount returns the number of distinct sort fields in the
// rotation.
func SortFieldCount() int {
	return len(sortFields)
}
