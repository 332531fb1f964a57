package entity

// Tri-state values for SessionFilter.IncludeCancelled, carried through from
// the query string unparsed.
const (
	IncludeCancelledUnset = ""
	IncludeCancelledTrue  = "true"
	IncludeCancelledFalse = "false"
)

// SessionFilter is a domain-level filter for querying sessions.
// Used by the repository layer to avoid coupling with delivery DTOs.
// All criteria are optional and combined with logical AND; the owner id is
// passed separately and is always part of the final predicate.
//
// Date bounds are inclusive YYYY-MM-DD strings compared lexicographically.
// An unset IncludeCancelled excludes cancelled sessions, same result set as
// an explicit "false"; only "true" widens the query to include them.
type SessionFilter struct {
	PatientID        string
	StartDate        string
	EndDate          string
	Completed        *bool
	IncludeCancelled string
}

// CancelledIncluded reports whether cancelled sessions should appear in the
// result set.
func (f *SessionFilter) CancelledIncluded() bool {
	return f.IncludeCancelled == IncludeCancelledTrue
}
