package license

import (
	"net/url"
	"strings"
	"time"
)

// Params are the optional list filters. Set filters are combined with AND.
type Params struct {
	Search string
	State  string
	Status Status
}

// IsZero reports whether no filter is set.
func (p Params) IsZero() bool {
	return p.Search == "" && p.State == "" && p.Status == ""
}

// ParseParams reads search, state and status from query values. Blank values
// are ignored. Status is kept as given; see Filter for unknown values.
func ParseParams(q url.Values) Params {
	return Params{
		Search: strings.TrimSpace(q.Get("search")),
		State:  strings.TrimSpace(q.Get("state")),
		Status: Status(strings.TrimSpace(q.Get("status"))),
	}
}

// Filter returns the records matching p, in their original order. With no
// filter set the input slice itself is returned. Any status filter drops
// records without a parseable expiration; an unknown status keeps the rest.
func Filter(records []License, p Params, today time.Time) []License {
	if p.IsZero() {
		return records
	}

	search := strings.ToLower(p.Search)
	out := make([]License, 0, len(records))
	for _, rec := range records {
		if search != "" && !matchesSearch(&rec, search) {
			continue
		}
		if p.State != "" && !strings.EqualFold(rec.State, p.State) {
			continue
		}
		if p.Status != "" {
			st, ok := Classify(rec.Expiration, today)
			if !ok || (p.Status.Known() && st != p.Status) {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// matchesSearch expects needle already lower-cased.
func matchesSearch(rec *License, needle string) bool {
	return strings.Contains(strings.ToLower(rec.FirstName), needle) ||
		strings.Contains(strings.ToLower(rec.LastName), needle) ||
		strings.Contains(strings.ToLower(rec.LicenseNumber), needle)
}

// FindByID returns the record with the given identifier.
func FindByID(records []License, id int) (License, bool) {
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return License{}, false
}
