package license

import "time"

// Status is the validity class of a license relative to a given day.
type Status string

const (
	StatusValid    Status = "valid"
	StatusExpiring Status = "expiring"
	StatusExpired  Status = "expired"
)

// ExpiringWindowDays is the inclusive look-ahead, in days, for StatusExpiring.
const ExpiringWindowDays = 30

// Known reports whether s is one of the three status names. Matching is
// case-sensitive.
func (s Status) Known() bool {
	switch s {
	case StatusValid, StatusExpiring, StatusExpired:
		return true
	}
	return false
}

// DaysUntil returns the whole number of calendar days from today to date.
func DaysUntil(date, today time.Time) int {
	return int(Day(date).Sub(Day(today)).Hours() / 24)
}

// Classify returns the status of a license expiring on expiration as seen on
// today. ok is false when expiration is empty or not a valid date.
func Classify(expiration string, today time.Time) (Status, bool) {
	exp, ok := ParseDate(expiration)
	if !ok {
		return "", false
	}
	return classifyDays(DaysUntil(exp, today)), true
}

func classifyDays(days int) Status {
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiringWindowDays:
		return StatusExpiring
	default:
		return StatusValid
	}
}
