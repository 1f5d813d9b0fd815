package license

import "time"

// DateLayout is the on-the-wire format of DateOfBirth and Expiration.
const DateLayout = "2006-01-02"

// License is one synthetic driver's-license record. ID is assigned by position
// when a batch is fetched and is not stable across refetches.
type License struct {
	ID            int    `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	MiddleInitial string `json:"middleInitial"`
	DateOfBirth   string `json:"dateOfBirth"`
	State         string `json:"state"`
	LicenseNumber string `json:"licenseNumber"`
	City          string `json:"city"`
	Street        string `json:"street"`
	ZipCode       string `json:"zipCode"`
	Height        string `json:"height"`
	Weight        int    `json:"weight"`
	EyeColor      string `json:"eyeColor"`
	HairColor     string `json:"hairColor"`
	Expiration    string `json:"expiration"`
	LicenseClass  string `json:"licenseClass"`
	Restrictions  string `json:"restrictions"`
	OrganDonor    bool   `json:"organDonor"`
}

// ExpirationDate parses Expiration. ok is false when it is empty or malformed.
func (l *License) ExpirationDate() (time.Time, bool) {
	return ParseDate(l.Expiration)
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Day truncates t to its calendar date, expressed at UTC midnight so that
// date differences are whole multiples of 24h.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
