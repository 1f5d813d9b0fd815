package license

import "time"

// Stats summarizes a record set.
type Stats struct {
	TotalLicenses int            `json:"total_licenses"`
	ByState       map[string]int `json:"by_state"`
	ExpiringSoon  int            `json:"expiring_soon"`
	Expired       int            `json:"expired"`
	OrganDonors   int            `json:"organ_donors"`
}

// Aggregate computes Stats over records as of today. Records without a valid
// expiration date count toward the totals but toward neither expiry bucket.
func Aggregate(records []License, today time.Time) Stats {
	s := Stats{
		TotalLicenses: len(records),
		ByState:       make(map[string]int),
	}
	for i := range records {
		rec := &records[i]
		s.ByState[rec.State]++
		if rec.OrganDonor {
			s.OrganDonors++
		}
		switch st, ok := Classify(rec.Expiration, today); {
		case !ok:
		case st == StatusExpired:
			s.Expired++
		case st == StatusExpiring:
			s.ExpiringSoon++
		}
	}
	return s
}
