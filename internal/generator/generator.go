// Package generator produces synthetic driver's-license records for seeding
// the record spreadsheet or a local CSV file.
package generator

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/dlviewer/dlviewer/internal/domain/license"
)

// Entry is one generated record, in sheet column order.
type Entry struct {
	ID            int
	FirstName     string
	LastName      string
	Middle        string
	DOB           string
	State         string
	LicenseNumber string
	City          string
	Street        string
	ZIP           string
	Height        string
	Weight        int
	EyeColor      string
	HairColor     string
	Expiration    string
	LicenseClass  string
	Restrictions  string
	OrganDonor    string
}

// Row renders the entry as CSV cells.
func (e Entry) Row() []string {
	return []string{
		strconv.Itoa(e.ID), e.FirstName, e.LastName, e.Middle, e.DOB, e.State,
		e.LicenseNumber, e.City, e.Street, e.ZIP, e.Height, strconv.Itoa(e.Weight),
		e.EyeColor, e.HairColor, e.Expiration, e.LicenseClass, e.Restrictions, e.OrganDonor,
	}
}

// SheetRow renders the entry as spreadsheet values. ID and weight stay numeric.
func (e Entry) SheetRow() []interface{} {
	row := make([]interface{}, 0, len(license.Header))
	for i, cell := range e.Row() {
		switch i {
		case 0:
			row = append(row, e.ID)
		case license.ColWeight:
			row = append(row, e.Weight)
		default:
			row = append(row, cell)
		}
	}
	return row
}

// Generator produces deterministic entries for a given seed.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New returns a generator seeded for reproducibility. If seed is 0 a
// time-based seed is chosen. A nil clock defaults to time.Now; the clock
// decides which expirations count as already past.
func New(seed int64, now func() time.Time) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// Generate returns count entries with ids 1..count.
func (g *Generator) Generate(count int) []Entry {
	out := make([]Entry, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, g.Entry(i))
	}
	return out
}

// Entry generates a single record.
func (g *Generator) Entry(id int) Entry {
	st := states[g.rng.Intn(len(states))]

	e := Entry{
		ID:        id,
		FirstName: g.pick(firstNames),
		LastName:  g.pick(lastNames),
		Middle:    string(middleLetters[g.rng.Intn(len(middleLetters))]),
		DOB:       g.date(1990, 2001).Format(license.DateLayout),
		State:     st.Code,
		City:      g.pick(st.Cities),
	}
	e.Expiration = g.expiration().Format(license.DateLayout)
	e.Height = fmt.Sprintf(`%d'%d"`, 5+g.rng.Intn(2), g.rng.Intn(12))
	e.Weight = 120 + g.rng.Intn(131)
	e.Street = fmt.Sprintf("%d %s", 100+g.rng.Intn(9900), g.pick(streets))
	e.ZIP = strconv.Itoa(10000 + g.rng.Intn(90000))
	e.LicenseNumber = g.LicenseNumber(st.Pattern)
	e.LicenseClass = "CLASS " + g.pick(licenseClasses)
	e.Restrictions = g.pick(restrictions)
	e.OrganDonor = g.pick(organDonor)
	e.EyeColor = g.pick(eyeColors)
	e.HairColor = g.pick(hairColors)
	return e
}

// LicenseNumber expands pattern: '#' becomes a digit, 'A' and 'B' become a
// letter, any other character is kept.
func (g *Generator) LicenseNumber(pattern string) string {
	buf := make([]byte, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '#':
			buf = append(buf, byte('0'+g.rng.Intn(10)))
		case 'A', 'B':
			buf = append(buf, patternLetters[g.rng.Intn(len(patternLetters))])
		default:
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// expiration issues a license between 2018 and 2023 for 4 to 6 years. A
// license that would already be expired is extended by four more years.
func (g *Generator) expiration() time.Time {
	issued := g.date(2018, 2023)
	exp := issued.AddDate(validityYears[g.rng.Intn(len(validityYears))], 0, 0)
	if exp.Before(license.Day(g.now())) {
		exp = exp.AddDate(4, 0, 0)
	}
	return exp
}

// date returns a uniformly chosen day between Jan 1 of from and Dec 31 of to.
func (g *Generator) date(from, to int) time.Time {
	start := time.Date(from, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rng.Intn(days+1))
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}
