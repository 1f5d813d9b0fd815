package license

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Column positions in the source sheet. Column 0 holds a row counter and is
// never read.
const (
	ColFirstName = iota + 1
	ColLastName
	ColMiddle
	ColDOB
	ColState
	ColLicenseNumber
	ColCity
	ColStreet
	ColZip
	ColHeight
	ColWeight
	ColEyeColor
	ColHairColor
	ColExpiration
	ColLicenseClass
	ColRestrictions
	ColOrganDonor
)

// Header is the fixed column header written by the generator and expected as
// the first row of the source sheet.
var Header = []string{
	"ID", "First Name", "Last Name", "Middle", "DOB", "State",
	"License Number", "City", "Street Address", "ZIP", "Height",
	"Weight", "Eye Color", "Hair Color", "Expiration",
	"License Class", "Restrictions", "Organ Donor",
}

// MapOptions controls row mapping.
type MapOptions struct {
	// Extended also reads License Class, Restrictions and Organ Donor. When
	// false those fields stay empty/false even if the sheet has them.
	Extended bool
}

// RowWarning reports a problem in a row that was still mapped. Row is the
// 1-based sheet row number, counting the header as row 1.
type RowWarning struct {
	Row int
	Err error
}

func (w RowWarning) Error() string {
	return fmt.Sprintf("row %d: %v", w.Row, w.Err)
}

func (w RowWarning) Unwrap() error { return w.Err }

// MapRows converts raw sheet rows into licenses. The first row is a header and
// is dropped; empty rows are skipped. IDs are assigned 1..N over the mapped
// rows.
//
// Dates that are not YYYY-MM-DD are kept verbatim and reported as warnings.
// Such records have no status and never match a status filter.
func MapRows(rows [][]string, opts MapOptions) ([]License, []RowWarning) {
	if len(rows) <= 1 {
		return []License{}, nil
	}

	out := make([]License, 0, len(rows)-1)
	var warnings []RowWarning
	for i, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		rec := MapRow(row, opts)
		if err := checkDates(&rec); err != nil {
			warnings = append(warnings, RowWarning{Row: i + 2, Err: err})
		}
		rec.ID = len(out) + 1
		out = append(out, rec)
	}
	return out, warnings
}

// MapRow converts one positional row. Missing trailing columns default to the
// zero value of the field.
func MapRow(row []string, opts MapOptions) License {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	rec := License{
		FirstName:     col(ColFirstName),
		LastName:      col(ColLastName),
		MiddleInitial: col(ColMiddle),
		DateOfBirth:   col(ColDOB),
		State:         col(ColState),
		LicenseNumber: col(ColLicenseNumber),
		City:          col(ColCity),
		Street:        col(ColStreet),
		ZipCode:       col(ColZip),
		Height:        col(ColHeight),
		Weight:        parseWeight(col(ColWeight)),
		EyeColor:      col(ColEyeColor),
		HairColor:     col(ColHairColor),
		Expiration:    col(ColExpiration),
	}
	if opts.Extended {
		rec.LicenseClass = col(ColLicenseClass)
		rec.Restrictions = col(ColRestrictions)
		rec.OrganDonor = parseYes(col(ColOrganDonor))
	}
	return rec
}

// checkDates reports non-empty dates that are not YYYY-MM-DD.
func checkDates(rec *License) error {
	var errs []error
	if rec.DateOfBirth != "" {
		if _, ok := ParseDate(rec.DateOfBirth); !ok {
			errs = append(errs, fmt.Errorf("unparseable date of birth %q", rec.DateOfBirth))
		}
	}
	if rec.Expiration != "" {
		if _, ok := ParseDate(rec.Expiration); !ok {
			errs = append(errs, fmt.Errorf("unparseable expiration %q", rec.Expiration))
		}
	}
	return errors.Join(errs...)
}

// parseWeight accepts plain digit strings only; anything else is 0.
func parseWeight(s string) int {
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseYes(s string) bool {
	switch strings.ToUpper(s) {
	case "YES", "Y", "TRUE", "1":
		return true
	}
	return false
}
