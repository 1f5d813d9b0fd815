package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow() []string {
	return []string{
		"7", "James", "Smith", "Q", "1990-04-02", "CA", "F1234567", "Fresno",
		"12 Main St", "93650", `5'11"`, "180", "BRO", "BLK", "2027-06-01",
		"CLASS C", "A,B", "YES",
	}
}

func TestMapRows_HeaderOnly(t *testing.T) {
	recs, errs := MapRows([][]string{Header}, MapOptions{})
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
	assert.Empty(t, errs)

	recs, _ = MapRows(nil, MapOptions{})
	assert.Empty(t, recs)
}

func TestMapRows_DenseIDsAndSkips(t *testing.T) {
	rows := [][]string{
		Header,
		fullRow(),
		{},
		{"9", "Short"},
		{"10", "Bad", "Exp", "", "", "", "", "", "", "", "", "", "", "", "2024-02-31"},
		fullRow(),
	}
	recs, warnings := MapRows(rows, MapOptions{})

	require.Len(t, recs, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(recs))
	assert.Equal(t, "Short", recs[1].FirstName)
	assert.Empty(t, recs[1].LastName)
	assert.Zero(t, recs[1].Weight)
	assert.Equal(t, "2024-02-31", recs[2].Expiration, "unparseable dates are kept verbatim")

	require.Len(t, warnings, 1)
	assert.Equal(t, 5, warnings[0].Row, "sheet row numbering counts the header")
	assert.Contains(t, warnings[0].Error(), "unparseable expiration")
}

func TestMapRow_DefaultMappingLeavesGap(t *testing.T) {
	rec := MapRow(fullRow(), MapOptions{})

	assert.Equal(t, "James", rec.FirstName)
	assert.Equal(t, "Smith", rec.LastName)
	assert.Equal(t, "Q", rec.MiddleInitial)
	assert.Equal(t, "1990-04-02", rec.DateOfBirth)
	assert.Equal(t, "CA", rec.State)
	assert.Equal(t, "F1234567", rec.LicenseNumber)
	assert.Equal(t, "Fresno", rec.City)
	assert.Equal(t, "12 Main St", rec.Street)
	assert.Equal(t, "93650", rec.ZipCode)
	assert.Equal(t, `5'11"`, rec.Height)
	assert.Equal(t, 180, rec.Weight)
	assert.Equal(t, "BRO", rec.EyeColor)
	assert.Equal(t, "BLK", rec.HairColor)
	assert.Equal(t, "2027-06-01", rec.Expiration)

	assert.Empty(t, rec.LicenseClass)
	assert.Empty(t, rec.Restrictions)
	assert.False(t, rec.OrganDonor)
}

func TestMapRow_Extended(t *testing.T) {
	rec := MapRow(fullRow(), MapOptions{Extended: true})
	assert.Equal(t, "CLASS C", rec.LicenseClass)
	assert.Equal(t, "A,B", rec.Restrictions)
	assert.True(t, rec.OrganDonor)

	row := fullRow()
	row[ColOrganDonor] = "NO"
	rec = MapRow(row, MapOptions{Extended: true})
	assert.False(t, rec.OrganDonor)
}

func TestParseWeight(t *testing.T) {
	assert.Equal(t, 180, parseWeight("180"))
	assert.Equal(t, 0, parseWeight(""))
	assert.Equal(t, 0, parseWeight("-5"))
	assert.Equal(t, 0, parseWeight("180 lb"))
	assert.Equal(t, 0, parseWeight("99999999999999999999999"))
}

func TestMapRows_KeepsUnparseableDates(t *testing.T) {
	bad := fullRow()
	bad[ColDOB] = "04/02/1990"
	bad[ColExpiration] = "01/15/2026"
	recs, warnings := MapRows([][]string{Header, fullRow(), bad}, MapOptions{})

	require.Len(t, recs, 2)
	assert.Equal(t, "04/02/1990", recs[1].DateOfBirth)
	assert.Equal(t, "01/15/2026", recs[1].Expiration)
	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Row)
	assert.Contains(t, warnings[0].Error(), "date of birth")

	_, ok := Classify(recs[1].Expiration, today)
	assert.False(t, ok)
	for _, st := range []Status{StatusValid, StatusExpiring, StatusExpired} {
		assert.NotContains(t, ids(Filter(recs, Params{Status: st}, today)), 2)
	}
	assert.Equal(t, 2, Aggregate(recs, today).TotalLicenses)
}
