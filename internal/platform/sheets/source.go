package sheets

import (
	"context"

	"github.com/dlviewer/dlviewer/internal/domain/license"
)

// SourceName identifies records loaded from Google Sheets.
const SourceName = "google_sheets"

// LicenseSource adapts a Connector to license.Source for one sheet range.
type LicenseSource struct {
	conn    *Connector
	sheetID string
	rng     string
	opts    license.MapOptions
}

func NewLicenseSource(conn *Connector, sheetID, rng string, opts license.MapOptions) *LicenseSource {
	return &LicenseSource{conn: conn, sheetID: sheetID, rng: rng, opts: opts}
}

func (s *LicenseSource) Name() string { return SourceName }

// FetchLicenses reads the range and maps it. Rows that fail to map are logged
// and skipped.
func (s *LicenseSource) FetchLicenses(ctx context.Context) ([]license.License, error) {
	rows, err := s.conn.Fetch(ctx, s.sheetID, s.rng)
	if err != nil {
		return nil, err
	}
	records, warnings := license.MapRows(rows, s.opts)
	for _, w := range warnings {
		s.conn.logger.Warn().Int("row", w.Row).Err(w.Err).Msg("row kept with unparseable date")
	}
	s.conn.logger.Debug().Int("count", len(records)).Msg("mapped license rows")
	return records, nil
}
