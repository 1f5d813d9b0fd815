// Package sheets reads and appends license rows in a Google Sheets
// spreadsheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// ErrNotConnected is returned by every call on a connector whose
// authentication failed or was never attempted.
var ErrNotConnected = errors.New("google sheets: not connected")

// Credentials locate the service-account key. JSON, when set, wins over File.
type Credentials struct {
	File string
	JSON string
}

// valuesAPI is the slice of the Sheets values API the connector needs.
type valuesAPI interface {
	Get(ctx context.Context, sheetID, rng string) ([][]interface{}, error)
	Append(ctx context.Context, sheetID, rng string, rows [][]interface{}) (int64, error)
}

type serviceValues struct {
	svc *sheetsapi.Service
}

func (s *serviceValues) Get(ctx context.Context, sheetID, rng string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(sheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (s *serviceValues) Append(ctx context.Context, sheetID, rng string, rows [][]interface{}) (int64, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Append(sheetID, rng, &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return 0, err
	}
	if resp.Updates == nil {
		return 0, nil
	}
	return resp.Updates.UpdatedCells, nil
}

// Connector talks to one Google account. Check Connected before relying on
// it: a failed Connect still returns a usable, disconnected value.
type Connector struct {
	api    valuesAPI
	logger zerolog.Logger
}

// Connect authenticates with read/write scope. Failures are logged and yield
// a disconnected connector rather than an error.
func Connect(ctx context.Context, creds Credentials, logger zerolog.Logger) *Connector {
	logger = logger.With().Str("component", "sheets").Logger()

	var opt option.ClientOption
	switch {
	case creds.JSON != "":
		opt = option.WithCredentialsJSON([]byte(creds.JSON))
	case creds.File != "":
		if _, err := os.Stat(creds.File); err != nil {
			logger.Warn().Str("file", creds.File).Msg("credentials file not found; sheets disabled")
			return &Connector{logger: logger}
		}
		opt = option.WithCredentialsFile(creds.File)
	default:
		logger.Warn().Msg("no credentials configured; sheets disabled")
		return &Connector{logger: logger}
	}

	svc, err := sheetsapi.NewService(ctx, opt, option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		logger.Error().Err(err).Msg("google sheets authentication failed")
		return &Connector{logger: logger}
	}
	logger.Info().Msg("google sheets authenticated (read/write)")
	return newConnector(&serviceValues{svc: svc}, logger)
}

func newConnector(api valuesAPI, logger zerolog.Logger) *Connector {
	return &Connector{api: api, logger: logger}
}

// Connected reports whether authentication succeeded.
func (c *Connector) Connected() bool {
	return c != nil && c.api != nil
}

// Fetch returns the raw rows of rng as strings. On any failure it returns an
// empty slice together with the cause.
func (c *Connector) Fetch(ctx context.Context, sheetID, rng string) ([][]string, error) {
	if !c.Connected() {
		return [][]string{}, ErrNotConnected
	}
	values, err := c.api.Get(ctx, sheetID, rng)
	if err != nil {
		c.logger.Error().Err(err).Str("range", rng).Msg("google sheets read failed")
		return [][]string{}, fmt.Errorf("read %s: %w", rng, err)
	}
	if len(values) == 0 {
		c.logger.Warn().Str("range", rng).Msg("no data found in sheet")
		return [][]string{}, nil
	}

	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		rows[i] = cells
	}
	c.logger.Debug().Int("rows", len(rows)).Msg("retrieved rows from google sheets")
	return rows, nil
}

// NextRow returns the 1-based index of the first unused row of sheet, judged
// by column A.
func (c *Connector) NextRow(ctx context.Context, sheetID, sheet string) (int, error) {
	if !c.Connected() {
		return 0, ErrNotConnected
	}
	values, err := c.api.Get(ctx, sheetID, quoteSheet(sheet)+"!A:A")
	if err != nil {
		return 0, fmt.Errorf("find next row: %w", err)
	}
	return len(values) + 1, nil
}

// Append writes rows starting at startRow of sheet, values taken as-is.
// It returns the number of cells updated.
func (c *Connector) Append(ctx context.Context, sheetID, sheet string, startRow int, rows [][]interface{}) (int64, error) {
	if !c.Connected() {
		return 0, ErrNotConnected
	}
	rng := fmt.Sprintf("%s!A%d", quoteSheet(sheet), startRow)
	cells, err := c.api.Append(ctx, sheetID, rng, rows)
	if err != nil {
		return 0, fmt.Errorf("append %s: %w", rng, err)
	}
	c.logger.Info().Str("range", rng).Int64("cells", cells).Int("rows", len(rows)).Msg("rows appended")
	return cells, nil
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// quoteSheet quotes tab names that A1 notation would otherwise misread.
func quoteSheet(name string) string {
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return "'" + name + "'"
		}
	}
	return name
}
