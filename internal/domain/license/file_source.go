package license

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceSampleData names records loaded from the local fallback file.
const SourceSampleData = "sample_data"

// FileSource reads licenses from a local JSON array or a generator CSV file.
type FileSource struct {
	path string
	opts MapOptions
}

// NewFileSource returns a source for path. opts applies to CSV files only.
func NewFileSource(path string, opts MapOptions) *FileSource {
	return &FileSource{path: path, opts: opts}
}

func (s *FileSource) Name() string { return SourceSampleData }

// Path returns the file the source reads.
func (s *FileSource) Path() string { return s.path }

// Available reports whether the file exists.
func (s *FileSource) Available() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

func (s *FileSource) FetchLicenses(_ context.Context) ([]License, error) {
	if strings.EqualFold(filepath.Ext(s.path), ".csv") {
		return s.readCSV()
	}
	return s.readJSON()
}

func (s *FileSource) readJSON() ([]License, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var out []License
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return out, nil
}

func (s *FileSource) readCSV() ([]License, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", s.path, err)
	}
	out, _ := MapRows(rows, s.opts)
	return out, nil
}
