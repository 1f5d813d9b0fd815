package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlviewer/dlviewer/internal/domain/license"
)

func TestCSVCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "licenses.csv")
	var stdout bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"csv", "--count", "12", "--seed", "5", "--out", out})
	require.NoError(t, cmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, license.Header, rows[0])
	assert.Equal(t, "12", rows[12][0])
	assert.Contains(t, stdout.String(), "wrote 12 records")
}

func TestCSVCommand_SameSeedSameFile(t *testing.T) {
	dir := t.TempDir()
	run := func(name string) []byte {
		path := filepath.Join(dir, name)
		cmd := rootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"csv", "--count", "5", "--seed", "77", "-o", path})
		require.NoError(t, cmd.Execute())
		body, err := os.ReadFile(path)
		require.NoError(t, err)
		return body
	}
	assert.Equal(t, run("a.csv"), run("b.csv"))
}

func TestImportCommand_MissingFile(t *testing.T) {
	cmd := rootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"import", "--file", filepath.Join(t.TempDir(), "nope.csv")})
	assert.ErrorContains(t, cmd.Execute(), "open csv")
}
