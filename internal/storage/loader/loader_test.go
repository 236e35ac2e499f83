package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/wrangle/internal/storage/loader"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "members.csv", "name, band\nMick,Stones\nJohn,Beatles\n")

	table, err := loader.LoadCSV(path, "members")
	require.NoError(t, err)

	assert.Equal(t, "members", table.Name)
	assert.Equal(t, []string{"name", "band"}, table.Columns, "header names trimmed")
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "Mick", table.Rows[0]["name"])
	assert.Equal(t, "Beatles", table.Rows[1]["band"])
}

func TestLoadCSV_RaggedRowsPadded(t *testing.T) {
	path := writeFile(t, "ragged.csv", "a,b,c\n1,2\n")

	table, err := loader.LoadCSV(path, "ragged")
	require.NoError(t, err)

	require.Equal(t, 1, table.RowCount())
	assert.Equal(t, "2", table.Rows[0]["b"])
	assert.Nil(t, table.Rows[0]["c"], "short record pads with missing")
}

func TestLoadCSV_Empty(t *testing.T) {
	path := writeFile(t, "empty.csv", "")

	_, err := loader.LoadCSV(path, "empty")
	assert.ErrorContains(t, err, "no header row")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := loader.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), "nope")
	assert.Error(t, err)
}

func TestLoadCSV_DuplicateHeader(t *testing.T) {
	path := writeFile(t, "dup.csv", "id,id\n1,2\n")

	_, err := loader.LoadCSV(path, "dup")
	assert.ErrorContains(t, err, "duplicate column")
}
