package schema_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/schema"
)

func TestNewTable_Valid(t *testing.T) {
	table, err := schema.NewTable("users", []string{"id", "name"}, []data.Row{
		{"id": int64(1), "name": "alice"},
		{"id": int64(2)}, // absent cell is a missing value, not an error
	})
	require.NoError(t, err)

	assert.Equal(t, "users", table.Name)
	assert.Equal(t, []string{"id", "name"}, table.Columns)
	assert.Equal(t, 2, table.RowCount())
	assert.True(t, table.HasColumn("name"))
	assert.False(t, table.HasColumn("email"))
}

func TestNewTable_DuplicateColumn(t *testing.T) {
	_, err := schema.NewTable("t", []string{"id", "id"}, nil)
	assert.ErrorContains(t, err, "duplicate column")
}

func TestNewTable_EmptyColumnName(t *testing.T) {
	_, err := schema.NewTable("t", []string{"id", ""}, nil)
	assert.Error(t, err)
}

func TestNewTable_UnknownColumnInRow(t *testing.T) {
	_, err := schema.NewTable("t", []string{"id"}, []data.Row{
		{"id": int64(1), "ghost": "boo"},
	})
	assert.ErrorContains(t, err, "unknown column")
}

func TestTable_CopyIsIndependent(t *testing.T) {
	table, err := schema.NewTable("t", []string{"v"}, []data.Row{{"v": "a"}})
	require.NoError(t, err)

	copied := table.Copy()
	copied.Rows[0]["v"] = "changed"
	copied.Columns[0] = "renamed"

	assert.Equal(t, "a", table.Rows[0]["v"])
	assert.Equal(t, "v", table.Columns[0])
}

func TestTable_Select(t *testing.T) {
	table, err := schema.NewTable("t", []string{"n"}, []data.Row{
		{"n": int64(1)},
		{"n": int64(2)},
		{"n": int64(3)},
	})
	require.NoError(t, err)

	got := table.Select(func(row data.Row) bool {
		return row["n"].(int64) >= int64(2)
	})
	want := []data.Row{{"n": int64(2)}, {"n": int64(3)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("select mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_ToJSON(t *testing.T) {
	table, err := schema.NewTable("t", []string{"id", "v"}, []data.Row{
		{"id": int64(1), "v": "a"},
		{"id": int64(2)},
	})
	require.NoError(t, err)

	raw, err := table.ToJSON()
	require.NoError(t, err)

	// Absent cells serialize as explicit nulls so every object carries
	// the full column set
	assert.JSONEq(t, `[{"id":1,"v":"a"},{"id":2,"v":null}]`, string(raw))
}
