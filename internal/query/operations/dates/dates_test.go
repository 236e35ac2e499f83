package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/errors"
	"github.com/leengari/wrangle/internal/domain/schema"
	"github.com/leengari/wrangle/internal/query/operations/dates"
)

func TestParse_Layouts(t *testing.T) {
	want := time.Date(1962, time.July, 12, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"1962-07-12",
		"12/07/1962",
		"12-07-1962",
		"12.07.1962",
		"12 July 1962",
		"12 Jul 1962",
		"July 12, 1962",
		"  1962-07-12  ", // surrounding whitespace tolerated
	} {
		got, err := dates.Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, got.Equal(want), "input %q parsed to %v", in, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := dates.Parse("sometime in 1977")
	assert.Error(t, err)

	_, err = dates.Parse("")
	assert.Error(t, err)
}

func TestParse_ExplicitLayouts(t *testing.T) {
	// With explicit layouts only those are probed
	_, err := dates.Parse("12/07/1962", "2006-01-02")
	assert.Error(t, err)

	got, err := dates.Parse("12/07/1962", "02/01/2006")
	require.NoError(t, err)
	assert.Equal(t, 1962, got.Year())
}

func TestNormalizeColumn(t *testing.T) {
	table, err := schema.NewTable("members", []string{"name", "joined"}, []data.Row{
		{"name": "mick", "joined": "12/07/1962"},
		{"name": "john", "joined": "6 July 1957"},
		{"name": "sid", "joined": "sometime in 1977"},
		{"name": "stu", "joined": nil},
		{"name": "pete", "joined": int64(1962)},
	})
	require.NoError(t, err)

	result, failed, err := dates.NormalizeColumn(table, "joined")
	require.NoError(t, err)

	assert.Equal(t, 1, failed)
	assert.Equal(t, "1962-07-12", result.Rows[0]["joined"])
	assert.Equal(t, "1957-07-06", result.Rows[1]["joined"])
	assert.Nil(t, result.Rows[2]["joined"], "unparseable cell becomes missing")
	assert.Nil(t, result.Rows[3]["joined"], "missing cell stays missing")
	assert.Equal(t, int64(1962), result.Rows[4]["joined"], "non-string cell untouched")

	// Input not mutated
	assert.Equal(t, "12/07/1962", table.Rows[0]["joined"])
}

func TestNormalizeColumn_UnknownColumn(t *testing.T) {
	table, err := schema.NewTable("t", []string{"a"}, nil)
	require.NoError(t, err)

	_, _, err = dates.NormalizeColumn(table, "joined")

	var notFound *errors.KeyColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "joined", notFound.Column)
	assert.Equal(t, "t", notFound.Table)
}
