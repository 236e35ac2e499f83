package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/wrangle/internal/domain/data"
)

func TestRow_Copy(t *testing.T) {
	row := data.Row{"id": int64(1), "name": "alice"}
	copied := row.Copy()
	copied["name"] = "bob"

	assert.Equal(t, "alice", row["name"])
}

func TestIsMissing(t *testing.T) {
	assert.True(t, data.IsMissing(nil))
	assert.False(t, data.IsMissing(""))
	assert.False(t, data.IsMissing(int64(0)))
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, int64(2), data.NormalizeNumber(float64(2)))
	assert.Equal(t, int64(2), data.NormalizeNumber(2))
	assert.Equal(t, int64(2), data.NormalizeNumber(int64(2)))
	assert.Equal(t, 2.5, data.NormalizeNumber(2.5))
	assert.Equal(t, "2", data.NormalizeNumber("2"))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, "NULL"},
		{"x", "x"},
		{int64(42), "42"},
		{7, "7"},
		{float64(3), "3"},
		{3.14, "3.14"},
		{true, "true"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, data.FormatValue(tc.in))
	}
}

func TestRow_JSONRoundTrip(t *testing.T) {
	row := data.Row{"id": float64(1), "name": "alice", "gone": nil}

	raw, err := row.ToJSON()
	require.NoError(t, err)

	back, err := data.FromJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, row, back)
}
