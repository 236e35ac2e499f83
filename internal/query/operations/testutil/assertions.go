package testutil

import (
	"testing"

	"github.com/leengari/wrangle/internal/domain/data"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumns checks if a table carries exactly the expected columns, in order
func AssertColumns(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected columns %v, got %v", context, expected, actual)
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s: expected columns %v, got %v", context, expected, actual)
			return
		}
	}
}

// AssertCell checks a single cell value
func AssertCell(t *testing.T, row data.Row, column string, expected interface{}, context string) {
	t.Helper()
	if row[column] != expected {
		t.Errorf("%s: expected %s=%v, got %v", context, column, expected, row[column])
	}
}

// AssertNullValue checks if a value is the missing marker
func AssertNullValue(t *testing.T, value interface{}, context string) {
	t.Helper()
	if value != nil {
		t.Errorf("%s: expected NULL value, got: %v", context, value)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
