package data

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
)

// Row represents a single table row.
// Key = column name, Value = cell value.
// A nil value and an absent key both mean the cell is missing.
type Row map[string]interface{}

// Copy creates a deep copy of the row to prevent mutation
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// IsMissing reports whether a cell value is the missing marker
func IsMissing(v interface{}) bool {
	return v == nil
}

// NormalizeNumber collapses whole-valued floats to int64.
// Numbers loaded from JSON arrive as float64 even when they are
// integers, so comparisons must not distinguish 2.0 from 2.
func NormalizeNumber(v interface{}) interface{} {
	switch x := v.(type) {
	case float64:
		if x == float64(int64(x)) {
			return int64(x)
		}
		return x
	case int:
		return int64(x)
	default:
		return v
	}
}

// FormatValue renders a cell value for display
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		// Whole numbers display without a fraction (common when loaded from JSON)
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// ToJSON serializes the row as a JSON object
func (r Row) ToJSON() (json.RawMessage, error) {
	return json.Marshal(map[string]interface{}(r))
}

// FromJSON creates a Row from a JSON object
func FromJSON(raw json.RawMessage) (Row, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return Row(m), nil
}
