package join

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/errors"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// validateKey checks that every key column exists on its side
func validateKey(left, right *schema.Table, key []KeyPair) error {
	if left == nil {
		return fmt.Errorf("left table is nil")
	}
	if right == nil {
		return fmt.Errorf("right table is nil")
	}
	if len(key) == 0 {
		return fmt.Errorf("join key is empty")
	}

	for _, pair := range key {
		if !left.HasColumn(pair.Left) {
			return errors.NewKeyColumnNotFound(left.Name, pair.Left)
		}
		if !right.HasColumn(pair.Right) {
			return errors.NewKeyColumnNotFound(right.Name, pair.Right)
		}
	}
	return nil
}

func leftKeyColumns(key []KeyPair) []string {
	cols := make([]string, len(key))
	for i, pair := range key {
		cols[i] = pair.Left
	}
	return cols
}

func rightKeyColumns(key []KeyPair) []string {
	cols := make([]string, len(key))
	for i, pair := range key {
		cols[i] = pair.Right
	}
	return cols
}

// resultColumns computes the output column list and the output name of
// every non-key right column. Key columns appear once, under the left
// table's name; right key columns are dropped. A non-key right column
// colliding with a left column is suffixed or rejected per Options.
func resultColumns(left, right *schema.Table, key []KeyPair, opts *Options) ([]string, map[string]string, error) {
	rightKey := make(map[string]bool, len(key))
	for _, pair := range key {
		rightKey[pair.Right] = true
	}

	used := make(map[string]bool, len(left.Columns)+len(right.Columns))
	for _, col := range left.Columns {
		used[col] = true
	}

	columns := append([]string(nil), left.Columns...)
	rightOut := make(map[string]string, len(right.Columns))

	for _, col := range right.Columns {
		if rightKey[col] {
			continue // de-duplicated under the left key name
		}
		name := col
		if used[name] {
			if opts.policy() == CollideError {
				return nil, nil, errors.NewColumnCollision(col, left.Name, right.Name)
			}
			// A prior join can already have produced the suffixed name
			// on the left side, so keep suffixing until it is unique
			for used[name] {
				name = name + opts.suffix()
			}
		}
		used[name] = true
		rightOut[col] = name
		columns = append(columns, name)
	}

	return columns, rightOut, nil
}

// buildKeyIndex creates a hash index mapping composite key to ordered
// row positions. Rows with a missing key cell are excluded entirely, so
// missing keys never match anything, including other missing keys.
func buildKeyIndex(t *schema.Table, keyColumns []string) map[string][]int {
	index := make(map[string][]int, len(t.Rows))
	for i, row := range t.Rows {
		k, ok := encodeKey(row, keyColumns)
		if !ok {
			continue
		}
		index[k] = append(index[k], i)
	}
	return index
}

// encodeKey builds the composite hash key for one row.
// Returns ok=false when any key cell is missing.
// Each encoded value is length-prefixed, so values containing
// arbitrary delimiter bytes cannot make two distinct keys collide.
func encodeKey(row data.Row, keyColumns []string) (string, bool) {
	var b strings.Builder
	for _, col := range keyColumns {
		v, exists := row[col]
		if !exists || data.IsMissing(v) {
			return "", false
		}
		enc := encodeValue(v)
		b.WriteString(strconv.Itoa(len(enc)))
		b.WriteByte(':')
		b.WriteString(enc)
	}
	return b.String(), true
}

// encodeValue renders a key cell with a type tag so that the string "1"
// and the number 1 hash to different keys
func encodeValue(v interface{}) string {
	switch x := data.NormalizeNumber(v).(type) {
	case string:
		return "s:" + x
	case int64:
		return "i:" + strconv.FormatInt(x, 10)
	case float64:
		return "f:" + strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return "b:" + strconv.FormatBool(x)
	default:
		return fmt.Sprintf("v:%v", x)
	}
}

// combineRows merges a matched left/right pair into one output row
func combineRows(leftRow, rightRow data.Row, left *schema.Table, rightOut map[string]string) data.Row {
	out := make(data.Row, len(left.Columns)+len(rightOut))
	for _, col := range left.Columns {
		out[col] = leftRow[col]
	}
	for col, name := range rightOut {
		out[name] = rightRow[col]
	}
	return out
}

// leftOnlyRow emits an unmatched left row with missing right columns
func leftOnlyRow(leftRow data.Row, left *schema.Table, rightOut map[string]string) data.Row {
	out := make(data.Row, len(left.Columns)+len(rightOut))
	for _, col := range left.Columns {
		out[col] = leftRow[col]
	}
	for _, name := range rightOut {
		out[name] = nil
	}
	return out
}

// rightOnlyRow emits an unmatched right row with missing left columns.
// Key columns are coalesced from the right row so the key survives in
// the output under the left table's column names.
func rightOnlyRow(rightRow data.Row, left *schema.Table, key []KeyPair, rightOut map[string]string) data.Row {
	out := make(data.Row, len(left.Columns)+len(rightOut))
	for _, col := range left.Columns {
		out[col] = nil
	}
	for _, pair := range key {
		out[pair.Left] = rightRow[pair.Right]
	}
	for col, name := range rightOut {
		out[name] = rightRow[col]
	}
	return out
}
