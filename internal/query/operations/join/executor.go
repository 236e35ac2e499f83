package join

import (
	"fmt"
	"log/slog"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// Execute performs a join between two tables with the specified variant.
// This is the unified API for all join types (INNER, LEFT, RIGHT, FULL, ANTI).
//
// The result is a new table; inputs are never mutated. Because the
// result is an ordinary table, chained joins are just repeated calls
// with the previous result as the new left input.
//
// Output order is deterministic: inner/left/full preserve left-table
// row order and emit each left row's matches in right-table order; a
// full join appends unmatched right rows afterwards in right-table
// order; a right join mirrors this (right-table order outermost); an
// anti join preserves left-table order of the retained rows.
func Execute(left, right *schema.Table, key []KeyPair, typ Type, opts *Options) (*schema.Table, error) {
	if err := validateKey(left, right, key); err != nil {
		return nil, err
	}

	slog.Debug("Starting join",
		slog.String("join_type", typ.String()),
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.Int("key_columns", len(key)),
	)

	// ANTI keeps only left columns, so collision resolution does not apply
	if typ == TypeAnti {
		return executeAnti(left, right, key)
	}

	columns, rightOut, err := resultColumns(left, right, key, opts)
	if err != nil {
		return nil, err
	}

	var rows []data.Row
	switch typ {
	case TypeInner:
		rows = innerRows(left, right, key, rightOut)
	case TypeLeft:
		rows = leftRows(left, right, key, rightOut)
	case TypeRight:
		rows = rightRows(left, right, key, rightOut)
	case TypeFull:
		rows = fullRows(left, right, key, rightOut)
	default:
		return nil, fmt.Errorf("unknown join type: %v", typ)
	}

	result := &schema.Table{
		Name:    left.Name + "_" + right.Name,
		Columns: columns,
		Rows:    rows,
	}

	slog.Info("Join completed",
		slog.String("join_type", typ.String()),
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.Int("result_rows", len(result.Rows)),
	)

	return result, nil
}

// innerRows performs the INNER JOIN probe.
// Build a hash index on the right table, probe with left rows in order;
// a left row matching several right rows expands to one output row per
// matching pair.
func innerRows(left, right *schema.Table, key []KeyPair, rightOut map[string]string) []data.Row {
	index := buildKeyIndex(right, rightKeyColumns(key))
	leftKey := leftKeyColumns(key)

	rows := make([]data.Row, 0)
	for _, leftRow := range left.Rows {
		k, ok := encodeKey(leftRow, leftKey)
		if !ok {
			continue // missing key never matches
		}
		for _, pos := range index[k] {
			rows = append(rows, combineRows(leftRow, right.Rows[pos], left, rightOut))
		}
	}
	return rows
}

// leftRows performs the LEFT OUTER JOIN probe.
// Unmatched left rows are emitted in place so left-table order is preserved.
func leftRows(left, right *schema.Table, key []KeyPair, rightOut map[string]string) []data.Row {
	index := buildKeyIndex(right, rightKeyColumns(key))
	leftKey := leftKeyColumns(key)

	rows := make([]data.Row, 0, len(left.Rows))
	unmatched := 0
	for _, leftRow := range left.Rows {
		k, ok := encodeKey(leftRow, leftKey)
		positions := index[k]
		if !ok || len(positions) == 0 {
			rows = append(rows, leftOnlyRow(leftRow, left, rightOut))
			unmatched++
			continue
		}
		for _, pos := range positions {
			rows = append(rows, combineRows(leftRow, right.Rows[pos], left, rightOut))
		}
	}

	slog.Debug("LEFT JOIN probe finished",
		slog.Int("unmatched_left", unmatched),
	)
	return rows
}

// rightRows performs the RIGHT OUTER JOIN probe.
// The index is built on the left table and right rows drive the probe,
// so right-table order is preserved and matches arrive in left-table order.
func rightRows(left, right *schema.Table, key []KeyPair, rightOut map[string]string) []data.Row {
	index := buildKeyIndex(left, leftKeyColumns(key))
	rightKey := rightKeyColumns(key)

	rows := make([]data.Row, 0, len(right.Rows))
	unmatched := 0
	for _, rightRow := range right.Rows {
		k, ok := encodeKey(rightRow, rightKey)
		positions := index[k]
		if !ok || len(positions) == 0 {
			rows = append(rows, rightOnlyRow(rightRow, left, key, rightOut))
			unmatched++
			continue
		}
		for _, pos := range positions {
			rows = append(rows, combineRows(left.Rows[pos], rightRow, left, rightOut))
		}
	}

	slog.Debug("RIGHT JOIN probe finished",
		slog.Int("unmatched_right", unmatched),
	)
	return rows
}

// fullRows performs the FULL OUTER JOIN probe.
// Phase 1 is the left-driven probe (covering matched pairs and
// unmatched left rows); phase 2 appends unmatched right rows in
// right-table order.
func fullRows(left, right *schema.Table, key []KeyPair, rightOut map[string]string) []data.Row {
	index := buildKeyIndex(right, rightKeyColumns(key))
	leftKey := leftKeyColumns(key)

	rows := make([]data.Row, 0, len(left.Rows)+len(right.Rows))
	matchedRight := make(map[int]bool)

	// Phase 1: left-driven probe
	for _, leftRow := range left.Rows {
		k, ok := encodeKey(leftRow, leftKey)
		positions := index[k]
		if !ok || len(positions) == 0 {
			rows = append(rows, leftOnlyRow(leftRow, left, rightOut))
			continue
		}
		for _, pos := range positions {
			matchedRight[pos] = true
			rows = append(rows, combineRows(leftRow, right.Rows[pos], left, rightOut))
		}
	}

	// Phase 2: append unmatched right rows
	for pos, rightRow := range right.Rows {
		if !matchedRight[pos] {
			rows = append(rows, rightOnlyRow(rightRow, left, key, rightOut))
		}
	}

	slog.Debug("FULL OUTER JOIN probe finished",
		slog.Int("unmatched_right", len(right.Rows)-len(matchedRight)),
	)
	return rows
}

// executeAnti performs the ANTI JOIN: left rows with no key match in
// the right table. The result retains only the left table's columns,
// in left-table row order. Left rows with a missing key cell can never
// match, so they are retained.
func executeAnti(left, right *schema.Table, key []KeyPair) (*schema.Table, error) {
	index := buildKeyIndex(right, rightKeyColumns(key))
	leftKey := leftKeyColumns(key)

	rows := make([]data.Row, 0)
	matched := 0
	for _, leftRow := range left.Rows {
		if k, ok := encodeKey(leftRow, leftKey); ok {
			if _, found := index[k]; found {
				matched++
				continue
			}
		}
		rows = append(rows, leftRow.Copy())
	}

	result := &schema.Table{
		Name:    left.Name,
		Columns: append([]string(nil), left.Columns...),
		Rows:    rows,
	}

	slog.Info("Join completed",
		slog.String("join_type", TypeAnti.String()),
		slog.String("left_table", left.Name),
		slog.String("right_table", right.Name),
		slog.Int("result_rows", len(rows)),
		slog.Int("matched_left", matched),
	)

	return result, nil
}
