package schema

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/leengari/wrangle/internal/domain/data"
)

// Table represents an in-memory table: an owned, ordered column list
// and a sequence of rows sharing that column set.
//
// Tables are immutable by convention. Every operation in this module
// takes tables as inputs and produces a new table; nothing mutates
// Rows or Columns after construction.
type Table struct {
	Name    string
	Columns []string
	Rows    []data.Row
}

// NewTable validates and constructs a table.
// Column names must be unique, and rows may only reference known columns.
func NewTable(name string, columns []string, rows []data.Row) (*Table, error) {
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if col == "" {
			return nil, fmt.Errorf("table '%s': empty column name", name)
		}
		if seen[col] {
			return nil, fmt.Errorf("table '%s': duplicate column '%s'", name, col)
		}
		seen[col] = true
	}

	for i, row := range rows {
		for col := range row {
			if !seen[col] {
				return nil, fmt.Errorf("table '%s': row %d references unknown column '%s'", name, i, col)
			}
		}
	}

	return &Table{
		Name:    name,
		Columns: append([]string(nil), columns...),
		Rows:    rows,
	}, nil
}

// HasColumn reports whether the table schema contains the named column
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Copy creates a deep copy of the table
func (t *Table) Copy() *Table {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return &Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}
}

// SelectAll returns a copy of all rows of the table
func (t *Table) SelectAll() []data.Row {
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = row.Copy()
	}
	return rows
}

// Select returns copies of the rows that match the given predicate
func (t *Table) Select(predicate func(data.Row) bool) []data.Row {
	var result []data.Row
	for _, row := range t.Rows {
		if predicate(row) {
			result = append(result, row.Copy())
		}
	}
	return result
}

// ToJSON serializes the rows as a JSON array of objects
func (t *Table) ToJSON() (json.RawMessage, error) {
	rows := make([]map[string]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		obj := make(map[string]interface{}, len(t.Columns))
		for _, col := range t.Columns {
			obj[col] = row[col]
		}
		rows[i] = obj
	}
	return json.Marshal(rows)
}
