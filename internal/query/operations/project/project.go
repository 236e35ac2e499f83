package project

import (
	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/errors"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// Columns returns a new table restricted to the named columns, in the
// given order. Row order is preserved. An unknown column fails with
// KeyColumnNotFoundError.
func Columns(t *schema.Table, columns ...string) (*schema.Table, error) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return nil, errors.NewKeyColumnNotFound(t.Name, col)
		}
	}

	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		projected := make(data.Row, len(columns))
		for _, col := range columns {
			projected[col] = row[col]
		}
		rows[i] = projected
	}

	return &schema.Table{
		Name:    t.Name,
		Columns: append([]string(nil), columns...),
		Rows:    rows,
	}, nil
}
