package dates

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/errors"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// ISODate is the canonical output layout for normalized date columns
const ISODate = "2006-01-02"

// DefaultLayouts are tried in order when parsing calendar strings.
// Day-first forms come before month-first forms.
var DefaultLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Parse probes the given layouts (DefaultLayouts when none are given)
// and returns the first successful parse
func Parse(s string, layouts ...string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}
	trimmed := strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date: %s", s)
}

// NormalizeColumn reformats every parseable string cell of the column
// to ISODate. Missing cells stay missing; unparseable non-missing
// cells become missing and are counted in the second return value.
// The operation itself does not fail on bad cells.
func NormalizeColumn(t *schema.Table, column string, layouts ...string) (*schema.Table, int, error) {
	if !t.HasColumn(column) {
		return nil, 0, errors.NewKeyColumnNotFound(t.Name, column)
	}

	failed := 0
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		out := row.Copy()
		cell, exists := out[column]
		if !exists || data.IsMissing(cell) {
			rows[i] = out
			continue
		}
		s, ok := cell.(string)
		if !ok {
			rows[i] = out
			continue
		}
		parsed, err := Parse(s, layouts...)
		if err != nil {
			out[column] = nil
			failed++
		} else {
			out[column] = parsed.Format(ISODate)
		}
		rows[i] = out
	}

	if failed > 0 {
		slog.Warn("Unparseable date cells set to missing",
			slog.String("table", t.Name),
			slog.String("column", column),
			slog.Int("failed", failed),
		)
	}

	return &schema.Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}, failed, nil
}
