package loader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// LoadCSV reads a CSV file with a header row into a table.
// Every cell loads as a string; cleaning and type normalization happen
// downstream. Short records pad trailing columns with missing values.
func LoadCSV(path, name string) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, pad below

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file %s has no header row", path)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	rows := make([]data.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(data.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = nil
			}
		}
		rows = append(rows, row)
	}

	table, err := schema.NewTable(name, header, rows)
	if err != nil {
		return nil, err
	}

	slog.Info("Loaded CSV table",
		slog.String("table", name),
		slog.String("path", path),
		slog.Int("rows", len(rows)),
		slog.Int("columns", len(header)),
	)

	return table, nil
}
