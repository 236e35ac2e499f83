package clean

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/errors"
	"github.com/leengari/wrangle/internal/domain/schema"
)

// CaseMode controls case standardization
type CaseMode string

const (
	CaseNone  CaseMode = "none"
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseTitle CaseMode = "title"
)

// Options selects which transforms to apply and to which columns.
// An empty Columns list applies to every column; non-string cells are
// always left untouched.
type Options struct {
	TrimSpace          bool     // trim leading/trailing whitespace
	CollapseWhitespace bool     // collapse runs of internal whitespace to one space
	Case               CaseMode // none|upper|lower|title
	StripPattern       string   // regex whose matches are deleted from each cell
	Columns            []string // columns to apply; empty == all columns
}

// Apply runs the configured transforms over a table and returns the
// cleaned table plus the number of modified cells. Inputs are never
// mutated.
func Apply(t *schema.Table, opts Options) (*schema.Table, int, error) {
	columns, err := resolveColumns(t, opts.Columns)
	if err != nil {
		return nil, 0, err
	}

	var strip *regexp.Regexp
	if opts.StripPattern != "" {
		strip, err = regexp.Compile(opts.StripPattern)
		if err != nil {
			return nil, 0, fmt.Errorf("strip pattern: %w", err)
		}
	}

	modified := 0
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		out := row.Copy()
		for _, col := range columns {
			cell, ok := out[col].(string)
			if !ok {
				continue
			}
			cleaned := transform(cell, opts, strip)
			if cleaned != cell {
				out[col] = cleaned
				modified++
			}
		}
		rows[i] = out
	}

	slog.Info("String cleaning completed",
		slog.String("table", t.Name),
		slog.Int("rows", len(rows)),
		slog.Int("modified_cells", modified),
	)

	return &schema.Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}, modified, nil
}

// RelabelRule maps a regex pattern to a replacement category label.
// Rules are tried in order; the first match wins.
type RelabelRule struct {
	Pattern string
	Label   string
}

// Relabel rewrites string cells of one column into categorical labels.
// Cells matching no rule take the fallback label; an empty fallback
// keeps the original value. Returns the new table and the number of
// relabeled cells.
func Relabel(t *schema.Table, column string, rules []RelabelRule, fallback string) (*schema.Table, int, error) {
	if !t.HasColumn(column) {
		return nil, 0, errors.NewKeyColumnNotFound(t.Name, column)
	}

	compiled := make([]*regexp.Regexp, len(rules))
	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, 0, fmt.Errorf("relabel rule %d: %w", i, err)
		}
		compiled[i] = re
	}

	modified := 0
	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		out := row.Copy()
		if cell, ok := out[column].(string); ok {
			label, matched := cell, false
			for j, re := range compiled {
				if re.MatchString(cell) {
					label, matched = rules[j].Label, true
					break
				}
			}
			if !matched && fallback != "" {
				label = fallback
			}
			if label != cell {
				out[column] = label
				modified++
			}
		}
		rows[i] = out
	}

	return &schema.Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}, modified, nil
}

// Extract adds a new column holding the first capture group of the
// pattern applied to the source column (the whole match when the
// pattern has no group). Cells that do not match, and non-string
// cells, produce a missing value.
func Extract(t *schema.Table, column, pattern, target string) (*schema.Table, error) {
	if !t.HasColumn(column) {
		return nil, errors.NewKeyColumnNotFound(t.Name, column)
	}
	if t.HasColumn(target) {
		return nil, fmt.Errorf("table '%s': column '%s' already exists", t.Name, target)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("extract pattern: %w", err)
	}

	rows := make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		out := row.Copy()
		out[target] = nil
		if cell, ok := out[column].(string); ok {
			if m := re.FindStringSubmatch(cell); m != nil {
				if len(m) > 1 {
					out[target] = m[1]
				} else {
					out[target] = m[0]
				}
			}
		}
		rows[i] = out
	}

	return &schema.Table{
		Name:    t.Name,
		Columns: append(append([]string(nil), t.Columns...), target),
		Rows:    rows,
	}, nil
}

// resolveColumns returns the target columns, defaulting to all of them
func resolveColumns(t *schema.Table, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return t.Columns, nil
	}
	for _, col := range requested {
		if !t.HasColumn(col) {
			return nil, errors.NewKeyColumnNotFound(t.Name, col)
		}
	}
	return requested, nil
}

// transform applies the configured transforms to a single cell
func transform(cell string, opts Options, strip *regexp.Regexp) string {
	if strip != nil {
		cell = strip.ReplaceAllString(cell, "")
	}
	if opts.TrimSpace {
		cell = strings.TrimSpace(cell)
	}
	if opts.CollapseWhitespace {
		cell = collapseWhitespace(cell)
	}
	switch opts.Case {
	case CaseUpper:
		cell = strings.ToUpper(cell)
	case CaseLower:
		cell = strings.ToLower(cell)
	case CaseTitle:
		cell = titleCase(cell)
	}
	return cell
}

// collapseWhitespace converts runs of whitespace to a single space
func collapseWhitespace(s string) string {
	var b strings.Builder
	lastWasSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return b.String()
}

// titleCase upcases the first rune of each word and lowercases the rest
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		first := unicode.ToUpper(runes[0])
		if len(runes) == 1 {
			words[i] = string(first)
		} else {
			words[i] = string(first) + strings.ToLower(string(runes[1:]))
		}
	}
	return strings.Join(words, " ")
}
