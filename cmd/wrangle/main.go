package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/leengari/wrangle/internal/domain/data"
	"github.com/leengari/wrangle/internal/domain/schema"
	"github.com/leengari/wrangle/internal/logging"
	"github.com/leengari/wrangle/internal/query/operations/clean"
	"github.com/leengari/wrangle/internal/query/operations/dates"
	"github.com/leengari/wrangle/internal/query/operations/join"
	"github.com/leengari/wrangle/internal/storage/loader"
)

var (
	leftFlag    = flag.String("left", "", "left CSV file (omit both files to run the built-in sample)")
	rightFlag   = flag.String("right", "", "right CSV file")
	keyFlag     = flag.String("key", "", "comma-separated join key column(s)")
	dateFlag    = flag.String("date", "", "left-table column to normalize as a date")
	formatFlag  = flag.String("format", "table", "output format: table, json")
	verboseFlag = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Cleans two tabular datasets and combines them with relational joins.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -left members.csv -right instruments.csv -key name -date joined\n", os.Args[0])
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verboseFlag {
		level = slog.LevelDebug
	}
	logger, closeFn := logging.SetupLogger(level)
	defer closeFn()
	slog.SetDefault(logger.With(slog.String("run_id", uuid.NewString())))

	if err := run(); err != nil {
		slog.Error("run failed", "error", err)
		closeFn()
		os.Exit(1)
	}
}

func run() error {
	left, right, key, dateColumn, err := inputs()
	if err != nil {
		return err
	}

	// Standardize strings before joining so keys compare cleanly
	opts := clean.Options{
		TrimSpace:          true,
		CollapseWhitespace: true,
		Case:               clean.CaseTitle,
	}
	left, _, err = clean.Apply(left, opts)
	if err != nil {
		return err
	}
	right, _, err = clean.Apply(right, opts)
	if err != nil {
		return err
	}

	if dateColumn != "" {
		left, _, err = dates.NormalizeColumn(left, dateColumn)
		if err != nil {
			return err
		}
	}

	for _, typ := range []join.Type{join.TypeLeft, join.TypeInner, join.TypeAnti} {
		result, err := join.Execute(left, right, key, typ, nil)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n", typ)
		if err := render(result, *formatFlag); err != nil {
			return err
		}
	}
	return nil
}

// inputs resolves the two tables and the join key, falling back to the
// built-in sample datasets when no files are given
func inputs() (left, right *schema.Table, key []join.KeyPair, dateColumn string, err error) {
	if *leftFlag == "" && *rightFlag == "" {
		left, right = sampleMembers(), sampleInstruments()
		return left, right, join.On("name"), "joined", nil
	}
	if *leftFlag == "" || *rightFlag == "" {
		return nil, nil, nil, "", fmt.Errorf("both -left and -right are required")
	}
	if *keyFlag == "" {
		return nil, nil, nil, "", fmt.Errorf("-key is required with CSV inputs")
	}

	left, err = loader.LoadCSV(*leftFlag, "left")
	if err != nil {
		return nil, nil, nil, "", err
	}
	right, err = loader.LoadCSV(*rightFlag, "right")
	if err != nil {
		return nil, nil, nil, "", err
	}

	var columns []string
	for _, col := range strings.Split(*keyFlag, ",") {
		columns = append(columns, strings.TrimSpace(col))
	}
	return left, right, join.On(columns...), *dateFlag, nil
}

func render(t *schema.Table, format string) error {
	switch format {
	case "table":
		w := tablewriter.NewWriter(os.Stdout)
		w.SetHeader(t.Columns)
		for _, row := range t.Rows {
			cells := make([]string, len(t.Columns))
			for i, col := range t.Columns {
				cells[i] = data.FormatValue(row[col])
			}
			w.Append(cells)
		}
		w.Render()
		return nil
	case "json":
		raw, err := t.ToJSON()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return err
		}
		fmt.Println(buf.String())
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// sampleMembers is deliberately messy: padded names, inconsistent case,
// mixed date formats, one unparseable date
func sampleMembers() *schema.Table {
	return &schema.Table{
		Name:    "members",
		Columns: []string{"name", "band", "joined"},
		Rows: []data.Row{
			{"name": "  Mick Jagger ", "band": "the rolling stones", "joined": "12/07/1962"},
			{"name": "keith RICHARDS", "band": "The Rolling  Stones", "joined": "1962-07-12"},
			{"name": "John Lennon", "band": "The Beatles", "joined": "6 July 1957"},
			{"name": "Ringo   Starr", "band": "The Beatles", "joined": "18 August 1962"},
			{"name": "Sid Vicious", "band": "sex pistols", "joined": "sometime in 1977"},
		},
	}
}

func sampleInstruments() *schema.Table {
	return &schema.Table{
		Name:    "instruments",
		Columns: []string{"name", "plays"},
		Rows: []data.Row{
			{"name": "Mick Jagger", "plays": "vocals"},
			{"name": "Keith Richards", "plays": "guitar"},
			{"name": "John Lennon", "plays": "guitar"},
			{"name": "Stu Sutcliffe", "plays": "bass"},
		},
	}
}
