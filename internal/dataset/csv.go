package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/verte-zerg/drawfreq/internal/logging"
	"github.com/verte-zerg/drawfreq/internal/model"
)

var (
	// ErrNoHeader is returned when the source has no header row.
	ErrNoHeader = errors.New("missing header row")
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing column")
)

const utf8BOM = "\ufeff"

// Options selects the columns to read.
type Options struct {
	WinningColumn  string
	CashBallColumn string
	Stdin          io.Reader
}

// DefaultOptions returns the standard column names.
func DefaultOptions() Options {
	return Options{
		WinningColumn:  "Winning Numbers",
		CashBallColumn: "Cash Ball",
	}
}

// Load opens source and reads every row.
func Load(ctx context.Context, source string, opts Options) ([]model.Row, error) {
	rc, err := Open(ctx, source, opts.Stdin)
	if err != nil {
		return nil, err
	}
	defer logging.SafeCloseWithLogging(rc, logging.FromContext(ctx), "close dataset source")

	rows, err := ReadRows(rc, opts)
	if err != nil {
		return nil, err
	}
	logging.LogOperation(logging.FromContext(ctx), "dataset loaded",
		slog.String("source", source),
		slog.Int("rows", len(rows)))
	return rows, nil
}

// ReadRows parses a CSV table with a header row.
func ReadRows(r io.Reader, opts Options) ([]model.Row, error) {
	def := DefaultOptions()
	if opts.WinningColumn == "" {
		opts.WinningColumn = def.WinningColumn
	}
	if opts.CashBallColumn == "" {
		opts.CashBallColumn = def.CashBallColumn
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	winIdx, err := columnIndex(header, opts.WinningColumn)
	if err != nil {
		return nil, err
	}
	cashIdx, err := columnIndex(header, opts.CashBallColumn)
	if err != nil {
		return nil, err
	}

	var rows []model.Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := reader.FieldPos(0)
		rows = append(rows, model.Row{
			WinningNumbers: field(record, winIdx),
			CashBall:       field(record, cashIdx),
			Line:           line,
		})
	}
	return rows, nil
}

func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q (found: %s)", ErrMissingColumn, name, strings.Join(header, ", "))
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
