package performance

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
)

var (
	// ErrFileNotFound is returned when the referenced file does not exist in the data directory
	ErrFileNotFound = errors.New("file not found")

	// ErrDataFormat is returned for unreadable workbooks and malformed rows
	ErrDataFormat = errors.New("invalid performance data")
)

// Columns names the header cells of a NAV sheet
type Columns struct {
	Date      string
	Portfolio string
	Benchmark string
}

// DefaultColumns returns the header names used by the basket NAV workbooks
func DefaultColumns() Columns {
	return Columns{
		Date:      "DATE",
		Portfolio: "Weightage NAV",
		Benchmark: "NIFTY 50",
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01-02-2006",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// Loader reads NAV series from workbooks under a data directory
type Loader struct {
	dataDir string
	columns Columns
}

// NewLoader creates a loader rooted at dataDir
func NewLoader(dataDir string, columns Columns) *Loader {
	if columns.Date == "" || columns.Portfolio == "" || columns.Benchmark == "" {
		columns = DefaultColumns()
	}
	return &Loader{dataDir: dataDir, columns: columns}
}

// Load reads the file named by ref and returns its records sorted ascending by date
func (l *Loader) Load(ctx context.Context, ref string) ([]entities.TimeSeriesRecord, error) {
	path := filepath.Join(l.dataDir, filepath.Clean("/"+ref))

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, ref)
		}
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrDataFormat, ref)
	}

	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	default:
		rows, err = readWorkbook(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := l.parse(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *Loader) parse(rows [][]string) ([]entities.TimeSeriesRecord, error) {
	if len(rows) == 0 {
		return nil, errors.New("sheet is empty")
	}

	dateCol, portCol, benchCol := -1, -1, -1
	for i, cell := range rows[0] {
		switch name := strings.TrimSpace(cell); {
		case strings.EqualFold(name, l.columns.Date):
			dateCol = i
		case strings.EqualFold(name, l.columns.Portfolio):
			portCol = i
		case strings.EqualFold(name, l.columns.Benchmark):
			benchCol = i
		}
	}
	switch {
	case dateCol < 0:
		return nil, fmt.Errorf("missing column %q", l.columns.Date)
	case portCol < 0:
		return nil, fmt.Errorf("missing column %q", l.columns.Portfolio)
	case benchCol < 0:
		return nil, fmt.Errorf("missing column %q", l.columns.Benchmark)
	}

	records := make([]entities.TimeSeriesRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := n + 2

		date, err := parseDate(cell(row, dateCol))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		port, err := parseNumber(cell(row, portCol))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", line, l.columns.Portfolio, err)
		}
		bench, err := parseNumber(cell(row, benchCol))
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", line, l.columns.Benchmark, err)
		}

		records = append(records, entities.TimeSeriesRecord{
			Date:         date,
			PortfolioNAV: port,
			BenchmarkNAV: bench,
		})
	}

	if len(records) == 0 {
		return nil, errors.New("no data rows")
	}
	return records, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseDate accepts Excel serial dates and the common text layouts, truncated to the day
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %q: %w", s, err)
		}
		return day(t), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseNumber(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
