package performance

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// writeWorkbook saves rows to dir/name with the first row as header
func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoader_LoadWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "basket.xlsx", [][]interface{}{
		{" date ", "weightage nav", "Nifty 50"},
		{date(2024, time.March, 1), 110.5, 22000.0},
		{date(2024, time.January, 1), 100.0, 21000.0},
		{},
		{"2024-02-01", "105.25", 21500.0},
	})

	loader := NewLoader(dir, DefaultColumns())
	records, err := loader.Load(context.Background(), "basket.xlsx")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, date(2024, time.January, 1), records[0].Date)
	assert.Equal(t, date(2024, time.February, 1), records[1].Date)
	assert.Equal(t, date(2024, time.March, 1), records[2].Date)
	assert.Equal(t, 105.25, records[1].PortfolioNAV)
	assert.Equal(t, 22000.0, records[2].BenchmarkNAV)
}

func TestLoader_LoadCSV(t *testing.T) {
	dir := t.TempDir()
	content := "DATE,Weightage NAV,NIFTY 50\n2023-06-02,101,18500\n2023-06-01,100,18400\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "basket.csv"), []byte(content), 0o600))

	records, err := NewLoader(dir, Columns{}).Load(context.Background(), "basket.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, date(2023, time.June, 1), records[0].Date)
	assert.Equal(t, 18500.0, records[1].BenchmarkNAV)
}

func TestLoader_StableSortKeepsDuplicateDateOrder(t *testing.T) {
	dir := t.TempDir()
	content := "DATE,Weightage NAV,NIFTY 50\n2023-06-02,1,1\n2023-06-01,2,2\n2023-06-01,3,3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.csv"), []byte(content), 0o600))

	records, err := NewLoader(dir, DefaultColumns()).Load(context.Background(), "dup.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 2.0, records[0].PortfolioNAV)
	assert.Equal(t, 3.0, records[1].PortfolioNAV)
	assert.Equal(t, 1.0, records[2].PortfolioNAV)
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, dir, "missing-column.xlsx", [][]interface{}{
		{"DATE", "Weightage NAV"},
		{"2024-01-01", 100.0},
	})
	writeWorkbook(t, dir, "bad-number.xlsx", [][]interface{}{
		{"DATE", "Weightage NAV", "NIFTY 50"},
		{"2024-01-01", "abc", 100.0},
	})
	writeWorkbook(t, dir, "bad-date.xlsx", [][]interface{}{
		{"DATE", "Weightage NAV", "NIFTY 50"},
		{"someday", 100.0, 100.0},
	})
	writeWorkbook(t, dir, "header-only.xlsx", [][]interface{}{
		{"DATE", "Weightage NAV", "NIFTY 50"},
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.xlsx"), []byte("not a zip"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nan.csv"),
		[]byte("DATE,Weightage NAV,NIFTY 50\n2024-01-01,100,NaN\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inf.csv"),
		[]byte("DATE,Weightage NAV,NIFTY 50\n2024-01-01,100,18000\n2024-01-02,Inf,18100\n"), 0o600))

	loader := NewLoader(dir, DefaultColumns())

	tests := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{"missing file", "nope.xlsx", ErrFileNotFound},
		{"missing column", "missing-column.xlsx", ErrDataFormat},
		{"bad number", "bad-number.xlsx", ErrDataFormat},
		{"bad date", "bad-date.xlsx", ErrDataFormat},
		{"no data rows", "header-only.xlsx", ErrDataFormat},
		{"corrupt workbook", "corrupt.xlsx", ErrDataFormat},
		{"NaN value", "nan.csv", ErrDataFormat},
		{"infinite value", "inf.csv", ErrDataFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(context.Background(), tt.ref)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_StaysInsideDataDir(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	require.NoError(t, os.Mkdir(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "outside.csv"), []byte("DATE,Weightage NAV,NIFTY 50\n2024-01-01,1,1\n"), 0o600))

	_, err := NewLoader(dataDir, DefaultColumns()).Load(context.Background(), "../outside.csv")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"45292", date(2024, time.January, 1)},
		{"2024-01-01", date(2024, time.January, 1)},
		{"2024-01-01 00:00:00", date(2024, time.January, 1)},
		{"08-15-2023", date(2023, time.August, 15)},
		{"02-01-2006", date(2006, time.February, 1)},
		{"08/15/2023", date(2023, time.August, 15)},
		{"15-Aug-2023", date(2023, time.August, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseDate("")
	assert.Error(t, err)
}
