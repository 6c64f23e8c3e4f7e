package performance

import (
	"sort"
	"time"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
)

// DefaultPeriod is used when the request carries no period
const DefaultPeriod = "5Y"

// Window is a lookback window and the sampling stride used for it
type Window struct {
	Name   string
	Years  int
	Stride int
}

var windows = map[string]Window{
	"1Y":  {Name: "1Y", Years: 1, Stride: 7},
	"3Y":  {Name: "3Y", Years: 3, Stride: 21},
	"5Y":  {Name: "5Y", Years: 5, Stride: 30},
	"10Y": {Name: "10Y", Years: 10, Stride: 60},
}

// ParsePeriod resolves a period token. Tokens are matched exactly; anything else,
// including lower-case or padded forms, falls back to the 5Y window.
func ParsePeriod(token string) Window {
	if w, ok := windows[token]; ok {
		return w
	}
	return windows[DefaultPeriod]
}

// SubtractYears moves t back n calendar years, clamping to the last day of the month
// so that Feb 29 maps to Feb 28 in non-leap years.
func SubtractYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	y -= n
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FilterByPeriod returns the suffix of an ascending series dated on or after the window start,
// together with the window bounds. The series must not be empty.
func FilterByPeriod(records []entities.TimeSeriesRecord, w Window) (filtered []entities.TimeSeriesRecord, start, end time.Time) {
	end = records[len(records)-1].Date
	start = SubtractYears(end, w.Years)

	i := sort.Search(len(records), func(i int) bool {
		return !records[i].Date.Before(start)
	})
	return records[i:], start, end
}
