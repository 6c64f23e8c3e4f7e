package entities

import "time"

// TimeSeriesRecord is one row of a basket NAV spreadsheet
type TimeSeriesRecord struct {
	Date         time.Time
	PortfolioNAV float64
	BenchmarkNAV float64
}

// NormalizedRecord carries base-100 indices next to the raw values
type NormalizedRecord struct {
	TimeSeriesRecord
	PortfolioIndex float64
	BenchmarkIndex float64
}

// PerformancePoint is the wire form of a normalized record, rounded to two places
type PerformancePoint struct {
	Date           string  `json:"date"`
	Label          string  `json:"label"`
	PortfolioIndex float64 `json:"portfolioValue"`
	BenchmarkIndex float64 `json:"niftyValue"`
	PortfolioNAV   float64 `json:"portfolioNAV"`
	BenchmarkNAV   float64 `json:"niftyNAV"`
}

// ExcelPerformance is the response of the excel performance endpoint
type ExcelPerformance struct {
	Performance []PerformancePoint `json:"performance"`
	Period      string             `json:"period"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
}
