package health

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DataDirChecker verifies that the directory holding basket spreadsheets is readable.
// A missing directory only degrades the service: catalog and calculators keep working.
type DataDirChecker struct {
	dir string
}

// NewDataDirChecker creates a checker for dir
func NewDataDirChecker(dir string) *DataDirChecker {
	return &DataDirChecker{dir: dir}
}

// Check stats the directory and counts its entries
func (c *DataDirChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()

	info, err := os.Stat(c.dir)
	if err != nil {
		return NewDegradedResult(c.Name(), fmt.Sprintf("data directory unavailable: %v", err)).
			WithDuration(time.Since(start))
	}
	if !info.IsDir() {
		return NewDegradedResult(c.Name(), fmt.Sprintf("%s is not a directory", c.dir)).
			WithDuration(time.Since(start))
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return NewDegradedResult(c.Name(), fmt.Sprintf("data directory unreadable: %v", err)).
			WithDuration(time.Since(start))
	}

	return NewHealthyResult(c.Name(), "readable").
		WithDuration(time.Since(start)).
		WithMetadata("path", c.dir).
		WithMetadata("files", len(entries))
}

// Name returns the checker name
func (c *DataDirChecker) Name() string {
	return "performance_data"
}
