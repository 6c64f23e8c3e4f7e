package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EntityID is the canonical string form of a catalog identifier.
// Catalog sources mix numeric and string ids, so JSON numbers and strings are both accepted.
type EntityID string

// UnmarshalJSON accepts 7, "7" and "b14"
func (id *EntityID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("identifier must not be null")
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EntityID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*id = EntityID(n.String())
	return nil
}

// String returns the canonical form
func (id EntityID) String() string { return string(id) }

// RiskLevel represents basket and fund risk levels
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "Low"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelHigh   RiskLevel = "High"
)

// Basket represents a curated investment basket
type Basket struct {
	ID                   EntityID   `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Color                string     `json:"color,omitempty"`
	Category             string     `json:"category,omitempty"`
	RiskLevel            RiskLevel  `json:"riskLevel"`
	RiskPercentage       float64    `json:"riskPercentage"`
	MinInvestment        float64    `json:"minInvestment"`
	MinReturn            float64    `json:"minReturn,omitempty"`
	MaxReturn            float64    `json:"maxReturn,omitempty"`
	CAGR1Y               float64    `json:"cagr1Y"`
	CAGR3Y               float64    `json:"cagr3Y"`
	CAGR5Y               float64    `json:"cagr5Y"`
	SharpeRatio          float64    `json:"sharpeRatio"`
	TimeHorizon          string     `json:"timeHorizon"`
	ExperienceLevel      string     `json:"experienceLevel"`
	AgeRange             string     `json:"ageRange,omitempty"`
	Goals                []string   `json:"goals"`
	Funds                []EntityID `json:"funds"`
	Philosophy           string     `json:"philosophy,omitempty"`
	Rationale            string     `json:"rationale,omitempty"`
	SuitableFor          string     `json:"suitableFor,omitempty"`
	RebalancingFrequency string     `json:"rebalancingFrequency,omitempty"`
	// ExcelFile is the spreadsheet holding the basket's NAV history, relative to the data directory
	ExcelFile string `json:"excelFile,omitempty"`
}

// Holding is a top holding of a fund
type Holding struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// SectorAllocation is a sector weight of a fund
type SectorAllocation struct {
	Sector     string  `json:"sector"`
	Percentage float64 `json:"percentage"`
}

// Fund represents an underlying mutual fund
type Fund struct {
	ID                EntityID           `json:"id"`
	Name              string             `json:"name"`
	AMC               string             `json:"amc"`
	FundHouse         string             `json:"fundHouse,omitempty"`
	Category          string             `json:"category"`
	SubCategory       string             `json:"subCategory,omitempty"`
	NAV               float64            `json:"nav"`
	Returns1Y         float64            `json:"returns1Y"`
	Returns3Y         float64            `json:"returns3Y"`
	Returns5Y         float64            `json:"returns5Y"`
	AUM               string             `json:"aum"`
	ExpenseRatio      float64            `json:"expenseRatio"`
	ExitLoad          float64            `json:"exitLoad"`
	MinInvestment     float64            `json:"minInvestment"`
	Risk              RiskLevel          `json:"risk"`
	Rating            int                `json:"rating"`
	SharpeRatio       float64            `json:"sharpeRatio"`
	StandardDeviation float64            `json:"standardDeviation,omitempty"`
	Beta              float64            `json:"beta,omitempty"`
	TopHoldings       []Holding          `json:"topHoldings,omitempty"`
	SectorAllocation  []SectorAllocation `json:"sectorAllocation,omitempty"`
}

// BasketPerformance is the precomputed monthly comparison shown on basket cards
type BasketPerformance struct {
	Basket  []float64 `json:"basket"`
	Nifty50 []float64 `json:"nifty50"`
	Labels  []string  `json:"labels"`
}

// SearchResult holds independently filtered baskets and funds
type SearchResult struct {
	Baskets []Basket `json:"baskets"`
	Funds   []Fund   `json:"funds"`
}
