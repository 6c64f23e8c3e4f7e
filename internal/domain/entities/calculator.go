package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a float that also accepts numeric strings, mirroring lenient form posts
type Number float64

// UnmarshalJSON accepts 12, 12.5 and "12.5"
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("could not convert %q to a number", s)
		}
		*n = Number(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("value must be a number: %w", err)
	}
	*n = Number(v)
	return nil
}

// Or returns the value of n, or def when n is absent
func (n *Number) Or(def float64) float64 {
	if n == nil {
		return def
	}
	return float64(*n)
}

// IntOr returns the value of n truncated toward zero, or def when n is absent
func (n *Number) IntOr(def int) int {
	if n == nil {
		return def
	}
	return int(*n)
}

// SIPRequest is the body of POST /calculators/sip
type SIPRequest struct {
	MonthlyInvestment *Number `json:"monthlyInvestment"`
	AnnualReturn      *Number `json:"annualReturn"`
	Years             *Number `json:"years"`
}

// LumpsumRequest is the body of POST /calculators/lumpsum
type LumpsumRequest struct {
	Principal    *Number `json:"principal"`
	AnnualReturn *Number `json:"annualReturn"`
	Years        *Number `json:"years"`
}

// GoalRequest is the body of POST /calculators/goal
type GoalRequest struct {
	TargetAmount       *Number `json:"targetAmount"`
	Years              *Number `json:"years"`
	AnnualReturn       *Number `json:"annualReturn"`
	ExistingInvestment *Number `json:"existingInvestment"`
}

// ProjectionResult is returned by the SIP and lumpsum calculators
type ProjectionResult struct {
	InvestedAmount   float64 `json:"investedAmount"`
	EstimatedReturns float64 `json:"estimatedReturns"`
	TotalValue       float64 `json:"totalValue"`
}

// GoalResult is returned by the goal calculator.
// When existing savings already cover the target only RequiredMonthlySIP and Message are set.
type GoalResult struct {
	RequiredMonthlySIP    float64  `json:"requiredMonthlySIP"`
	Message               string   `json:"message,omitempty"`
	TargetAmount          *float64 `json:"targetAmount,omitempty"`
	Years                 *int     `json:"years,omitempty"`
	ExistingInvestment    *float64 `json:"existingInvestment,omitempty"`
	FutureValueOfExisting *float64 `json:"futureValueOfExisting,omitempty"`
	AdditionalRequired    *float64 `json:"additionalRequired,omitempty"`
}
