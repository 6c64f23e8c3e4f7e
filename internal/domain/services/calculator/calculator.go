package calculator

import (
	"errors"
	"math"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/pkg/money"
)

// GoalSufficientMessage is returned when existing savings already reach the target
const GoalSufficientMessage = "Your existing investment is sufficient to meet the goal"

// ErrNoHorizon is returned when a goal needs contributions but the horizon is zero months
var ErrNoHorizon = errors.New("years must be greater than zero to reach the goal")

// ErrOutOfRange is returned when the inputs push a projection past float64 range
var ErrOutOfRange = errors.New("result is out of range")

func finite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrOutOfRange
		}
	}
	return nil
}

// SIP projects a monthly contribution of monthly at annualReturn percent over years.
// Contributions are made at the start of each month.
func SIP(monthly, annualReturn float64, years int) (entities.ProjectionResult, error) {
	r := annualReturn / 12 / 100
	n := float64(years * 12)

	futureValue := monthly * n
	if r > 0 {
		futureValue = monthly * ((math.Pow(1+r, n) - 1) / r) * (1 + r)
	}
	invested := monthly * n
	if err := finite(futureValue, invested, futureValue-invested); err != nil {
		return entities.ProjectionResult{}, err
	}

	return entities.ProjectionResult{
		InvestedAmount:   money.Round2(invested),
		EstimatedReturns: money.Round2(futureValue - invested),
		TotalValue:       money.Round2(futureValue),
	}, nil
}

// Lumpsum compounds principal annually at annualReturn percent over years
func Lumpsum(principal, annualReturn float64, years int) (entities.ProjectionResult, error) {
	futureValue := principal * math.Pow(1+annualReturn/100, float64(years))
	if err := finite(futureValue, futureValue-principal); err != nil {
		return entities.ProjectionResult{}, err
	}

	return entities.ProjectionResult{
		InvestedAmount:   money.Round2(principal),
		EstimatedReturns: money.Round2(futureValue - principal),
		TotalValue:       money.Round2(futureValue),
	}, nil
}

// Goal finds the monthly SIP that, together with the grown existing investment, reaches target
func Goal(target float64, years int, annualReturn, existing float64) (entities.GoalResult, error) {
	futureExisting := existing * math.Pow(1+annualReturn/100, float64(years))
	if err := finite(futureExisting); err != nil {
		return entities.GoalResult{}, err
	}
	remaining := target - futureExisting

	if remaining <= 0 {
		return entities.GoalResult{
			RequiredMonthlySIP: 0,
			Message:            GoalSufficientMessage,
		}, nil
	}

	r := annualReturn / 12 / 100
	n := float64(years * 12)
	if n == 0 {
		return entities.GoalResult{}, ErrNoHorizon
	}

	required := remaining / n
	if r > 0 {
		required = remaining * r / ((math.Pow(1+r, n) - 1) * (1 + r))
	}

	if err := finite(required); err != nil {
		return entities.GoalResult{}, err
	}

	futureExisting = money.Round2(futureExisting)
	remaining = money.Round2(remaining)

	return entities.GoalResult{
		RequiredMonthlySIP:    money.Round2(required),
		TargetAmount:          &target,
		Years:                 &years,
		ExistingInvestment:    &existing,
		FutureValueOfExisting: &futureExisting,
		AdditionalRequired:    &remaining,
	}, nil
}
