package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityID_AcceptsNumbersAndStrings(t *testing.T) {
	tests := []struct {
		name string
		json string
		want EntityID
	}{
		{name: "number", json: `7`, want: "7"},
		{name: "string", json: `"7"`, want: "7"},
		{name: "prefixed", json: `"b14"`, want: "b14"},
		{name: "padded string", json: `" b14 "`, want: "b14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id EntityID
			require.NoError(t, json.Unmarshal([]byte(tt.json), &id))
			assert.Equal(t, tt.want, id)
		})
	}

	var id EntityID
	assert.Error(t, json.Unmarshal([]byte(`null`), &id))
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestNumber_Coercion(t *testing.T) {
	var req SIPRequest
	require.NoError(t, json.Unmarshal([]byte(`{"monthlyInvestment":"10000","years":5.9}`), &req))

	assert.Equal(t, 10000.0, req.MonthlyInvestment.Or(0))
	assert.Equal(t, 12.0, req.AnnualReturn.Or(12))
	assert.Equal(t, 5, req.Years.IntOr(5))

	err := json.Unmarshal([]byte(`{"monthlyInvestment":"ten thousand"}`), &req)
	assert.Error(t, err)

	for _, raw := range []string{`"NaN"`, `"Inf"`, `"-Infinity"`} {
		var bad SIPRequest
		assert.Error(t, json.Unmarshal([]byte(`{"years":`+raw+`}`), &bad), raw)
	}
}

func TestNumber_NullMeansAbsent(t *testing.T) {
	var req GoalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"years":null,"targetAmount":null}`), &req))

	assert.Nil(t, req.Years)
	assert.Equal(t, 10, req.Years.IntOr(10))
	assert.Equal(t, 0.0, req.TargetAmount.Or(0))
}

func TestCartItemPatch_Apply(t *testing.T) {
	item := CartItem{
		ID:             "item-1",
		BasketID:       "1",
		InvestmentType: InvestmentTypeSIP,
		Amount:         5000,
		Frequency:      "Monthly",
	}

	amount := Number(7500)
	CartItemPatch{Amount: &amount}.Apply(&item)

	assert.Equal(t, 7500.0, item.Amount)
	assert.Equal(t, InvestmentTypeSIP, item.InvestmentType)
	assert.Equal(t, "Monthly", item.Frequency)

	lumpsum := InvestmentTypeLumpsum
	CartItemPatch{InvestmentType: &lumpsum}.Apply(&item)
	assert.Equal(t, InvestmentTypeLumpsum, item.InvestmentType)
	assert.Equal(t, 7500.0, item.Amount)
}

func TestGoalResult_OmitsDetailWhenCovered(t *testing.T) {
	data, err := json.Marshal(GoalResult{RequiredMonthlySIP: 0, Message: "covered"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"requiredMonthlySIP":0,"message":"covered"}`, string(data))
}
