package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/alphanifty/alphanifty_service/internal/domain/entities"
	"github.com/alphanifty/alphanifty_service/internal/domain/repositories"
)

func TestStaticCatalog_GetBasket(t *testing.T) {
	c := Default()
	ctx := context.Background()

	basket, err := c.GetBasket(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Blue-chip Elite", basket.Name)

	basket, err = c.GetBasket(ctx, " b14 ")
	require.NoError(t, err)
	assert.Equal(t, "b14.xlsx", basket.ExcelFile)

	_, err = c.GetBasket(ctx, "999")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestStaticCatalog_ReturnsCopies(t *testing.T) {
	c := Default()
	ctx := context.Background()

	baskets, err := c.ListBaskets(ctx)
	require.NoError(t, err)
	baskets[0].Name = "mutated"

	again, err := c.GetBasket(ctx, baskets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue-chip Elite", again.Name)
}

func TestStaticCatalog_CanonicalizesIDs(t *testing.T) {
	c := NewStaticCatalog(Snapshot{
		Baskets: []entities.Basket{{ID: " 7 ", Name: "Seven"}, {ID: "7", Name: "Duplicate"}},
		Funds:   []entities.Fund{{ID: "42", Name: "Answer Fund"}},
	})
	ctx := context.Background()

	basket, err := c.GetBasket(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "Seven", basket.Name)

	all, _ := c.ListBaskets(ctx)
	assert.Len(t, all, 1)

	fund, err := c.GetFund(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "Answer Fund", fund.Name)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `{
		"baskets": [{"id": 11, "name": "Numeric Id Basket", "description": "d"}],
		"funds": [{"id": "f1", "name": "Fund One", "amc": "Some AMC"}],
		"performance": {"basket-11": {"basket": [100, 101], "nifty50": [100, 99], "labels": ["Jan", "Feb"]}}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := Load(path, zaptest.NewLogger(t))
	require.NoError(t, err)

	basket, err := c.GetBasket(context.Background(), "11")
	require.NoError(t, err)
	assert.Equal(t, "Numeric Id Basket", basket.Name)

	perf, err := c.GetBasketPerformance(context.Background(), "basket-11")
	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb"}, perf.Labels)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), zaptest.NewLogger(t))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = Load(bad, zaptest.NewLogger(t))
	assert.Error(t, err)

	c, err := Load("", zaptest.NewLogger(t))
	require.NoError(t, err)
	funds, _ := c.ListFunds(context.Background())
	assert.NotEmpty(t, funds)
}
