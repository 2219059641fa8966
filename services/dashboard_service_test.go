package services

import (
	"testing"

	"paisabuddy/models"

	"github.com/shopspring/decimal"
)

func TestSummarizeExpenses(t *testing.T) {
	expenses := []models.Expense{
		{Category: "food", Amount: decimal.NewFromFloat(1500.50)},
		{Category: "rent", Amount: decimal.NewFromInt(15000)},
		{Category: "food", Amount: decimal.NewFromFloat(499.50)},
	}

	total, byCategory := SummarizeExpenses(expenses)

	if !total.Equal(decimal.NewFromInt(17000)) {
		t.Errorf("total = %s, want 17000", total)
	}
	if !byCategory["food"].Equal(decimal.NewFromInt(2000)) {
		t.Errorf("food = %s, want 2000", byCategory["food"])
	}
	if !byCategory["rent"].Equal(decimal.NewFromInt(15000)) {
		t.Errorf("rent = %s, want 15000", byCategory["rent"])
	}
}

func TestSummarizeExpensesEmpty(t *testing.T) {
	total, byCategory := SummarizeExpenses(nil)
	if !total.IsZero() {
		t.Errorf("total = %s, want 0", total)
	}
	if len(byCategory) != 0 {
		t.Errorf("byCategory = %v, want empty", byCategory)
	}
}

func TestSummarizePortfolio(t *testing.T) {
	shares := []models.Share{
		{
			StockSymbol:   "NABIL",
			Quantity:      10,
			PurchasePrice: decimal.NewFromInt(500),
			CurrentPrice:  decimal.NewFromInt(600),
		},
		{
			StockSymbol:   "NTC",
			Quantity:      20,
			PurchasePrice: decimal.NewFromInt(1000),
			CurrentPrice:  decimal.NewFromInt(900),
		},
	}

	summary := SummarizePortfolio(shares)

	if !summary.Cost.Equal(decimal.NewFromInt(25000)) {
		t.Errorf("cost = %s, want 25000", summary.Cost)
	}
	if !summary.Value.Equal(decimal.NewFromInt(24000)) {
		t.Errorf("value = %s, want 24000", summary.Value)
	}
	if !summary.Gain.Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("gain = %s, want -1000", summary.Gain)
	}
	if !summary.GainPercent.Equal(decimal.NewFromInt(-4)) {
		t.Errorf("gain percent = %s, want -4", summary.GainPercent)
	}
	if summary.Holdings != 2 {
		t.Errorf("holdings = %d, want 2", summary.Holdings)
	}
}

func TestSummarizePortfolioNoHoldings(t *testing.T) {
	summary := SummarizePortfolio(nil)
	if !summary.Gain.IsZero() || !summary.GainPercent.IsZero() {
		t.Errorf("empty portfolio should have zero gain, got %+v", summary)
	}
}
