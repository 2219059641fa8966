package services

import (
	"fmt"

	"paisabuddy/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardService struct {
	db            *gorm.DB
	creditService *CreditService
}

func NewDashboardService(db *gorm.DB, creditService *CreditService) *DashboardService {
	return &DashboardService{db: db, creditService: creditService}
}

type DashboardSummary struct {
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	Portfolio          PortfolioSummary           `json:"portfolio"`
	Credits            int                        `json:"credits"`
}

type PortfolioSummary struct {
	Cost        decimal.Decimal `json:"cost"`
	Value       decimal.Decimal `json:"value"`
	Gain        decimal.Decimal `json:"gain"`
	GainPercent decimal.Decimal `json:"gain_percent"`
	Holdings    int             `json:"holdings"`
}

// GetSummary aggregates the user's expenses, share portfolio, and credit
// balance for the dashboard.
func (s *DashboardService) GetSummary(userID uint) (*DashboardSummary, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	var shares []models.Share
	if err := s.db.Where("user_id = ?", userID).Find(&shares).Error; err != nil {
		return nil, fmt.Errorf("failed to load shares: %w", err)
	}

	balance, err := s.creditService.GetBalance(userID)
	if err != nil {
		return nil, err
	}

	total, byCategory := SummarizeExpenses(expenses)
	return &DashboardSummary{
		TotalExpenses:      total,
		ExpensesByCategory: byCategory,
		Portfolio:          SummarizePortfolio(shares),
		Credits:            balance.Credits,
	}, nil
}

// SummarizeExpenses totals expenses overall and per category.
func SummarizeExpenses(expenses []models.Expense) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}
	return total, byCategory
}

// SummarizePortfolio computes cost basis, current value, and gain across the
// user's share holdings.
func SummarizePortfolio(shares []models.Share) PortfolioSummary {
	summary := PortfolioSummary{
		Cost:  decimal.Zero,
		Value: decimal.Zero,
	}
	for _, share := range shares {
		qty := decimal.NewFromInt(int64(share.Quantity))
		summary.Cost = summary.Cost.Add(share.PurchasePrice.Mul(qty))
		summary.Value = summary.Value.Add(share.CurrentPrice.Mul(qty))
		summary.Holdings++
	}

	summary.Gain = summary.Value.Sub(summary.Cost)
	if summary.Cost.IsPositive() {
		summary.GainPercent = summary.Gain.Div(summary.Cost).Mul(decimal.NewFromInt(100)).Round(2)
	} else {
		summary.GainPercent = decimal.Zero
	}
	return summary
}
