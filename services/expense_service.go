package services

import (
	"fmt"
	"time"

	"paisabuddy/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date"` // YYYY-MM-DD, defaults to today
	Description string          `json:"description"`
}

func (s *ExpenseService) GetUserExpenses(userID uint) ([]models.Expense, error) {
	var expenses []models.Expense
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	return expenses, nil
}

func (s *ExpenseService) CreateExpense(userID uint, req *CreateExpenseRequest) (*models.Expense, error) {
	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", req.Date)
		}
		date = parsed
	}

	expense := models.Expense{
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	return &expense, nil
}

// MonthlyExpensesByCategory sums the user's expenses per category for one
// month ("YYYY-MM"), in the shape the advice service expects.
func (s *ExpenseService) MonthlyExpensesByCategory(userID uint, month string) (map[string]float64, error) {
	start, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	end := start.AddDate(0, 1, 0)

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	result := make(map[string]float64, len(totals))
	for category, total := range totals {
		result[category], _ = total.Float64()
	}
	return result, nil
}
