package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialRecord stores one manually entered financial instrument. Only the
// fields matching Type are set; the rest stay NULL.
type FinancialRecord struct {
	ID                uint             `json:"id" gorm:"primaryKey"`
	UserID            uint             `json:"user_id" gorm:"index;not null"`
	Type              string           `json:"type" gorm:"not null"` // fd, insurance, investment
	FDAmount          *decimal.Decimal `json:"fd_amount" gorm:"type:numeric(14,2)"`
	FDDurationMonths  *int             `json:"fd_duration_months"`
	FDInterestRate    *decimal.Decimal `json:"fd_interest_rate" gorm:"type:numeric(6,3)"`
	InsuranceAmount   *decimal.Decimal `json:"insurance_amount" gorm:"type:numeric(14,2)"`
	InsuranceType     *string          `json:"insurance_type"`
	InvestmentNeeds   *decimal.Decimal `json:"investment_needs" gorm:"type:numeric(14,2)"`
	InvestmentWants   *decimal.Decimal `json:"investment_wants" gorm:"type:numeric(14,2)"`
	InvestmentSavings *decimal.Decimal `json:"investment_savings" gorm:"type:numeric(14,2)"`
	Description       *string          `json:"description"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"-" gorm:"index"`
}
