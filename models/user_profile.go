package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserProfile struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	UserID           uint            `json:"user_id" gorm:"uniqueIndex;not null"`
	Name             string          `json:"name" gorm:"not null"`
	Age              int             `json:"age"`
	Location         string          `json:"location" gorm:"default:'kathmandu'"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income" gorm:"type:numeric(14,2);default:0"`
	RiskTolerance    string          `json:"risk_tolerance"` // low, medium, high
	Goals            string          `json:"goals"`
	ProfileCompleted bool            `json:"profile_completed" gorm:"not null;default:false"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `json:"-" gorm:"index"`
}
