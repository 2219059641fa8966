package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Share struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	UserID        uint            `json:"user_id" gorm:"index;not null"`
	StockSymbol   string          `json:"stock_symbol" gorm:"not null"`
	CompanyName   string          `json:"company_name"`
	Quantity      int             `json:"quantity" gorm:"not null"`
	PurchasePrice decimal.Decimal `json:"purchase_price" gorm:"type:numeric(14,2);not null"`
	CurrentPrice  decimal.Decimal `json:"current_price" gorm:"type:numeric(14,2)"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}
