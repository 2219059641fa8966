package models

import (
	"time"

	"gorm.io/gorm"
)

// CreditBalance holds the per-user credit total. Exactly one row per user:
// the row is created lazily with credits=0 on the first credit-earning event
// and incremented in place afterwards.
type CreditBalance struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Credits   int            `json:"credits" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
