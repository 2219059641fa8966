package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is one completed submission of the daily financial-literacy
// quiz. Rows are immutable after creation.
type QuizAttempt struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description"`
	Completed     bool           `json:"completed" gorm:"not null;default:false"`
	Score         int            `json:"score" gorm:"not null;default:0"`
	CreditsEarned int            `json:"credits_earned" gorm:"not null;default:0"`
	CompletedAt   *time.Time     `json:"completed_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Answers []QuizAnswer `json:"answers,omitempty" gorm:"foreignKey:QuizID"`
}
