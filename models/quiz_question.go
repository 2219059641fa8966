package models

import (
	"time"

	"gorm.io/gorm"
)

type QuizQuestion struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Text      string         `json:"text" gorm:"not null"`
	Category  string         `json:"category"` // saving, investing, budgeting, ...
	Order     int            `json:"order" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Options []QuizOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}
