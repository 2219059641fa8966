package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAnswer is an audit record of a single submitted answer. Inserts are
// best-effort: a failed answer row never rolls back its attempt.
type QuizAnswer struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	QuizID     uint           `json:"quiz_id" gorm:"index;not null"`
	QuestionID uint           `json:"question_id" gorm:"not null"`
	UserAnswer string         `json:"user_answer"`
	IsCorrect  bool           `json:"is_correct" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Attempt QuizAttempt `json:"attempt,omitempty" gorm:"foreignKey:QuizID"`
}
