package services

import (
	"fmt"

	"paisabuddy/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService {
	return &CreditService{db: db}
}

type AddCreditsRequest struct {
	CreditsToAdd int `json:"creditsToAdd" binding:"required,min=1"`
}

// GetBalance returns the user's credit row, creating it with credits=0 on
// first use.
func (s *CreditService) GetBalance(userID uint) (*models.CreditBalance, error) {
	balance := models.CreditBalance{UserID: userID}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&balance).Error; err != nil {
		return nil, fmt.Errorf("failed to create credit balance: %w", err)
	}

	var existing models.CreditBalance
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load credit balance: %w", err)
	}

	return &existing, nil
}

// AddCredits increments the user's balance and returns the updated row.
func (s *CreditService) AddCredits(userID uint, amount int) (*models.CreditBalance, error) {
	balance, err := creditBalanceAdd(s.db, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to add credits: %w", err)
	}
	return balance, nil
}
