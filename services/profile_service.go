package services

import (
	"errors"
	"fmt"

	"paisabuddy/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

type SaveProfileRequest struct {
	Name          string          `json:"name" binding:"required"`
	Age           int             `json:"age"`
	Location      string          `json:"location"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	RiskTolerance string          `json:"risk_tolerance"`
	Goals         string          `json:"goals"`
}

// GetProfile returns the user's onboarding profile, or nil if onboarding has
// not happened yet.
func (s *ProfileService) GetProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile upserts the onboarding profile and marks it completed.
func (s *ProfileService) SaveProfile(userID uint, req *SaveProfileRequest) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:           userID,
		Name:             req.Name,
		Age:              req.Age,
		Location:         req.Location,
		MonthlyIncome:    req.MonthlyIncome,
		RiskTolerance:    req.RiskTolerance,
		Goals:            req.Goals,
		ProfileCompleted: true,
	}
	if profile.Location == "" {
		profile.Location = "kathmandu"
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "location", "monthly_income",
			"risk_tolerance", "goals", "profile_completed",
		}),
	}).Create(&profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	var saved models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &saved, nil
}
