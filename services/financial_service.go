package services

import (
	"fmt"

	"paisabuddy/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinancialService struct {
	db *gorm.DB
}

func NewFinancialService(db *gorm.DB) *FinancialService {
	return &FinancialService{db: db}
}

type CreateFinancialRecordRequest struct {
	Type              string           `json:"type" binding:"required,oneof=fd insurance investment"`
	FDAmount          *decimal.Decimal `json:"fdAmount"`
	FDDurationMonths  *int             `json:"fdDuration"`
	FDInterestRate    *decimal.Decimal `json:"fdInterestRate"`
	InsuranceAmount   *decimal.Decimal `json:"insuranceAmount"`
	InsuranceType     *string          `json:"insuranceType"`
	InvestmentNeeds   *decimal.Decimal `json:"investmentNeeds"`
	InvestmentWants   *decimal.Decimal `json:"investmentWants"`
	InvestmentSavings *decimal.Decimal `json:"investmentSavings"`
	Description       *string          `json:"description"`
}

func (s *FinancialService) GetUserRecords(userID uint) ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load financial records: %w", err)
	}
	return records, nil
}

func (s *FinancialService) CreateRecord(userID uint, req *CreateFinancialRecordRequest) (*models.FinancialRecord, error) {
	record := models.FinancialRecord{
		UserID:            userID,
		Type:              req.Type,
		FDAmount:          req.FDAmount,
		FDDurationMonths:  req.FDDurationMonths,
		FDInterestRate:    req.FDInterestRate,
		InsuranceAmount:   req.InsuranceAmount,
		InsuranceType:     req.InsuranceType,
		InvestmentNeeds:   req.InvestmentNeeds,
		InvestmentWants:   req.InvestmentWants,
		InvestmentSavings: req.InvestmentSavings,
		Description:       req.Description,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to save financial record: %w", err)
	}
	return &record, nil
}
