package services

import (
	"fmt"
	"time"

	"paisabuddy/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ShareService struct {
	db *gorm.DB
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db}
}

type CreateShareRequest struct {
	StockSymbol   string          `json:"stock_symbol" binding:"required"`
	CompanyName   string          `json:"company_name"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	PurchasePrice decimal.Decimal `json:"purchase_price" binding:"required"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	PurchaseDate  string          `json:"purchase_date"` // YYYY-MM-DD
	Description   string          `json:"description"`
}

func (s *ShareService) GetUserShares(userID uint) ([]models.Share, error) {
	var shares []models.Share
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&shares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shares: %w", err)
	}
	return shares, nil
}

func (s *ShareService) CreateShare(userID uint, req *CreateShareRequest) (*models.Share, error) {
	share := models.Share{
		UserID:        userID,
		StockSymbol:   req.StockSymbol,
		CompanyName:   req.CompanyName,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		CurrentPrice:  req.CurrentPrice,
		Description:   req.Description,
	}

	if req.PurchaseDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.PurchaseDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid purchase_date %q: expected YYYY-MM-DD", req.PurchaseDate)
		}
		share.PurchaseDate = parsed
	}

	if share.CurrentPrice.IsZero() {
		share.CurrentPrice = share.PurchasePrice
	}

	if err := s.db.Create(&share).Error; err != nil {
		return nil, fmt.Errorf("failed to save share: %w", err)
	}

	return &share, nil
}
