package services

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Defaults used when the user has no profile or expense history yet; the
// advice service rejects empty expense maps.
var fallbackExpenses = map[string]float64{
	"food":      10000,
	"rent":      15000,
	"transport": 5000,
}

const fallbackMonthlyIncome = 50000

type ChatService struct {
	advice   *AdviceClient
	profiles *ProfileService
	expenses *ExpenseService
}

func NewChatService(advice *AdviceClient, profiles *ProfileService, expenses *ExpenseService) *ChatService {
	return &ChatService{
		advice:   advice,
		profiles: profiles,
		expenses: expenses,
	}
}

type ChatRequest struct {
	Prompt             string             `json:"prompt" binding:"required"`
	Category           string             `json:"category"`
	MonthlyIncomeNPR   float64            `json:"monthly_income_npr"`
	MonthlyExpensesNPR map[string]float64 `json:"monthly_expenses_npr"`
	CurrentSavingsNPR  float64            `json:"current_savings_npr"`
	Location           string             `json:"location"`
	Mode               string             `json:"mode"`
}

type ChatReply struct {
	Response string          `json:"response"`
	Data     *AdviceResponse `json:"data,omitempty"`
}

// Chat forwards a prompt to the advice service, filling in whatever
// financial context the caller left out from the user's stored profile and
// current-month expenses.
func (s *ChatService) Chat(ctx context.Context, userID uint, req *ChatRequest) (*ChatReply, error) {
	adviceReq := &AdviceRequest{
		Category:           req.Category,
		Message:            req.Prompt,
		MonthlyIncomeNPR:   req.MonthlyIncomeNPR,
		MonthlyExpensesNPR: req.MonthlyExpensesNPR,
		CurrentSavingsNPR:  req.CurrentSavingsNPR,
		Location:           req.Location,
		Mode:               req.Mode,
		IsPremium:          true,
		UserID:             strconv.FormatUint(uint64(userID), 10),
	}
	if adviceReq.Category == "" {
		adviceReq.Category = "buy"
	}

	if err := s.fillFromStoredData(userID, adviceReq); err != nil {
		return nil, err
	}

	data, err := s.advice.GetAdvice(ctx, adviceReq)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	return &ChatReply{
		Response: FormatAdviceText(data),
		Data:     data,
	}, nil
}

// MonthlyFeedback forwards the user's expense breakdown for one month to the
// feedback endpoint. When the caller omits the breakdown it is computed from
// the stored expense rows.
func (s *ChatService) MonthlyFeedback(ctx context.Context, userID uint, month string, expenses map[string]float64) (*FeedbackResponse, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	if len(expenses) == 0 {
		stored, err := s.expenses.MonthlyExpensesByCategory(userID, month)
		if err != nil {
			return nil, err
		}
		expenses = stored
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("no expenses recorded for %s", month)
	}

	return s.advice.GetFeedback(ctx, &FeedbackRequest{
		UserID:   strconv.FormatUint(uint64(userID), 10),
		Month:    month,
		Expenses: expenses,
	})
}

func (s *ChatService) fillFromStoredData(userID uint, req *AdviceRequest) error {
	if req.MonthlyIncomeNPR <= 0 || req.Location == "" {
		profile, err := s.profiles.GetProfile(userID)
		if err != nil {
			return err
		}
		if profile != nil {
			if req.MonthlyIncomeNPR <= 0 {
				req.MonthlyIncomeNPR, _ = profile.MonthlyIncome.Float64()
			}
			if req.Location == "" {
				req.Location = profile.Location
			}
		}
	}
	if req.MonthlyIncomeNPR <= 0 {
		req.MonthlyIncomeNPR = fallbackMonthlyIncome
	}

	if len(req.MonthlyExpensesNPR) == 0 {
		stored, err := s.expenses.MonthlyExpensesByCategory(userID, time.Now().Format("2006-01"))
		if err != nil {
			return err
		}
		req.MonthlyExpensesNPR = stored
	}
	if len(req.MonthlyExpensesNPR) == 0 {
		req.MonthlyExpensesNPR = fallbackExpenses
	}

	return nil
}
