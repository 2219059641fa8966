package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// AdviceClient talks to the external financial-advice service. The service's
// internals are opaque; this client only owns the request/response contract.
type AdviceClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAdviceClient(baseURL string, timeout time.Duration) *AdviceClient {
	return &AdviceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type AdviceRequest struct {
	Category           string             `json:"category"` // buy, loan, tax, big-goal, festival, reduce-expense, invest, side-income
	Message            string             `json:"message"`
	MonthlyIncomeNPR   float64            `json:"monthly_income_npr"`
	MonthlyExpensesNPR map[string]float64 `json:"monthly_expenses_npr"`
	CurrentSavingsNPR  float64            `json:"current_savings_npr"`
	Location           string             `json:"location"`
	Mode               string             `json:"mode"` // simple or indepth
	IsPremium          bool               `json:"is_premium"`
	UserID             string             `json:"user_id,omitempty"`
}

type Alternative struct {
	Name         string `json:"name"`
	PriceNPR     int    `json:"price_npr"`
	MonthsNeeded int    `json:"months_needed"`
}

type SimulationEntry struct {
	Month                  int      `json:"month"`
	TotalValue             float64  `json:"total_value"`
	FDValue                float64  `json:"fd_value"`
	SharesValue            float64  `json:"shares_value"`
	MutualFundsValue       float64  `json:"mutual_funds_value"`
	GoldValue              float64  `json:"gold_value"`
	CompanyInvestmentValue *float64 `json:"company_investment_value,omitempty"`
	StartupValue           *float64 `json:"startup_value,omitempty"`
}

type AdviceResponse struct {
	ResponseNP                 string            `json:"response_np"`
	ResponseEN                 string            `json:"response_en"`
	MonthsNeeded               int               `json:"months_needed"`
	TargetAmountNPR            int               `json:"target_amount_npr"`
	RealisticMonthlySavingsNPR int               `json:"realistic_monthly_savings_npr"`
	ProgressPercent            int               `json:"progress_percent"`
	Tips                       []string          `json:"tips"`
	Alternatives               []Alternative     `json:"alternatives"`
	Simulation                 []SimulationEntry `json:"simulation,omitempty"`
	IsPremium                  bool              `json:"is_premium"`
}

type FeedbackRequest struct {
	UserID   string             `json:"user_id"`
	Month    string             `json:"month"` // YYYY-MM
	Expenses map[string]float64 `json:"expenses"`
}

type RightWrongItem struct {
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Solution    *string `json:"solution,omitempty"`
}

type FeedbackResponse struct {
	Month         string           `json:"month"`
	TotalExpenses float64          `json:"total_expenses"`
	Rights        []RightWrongItem `json:"rights"`
	Wrongs        []RightWrongItem `json:"wrongs"`
	Suggestions   []string         `json:"suggestions"`
	IsPremium     bool             `json:"is_premium"`
}

// GetAdvice posts an advice request. The mode field is normalized to a value
// the service accepts before sending.
func (c *AdviceClient) GetAdvice(ctx context.Context, req *AdviceRequest) (*AdviceResponse, error) {
	if req.Mode != "simple" && req.Mode != "indepth" {
		req.Mode = "simple"
	}
	if req.Location == "" {
		req.Location = "kathmandu"
	}

	var resp AdviceResponse
	if err := c.post(ctx, "/api/v1/advice", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AdviceClient) GetFeedback(ctx context.Context, req *FeedbackRequest) (*FeedbackResponse, error) {
	var resp FeedbackResponse
	if err := c.post(ctx, "/api/v1/feedback", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AdviceClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("advice service unreachable: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return fmt.Errorf("advice service returned %d: %s", httpResp.StatusCode, errorDetail(httpResp))
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode advice service response: %w", err)
	}
	return nil
}

func errorDetail(resp *http.Response) string {
	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return resp.Status
}

// FormatAdviceText renders an advice response as the chat-friendly text the
// UI shows when it has no structured renderer.
func FormatAdviceText(data *AdviceResponse) string {
	var b strings.Builder

	b.WriteString(data.ResponseEN)
	b.WriteString("\n\nSummary:\n")
	fmt.Fprintf(&b, "- Months Needed: %d\n", data.MonthsNeeded)
	fmt.Fprintf(&b, "- Target Amount: NPR %d\n", data.TargetAmountNPR)
	fmt.Fprintf(&b, "- Monthly Savings: NPR %d\n", data.RealisticMonthlySavingsNPR)
	fmt.Fprintf(&b, "- Progress: %d%%\n", data.ProgressPercent)

	if len(data.Tips) > 0 {
		b.WriteString("\nTips:\n")
		for i, tip := range data.Tips {
			fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
		}
	}

	if len(data.Alternatives) > 0 {
		b.WriteString("\nAlternatives:\n")
		for _, alt := range data.Alternatives {
			fmt.Fprintf(&b, "- %s: NPR %d (%d months)\n", alt.Name, alt.PriceNPR, alt.MonthsNeeded)
		}
	}

	return b.String()
}
