package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGetAdvice(t *testing.T) {
	var received AdviceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/advice" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		json.NewEncoder(w).Encode(AdviceResponse{
			ResponseEN:                 "Save more each month.",
			MonthsNeeded:               8,
			TargetAmountNPR:            120000,
			RealisticMonthlySavingsNPR: 15000,
			ProgressPercent:            25,
			Tips:                       []string{"Track every expense"},
			Alternatives: []Alternative{
				{Name: "Used model", PriceNPR: 80000, MonthsNeeded: 5},
			},
		})
	}))
	defer server.Close()

	client := NewAdviceClient(server.URL, 5*time.Second)
	resp, err := client.GetAdvice(context.Background(), &AdviceRequest{
		Category:           "buy",
		Message:            "Can I afford a laptop?",
		MonthlyIncomeNPR:   50000,
		MonthlyExpensesNPR: map[string]float64{"food": 12000},
		Mode:               "nonsense", // should be normalized
	})
	if err != nil {
		t.Fatalf("GetAdvice() error = %v", err)
	}

	if received.Mode != "simple" {
		t.Errorf("mode sent = %q, want normalized to simple", received.Mode)
	}
	if received.Location != "kathmandu" {
		t.Errorf("location sent = %q, want default kathmandu", received.Location)
	}
	if resp.MonthsNeeded != 8 {
		t.Errorf("MonthsNeeded = %d, want 8", resp.MonthsNeeded)
	}
	if len(resp.Alternatives) != 1 || resp.Alternatives[0].PriceNPR != 80000 {
		t.Errorf("unexpected alternatives %+v", resp.Alternatives)
	}
}

func TestGetAdviceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "monthly_expenses_npr cannot be empty"})
	}))
	defer server.Close()

	client := NewAdviceClient(server.URL, 5*time.Second)
	_, err := client.GetAdvice(context.Background(), &AdviceRequest{
		Category:           "buy",
		Message:            "hi",
		MonthlyIncomeNPR:   1,
		MonthlyExpensesNPR: map[string]float64{},
		Mode:               "simple",
	})
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
	if !strings.Contains(err.Error(), "422") || !strings.Contains(err.Error(), "monthly_expenses_npr cannot be empty") {
		t.Errorf("error = %v, want status and detail included", err)
	}
}

func TestGetFeedback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/feedback" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(FeedbackResponse{
			Month:         "2025-03",
			TotalExpenses: 42000,
			Suggestions:   []string{"Cook at home more often"},
		})
	}))
	defer server.Close()

	client := NewAdviceClient(server.URL, 5*time.Second)
	resp, err := client.GetFeedback(context.Background(), &FeedbackRequest{
		UserID:   "7",
		Month:    "2025-03",
		Expenses: map[string]float64{"food": 22000, "transport": 20000},
	})
	if err != nil {
		t.Fatalf("GetFeedback() error = %v", err)
	}
	if resp.Month != "2025-03" || resp.TotalExpenses != 42000 {
		t.Errorf("unexpected feedback response %+v", resp)
	}
}

func TestFormatAdviceText(t *testing.T) {
	data := &AdviceResponse{
		ResponseEN:                 "You can reach this goal.",
		MonthsNeeded:               6,
		TargetAmountNPR:            90000,
		RealisticMonthlySavingsNPR: 15000,
		ProgressPercent:            10,
		Tips:                       []string{"Skip impulse buys", "Automate savings"},
		Alternatives: []Alternative{
			{Name: "Refurbished", PriceNPR: 60000, MonthsNeeded: 4},
		},
	}

	text := FormatAdviceText(data)

	for _, want := range []string{
		"You can reach this goal.",
		"- Months Needed: 6",
		"- Target Amount: NPR 90000",
		"- Monthly Savings: NPR 15000",
		"- Progress: 10%",
		"1. Skip impulse buys",
		"2. Automate savings",
		"- Refurbished: NPR 60000 (4 months)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("formatted text missing %q:\n%s", want, text)
		}
	}
}
