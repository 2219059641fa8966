package services

import (
	"encoding/json"
	"strings"
	"testing"

	"paisabuddy/models"
)

func TestSanitizeQuestions(t *testing.T) {
	questions := []models.QuizQuestion{
		{
			ID:       1,
			Text:     "What does FD stand for?",
			Category: "saving",
			Options: []models.QuizOption{
				{ID: 10, Text: "Fixed Deposit", IsCorrect: true, Order: 1},
				{ID: 11, Text: "Full Dividend", Order: 2},
			},
		},
		{
			ID:       2,
			Text:     "Which is a need, not a want?",
			Category: "budgeting",
			Options: []models.QuizOption{
				{ID: 20, Text: "Rent", IsCorrect: true, Order: 1},
				{ID: 21, Text: "Streaming subscription", Order: 2},
			},
		},
	}

	views := SanitizeQuestions(questions)

	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].ID != 1 || views[0].Text != "What does FD stand for?" {
		t.Errorf("unexpected first view %+v", views[0])
	}
	if len(views[0].Options) != 2 || views[0].Options[0].ID != 10 || views[0].Options[1].ID != 11 {
		t.Errorf("option order not preserved: %+v", views[0].Options)
	}

	// The serialized view must not leak which option is correct.
	data, err := json.Marshal(views)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "is_correct") || strings.Contains(string(data), "isCorrect") {
		t.Errorf("serialized questions leak correctness flag: %s", data)
	}
}

func TestSanitizeQuestionsEmpty(t *testing.T) {
	if views := SanitizeQuestions(nil); len(views) != 0 {
		t.Errorf("got %d views for nil input, want 0", len(views))
	}
}
