package services

import (
	"testing"
	"time"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		answers []SubmittedAnswer
		want    int
	}{
		{"empty", nil, 0},
		{"none correct", []SubmittedAnswer{
			{QuestionID: 1, UserAnswer: "a"},
			{QuestionID: 2, UserAnswer: "b"},
		}, 0},
		{"some correct", []SubmittedAnswer{
			{QuestionID: 1, UserAnswer: "a", IsCorrect: true},
			{QuestionID: 2, UserAnswer: "b"},
			{QuestionID: 3, UserAnswer: "c", IsCorrect: true},
		}, 2},
		{"all correct", []SubmittedAnswer{
			{QuestionID: 1, IsCorrect: true},
			{QuestionID: 2, IsCorrect: true},
			{QuestionID: 3, IsCorrect: true},
			{QuestionID: 4, IsCorrect: true},
			{QuestionID: 5, IsCorrect: true},
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(tt.answers); got != tt.want {
				t.Errorf("ComputeScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCreditsForScore(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{0, 5},
		{1, 7},
		{2, 9},
		{3, 11},
		{4, 13},
		{5, 15},
		{6, 15}, // capped
		{7, 15}, // capped for longer quizzes too
	}

	for _, tt := range tests {
		if got := CreditsForScore(tt.score); got != tt.want {
			t.Errorf("CreditsForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestDayRange(t *testing.T) {
	loc := time.FixedZone("NPT", 5*3600+45*60)
	now := time.Date(2025, 3, 14, 15, 30, 45, 0, loc)

	start, end := dayRange(now)

	wantStart := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
	wantEnd := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)

	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", end, wantEnd)
	}

	// A moment just before midnight stays inside its own day.
	lateNow := time.Date(2025, 3, 14, 23, 59, 59, 0, loc)
	lateStart, lateEnd := dayRange(lateNow)
	if !lateStart.Equal(wantStart) || !lateEnd.Equal(wantEnd) {
		t.Errorf("dayRange near midnight = [%v, %v), want [%v, %v)", lateStart, lateEnd, wantStart, wantEnd)
	}

	// Midnight itself starts a new day.
	midnight := wantEnd
	midStart, _ := dayRange(midnight)
	if !midStart.Equal(wantEnd) {
		t.Errorf("dayRange at midnight start = %v, want %v", midStart, wantEnd)
	}
}
