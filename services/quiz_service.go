package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"paisabuddy/config"
	"paisabuddy/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	dailyQuizTitle       = "Daily Financial Literacy Quiz"
	dailyQuizDescription = "Test your financial knowledge"

	// Credit formula: participation floor + per-correct reward, capped.
	participationCredits = 5
	creditsPerCorrect    = 2
	maxCreditsPerQuiz    = 15

	submissionLockTTL = 10 * time.Second
)

var (
	// ErrQuizAlreadyCompleted is the business-rule rejection for a second
	// submission on the same calendar day.
	ErrQuizAlreadyCompleted = errors.New("you have already completed today's quiz")

	// ErrSubmissionInProgress is returned when a concurrent submission for
	// the same user holds the day lock.
	ErrSubmissionInProgress = errors.New("a quiz submission is already in progress")
)

type QuizService struct {
	db         *gorm.DB
	redis      *redis.Client
	ledgerMode config.LedgerMode
}

func NewQuizService(db *gorm.DB, redisClient *redis.Client, ledgerMode config.LedgerMode) *QuizService {
	return &QuizService{
		db:         db,
		redis:      redisClient,
		ledgerMode: ledgerMode,
	}
}

type SubmittedAnswer struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	UserAnswer string `json:"userAnswer"`
	IsCorrect  bool   `json:"isCorrect"`
}

type SubmitQuizRequest struct {
	QuizAnswers []SubmittedAnswer `json:"quizAnswers" binding:"required,min=1"`
}

type Eligibility struct {
	CanTakeQuiz bool
	Reason      string
}

// SubmitResult reports the outcome of one submission. FailedAnswers lists the
// question IDs whose audit rows could not be written; those are best-effort
// and never abort the attempt or the balance update.
type SubmitResult struct {
	QuizID        uint
	Score         int
	CreditsEarned int
	NewBalance    int
	FailedAnswers []uint
}

// ComputeScore counts the answers marked correct.
func ComputeScore(answers []SubmittedAnswer) int {
	score := 0
	for _, answer := range answers {
		if answer.IsCorrect {
			score++
		}
	}
	return score
}

// CreditsForScore maps a score to the credits earned: score*2+5, capped at 15.
func CreditsForScore(score int) int {
	credits := score*creditsPerCorrect + participationCredits
	if credits > maxCreditsPerQuiz {
		credits = maxCreditsPerQuiz
	}
	return credits
}

// dayRange returns the [midnight, next midnight) window containing now, in
// the server's local time zone.
func dayRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// CheckEligibility reports whether the user may take today's quiz. A store
// failure propagates as an error and is never treated as eligible or not.
func (s *QuizService) CheckEligibility(userID uint) (*Eligibility, error) {
	start, end := dayRange(time.Now())

	var count int64
	err := s.db.Model(&models.QuizAttempt{}).
		Where("user_id = ? AND completed = ? AND completed_at >= ? AND completed_at < ?",
			userID, true, start, end).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check quiz eligibility: %w", err)
	}

	if count > 0 {
		return &Eligibility{CanTakeQuiz: false, Reason: ErrQuizAlreadyCompleted.Error()}, nil
	}

	return &Eligibility{CanTakeQuiz: true}, nil
}

// SubmitQuiz scores the answer set, persists the attempt, and credits the
// user's balance. The attempt and the balance update commit together in
// strict ledger mode, sequentially in best-effort mode (where a balance
// failure leaves the attempt already committed). Answer audit rows are
// written last and are best-effort either way.
func (s *QuizService) SubmitQuiz(userID uint, req *SubmitQuizRequest) (*SubmitResult, error) {
	release := s.acquireDayLock(userID)
	if release == nil {
		return nil, ErrSubmissionInProgress
	}
	defer release()

	score := ComputeScore(req.QuizAnswers)
	creditsEarned := CreditsForScore(score)
	now := time.Now()

	attempt := models.QuizAttempt{
		UserID:        userID,
		Title:         dailyQuizTitle,
		Description:   dailyQuizDescription,
		Completed:     true,
		Score:         score,
		CreditsEarned: creditsEarned,
		CompletedAt:   &now,
	}

	var newBalance int
	var err error
	if s.ledgerMode == config.LedgerStrict {
		newBalance, err = s.commitStrict(&attempt, userID, creditsEarned)
	} else {
		newBalance, err = s.commitBestEffort(&attempt, userID, creditsEarned)
	}
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{
		QuizID:        attempt.ID,
		Score:         score,
		CreditsEarned: creditsEarned,
		NewBalance:    newBalance,
	}

	// Audit rows, in submitted order. Each insert stands alone; failures are
	// reported in the result, never rolled back.
	for _, answer := range req.QuizAnswers {
		row := models.QuizAnswer{
			QuizID:     attempt.ID,
			QuestionID: answer.QuestionID,
			UserAnswer: answer.UserAnswer,
			IsCorrect:  answer.IsCorrect,
		}
		if err := s.db.Create(&row).Error; err != nil {
			log.Printf("Failed to store answer for quiz %d question %d: %v", attempt.ID, answer.QuestionID, err)
			result.FailedAnswers = append(result.FailedAnswers, answer.QuestionID)
		}
	}

	return result, nil
}

// commitBestEffort matches the observed behavior: the attempt commits first,
// then the balance. A balance failure is surfaced but the attempt stays.
func (s *QuizService) commitBestEffort(attempt *models.QuizAttempt, userID uint, creditsEarned int) (int, error) {
	if err := s.db.Create(attempt).Error; err != nil {
		return 0, fmt.Errorf("failed to save quiz attempt: %w", err)
	}

	balance, err := creditBalanceAdd(s.db, userID, creditsEarned)
	if err != nil {
		// Known gap: the attempt above is already committed. Surfaced, not
		// compensated.
		return 0, fmt.Errorf("failed to update credit balance: %w", err)
	}

	return balance.Credits, nil
}

func (s *QuizService) commitStrict(attempt *models.QuizAttempt, userID uint, creditsEarned int) (int, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(attempt).Error; err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to save quiz attempt: %w", err)
	}

	balance, err := creditBalanceAdd(tx, userID, creditsEarned)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to update credit balance: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return 0, fmt.Errorf("failed to commit quiz submission: %w", err)
	}

	return balance.Credits, nil
}

// creditBalanceAdd is the get-or-create-then-increment for the per-user
// credit row: an upsert with default 0 followed by an atomic in-place
// increment, so concurrent submissions cannot lose updates.
func creditBalanceAdd(db *gorm.DB, userID uint, amount int) (*models.CreditBalance, error) {
	balance := models.CreditBalance{UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&balance).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.CreditBalance{}).
		Where("user_id = ?", userID).
		UpdateColumn("credits", gorm.Expr("credits + ?", amount)).Error; err != nil {
		return nil, err
	}

	var updated models.CreditBalance
	if err := db.Where("user_id = ?", userID).First(&updated).Error; err != nil {
		return nil, err
	}

	return &updated, nil
}

// acquireDayLock serializes concurrent submissions for one user via Redis.
// It returns a release func, or nil when another submission holds the lock.
// The lock is held only for the submission itself; same-day replays after the
// eligibility gate raced remain possible, as documented. If Redis is down the
// flow proceeds unguarded.
func (s *QuizService) acquireDayLock(userID uint) func() {
	if s.redis == nil {
		return func() {}
	}

	ctx := context.Background()
	key := fmt.Sprintf("quiz:submit:%d:%s", userID, time.Now().Format("2006-01-02"))

	ok, err := s.redis.SetNX(ctx, key, "1", submissionLockTTL).Result()
	if err != nil {
		log.Printf("Redis unavailable for quiz submission lock, proceeding unguarded: %v", err)
		return func() {}
	}
	if !ok {
		return nil
	}

	return func() {
		if err := s.redis.Del(ctx, key).Err(); err != nil {
			log.Printf("Failed to release quiz submission lock %s: %v", key, err)
		}
	}
}
