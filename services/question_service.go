package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"paisabuddy/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const questionsPerQuiz = 5

type QuestionService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewQuestionService(db *gorm.DB, redisClient *redis.Client) *QuestionService {
	return &QuestionService{db: db, redis: redisClient}
}

// QuizQuestionView is what clients see during the quiz. Correct answers are
// marked client-side against the full option set only after submission, so
// is_correct is stripped here.
type QuizQuestionView struct {
	ID       uint             `json:"id"`
	Text     string           `json:"text"`
	Category string           `json:"category"`
	Options  []QuizOptionView `json:"options"`
}

type QuizOptionView struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// DailyQuestions returns today's question set. The selection is picked once
// per calendar day and cached in Redis so every user sees the same quiz.
func (s *QuestionService) DailyQuestions() ([]QuizQuestionView, error) {
	ids, err := s.dailyQuestionIDs()
	if err != nil {
		return nil, err
	}

	var questions []models.QuizQuestion
	query := s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_options.order")
	})
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	} else {
		query = query.Order("random()").Limit(questionsPerQuiz)
	}
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to load quiz questions: %w", err)
	}

	return SanitizeQuestions(questions), nil
}

// SanitizeQuestions converts stored questions to their client view, dropping
// the is_correct flag from options.
func SanitizeQuestions(questions []models.QuizQuestion) []QuizQuestionView {
	views := make([]QuizQuestionView, 0, len(questions))
	for _, q := range questions {
		view := QuizQuestionView{
			ID:       q.ID,
			Text:     q.Text,
			Category: q.Category,
		}
		for _, opt := range q.Options {
			view.Options = append(view.Options, QuizOptionView{ID: opt.ID, Text: opt.Text})
		}
		views = append(views, view)
	}
	return views
}

// dailyQuestionIDs resolves (and caches) the question IDs for today. A Redis
// failure degrades to a fresh random pick per request.
func (s *QuestionService) dailyQuestionIDs() ([]uint, error) {
	if s.redis == nil {
		return nil, nil
	}

	ctx := context.Background()
	key := fmt.Sprintf("quiz:questions:%s", time.Now().Format("2006-01-02"))

	cached, err := s.redis.Get(ctx, key).Result()
	if err == nil {
		var ids []uint
		if err := json.Unmarshal([]byte(cached), &ids); err == nil {
			return ids, nil
		}
		log.Printf("Corrupt daily question cache %s, repicking", key)
	} else if err != redis.Nil {
		log.Printf("Redis unavailable for daily question cache: %v", err)
		return nil, nil
	}

	var ids []uint
	if err := s.db.Model(&models.QuizQuestion{}).
		Order("random()").
		Limit(questionsPerQuiz).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to pick daily questions: %w", err)
	}

	if len(ids) > 0 {
		_, end := dayRange(time.Now())
		data, _ := json.Marshal(ids)
		if err := s.redis.Set(ctx, key, data, time.Until(end)).Err(); err != nil {
			log.Printf("Failed to cache daily questions: %v", err)
		}
	}

	return ids, nil
}
