package handlers

import (
	"errors"
	"net/http"

	"paisabuddy/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService     *services.QuizService
	questionService *services.QuestionService
}

func NewQuizHandler(quizService *services.QuizService, questionService *services.QuestionService) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		questionService: questionService,
	}
}

// CheckEligibility reports whether the user may take today's quiz.
func (h *QuizHandler) CheckEligibility(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	eligibility, err := h.quizService.CheckEligibility(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !eligibility.CanTakeQuiz {
		c.JSON(http.StatusBadRequest, gin.H{"error": eligibility.Reason, "quizCompleted": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"canTakeQuiz": true})
}

// SubmitQuiz scores a completed answer set and credits the user.
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quizService.SubmitQuiz(userID.(uint), &req)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionInProgress) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"score":         result.Score,
		"creditsEarned": result.CreditsEarned,
		"quizId":        result.QuizID,
	}
	if len(result.FailedAnswers) > 0 {
		resp["failedAnswerQuestionIds"] = result.FailedAnswers
	}

	c.JSON(http.StatusOK, resp)
}

// GetDailyQuestions serves today's question set without correct-answer flags.
func (h *QuizHandler) GetDailyQuestions(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questions, err := h.questionService.DailyQuestions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
