package routes

import (
	"fmt"
	"log"
	"net/http"

	"paisabuddy/handlers"
	"paisabuddy/middleware"
	"paisabuddy/models"
	"paisabuddy/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	expenseHandler *handlers.ExpenseHandler,
	shareHandler *handlers.ShareHandler,
	financialHandler *handlers.FinancialHandler,
	quizHandler *handlers.QuizHandler,
	creditHandler *handlers.CreditHandler,
	dashboardHandler *handlers.DashboardHandler,
	chatHandler *handlers.ChatHandler,
	chatHub *services.ChatHub,
	jwtSecret string,
) {
	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtSecret))
		{
			protected.GET("/auth/profile", authHandler.GetProfile)

			// Onboarding profile
			protected.GET("/profile", profileHandler.GetProfile)
			protected.POST("/profile", profileHandler.SaveProfile)
			protected.PUT("/profile", profileHandler.SaveProfile)

			// Manual entries
			protected.GET("/expenses", expenseHandler.GetExpenses)
			protected.POST("/expenses", expenseHandler.CreateExpense)
			protected.GET("/shares", shareHandler.GetShares)
			protected.POST("/shares", shareHandler.CreateShare)
			protected.GET("/financial", financialHandler.GetRecords)
			protected.POST("/financial", financialHandler.CreateRecord)

			// Daily quiz and credit ledger
			protected.GET("/quiz", quizHandler.CheckEligibility)
			protected.POST("/quiz", quizHandler.SubmitQuiz)
			protected.GET("/quiz/questions", quizHandler.GetDailyQuestions)
			protected.GET("/credits", creditHandler.GetBalance)
			protected.POST("/credits", creditHandler.AddCredits)

			// Aggregated dashboard
			protected.GET("/dashboard", dashboardHandler.GetSummary)

			// Advice chat
			protected.POST("/chat", chatHandler.Chat)
			protected.POST("/feedback", chatHandler.MonthlyFeedback)
		}
	}

	// WebSocket endpoint for the live advice chat. Browsers cannot set an
	// Authorization header on a websocket handshake, so the token rides in
	// the query string.
	router.GET("/ws/chat", func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token required"})
			return
		}

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for user %d: %v", claims.UserID, err)
			return
		}

		chatHub.RegisterClient(conn, claims.UserID)
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
