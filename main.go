package main

import (
	"log"

	"paisabuddy/config"
	"paisabuddy/handlers"
	"paisabuddy/middleware"
	"paisabuddy/models"
	"paisabuddy/routes"
	"paisabuddy/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Expense{},
		&models.Share{},
		&models.FinancialRecord{},
		&models.QuizQuestion{},
		&models.QuizOption{},
		&models.QuizAttempt{},
		&models.QuizAnswer{},
		&models.CreditBalance{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize services
	authService := services.NewAuthService(db, cfg.JWTSecret)
	profileService := services.NewProfileService(db)
	expenseService := services.NewExpenseService(db)
	shareService := services.NewShareService(db)
	financialService := services.NewFinancialService(db)
	creditService := services.NewCreditService(db)
	quizService := services.NewQuizService(db, redisClient, cfg.LedgerMode)
	questionService := services.NewQuestionService(db, redisClient)
	dashboardService := services.NewDashboardService(db, creditService)
	adviceClient := services.NewAdviceClient(cfg.AdviceAPIURL, cfg.AdviceTimeout)
	chatService := services.NewChatService(adviceClient, profileService, expenseService)

	// Initialize WebSocket chat hub
	chatHub := services.NewChatHub(chatService)
	go chatHub.Run()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	shareHandler := handlers.NewShareHandler(shareService)
	financialHandler := handlers.NewFinancialHandler(financialService)
	quizHandler := handlers.NewQuizHandler(quizService, questionService)
	creditHandler := handlers.NewCreditHandler(creditService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, profileHandler, expenseHandler,
		shareHandler, financialHandler, quizHandler, creditHandler,
		dashboardHandler, chatHandler, chatHub, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
