package main

import (
	"log"

	"github.com/harshitha-prabhu/quizmaker-app/internal/config"
	"github.com/harshitha-prabhu/quizmaker-app/internal/database"
	"github.com/harshitha-prabhu/quizmaker-app/internal/handlers"
	"github.com/harshitha-prabhu/quizmaker-app/internal/middleware"
	"github.com/harshitha-prabhu/quizmaker-app/internal/services"
	"github.com/harshitha-prabhu/quizmaker-app/internal/stores"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title           Quizmaker API
// @version         1.0
// @description     Quiz authoring and attempt scoring service
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	quizStore := stores.NewQuizStore(db)
	questionStore := stores.NewQuestionStore(db)
	choiceStore := stores.NewChoiceStore(db)
	attemptStore := stores.NewAttemptStore(db)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	scoringService := services.NewScoringService()
	quizService := services.NewQuizService(db, quizStore, questionStore, choiceStore)
	attemptService := services.NewAttemptService(db, quizStore, questionStore, attemptStore, scoringService)

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.JWTAuth(authService))
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/mine", quizHandler.ListMyQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.PUT("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
			quizzes.POST("/:id/attempts", attemptHandler.StartAttempt)
		}

		attempts := api.Group("/attempts")
		attempts.Use(middleware.JWTAuth(authService))
		{
			attempts.GET("", attemptHandler.ListAttempts)
			attempts.GET("/:id", attemptHandler.GetAttempt)
			attempts.POST("/:id/submit", attemptHandler.SubmitAttempt)
		}
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
