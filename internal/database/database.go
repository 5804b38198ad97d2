package database

import (
	"fmt"
	"log"

	"github.com/harshitha-prabhu/quizmaker-app/internal/config"
	"github.com/harshitha-prabhu/quizmaker-app/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Choice{},
		&models.Attempt{},
		&models.AttemptResponse{},
	)
	if err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}
}
