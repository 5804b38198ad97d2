package stores

import (
	"path/filepath"
	"testing"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Choice{},
		&models.Attempt{},
		&models.AttemptResponse{},
	)
	if err != nil {
		t.Fatalf("migrate test db failed: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{ID: models.NewID(), Username: username, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return &user
}

func seedQuiz(t *testing.T, db *gorm.DB, createdBy string) *models.Quiz {
	t.Helper()

	quiz, err := NewQuizStore(db).Create(QuizCreate{Title: "Sample quiz", CreatedBy: createdBy})
	if err != nil {
		t.Fatalf("seed quiz failed: %v", err)
	}
	return quiz
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
