package services

import (
	"path/filepath"
	"testing"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"
	"github.com/harshitha-prabhu/quizmaker-app/internal/stores"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	quizzes  *QuizService
	attempts *AttemptService
	stores   struct {
		quizzes   *stores.QuizStore
		questions *stores.QuestionStore
		choices   *stores.ChoiceStore
		attempts  *stores.AttemptStore
	}
}

func newTestEnv(t *testing.T) *testEnv {
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

	env := &testEnv{db: db}
	env.stores.quizzes = stores.NewQuizStore(db)
	env.stores.questions = stores.NewQuestionStore(db)
	env.stores.choices = stores.NewChoiceStore(db)
	env.stores.attempts = stores.NewAttemptStore(db)
	env.quizzes = NewQuizService(db, env.stores.quizzes, env.stores.questions, env.stores.choices)
	env.attempts = NewAttemptService(db, env.stores.quizzes, env.stores.questions, env.stores.attempts, NewScoringService())
	return env
}

func (e *testEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := models.User{ID: models.NewID(), Username: username, PasswordHash: "x"}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return &user
}

// validQuizInput is the smallest input that passes every invariant: one
// question, two choices, first one correct.
func validQuizInput() QuizInput {
	return QuizInput{
		Title: "Capitals",
		Questions: []QuestionInput{
			{
				Text:   "Capital of France?",
				Points: 2,
				Choices: []ChoiceInput{
					{Text: "Paris", IsCorrect: true},
					{Text: "Lyon"},
				},
			},
		},
	}
}

func strPtr(v string) *string { return &v }
