package stores

import (
	"errors"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"

	"gorm.io/gorm"
)

type QuizStore struct {
	db *gorm.DB
}

func NewQuizStore(db *gorm.DB) *QuizStore {
	return &QuizStore{db: db}
}

// WithTx returns a store bound to the given transaction handle so quiz writes
// can share one atomic batch with question and choice writes.
func (s *QuizStore) WithTx(tx *gorm.DB) *QuizStore {
	return &QuizStore{db: tx}
}

type QuizCreate struct {
	Title        string
	Description  *string
	Instructions *string
	CreatedBy    string
}

func (s *QuizStore) Create(in QuizCreate) (*models.Quiz, error) {
	quiz := models.Quiz{
		ID:           models.NewID(),
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Instructions,
		CreatedBy:    in.CreatedBy,
		Status:       models.QuizStatusActive,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// GetByID returns the quiz only while it is active; soft-deleted quizzes are
// reported as not found.
func (s *QuizStore) GetByID(id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Where("id = ? AND status = ?", id, models.QuizStatusActive).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// QuizSummary is a quiz row annotated with its question count for listings.
type QuizSummary struct {
	models.Quiz
	QuestionCount int64 `json:"question_count"`
}

func (s *QuizStore) ListAll() ([]QuizSummary, error) {
	return s.list(s.summaryQuery())
}

func (s *QuizStore) ListByUser(userID string) ([]QuizSummary, error) {
	return s.list(s.summaryQuery().Where("quizzes.created_by = ?", userID))
}

func (s *QuizStore) summaryQuery() *gorm.DB {
	return s.db.Model(&models.Quiz{}).
		Select("quizzes.*, COUNT(questions.id) AS question_count").
		Joins("LEFT JOIN questions ON questions.quiz_id = quizzes.id").
		Where("quizzes.status = ?", models.QuizStatusActive).
		Group("quizzes.id")
}

func (s *QuizStore) list(query *gorm.DB) ([]QuizSummary, error) {
	summaries := make([]QuizSummary, 0)
	err := query.Order("quizzes.created_at DESC, quizzes.id DESC").Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// QuizUpdate carries a partial metadata update. Nil fields are left
// untouched; a pointer to the empty string clears an optional text field.
type QuizUpdate struct {
	Title        *string
	Description  *string
	Instructions *string
}

func (s *QuizStore) Update(id string, in QuizUpdate) (*models.Quiz, error) {
	quiz, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = optionalText(*in.Description)
	}
	if in.Instructions != nil {
		updates["instructions"] = optionalText(*in.Instructions)
	}
	if len(updates) == 0 {
		// Deliberate no-op: nothing to write, return the current row.
		return quiz, nil
	}

	if err := s.db.Model(quiz).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func optionalText(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

// SoftDelete hides the quiz from every read path without removing the row.
// Attempts against it stay retrievable for history.
func (s *QuizStore) SoftDelete(id string) error {
	res := s.db.Model(&models.Quiz{}).
		Where("id = ? AND status = ?", id, models.QuizStatusActive).
		Update("status", models.QuizStatusDeleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *QuizStore) Exists(id string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Quiz{}).
		Where("id = ? AND status = ?", id, models.QuizStatusActive).
		Count(&count).Error
	return count > 0, err
}

// IsOwner reports whether userID created the quiz. Missing and soft-deleted
// quizzes both report false.
func (s *QuizStore) IsOwner(id, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Quiz{}).
		Where("id = ? AND created_by = ? AND status = ?", id, userID, models.QuizStatusActive).
		Count(&count).Error
	return count > 0, err
}
