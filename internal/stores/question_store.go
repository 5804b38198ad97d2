package stores

import (
	"errors"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"

	"gorm.io/gorm"
)

type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

func (s *QuestionStore) WithTx(tx *gorm.DB) *QuestionStore {
	return &QuestionStore{db: tx}
}

type QuestionCreate struct {
	QuizID        string
	QuestionText  string
	QuestionOrder int
	Points        int
}

func (s *QuestionStore) Create(in QuestionCreate) (*models.Question, error) {
	question := newQuestion(in)
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// CreateBatch inserts a quiz's question set in a single statement so the set
// appears atomically, in input order.
func (s *QuestionStore) CreateBatch(ins []QuestionCreate) ([]models.Question, error) {
	if len(ins) == 0 {
		return nil, nil
	}
	questions := make([]models.Question, len(ins))
	for i, in := range ins {
		questions[i] = newQuestion(in)
	}
	if err := s.db.Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func newQuestion(in QuestionCreate) models.Question {
	points := in.Points
	if points <= 0 {
		points = 1
	}
	return models.Question{
		ID:            models.NewID(),
		QuizID:        in.QuizID,
		QuestionText:  in.QuestionText,
		QuestionOrder: in.QuestionOrder,
		Points:        points,
	}
}

func (s *QuestionStore) GetByID(id string) (*models.Question, error) {
	var question models.Question
	err := s.db.First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListByQuiz returns the quiz's questions in display order, each with its
// choices preloaded in choice order.
func (s *QuestionStore) ListByQuiz(quizID string) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := s.db.Where("quiz_id = ?", quizID).
		Order("question_order ASC").
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choice_order ASC")
		}).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

type QuestionUpdate struct {
	QuestionText  *string
	QuestionOrder *int
	Points        *int
}

func (s *QuestionStore) Update(id string, in QuestionUpdate) (*models.Question, error) {
	question, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.QuestionText != nil {
		updates["question_text"] = *in.QuestionText
	}
	if in.QuestionOrder != nil {
		updates["question_order"] = *in.QuestionOrder
	}
	if in.Points != nil {
		updates["points"] = *in.Points
	}
	if len(updates) == 0 {
		return question, nil
	}

	if err := s.db.Model(question).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *QuestionStore) Delete(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&models.Choice{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Question{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// DeleteAllByQuiz hard-deletes the quiz's entire question set along with the
// choices hanging off it. Used by the replace-all-questions edit flow.
func (s *QuestionStore) DeleteAllByQuiz(quizID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("question_id IN (SELECT id FROM questions WHERE quiz_id = ?)", quizID).
			Delete(&models.Choice{}).Error
		if err != nil {
			return err
		}
		return tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error
	})
}

type QuestionOrder struct {
	QuestionID string `json:"question_id"`
	Order      int    `json:"order"`
}

// Reorder applies new display positions in one transaction. Every update is
// scoped by quiz_id so an id belonging to another quiz is a no-op rather
// than a cross-quiz write.
func (s *QuestionStore) Reorder(quizID string, orders []QuestionOrder) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			err := tx.Model(&models.Question{}).
				Where("id = ? AND quiz_id = ?", o.QuestionID, quizID).
				Update("question_order", o.Order).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
