package stores

import (
	"errors"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"

	"gorm.io/gorm"
)

type ChoiceStore struct {
	db *gorm.DB
}

func NewChoiceStore(db *gorm.DB) *ChoiceStore {
	return &ChoiceStore{db: db}
}

func (s *ChoiceStore) WithTx(tx *gorm.DB) *ChoiceStore {
	return &ChoiceStore{db: tx}
}

type ChoiceCreate struct {
	QuestionID  string
	ChoiceText  string
	ChoiceOrder int
	IsCorrect   bool
}

func (s *ChoiceStore) Create(in ChoiceCreate) (*models.Choice, error) {
	choice := newChoice(in)
	if err := s.db.Create(&choice).Error; err != nil {
		return nil, err
	}
	return &choice, nil
}

// CreateBatch inserts a full choice set in a single statement so a question
// never becomes visible with a partial set.
func (s *ChoiceStore) CreateBatch(ins []ChoiceCreate) ([]models.Choice, error) {
	if len(ins) == 0 {
		return nil, nil
	}
	choices := make([]models.Choice, len(ins))
	for i, in := range ins {
		choices[i] = newChoice(in)
	}
	if err := s.db.Create(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func newChoice(in ChoiceCreate) models.Choice {
	return models.Choice{
		ID:          models.NewID(),
		QuestionID:  in.QuestionID,
		ChoiceText:  in.ChoiceText,
		ChoiceOrder: in.ChoiceOrder,
		IsCorrect:   in.IsCorrect,
	}
}

func (s *ChoiceStore) GetByID(id string) (*models.Choice, error) {
	var choice models.Choice
	err := s.db.First(&choice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &choice, nil
}

func (s *ChoiceStore) ListByQuestion(questionID string) ([]models.Choice, error) {
	choices := make([]models.Choice, 0)
	err := s.db.Where("question_id = ?", questionID).
		Order("choice_order ASC").
		Find(&choices).Error
	if err != nil {
		return nil, err
	}
	return choices, nil
}

type ChoiceUpdate struct {
	ChoiceText  *string
	ChoiceOrder *int
	IsCorrect   *bool
}

func (s *ChoiceStore) Update(id string, in ChoiceUpdate) (*models.Choice, error) {
	choice, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.ChoiceText != nil {
		updates["choice_text"] = *in.ChoiceText
	}
	if in.ChoiceOrder != nil {
		updates["choice_order"] = *in.ChoiceOrder
	}
	if in.IsCorrect != nil {
		updates["is_correct"] = *in.IsCorrect
	}
	if len(updates) == 0 {
		return choice, nil
	}

	if err := s.db.Model(choice).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *ChoiceStore) Delete(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Choice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ChoiceStore) DeleteAllByQuestion(questionID string) error {
	return s.db.Where("question_id = ?", questionID).Delete(&models.Choice{}).Error
}
