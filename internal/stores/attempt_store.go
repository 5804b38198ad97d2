package stores

import (
	"errors"
	"time"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"

	"gorm.io/gorm"
)

type AttemptStore struct {
	db *gorm.DB
}

func NewAttemptStore(db *gorm.DB) *AttemptStore {
	return &AttemptStore{db: db}
}

func (s *AttemptStore) WithTx(tx *gorm.DB) *AttemptStore {
	return &AttemptStore{db: tx}
}

type AttemptCreate struct {
	UserID      string
	QuizID      string
	TotalPoints int
}

// Create persists a fresh in-progress attempt: zero score, no submission
// timestamp, started now.
func (s *AttemptStore) Create(in AttemptCreate) (*models.Attempt, error) {
	attempt := models.Attempt{
		ID:          models.NewID(),
		UserID:      in.UserID,
		QuizID:      in.QuizID,
		TotalPoints: in.TotalPoints,
		StartedAt:   time.Now().Unix(),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *AttemptStore) GetByID(id string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := s.db.First(&attempt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (s *AttemptStore) ListByUser(userID string) ([]models.Attempt, error) {
	attempts := make([]models.Attempt, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("started_at DESC, id DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (s *AttemptStore) ListByQuiz(quizID string) ([]models.Attempt, error) {
	attempts := make([]models.Attempt, 0)
	err := s.db.Where("quiz_id = ?", quizID).
		Order("started_at DESC, id DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (s *AttemptStore) IsOwner(attemptID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Attempt{}).
		Where("id = ? AND user_id = ?", attemptID, userID).
		Count(&count).Error
	return count > 0, err
}

type ResponseCreate struct {
	AttemptID    string
	QuestionID   string
	ChoiceID     *string
	IsCorrect    bool
	PointsEarned int
}

// InsertResponses writes the attempt's full response set in a single
// multi-row insert so it lands atomically.
func (s *AttemptStore) InsertResponses(ins []ResponseCreate) ([]models.AttemptResponse, error) {
	if len(ins) == 0 {
		return nil, nil
	}
	responses := make([]models.AttemptResponse, len(ins))
	for i, in := range ins {
		responses[i] = models.AttemptResponse{
			ID:           models.NewID(),
			AttemptID:    in.AttemptID,
			QuestionID:   in.QuestionID,
			ChoiceID:     in.ChoiceID,
			IsCorrect:    in.IsCorrect,
			PointsEarned: in.PointsEarned,
		}
	}
	if err := s.db.Create(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

func (s *AttemptStore) ListResponses(attemptID string) ([]models.AttemptResponse, error) {
	responses := make([]models.AttemptResponse, 0)
	err := s.db.Where("attempt_id = ?", attemptID).Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

type AttemptFinalize struct {
	Score            int
	TotalPoints      int
	Percentage       float64
	SubmittedAt      int64
	TimeTakenSeconds int64
}

// Finalize moves the attempt to its terminal submitted state. The update is
// conditional on submitted_at still being NULL: when two submissions race,
// exactly one matches a row and the loser gets ErrAlreadyFinalized instead
// of double-scoring. The affected-row check is the sole correctness
// mechanism here; callers must not rely on a prior read of submitted_at.
func (s *AttemptStore) Finalize(id string, in AttemptFinalize) error {
	res := s.db.Model(&models.Attempt{}).
		Where("id = ? AND submitted_at IS NULL", id).
		Updates(map[string]interface{}{
			"score":              in.Score,
			"total_points":       in.TotalPoints,
			"percentage":         in.Percentage,
			"submitted_at":       in.SubmittedAt,
			"time_taken_seconds": in.TimeTakenSeconds,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyFinalized
	}
	return nil
}
