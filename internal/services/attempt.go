package services

import (
	"errors"
	"time"

	"github.com/harshitha-prabhu/quizmaker-app/internal/models"
	"github.com/harshitha-prabhu/quizmaker-app/internal/stores"

	"gorm.io/gorm"
)

// AttemptService drives the attempt lifecycle: InProgress -> Submitted,
// terminal, no other transitions. A started attempt that is never submitted
// simply stays in progress; there is no expiry.
type AttemptService struct {
	db        *gorm.DB
	quizzes   *stores.QuizStore
	questions *stores.QuestionStore
	attempts  *stores.AttemptStore
	scoring   *ScoringService
}

func NewAttemptService(db *gorm.DB, quizzes *stores.QuizStore, questions *stores.QuestionStore, attempts *stores.AttemptStore, scoring *ScoringService) *AttemptService {
	return &AttemptService{db: db, quizzes: quizzes, questions: questions, attempts: attempts, scoring: scoring}
}

// Start creates an in-progress attempt after confirming the quiz is active
// and scoreable. A quiz with no questions, or with any question missing its
// choices, must never produce an attempt row.
func (s *AttemptService) Start(userID, quizID string) (*models.Attempt, error) {
	quiz, err := s.quizzes.GetByID(quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListByQuiz(quiz.ID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, validationError("quiz has no questions")
	}

	totalPoints := 0
	for _, q := range questions {
		if len(q.Choices) == 0 {
			return nil, validationError("quiz has a question with no choices")
		}
		totalPoints += q.Points
	}

	return s.attempts.Create(stores.AttemptCreate{
		UserID:      userID,
		QuizID:      quiz.ID,
		TotalPoints: totalPoints,
	})
}

type ResponseInput struct {
	QuestionID string `json:"question_id"`
	ChoiceID   string `json:"choice_id"`
}

type SubmitResult struct {
	Attempt *models.Attempt `json:"attempt"`
	Scoring ScoreResult     `json:"scoring"`
}

// Submit grades the attempt exactly once. Answers are scored against the
// quiz's current question set: if the quiz was edited after Start, the new
// questions are what gets graded, and totals are recomputed from them so the
// stored score stays internally consistent. Responses are inserted and the
// attempt finalized in one transaction guarded by a conditional update, so
// concurrent submissions of the same attempt finalize at most once.
func (s *AttemptService) Submit(userID, attemptID string, responses []ResponseInput) (*SubmitResult, error) {
	attempt, err := s.attempts.GetByID(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, ErrAccessDenied
	}
	if attempt.SubmittedAt != nil {
		return nil, ErrAlreadySubmitted
	}

	questions, err := s.questions.ListByQuiz(attempt.QuizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, validationError("quiz has no questions to score")
	}

	scored := make([]ScoredQuestion, len(questions))
	choicesByQuestion := make(map[string][]ScoredChoice, len(questions))
	for i, q := range questions {
		scored[i] = ScoredQuestion{ID: q.ID, Points: q.Points}
		scoredChoices := make([]ScoredChoice, len(q.Choices))
		for j, c := range q.Choices {
			scoredChoices[j] = ScoredChoice{ID: c.ID, IsCorrect: c.IsCorrect}
		}
		choicesByQuestion[q.ID] = scoredChoices
	}

	selected := make(map[string]string, len(responses))
	for _, r := range responses {
		selected[r.QuestionID] = r.ChoiceID
	}

	result := s.scoring.Score(scored, choicesByQuestion, selected)

	now := time.Now().Unix()
	timeTaken := now - attempt.StartedAt
	if timeTaken < 0 {
		timeTaken = 0
	}

	responseCreates := make([]stores.ResponseCreate, len(result.Results))
	for i, qr := range result.Results {
		responseCreates[i] = stores.ResponseCreate{
			AttemptID:    attempt.ID,
			QuestionID:   qr.QuestionID,
			ChoiceID:     qr.SelectedChoiceID,
			IsCorrect:    qr.IsCorrect,
			PointsEarned: qr.PointsEarned,
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Finalize first: if another submission won the race the conditional
		// update matches nothing and the whole transaction, responses
		// included, rolls back.
		err := s.attempts.WithTx(tx).Finalize(attempt.ID, stores.AttemptFinalize{
			Score:            result.Score,
			TotalPoints:      result.TotalPoints,
			Percentage:       result.Percentage,
			SubmittedAt:      now,
			TimeTakenSeconds: timeTaken,
		})
		if err != nil {
			return err
		}
		_, err = s.attempts.WithTx(tx).InsertResponses(responseCreates)
		return err
	})
	if errors.Is(err, stores.ErrAlreadyFinalized) {
		return nil, ErrAlreadySubmitted
	}
	if err != nil {
		return nil, err
	}

	attempt.Score = result.Score
	attempt.TotalPoints = result.TotalPoints
	attempt.Percentage = result.Percentage
	attempt.SubmittedAt = &now
	attempt.TimeTakenSeconds = &timeTaken

	return &SubmitResult{Attempt: attempt, Scoring: result}, nil
}

type ResponseDetail struct {
	QuestionID       string  `json:"question_id"`
	QuestionText     string  `json:"question_text,omitempty"`
	SelectedChoiceID *string `json:"selected_choice_id"`
	CorrectChoiceID  *string `json:"correct_choice_id"`
	IsCorrect        bool    `json:"is_correct"`
	PointsEarned     int     `json:"points_earned"`
}

type AttemptResults struct {
	Attempt   *models.Attempt          `json:"attempt"`
	Responses []models.AttemptResponse `json:"responses"`
	Details   []ResponseDetail         `json:"details"`
}

// GetResults returns the attempt with its stored responses plus per-question
// detail rebuilt from the quiz's current questions. Correct-choice ids are
// re-derived from live data, so they can differ from what was scored if the
// quiz changed after submission; question text is empty for questions that
// no longer exist.
func (s *AttemptService) GetResults(userID, attemptID string) (*AttemptResults, error) {
	attempt, err := s.attempts.GetByID(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, ErrAccessDenied
	}

	responses, err := s.attempts.ListResponses(attemptID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.ListByQuiz(attempt.QuizID)
	if err != nil {
		return nil, err
	}
	questionByID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	details := make([]ResponseDetail, len(responses))
	for i, r := range responses {
		detail := ResponseDetail{
			QuestionID:       r.QuestionID,
			SelectedChoiceID: r.ChoiceID,
			IsCorrect:        r.IsCorrect,
			PointsEarned:     r.PointsEarned,
		}
		if q, ok := questionByID[r.QuestionID]; ok {
			detail.QuestionText = q.QuestionText
			for _, c := range q.Choices {
				if c.IsCorrect {
					correctID := c.ID
					detail.CorrectChoiceID = &correctID
					break
				}
			}
		}
		details[i] = detail
	}

	return &AttemptResults{Attempt: attempt, Responses: responses, Details: details}, nil
}

func (s *AttemptService) ListForUser(userID string) ([]models.Attempt, error) {
	return s.attempts.ListByUser(userID)
}
