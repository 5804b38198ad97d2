package services

import (
	"github.com/harshitha-prabhu/quizmaker-app/internal/models"
	"github.com/harshitha-prabhu/quizmaker-app/internal/stores"

	"gorm.io/gorm"
)

// QuizService keeps the quiz/question/choice hierarchy coherent across
// create, update and delete, and enforces that only a quiz's creator can
// mutate it.
type QuizService struct {
	db        *gorm.DB
	quizzes   *stores.QuizStore
	questions *stores.QuestionStore
	choices   *stores.ChoiceStore
}

func NewQuizService(db *gorm.DB, quizzes *stores.QuizStore, questions *stores.QuestionStore, choices *stores.ChoiceStore) *QuizService {
	return &QuizService{db: db, quizzes: quizzes, questions: questions, choices: choices}
}

type ChoiceInput struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionInput struct {
	Text    string        `json:"text"`
	Points  int           `json:"points"`
	Choices []ChoiceInput `json:"choices"`
}

type QuizInput struct {
	Title        string          `json:"title"`
	Description  *string         `json:"description"`
	Instructions *string         `json:"instructions"`
	Questions    []QuestionInput `json:"questions"`
}

// QuizUpdateInput is a partial edit. Nil metadata fields stay untouched and
// a pointer to the empty string clears the optional text fields. A non-nil
// Questions slice replaces the entire question set.
type QuizUpdateInput struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Instructions *string         `json:"instructions"`
	Questions    []QuestionInput `json:"questions"`
}

// validateQuestions re-checks the structural invariants the service owns.
// The HTTP layer already validates shape and lengths, but the service never
// trusts that: a violating input must be rejected before any write.
func validateQuestions(questions []QuestionInput) error {
	if len(questions) == 0 {
		return validationError("quiz must have at least one question")
	}
	for i, q := range questions {
		if len(q.Choices) < 2 || len(q.Choices) > 4 {
			return validationError("question %d must have 2 to 4 choices", i+1)
		}
		hasCorrect := false
		for _, c := range q.Choices {
			if c.IsCorrect {
				hasCorrect = true
				break
			}
		}
		if !hasCorrect {
			return validationError("question %d must have at least one correct choice", i+1)
		}
	}
	return nil
}

// CreateQuiz inserts the quiz row, its questions and all their choices in
// one transaction. A failure anywhere leaves no half-built quiz behind.
func (s *QuizService) CreateQuiz(authorID string, input QuizInput) (*models.Quiz, error) {
	if err := validateQuestions(input.Questions); err != nil {
		return nil, err
	}

	var quizID string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizzes.WithTx(tx).Create(stores.QuizCreate{
			Title:        input.Title,
			Description:  input.Description,
			Instructions: input.Instructions,
			CreatedBy:    authorID,
		})
		if err != nil {
			return err
		}
		quizID = quiz.ID
		return s.insertQuestionSet(tx, quiz.ID, input.Questions)
	})
	if err != nil {
		return nil, err
	}

	return s.GetQuizDetail(quizID)
}

// insertQuestionSet batch-inserts questions (order = 1-based input position)
// and then every question's choices, within the caller's transaction.
func (s *QuizService) insertQuestionSet(tx *gorm.DB, quizID string, inputs []QuestionInput) error {
	questionCreates := make([]stores.QuestionCreate, len(inputs))
	for i, q := range inputs {
		questionCreates[i] = stores.QuestionCreate{
			QuizID:        quizID,
			QuestionText:  q.Text,
			QuestionOrder: i + 1,
			Points:        q.Points,
		}
	}
	created, err := s.questions.WithTx(tx).CreateBatch(questionCreates)
	if err != nil {
		return err
	}

	choiceCreates := make([]stores.ChoiceCreate, 0)
	for i, q := range inputs {
		for j, c := range q.Choices {
			choiceCreates = append(choiceCreates, stores.ChoiceCreate{
				QuestionID:  created[i].ID,
				ChoiceText:  c.Text,
				ChoiceOrder: j + 1,
				IsCorrect:   c.IsCorrect,
			})
		}
	}
	_, err = s.choices.WithTx(tx).CreateBatch(choiceCreates)
	return err
}

// UpdateQuiz patches metadata and, when a question list is supplied,
// replaces the whole question set: old question and choice rows are
// hard-deleted and a fresh set with new ids is inserted. Responses of
// already-submitted attempts keep referencing the old ids as history.
func (s *QuizService) UpdateQuiz(requesterID, quizID string, input QuizUpdateInput) (*models.Quiz, error) {
	if err := s.requireOwner(requesterID, quizID); err != nil {
		return nil, err
	}
	if input.Questions != nil {
		if err := validateQuestions(input.Questions); err != nil {
			return nil, err
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		_, err := s.quizzes.WithTx(tx).Update(quizID, stores.QuizUpdate{
			Title:        input.Title,
			Description:  input.Description,
			Instructions: input.Instructions,
		})
		if err != nil {
			return err
		}
		if input.Questions == nil {
			return nil
		}
		if err := s.questions.WithTx(tx).DeleteAllByQuiz(quizID); err != nil {
			return err
		}
		return s.insertQuestionSet(tx, quizID, input.Questions)
	})
	if err != nil {
		return nil, err
	}

	return s.GetQuizDetail(quizID)
}

func (s *QuizService) DeleteQuiz(requesterID, quizID string) error {
	if err := s.requireOwner(requesterID, quizID); err != nil {
		return err
	}
	return s.quizzes.SoftDelete(quizID)
}

func (s *QuizService) requireOwner(requesterID, quizID string) error {
	exists, err := s.quizzes.Exists(quizID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	owner, err := s.quizzes.IsOwner(quizID, requesterID)
	if err != nil {
		return err
	}
	if !owner {
		return ErrAccessDenied
	}
	return nil
}

// GetQuizDetail returns the quiz hydrated with its ordered questions and
// each question's ordered choices.
func (s *QuizService) GetQuizDetail(quizID string) (*models.Quiz, error) {
	quiz, err := s.quizzes.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questions.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

func (s *QuizService) ListQuizzes() ([]stores.QuizSummary, error) {
	return s.quizzes.ListAll()
}

func (s *QuizService) ListQuizzesByCreator(userID string) ([]stores.QuizSummary, error) {
	return s.quizzes.ListByUser(userID)
}
