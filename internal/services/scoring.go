package services

// ScoringService grades a set of submitted answers against a quiz's
// questions and choices. It is a pure function over its arguments: it never
// touches storage and identical input always produces identical output.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

type ScoredQuestion struct {
	ID     string
	Points int
}

type ScoredChoice struct {
	ID        string
	IsCorrect bool
}

type QuestionResult struct {
	QuestionID       string  `json:"question_id"`
	IsCorrect        bool    `json:"is_correct"`
	PointsEarned     int     `json:"points_earned"`
	SelectedChoiceID *string `json:"selected_choice_id"`
	CorrectChoiceID  *string `json:"correct_choice_id"`
}

type ScoreResult struct {
	Score       int              `json:"score"`
	TotalPoints int              `json:"total_points"`
	Percentage  float64          `json:"percentage"`
	Results     []QuestionResult `json:"results"`
}

// Score walks the questions in the given order. A question with no entry in
// responses counts as unanswered; a selected choice id that does not belong
// to the question counts as incorrect. Questions with an empty choice set
// are marked incorrect rather than rejected so a malformed quiz can still be
// graded. Percentage is 0 when the quiz is worth zero points.
func (s *ScoringService) Score(questions []ScoredQuestion, choicesByQuestion map[string][]ScoredChoice, responses map[string]string) ScoreResult {
	result := ScoreResult{
		Results: make([]QuestionResult, 0, len(questions)),
	}

	for _, question := range questions {
		result.TotalPoints += question.Points

		qr := QuestionResult{QuestionID: question.ID}
		if selected, ok := responses[question.ID]; ok {
			qr.SelectedChoiceID = &selected
		}

		choices := choicesByQuestion[question.ID]
		for _, choice := range choices {
			if choice.IsCorrect && qr.CorrectChoiceID == nil {
				correctID := choice.ID
				qr.CorrectChoiceID = &correctID
			}
			if qr.SelectedChoiceID != nil && choice.ID == *qr.SelectedChoiceID && choice.IsCorrect {
				qr.IsCorrect = true
			}
		}

		if qr.IsCorrect {
			qr.PointsEarned = question.Points
			result.Score += qr.PointsEarned
		}

		result.Results = append(result.Results, qr)
	}

	if result.TotalPoints > 0 {
		result.Percentage = float64(result.Score) / float64(result.TotalPoints) * 100
	}

	return result
}
