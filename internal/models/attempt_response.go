package models

// AttemptResponse records the answer (or absence of one, ChoiceID nil) for a
// single question within one attempt. Question and choice ids are kept as
// plain columns without foreign keys on purpose: responses are historical
// records and must survive the replace-all-questions edit flow, which
// hard-deletes the question rows they reference.
type AttemptResponse struct {
	ID           string  `gorm:"primaryKey;size:36" json:"id"`
	AttemptID    string  `gorm:"size:36;not null;index" json:"attempt_id"`
	Attempt      Attempt `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionID   string  `gorm:"size:36;not null" json:"question_id"`
	ChoiceID     *string `gorm:"size:36" json:"choice_id"`
	IsCorrect    bool    `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned int     `gorm:"not null;default:0" json:"points_earned"`
	CreatedAt    int64   `gorm:"autoCreateTime;not null" json:"created_at"`
}
