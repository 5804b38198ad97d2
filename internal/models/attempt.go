package models

// Attempt is one user's run through a quiz. SubmittedAt is nil while the
// attempt is in progress; once set the row is terminal and never rescored.
// TotalPoints is fixed when the attempt starts so later quiz edits cannot
// retroactively change an in-flight attempt's denominator.
type Attempt struct {
	ID               string            `gorm:"primaryKey;size:36" json:"id"`
	UserID           string            `gorm:"size:36;not null;index" json:"user_id"`
	User             User              `gorm:"foreignKey:UserID" json:"-"`
	QuizID           string            `gorm:"size:36;not null;index" json:"quiz_id"`
	Score            int               `gorm:"not null;default:0" json:"score"`
	TotalPoints      int               `gorm:"not null;default:0" json:"total_points"`
	Percentage       float64           `gorm:"not null;default:0" json:"percentage"`
	StartedAt        int64             `gorm:"not null" json:"started_at"`
	SubmittedAt      *int64            `json:"submitted_at,omitempty"`
	TimeTakenSeconds *int64            `json:"time_taken_seconds,omitempty"`
	Responses        []AttemptResponse `gorm:"foreignKey:AttemptID" json:"responses,omitempty"`
}
