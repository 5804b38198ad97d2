package models

type Question struct {
	ID            string   `gorm:"primaryKey;size:36" json:"id"`
	QuizID        string   `gorm:"size:36;not null;index" json:"quiz_id"`
	Quiz          Quiz     `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	QuestionText  string   `gorm:"size:1000;not null" json:"question_text"`
	QuestionOrder int      `gorm:"not null" json:"question_order"`
	Points        int      `gorm:"not null;default:1" json:"points"`
	Choices       []Choice `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
	CreatedAt     int64    `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt     int64    `gorm:"autoUpdateTime;not null" json:"updated_at"`
}
