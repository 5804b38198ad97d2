package models

type Choice struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	QuestionID  string   `gorm:"size:36;not null;index" json:"question_id"`
	Question    Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	ChoiceText  string   `gorm:"size:500;not null" json:"choice_text"`
	ChoiceOrder int      `gorm:"not null" json:"choice_order"`
	IsCorrect   bool     `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt   int64    `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt   int64    `gorm:"autoUpdateTime;not null" json:"updated_at"`
}
