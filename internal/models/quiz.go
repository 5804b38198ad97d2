package models

// QuizStatus keeps the two-state visibility model explicit instead of a bare
// integer flag. A deleted quiz row is never physically removed.
type QuizStatus string

const (
	QuizStatusActive  QuizStatus = "active"
	QuizStatusDeleted QuizStatus = "deleted"
)

type Quiz struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  *string    `gorm:"size:1000" json:"description,omitempty"`
	Instructions *string    `gorm:"size:500" json:"instructions,omitempty"`
	CreatedBy    string     `gorm:"size:36;not null;index" json:"created_by"`
	Creator      User       `gorm:"foreignKey:CreatedBy" json:"-"`
	Status       QuizStatus `gorm:"size:10;not null;default:'active'" json:"status"`
	Questions    []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt    int64      `gorm:"autoCreateTime;not null" json:"created_at"`
	UpdatedAt    int64      `gorm:"autoUpdateTime;not null" json:"updated_at"`
}
