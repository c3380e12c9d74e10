package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AnswerEvent is one row of the append-only answer log. A user answering
// the same poll more than once produces multiple rows; every vote counts.
type AnswerEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Timestamp  time.Time `gorm:"not null" json:"timestamp"`
	UserID     int64     `gorm:"not null;index" json:"user_id"`
	UserAnswer string    `gorm:"type:varchar(5);not null" json:"user_answer"`
	QuestionID uint      `gorm:"not null" json:"question_id"`
	Question   Question  `gorm:"foreignKey:QuestionID" json:"-"`
}

func (e *AnswerEvent) TableName() string {
	return "answer_log"
}

func (e *AnswerEvent) BeforeSave(tx *gorm.DB) error {
	if e.UserAnswer != AnswerTrue && e.UserAnswer != AnswerFalse {
		return fmt.Errorf("invalid user answer: %s", e.UserAnswer)
	}
	if e.QuestionID == 0 {
		return fmt.Errorf("question id is required")
	}
	return nil
}
