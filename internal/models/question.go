package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Answer values stored for questions and answer events.
const (
	AnswerTrue  = "TRUE"
	AnswerFalse = "FALSE"
)

// MaxQuestionLength is the Telegram poll question character limit.
const MaxQuestionLength = 300

type Question struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Text    string `gorm:"type:varchar(300);not null;index" json:"text"`
	Answer  string `gorm:"type:varchar(5);not null" json:"answer"`
	Remarks string `gorm:"type:text" json:"remarks"`
}

func (q *Question) BeforeSave(tx *gorm.DB) error {
	if q.Text == "" {
		return fmt.Errorf("question text must not be empty")
	}
	if len(q.Text) > MaxQuestionLength {
		return fmt.Errorf("question text exceeds %d characters", MaxQuestionLength)
	}
	if q.Answer != AnswerTrue && q.Answer != AnswerFalse {
		return fmt.Errorf("invalid answer: %s", q.Answer)
	}
	return nil
}
