package repositories

import (
	"time"

	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/pkg/errors"
	"gorm.io/gorm"
)

type AnswerLogRepository struct {
	db *gorm.DB
}

func NewAnswerLogRepository(db *gorm.DB) *AnswerLogRepository {
	return &AnswerLogRepository{db: db}
}

// AppendAnswer inserts a record into the answer log. The log is
// append-only; duplicate votes from the same user are kept as-is.
func (r *AnswerLogRepository) AppendAnswer(userID int64, userAnswer string, questionID uint) error {
	event := models.AnswerEvent{
		Timestamp:  time.Now(),
		UserID:     userID,
		UserAnswer: userAnswer,
		QuestionID: questionID,
	}

	result := r.db.Create(&event)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to append answer event")
	}
	return nil
}

// GetAnswerLog retrieves all answer events in insertion order.
func (r *AnswerLogRepository) GetAnswerLog() ([]models.AnswerEvent, error) {
	var events []models.AnswerEvent
	result := r.db.Order("id").Find(&events)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list answer events")
	}
	return events, nil
}
