package repositories

import (
	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/pkg/errors"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// CreateQuestion inserts a new question. Questions are immutable once
// created; there are no update or delete operations.
func (r *QuestionRepository) CreateQuestion(question *models.Question) error {
	result := r.db.Create(question)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create question")
	}
	return nil
}

// GetQuestionByText retrieves a question by exact text match. Used to
// detect duplicate imports.
func (r *QuestionRepository) GetQuestionByText(text string) (*models.Question, error) {
	var question models.Question
	result := r.db.Where("text = ?", text).First(&question)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "question not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get question")
	}

	return &question, nil
}

// GetQuestionByID retrieves a question by ID.
func (r *QuestionRepository) GetQuestionByID(id uint) (*models.Question, error) {
	var question models.Question
	result := r.db.First(&question, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "question not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get question")
	}

	return &question, nil
}

// GetQuestions retrieves all questions. Order is not significant.
func (r *QuestionRepository) GetQuestions() ([]models.Question, error) {
	var questions []models.Question
	result := r.db.Find(&questions)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to list questions")
	}
	return questions, nil
}

// CountQuestions returns the number of questions in the store.
func (r *QuestionRepository) CountQuestions() (int64, error) {
	var count int64
	result := r.db.Model(&models.Question{}).Count(&count)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to count questions")
	}
	return count, nil
}

// GetRandomQuestion selects one question uniformly from the live row set.
// Selecting from actual rows rather than a synthesized [1, count] id range
// stays correct even if the id space ever grows gaps.
func (r *QuestionRepository) GetRandomQuestion() (*models.Question, error) {
	var question models.Question
	result := r.db.Order("RANDOM()").First(&question)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "no questions in the database")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get random question")
	}

	return &question, nil
}
