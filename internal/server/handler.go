package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/internal/stats"
	"github.com/zackjh/discquiz/pkg/errors"
	"github.com/zackjh/discquiz/pkg/logger"
)

// QuestionStore is the slice of the question repository the handlers need.
type QuestionStore interface {
	GetQuestions() ([]models.Question, error)
	GetRandomQuestion() (*models.Question, error)
}

// AnswerLogStore is the slice of the answer-log repository the handlers need.
type AnswerLogStore interface {
	AppendAnswer(userID int64, userAnswer string, questionID uint) error
	GetAnswerLog() ([]models.AnswerEvent, error)
}

type Handler struct {
	questions QuestionStore
	answerLog AnswerLogStore
}

func NewHandler(questions QuestionStore, answerLog AnswerLogStore) *Handler {
	return &Handler{
		questions: questions,
		answerLog: answerLog,
	}
}

// Register wires the data-service routes. The paths and response shapes are
// what the bot client expects; see internal/client.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/get-question", h.GetQuestion)
	r.POST("/insert-into-answer-log", h.InsertIntoAnswerLog)
	r.GET("/get-user-stats", h.GetUserStats)
}

// GetQuestion returns a randomly selected question, or 400 when the
// question set is empty.
func (h *Handler) GetQuestion(c *gin.Context) {
	question, err := h.questions.GetRandomQuestion()
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNotFound) {
			c.String(http.StatusBadRequest, "There are no questions in the database")
			return
		}
		logger.Error("Failed to select a question", "error", err)
		c.String(http.StatusInternalServerError, "Failed to select a question")
		return
	}

	c.JSON(http.StatusOK, question)
}

// InsertIntoAnswerLog appends one answer event from form fields.
func (h *Handler) InsertIntoAnswerLog(c *gin.Context) {
	userID, err := strconv.ParseInt(c.PostForm("user_id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid user_id")
		return
	}

	userAnswer := c.PostForm("user_answer")
	if userAnswer != models.AnswerTrue && userAnswer != models.AnswerFalse {
		c.String(http.StatusBadRequest, "Invalid user_answer")
		return
	}

	questionID, err := strconv.ParseUint(c.PostForm("question_id"), 10, 64)
	if err != nil || questionID == 0 {
		c.String(http.StatusBadRequest, "Invalid question_id")
		return
	}

	if err := h.answerLog.AppendAnswer(userID, userAnswer, uint(questionID)); err != nil {
		logger.Error("Failed to append answer event", "error", err, "user_id", userID)
		c.String(http.StatusInternalServerError, "Failed to update the answer log")
		return
	}

	c.String(http.StatusCreated, "The answer log has been updated.")
}

// GetUserStats aggregates the answer log into the per-user leaderboard.
func (h *Handler) GetUserStats(c *gin.Context) {
	questions, err := h.questions.GetQuestions()
	if err != nil {
		logger.Error("Failed to list questions", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read questions")
		return
	}

	events, err := h.answerLog.GetAnswerLog()
	if err != nil {
		logger.Error("Failed to read answer log", "error", err)
		c.String(http.StatusInternalServerError, "Failed to read the answer log")
		return
	}

	results, err := stats.Aggregate(questions, events)
	if err != nil {
		// An event referencing an unknown question means the store has been
		// corrupted or tampered with; surface it loudly rather than skip rows.
		logger.Error("Answer log integrity violation", "error", err)
		c.String(http.StatusInternalServerError, "Answer log is inconsistent with the question set")
		return
	}

	c.JSON(http.StatusOK, results)
}
