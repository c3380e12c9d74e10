package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/pkg/logger"
)

// HandlePollAnswer records a user's vote in the answer log. Votes resolve
// against the question the poll actually asked, via the poll id; the user
// gets no reply. A persist failure is logged, never retried.
func (h *HandlerManager) HandlePollAnswer(answer *tgbotapi.PollAnswer) {
	if len(answer.OptionIDs) == 0 {
		// Vote retraction; the log keeps the original vote.
		return
	}

	questionID, ok := h.State.QuestionForPoll(answer.PollID)
	if !ok {
		logger.Warn("Vote for unknown poll", "poll_id", answer.PollID, "user_id", answer.User.ID)
		return
	}

	userAnswer := models.AnswerFalse
	if answer.OptionIDs[0] == 0 {
		userAnswer = models.AnswerTrue
	}

	if err := h.API.InsertAnswer(answer.User.ID, userAnswer, questionID); err != nil {
		logger.Error("Failed to record answer",
			"error", err, "user_id", answer.User.ID, "question_id", questionID)
	}
}
