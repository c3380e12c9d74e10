package quiz

import (
	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/internal/scheduler"
	"github.com/zackjh/discquiz/pkg/logger"
)

// QuestionFetcher fetches the next quiz question from the data service.
type QuestionFetcher interface {
	GetQuestion() (*models.Question, error)
}

// Poller opens and stops Telegram quiz polls.
type Poller interface {
	// SendQuizPoll opens a two-option TRUE/FALSE quiz poll and returns the
	// created message id and Telegram poll id.
	SendQuizPoll(chat scheduler.ChatContext, question *models.Question) (messageID int, pollID string, err error)
	// StopPoll stops accepting votes on a previously sent poll.
	StopPoll(chatID int64, messageID int) error
}

// Dispatcher runs the send transition: close the chat's open poll if one
// exists, fetch a question, open a new poll, and record it as active.
type Dispatcher struct {
	fetcher QuestionFetcher
	poller  Poller
	state   *ActiveState
}

func NewDispatcher(fetcher QuestionFetcher, poller Poller, state *ActiveState) *Dispatcher {
	return &Dispatcher{
		fetcher: fetcher,
		poller:  poller,
		state:   state,
	}
}

// Send delivers one quiz to the chat. Failures are logged and leave the
// active state untouched; the scheduler keeps its cadence regardless.
func (d *Dispatcher) Send(chat scheduler.ChatContext) {
	if active, ok := d.state.Active(chat.ChatID); ok {
		if err := d.poller.StopPoll(chat.ChatID, active.MessageID); err != nil {
			logger.Error("Failed to stop previous poll",
				"error", err, "chat_id", chat.ChatID, "message_id", active.MessageID)
		}
	}

	question, err := d.fetcher.GetQuestion()
	if err != nil {
		logger.Error("Failed to fetch a question", "error", err, "chat_id", chat.ChatID)
		return
	}

	messageID, pollID, err := d.poller.SendQuizPoll(chat, question)
	if err != nil {
		logger.Error("Failed to send quiz poll", "error", err, "chat_id", chat.ChatID)
		return
	}

	d.state.SetActive(chat.ChatID, ActivePoll{
		MessageID:  messageID,
		PollID:     pollID,
		QuestionID: question.ID,
	})

	logger.Info("Quiz sent",
		"chat_id", chat.ChatID, "question_id", question.ID, "message_id", messageID)
}
