package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zackjh/discquiz/internal/config"
	"github.com/zackjh/discquiz/internal/quiz"
	"github.com/zackjh/discquiz/internal/scheduler"
	"github.com/zackjh/discquiz/internal/stats"
)

// DataService is the slice of the data-service client the handlers use.
type DataService interface {
	GetUserStats() ([]stats.UserStats, error)
	InsertAnswer(userID int64, userAnswer string, questionID uint) error
}

// BotInterface is implemented by telegram.Bot. Handlers send replies and
// resolve usernames through it.
type BotInterface interface {
	Reply(chatID int64, text string)
	ReplyMarkdownV2(chatID int64, text string)
	Username(userID int64) (string, error)
}

// CommandFunc handles one bot command.
type CommandFunc func(message *tgbotapi.Message, bot BotInterface)

type HandlerManager struct {
	Config     *config.Config
	API        DataService
	Scheduler  *scheduler.Scheduler
	Dispatcher *quiz.Dispatcher
	State      *quiz.ActiveState
}

func NewHandlerManager(
	cfg *config.Config,
	api DataService,
	sched *scheduler.Scheduler,
	dispatcher *quiz.Dispatcher,
	state *quiz.ActiveState,
) *HandlerManager {
	return &HandlerManager{
		Config:     cfg,
		API:        api,
		Scheduler:  sched,
		Dispatcher: dispatcher,
		State:      state,
	}
}

// Restricted wraps a command handler with the admin allow-list check.
// Non-admins get a fixed denial reply and the wrapped handler never runs.
func (h *HandlerManager) Restricted(next CommandFunc) CommandFunc {
	return func(message *tgbotapi.Message, bot BotInterface) {
		if message.From == nil || !h.Config.IsAdmin(message.From.ID) {
			bot.Reply(message.Chat.ID, "You do not have permission to use this bot.")
			return
		}
		next(message, bot)
	}
}
