package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zackjh/discquiz/internal/client"
	"github.com/zackjh/discquiz/internal/config"
	"github.com/zackjh/discquiz/internal/handlers"
	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/internal/quiz"
	"github.com/zackjh/discquiz/internal/scheduler"
	"github.com/zackjh/discquiz/pkg/logger"
	"github.com/zackjh/discquiz/pkg/markdown"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	config    *config.Config
	handlers  *handlers.HandlerManager
	scheduler *scheduler.Scheduler
}

func InitBot(cfg *config.Config, api *client.Client) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		botAPI.Debug = true
	}

	logger.Info("Authorized on account", "username", botAPI.Self.UserName)

	bot := &Bot{
		api:    botAPI,
		config: cfg,
	}

	// Active quiz state is shared by the dispatcher and answer intake; the
	// bot itself serves as the dispatcher's Poller.
	state := quiz.NewActiveState()
	dispatcher := quiz.NewDispatcher(api, bot, state)
	sched := scheduler.New(cfg.Location(), dispatcher.Send)

	bot.handlers = handlers.NewHandlerManager(cfg, api, sched, dispatcher, state)
	bot.scheduler = sched

	go bot.startUpdateListener()
	go sched.Run()

	return bot, nil
}

// startUpdateListener processes updates on a single goroutine,
// run-to-completion, so commands and votes never interleave.
func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "poll_answer"}

	logger.Info("Starting update listener...")
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
		}
	}()

	if update.PollAnswer != nil {
		b.handlers.HandlePollAnswer(update.PollAnswer)
		return
	}

	if update.Message != nil && update.Message.IsCommand() {
		b.handleCommand(update.Message)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	var handler handlers.CommandFunc

	switch message.Command() {
	case "start":
		handler = b.handlers.HandleStart
	case "new":
		handler = b.handlers.HandleNew
	case "remove":
		handler = b.handlers.HandleRemove
	case "schedule":
		handler = b.handlers.HandleSchedule
	case "leaderboard":
		handler = b.handlers.HandleLeaderboard
	default:
		return
	}

	b.handlers.Restricted(handler)(message, b)
}

// Reply sends a plain-text message to the chat.
func (b *Bot) Reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		logger.Error("Failed to send message", "error", err, "chat_id", chatID)
	}
}

// ReplyMarkdownV2 sends a message rendered with MarkdownV2.
func (b *Bot) ReplyMarkdownV2(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := b.api.Send(msg); err != nil {
		logger.Error("Failed to send message", "error", err, "chat_id", chatID)
	}
}

// Username resolves a user id to their Telegram username.
func (b *Bot) Username(userID int64) (string, error) {
	chat, err := b.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: userID},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get chat %d: %w", userID, err)
	}
	return chat.UserName, nil
}

// SendQuizPoll opens a non-anonymous TRUE/FALSE quiz poll. The remarks are
// delivered as the poll explanation, shown after a user votes.
func (b *Bot) SendQuizPoll(chat scheduler.ChatContext, question *models.Question) (int, string, error) {
	poll := tgbotapi.NewPoll(chat.ChatID, question.Text, "True", "False")
	poll.Type = "quiz"
	poll.IsAnonymous = false
	if question.Answer == models.AnswerTrue {
		poll.CorrectOptionID = 0
	} else {
		poll.CorrectOptionID = 1
	}
	poll.Explanation = markdown.FormatRemarks(question.Remarks, b.config.RulesPageURL)
	poll.ExplanationParseMode = tgbotapi.ModeMarkdownV2

	sent, err := b.api.Send(poll)
	if err != nil {
		return 0, "", fmt.Errorf("failed to send poll: %w", err)
	}
	if sent.Poll == nil {
		return 0, "", fmt.Errorf("sent message %d carries no poll", sent.MessageID)
	}

	return sent.MessageID, sent.Poll.ID, nil
}

// StopPoll stops accepting votes on a previously sent poll.
func (b *Bot) StopPoll(chatID int64, messageID int) error {
	if _, err := b.api.StopPoll(tgbotapi.NewStopPoll(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to stop poll: %w", err)
	}
	return nil
}

func (b *Bot) Stop() {
	b.scheduler.Stop()
	b.api.StopReceivingUpdates()
	logger.Info("Bot stopped receiving updates")
}
