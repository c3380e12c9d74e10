package handlers

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zackjh/discquiz/internal/scheduler"
	"github.com/zackjh/discquiz/pkg/errors"
)

// HandleStart confirms the bot process is running.
func (h *HandlerManager) HandleStart(message *tgbotapi.Message, bot BotInterface) {
	bot.Reply(message.Chat.ID, "DiscQuiz is running.")
}

// HandleNew schedules a new daily quiz at the given HH:MM.
func (h *HandlerManager) HandleNew(message *tgbotapi.Message, bot BotInterface) {
	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		bot.Reply(message.Chat.ID, "Please specify a time for the quiz to be sent.")
		return
	}

	quizTime, err := scheduler.ParseTimeOfDay(strings.Fields(args)[0])
	if err != nil {
		bot.Reply(message.Chat.ID, "Invalid time format. Please specify the time in the HH:MM format.")
		return
	}

	chat := scheduler.ChatContext{ChatID: message.Chat.ID}
	if err := h.Scheduler.Add(quizTime, chat); err != nil {
		if errors.HasCode(err, errors.ErrCodeAlreadyExists) {
			bot.Reply(message.Chat.ID,
				fmt.Sprintf("There is already a daily quiz scheduled for %s.", quizTime))
			return
		}
		bot.Reply(message.Chat.ID, "Failed to schedule the quiz.")
		return
	}

	bot.Reply(message.Chat.ID,
		fmt.Sprintf("You have scheduled a quiz to be sent at %s daily.", quizTime))
}

// HandleSchedule lists the chat's scheduled quiz times, ascending.
func (h *HandlerManager) HandleSchedule(message *tgbotapi.Message, bot BotInterface) {
	times := h.Scheduler.List(message.Chat.ID)
	if len(times) == 0 {
		bot.Reply(message.Chat.ID, "There are no scheduled quizzes.")
		return
	}

	var b strings.Builder
	b.WriteString("__Daily Schedule__\n")
	for _, t := range times {
		b.WriteString(fmt.Sprintf("•%s\n", t))
	}

	bot.ReplyMarkdownV2(message.Chat.ID, b.String())
}

// HandleRemove removes the daily quiz scheduled at the given HH:MM.
func (h *HandlerManager) HandleRemove(message *tgbotapi.Message, bot BotInterface) {
	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		bot.Reply(message.Chat.ID, "Please specify the time of the quiz to be removed.")
		return
	}

	quizTime, err := scheduler.ParseTimeOfDay(strings.Fields(args)[0])
	if err != nil {
		bot.Reply(message.Chat.ID, "Invalid time format. Please specify the time in the HH:MM format.")
		return
	}

	if err := h.Scheduler.Remove(quizTime, message.Chat.ID); err != nil {
		bot.Reply(message.Chat.ID,
			fmt.Sprintf("There is no daily quiz scheduled for %s.", quizTime))
		return
	}

	bot.Reply(message.Chat.ID,
		fmt.Sprintf("The daily quiz scheduled for %s has been removed.", quizTime))
}
