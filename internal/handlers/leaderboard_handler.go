package handlers

import (
	"fmt"
	"math"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/zackjh/discquiz/pkg/logger"
	"github.com/zackjh/discquiz/pkg/markdown"
)

// HandleLeaderboard renders the ranked per-user correctness summary. An
// upstream failure is logged and produces no reply (fire-and-log).
func (h *HandlerManager) HandleLeaderboard(message *tgbotapi.Message, bot BotInterface) {
	results, err := h.API.GetUserStats()
	if err != nil {
		logger.Error("Failed to fetch user stats", "error", err)
		return
	}

	var b strings.Builder
	b.WriteString("__Leaderboard__\n")
	for i, user := range results {
		username, err := bot.Username(user.UserID)
		if err != nil {
			logger.Warn("Failed to resolve username", "error", err, "user_id", user.UserID)
			username = fmt.Sprintf("user %d", user.UserID)
		}

		row := fmt.Sprintf("%d. %s - %d%% (%d/%d)\n",
			i+1,
			username,
			int(math.Round(user.PercentageCorrect)),
			user.CorrectlyAnswered,
			user.TotalAnswered,
		)
		b.WriteString(markdown.EscapeV2(row))
	}

	bot.ReplyMarkdownV2(message.Chat.ID, b.String())
}
