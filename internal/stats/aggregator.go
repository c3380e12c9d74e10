package stats

import (
	"fmt"
	"sort"

	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/pkg/errors"
)

// UserStats is one user's correctness summary derived from the answer log.
type UserStats struct {
	UserID            int64   `json:"user_id"`
	CorrectlyAnswered int     `json:"correctly_answered"`
	WronglyAnswered   int     `json:"wrongly_answered"`
	TotalAnswered     int     `json:"total_answered"`
	PercentageCorrect float64 `json:"percentage_correct"`
}

// Aggregate joins the answer log against the question set and produces
// per-user correctness statistics sorted by percentage correct, descending.
// Ties keep the order in which users first appear in the log, so repeated
// runs over an unchanged log produce identical output.
//
// An answer event referencing a question id that is not in the question set
// is a data-integrity violation and fails the whole aggregation.
func Aggregate(questions []models.Question, events []models.AnswerEvent) ([]UserStats, error) {
	answers := make(map[uint]string, len(questions))
	for _, question := range questions {
		answers[question.ID] = question.Answer
	}

	byUser := make(map[int64]*UserStats)
	var order []int64

	for _, event := range events {
		correctAnswer, ok := answers[event.QuestionID]
		if !ok {
			return nil, errors.Wrap(
				fmt.Errorf("answer event %d references unknown question %d", event.ID, event.QuestionID),
				errors.ErrCodeIntegrity,
				"answer log references a question that does not exist",
			)
		}

		userStats, ok := byUser[event.UserID]
		if !ok {
			userStats = &UserStats{UserID: event.UserID}
			byUser[event.UserID] = userStats
			order = append(order, event.UserID)
		}

		userStats.TotalAnswered++
		if event.UserAnswer == correctAnswer {
			userStats.CorrectlyAnswered++
		} else {
			userStats.WronglyAnswered++
		}
	}

	results := make([]UserStats, 0, len(order))
	for _, userID := range order {
		userStats := byUser[userID]
		if userStats.TotalAnswered > 0 {
			userStats.PercentageCorrect = float64(userStats.CorrectlyAnswered) / float64(userStats.TotalAnswered) * 100
		}
		results = append(results, *userStats)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PercentageCorrect > results[j].PercentageCorrect
	})

	return results, nil
}
