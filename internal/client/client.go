package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/zackjh/discquiz/internal/models"
	"github.com/zackjh/discquiz/internal/stats"
	"github.com/zackjh/discquiz/pkg/errors"
)

// Client talks to the data service. Every call is bounded by a fixed short
// timeout; on failure callers log and move on (fire-and-log), so there is no
// retry logic here.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// GetQuestion fetches a randomly selected question. A 400 response means
// the question set is empty.
func (c *Client) GetQuestion() (*models.Question, error) {
	resp, err := c.http.Get(c.baseURL + "/get-question")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstream, "get-question request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var question models.Question
	if err := json.NewDecoder(resp.Body).Decode(&question); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstream, "failed to decode question")
	}

	return &question, nil
}

// InsertAnswer appends one answer event to the answer log.
func (c *Client) InsertAnswer(userID int64, userAnswer string, questionID uint) error {
	form := url.Values{}
	form.Set("user_id", strconv.FormatInt(userID, 10))
	form.Set("user_answer", userAnswer)
	form.Set("question_id", strconv.FormatUint(uint64(questionID), 10))

	resp, err := c.http.PostForm(c.baseURL+"/insert-into-answer-log", form)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeUpstream, "insert-into-answer-log request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return upstreamError(resp)
	}

	return nil
}

// GetUserStats fetches the aggregated leaderboard, sorted by percentage
// correct, descending.
func (c *Client) GetUserStats() ([]stats.UserStats, error) {
	resp, err := c.http.Get(c.baseURL + "/get-user-stats")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstream, "get-user-stats request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamError(resp)
	}

	var results []stats.UserStats
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeUpstream, "failed to decode user stats")
	}

	return results, nil
}

func upstreamError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return errors.New(
		errors.ErrCodeUpstream,
		fmt.Sprintf("data service returned %d: %s", resp.StatusCode, string(body)),
	)
}
