package quiz

import "sync"

// ActivePoll is the open poll in a chat: the Telegram message carrying it,
// the Telegram poll id, and the question it asks.
type ActivePoll struct {
	MessageID  int
	PollID     string
	QuestionID uint
}

// ActiveState tracks the open poll per chat. The dispatcher is the only
// writer; answer intake reads it to resolve votes. Votes resolve through
// the poll id rather than a single "current question" cell, so a vote on a
// poll that has since been replaced still maps to the question it was
// actually cast on.
type ActiveState struct {
	mu       sync.RWMutex
	byChat   map[int64]ActivePoll
	byPollID map[string]uint // poll id -> question id
}

func NewActiveState() *ActiveState {
	return &ActiveState{
		byChat:   make(map[int64]ActivePoll),
		byPollID: make(map[string]uint),
	}
}

// Active returns the open poll for a chat, if any.
func (s *ActiveState) Active(chatID int64) (ActivePoll, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poll, ok := s.byChat[chatID]
	return poll, ok
}

// SetActive records a newly opened poll as the chat's active poll. At most
// one poll is active per chat; the previous entry, if any, is replaced.
func (s *ActiveState) SetActive(chatID int64, poll ActivePoll) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byChat[chatID] = poll
	s.byPollID[poll.PollID] = poll.QuestionID
}

// QuestionForPoll resolves a Telegram poll id to the question it presented.
// Resolution stays valid after the poll has been replaced by a newer one.
func (s *ActiveState) QuestionForPoll(pollID string) (uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questionID, ok := s.byPollID[pollID]
	return questionID, ok
}
