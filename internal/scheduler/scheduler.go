package scheduler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/zackjh/discquiz/pkg/errors"
	"github.com/zackjh/discquiz/pkg/logger"
)

// ChatContext identifies the chat a trigger fires into.
type ChatContext struct {
	ChatID int64
}

// TimeOfDay is an hour:minute wall-clock time. Seconds are never compared.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, errors.Wrap(err, errors.ErrCodeValidation, "invalid time format")
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// Trigger is one daily quiz send: a time-of-day and the chat it fires into.
type Trigger struct {
	Time TimeOfDay
	Chat ChatContext
}

// SendFunc is invoked when a trigger fires.
type SendFunc func(chat ChatContext)

// Scheduler holds the set of daily triggers and fires them against the
// configured local time zone. The set lives in memory only: a restart
// clears the schedule, matching the original deployment's behavior.
type Scheduler struct {
	location *time.Location
	send     SendFunc

	mu        sync.Mutex
	triggers  map[int64]map[TimeOfDay]Trigger // chat id -> time -> trigger
	lastFired map[triggerKey]string           // trigger -> last fired day+minute

	stop chan struct{}
	once sync.Once
}

type triggerKey struct {
	chatID int64
	t      TimeOfDay
}

func New(location *time.Location, send SendFunc) *Scheduler {
	return &Scheduler{
		location:  location,
		send:      send,
		triggers:  make(map[int64]map[TimeOfDay]Trigger),
		lastFired: make(map[triggerKey]string),
		stop:      make(chan struct{}),
	}
}

// Add registers a daily trigger. No two triggers in the same chat may share
// a time-of-day.
func (s *Scheduler) Add(t TimeOfDay, chat ChatContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTime, ok := s.triggers[chat.ChatID]
	if !ok {
		byTime = make(map[TimeOfDay]Trigger)
		s.triggers[chat.ChatID] = byTime
	}

	if _, exists := byTime[t]; exists {
		return errors.New(errors.ErrCodeAlreadyExists,
			fmt.Sprintf("a daily quiz is already scheduled for %s", t))
	}

	byTime[t] = Trigger{Time: t, Chat: chat}
	return nil
}

// Remove deletes the trigger at the given time-of-day for a chat.
func (s *Scheduler) Remove(t TimeOfDay, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byTime := s.triggers[chatID]
	if _, exists := byTime[t]; !exists {
		return errors.New(errors.ErrCodeNotFound,
			fmt.Sprintf("no daily quiz scheduled for %s", t))
	}

	delete(byTime, t)
	delete(s.lastFired, triggerKey{chatID: chatID, t: t})
	return nil
}

// List returns a chat's trigger times, ascending.
func (s *Scheduler) List(chatID int64) []TimeOfDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := make([]TimeOfDay, 0, len(s.triggers[chatID]))
	for t := range s.triggers[chatID] {
		times = append(times, t)
	}

	sort.Slice(times, func(i, j int) bool {
		return times[i].Before(times[j])
	})

	return times
}

// Run fires due triggers once per wall-clock minute until Stop is called.
// It blocks; run it on its own goroutine.
func (s *Scheduler) Run() {
	// Align to the next minute boundary so comparisons happen right after
	// the minute rolls over.
	now := time.Now().In(s.location)
	untilNextMinute := now.Truncate(time.Minute).Add(time.Minute).Sub(now)

	select {
	case <-time.After(untilNextMinute):
	case <-s.stop:
		return
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	s.fireDue(time.Now().In(s.location))
	for {
		select {
		case tick := <-ticker.C:
			s.fireDue(tick.In(s.location))
		case <-s.stop:
			return
		}
	}
}

// Stop terminates the Run loop.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Scheduler) fireDue(now time.Time) {
	for _, trigger := range s.due(now) {
		logger.Info("Firing daily quiz trigger",
			"time", trigger.Time.String(), "chat_id", trigger.Chat.ChatID)
		s.send(trigger.Chat)
	}
}

// due returns the triggers matching now's hour and minute that have not
// already fired this minute, and marks them fired. Ticker drift around the
// minute boundary must not double-fire a trigger.
func (s *Scheduler) due(now time.Time) []Trigger {
	current := TimeOfDay{Hour: now.Hour(), Minute: now.Minute()}
	stamp := now.Format("2006-01-02 15:04")

	s.mu.Lock()
	defer s.mu.Unlock()

	var fired []Trigger
	for chatID, byTime := range s.triggers {
		trigger, ok := byTime[current]
		if !ok {
			continue
		}

		key := triggerKey{chatID: chatID, t: current}
		if s.lastFired[key] == stamp {
			continue
		}
		s.lastFired[key] = stamp
		fired = append(fired, trigger)
	}

	return fired
}
