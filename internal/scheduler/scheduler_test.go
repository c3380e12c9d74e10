package scheduler

import (
	"testing"
	"time"

	"github.com/zackjh/discquiz/pkg/errors"
	"github.com/zackjh/discquiz/pkg/logger"
)

func init() {
	logger.Init()
}

func newTestScheduler() (*Scheduler, *[]ChatContext) {
	var fired []ChatContext
	s := New(time.UTC, func(chat ChatContext) {
		fired = append(fired, chat)
	})
	return s, &fired
}

func mustParse(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("ParseTimeOfDay(%q) error = %v", s, err)
	}
	return tod
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{input: "09:30", want: TimeOfDay{Hour: 9, Minute: 30}},
		{input: "00:00", want: TimeOfDay{Hour: 0, Minute: 0}},
		{input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{input: "24:00", wantErr: true},
		{input: "9am", wantErr: true},
		{input: "", wantErr: true},
		{input: "12:60", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAdd_DuplicateTimeRejected(t *testing.T) {
	s, _ := newTestScheduler()
	chat := ChatContext{ChatID: 1}
	tod := mustParse(t, "09:30")

	if err := s.Add(tod, chat); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}

	err := s.Add(tod, chat)
	if err == nil {
		t.Fatal("second Add() expected duplicate error, got nil")
	}
	if !errors.HasCode(err, errors.ErrCodeAlreadyExists) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeAlreadyExists)
	}
}

func TestAdd_SameTimeDifferentChats(t *testing.T) {
	s, _ := newTestScheduler()
	tod := mustParse(t, "09:30")

	if err := s.Add(tod, ChatContext{ChatID: 1}); err != nil {
		t.Fatalf("Add() chat 1 error = %v", err)
	}
	if err := s.Add(tod, ChatContext{ChatID: 2}); err != nil {
		t.Errorf("Add() chat 2 error = %v, duplicate check must be per chat", err)
	}
}

func TestRemove_NotFound(t *testing.T) {
	s, _ := newTestScheduler()

	err := s.Remove(mustParse(t, "09:30"), 1)
	if err == nil {
		t.Fatal("Remove() expected not-found error, got nil")
	}
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeNotFound)
	}
}

func TestRemove_ExcludedFromList(t *testing.T) {
	s, _ := newTestScheduler()
	chat := ChatContext{ChatID: 1}

	for _, raw := range []string{"09:30", "12:00", "18:45"} {
		if err := s.Add(mustParse(t, raw), chat); err != nil {
			t.Fatalf("Add(%s) error = %v", raw, err)
		}
	}

	if err := s.Remove(mustParse(t, "12:00"), 1); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	times := s.List(1)
	if len(times) != 2 {
		t.Fatalf("len(List()) = %d, want 2", len(times))
	}
	for _, tod := range times {
		if tod.String() == "12:00" {
			t.Error("List() still contains removed trigger 12:00")
		}
	}
}

func TestList_Ascending(t *testing.T) {
	s, _ := newTestScheduler()
	chat := ChatContext{ChatID: 1}

	for _, raw := range []string{"18:45", "09:30", "12:00"} {
		if err := s.Add(mustParse(t, raw), chat); err != nil {
			t.Fatalf("Add(%s) error = %v", raw, err)
		}
	}

	times := s.List(1)
	want := []string{"09:30", "12:00", "18:45"}
	for i, tod := range times {
		if tod.String() != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, tod, want[i])
		}
	}
}

func TestDue_FiresMatchingMinuteOnce(t *testing.T) {
	s, _ := newTestScheduler()
	chat := ChatContext{ChatID: 1}
	if err := s.Add(mustParse(t, "09:30"), chat); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	fired := s.due(now)
	if len(fired) != 1 {
		t.Fatalf("due() fired %d triggers, want 1", len(fired))
	}
	if fired[0].Chat != chat {
		t.Errorf("fired chat = %+v, want %+v", fired[0].Chat, chat)
	}

	// Same minute again, e.g. ticker drift: must not double-fire.
	if again := s.due(now.Add(30 * time.Second)); len(again) != 0 {
		t.Errorf("due() re-fired %d triggers within the same minute", len(again))
	}

	// Next day, same time: fires again.
	if nextDay := s.due(now.AddDate(0, 0, 1)); len(nextDay) != 1 {
		t.Errorf("due() fired %d triggers on the next day, want 1", len(nextDay))
	}
}

func TestDue_NonMatchingMinute(t *testing.T) {
	s, _ := newTestScheduler()
	if err := s.Add(mustParse(t, "09:30"), ChatContext{ChatID: 1}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	now := time.Date(2025, 6, 1, 9, 31, 0, 0, time.UTC)
	if fired := s.due(now); len(fired) != 0 {
		t.Errorf("due() fired %d triggers at a non-matching minute", len(fired))
	}
}
