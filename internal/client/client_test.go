package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/zackjh/discquiz/internal/models"
)

func TestGetQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get-question" {
			t.Errorf("path = %q, want /get-question", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":3,"text":"The disc may be handed off.","answer":"FALSE","remarks":"See Rule 13.2"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	question, err := c.GetQuestion()
	if err != nil {
		t.Fatalf("GetQuestion() error = %v", err)
	}

	if question.ID != 3 {
		t.Errorf("ID = %d, want 3", question.ID)
	}
	if question.Answer != models.AnswerFalse {
		t.Errorf("Answer = %q, want FALSE", question.Answer)
	}
}

func TestGetQuestion_EmptySet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "There are no questions in the database", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.GetQuestion(); err == nil {
		t.Error("GetQuestion() expected error for 400 response, got nil")
	}
}

func TestInsertAnswer(t *testing.T) {
	var gotForm map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm() error = %v", err)
		}
		gotForm = map[string]string{
			"user_id":     r.PostFormValue("user_id"),
			"user_answer": r.PostFormValue("user_answer"),
			"question_id": r.PostFormValue("question_id"),
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if err := c.InsertAnswer(123456789, models.AnswerTrue, 7); err != nil {
		t.Fatalf("InsertAnswer() error = %v", err)
	}

	if gotForm["user_id"] != "123456789" || gotForm["user_answer"] != "TRUE" || gotForm["question_id"] != "7" {
		t.Errorf("form = %v", gotForm)
	}
}

func TestGetUserStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"user_id":20,"correctly_answered":9,"wrongly_answered":1,"total_answered":10,"percentage_correct":90},` +
			`{"user_id":10,"correctly_answered":1,"wrongly_answered":1,"total_answered":2,"percentage_correct":50}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	results, err := c.GetUserStats()
	if err != nil {
		t.Fatalf("GetUserStats() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].UserID != 20 || results[0].PercentageCorrect != 90 {
		t.Errorf("results[0] = %+v", results[0])
	}
}
