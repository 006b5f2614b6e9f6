package quizui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learningplatform/internal/models"
	"learningplatform/internal/quiz"
)

func TestReportClientSubmitsResult(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer server.Close()

	client := NewReportClient(server.URL, "test-token")
	result := &quiz.Result{Course: models.CoursePython, Score: 3, TotalQuestions: 5}

	if err := client.Submit(result); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}
	if gotBody["course"] != "python" {
		t.Errorf("expected course 'python', got %v", gotBody["course"])
	}
	if gotBody["score"] != float64(3) {
		t.Errorf("expected score 3, got %v", gotBody["score"])
	}
}

func TestReportClientRetriesOnce(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer server.Close()

	client := NewReportClient(server.URL, "test-token")
	result := &quiz.Result{Course: models.CourseWeb, Score: 5, TotalQuestions: 5}

	if err := client.Submit(result); err != nil {
		t.Fatalf("Submit should succeed on retry, got: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
}

func TestReportClientGivesUpAfterRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewReportClient(server.URL, "bad-token")
	result := &quiz.Result{Course: models.CourseDatabase, Score: 0, TotalQuestions: 5}

	if err := client.Submit(result); err == nil {
		t.Fatal("expected an error after both attempts fail")
	}
	if calls != 2 {
		t.Errorf("expected 2 attempts, got %d", calls)
	}
}
