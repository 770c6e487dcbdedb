package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/traintrack/training-api/internal/core/domain"
)

type stubTrainingService struct {
	reply    string
	chatErr  error
	gotMsg   string
	sessions []domain.Training
}

func (s *stubTrainingService) Chat(ctx context.Context, userID, message string) (string, error) {
	s.gotMsg = message
	if s.chatErr != nil {
		return "", s.chatErr
	}
	return s.reply, nil
}

func (s *stubTrainingService) List(ctx context.Context, userID string) ([]domain.Training, error) {
	return s.sessions, nil
}

func newTrainingTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-1")
	return c, rec
}

func TestTrainingHandler_Chat(t *testing.T) {
	stub := &stubTrainingService{reply: "Focus on your breathing between sets."}
	h := NewTrainingHandler(stub)

	c, rec := newTrainingTestContext(t, http.MethodPost, "/api/chat", `{"message":"How do I pace my workout?"}`)
	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != stub.reply {
		t.Fatalf("unexpected reply: %q", resp["message"])
	}
	if stub.gotMsg != "How do I pace my workout?" {
		t.Fatalf("service got wrong message: %q", stub.gotMsg)
	}
}

func TestTrainingHandler_Chat_MissingMessage(t *testing.T) {
	stub := &stubTrainingService{}
	h := NewTrainingHandler(stub)

	c, rec := newTrainingTestContext(t, http.MethodPost, "/api/chat", `{}`)
	_ = h.Chat(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTrainingHandler_Chat_UpstreamError(t *testing.T) {
	stub := &stubTrainingService{chatErr: domain.ErrUpstream}
	h := NewTrainingHandler(stub)

	c, _ := newTrainingTestContext(t, http.MethodPost, "/api/chat", `{"message":"hello"}`)
	if err := h.Chat(c); err != domain.ErrUpstream {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestTrainingHandler_List(t *testing.T) {
	stub := &stubTrainingService{sessions: []domain.Training{
		{ID: "t-2", UserID: "user-1", Title: "Training Session", CreatedAt: time.Now()},
		{ID: "t-1", UserID: "user-1", Title: "Training Session", CreatedAt: time.Now().Add(-time.Hour)},
	}}
	h := NewTrainingHandler(stub)

	c, rec := newTrainingTestContext(t, http.MethodGet, "/api/trainings", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string][]domain.Training
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	got := resp["trainings"]
	if len(got) != 2 || got[0].ID != "t-2" {
		t.Fatalf("unexpected history: %+v", got)
	}
}

func TestTrainingHandler_List_EmptyHistory(t *testing.T) {
	h := NewTrainingHandler(&stubTrainingService{})

	c, rec := newTrainingTestContext(t, http.MethodGet, "/api/trainings", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := strings.TrimSpace(rec.Body.String())
	if body != `{"trainings":[]}` {
		t.Fatalf("expected empty array, got %s", body)
	}
}
