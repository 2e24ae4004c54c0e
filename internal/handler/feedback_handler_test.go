package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/repository"
	"github.com/campusexchange/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type stubFeedbackService struct {
	fb     *model.Feedback
	rows   []repository.FeedbackWithNames
	avg    float64
	err    error
	called bool
}

func (s *stubFeedbackService) Create(_ context.Context, _, _ uint64, _ *uint64, _ int, _ string) (*model.Feedback, error) {
	s.called = true
	return s.fb, s.err
}

func (s *stubFeedbackService) ListForUser(_ context.Context, _ uint64) ([]repository.FeedbackWithNames, error) {
	return s.rows, s.err
}

func (s *stubFeedbackService) AverageRating(_ context.Context, _ uint64) (float64, error) {
	return s.avg, s.err
}

func getWithParam(h echo.HandlerFunc, path, id string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	_ = h(c)
	return rec
}

func TestFeedbackHandlerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &stubFeedbackService{fb: &model.Feedback{ID: 5}}
		rec := postJSON(NewFeedbackHandler(stub).Create, "/feedback", `{"fromUserId":3,"toUserId":2,"listingId":7,"rating":5,"comments":"great"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"feedbackId":5`) {
			t.Fatalf("body missing feedback id: %s", rec.Body.String())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		stub := &stubFeedbackService{}
		rec := postJSON(NewFeedbackHandler(stub).Create, "/feedback", `{"fromUserId":3}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if stub.called {
			t.Fatal("service must not be called for invalid input")
		}
	})

	t.Run("validation error", func(t *testing.T) {
		stub := &stubFeedbackService{err: &service.ValidationError{Reason: "rating must be between 1 and 5"}}
		rec := postJSON(NewFeedbackHandler(stub).Create, "/feedback", `{"fromUserId":3,"toUserId":2,"rating":9}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "rating must be between 1 and 5") {
			t.Fatalf("body missing validation reason: %s", rec.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		stub := &stubFeedbackService{err: errors.New("driver: connection reset by peer")}
		rec := postJSON(NewFeedbackHandler(stub).Create, "/feedback", `{"fromUserId":3,"toUserId":2,"rating":5}`)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "connection reset") {
			t.Fatalf("storage detail leaked to client: %s", rec.Body.String())
		}
	})
}

func TestFeedbackHandlerListForSeller(t *testing.T) {
	stub := &stubFeedbackService{rows: []repository.FeedbackWithNames{
		{ID: 1, Rating: 5, Comments: "great", SenderName: "Rohit", ListingTitle: "Desk lamp", CreatedAt: time.Now()},
	}}
	rec := getWithParam(NewFeedbackHandler(stub).ListForSeller, "/feedback/seller/2", "2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, want := range []string{`"senderName":"Rohit"`, `"listingTitle":"Desk lamp"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("body %s missing %s", rec.Body.String(), want)
		}
	}

	if rec := getWithParam(NewFeedbackHandler(stub).ListForSeller, "/feedback/seller/abc", "abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id status = %d, want 400", rec.Code)
	}
}

func TestFeedbackHandlerRating(t *testing.T) {
	stub := &stubFeedbackService{avg: 4.5}
	rec := getWithParam(NewFeedbackHandler(stub).Rating, "/rating/2", "2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"avgRating":4.5`) {
		t.Fatalf("body missing average: %s", rec.Body.String())
	}
}
