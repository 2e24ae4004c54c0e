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

type stubListingService struct {
	listing *model.Listing
	rows    []repository.ListingWithSeller
	err     error
	called  bool
}

func (s *stubListingService) Create(_ context.Context, _ uint64, _, _ string, _ int64, _ string) (*model.Listing, error) {
	s.called = true
	return s.listing, s.err
}

func (s *stubListingService) ListAvailable(_ context.Context) ([]repository.ListingWithSeller, error) {
	return s.rows, s.err
}

func TestListingHandlerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		stub := &stubListingService{listing: &model.Listing{ID: 4}}
		rec := postJSON(NewListingHandler(stub).Create, "/add-listing", `{"sellerId":2,"title":"Desk lamp","price":300}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"listingId":4`) {
			t.Fatalf("body missing listing id: %s", rec.Body.String())
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		stub := &stubListingService{}
		rec := postJSON(NewListingHandler(stub).Create, "/add-listing", `{"title":"Desk lamp"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if stub.called {
			t.Fatal("service must not be called for invalid input")
		}
	})

	t.Run("validation error", func(t *testing.T) {
		stub := &stubListingService{err: &service.ValidationError{Reason: "unknown seller"}}
		rec := postJSON(NewListingHandler(stub).Create, "/add-listing", `{"sellerId":99,"title":"Desk lamp","price":300}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "unknown seller") {
			t.Fatalf("body missing validation reason: %s", rec.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		stub := &stubListingService{err: errors.New("driver: connection reset by peer")}
		rec := postJSON(NewListingHandler(stub).Create, "/add-listing", `{"sellerId":2,"title":"Desk lamp","price":300}`)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "connection reset") {
			t.Fatalf("storage detail leaked to client: %s", rec.Body.String())
		}
	})
}

func TestListingHandlerList(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		stub := &stubListingService{rows: []repository.ListingWithSeller{
			{ID: 1, SellerID: 2, Title: "Desk lamp", Price: 300, ItemCondition: "Good", Status: model.ListingStatusAvailable, SellerName: "Asha", CreatedAt: time.Now()},
		}}
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		rec := httptest.NewRecorder()
		_ = NewListingHandler(stub).List(e.NewContext(req, rec))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"sellerName":"Asha"`) {
			t.Fatalf("body missing seller name: %s", rec.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		stub := &stubListingService{err: errors.New("connection reset")}
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/listings", nil)
		rec := httptest.NewRecorder()
		_ = NewListingHandler(stub).List(e.NewContext(req, rec))
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "connection reset") {
			t.Fatalf("storage detail leaked to client: %s", rec.Body.String())
		}
	})
}
