package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/campusexchange/backend/internal/repository"
	"github.com/campusexchange/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct {
	svc service.FeedbackService
}

func NewFeedbackHandler(svc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

type CreateFeedbackRequest struct {
	FromUserID uint64  `json:"fromUserId"`
	ToUserID   uint64  `json:"toUserId"`
	ListingID  *uint64 `json:"listingId"`
	Rating     int     `json:"rating"`
	Comments   string  `json:"comments"`
}

type CreateFeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID uint64 `json:"feedbackId"`
}

type FeedbackResponse struct {
	ID           uint64 `json:"id"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
	SenderName   string `json:"senderName"`
	ListingTitle string `json:"listingTitle"`
	CreatedAt    string `json:"createdAt"`
}

type RatingResponse struct {
	AvgRating float64 `json:"avgRating"`
}

func (h *FeedbackHandler) Create(c echo.Context) error {
	var req CreateFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.FromUserID == 0 || req.ToUserID == 0 || req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "missing fields"))
	}
	fb, err := h.svc.Create(c.Request().Context(), req.FromUserID, req.ToUserID, req.ListingID, req.Rating, req.Comments)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", ve.Reason))
		}
		c.Logger().Errorf("create feedback from=%d to=%d: %v", req.FromUserID, req.ToUserID, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to save feedback"))
	}
	return c.JSON(http.StatusCreated, CreateFeedbackResponse{Message: "feedback saved", FeedbackID: fb.ID})
}

func (h *FeedbackHandler) ListForSeller(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid user id"))
	}
	rows, err := h.svc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch feedback"))
	}
	resp := make([]FeedbackResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, toFeedbackResponse(&rows[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *FeedbackHandler) Rating(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid user id"))
	}
	avg, err := h.svc.AverageRating(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch rating"))
	}
	return c.JSON(http.StatusOK, RatingResponse{AvgRating: avg})
}

func toFeedbackResponse(row *repository.FeedbackWithNames) FeedbackResponse {
	return FeedbackResponse{
		ID:           row.ID,
		Rating:       row.Rating,
		Comments:     row.Comments,
		SenderName:   row.SenderName,
		ListingTitle: row.ListingTitle,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
}
