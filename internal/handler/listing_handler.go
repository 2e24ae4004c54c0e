package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/campusexchange/backend/internal/repository"
	"github.com/campusexchange/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

type CreateListingRequest struct {
	SellerID      uint64 `json:"sellerId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	ItemCondition string `json:"itemCondition"`
}

type CreateListingResponse struct {
	Message   string `json:"message"`
	ListingID uint64 `json:"listingId"`
}

type ListingResponse struct {
	ID            uint64 `json:"id"`
	SellerID      uint64 `json:"sellerId"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	ItemCondition string `json:"itemCondition"`
	Status        string `json:"status"`
	SellerName    string `json:"sellerName"`
	CreatedAt     string `json:"createdAt"`
}

func (h *ListingHandler) Create(c echo.Context) error {
	var req CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.SellerID == 0 || req.Title == "" || req.Price == 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "missing fields"))
	}
	listing, err := h.svc.Create(c.Request().Context(), req.SellerID, req.Title, req.Description, req.Price, req.ItemCondition)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", ve.Reason))
		}
		c.Logger().Errorf("create listing seller=%d: %v", req.SellerID, err)
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to create listing"))
	}
	return c.JSON(http.StatusCreated, CreateListingResponse{Message: "listing added", ListingID: listing.ID})
}

func (h *ListingHandler) List(c echo.Context) error {
	rows, err := h.svc.ListAvailable(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch listings"))
	}
	resp := make([]ListingResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, toListingResponse(&rows[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toListingResponse(row *repository.ListingWithSeller) ListingResponse {
	return ListingResponse{
		ID:            row.ID,
		SellerID:      row.SellerID,
		Title:         row.Title,
		Description:   row.Description,
		Price:         row.Price,
		ItemCondition: row.ItemCondition,
		Status:        string(row.Status),
		SellerName:    row.SellerName,
		CreatedAt:     row.CreatedAt.Format(time.RFC3339),
	}
}
