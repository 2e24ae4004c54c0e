package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/service"
	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct {
	svc service.PurchaseService
}

func NewPurchaseHandler(svc service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

type PurchaseRequest struct {
	ListingID     uint64 `json:"listingId"`
	BuyerID       uint64 `json:"buyerId"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
}

type PurchaseResponse struct {
	Message       string `json:"message"`
	TransactionID uint64 `json:"transactionId"`
	Reference     string `json:"reference"`
	ListingID     uint64 `json:"listingId"`
	BuyerID       uint64 `json:"buyerId"`
	SellerID      uint64 `json:"sellerId"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"paymentMethod"`
	CreatedAt     string `json:"createdAt"`
}

func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.ListingID == 0 || req.BuyerID == 0 || req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "missing fields"))
	}
	txn, err := h.svc.Purchase(c.Request().Context(), req.ListingID, req.BuyerID, req.Amount, req.PaymentMethod)
	if err != nil {
		switch err {
		case service.ErrNotFound:
			return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "listing not found"))
		case service.ErrAlreadySold:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("already_sold", "listing already sold"))
		case service.ErrSelfPurchase:
			return c.JSON(http.StatusBadRequest, NewErrorResponse("self_purchase", "cannot purchase your own listing"))
		default:
			var ve *service.ValidationError
			if errors.As(err, &ve) {
				return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", ve.Reason))
			}
			// Storage failures roll the whole purchase back; the caller only
			// sees a generic error, detail goes to the request log.
			c.Logger().Errorf("purchase listing=%d buyer=%d: %v", req.ListingID, req.BuyerID, err)
			return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "purchase failed"))
		}
	}
	return c.JSON(http.StatusCreated, toPurchaseResponse(txn))
}

func toPurchaseResponse(t *model.Transaction) PurchaseResponse {
	return PurchaseResponse{
		Message:       "purchase successful",
		TransactionID: t.ID,
		Reference:     t.Reference,
		ListingID:     t.ListingID,
		BuyerID:       t.BuyerID,
		SellerID:      t.SellerID,
		Amount:        t.Amount,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
