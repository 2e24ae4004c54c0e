package service

import (
	"context"
	"errors"
	"strings"

	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/repository"
)

var ErrAlreadySold = errors.New("listing already sold")
var ErrSelfPurchase = errors.New("cannot purchase your own listing")

const defaultPaymentMethod = "UPI"

type PurchaseService interface {
	Purchase(ctx context.Context, listingID, buyerID uint64, amount int64, paymentMethod string) (*model.Transaction, error)
}

type purchaseService struct {
	txnRepo repository.TransactionRepository
}

func NewPurchaseService(txnRepo repository.TransactionRepository) PurchaseService {
	return &purchaseService{txnRepo: txnRepo}
}

// Purchase validates the request and delegates the locked check-then-write
// sequence to the repository. All listing-state checks happen inside the
// repository's database transaction, under the row lock; nothing is decided
// from a stale read here.
func (s *purchaseService) Purchase(ctx context.Context, listingID, buyerID uint64, amount int64, paymentMethod string) (*model.Transaction, error) {
	if listingID == 0 {
		return nil, invalidf("listing is required")
	}
	if buyerID == 0 {
		return nil, invalidf("buyer is required")
	}
	if amount <= 0 {
		return nil, invalidf("invalid amount")
	}
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	txn, err := s.txnRepo.Purchase(ctx, listingID, buyerID, amount, paymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrListingNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrListingSold):
			return nil, ErrAlreadySold
		case errors.Is(err, repository.ErrSelfPurchase):
			return nil, ErrSelfPurchase
		}
		return nil, err
	}
	return txn, nil
}
