package repository

import (
	"context"
	"errors"

	"github.com/campusexchange/backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingSold     = errors.New("listing already sold")
	ErrSelfPurchase    = errors.New("buyer owns the listing")
)

type TransactionRepository interface {
	// Purchase atomically records the sale of a listing. It locks the listing
	// row, re-checks its state under the lock, inserts the transaction and
	// flips the listing to Sold in one database transaction. Any precondition
	// failure rolls the whole unit back.
	Purchase(ctx context.Context, listingID, buyerID uint64, amount int64, paymentMethod string) (*model.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Purchase(ctx context.Context, listingID, buyerID uint64, amount int64, paymentMethod string) (*model.Transaction, error) {
	txn := &model.Transaction{
		ListingID:     listingID,
		BuyerID:       buyerID,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		Reference:     uuid.NewString(),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing model.Listing
		// SELECT ... FOR UPDATE serializes concurrent purchases of the same
		// listing; the second attempt blocks here until the first commits.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&listing, listingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return err
		}
		if listing.Status == model.ListingStatusSold {
			return ErrListingSold
		}
		if listing.SellerID == buyerID {
			return ErrSelfPurchase
		}
		txn.SellerID = listing.SellerID
		if err := tx.Omit(clause.Associations).Create(txn).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Listing{}).
			Where("id = ? AND status = ?", listingID, model.ListingStatusAvailable).
			Update("status", model.ListingStatusSold)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrListingSold
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}
