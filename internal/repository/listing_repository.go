package repository

import (
	"context"
	"time"

	"github.com/campusexchange/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingWithSeller is a listing row joined with the seller's display name,
// as served by the public listings feed.
type ListingWithSeller struct {
	ID            uint64
	SellerID      uint64
	Title         string
	Description   string
	Price         int64
	ItemCondition string
	Status        model.ListingStatus
	SellerName    string
	CreatedAt     time.Time
}

type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) error
	ListAvailable(ctx context.Context) ([]ListingWithSeller, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *model.Listing) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(listing).Error
}

func (r *listingRepository) ListAvailable(ctx context.Context) ([]ListingWithSeller, error) {
	var rows []ListingWithSeller
	if err := r.db.WithContext(ctx).
		Model(&model.Listing{}).
		Select("listings.id, listings.seller_id, listings.title, listings.description, listings.price, listings.item_condition, listings.status, listings.created_at, users.full_name AS seller_name").
		Joins("LEFT JOIN users ON users.id = listings.seller_id").
		Where("listings.status = ?", model.ListingStatusAvailable).
		Order("listings.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
