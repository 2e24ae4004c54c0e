package service

import (
	"context"
	"errors"
	"strings"

	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/repository"
)

var ErrNotFound = errors.New("not found")

const defaultCondition = "Good"

type ListingService interface {
	Create(ctx context.Context, sellerID uint64, title, description string, price int64, condition string) (*model.Listing, error)
	ListAvailable(ctx context.Context) ([]repository.ListingWithSeller, error)
}

type listingService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewListingService(listingRepo repository.ListingRepository, userRepo repository.UserRepository) ListingService {
	return &listingService{listingRepo: listingRepo, userRepo: userRepo}
}

func (s *listingService) Create(ctx context.Context, sellerID uint64, title, description string, price int64, condition string) (*model.Listing, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	condition = strings.TrimSpace(condition)
	if sellerID == 0 {
		return nil, invalidf("seller is required")
	}
	if title == "" || len(title) > 120 {
		return nil, invalidf("invalid title")
	}
	if price <= 0 {
		return nil, invalidf("invalid price")
	}
	if condition == "" {
		condition = defaultCondition
	}
	ok, err := s.userRepo.Exists(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, invalidf("unknown seller")
	}

	listing := &model.Listing{
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		Price:         price,
		ItemCondition: condition,
		Status:        model.ListingStatusAvailable,
	}
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *listingService) ListAvailable(ctx context.Context) ([]repository.ListingWithSeller, error) {
	return s.listingRepo.ListAvailable(ctx)
}
