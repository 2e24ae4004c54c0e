package service

import (
	"context"
	"strings"

	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/repository"
)

type FeedbackService interface {
	Create(ctx context.Context, fromUserID, toUserID uint64, listingID *uint64, rating int, comments string) (*model.Feedback, error)
	ListForUser(ctx context.Context, userID uint64) ([]repository.FeedbackWithNames, error)
	AverageRating(ctx context.Context, userID uint64) (float64, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, userRepo repository.UserRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, userRepo: userRepo}
}

func (s *feedbackService) Create(ctx context.Context, fromUserID, toUserID uint64, listingID *uint64, rating int, comments string) (*model.Feedback, error) {
	if fromUserID == 0 || toUserID == 0 {
		return nil, invalidf("sender and recipient are required")
	}
	if fromUserID == toUserID {
		return nil, invalidf("cannot leave feedback for yourself")
	}
	if rating < 1 || rating > 5 {
		return nil, invalidf("rating must be between 1 and 5")
	}
	for _, id := range []uint64{fromUserID, toUserID} {
		ok, err := s.userRepo.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, invalidf("unknown user")
		}
	}

	fb := &model.Feedback{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		ListingID:  listingID,
		Rating:     rating,
		Comments:   strings.TrimSpace(comments),
	}
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *feedbackService) ListForUser(ctx context.Context, userID uint64) ([]repository.FeedbackWithNames, error) {
	return s.feedbackRepo.ListForUser(ctx, userID)
}

func (s *feedbackService) AverageRating(ctx context.Context, userID uint64) (float64, error) {
	return s.feedbackRepo.AverageRating(ctx, userID)
}
