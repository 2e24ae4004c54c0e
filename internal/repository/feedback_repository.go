package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campusexchange/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeedbackWithNames is a feedback row joined with the sender's display name
// and the title of the listing it refers to, when any.
type FeedbackWithNames struct {
	ID           uint64
	Rating       int
	Comments     string
	SenderName   string
	ListingTitle string
	CreatedAt    time.Time
}

type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
	ListForUser(ctx context.Context, userID uint64) ([]FeedbackWithNames, error)
	AverageRating(ctx context.Context, userID uint64) (float64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(fb).Error
}

func (r *feedbackRepository) ListForUser(ctx context.Context, userID uint64) ([]FeedbackWithNames, error) {
	var rows []FeedbackWithNames
	if err := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Select("feedback.id, feedback.rating, feedback.comments, users.full_name AS sender_name, listings.title AS listing_title, feedback.created_at").
		Joins("LEFT JOIN users ON users.id = feedback.from_user_id").
		Joins("LEFT JOIN listings ON listings.id = feedback.listing_id").
		Where("feedback.to_user_id = ?", userID).
		Order("feedback.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedbackRepository) AverageRating(ctx context.Context, userID uint64) (float64, error) {
	var row struct {
		Avg sql.NullFloat64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Select("AVG(rating) AS avg").
		Where("to_user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.Avg.Float64, nil
}
