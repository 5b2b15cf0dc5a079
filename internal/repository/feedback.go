package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines persistence operations for feedback records.
// Feedback is append-only; there is no update or delete.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *models.Feedback) error
	List(ctx context.Context) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository returns a new FeedbackRepository implementation.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *models.Feedback) error {
	if err := r.db.WithContext(ctx).Create(fb).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	var items []models.Feedback
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
