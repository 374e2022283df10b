package repository

import (
	"context"

	"beulynk/internal/models"

	"gorm.io/gorm"
)

// HelpRepository defines persistence operations for help requests.
type HelpRepository interface {
	Create(ctx context.Context, req *models.HelpRequest) error
	ListByUser(ctx context.Context, userID uint) ([]*models.HelpRequest, error)
}

type helpRepository struct {
	db *gorm.DB
}

// NewHelpRepository returns a new HelpRepository implementation.
func NewHelpRepository(db *gorm.DB) HelpRepository {
	return &helpRepository{db: db}
}

func (r *helpRepository) Create(ctx context.Context, req *models.HelpRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Preload("User").First(req, req.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *helpRepository) ListByUser(ctx context.Context, userID uint) ([]*models.HelpRequest, error) {
	var reqs []*models.HelpRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Find(&reqs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}
