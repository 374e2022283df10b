package repository

import (
	"context"

	"beulynk/internal/models"

	"gorm.io/gorm"
)

// DonorRepository defines persistence operations for donor requests.
type DonorRepository interface {
	Create(ctx context.Context, req *models.DonorRequest) error
	ListByUser(ctx context.Context, userID uint) ([]*models.DonorRequest, error)
}

type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository returns a new DonorRepository implementation.
func NewDonorRepository(db *gorm.DB) DonorRepository {
	return &donorRepository{db: db}
}

func (r *donorRepository) Create(ctx context.Context, req *models.DonorRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).Preload("User").First(req, req.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *donorRepository) ListByUser(ctx context.Context, userID uint) ([]*models.DonorRequest, error) {
	var reqs []*models.DonorRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Find(&reqs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}
