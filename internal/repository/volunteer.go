package repository

import (
	"context"

	"beulynk/internal/models"

	"gorm.io/gorm"
)

// VolunteerRepository defines persistence operations for volunteer requests.
type VolunteerRepository interface {
	Create(ctx context.Context, req *models.VolunteerRequest) error
	ListByUser(ctx context.Context, userID uint) ([]*models.VolunteerRequest, error)
}

type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository returns a new VolunteerRepository implementation.
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, req *models.VolunteerRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	// Reload with the owning user for serialization.
	if err := r.db.WithContext(ctx).Preload("User").First(req, req.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *volunteerRepository) ListByUser(ctx context.Context, userID uint) ([]*models.VolunteerRequest, error) {
	var reqs []*models.VolunteerRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Find(&reqs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}
