package repository

import (
	"context"
	"errors"

	"beulynk/internal/cache"
	"beulynk/internal/models"

	"gorm.io/gorm"
)

// NGOInfoRepository reads and provisions the organization record.
type NGOInfoRepository interface {
	First(ctx context.Context) (*models.NGOInfo, error)
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, info *models.NGOInfo) error
}

type ngoInfoRepository struct {
	db *gorm.DB
}

// NewNGOInfoRepository returns a new NGOInfoRepository implementation.
func NewNGOInfoRepository(db *gorm.DB) NGOInfoRepository {
	return &ngoInfoRepository{db: db}
}

// First returns the first NGOInfo row, or (nil, nil) when the deployment has
// not been provisioned yet. The row is served cache-aside since it backs the
// hottest public endpoint and changes only through cmd/initngo.
func (r *ngoInfoRepository) First(ctx context.Context) (*models.NGOInfo, error) {
	var info models.NGOInfo
	err := cache.Aside(ctx, cache.NGOInfoKey, &info, cache.NGOInfoTTL, func() error {
		return r.db.WithContext(ctx).Order("id").First(&info).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &info, nil
}

func (r *ngoInfoRepository) Exists(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.NGOInfo{}).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *ngoInfoRepository) Create(ctx context.Context, info *models.NGOInfo) error {
	if err := r.db.WithContext(ctx).Create(info).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateNGOInfo(ctx)
	return nil
}
