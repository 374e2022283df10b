package repository

import (
	"context"

	"beulynk/internal/models"

	"gorm.io/gorm"
)

// ContactRepository persists anonymous contact-form submissions. Reading and
// triaging messages is an external moderation concern; no read path exists.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository returns a new ContactRepository implementation.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
