package repository

import (
	"context"
	"errors"

	"beulynk/internal/models"

	"gorm.io/gorm"
)

// TokenRepository manages the opaque bearer credentials. A user holds at most
// one live token at any time.
type TokenRepository interface {
	Issue(ctx context.Context, userID uint) (*models.AuthToken, error)
	Resolve(ctx context.Context, key string) (*models.User, error)
	Revoke(ctx context.Context, key string) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns a new TokenRepository implementation.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Issue replaces any previously issued token for the user with a fresh one.
// The delete and create run in one transaction so concurrent logins for the
// same user serialize on the user_id unique index and the invariant holds.
func (r *tokenRepository) Issue(ctx context.Context, userID uint) (*models.AuthToken, error) {
	key, err := models.NewTokenKey()
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	token := &models.AuthToken{Key: key, UserID: userID}
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return token, nil
}

// Resolve maps a presented credential to its user. Returns (nil, nil) when
// the token does not exist; the caller decides how to reject.
func (r *tokenRepository) Resolve(ctx context.Context, key string) (*models.User, error) {
	var token models.AuthToken
	err := r.db.WithContext(ctx).Preload("User").Where("key = ?", key).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &token.User, nil
}

func (r *tokenRepository) Revoke(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.AuthToken{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
