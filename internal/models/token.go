package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// AuthToken is an opaque bearer credential tied to exactly one user. The
// unique index on UserID enforces the at-most-one-live-token invariant at
// the storage layer; issuing a new token first deletes the previous row.
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:40" json:"-"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// NewTokenKey returns a 40-character hex credential with no embedded claims.
func NewTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
