// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role identifies which side of the platform a user registered for. The role
// is stored and echoed back in responses but is never an authorization input.
type Role string

const (
	RoleVolunteer  Role = "volunteer"
	RoleDonor      Role = "donor"
	RoleHelpSeeker Role = "help_seeker"
)

// ValidRole reports whether r is one of the registration roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleVolunteer, RoleDonor, RoleHelpSeeker:
		return true
	}
	return false
}

// User represents a registered account on the BEULYNK platform.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Profile   *Profile       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
}

// UserSummary is the compact user representation nested inside other payloads.
type UserSummary struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Summary returns the denormalized user object embedded in responses.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Profile extends a User with outreach-specific fields. Exactly one profile
// exists per user; it is created in the same transaction as the user.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"-"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	Phone     *string   `gorm:"size:20" json:"phone"`
	Address   *string   `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfilePayload is the profile representation returned by the profile endpoint.
type ProfilePayload struct {
	ID        uint        `json:"id"`
	User      UserSummary `json:"user"`
	Role      Role        `json:"role"`
	Phone     *string     `json:"phone"`
	Address   *string     `json:"address"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Payload builds the serialized profile with its owning user nested.
func (p *Profile) Payload(u *User) ProfilePayload {
	return ProfilePayload{
		ID:        p.ID,
		User:      u.Summary(),
		Role:      p.Role,
		Phone:     p.Phone,
		Address:   p.Address,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
