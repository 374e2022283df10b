package models

import "time"

// NGOInfo holds the organization's public record. Only one row is expected
// operationally; reads take the first row. Provisioned out-of-band by
// cmd/initngo, read-only through the API.
type NGOInfo struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:200;not null" json:"name"`
	FullName          string    `gorm:"size:200;not null" json:"full_name"`
	Tagline           string    `gorm:"size:500" json:"tagline"`
	Mission           string    `gorm:"type:text" json:"mission"`
	Description       string    `gorm:"type:text" json:"description"`
	Email             string    `gorm:"not null" json:"email"`
	Phone             string    `gorm:"size:20" json:"phone"`
	Address           string    `gorm:"type:text" json:"address"`
	FacebookURL       *string   `json:"facebook_url"`
	TwitterURL        *string   `json:"twitter_url"`
	InstagramURL      *string   `json:"instagram_url"`
	LinkedinURL       *string   `json:"linkedin_url"`
	LivesImpacted     int       `gorm:"default:0" json:"lives_impacted"`
	ActiveDonors      int       `gorm:"default:0" json:"active_donors"`
	CommunitiesServed int       `gorm:"default:0" json:"communities_served"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
