package models

import "time"

// Post is a geotagged problem report submitted by a user. Photo and Video
// hold opaque path references; the storage mechanism is external. IsConfirmed
// gates visibility on the public map and is flipped only through the external
// moderation surface, never through this API.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Photo       *string   `json:"photo"`
	Video       *string   `json:"video"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	IsConfirmed bool      `gorm:"not null;default:false" json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PostPayload is the serialized post with its owner nested.
type PostPayload struct {
	ID          uint        `json:"id"`
	User        UserSummary `json:"user"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Photo       *string     `json:"photo"`
	Video       *string     `json:"video"`
	Latitude    *float64    `json:"latitude"`
	Longitude   *float64    `json:"longitude"`
	IsConfirmed bool        `json:"is_confirmed"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Payload builds the serialized form of the post.
func (p *Post) Payload() PostPayload {
	return PostPayload{
		ID:          p.ID,
		User:        p.User.Summary(),
		Title:       p.Title,
		Description: p.Description,
		Photo:       p.Photo,
		Video:       p.Video,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		IsConfirmed: p.IsConfirmed,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Payloads serializes a slice of posts, returning an empty (non-nil) slice
// for empty input so listings marshal as [] rather than null.
func Payloads(posts []*Post) []PostPayload {
	out := make([]PostPayload, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Payload())
	}
	return out
}
