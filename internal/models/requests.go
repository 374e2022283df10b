package models

import "time"

// Volunteer request statuses. Status is server-controlled: clients can never
// set it and no transition is exposed through the public API.
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
)

// Donation types and donor request statuses.
const (
	DonationOneTime = "one_time"
	DonationMonthly = "monthly"
	DonationYearly  = "yearly"

	DonorStatusPending   = "pending"
	DonorStatusCompleted = "completed"
	DonorStatusFailed    = "failed"
)

// Help request categories, urgencies and statuses.
const (
	HelpCategoryFinancial = "financial"
	HelpCategoryMedical   = "medical"
	HelpCategoryEducation = "education"
	HelpCategoryFood      = "food"
	HelpCategoryShelter   = "shelter"
	HelpCategoryOther     = "other"

	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"

	HelpStatusOpen       = "open"
	HelpStatusInProgress = "in_progress"
	HelpStatusFulfilled  = "fulfilled"
	HelpStatusClosed     = "closed"
)

// ValidDonationType reports whether t is a known donation type.
func ValidDonationType(t string) bool {
	switch t {
	case DonationOneTime, DonationMonthly, DonationYearly:
		return true
	}
	return false
}

// ValidHelpCategory reports whether c is a known help category.
func ValidHelpCategory(c string) bool {
	switch c {
	case HelpCategoryFinancial, HelpCategoryMedical, HelpCategoryEducation,
		HelpCategoryFood, HelpCategoryShelter, HelpCategoryOther:
		return true
	}
	return false
}

// ValidUrgency reports whether u is a known urgency level.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// VolunteerRequest is a volunteer application submitted by a user.
type VolunteerRequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"-"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Skills       string    `gorm:"type:text;not null" json:"skills"`
	Availability string    `gorm:"size:200;not null" json:"availability"`
	Motivation   string    `gorm:"type:text;not null" json:"motivation"`
	Status       string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VolunteerRequestPayload is the serialized volunteer request with its owner nested.
type VolunteerRequestPayload struct {
	ID           uint        `json:"id"`
	User         UserSummary `json:"user"`
	Skills       string      `json:"skills"`
	Availability string      `json:"availability"`
	Motivation   string      `json:"motivation"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Payload builds the serialized form of the request.
func (v *VolunteerRequest) Payload() VolunteerRequestPayload {
	return VolunteerRequestPayload{
		ID:           v.ID,
		User:         v.User.Summary(),
		Skills:       v.Skills,
		Availability: v.Availability,
		Motivation:   v.Motivation,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// DonorRequest records a donation pledge submitted by a user.
type DonorRequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"-"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	DonationType string    `gorm:"size:50;not null" json:"donation_type"`
	Amount       *string   `gorm:"type:decimal(10,2)" json:"amount"`
	Message      *string   `gorm:"type:text" json:"message"`
	Status       string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DonorRequestPayload is the serialized donor request with its owner nested.
type DonorRequestPayload struct {
	ID           uint        `json:"id"`
	User         UserSummary `json:"user"`
	DonationType string      `json:"donation_type"`
	Amount       *string     `json:"amount"`
	Message      *string     `json:"message"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Payload builds the serialized form of the request.
func (d *DonorRequest) Payload() DonorRequestPayload {
	return DonorRequestPayload{
		ID:           d.ID,
		User:         d.User.Summary(),
		DonationType: d.DonationType,
		Amount:       d.Amount,
		Message:      d.Message,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// HelpRequest is a request for assistance submitted by a person in need.
type HelpRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"-"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Urgency     string    `gorm:"size:20;not null;default:medium" json:"urgency"`
	Status      string    `gorm:"size:20;not null;default:open" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HelpRequestPayload is the serialized help request with its owner nested.
type HelpRequestPayload struct {
	ID          uint        `json:"id"`
	User        UserSummary `json:"user"`
	Category    string      `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Urgency     string      `json:"urgency"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Payload builds the serialized form of the request.
func (h *HelpRequest) Payload() HelpRequestPayload {
	return HelpRequestPayload{
		ID:          h.ID,
		User:        h.User.Summary(),
		Category:    h.Category,
		Title:       h.Title,
		Description: h.Description,
		Urgency:     h.Urgency,
		Status:      h.Status,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
