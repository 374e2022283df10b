// Package seed creates demo data for development and testing.
package seed

import (
	"fmt"
	"math/rand"

	"beulynk/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password every seeded account gets.
const DemoPassword = "password123"

// Factory builds domain entities and persists them. Optional override
// functions may modify a generated entity before it is saved.
type Factory struct {
	db           *gorm.DB
	passwordHash string
}

// NewFactory creates a Factory bound to the provided GORM DB. The demo
// password is hashed once and reused so large seeds do not pay bcrypt per user.
func NewFactory(db *gorm.DB) *Factory {
	hash, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	return &Factory{db: db, passwordHash: string(hash)}
}

// CreateUser persists a user with a profile in the given role.
func (f *Factory) CreateUser(role models.Role, overrides ...func(*models.User, *models.Profile)) (*models.User, error) {
	// uuid suffix keeps generated usernames unique across runs
	user := &models.User{
		Username:  fmt.Sprintf("%s_%s", gofakeit.Username(), uuid.NewString()[:8]),
		Email:     gofakeit.Email(),
		Password:  f.passwordHash,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	phone := gofakeit.Phone()
	address := gofakeit.Address().Address
	profile := &models.Profile{
		Role:    role,
		Phone:   &phone,
		Address: &address,
	}

	for _, override := range overrides {
		override(user, profile)
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateVolunteerRequest persists a volunteer application for the user.
func (f *Factory) CreateVolunteerRequest(user *models.User, overrides ...func(*models.VolunteerRequest)) (*models.VolunteerRequest, error) {
	req := &models.VolunteerRequest{
		UserID:       user.ID,
		Skills:       gofakeit.JobTitle() + ", " + gofakeit.Hobby(),
		Availability: randomChoice("weekends", "weekday evenings", "full time", "flexible"),
		Motivation:   gofakeit.Sentence(12),
		Status:       models.VolunteerStatusPending,
	}
	for _, override := range overrides {
		override(req)
	}
	return req, f.db.Create(req).Error
}

// CreateDonorRequest persists a donation pledge for the user.
func (f *Factory) CreateDonorRequest(user *models.User, overrides ...func(*models.DonorRequest)) (*models.DonorRequest, error) {
	amount := fmt.Sprintf("%d.00", gofakeit.Number(5, 500))
	message := gofakeit.Sentence(8)
	req := &models.DonorRequest{
		UserID:       user.ID,
		DonationType: randomChoice(models.DonationOneTime, models.DonationMonthly, models.DonationYearly),
		Amount:       &amount,
		Message:      &message,
		Status:       models.DonorStatusPending,
	}
	for _, override := range overrides {
		override(req)
	}
	return req, f.db.Create(req).Error
}

// CreateHelpRequest persists a help request for the user.
func (f *Factory) CreateHelpRequest(user *models.User, overrides ...func(*models.HelpRequest)) (*models.HelpRequest, error) {
	req := &models.HelpRequest{
		UserID: user.ID,
		Category: randomChoice(models.HelpCategoryFinancial, models.HelpCategoryMedical,
			models.HelpCategoryEducation, models.HelpCategoryFood, models.HelpCategoryShelter),
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		Urgency: randomChoice(models.UrgencyLow, models.UrgencyMedium,
			models.UrgencyHigh, models.UrgencyCritical),
		Status: models.HelpStatusOpen,
	}
	for _, override := range overrides {
		override(req)
	}
	return req, f.db.Create(req).Error
}

// CreatePost persists a geotagged report for the user. Roughly two thirds of
// generated posts come out confirmed so the public feed has content.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	photo := fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	lat := gofakeit.Latitude()
	lon := gofakeit.Longitude()
	post := &models.Post{
		UserID:      user.ID,
		Title:       gofakeit.Sentence(5),
		Description: gofakeit.Paragraph(1, 2, 10, " "),
		Photo:       &photo,
		Latitude:    &lat,
		Longitude:   &lon,
		IsConfirmed: rand.Intn(3) > 0,
	}
	for _, override := range overrides {
		override(post)
	}
	return post, f.db.Create(post).Error
}

func randomChoice(options ...string) string {
	return options[rand.Intn(len(options))]
}
