// Command initngo provisions the organization's public record. It is the only
// writer of that record; the API serves it read-only. Running it again against
// a provisioned database is a no-op.
package main

import (
	"context"
	"log"

	"beulynk/internal/config"
	"beulynk/internal/database"
	"beulynk/internal/models"
	"beulynk/internal/repository"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewNGOInfoRepository(db)

	exists, err := repo.Exists(ctx)
	if err != nil {
		log.Fatalf("Failed to check NGO information: %v", err)
	}
	if exists {
		log.Println("NGO information already exists")
		return
	}

	info := &models.NGOInfo{
		Name:     "BEULYNK",
		FullName: "Beulah Humanity Reconciliation",
		Tagline:  "Unity through connection",
		Mission: "BEULYNK is dedicated to fostering unity and connection among communities. " +
			"Through innovative technology and compassionate outreach, we bridge gaps and " +
			"create meaningful relationships that transform lives.",
		Description: "We are a non-profit organization committed to humanitarian work, " +
			"community development, and social reconciliation. Our platform connects " +
			"volunteers, donors, and communities to create lasting positive impact.",
		Email:             "contact@beulynk.org",
		Phone:             "+1 (555) 123-4567",
		Address:           "Global Headquarters, Humanitarian District",
		FacebookURL:       strPtr("https://facebook.com/beulynk"),
		TwitterURL:        strPtr("https://twitter.com/beulynk"),
		InstagramURL:      strPtr("https://instagram.com/beulynk"),
		LinkedinURL:       strPtr("https://linkedin.com/company/beulynk"),
		LivesImpacted:     10000,
		ActiveDonors:      500,
		CommunitiesServed: 50,
	}
	if err := repo.Create(ctx, info); err != nil {
		log.Fatalf("Failed to create NGO information: %v", err)
	}

	log.Printf("Successfully created NGO information: %s", info.Name)
}
