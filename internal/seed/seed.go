package seed

import (
	"fmt"
	"log"
	"math/rand"

	"beulynk/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with demo users, their role-specific requests
// and a geotagged post feed.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := ClearAll(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	factory := NewFactory(db)
	roles := []models.Role{models.RoleVolunteer, models.RoleDonor, models.RoleHelpSeeker}

	users := make([]*models.User, 0, opts.NumUsers)
	byRole := map[models.Role][]*models.User{}
	for i := 0; i < opts.NumUsers; i++ {
		role := roles[i%len(roles)]
		user, err := factory.CreateUser(role)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
		byRole[role] = append(byRole[role], user)
	}
	log.Printf("%d users created", len(users))

	// Each user files a request matching their role.
	for _, u := range byRole[models.RoleVolunteer] {
		if _, err := factory.CreateVolunteerRequest(u); err != nil {
			return fmt.Errorf("failed to create volunteer request: %w", err)
		}
	}
	for _, u := range byRole[models.RoleDonor] {
		if _, err := factory.CreateDonorRequest(u); err != nil {
			return fmt.Errorf("failed to create donor request: %w", err)
		}
	}
	for _, u := range byRole[models.RoleHelpSeeker] {
		if _, err := factory.CreateHelpRequest(u); err != nil {
			return fmt.Errorf("failed to create help request: %w", err)
		}
	}
	log.Println("Role requests created")

	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		if _, err := factory.CreatePost(author); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
	}
	log.Printf("%d posts created", opts.NumPosts)

	log.Printf("Seeding complete. All demo accounts use the password %q", DemoPassword)
	return nil
}

// ClearAll removes seedable data. NGO info is kept: it is provisioned by
// cmd/initngo, not the seeder.
func ClearAll(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Post{},
		&models.HelpRequest{},
		&models.DonorRequest{},
		&models.VolunteerRequest{},
		&models.ContactMessage{},
		&models.AuthToken{},
		&models.Profile{},
		&models.User{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
