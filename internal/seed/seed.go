// Package seed provides helpers to create demo data for the blog database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the plaintext password every seeded user gets, so the demo
// accounts can actually be logged into.
const DemoPassword = "inkwell-demo"

// Seeder populates the database with generated users, posts, and feedback.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes every seeded collection. Order matters only for
// readability; there are no foreign-key constraints between collections.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Post{}, &models.Feedback{}, &models.User{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n users with unique usernames and emails. The first user
// is always an admin.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password: string(hash),
			IsAdmin:  i == 0,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("seeding user %d: %w", i, err)
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users (password %q)", len(users), DemoPassword)
	return users, nil
}

var categories = []string{"engineering", "travel", "food", "opinion", "notes"}

// SeedPosts creates n posts. Roughly two thirds reference a seeded user by
// id; the rest carry free-text guest author names, mirroring the author
// field's two shapes.
func (s *Seeder) SeedPosts(users []models.User, n int) error {
	for i := 0; i < n; i++ {
		var author models.Author
		if len(users) > 0 && s.rng.Intn(3) != 0 {
			author = models.UserRef(users[s.rng.Intn(len(users))].ID)
		} else {
			author = models.GuestAuthor(gofakeit.Name())
		}

		created := time.Now().UTC().Add(-time.Duration(s.rng.Intn(120*24)) * time.Hour)
		post := models.Post{
			Title:     gofakeit.Sentence(s.rng.Intn(5) + 3),
			Content:   gofakeit.Paragraph(2, 4, 8, "\n\n"),
			Category:  categories[s.rng.Intn(len(categories))],
			Author:    author,
			Subtitle:  gofakeit.Sentence(6),
			Keywords:  gofakeit.HipsterWord(),
			Thumbnail: fmt.Sprintf("https://picsum.photos/seed/%d/1200/630", i),
			Images:    models.StringList{fmt.Sprintf("https://picsum.photos/seed/%d-body/800/600", i)},
			CreatedAt: created,
			UpdatedAt: created,
		}
		if err := s.db.Create(&post).Error; err != nil {
			return fmt.Errorf("seeding post %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d posts", n)
	return nil
}

// SeedFeedback creates n feedback entries.
func (s *Seeder) SeedFeedback(n int) error {
	for i := 0; i < n; i++ {
		fb := models.Feedback{
			Name:    gofakeit.Name(),
			Email:   gofakeit.Email(),
			Message: gofakeit.Sentence(12),
			Date:    time.Now().UTC().Add(-time.Duration(s.rng.Intn(30*24)) * time.Hour),
		}
		if err := s.db.Create(&fb).Error; err != nil {
			return fmt.Errorf("seeding feedback %d: %w", i, err)
		}
	}

	log.Printf("Seeded %d feedback entries", n)
	return nil
}
