// Package seed populates the database with demo data for development and
// testing. It is never wired into the API server.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"grove/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	NumUsers int
	NumPosts int
	Clean    bool
}

// Seeder generates users, friendships, posts, and comments.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for demo data
	return &Seeder{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll deletes all seeded data in dependency order.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.Comment{}, &models.Post{}, &models.Friendship{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds the database per opts and refreshes every user's post count.
func (s *Seeder) Run(opts Options) error {
	if opts.Clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	edges, err := s.createFriendships(users)
	if err != nil {
		return fmt.Errorf("failed to create friendships: %w", err)
	}
	log.Printf("Created %d friendships", edges)

	posts, err := s.createPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	comments, err := s.createComments(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("Created %d comments", comments)

	if err := s.recountPosts(users); err != nil {
		return fmt.Errorf("failed to refresh post counts: %w", err)
	}

	log.Println("Seeding complete. All users have the password: password123")
	return nil
}

func (s *Seeder) createUsers(count int) ([]models.User, error) {
	// One hash shared by everyone; bcrypt per user would dominate seed time.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
		user := models.User{
			Username:  username,
			Email:     fmt.Sprintf("%s@example.com", username),
			Password:  string(hashed),
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
		}
		if err := s.db.Create(&user).Error; err != nil {
			log.Printf("Skipping user %s: %v", username, err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// createFriendships builds a loose mesh: each user sends a handful of
// requests to random later users, most of which end up accepted. Ordering
// the pair by index keeps the composite unique constraint from tripping.
func (s *Seeder) createFriendships(users []models.User) (int, error) {
	created := 0
	for i := range users {
		for n := 0; n < s.r.Intn(4)+1; n++ {
			j := s.r.Intn(len(users))
			if j == i {
				continue
			}
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}

			status := models.FriendshipStatusAccepted
			if s.r.Float32() < 0.2 {
				status = models.FriendshipStatusPending
			}

			edge := models.Friendship{
				RequesterID: users[lo].ID,
				AddresseeID: users[hi].ID,
				Status:      status,
			}
			if err := s.db.Create(&edge).Error; err != nil {
				// duplicate pair, skip
				continue
			}
			created++
		}
	}
	return created, nil
}

func (s *Seeder) createPosts(users []models.User, count int) ([]models.Post, error) {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.r.Intn(len(users))]

		var imageURL string
		if s.r.Float32() < 0.4 {
			imageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		}

		post := models.Post{
			Content:  gofakeit.Paragraph(1, s.r.Intn(4)+1, 8, " "),
			ImageURL: imageURL,
			UserID:   author.ID,
			// A slice of deleted posts keeps feed queries honest.
			IsDeleted: s.r.Float32() < 0.1,
			CreatedAt: s.randomPastTime(90),
		}
		if err := s.db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) createComments(users []models.User, posts []models.Post) (int, error) {
	created := 0
	for _, post := range posts {
		if post.IsDeleted {
			continue
		}
		for n := 0; n < s.r.Intn(6); n++ {
			comment := models.Comment{
				Content:   gofakeit.Sentence(s.r.Intn(12) + 3),
				PostID:    post.ID,
				UserID:    users[s.r.Intn(len(users))].ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(n+1) * time.Minute),
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// recountPosts writes each user's count of non-deleted posts, the same
// refresh the API performs after every post mutation.
func (s *Seeder) recountPosts(users []models.User) error {
	for _, user := range users {
		var count int64
		if err := s.db.Model(&models.Post{}).
			Where("user_id = ? AND is_deleted = ?", user.ID, false).
			Count(&count).Error; err != nil {
			return err
		}
		if err := s.db.Model(&models.User{}).
			Where("id = ?", user.ID).
			Update("post_count", count).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) randomPastTime(maxDays int) time.Time {
	daysBack := s.r.Intn(maxDays)
	hoursBack := s.r.Intn(24)
	minsBack := s.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
