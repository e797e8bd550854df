package server

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"grove/internal/config"
	"grove/internal/database"
	"grove/internal/models"
	"grove/internal/repository"
	"grove/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server over a fresh in-memory SQLite database. The
// prometheus middleware is left nil; handler tests register routes directly
// and do not exercise SetupMiddleware.
func newTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret-key-that-is-long-enough!",
		Port:      "0",
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	friendRepo := repository.NewFriendRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		friendRepo:     friendRepo,
		feedService:    service.NewFeedService(postRepo, friendRepo, userRepo),
		postService:    service.NewPostService(postRepo, userRepo),
		commentService: service.NewCommentService(commentRepo, postRepo),
		friendService:  service.NewFriendService(friendRepo, userRepo),
	}
	return s, db
}

// newTestApp returns a fiber app with the given user pre-authenticated.
func newTestApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func seedUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := &models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, content string, createdAt time.Time) *models.Post {
	t.Helper()

	post := &models.Post{
		Content:   content,
		UserID:    userID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedFriendship(t *testing.T, db *gorm.DB, requesterID, addresseeID uint, status models.FriendshipStatus) {
	t.Helper()

	require.NoError(t, db.Create(&models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      status,
	}).Error)
}
