// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"grove/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations. Read paths
// only ever see live posts; soft-deleted rows stay in the table but are
// filtered out of every query except the ownership check in SoftDelete.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByIDWithComments(ctx context.Context, id uint) (*models.Post, error)
	ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error)
	CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error)
	CountActiveByAuthor(ctx context.Context, userID uint) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	SoftDelete(ctx context.Context, postID, authorID uint) (*models.Post, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_deleted = ?", false).
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) GetByIDWithComments(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Comments.User").
		Where("is_deleted = ?", false).
		First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListByAuthors returns one page of live posts whose author is in authorIDs,
// newest first. The id tiebreak keeps the order stable when several posts
// share a created_at timestamp, so pages never overlap or skip rows.
func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error) {
	if len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}

	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ? AND is_deleted = ?", authorIDs, false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id IN ? AND is_deleted = ?", authorIDs, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) CountActiveByAuthor(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// SoftDelete tombstones a post in a single conditional UPDATE matching both
// the post ID and its author. A miss on either condition reports the same
// not-found result, so callers cannot distinguish a foreign post from a
// missing one. Rows already tombstoned still match and the second call
// succeeds quietly.
func (r *postRepository) SoftDelete(ctx context.Context, postID, authorID uint) (*models.Post, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", postID, authorID).
		Update("is_deleted", true)
	if result.Error != nil {
		return nil, models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, models.NewNotFoundError("Post", postID)
	}

	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}
