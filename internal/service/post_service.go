package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"grove/internal/middleware"
	"grove/internal/models"
	"grove/internal/repository"
)

const maxPostContentLen = 10000

// PostService provides post mutation and lookup business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
}

// UpdatePostInput uses pointers so a field is applied exactly when the client
// sent it. A present-but-empty string is applied as-is; fields the client
// never mentioned stay untouched, and unknown fields are dropped at decode
// time before they reach this struct.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Content  *string
	ImageURL *string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required").WithLabel("create post")
	}
	if len(in.Content) > maxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)").WithLabel("create post")
	}
	if in.ImageURL != "" {
		if _, err := url.ParseRequestURI(in.ImageURL); err != nil {
			return nil, models.NewValidationError("image_url must be a valid URL").WithLabel("create post")
		}
	}

	post := &models.Post{
		Content:  in.Content,
		ImageURL: in.ImageURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.recountAfterMutation(ctx, in.UserID)

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single live post with its author and full comment thread.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByIDWithComments(ctx, id)
}

// UpdatePost applies the provided fields to the caller's own post. Unlike
// DeletePost, the existence check runs first, so editing someone else's post
// is an authorization failure rather than a not-found.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own posts").WithLabel("update post")
	}

	if in.Content != nil {
		if len(*in.Content) > maxPostContentLen {
			return nil, models.NewValidationError("Content too long (max 10000 characters)").WithLabel("update post")
		}
		post.Content = *in.Content
	}
	if in.ImageURL != nil {
		post.ImageURL = *in.ImageURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost tombstones the caller's own post and returns it. Ownership is
// enforced inside the single conditional UPDATE, so a foreign post and a
// missing one are indistinguishable to the caller.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (*models.Post, error) {
	post, err := s.postRepo.SoftDelete(ctx, in.PostID, in.UserID)
	if err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return nil, appErr.WithLabel("delete post")
		}
		return nil, err
	}

	s.recountAfterMutation(ctx, in.UserID)

	return post, nil
}

// RecountPosts recomputes the user's live post count from the posts table and
// writes it to the user row. The operation is idempotent; running it twice in
// a row leaves the same value.
func (s *PostService) RecountPosts(ctx context.Context, userID uint) error {
	count, err := s.postRepo.CountActiveByAuthor(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePostCount(ctx, userID, count); err != nil {
		return err
	}
	middleware.PostCountRecomputes.Inc()
	return nil
}

// recountAfterMutation refreshes the author's post count after a create or
// delete. The count is advisory, so a failed recount is logged and the
// mutation result stands; the next successful recount converges the value.
func (s *PostService) recountAfterMutation(ctx context.Context, userID uint) {
	if err := s.RecountPosts(ctx, userID); err != nil {
		middleware.Logger.WarnContext(ctx, "post count recount failed",
			slog.Uint64("user_id", uint64(userID)),
			slog.String("error", err.Error()),
		)
	}
}
