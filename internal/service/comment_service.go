package service

import (
	"context"
	"strings"

	"grove/internal/models"
	"grove/internal/repository"
)

const (
	defaultCommentPage  = 1
	defaultCommentLimit = 10
	maxCommentLen       = 2000
)

// CommentService provides comment creation and paged listing.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type ListCommentsInput struct {
	PostID uint
	Page   int
	Limit  int
}

// CommentPage is one page of a post's comment thread plus the pagination
// envelope, shaped like FeedPage.
type CommentPage struct {
	Comments   []*models.Comment `json:"comments"`
	TotalPages int               `json:"totalPages"`
	TotalCount int64             `json:"count"`
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required").WithLabel("create comment")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 2000 characters)").WithLabel("create comment")
	}

	// Commenting on a tombstoned post fails the same way as on a missing one.
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		PostID:  in.PostID,
		UserID:  in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns one page of a post's comments, newest first. Paging
// input is forgiving the same way the feed is: anything below one falls back
// to the defaults, and a page past the end is an empty list with the real
// count.
func (s *CommentService) ListComments(ctx context.Context, in ListCommentsInput) (*CommentPage, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return nil, appErr.WithLabel("list comments")
		}
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = defaultCommentPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultCommentLimit
	}

	count, err := s.commentRepo.CountByPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	offset := limit * (page - 1)
	comments, err := s.commentRepo.ListByPost(ctx, in.PostID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &CommentPage{
		Comments:   comments,
		TotalPages: totalPages(count, limit),
		TotalCount: count,
	}, nil
}
