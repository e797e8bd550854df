package service

import (
	"context"

	"grove/internal/middleware"
	"grove/internal/models"
	"grove/internal/repository"
)

const (
	defaultFeedPage  = 1
	defaultFeedLimit = 10
)

// FeedService assembles a user's feed: the live posts of the user plus every
// accepted friend, newest first, in fixed-size pages.
type FeedService struct {
	postRepo   repository.PostRepository
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
}

// GetFeedInput carries the feed query. Page and Limit arrive already parsed;
// zero or negative values fall back to the defaults rather than erroring, so
// garbage query strings degrade to the first default-sized page.
type GetFeedInput struct {
	TargetUserID uint
	Page         int
	Limit        int
}

// FeedPage is one page of feed results plus the pagination envelope.
type FeedPage struct {
	Posts      []*models.Post `json:"posts"`
	TotalPages int            `json:"totalPages"`
	TotalCount int64          `json:"count"`
}

// NewFeedService returns a new FeedService.
func NewFeedService(
	postRepo repository.PostRepository,
	friendRepo repository.FriendRepository,
	userRepo repository.UserRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// EligibleAuthorIDs resolves the set of authors whose posts may appear in
// targetUserID's feed: the user plus every accepted friend. The target user
// is always first; friend order is not significant.
func (s *FeedService) EligibleAuthorIDs(ctx context.Context, targetUserID uint) ([]uint, error) {
	friendIDs, err := s.friendRepo.AcceptedFriendIDs(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return append([]uint{targetUserID}, friendIDs...), nil
}

// GetFeed returns one page of the target user's feed. The target must exist;
// beyond that the query never fails on odd paging input. A page past the end
// returns an empty post list with the real count, and a user with no visible
// posts gets zero total pages, not one empty page.
func (s *FeedService) GetFeed(ctx context.Context, in GetFeedInput) (*FeedPage, error) {
	if _, err := s.userRepo.GetByID(ctx, in.TargetUserID); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
			return nil, appErr.WithLabel("get feed")
		}
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = defaultFeedPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultFeedLimit
	}

	authorIDs, err := s.EligibleAuthorIDs(ctx, in.TargetUserID)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		middleware.FeedPageFetches.WithLabelValues("error").Inc()
		return nil, err
	}

	offset := limit * (page - 1)
	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, limit, offset)
	if err != nil {
		middleware.FeedPageFetches.WithLabelValues("error").Inc()
		return nil, err
	}
	middleware.FeedPageFetches.WithLabelValues("ok").Inc()

	return &FeedPage{
		Posts:      posts,
		TotalPages: totalPages(count, limit),
		TotalCount: count,
	}, nil
}

// totalPages is ceil(count/limit) in integer arithmetic. Zero items means
// zero pages.
func totalPages(count int64, limit int) int {
	return int((count + int64(limit) - 1) / int64(limit))
}
