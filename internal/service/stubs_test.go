package service

import (
	"context"
	"errors"
	"testing"

	"grove/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn              func(context.Context, *models.Post) error
	getByIDFn             func(context.Context, uint) (*models.Post, error)
	getByIDWithCommentsFn func(context.Context, uint) (*models.Post, error)
	listByAuthorsFn       func(context.Context, []uint, int, int) ([]*models.Post, error)
	countByAuthorsFn      func(context.Context, []uint) (int64, error)
	countActiveByAuthorFn func(context.Context, uint) (int64, error)
	updateFn              func(context.Context, *models.Post) error
	softDeleteFn          func(context.Context, uint, uint) (*models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByIDWithComments(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDWithCommentsFn(ctx, id)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset)
}
func (s *postRepoStub) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	return s.countByAuthorsFn(ctx, authorIDs)
}
func (s *postRepoStub) CountActiveByAuthor(ctx context.Context, userID uint) (int64, error) {
	return s.countActiveByAuthorFn(ctx, userID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) SoftDelete(ctx context.Context, postID, authorID uint) (*models.Post, error) {
	return s.softDeleteFn(ctx, postID, authorID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:              func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:             func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getByIDWithCommentsFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listByAuthorsFn:       func(_ context.Context, _ []uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		countByAuthorsFn:      func(_ context.Context, _ []uint) (int64, error) { return 0, nil },
		countActiveByAuthorFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		updateFn:              func(_ context.Context, _ *models.Post) error { return nil },
		softDeleteFn: func(_ context.Context, postID, _ uint) (*models.Post, error) {
			return &models.Post{ID: postID, IsDeleted: true}, nil
		},
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.User, error)
	getByEmailFn      func(context.Context, string) (*models.User, error)
	getByUsernameFn   func(context.Context, string) (*models.User, error)
	createFn          func(context.Context, *models.User) error
	updateFn          func(context.Context, *models.User) error
	updatePostCountFn func(context.Context, uint, int64) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdatePostCount(ctx context.Context, userID uint, count int64) error {
	return s.updatePostCountFn(ctx, userID, count)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:         func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:      func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn:   func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:          func(_ context.Context, _ *models.User) error { return nil },
		updateFn:          func(_ context.Context, _ *models.User) error { return nil },
		updatePostCountFn: func(_ context.Context, _ uint, _ int64) error { return nil },
	}
}

// friendRepoStub is a stub for repository.FriendRepository.
type friendRepoStub struct {
	createFn                    func(context.Context, *models.Friendship) error
	getByIDFn                   func(context.Context, uint) (*models.Friendship, error)
	getFriendshipBetweenUsersFn func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn                func(context.Context, uint) ([]models.User, error)
	getPendingRequestsFn        func(context.Context, uint) ([]models.Friendship, error)
	acceptedFriendIDsFn         func(context.Context, uint) ([]uint, error)
	updateStatusFn              func(context.Context, uint, models.FriendshipStatus) error
	deleteFn                    func(context.Context, uint) error
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getFriendshipBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingRequestsFn(ctx, userID)
}
func (s *friendRepoStub) AcceptedFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.acceptedFriendIDsFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, friendshipID uint) error {
	return s.deleteFn(ctx, friendshipID)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:  func(_ context.Context, _ *models.Friendship) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Friendship, error) { return &models.Friendship{ID: id}, nil },
		getFriendshipBetweenUsersFn: func(_ context.Context, _, _ uint) (*models.Friendship, error) {
			return nil, nil
		},
		getFriendsFn:         func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		getPendingRequestsFn: func(_ context.Context, _ uint) ([]models.Friendship, error) { return nil, nil },
		acceptedFriendIDsFn:  func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		updateStatusFn:       func(_ context.Context, _ uint, _ models.FriendshipStatus) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint, int, int) ([]*models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn:  func(_ context.Context, _ uint, _, _ int) ([]*models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

// assertNotFoundError asserts that err is an AppError with code NOT_FOUND.
func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

// assertUnauthorizedError asserts that err is an AppError with code UNAUTHORIZED.
func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}
