package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"vibestudio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	existsFn     func(context.Context, uint) (bool, error)
	feedFn       func(context.Context, uint, int) ([]*models.Post, error)
	exploreFn    func(context.Context, uint, int) ([]*models.Post, error)
	toggleLikeFn func(context.Context, uint, uint) (bool, int, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) Feed(ctx context.Context, viewerID uint, limit int) ([]*models.Post, error) {
	return s.feedFn(ctx, viewerID, limit)
}
func (s *postRepoStub) Explore(ctx context.Context, viewerID uint, limit int) ([]*models.Post, error) {
	return s.exploreFn(ctx, viewerID, limit)
}
func (s *postRepoStub) ToggleLike(ctx context.Context, postID, userID uint) (bool, int, error) {
	return s.toggleLikeFn(ctx, postID, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(_ context.Context, p *models.Post) error { p.ID = 1; return nil },
		existsFn:     func(_ context.Context, _ uint) (bool, error) { return true, nil },
		feedFn:       func(_ context.Context, _ uint, _ int) ([]*models.Post, error) { return nil, nil },
		exploreFn:    func(_ context.Context, _ uint, _ int) ([]*models.Post, error) { return nil, nil },
		toggleLikeFn: func(_ context.Context, _, _ uint) (bool, int, error) { return true, 1, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	listByPostFn    func(context.Context, uint) ([]*models.Comment, error)
	latestByPostsFn func(context.Context, []uint, int) (map[uint][]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) LatestByPosts(ctx context.Context, postIDs []uint, perPost int) (map[uint][]*models.Comment, error) {
	return s.latestByPostsFn(ctx, postIDs, perPost)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		latestByPostsFn: func(_ context.Context, _ []uint, _ int) (map[uint][]*models.Comment, error) {
			return map[uint][]*models.Comment{}, nil
		},
	}
}

// userRepoStub is an in-memory repository.UserRepository.
type userRepoStub struct {
	users  map[string]*models.User
	nextID uint
	err    error
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{users: map[string]*models.User{}}
}

func (s *userRepoStub) Create(_ context.Context, u *models.User) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[u.Email]; ok {
		return models.NewConflictError("username or email already taken")
	}
	s.nextID++
	u.ID = s.nextID
	s.users[u.Email] = u
	return nil
}
func (s *userRepoStub) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.NewNotFoundError("User", id)
}
func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, models.NewNotFoundError("User", email)
}

var errStore = errors.New("store unavailable")

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
