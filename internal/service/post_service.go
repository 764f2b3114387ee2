package service

import (
	"context"
	"fmt"

	"vibestudio/internal/cache"
	"vibestudio/internal/models"
	"vibestudio/internal/observability"
	"vibestudio/internal/repository"
	"vibestudio/internal/storage"
	"vibestudio/internal/validation"
)

type PostService struct {
	postRepo repository.PostRepository
	images   storage.ImageStore
	cache    *cache.Store
}

type CreatePostInput struct {
	UserID  uint
	Caption string
	Image   []byte
}

func NewPostService(postRepo repository.PostRepository, images storage.ImageStore, store *cache.Store) *PostService {
	if images == nil {
		images = storage.PlaceholderStore{}
	}
	return &PostService{
		postRepo: postRepo,
		images:   images,
		cache:    store,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Sign in to create a post")
	}
	if err := validation.ValidateCaption(in.Caption); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	img, err := storage.DecodeImage(in.Image)
	if err != nil {
		return nil, err
	}

	url, err := s.images.Save(ctx, img)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("store image: %w", err))
	}
	observability.UploadedImages.WithLabelValues(s.images.Backend()).Inc()

	post := &models.Post{
		UserID:  in.UserID,
		Image:   url,
		Caption: in.Caption,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}

	s.cache.InvalidateFeeds(ctx)
	return post, nil
}

// ToggleLike likes postID for viewerID, or removes the like if it already exists.
func (s *PostService) ToggleLike(ctx context.Context, postID, viewerID uint) (models.LikeState, error) {
	if viewerID == 0 {
		return models.LikeState{}, models.NewUnauthorizedError("Sign in to like posts")
	}

	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return models.LikeState{}, models.NewInternalError(err)
	}
	if !exists {
		return models.LikeState{}, models.NewNotFoundError("Post", postID)
	}

	liked, likes, err := s.postRepo.ToggleLike(ctx, postID, viewerID)
	if err != nil {
		return models.LikeState{}, models.NewInternalError(err)
	}

	state := "unliked"
	if liked {
		state = "liked"
	}
	observability.LikeToggles.WithLabelValues(state).Inc()

	s.cache.InvalidateFeeds(ctx)
	return models.LikeState{PostID: postID, Liked: liked, Likes: likes}, nil
}
