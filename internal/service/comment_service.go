package service

import (
	"context"
	"strings"

	"vibestudio/internal/cache"
	"vibestudio/internal/models"
	"vibestudio/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	cache       *cache.Store
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	store *cache.Store,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		cache:       store,
	}
}

// AddComment appends a comment and returns it with the commenter's username.
func (s *CommentService) AddComment(ctx context.Context, in CreateCommentInput) (*models.CommentView, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Sign in to comment")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}

	exists, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}

	s.cache.InvalidateFeeds(ctx)
	view := comment.View()
	return &view, nil
}
