// Package service holds the application's use cases on top of the repositories.
package service

import (
	"context"
	"log/slog"
	"time"

	"vibestudio/internal/cache"
	"vibestudio/internal/middleware"
	"vibestudio/internal/models"
	"vibestudio/internal/observability"
	"vibestudio/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// FeedService answers the read side: home feed, explore grid and comment threads.
type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	cache       *cache.Store
	ttl         time.Duration
}

func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	store *cache.Store,
	ttl time.Duration,
) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		cache:       store,
		ttl:         ttl,
	}
}

// GetPosts returns viewerID's feed and never fails: store errors are logged and yield an empty feed.
func (s *FeedService) GetPosts(ctx context.Context, viewerID uint) []models.FeedPost {
	posts, err := s.LoadPosts(ctx, viewerID)
	if err != nil {
		s.degraded(ctx, "feed", err, slog.Uint64("viewer_id", uint64(viewerID)))
		return []models.FeedPost{}
	}
	return posts
}

// LoadPosts is GetPosts with the store error surfaced.
// The feed holds the newest posts by viewerID and the users viewerID follows,
// each with its like count, the viewer's like state and the newest comments.
func (s *FeedService) LoadPosts(ctx context.Context, viewerID uint) ([]models.FeedPost, error) {
	if viewerID == 0 {
		return []models.FeedPost{}, nil
	}

	ctx, span := observability.StartSpan(ctx, "feed", "load_posts",
		attribute.Int64("feed.viewer_id", int64(viewerID)))

	var posts []models.FeedPost
	err := s.readThrough(ctx, func(version int64) string { return cache.FeedKey(version, viewerID) }, &posts, func() error {
		var err error
		posts, err = s.buildFeed(ctx, viewerID)
		return err
	})
	observability.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *FeedService) buildFeed(ctx context.Context, viewerID uint) ([]models.FeedPost, error) {
	posts, err := s.postRepo.Feed(ctx, viewerID, models.FeedPageSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	latest, err := s.commentRepo.LatestByPosts(ctx, ids, models.FeedCommentCount)
	if err != nil {
		return nil, err
	}

	out := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		comments := make([]models.CommentView, 0, len(latest[p.ID]))
		for _, c := range latest[p.ID] {
			comments = append(comments, c.View())
		}
		out = append(out, models.FeedPost{
			ID:        p.ID,
			User:      p.User.Public(),
			Image:     p.Image,
			Caption:   p.Caption,
			Likes:     p.LikesCount,
			HasLiked:  p.Liked,
			Comments:  comments,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

// GetExplore returns the newest posts of all users. Like GetPosts it degrades to empty.
func (s *FeedService) GetExplore(ctx context.Context) []models.ExplorePost {
	ctx, span := observability.StartSpan(ctx, "feed", "explore")

	var posts []models.ExplorePost
	err := s.readThrough(ctx, cache.ExploreKey, &posts, func() error {
		found, err := s.postRepo.Explore(ctx, 0, models.ExplorePageSize)
		if err != nil {
			return err
		}
		posts = make([]models.ExplorePost, 0, len(found))
		for _, p := range found {
			posts = append(posts, models.ExplorePost{
				ID:        p.ID,
				Image:     p.Image,
				Caption:   p.Caption,
				User:      models.CommentAuthor{ID: p.User.ID, Username: p.User.Username},
				Likes:     p.LikesCount,
				Comments:  p.CommentsCount,
				CreatedAt: p.CreatedAt,
			})
		}
		return nil
	})
	observability.EndSpan(span, err)
	if err != nil {
		s.degraded(ctx, "explore", err)
		return []models.ExplorePost{}
	}
	return posts
}

// ListComments returns every comment on postID, oldest first.
func (s *FeedService) ListComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	exists, err := s.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	out := make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, c.View())
	}
	return out, nil
}

// readThrough serves dest from the versioned cache key or fills it with fetch.
// Without a readable version nothing is cached, so a stale page is never stored under an old key.
func (s *FeedService) readThrough(ctx context.Context, keyFor func(int64) string, dest any, fetch func() error) error {
	if !s.cache.Enabled() {
		return fetch()
	}

	version, err := s.cache.Version(ctx)
	if err != nil {
		observability.FeedCacheResults.WithLabelValues("error").Inc()
		middleware.Logger.WarnContext(ctx, "feed version unavailable", slog.String("error", err.Error()))
		return fetch()
	}

	hit, err := s.cache.Aside(ctx, keyFor(version), dest, s.ttl, fetch)
	if err != nil {
		return err
	}
	if hit {
		observability.FeedCacheResults.WithLabelValues("hit").Inc()
	} else {
		observability.FeedCacheResults.WithLabelValues("miss").Inc()
	}
	return nil
}

func (s *FeedService) degraded(ctx context.Context, listing string, err error, attrs ...any) {
	observability.FeedDegraded.WithLabelValues(listing).Inc()
	args := append([]any{slog.String("listing", listing), slog.String("error", err.Error())}, attrs...)
	middleware.Logger.ErrorContext(ctx, "listing degraded to empty", args...)
}
