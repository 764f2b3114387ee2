package repository

import (
	"context"
	"errors"

	"vibestudio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Exists(ctx context.Context, id uint) (bool, error)
	// Feed returns the newest posts authored by viewerID or by users viewerID follows.
	Feed(ctx context.Context, viewerID uint, limit int) ([]*models.Post, error)
	// Explore returns the newest posts of all users.
	Explore(ctx context.Context, viewerID uint, limit int) ([]*models.Post, error)
	// ToggleLike flips viewerID's like on postID and reports the new state and count.
	ToggleLike(ctx context.Context, postID, userID uint) (liked bool, likes int, err error)
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
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Select("id").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *postRepository) Feed(ctx context.Context, viewerID uint, limit int) ([]*models.Post, error) {
	db := r.db.WithContext(ctx)
	followees := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Follow{}).
		Select("followee_id").
		Where("follower_id = ?", viewerID)

	var posts []*models.Post
	err := applyPostDetails(db, viewerID).
		Preload("User").
		Where("posts.user_id = ? OR posts.user_id IN (?)", viewerID, followees).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Explore(ctx context.Context, viewerID uint, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := applyPostDetails(r.db.WithContext(ctx), viewerID).
		Preload("User").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// likeLockKey packs the pair into one bigint advisory key, post id in the high
// half. Pairs are distinct while both ids fit in 32 bits; beyond that two pairs
// may share a key, which only serializes their toggles.
func likeLockKey(postID, userID uint) int64 {
	return int64(uint64(uint32(postID))<<32 | uint64(uint32(userID)))
}

// ToggleLike deletes the (post, user) like or, when there was none, inserts it.
// On postgres a transaction-scoped advisory lock on the pair serializes concurrent toggles;
// the unique index keeps the row count at one or zero regardless.
func (r *postRepository) ToggleLike(ctx context.Context, postID, userID uint) (bool, int, error) {
	var liked bool
	var count int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", likeLockKey(postID, userID)).Error; err != nil {
				return err
			}
		}

		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			like := models.Like{PostID: postID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			liked = true
		}

		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, int(count), nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
func applyPostDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", viewerID)
	}

	return db.Select(selectQuery + ", false as liked")
}
