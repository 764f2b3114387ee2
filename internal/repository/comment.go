package repository

import (
	"context"

	"vibestudio/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	// LatestByPosts returns up to perPost newest comments for each post, newest first.
	LatestByPosts(ctx context.Context, postIDs []uint, perPost int) (map[uint][]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and loads its author.
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	db := r.db.WithContext(ctx)
	if err := db.Create(comment).Error; err != nil {
		return err
	}
	return db.Preload("User").First(comment, comment.ID).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) LatestByPosts(ctx context.Context, postIDs []uint, perPost int) (map[uint][]*models.Comment, error) {
	out := make(map[uint][]*models.Comment, len(postIDs))
	if len(postIDs) == 0 || perPost <= 0 {
		return out, nil
	}

	db := r.db.WithContext(ctx)
	ranked := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Comment{}).
		Select("comments.*, ROW_NUMBER() OVER (PARTITION BY post_id ORDER BY created_at DESC, id DESC) AS rn").
		Where("post_id IN ?", postIDs)

	var comments []*models.Comment
	err := db.Table("(?) AS comments", ranked).
		Preload("User").
		Where("rn <= ?", perPost).
		Order("post_id, rn").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		out[c.PostID] = append(out[c.PostID], c)
	}
	return out, nil
}
