package models

import "time"

// MaxCaptionLength bounds post captions.
const MaxCaptionLength = 2200

// FeedPageSize and ExplorePageSize are the fixed page sizes of the two listings.
const (
	FeedPageSize     = 10
	ExplorePageSize  = 12
	FeedCommentCount = 3
)

// Post is an image with a caption, owned by the user who created it.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	Image   string `gorm:"not null" json:"image"`
	Caption string `gorm:"type:text;not null" json:"caption"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked reports whether the requesting viewer liked this post (computed)
	Liked     bool      `gorm:"->" json:"has_liked"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// CommentAuthor is the commenter identity shown in comment lists.
type CommentAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// CommentView is a comment as rendered under a post.
type CommentView struct {
	ID        uint          `json:"id"`
	PostID    uint          `json:"post_id"`
	Content   string        `json:"content"`
	User      CommentAuthor `json:"user"`
	CreatedAt time.Time     `json:"created_at"`
}

// FeedPost is one entry of a viewer's home feed.
type FeedPost struct {
	ID        uint          `json:"id"`
	User      PublicUser    `json:"user"`
	Image     string        `json:"image"`
	Caption   string        `json:"caption"`
	Likes     int           `json:"likes"`
	HasLiked  bool          `json:"has_liked"`
	Comments  []CommentView `json:"comments"`
	CreatedAt time.Time     `json:"created_at"`
}

// ExplorePost is one tile of the explore grid.
type ExplorePost struct {
	ID        uint          `json:"id"`
	Image     string        `json:"image"`
	Caption   string        `json:"caption"`
	User      CommentAuthor `json:"user"`
	Likes     int           `json:"likes"`
	Comments  int           `json:"comments"`
	CreatedAt time.Time     `json:"created_at"`
}

// LikeState is the outcome of toggling a like.
type LikeState struct {
	PostID uint `json:"post_id"`
	Liked  bool `json:"liked"`
	Likes  int  `json:"likes"`
}
