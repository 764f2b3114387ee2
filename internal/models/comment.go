package models

import "time"

// Comment is a text reply on a post. Comments are append-only.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index:idx_comment_post_created,priority:1" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Post      Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_comment_post_created,priority:2" json:"created_at"`
}

// View converts a comment with a preloaded User into its rendered form.
func (c Comment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		User:      CommentAuthor{ID: c.User.ID, Username: c.User.Username},
		CreatedAt: c.CreatedAt,
	}
}
