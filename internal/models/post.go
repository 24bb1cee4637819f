package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_posts_author_created,priority:1" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"` // 1-2000 字符，发布后作者不可变更
	MediaURL  string    `json:"media_url"`                         // Optional
	CreatedAt time.Time `gorm:"index:idx_posts_author_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	LikesCount    int64 `gorm:"-" json:"likes_count"`
	CommentsCount int64 `gorm:"-" json:"comments_count"`
	IsLiked       bool  `gorm:"-" json:"is_liked"`
}

// 内容长度限制
const (
	PostContentMaxLen    = 2000
	CommentContentMaxLen = 500
)
