package models

import (
	"time"
)

// Profile 用户资料 - 与 User 一对一，注册时在同一事务内创建
type Profile struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"-"`
	User           *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Bio            string    `gorm:"size:500" json:"bio"`
	ProfilePicture string    `json:"profile_picture"` // 头像 URL
	Website        string    `json:"website"`
	Location       string    `gorm:"size:100" json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// 非数据库字段，查询时填充
	FollowersCount int64 `gorm:"-" json:"followers_count"`
	FollowingCount int64 `gorm:"-" json:"following_count"`
}
