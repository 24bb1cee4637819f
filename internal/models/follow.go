package models

import (
	"time"
)

// Follow 关注关系 - 有向边 follower -> followed。
// (follower_id, followed_id) 唯一索引防止重复关注，
// check 约束在存储层禁止自己关注自己
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follows_pair;check:chk_follows_no_self,follower_id <> followed_id" json:"-"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"follower"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follows_pair" json:"-"`
	Followed   User      `gorm:"foreignKey:FollowedID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"followed"`
	CreatedAt  time.Time `json:"created_at"`
}
