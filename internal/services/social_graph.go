package services

import (
	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
)

// FollowingOf 返回 viewer 关注的用户 ID 集合（可能为空）。
// 除存储不可用外没有其他失败模式，错误原样向上传递
func FollowingOf(viewerID uint) ([]uint, error) {
	var ids []uint
	err := db.DB.Model(&models.Follow{}).
		Where("follower_id = ?", viewerID).
		Pluck("followed_id", &ids).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return ids, nil
}

// FollowUser 创建关注边。自己关注自己返回 ValidationError，
// 已关注返回 DuplicateError。存在性检查只是快速路径，
// 并发下靠 (follower_id, followed_id) 唯一索引兜底
func FollowUser(followerID, targetID uint) error {
	if followerID == targetID {
		return apperrors.Validationf("you cannot follow yourself")
	}

	// 目标用户必须存在
	var target models.User
	if err := db.DB.Select("id").First(&target, targetID).Error; err != nil {
		return apperrors.FromDB(err)
	}

	var existing models.Follow
	err := db.DB.Where("follower_id = ? AND followed_id = ?", followerID, targetID).
		First(&existing).Error
	if err == nil {
		return apperrors.Duplicatef("you are already following this user")
	}

	follow := models.Follow{FollowerID: followerID, FollowedID: targetID}
	if err := db.DB.Create(&follow).Error; err != nil {
		return apperrors.FromDB(err)
	}
	return nil
}

// UnfollowUser 删除关注边，不存在时返回 NotFoundError
func UnfollowUser(followerID, targetID uint) error {
	res := db.DB.Where("follower_id = ? AND followed_id = ?", followerID, targetID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return apperrors.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("you are not following this user")
	}
	return nil
}

// FollowersOf 返回关注 userID 的边列表（含双方用户资料）
func FollowersOf(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := db.DB.Preload("Follower").Preload("Follower.Profile").
		Where("followed_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return follows, nil
}

// FollowedBy 返回 userID 关注的边列表
func FollowedBy(userID uint) ([]models.Follow, error) {
	var follows []models.Follow
	err := db.DB.Preload("Followed").Preload("Followed.Profile").
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Find(&follows).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return follows, nil
}

// FollowCounts 返回 (粉丝数, 关注数)
func FollowCounts(userID uint) (followers int64, following int64) {
	db.DB.Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&followers)
	db.DB.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&following)
	return followers, following
}
