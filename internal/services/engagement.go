package services

import (
	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
)

// LikePost 点赞。重复点赞返回 DuplicateError 而不是静默忽略，
// 把客户端的重复提交暴露给调用方。
// 应用层检查只是快速路径，真正防并发重复的是 (user_id, post_id) 唯一索引
func LikePost(viewerID, postID uint) error {
	var post models.Post
	if err := db.DB.Select("id").First(&post, postID).Error; err != nil {
		return apperrors.FromDB(err)
	}

	var existing models.Like
	err := db.DB.Where("user_id = ? AND post_id = ?", viewerID, postID).
		First(&existing).Error
	if err == nil {
		return apperrors.Duplicatef("you have already liked this post")
	}

	like := models.Like{UserID: viewerID, PostID: postID}
	if err := db.DB.Create(&like).Error; err != nil {
		return apperrors.FromDB(err)
	}
	return nil
}

// UnlikePost 取消点赞，之前没点过返回 NotFoundError
func UnlikePost(viewerID, postID uint) error {
	var post models.Post
	if err := db.DB.Select("id").First(&post, postID).Error; err != nil {
		return apperrors.FromDB(err)
	}

	res := db.DB.Where("user_id = ? AND post_id = ?", viewerID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return apperrors.FromDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFoundf("you have not liked this post")
	}
	return nil
}

// LikesOf 返回帖子的点赞列表（含点赞用户资料）
func LikesOf(postID uint) ([]models.Like, error) {
	var post models.Post
	if err := db.DB.Select("id").First(&post, postID).Error; err != nil {
		return nil, apperrors.FromDB(err)
	}

	var likes []models.Like
	err := db.DB.Preload("User").Preload("User.Profile").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, apperrors.FromDB(err)
	}
	return likes, nil
}
