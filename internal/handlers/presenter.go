package handlers

import (
	"teacup/internal/db"
	"teacup/internal/models"
	"teacup/internal/services"
)

// fillPostMeta 批量填充帖子的派生字段：点赞数、评论数、当前 viewer 是否已点赞。
// 这些字段从不落库，每次展示时重新统计；viewerID 为 0 表示未登录
func fillPostMeta(posts []models.Post, viewerID uint) {
	fillPostCounts(posts)
	fillViewerLikes(posts, viewerID)
}

// fillPostCounts 批量统计点赞数和评论数（与 viewer 无关的部分）
func fillPostCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int64
	}

	// 批量统计点赞数
	var likeCounts []countResult
	db.DB.Model(&models.Like{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&likeCounts)

	likeMap := make(map[uint]int64)
	for _, r := range likeCounts {
		likeMap[r.PostID] = r.Count
	}

	// 批量统计评论数
	var commentCounts []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&commentCounts)

	commentMap := make(map[uint]int64)
	for _, r := range commentCounts {
		commentMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].LikesCount = likeMap[posts[i].ID]
		posts[i].CommentsCount = commentMap[posts[i].ID]
	}
}

// fillViewerLikes 单独填充 is_liked。和计数分开，
// 因为计数可以随页面共享缓存，is_liked 随 viewer 变化必须每次请求重查
func fillViewerLikes(posts []models.Post, viewerID uint) {
	if len(posts) == 0 || viewerID == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	var likedIDs []uint
	db.DB.Model(&models.Like{}).
		Where("user_id = ? AND post_id IN ?", viewerID, postIDs).
		Pluck("post_id", &likedIDs)

	likedMap := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedMap[id] = true
	}

	for i := range posts {
		posts[i].IsLiked = likedMap[posts[i].ID]
	}
}

// fillProfileCounts 填充用户资料上的粉丝/关注数
func fillProfileCounts(user *models.User) {
	if user == nil || user.Profile == nil {
		return
	}
	followers, following := services.FollowCounts(user.ID)
	user.Profile.FollowersCount = followers
	user.Profile.FollowingCount = following
}
