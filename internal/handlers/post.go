package handlers

import (
	"net/http"
	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
	"teacup/internal/services"
	"teacup/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// validatePostContent 清理并校验帖子正文（1-2000 字符）
func validatePostContent(raw string) (string, error) {
	content := utils.SanitizeText(raw)
	if content == "" {
		return "", apperrors.Validationf("content is required")
	}
	if len([]rune(content)) > models.PostContentMaxLen {
		return "", apperrors.Validationf("content must be at most %d characters", models.PostContentMaxLen)
	}
	return content, nil
}

type postRequest struct {
	Content  string `json:"content"`
	MediaURL string `json:"media_url"`
}

// Create 发布帖子，作者取当前登录用户
func (h *PostHandler) Create(c *gin.Context) {
	viewer := CurrentUser(c)

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	content, err := validatePostContent(req.Content)
	if err != nil {
		JSONError(c, err)
		return
	}

	post := models.Post{
		UserID:   viewer.ID,
		Content:  content,
		MediaURL: req.MediaURL,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	// 新帖直接出现在公共 feed 里，主动失效缓存页
	invalidatePublicFeedPages()

	post.User = *viewer
	c.JSON(http.StatusCreated, post)
}

// Get 帖子详情，带评论（评论按时间正序）
func (h *PostHandler) Get(c *gin.Context) {
	viewerID := uint(0)
	if viewer := CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}

	var post models.Post
	err := db.DB.Preload("User").Preload("User.Profile").
		First(&post, c.Param("id")).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	posts := []models.Post{post}
	fillPostMeta(posts, viewerID)
	post = posts[0]

	var comments []models.Comment
	err = db.DB.Preload("User").Preload("User.Profile").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             post.ID,
		"content":        post.Content,
		"author":         post.User,
		"media_url":      post.MediaURL,
		"created_at":     post.CreatedAt,
		"updated_at":     post.UpdatedAt,
		"likes_count":    post.LikesCount,
		"comments_count": post.CommentsCount,
		"is_liked":       post.IsLiked,
		"comments":       comments,
	})
}

// List 帖子列表 - 支持按作者过滤、搜索、排序覆盖
func (h *PostHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	viewerID := uint(0)
	if viewer := CurrentUser(c); viewer != nil {
		viewerID = viewer.ID
	}

	q := db.DB.Model(&models.Post{}).Preload("User").Preload("User.Profile")

	if author := c.Query("author"); author != "" {
		q = q.Where("posts.user_id = ?", utils.StringToInt(author))
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		q = q.Joins("JOIN users ON users.id = posts.user_id").
			Where("posts.content ILIKE ? OR users.username ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	order := "posts.created_at DESC, posts.id DESC"
	if clause, ok := utils.SortClause(c.Query("sort")); ok {
		order = clause
	}

	var posts []models.Post
	err := q.Order(order).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&posts).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	fillPostMeta(posts, viewerID)
	Paginated(c, total, page, pageSize, posts)
}

// Update 编辑帖子，作者之外的人返回 403。作者字段发布后不可变
func (h *PostHandler) Update(c *gin.Context) {
	viewer := CurrentUser(c)

	var post models.Post
	if err := db.DB.Preload("User").Preload("User.Profile").First(&post, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if post.UserID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only update your own posts"))
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	content, err := validatePostContent(req.Content)
	if err != nil {
		JSONError(c, err)
		return
	}

	post.Content = content
	post.MediaURL = req.MediaURL
	if err := db.DB.Save(&post).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	// 公共 feed 页缓存直接失效，下一次请求重算
	invalidatePublicFeedPages()

	c.JSON(http.StatusOK, post)
}

// Delete 删除帖子，作者之外的人返回 403
func (h *PostHandler) Delete(c *gin.Context) {
	viewer := CurrentUser(c)

	var post models.Post
	if err := db.DB.First(&post, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if post.UserID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only delete your own posts"))
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	invalidatePublicFeedPages()

	c.Status(http.StatusNoContent)
}

// Like 点赞
func (h *PostHandler) Like(c *gin.Context) {
	viewer := CurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	if err := services.LikePost(viewer.ID, postID); err != nil {
		JSONError(c, err)
		return
	}

	// 点赞数是热门榜的排序信号，缓存页必须跟着失效
	invalidatePublicFeedPages()

	c.JSON(http.StatusCreated, gin.H{"message": "post liked"})
}

// Unlike 取消点赞
func (h *PostHandler) Unlike(c *gin.Context) {
	viewer := CurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	if err := services.UnlikePost(viewer.ID, postID); err != nil {
		JSONError(c, err)
		return
	}

	invalidatePublicFeedPages()

	c.JSON(http.StatusOK, gin.H{"message": "post unliked"})
}

// Likes 帖子的点赞列表
func (h *PostHandler) Likes(c *gin.Context) {
	postID := uint(utils.StringToInt(c.Param("id")))

	likes, err := services.LikesOf(postID)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// Comments 帖子的评论列表，按时间正序
func (h *PostHandler) Comments(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	var comments []models.Comment
	err := db.DB.Preload("User").Preload("User.Profile").
		Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	c.JSON(http.StatusOK, comments)
}

type commentRequest struct {
	Content string `json:"content"`
}

// AddComment 发表评论
func (h *PostHandler) AddComment(c *gin.Context) {
	viewer := CurrentUser(c)

	var post models.Post
	if err := db.DB.First(&post, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	content := utils.SanitizeText(req.Content)
	if content == "" {
		JSONError(c, apperrors.Validationf("content is required"))
		return
	}
	if len([]rune(content)) > models.CommentContentMaxLen {
		JSONError(c, apperrors.Validationf("content must be at most %d characters", models.CommentContentMaxLen))
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  viewer.ID,
		Content: content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	comment.User = *viewer
	c.JSON(http.StatusCreated, comment)
}
