package handlers

import (
	"net/http"
	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
	"teacup/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// List 评论列表 - 支持按帖子/作者过滤，按时间正序
func (h *CommentHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	q := db.DB.Model(&models.Comment{}).Preload("User").Preload("User.Profile")

	if post := c.Query("post"); post != "" {
		q = q.Where("post_id = ?", utils.StringToInt(post))
	}
	if author := c.Query("author"); author != "" {
		q = q.Where("user_id = ?", utils.StringToInt(author))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	var comments []models.Comment
	err := q.Order("created_at ASC, id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&comments).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	Paginated(c, total, page, pageSize, comments)
}

// Get 单条评论
func (h *CommentHandler) Get(c *gin.Context) {
	var comment models.Comment
	err := db.DB.Preload("User").Preload("User.Profile").
		First(&comment, c.Param("id")).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Update 编辑评论，只能改自己的
func (h *CommentHandler) Update(c *gin.Context) {
	viewer := CurrentUser(c)

	var comment models.Comment
	if err := db.DB.Preload("User").Preload("User.Profile").First(&comment, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if comment.UserID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only update your own comments"))
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

	comment.Content = content
	if err := db.DB.Save(&comment).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete 删除评论，只能删自己的
func (h *CommentHandler) Delete(c *gin.Context) {
	viewer := CurrentUser(c)

	var comment models.Comment
	if err := db.DB.First(&comment, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if comment.UserID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only delete your own comments"))
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	c.Status(http.StatusNoContent)
}
