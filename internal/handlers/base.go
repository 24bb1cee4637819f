package handlers

import (
	"errors"
	"net/http"
	"teacup/internal/apperrors"
	"teacup/internal/middleware"
	"teacup/internal/models"
	"teacup/internal/utils"

	"github.com/gin-gonic/gin"
)

// 分页参数边界（默认 20，上限 100）
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CurrentUser 从请求上下文取出已登录用户，未登录返回 nil
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// JSONError 把 apperrors 的错误分类统一翻译成 HTTP 状态码。
// 重复点赞/关注和校验失败都按调用方错误返回 400
func JSONError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// ParsePagination 解析 page/page_size，越界时收回边界值
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page = utils.StringToInt(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize = utils.StringToInt(c.DefaultQuery("page_size", "0"))
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Paginated 统一的列表响应结构
func Paginated(c *gin.Context, total int64, page, pageSize int, results interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"count":     total,
		"page":      page,
		"page_size": pageSize,
		"results":   results,
	})
}
