package handlers

import (
	"net/http"
	"strings"
	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
	"teacup/internal/services"
	"teacup/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// List 用户列表 - 支持按用户名/姓名/简介搜索，按用户名排序
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	q := db.DB.Model(&models.User{}).Preload("Profile")

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		q = q.Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
			Where("users.username ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ? OR profiles.bio ILIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	var users []models.User
	err := q.Order("users.username ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&users).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	Paginated(c, total, page, pageSize, users)
}

// Get 单个用户（含资料和粉丝/关注数）
func (h *UserHandler) Get(c *gin.Context) {
	var user models.User
	if err := db.DB.Preload("Profile").First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	fillProfileCounts(&user)
	c.JSON(http.StatusOK, user)
}

type userUpdateRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// Update 更新用户基本信息，只能改自己的
func (h *UserHandler) Update(c *gin.Context) {
	viewer := CurrentUser(c)

	var user models.User
	if err := db.DB.Preload("Profile").First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if user.ID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only update your own profile"))
		return
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	if req.Username != nil {
		name := strings.TrimSpace(*req.Username)
		if name == "" {
			JSONError(c, apperrors.Validationf("username cannot be empty"))
			return
		}
		if len([]rune(name)) > 150 {
			JSONError(c, apperrors.Validationf("username must be at most 150 characters"))
			return
		}
		user.Username = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !strings.Contains(email, "@") {
			JSONError(c, apperrors.Validationf("a valid email is required"))
			return
		}
		if len(email) > 254 {
			JSONError(c, apperrors.Validationf("email must be at most 254 characters"))
			return
		}
		user.Email = email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := db.DB.Save(&user).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete 注销账号，只能删自己的。帖子/评论/点赞/关注边级联删除
func (h *UserHandler) Delete(c *gin.Context) {
	viewer := CurrentUser(c)

	var user models.User
	if err := db.DB.First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if user.ID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only delete your own account"))
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}
	c.Status(http.StatusNoContent)
}

type profileUpdateRequest struct {
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
}

// UpdateProfile 更新用户资料，只能改自己的
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	viewer := CurrentUser(c)

	var user models.User
	if err := db.DB.Preload("Profile").First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	if user.ID != viewer.ID {
		JSONError(c, apperrors.Forbiddenf("you can only update your own profile"))
		return
	}
	if user.Profile == nil {
		JSONError(c, apperrors.NotFoundf("profile not found"))
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	if req.Bio != nil {
		bio := utils.SanitizeText(*req.Bio)
		if len([]rune(bio)) > 500 {
			JSONError(c, apperrors.Validationf("bio must be at most 500 characters"))
			return
		}
		user.Profile.Bio = bio
	}
	if req.ProfilePicture != nil {
		user.Profile.ProfilePicture = *req.ProfilePicture
	}
	if req.Website != nil {
		user.Profile.Website = *req.Website
	}
	if req.Location != nil {
		user.Profile.Location = *req.Location
	}

	if err := db.DB.Save(user.Profile).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	fillProfileCounts(&user)
	c.JSON(http.StatusOK, user.Profile)
}

// Follow 关注目标用户
func (h *UserHandler) Follow(c *gin.Context) {
	viewer := CurrentUser(c)
	targetID := uint(utils.StringToInt(c.Param("id")))

	if err := services.FollowUser(viewer.ID, targetID); err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "following"})
}

// Unfollow 取消关注
func (h *UserHandler) Unfollow(c *gin.Context) {
	viewer := CurrentUser(c)
	targetID := uint(utils.StringToInt(c.Param("id")))

	if err := services.UnfollowUser(viewer.ID, targetID); err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}

// Followers 用户的粉丝列表
func (h *UserHandler) Followers(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	follows, err := services.FollowersOf(user.ID)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}

// Following 用户的关注列表
func (h *UserHandler) Following(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, c.Param("id")).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	follows, err := services.FollowedBy(user.ID)
	if err != nil {
		JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, follows)
}
