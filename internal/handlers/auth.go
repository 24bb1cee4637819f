package handlers

import (
	"net/http"
	"strings"
	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
	"teacup/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"gorm.io/gorm"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

// Register 注册新用户。User 和 Profile 在同一个事务里创建：
// 资料是注册操作的显式后置条件，不走任何隐式钩子
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" {
		JSONError(c, apperrors.Validationf("username is required"))
		return
	}
	// 长度上限对齐列宽，超长在这里报 400 而不是打到数据库
	if len([]rune(req.Username)) > 150 {
		JSONError(c, apperrors.Validationf("username must be at most 150 characters"))
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		JSONError(c, apperrors.Validationf("a valid email is required"))
		return
	}
	if len(req.Email) > 254 {
		JSONError(c, apperrors.Validationf("email must be at most 254 characters"))
		return
	}
	if len(req.Password) < 6 {
		JSONError(c, apperrors.Validationf("password must be at least 6 characters"))
		return
	}
	if req.Password != req.PasswordConfirm {
		JSONError(c, apperrors.Validationf("passwords don't match"))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, err)
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{UserID: user.ID}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile
		return nil
	})
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, apperrors.Validationf("invalid request body"))
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// 不区分"用户不存在"和"密码错误"
		JSONError(c, apperrors.Validationf("invalid email or password"))
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		JSONError(c, apperrors.Validationf("invalid email or password"))
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.JSON(http.StatusOK, gin.H{"message": "logged in", "user_id": user.ID})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
