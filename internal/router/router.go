package router

import (
	"net/http"
	"teacup/internal/handlers"
	"teacup/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	userHandler := handlers.NewUserHandler()
	postHandler := handlers.NewPostHandler()
	commentHandler := handlers.NewCommentHandler()
	feedHandler := handlers.NewFeedHandler()

	// API root
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Teacup Social Media API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"users":    "/api/v1/users",
				"posts":    "/api/v1/posts",
				"comments": "/api/v1/comments",
				"feed":     "/api/v1/feed",
				"auth":     "/api/v1/auth",
			},
		})
	})

	api := r.Group("/api/v1")

	// 公共路由 (Public Routes)
	api.POST("/users", authHandler.Register)           // 注册（User + Profile 同事务创建）
	api.GET("/users", userHandler.List)                // 用户列表/搜索
	api.GET("/users/:id", userHandler.Get)             // 用户详情
	api.GET("/users/:id/followers", userHandler.Followers) // 粉丝列表
	api.GET("/users/:id/following", userHandler.Following) // 关注列表

	api.POST("/auth/login", authHandler.Login)   // 登录
	api.POST("/auth/logout", authHandler.Logout) // 退出登录

	api.GET("/posts", postHandler.List)              // 帖子列表/搜索
	api.GET("/posts/:id", postHandler.Get)           // 帖子详情（含评论）
	api.GET("/posts/:id/likes", postHandler.Likes)   // 帖子点赞列表
	api.GET("/posts/:id/comments", postHandler.Comments) // 帖子评论列表

	api.GET("/comments", commentHandler.List)    // 评论列表
	api.GET("/comments/:id", commentHandler.Get) // 评论详情

	api.GET("/feed/discover", feedHandler.Discover) // 发现页
	api.GET("/feed/trending", feedHandler.Trending) // 热门榜（7 天窗口）

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.PUT("/users/:id", userHandler.Update)                 // 更新用户信息（仅本人）
		authorized.DELETE("/users/:id", userHandler.Delete)              // 注销账号（仅本人，级联删除）
		authorized.PATCH("/users/:id/profile", userHandler.UpdateProfile) // 更新资料（仅本人）
		authorized.POST("/users/:id/follow", userHandler.Follow)         // 关注
		authorized.POST("/users/:id/unfollow", userHandler.Unfollow)     // 取消关注

		authorized.POST("/posts", postHandler.Create)               // 发布帖子
		authorized.PUT("/posts/:id", postHandler.Update)            // 编辑帖子（仅作者）
		authorized.DELETE("/posts/:id", postHandler.Delete)         // 删除帖子（仅作者）
		authorized.POST("/posts/:id/like", postHandler.Like)        // 点赞
		authorized.POST("/posts/:id/unlike", postHandler.Unlike)    // 取消点赞
		authorized.POST("/posts/:id/comments", postHandler.AddComment) // 发表评论

		authorized.PUT("/comments/:id", commentHandler.Update)    // 编辑评论（仅作者）
		authorized.DELETE("/comments/:id", commentHandler.Delete) // 删除评论（仅作者）

		authorized.GET("/feed/my_feed", feedHandler.MyFeed) // 个性化 feed
	}
}
