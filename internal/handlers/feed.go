package handlers

import (
	"time"

	"teacup/internal/apperrors"
	"teacup/internal/models"
	"teacup/internal/services"
	"teacup/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FeedHandler struct{}

func NewFeedHandler() *FeedHandler {
	return &FeedHandler{}
}

// feedPage 缓存的公共 feed 页（计数已填充，is_liked 未填充）
type feedPage struct {
	Posts []models.Post
	Total int64
}

func feedCacheKey(mode string) string {
	return "feed:" + mode + ":page:1"
}

// invalidatePublicFeedPages 在写路径上主动失效公共 feed 缓存页。
// 热门榜按点赞数排序，缓存的 likes_count 也随点赞变化，
// 所以点赞/取消点赞和帖子增删改一样要走这里
func invalidatePublicFeedPages() {
	utils.GetCache().Delete(feedCacheKey(utils.FeedModeDiscovery))
	utils.GetCache().Delete(feedCacheKey(utils.FeedModeTrending))
}

// MyFeed 个性化 feed - 关注的人 + 自己的帖子，必须登录
func (h *FeedHandler) MyFeed(c *gin.Context) {
	viewer := CurrentUser(c)
	if viewer == nil {
		JSONError(c, apperrors.ErrUnauthenticated)
		return
	}
	h.serve(c, utils.FeedModePersonalized, viewer)
}

// Discover 发现页 - 全部作者的帖子，无需登录
func (h *FeedHandler) Discover(c *gin.Context) {
	h.serve(c, utils.FeedModeDiscovery, CurrentUser(c))
}

// Trending 热门榜 - 最近 7 天的帖子按总点赞数排序，无需登录
func (h *FeedHandler) Trending(c *gin.Context) {
	h.serve(c, utils.FeedModeTrending, CurrentUser(c))
}

func (h *FeedHandler) serve(c *gin.Context, mode string, viewer *models.User) {
	page, pageSize := ParsePagination(c)
	opts := services.FeedOptions{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	viewerID := uint(0)
	if viewer != nil {
		viewerID = viewer.ID
	}

	// 只有公共模式的默认第一页走共享缓存；is_liked 随 viewer 变化，
	// 缓存命中后仍按请求单独填充（共享数据 + 私有状态分离）
	cacheable := mode != utils.FeedModePersonalized &&
		page == 1 && pageSize == DefaultPageSize &&
		opts.Search == "" && opts.Sort == ""

	if cacheable {
		if cached := utils.GetCache().Get(feedCacheKey(mode)); cached != nil {
			if pageData, ok := cached.(feedPage); ok {
				posts := make([]models.Post, len(pageData.Posts))
				copy(posts, pageData.Posts)
				fillViewerLikes(posts, viewerID)
				Paginated(c, pageData.Total, page, pageSize, posts)
				return
			}
		}
	}

	q, err := services.BuildFeed(viewer, mode, opts)
	if err != nil {
		JSONError(c, err)
		return
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	var posts []models.Post
	err = q.Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&posts).Error
	if err != nil {
		JSONError(c, apperrors.FromDB(err))
		return
	}

	fillPostCounts(posts)

	if cacheable {
		cachedPosts := make([]models.Post, len(posts))
		copy(cachedPosts, posts)
		utils.GetCache().Set(feedCacheKey(mode), feedPage{Posts: cachedPosts, Total: total}, 1*time.Minute)
	}

	fillViewerLikes(posts, viewerID)
	Paginated(c, total, page, pageSize, posts)
}
