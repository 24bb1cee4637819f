package services

import (
	"time"

	"teacup/internal/apperrors"
	"teacup/internal/db"
	"teacup/internal/models"
	"teacup/internal/utils"

	"gorm.io/gorm"
)

// FeedOptions 调用方可选的搜索/排序参数。
// Now 留给测试注入，零值时取当前时间
type FeedOptions struct {
	Search string
	Sort   string
	Now    time.Time
}

// BuildFeed 构建 feed 查询 - 给定 viewer 和模式，返回已过滤、已排序、
// 未分页的帖子查询，分页和序列化由 handler 层完成。
//
// personalized: 候选作者 = 关注集 ∪ 自己，必须有已登录的 viewer
// discovery:    所有作者
// trending:     所有作者 + 7 天发布窗口，排序固定为总点赞数优先
func BuildFeed(viewer *models.User, mode string, opts FeedOptions) (*gorm.DB, error) {
	policy, err := utils.PolicyFor(mode)
	if err != nil {
		return nil, apperrors.Validationf("%v", err)
	}

	if mode == utils.FeedModePersonalized && viewer == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	q := db.DB.Model(&models.Post{}).
		Preload("User").Preload("User.Profile")

	if mode == utils.FeedModePersonalized {
		authorIDs, err := FollowingOf(viewer.ID)
		if err != nil {
			return nil, err
		}
		// 自己的帖子也出现在个性化 feed 里
		authorIDs = append(authorIDs, viewer.ID)
		q = q.Where("posts.user_id IN ?", authorIDs)
	}

	if policy.Window > 0 {
		q = q.Where("posts.created_at >= ?", now.Add(-policy.Window))
	}

	if opts.Search != "" {
		// 大小写不敏感的子串匹配：帖子内容或作者用户名
		pattern := "%" + opts.Search + "%"
		q = q.Joins("JOIN users ON users.id = posts.user_id").
			Where("posts.content ILIKE ? OR users.username ILIKE ?", pattern, pattern)
	}

	if policy.RankByLikes {
		// 排序用的点赞数是全量统计，只有帖子的发布时间被窗口过滤
		q = q.Select("posts.*, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count")
	}

	order := policy.OrderClause
	if policy.AllowSortOverride && opts.Sort != "" {
		// 白名单外的排序参数直接忽略，回落到默认排序
		if clause, ok := utils.SortClause(opts.Sort); ok {
			order = clause
		}
	}

	return q.Order(order), nil
}
