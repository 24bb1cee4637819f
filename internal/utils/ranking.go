package utils

import (
	"fmt"
	"time"
)

// Feed 模式
const (
	FeedModePersonalized = "personalized"
	FeedModeDiscovery    = "discovery"
	FeedModeTrending     = "trending"
)

// TrendingWindow 热门榜只看最近 7 天发布的帖子
const TrendingWindow = 7 * 24 * time.Hour

// FeedPolicy 排序策略 - mode 到 (过滤窗口, 排序, 是否允许调用方覆盖排序) 的纯映射。
// 不碰数据库，查询的拼装在 services 层
type FeedPolicy struct {
	Window            time.Duration // 0 表示不按发布时间过滤
	OrderClause       string        // SQL 排序子句
	RankByLikes       bool          // 需要在 SELECT 里带出点赞数
	AllowSortOverride bool          // trending 固定自己的顺序，忽略调用方排序
}

// 默认排序: 最新的在前，时间完全相同时用 id 兜底保证确定性
const defaultOrder = "posts.created_at DESC, posts.id DESC"

// trending: 按历史总点赞数排，点赞相同时新帖在前。
// 注意点赞数刻意不限制在 7 天窗口内，只有帖子本身的发布时间被窗口过滤，
// 这是对齐线上行为，改动它属于产品决策
const trendingOrder = "likes_count DESC, posts.created_at DESC"

// PolicyFor 返回指定模式的排序策略，未知模式报错
func PolicyFor(mode string) (FeedPolicy, error) {
	switch mode {
	case FeedModePersonalized:
		return FeedPolicy{OrderClause: defaultOrder, AllowSortOverride: true}, nil
	case FeedModeDiscovery:
		return FeedPolicy{OrderClause: defaultOrder, AllowSortOverride: true}, nil
	case FeedModeTrending:
		return FeedPolicy{
			Window:      TrendingWindow,
			OrderClause: trendingOrder,
			RankByLikes: true,
		}, nil
	default:
		return FeedPolicy{}, fmt.Errorf("unknown feed mode %q", mode)
	}
}

// SortClause 把调用方传入的排序参数翻译成 SQL 子句。
// 参数风格沿用 "-created_at" 表示倒序；白名单之外的值返回 false，
// 调用方应回落到策略默认排序而不是报错
func SortClause(sort string) (string, bool) {
	switch sort {
	case "created_at":
		return "posts.created_at ASC, posts.id ASC", true
	case "-created_at":
		return "posts.created_at DESC, posts.id DESC", true
	case "updated_at":
		return "posts.updated_at ASC, posts.id ASC", true
	case "-updated_at":
		return "posts.updated_at DESC, posts.id DESC", true
	}
	return "", false
}
