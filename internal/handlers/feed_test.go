package handlers

import (
	"net/http"
	"testing"
)

// 个性化 feed 未登录必须直接 401，不能落到发现页
func TestMyFeedRequiresLogin(t *testing.T) {
	c, w := newTestContext(t, "/api/v1/feed/my_feed")
	NewFeedHandler().MyFeed(c)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestFeedCacheKey(t *testing.T) {
	if got := feedCacheKey("trending"); got != "feed:trending:page:1" {
		t.Errorf("feedCacheKey = %q", got)
	}
	if feedCacheKey("discovery") == feedCacheKey("trending") {
		t.Error("cache keys must be distinct per mode")
	}
}
