package utils

import (
	"testing"
	"time"
)

func TestPolicyFor(t *testing.T) {
	t.Run("personalized", func(t *testing.T) {
		p, err := PolicyFor(FeedModePersonalized)
		if err != nil {
			t.Fatalf("PolicyFor failed: %v", err)
		}
		if p.Window != 0 {
			t.Errorf("personalized should not have a time window, got %v", p.Window)
		}
		if !p.AllowSortOverride {
			t.Error("personalized should allow sort override")
		}
		if p.RankByLikes {
			t.Error("personalized should not rank by likes")
		}
		if p.OrderClause != "posts.created_at DESC, posts.id DESC" {
			t.Errorf("unexpected order clause: %s", p.OrderClause)
		}
	})

	t.Run("discovery", func(t *testing.T) {
		p, err := PolicyFor(FeedModeDiscovery)
		if err != nil {
			t.Fatalf("PolicyFor failed: %v", err)
		}
		if p.Window != 0 {
			t.Errorf("discovery should not have a time window, got %v", p.Window)
		}
		if !p.AllowSortOverride {
			t.Error("discovery should allow sort override")
		}
	})

	t.Run("trending", func(t *testing.T) {
		p, err := PolicyFor(FeedModeTrending)
		if err != nil {
			t.Fatalf("PolicyFor failed: %v", err)
		}
		if p.Window != 7*24*time.Hour {
			t.Errorf("trending window should be 7 days, got %v", p.Window)
		}
		// trending 固定自己的顺序，调用方排序参数无效
		if p.AllowSortOverride {
			t.Error("trending must not allow sort override")
		}
		if !p.RankByLikes {
			t.Error("trending must rank by likes")
		}
		if p.OrderClause != "likes_count DESC, posts.created_at DESC" {
			t.Errorf("unexpected order clause: %s", p.OrderClause)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if _, err := PolicyFor("hot"); err == nil {
			t.Error("expected error for unknown mode")
		}
		if _, err := PolicyFor(""); err == nil {
			t.Error("expected error for empty mode")
		}
	})
}

func TestSortClause(t *testing.T) {
	cases := []struct {
		sort   string
		want   string
		wantOK bool
	}{
		{"created_at", "posts.created_at ASC, posts.id ASC", true},
		{"-created_at", "posts.created_at DESC, posts.id DESC", true},
		{"updated_at", "posts.updated_at ASC, posts.id ASC", true},
		{"-updated_at", "posts.updated_at DESC, posts.id DESC", true},
		{"likes_count", "", false}, // 白名单之外
		{"id; DROP TABLE posts", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := SortClause(tc.sort)
		if ok != tc.wantOK {
			t.Errorf("SortClause(%q) ok = %v, want %v", tc.sort, ok, tc.wantOK)
		}
		if got != tc.want {
			t.Errorf("SortClause(%q) = %q, want %q", tc.sort, got, tc.want)
		}
	}
}
