package utils

import (
	"testing"
	"time"
)

func TestGlobalCache(t *testing.T) {
	cache := GetCache()

	t.Run("set and get", func(t *testing.T) {
		cache.Set("test:hit", "hello", time.Minute)
		got := cache.Get("test:hit")
		if got != "hello" {
			t.Errorf("Get = %v, want hello", got)
		}
	})

	t.Run("miss", func(t *testing.T) {
		if got := cache.Get("test:missing"); got != nil {
			t.Errorf("Get on missing key = %v, want nil", got)
		}
	})

	t.Run("expired", func(t *testing.T) {
		cache.Set("test:expired", "stale", -time.Second)
		if got := cache.Get("test:expired"); got != nil {
			t.Errorf("Get on expired key = %v, want nil", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		cache.Set("test:gone", 42, time.Minute)
		cache.Delete("test:gone")
		if got := cache.Get("test:gone"); got != nil {
			t.Errorf("Get after Delete = %v, want nil", got)
		}
	})

	t.Run("singleton", func(t *testing.T) {
		if GetCache() != cache {
			t.Error("GetCache should return the same instance")
		}
	})
}
