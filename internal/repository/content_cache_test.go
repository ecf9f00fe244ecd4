package repository

import (
	"testing"
	"time"
)

func TestContentCacheDisabledWithoutRedis(t *testing.T) {
	caches := map[string]*ContentCache{
		"nil cache":  nil,
		"nil client": NewContentCache(nil, time.Minute),
	}

	for name, cache := range caches {
		t.Run(name, func(t *testing.T) {
			var out []string
			cache.Set(cacheKeyChallenges, []string{"a"})
			if cache.Get(cacheKeyChallenges, &out) {
				t.Fatalf("expected miss, got %v", out)
			}
			cache.Invalidate(cacheKeyChallenges)
		})
	}
}
