package services

import (
	"context"
	"log"
	"time"

	"alandalus-portal/app/config"
)

// List responses are cached per entity key and invalidated wholesale after
// any mutation of that entity, forcing the next list to refetch. Caching is
// a no-op when Redis is not configured.

const cacheTTL = 5 * time.Minute

func cacheKey(entity string) string {
	return "list:" + entity
}

// CacheGet returns the cached list body for an entity, if present.
func CacheGet(entity string) ([]byte, bool) {
	rdb := config.GetRedis()
	if rdb == nil {
		return nil, false
	}
	body, err := rdb.Get(context.Background(), cacheKey(entity)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// CacheSet stores a list body for an entity.
func CacheSet(entity string, body []byte) {
	rdb := config.GetRedis()
	if rdb == nil {
		return
	}
	if err := rdb.Set(context.Background(), cacheKey(entity), body, cacheTTL).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v", entity, err)
	}
}

// InvalidateCache drops the cached list for an entity. Called after every
// insert/update/delete on that entity.
func InvalidateCache(entity string) {
	rdb := config.GetRedis()
	if rdb == nil {
		return
	}
	if err := rdb.Del(context.Background(), cacheKey(entity)).Err(); err != nil {
		log.Printf("Cache invalidation failed for %s: %v", entity, err)
	}
}
