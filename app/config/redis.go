package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

// ConnectRedis connects the optional list cache. When REDIS_ADDR is not set
// the client stays nil and callers skip caching entirely.
func ConnectRedis() {
	addr := GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, list caching disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: GetEnv("REDIS_PASSWORD"),
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		log.Printf("Redis connection failed, caching disabled: %v", err)
		RDB = nil
		return
	}

	log.Println("Redis connected successfully")
}

func GetRedis() *redis.Client {
	return RDB
}
