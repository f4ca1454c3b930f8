// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"nepwork/config"

	"github.com/go-redis/redis/v8"
)

// PreferenceClient backs the persisted role and token preferences.
var PreferenceClient *redis.Client

// InitPreferenceCache initializes the Redis client for role/token preferences.
func InitPreferenceCache() {
	PreferenceClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := PreferenceClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Preferences): %v", err)
	}
}

// GetPreferenceClient returns the Redis client for role/token preferences.
func GetPreferenceClient() *redis.Client {
	if PreferenceClient == nil {
		InitPreferenceCache()
	}
	return PreferenceClient
}
