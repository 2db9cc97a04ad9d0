package lib

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func GetRedisClient() *redis.Client {
	if redisClient != nil {
		return redisClient
	}
	redisHost := os.Getenv("REDIS_HOST")
	opt, err := redis.ParseURL(redisHost)
	if err != nil {
		log.Printf("[redis] Error parsing connection string: %s\n", err.Error())
		return nil
	}
	rdb := redis.NewClient(opt)
	redisClient = rdb
	return rdb
}

// NewRedisClient Replace redis instance with custom client implementation
func NewRedisClient(c *redis.Client) *redis.Client {
	redisClient = c
	return redisClient
}

const pdfCacheTTL = 10 * time.Minute

// CachedPDF returns a previously rendered document for the key, or nil on
// miss or when redis is unavailable. Cache failures are fail-soft.
func CachedPDF(ctx context.Context, key string) []byte {
	rdb := GetRedisClient()
	if rdb == nil {
		return nil
	}
	data, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	} else if err != nil {
		log.Printf("[redis] pdf cache read %s: %s\n", key, err.Error())
		return nil
	}
	return data
}

func CachePDF(ctx context.Context, key string, data []byte) {
	rdb := GetRedisClient()
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, key, data, pdfCacheTTL).Err(); err != nil {
		log.Printf("[redis] pdf cache write %s: %s\n", key, err.Error())
	}
}
