package flightstatus

import (
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/turnlog/turnlog/pkg/redis_client"
)

// Cache holds flight status API responses for a fixed expiration so that the
// dashboard refreshing a status page does not burn through the API quota.
// It is an explicit object handed to the Client rather than package state
type Cache struct {
	Cache *cache.Cache[string]
}

func NewCache(expiration time.Duration) *Cache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(expiration))

	return &Cache{
		Cache: cache.New[string](redisStore),
	}
}
