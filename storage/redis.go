package storage

import (
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// InitializeRedis connects the rate-limiter backend. When REDIS_URL is not
// set the client stays nil and rate limiting is disabled.
func InitializeRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, rate limiting disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "",
		DB:       0,
	})

	log.Println("Redis initialized with address:", redisURL)
}
