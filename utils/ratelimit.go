package utils

import (
	"time"

	"hbnb-clone-server/storage"

	"github.com/kataras/iris/v12"
)

// RateLimit is a fixed-window per-client limiter backed by Redis. With no
// Redis configured, or with Redis unreachable, requests pass through.
func RateLimit(limit int64, window time.Duration) iris.Handler {
	return func(ctx iris.Context) {
		if storage.Redis == nil {
			ctx.Next()
			return
		}

		rctx := ctx.Request().Context()
		key := "ratelimit:" + ctx.RemoteAddr()

		n, err := storage.Redis.Incr(rctx, key).Result()
		if err != nil {
			ctx.Next()
			return
		}
		if n == 1 {
			storage.Redis.Expire(rctx, key, window)
		}
		if n > limit {
			JSONMsg(ctx, iris.StatusTooManyRequests, 429, "Too many requests")
			return
		}
		ctx.Next()
	}
}
