package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthTimeout = 3 * time.Second

// Health reports liveness plus the state of the two backing stores.
// The POS front-end polls this, so it stays cheap: one ping each,
// bounded by a short timeout.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		postgres := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "indisponivel"
		}

		cache := "ok"
		if rdb.Ping(ctx).Err() != nil {
			cache = "indisponivel"
		}

		status, code := "ok", http.StatusOK
		if postgres != "ok" || cache != "ok" {
			status, code = "degradado", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":   status,
			"postgres": postgres,
			"redis":    cache,
		})
	}
}
