package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports service liveness plus DB and Redis connectivity.
// Never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		status := http.StatusOK
		message := "Server attendance berjalan"
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
			message = "Server attendance terganggu"
		}

		c.JSON(status, gin.H{
			"success":     status == http.StatusOK,
			"message":     message,
			"timestamp":   time.Now().Format(time.RFC3339),
			"environment": environment,
			"db":          dbStatus,
			"redis":       redisStatus,
		})
	}
}
