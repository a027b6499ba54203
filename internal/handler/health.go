package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"restopanel/internal/datamode"
)

// Health returns a JSON health check response. Redis is required; the remote
// document backend is only probed when configured. Never exposes credentials
// or internals.
func Health(db *mongo.Database, rdb *redis.Client, modes *datamode.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		remoteStatus := "not configured"
		if db != nil {
			remoteStatus = "connected"
			if db.Client().Ping(ctx, readpref.Primary()) != nil {
				remoteStatus = "error"
			}
		}

		status := http.StatusOK
		if redisStatus != "connected" || remoteStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":     status == http.StatusOK,
			"redis":  redisStatus,
			"remote": remoteStatus,
			"mode":   string(modes.Mode()),
		})
	}
}
