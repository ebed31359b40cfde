package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hr-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Idempotency guards POST submissions carrying an Idempotency-Key header.
// The console retries a failed create with the same key, so a duplicate
// that is still being processed gets a 409 instead of a second insert.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		uid := ""
		if v, ok := c.Get("user_id"); ok {
			if id, ok := v.(int64); ok {
				uid = strconv.FormatInt(id, 10)
			}
		}

		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), uid, idempKey)

		// SetNX is atomic; the short expiry releases the lock if the server
		// dies mid-request.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			response.Error(c, http.StatusConflict, "This submission is already being processed")
			c.Abort()
			return
		}

		c.Set("idempotency_lock_key", lockKey)
		c.Next()

		rdb.Del(c.Request.Context(), lockKey)
	}
}
