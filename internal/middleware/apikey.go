package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"assetpipe/internal/domain"
	"assetpipe/internal/modules/apikey"
	"assetpipe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type APIKeyStore interface {
	GetByHash(ctx context.Context, keyHash string) (*domain.APIKey, error)
	TouchUsage(ctx context.Context, id string) error
}

// APIKeyAuth guards the public v1 endpoints. It resolves the Bearer value
// through its sha256 hash, rejects inactive keys, and bumps the usage
// counters off the request path. A failed counter update is logged and
// otherwise ignored.
func APIKeyAuth(store APIKeyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED",
				"Missing or invalid Authorization header. Use: Bearer YOUR_API_KEY")
			c.Abort()
			return
		}

		plaintext := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		key, err := store.GetByHash(c.Request.Context(), apikey.HashKey(plaintext))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key")
			c.Abort()
			return
		}

		if !key.IsActive {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "API key has been deactivated")
			c.Abort()
			return
		}

		go func(id string) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.TouchUsage(ctx, id); err != nil {
				log.Printf("api_key_usage_update_failed key_id=%s error=%q", id, err)
			}
		}(key.ID)

		c.Set("api_key_id", key.ID)
		c.Set("api_key_user_id", key.UserID)

		c.Next()
	}
}
