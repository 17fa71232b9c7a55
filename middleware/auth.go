// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"myadvisor/database/repository"
	"myadvisor/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, checks it against the
// persisted token hash (auth cache first, database on a miss) and places the
// authenticated user in the request context.
func JWTAuthMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + computedHash

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Auth cache maps token hashes to user IDs; fall back to the
		// database when it is cold or unavailable.
		if cached, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result(); err == nil {
			if id, parseErr := strconv.ParseUint(cached, 10, 32); parseErr == nil {
				usr, dbErr := userRepo.GetByID(uint(id))
				if dbErr == nil && usr.AuthTokenHash == computedHash {
					c.Set("user", *usr)
					c.Set("userID", usr.ID)
					c.Next()
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		} else if err != redis.Nil {
			logger.Warn("auth cache lookup failed, falling back to database", zap.Error(err))
		}

		usr, err := userRepo.GetByTokenHash(computedHash)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, usr.ID, time.Hour).Err(); err != nil {
			logger.Warn("failed to prime auth cache", zap.Error(err))
		}

		c.Set("user", *usr)
		c.Set("userID", usr.ID)
		c.Next()
	}
}
