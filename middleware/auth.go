package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/user"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

// JWTAuthMiddleware validates the bearer token and binds userID/role into the
// request context. The token hash cached at login is checked first; on a
// cache miss the hash persisted on the user row decides, so revoked tokens
// die immediately even when the cache entry has expired.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		ctx := context.Background()
		computedHash := utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, utils.AuthCachePrefix+userID).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
				})
				return
			}
			// Sliding expiry while the session is active.
			_ = authCache.Expire(ctx, utils.AuthCachePrefix+userID, utils.AuthCacheTTL).Err()
		} else {
			// Cache miss or cache outage: the persisted hash decides. A
			// presented token is never trusted on its signature alone, so a
			// logout survives cache expiry.
			if !verifyPersistedToken(ctx, users, userID, computedHash) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session revoked or expired",
				})
				return
			}
			if setErr := authCache.Set(ctx, utils.AuthCachePrefix+userID, computedHash, utils.AuthCacheTTL).Err(); setErr != nil {
				zap.L().Warn("failed to repopulate auth cache", zap.Error(setErr))
			}
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// verifyPersistedToken compares the presented token hash against the hash
// stored on the user row. An empty stored hash means the session was revoked.
func verifyPersistedToken(ctx context.Context, users userRepo.UserRepository, userID, computedHash string) bool {
	u, err := users.GetByID(ctx, userID)
	if err != nil {
		zap.L().Warn("auth fallback lookup failed", zap.String("userId", userID), zap.Error(err))
		return false
	}
	return u.TokenHash != "" && u.TokenHash == computedHash
}
