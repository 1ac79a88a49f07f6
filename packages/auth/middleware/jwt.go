package middleware

import (
	"net/http"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextNickname = "nickname"
	ContextRoles    = "token_roles"
)

// JWTMiddleware rejects requests without a valid bearer token and stores the caller's
// identity in the gin context.
func JWTMiddleware(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, tokens)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalJWTMiddleware stores the identity when a valid token is present and lets
// anonymous requests through.
func OptionalJWTMiddleware(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, tokens); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, tokens *utils.TokenService) (*utils.Claims, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := tokens.ValidateToken(strings.TrimSpace(tokenString))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *utils.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextNickname, claims.Nickname)
	c.Set(ContextRoles, claims.Roles)
}

func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func GetNickname(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextNickname)
	if !exists {
		return "", false
	}
	nickname, ok := v.(string)
	return nickname, ok && nickname != ""
}
