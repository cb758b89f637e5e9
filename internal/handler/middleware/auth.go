package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	jwtpkg "tapstar/reviewgate/pkg/jwt"
	"tapstar/reviewgate/pkg/response"
)

const ContextKeyAdminClaims = "admin_claims"

// TokenRevocations reports whether a token JTI was revoked by a logout.
type TokenRevocations interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AdminAuth validates the bearer token for the staff dashboard and rejects
// revoked tokens.
func AdminAuth(jwtManager *jwtpkg.Manager, revocations TokenRevocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization format")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != jwtpkg.TokenTypeAccess {
			response.Unauthorized(c, "invalid token type")
			c.Abort()
			return
		}

		revoked, err := revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			response.InternalError(c, "failed to check token")
			c.Abort()
			return
		}
		if revoked {
			response.Unauthorized(c, "token revoked")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdminClaims, claims)
		c.Next()
	}
}
