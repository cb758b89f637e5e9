package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tapstar/reviewgate/internal/handler/middleware"
	jwtpkg "tapstar/reviewgate/pkg/jwt"
)

func getClaimsFromContext(c *gin.Context) (*jwtpkg.Claims, error) {
	claimsVal, exists := c.Get(middleware.ContextKeyAdminClaims)
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*jwtpkg.Claims)
	if !ok {
		return nil, ErrNoClaims
	}
	return claims, nil
}

var ErrNoClaims = errors.New("claims not found in context")
