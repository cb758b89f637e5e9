package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tapstar/reviewgate/internal/config"
	"tapstar/reviewgate/internal/handler/middleware"
	jwtpkg "tapstar/reviewgate/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	revocations middleware.TokenRevocations,
	tenantHandler *TenantHandler,
	ratingHandler *RatingHandler,
	couponHandler *CouponHandler,
	feedbackHandler *FeedbackHandler,
	adminHandler *AdminHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public customer-facing routes
	api := r.Group("/api/v1")
	{
		api.GET("/t/:slug", tenantHandler.Get)
		api.GET("/t/:slug/qr.png", tenantHandler.QRCode)
		api.POST("/t/:slug/ratings", ratingHandler.Submit)
		api.POST("/t/:slug/claims", couponHandler.Claim)
		api.POST("/t/:slug/feedback", feedbackHandler.Submit)

		// Coupon pages: the opaque id in the URL is the only access control,
		// matching how the printed/linked coupon is handed around.
		api.GET("/coupons/:id", couponHandler.Get)
		api.POST("/coupons/:id/redeem", couponHandler.Redeem)
	}

	// Staff dashboard
	admin := r.Group("/api/v1/admin")
	admin.POST("/login", adminHandler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(jwtManager, revocations))
	{
		protected.POST("/logout", adminHandler.Logout)
		protected.GET("/tenants", adminHandler.ListTenants)
		protected.GET("/tenants/:slug/visits", adminHandler.ListVisits)
		protected.GET("/tenants/:slug/coupons", adminHandler.ListCoupons)
		protected.GET("/tenants/:slug/feedback", adminHandler.ListFeedback)
	}

	return r
}
