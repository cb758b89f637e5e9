package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tapstar/reviewgate/internal/service"
	"tapstar/reviewgate/pkg/response"
)

type CouponHandler struct {
	couponService service.CouponService
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService}
}

type ClaimRequest struct {
	Contact string `json:"contact" binding:"required"`
}

// Claim issues a coupon to the submitted contact for the tenant's reward.
func (h *CouponHandler) Claim(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	coupon, err := h.couponService.Claim(c.Request.Context(), c.Param("slug"), req.Contact)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactRequired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrTenantNotFound):
			response.NotFound(c, "tenant not found")
		case errors.Is(err, service.ErrRewardNotConfigured):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c, "failed to issue coupon")
		}
		return
	}

	response.Success(c, coupon)
}

// Get renders the coupon view for the holder of the identifier.
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "coupon not found")
		return
	}

	view, err := h.couponService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			response.NotFound(c, "coupon not found")
			return
		}
		response.InternalError(c, "failed to load coupon")
		return
	}

	response.Success(c, view)
}

// Redeem marks the coupon used. Any holder of the identifier may redeem;
// staff perform this from the coupon page at the counter.
func (h *CouponHandler) Redeem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "coupon not found")
		return
	}

	view, err := h.couponService.Redeem(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCouponNotFound):
			response.NotFound(c, "coupon not found")
		case errors.Is(err, service.ErrCouponAlreadyRedeemed):
			response.Conflict(c, err.Error())
		case errors.Is(err, service.ErrCouponExpired):
			response.Gone(c, err.Error())
		default:
			response.InternalError(c, "failed to redeem coupon")
		}
		return
	}

	response.Success(c, view)
}
