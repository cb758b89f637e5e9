package service

import "errors"

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed")
	ErrCouponExpired         = errors.New("coupon expired")
	ErrInvalidStars          = errors.New("star rating out of range")
	ErrContactRequired       = errors.New("contact number required")
	ErrMessageRequired       = errors.New("feedback message required")
	ErrRewardNotConfigured   = errors.New("tenant has no reward program")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
