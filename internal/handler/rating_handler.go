package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tapstar/reviewgate/internal/service"
	"tapstar/reviewgate/pkg/response"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type SubmitRatingRequest struct {
	Stars int `json:"stars" binding:"required"`
}

// Submit records the rating and returns the routing outcome.
func (h *RatingHandler) Submit(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	result, err := h.ratingService.SubmitRating(c.Request.Context(), c.Param("slug"), req.Stars)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStars):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrTenantNotFound):
			response.NotFound(c, "tenant not found")
		default:
			response.InternalError(c, "failed to submit rating")
		}
		return
	}

	response.Success(c, result)
}
