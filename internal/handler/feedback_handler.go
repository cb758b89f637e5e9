package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tapstar/reviewgate/internal/service"
	"tapstar/reviewgate/pkg/response"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type SubmitFeedbackRequest struct {
	Contact string `json:"contact"`
	Message string `json:"message" binding:"required"`
}

// Submit records the complaint and returns the WhatsApp forward payload.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	payload, err := h.feedbackService.Record(c.Request.Context(), c.Param("slug"), req.Contact, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageRequired):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrTenantNotFound):
			response.NotFound(c, "tenant not found")
		default:
			response.InternalError(c, "failed to record feedback")
		}
		return
	}

	response.Success(c, payload)
}
