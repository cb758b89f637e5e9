package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tapstar/reviewgate/internal/service"
	"tapstar/reviewgate/pkg/response"
)

type TenantHandler struct {
	tenantService service.TenantService
	policy        service.RatingPolicy
}

func NewTenantHandler(tenantService service.TenantService, policy service.RatingPolicy) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
		policy:        policy,
	}
}

// TenantCard is the public shape of a tenant: what the rating page renders.
// Contact number and internal IDs stay server-side.
type TenantCard struct {
	Slug       string `json:"slug"`
	NameEN     string `json:"name_en"`
	NameAR     string `json:"name_ar"`
	HasReward  bool   `json:"has_reward"`
	RewardText string `json:"reward_text,omitempty"`
	MinStars   int    `json:"min_stars"`
	MaxStars   int    `json:"max_stars"`
}

// Get returns the public card for the rating page.
func (h *TenantHandler) Get(c *gin.Context) {
	tenant, err := h.tenantService.Lookup(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			response.NotFound(c, "tenant not found")
			return
		}
		response.InternalError(c, "failed to load tenant")
		return
	}

	card := TenantCard{
		Slug:      tenant.Slug,
		NameEN:    tenant.NameEN,
		NameAR:    tenant.NameAR,
		HasReward: tenant.HasReward(),
		MinStars:  h.policy.MinStars,
		MaxStars:  h.policy.MaxStars,
	}
	if tenant.HasReward() {
		card.RewardText = *tenant.RewardText
	}
	response.Success(c, card)
}

// QRCode serves the printable PNG pointing at the tenant's rating page.
func (h *TenantHandler) QRCode(c *gin.Context) {
	png, err := h.tenantService.QRCode(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			response.NotFound(c, "tenant not found")
			return
		}
		response.InternalError(c, "failed to render qr code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
