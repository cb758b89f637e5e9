package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tapstar/reviewgate/internal/service"
	"tapstar/reviewgate/pkg/response"
)

type AdminHandler struct {
	adminService  service.AdminService
	tenantService service.TenantService
}

func NewAdminHandler(adminService service.AdminService, tenantService service.TenantService) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		tenantService: tenantService,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, "failed to log in")
		return
	}

	response.Success(c, LoginResponse{AccessToken: token})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	claims, err := getClaimsFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid admin context")
		return
	}

	if err := h.adminService.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c, "failed to log out")
		return
	}
	response.Success(c, nil)
}

// ListTenants returns the full directory, reward flags included.
func (h *AdminHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenantService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list tenants")
		return
	}
	response.Success(c, tenants)
}

// ListVisits returns a tenant's rating history, newest first.
func (h *AdminHandler) ListVisits(c *gin.Context) {
	visits, err := h.adminService.ListVisits(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondListError(c, err)
		return
	}
	response.Success(c, visits)
}

// ListCoupons returns a tenant's issued coupons, newest first.
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.adminService.ListCoupons(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondListError(c, err)
		return
	}
	response.Success(c, coupons)
}

// ListFeedback returns a tenant's complaints, newest first.
func (h *AdminHandler) ListFeedback(c *gin.Context) {
	entries, err := h.adminService.ListFeedback(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondListError(c, err)
		return
	}
	response.Success(c, entries)
}

func (h *AdminHandler) respondListError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrTenantNotFound) {
		response.NotFound(c, "tenant not found")
		return
	}
	response.InternalError(c, "failed to load listing")
}
