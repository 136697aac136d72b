package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/common/dto"
	"github.com/sentra-hq/sentra/internal/i18n"
)

// ListTenants handles listing all tenants
func (h *Handler) ListTenants(c *gin.Context) {
	tenants, err := h.db.ListTenants(c.Request.Context())
	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	responses := make([]*dto.TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = &dto.TenantResponse{
			ID:          tenant.ID,
			Name:        tenant.Name,
			Slug:        tenant.Slug,
			Description: tenant.Description,
			IsActive:    tenant.IsActive,
		}
	}

	c.JSON(http.StatusOK, responses)
}

// CreateTenant handles tenant creation. Tenants come into existence only
// here, through platform administration, never implicitly during login.
func (h *Handler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.ErrBadRequest.WithParam("Reason", err.Error()).Send(c)
		return
	}

	if req.Name == "" || req.Slug == "" {
		i18n.ErrorTenantRequiredFields.Send(c)
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	// The platform namespace is not assignable to customers
	if h.classifier.IsPlatformSlug(slug) {
		i18n.ErrorTenantSlugReserved.Send(c)
		return
	}

	if _, err := h.db.GetTenantBySlug(c.Request.Context(), slug); err == nil {
		i18n.ErrorTenantSlugExists.Send(c)
		return
	}

	existingTenants, err := h.db.ListTenants(c.Request.Context())
	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}
	for _, tenant := range existingTenants {
		if tenant.Name == req.Name {
			i18n.ErrorTenantNameExists.Send(c)
			return
		}
	}

	newTenant := &database.Tenant{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.db.CreateTenant(c.Request.Context(), newTenant); err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	i18n.Created(i18n.SuccessTenantCreated).With("id", newTenant.ID).Send(c)
}

// UpdateTenant handles tenant updates. The slug is immutable once assigned;
// only name, description and active state may change.
func (h *Handler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.ErrBadRequest.WithParam("Reason", err.Error()).Send(c)
		return
	}

	existingTenant, err := h.db.GetTenantBySlug(c.Request.Context(), req.Slug)
	if err != nil {
		i18n.ErrorTenantNotFound.Send(c)
		return
	}

	if req.Name != "" {
		existingTenant.Name = req.Name
	}
	if req.Description != "" {
		existingTenant.Description = req.Description
	}
	if req.IsActive != nil {
		existingTenant.IsActive = *req.IsActive
	}
	existingTenant.UpdatedAt = time.Now()

	if err := h.db.UpdateTenant(c.Request.Context(), existingTenant); err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	i18n.Success(i18n.SuccessTenantUpdated).Send(c)
}

// DeleteTenant handles tenant deletion
func (h *Handler) DeleteTenant(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		i18n.ErrBadRequest.Send(c)
		return
	}

	existingTenant, err := h.db.GetTenantBySlug(c.Request.Context(), slug)
	if err != nil {
		i18n.ErrorTenantNotFound.Send(c)
		return
	}

	if err := h.db.DeleteTenant(c.Request.Context(), existingTenant.ID); err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	i18n.Success(i18n.SuccessTenantDeleted).Send(c)
}

// GetTenantInfo handles getting tenant info by slug
func (h *Handler) GetTenantInfo(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		i18n.ErrBadRequest.Send(c)
		return
	}

	tenant, err := h.db.GetTenantBySlug(c.Request.Context(), slug)
	if err != nil {
		i18n.ErrorTenantNotFound.Send(c)
		return
	}

	c.JSON(http.StatusOK, &dto.TenantResponse{
		ID:          tenant.ID,
		Name:        tenant.Name,
		Slug:        tenant.Slug,
		Description: tenant.Description,
		IsActive:    tenant.IsActive,
	})
}
