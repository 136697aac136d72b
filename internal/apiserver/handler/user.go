package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sentra-hq/sentra/internal/apiserver/database"
	"github.com/sentra-hq/sentra/internal/common/dto"
	"github.com/sentra-hq/sentra/internal/i18n"
)

// ListUsers handles listing all users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	responses := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = h.userResponse(c.Request.Context(), user)
	}

	c.JSON(http.StatusOK, responses)
}

// CreateUser handles user creation
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.ErrBadRequest.WithParam("Reason", err.Error()).Send(c)
		return
	}

	if req.Email == "" || req.Password == "" {
		i18n.ErrorEmailPasswordRequired.Send(c)
		return
	}

	if _, err := h.db.GetUserByEmail(c.Request.Context(), req.Email); err == nil {
		i18n.ErrorEmailExists.Send(c)
		return
	}

	if !h.validCompanyAssignment(c, req.CompanyID) {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	newUser := &database.User{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashedPassword),
		Role:      database.UserRole(req.Role),
		CompanyID: req.CompanyID,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.db.CreateUser(c.Request.Context(), newUser); err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	i18n.Created(i18n.SuccessUserCreated).With("id", newUser.ID).Send(c)
}

// UpdateUser handles user updates. Role and company assignment change only
// through this administrative path, never through the user's own session.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.ErrBadRequest.WithParam("Reason", err.Error()).Send(c)
		return
	}

	existingUser, err := h.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		i18n.ErrorUserNotFound.Send(c)
		return
	}

	if req.CompanyID != nil && !h.validCompanyAssignment(c, req.CompanyID) {
		return
	}

	err = h.db.Transaction(c.Request.Context(), func(ctx context.Context) error {
		if req.Role != "" {
			existingUser.Role = database.UserRole(req.Role)
		}
		if req.CompanyID != nil {
			existingUser.CompanyID = req.CompanyID
		}
		if req.IsActive != nil {
			existingUser.IsActive = *req.IsActive
		}
		if req.Password != "" {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			existingUser.Password = string(hashedPassword)
		}
		existingUser.UpdatedAt = time.Now()

		return h.db.UpdateUser(ctx, existingUser)
	})

	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	i18n.Success(i18n.SuccessUserUpdated).Send(c)
}

// DeleteUser handles user deactivation. Principals are never deleted, only
// deactivated, so their historical records stay attributable.
func (h *Handler) DeleteUser(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		i18n.ErrBadRequest.Send(c)
		return
	}

	existingUser, err := h.db.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		i18n.ErrorUserNotFound.Send(c)
		return
	}

	existingUser.IsActive = false
	existingUser.UpdatedAt = time.Now()
	if err := h.db.UpdateUser(c.Request.Context(), existingUser); err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	i18n.Success(i18n.SuccessUserDeleted).Send(c)
}

// validCompanyAssignment rejects assignments to missing tenants or to slugs
// inside the platform namespace.
func (h *Handler) validCompanyAssignment(c *gin.Context, companyID *uint) bool {
	if companyID == nil {
		return true
	}
	tenant, err := h.db.GetTenantByID(c.Request.Context(), *companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			i18n.ErrorCompanyAssignmentInvalid.Send(c)
		} else {
			i18n.ErrInternalServer.Send(c)
		}
		return false
	}
	if h.classifier.IsPlatformSlug(tenant.Slug) {
		i18n.ErrorCompanyAssignmentInvalid.Send(c)
		return false
	}
	return true
}

func (h *Handler) userResponse(ctx context.Context, user *database.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		IsActive: user.IsActive,
	}
	if user.CompanyID != nil {
		if tenant, err := h.db.GetTenantByID(ctx, *user.CompanyID); err == nil {
			resp.Company = &dto.TenantResponse{
				ID:       tenant.ID,
				Name:     tenant.Name,
				Slug:     tenant.Slug,
				IsActive: tenant.IsActive,
			}
		}
	}
	return resp
}
