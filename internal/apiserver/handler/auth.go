package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sentra-hq/sentra/internal/auth/jwt"
	"github.com/sentra-hq/sentra/internal/common/dto"
	"github.com/sentra-hq/sentra/internal/i18n"
	"github.com/sentra-hq/sentra/internal/routing"
)

// Login runs the session bootstrap for a credentials submission and, on
// success, issues a JWT bound to the resolved destination.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.ErrBadRequest.WithParam("Reason", err.Error()).Send(c)
		return
	}

	surface, ok := routing.ParseSurface(req.Surface)
	if !ok {
		i18n.ErrorInvalidSurface.Send(c)
		return
	}

	start := time.Now()
	outcome := h.bootstrapper.Bootstrap(c.Request.Context(), routing.Input{
		Email:     req.Email,
		Password:  req.Password,
		Surface:   surface,
		AdminLink: req.AdminLink,
	})
	if h.metrics != nil {
		h.metrics.BootstrapDone(outcome.Result(), start)
	}

	if !outcome.OK() {
		h.respondBootstrapFailure(c, outcome)
		return
	}

	token, err := h.jwtService.GenerateToken(outcome.PrincipalID, req.Email, string(outcome.Role), outcome.SessionToken, outcome.CompanySlug)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		i18n.ErrInternalServer.Send(c)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		Redirect: dto.RedirectTarget{
			Company: outcome.CompanySlug,
			Surface: string(outcome.Surface),
			Portal:  outcome.Portal,
		},
		User: &dto.UserInfo{
			ID:    outcome.PrincipalID,
			Email: req.Email,
			Role:  string(outcome.Role),
		},
	})
}

// respondBootstrapFailure maps each failure kind to its own message. The
// identity provider's rejection is surfaced verbatim.
func (h *Handler) respondBootstrapFailure(c *gin.Context, outcome routing.Outcome) {
	switch outcome.Failure {
	case routing.FailureInvalidCredentials:
		if outcome.Err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": outcome.Err.Error()})
			return
		}
		i18n.ErrorInvalidCredentials.Send(c)
	case routing.FailureProfileLookup:
		i18n.ErrorProfileLookup.Send(c)
	case routing.FailureNoProfile:
		i18n.ErrorNoProfile.Send(c)
	case routing.FailureSurfaceNotAllowed:
		i18n.ErrorSurfaceNotAllowed.Send(c)
	case routing.FailureNoCompanyAvailable:
		i18n.ErrorNoCompanyAvailable.Send(c)
	default:
		i18n.ErrInternalServer.Send(c)
	}
}

// Logout revokes the current login session
func (h *Handler) Logout(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		i18n.ErrUnauthorized.Send(c)
		return
	}
	jwtClaims := claims.(*jwt.Claims)

	if jwtClaims.SessionID != "" {
		if err := h.db.RevokeAuthSession(c.Request.Context(), jwtClaims.SessionID); err != nil {
			h.logger.Error("failed to revoke session", zap.Error(err))
			i18n.ErrInternalServer.Send(c)
			return
		}
	}

	i18n.Success(i18n.SuccessLogout).Send(c)
}

// GetUserInfo handles getting current user info
func (h *Handler) GetUserInfo(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		i18n.ErrUnauthorized.Send(c)
		return
	}
	jwtClaims := claims.(*jwt.Claims)

	user, err := h.db.GetUserByID(c.Request.Context(), jwtClaims.UserID)
	if err != nil {
		i18n.ErrorUserNotFound.Send(c)
		return
	}

	resp := dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		IsActive: user.IsActive,
	}
	if user.CompanyID != nil {
		if tenant, err := h.db.GetTenantByID(c.Request.Context(), *user.CompanyID); err == nil {
			resp.Company = &dto.TenantResponse{
				ID:          tenant.ID,
				Name:        tenant.Name,
				Slug:        tenant.Slug,
				Description: tenant.Description,
				IsActive:    tenant.IsActive,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ChangePassword handles password change requests
func (h *Handler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		i18n.ErrBadRequest.Send(c)
		return
	}

	claims, exists := c.Get("claims")
	if !exists {
		i18n.ErrUnauthorized.Send(c)
		return
	}
	jwtClaims := claims.(*jwt.Claims)

	user, err := h.db.GetUserByID(c.Request.Context(), jwtClaims.UserID)
	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	// Compare the old password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		i18n.ErrorInvalidOldPassword.Send(c)
		return
	}

	// Hash the new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = time.Now()
	if err := h.db.UpdateUser(c.Request.Context(), user); err != nil {
		i18n.ErrInternalServer.Send(c)
		return
	}

	c.JSON(http.StatusOK, dto.ChangePasswordResponse{Success: true})
}
