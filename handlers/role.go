package handlers

import (
	"net/http"

	"nepwork/middleware"
	"nepwork/services/session"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleHandler resolves and switches the caller's acting role.
type RoleHandler struct {
	Resolver *session.Resolver
	Syncer   session.AccountSyncer
}

func NewRoleHandler(resolver *session.Resolver, syncer session.AccountSyncer) *RoleHandler {
	return &RoleHandler{Resolver: resolver, Syncer: syncer}
}

type switchRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GetRoleHandler returns the role the caller would act in right now.
func (h *RoleHandler) GetRoleHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	role := h.Resolver.Resolve(c.Request.Context(), sess, c.Query("role"))
	c.JSON(http.StatusOK, gin.H{"role": role, "email": sess.Identity()})
}

// SwitchRoleHandler changes the preferred role on the backend and locally.
func (h *RoleHandler) SwitchRoleHandler(c *gin.Context) {
	logger := getLogger(c)
	var req switchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid role switch payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess := middleware.SessionFrom(c)
	role, err := h.Resolver.Switch(c.Request.Context(), sess, req.Role, h.Syncer)
	if err != nil {
		logger.Warn("Role switch failed", zap.String("role", req.Role), zap.Error(err))
		utils.JSONError(c, statusFor(err), "failed to switch role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "email": sess.Identity()})
}
