package handlers

import (
	"net/http"

	"nepwork/middleware"
	"nepwork/services/dashboard"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-scoped dashboard.
type DashboardHandler struct {
	Assembler *dashboard.Assembler
}

// NewDashboardHandler creates a DashboardHandler backed by a.
func NewDashboardHandler(a *dashboard.Assembler) *DashboardHandler {
	return &DashboardHandler{Assembler: a}
}

// GetDashboardHandler always answers 200; partial failures are carried in
// the payload's error field.
func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	d := h.Assembler.Assemble(c.Request.Context(), middleware.SessionFrom(c), c.Query("role"))
	c.JSON(http.StatusOK, d)
}
