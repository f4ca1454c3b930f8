package handlers

import (
	"errors"
	"net/http"
	"strconv"

	recordsRepo "nepwork/database/repository/records"
	"nepwork/middleware"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 50
)

// ActivityHandler serves the caller's recent booking activity.
type ActivityHandler struct {
	Repo recordsRepo.ActivityRepository
}

func NewActivityHandler(repo recordsRepo.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{Repo: repo}
}

// RecentActivityHandler returns up to ?limit= entries, newest first.
func (h *ActivityHandler) RecentActivityHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess.Identity() == "" {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit", raw)
			return
		}
		limit = min(n, maxActivityLimit)
	}

	activity, err := h.Repo.Recent(c.Request.Context(), sess.Identity(), limit)
	if err != nil {
		getLogger(c).Error("Failed to fetch activity", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load activity", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// DeleteActivityHandler removes one of the caller's own activity entries.
// Entries owned by someone else answer 404 as if they did not exist.
func (h *ActivityHandler) DeleteActivityHandler(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess.Identity() == "" {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required", "")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	activity, err := h.Repo.GetByID(ctx, id)
	if err == nil && activity.Email != sess.Identity() {
		err = recordsRepo.ErrActivityNotFound
	}
	if err == nil {
		err = h.Repo.DeleteByID(ctx, id)
	}
	switch {
	case errors.Is(err, recordsRepo.ErrActivityNotFound):
		utils.JSONError(c, http.StatusNotFound, "activity not found", id)
	case err != nil:
		getLogger(c).Error("Failed to delete activity", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete activity", "")
	default:
		c.Status(http.StatusNoContent)
	}
}
