package handlers

import (
	"net/http"
	"strconv"

	"nepwork/middleware"
	"nepwork/models"
	"nepwork/services/booking"
	"nepwork/services/catalog"
	"nepwork/services/session"
	"nepwork/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves service listings and categories.
type CatalogHandler struct {
	Catalog  *catalog.Catalog
	Resolver *session.Resolver
}

func NewCatalogHandler(c *catalog.Catalog, resolver *session.Resolver) *CatalogHandler {
	return &CatalogHandler{Catalog: c, Resolver: resolver}
}

// ListServicesHandler returns the services visible to the caller's role,
// filtered by q, category and sort.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)
	var filter catalog.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Error("Invalid service filter", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	sess := middleware.SessionFrom(c)
	role := h.Resolver.Resolve(c.Request.Context(), sess, c.Query("role"))
	services, err := h.Catalog.List(c.Request.Context(), sess, role, filter)
	if err != nil {
		utils.JSONError(c, statusFor(err), booking.MessageFor(err, "failed to load services"), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "services": services})
}

// ListCategoriesHandler returns all service categories.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Catalog.Categories(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		utils.JSONError(c, statusFor(err), booking.MessageFor(err, "failed to load categories"), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetServiceHandler returns one service with its recent reviews.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id", c.Param("id"))
		return
	}
	service, err := h.Catalog.Detail(c.Request.Context(), middleware.SessionFrom(c), id)
	if err != nil {
		utils.JSONError(c, statusFor(err), booking.MessageFor(err, "failed to load service"), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": service})
}

// CreateServiceHandler publishes a listing for a verified provider.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid service input", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid service", err.Error())
		return
	}

	sess := middleware.SessionFrom(c)
	role := h.Resolver.Resolve(c.Request.Context(), sess, c.Query("role"))
	service, err := h.Catalog.Create(c.Request.Context(), sess, role, input)
	if err != nil {
		logger.Warn("Service not created", zap.String("email", sess.Email), zap.Error(err))
		utils.JSONError(c, statusFor(err), booking.MessageFor(err, err.Error()), err.Error())
		return
	}
	logger.Info("Service created", zap.String("email", sess.Email), zap.Int64("service_id", service.ID))
	c.JSON(http.StatusCreated, gin.H{"service": service})
}
