package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
)

// taxConfigHandler handles sales tax configuration requests.
type taxConfigHandler struct {
	taxService portssvc.TaxConfigSvcFacade
}

func newTaxConfigHandler(ts portssvc.TaxConfigSvcFacade) *taxConfigHandler {
	return &taxConfigHandler{taxService: ts}
}

// registerTaxConfigRoutes registers routes related to tax configuration.
func registerTaxConfigRoutes(rg *gin.RouterGroup, ts portssvc.TaxConfigSvcFacade) {
	h := newTaxConfigHandler(ts)

	taxes := rg.Group("/tax-configs")
	{
		taxes.POST("", h.createTaxConfig)
		taxes.GET("", h.listTaxConfigs)
		taxes.PUT("/:taxConfigID", h.updateTaxConfig)
		taxes.DELETE("/:taxConfigID", h.deleteTaxConfig)
	}
}

// createTaxConfig adds a new sales tax.
func (h *taxConfigHandler) createTaxConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTaxConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTaxConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tax, err := h.taxService.CreateTaxConfig(c.Request.Context(), req, operator)
	if err != nil {
		logger.Error("Failed to create tax config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tax config"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaxConfigResponse(tax))
}

// listTaxConfigs lists tax configs; ?active=true narrows to active ones.
func (h *taxConfigHandler) listTaxConfigs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	onlyActive := c.Query("active") == "true"

	taxes, err := h.taxService.ListTaxConfigs(c.Request.Context(), onlyActive)
	if err != nil {
		logger.Error("Failed to list tax configs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tax configs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"taxConfigs": dto.ToListTaxConfigResponse(taxes)})
}

// updateTaxConfig updates name, percentage or activation of a tax.
func (h *taxConfigHandler) updateTaxConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxConfigID := c.Param("taxConfigID")

	var req dto.UpdateTaxConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTaxConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tax, err := h.taxService.UpdateTaxConfig(c.Request.Context(), taxConfigID, req, operator)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update tax config", slog.String("tax_config_id", taxConfigID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tax config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxConfigResponse(tax))
}

// deleteTaxConfig removes a tax config.
func (h *taxConfigHandler) deleteTaxConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	taxConfigID := c.Param("taxConfigID")

	if err := h.taxService.DeleteTaxConfig(c.Request.Context(), taxConfigID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to delete tax config", slog.String("tax_config_id", taxConfigID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tax config"})
		return
	}

	c.Status(http.StatusNoContent)
}
