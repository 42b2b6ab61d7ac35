package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Oligens/scarwrite.haiti-sub001/internal/apperrors"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/core/domain"
	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
)

// thirdPartyHandler exposes supplier and client balances. Balances are
// read-only here; posting flows are the only writers.
type thirdPartyHandler struct {
	thirdPartyService portssvc.ThirdPartySvcFacade
}

func newThirdPartyHandler(ts portssvc.ThirdPartySvcFacade) *thirdPartyHandler {
	return &thirdPartyHandler{thirdPartyService: ts}
}

// registerThirdPartyRoutes registers routes related to third parties.
func registerThirdPartyRoutes(rg *gin.RouterGroup, ts portssvc.ThirdPartySvcFacade) {
	h := newThirdPartyHandler(ts)

	parties := rg.Group("/third-parties")
	{
		parties.GET("", h.listThirdParties)
		parties.GET("/:thirdPartyID", h.getThirdParty)
	}
}

// listThirdParties lists suppliers and clients with their balances.
func (h *thirdPartyHandler) listThirdParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListThirdPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	parties, err := h.thirdPartyService.ListThirdParties(c.Request.Context(), domain.ThirdPartyRole(params.Role), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list third parties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list third parties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"thirdParties": dto.ToListThirdPartyResponse(parties)})
}

// getThirdParty fetches one supplier or client by ID.
func (h *thirdPartyHandler) getThirdParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	thirdPartyID := c.Param("thirdPartyID")

	party, err := h.thirdPartyService.GetThirdPartyByID(c.Request.Context(), thirdPartyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get third party", slog.String("third_party_id", thirdPartyID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get third party"})
		return
	}

	c.JSON(http.StatusOK, dto.ToThirdPartyResponse(party))
}
