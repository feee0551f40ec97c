package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mfcompass/internal/repository"
	"mfcompass/internal/service"
)

type FundHandler struct {
	Ranking *service.RankingService
	Logger  *zap.Logger
}

func (h *FundHandler) Register(r *gin.Engine) {
	group := r.Group("/api/funds")
	group.GET("", h.listRanked)
	group.GET("/:code", h.getByCode)
}

// @Summary Ranked fund list
// @Tags funds
// @Param category query string false "equity category filter"
// @Success 200 {object} map[string]any
// @Router /api/funds [get]
func (h *FundHandler) listRanked(c *gin.Context) {
	if h.Ranking == nil {
		Error(c, http.StatusInternalServerError, "ranking unavailable", nil)
		return
	}
	funds, err := h.Ranking.RankedFunds(c.Request.Context(), strQuery(c, "category"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("fund listing failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "failed to fetch funds data", nil)
		return
	}
	Ok(c, funds, map[string]any{"count": len(funds)})
}

// @Summary Fund detail by scheme code
// @Tags funds
// @Param code path string true "scheme code"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/funds/{code} [get]
func (h *FundHandler) getByCode(c *gin.Context) {
	if h.Ranking == nil {
		Error(c, http.StatusInternalServerError, "ranking unavailable", nil)
		return
	}
	fund, err := h.Ranking.FundBySchemeCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			Error(c, http.StatusNotFound, "fund not found", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.Warn("fund lookup failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "failed to fetch fund details", nil)
		return
	}
	Ok(c, fund, nil)
}
