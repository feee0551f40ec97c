package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mfcompass/internal/repository"
	"mfcompass/internal/service"
)

type PortfolioHandler struct {
	Portfolio  repository.PortfolioRepository
	Simulation *service.SimulationService
	Logger     *zap.Logger
}

func (h *PortfolioHandler) Register(r *gin.Engine) {
	r.GET("/api/portfolio", h.getPortfolio)
	r.GET("/api/broker/fetch", h.fetchBroker)
}

// @Summary Stored user portfolio snapshot
// @Tags portfolio
// @Success 200 {object} map[string]any
// @Router /api/portfolio [get]
func (h *PortfolioHandler) getPortfolio(c *gin.Context) {
	if h.Portfolio == nil {
		Error(c, http.StatusInternalServerError, "portfolio unavailable", nil)
		return
	}
	portfolio, err := h.Portfolio.ReadPortfolio(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("portfolio read failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "failed to fetch portfolio", nil)
		return
	}
	Ok(c, portfolio, nil)
}

// @Summary Simulated brokerage portfolio
// @Tags portfolio
// @Success 200 {object} map[string]any
// @Router /api/broker/fetch [get]
func (h *PortfolioHandler) fetchBroker(c *gin.Context) {
	if h.Simulation == nil {
		Error(c, http.StatusInternalServerError, "simulation unavailable", nil)
		return
	}
	Ok(c, h.Simulation.BrokerPortfolio(), nil)
}
