package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mfcompass/internal/models"
	"mfcompass/internal/repository"
	"mfcompass/internal/service"
)

type SimulateHandler struct {
	Simulation *service.SimulationService
	Logger     *zap.Logger
}

func (h *SimulateHandler) Register(r *gin.Engine) {
	group := r.Group("/api/simulate")
	group.POST("/marketCrash", h.run((*service.SimulationService).MarketCrash))
	group.POST("/volatility", h.run((*service.SimulationService).VolatilitySpike))
	group.POST("/managerChange", h.run((*service.SimulationService).ManagerChange))
	group.POST("/sectorMismatch", h.run((*service.SimulationService).SectorMismatch))
}

// @Summary Trigger a simulated market event
// @Tags simulation
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /api/simulate/{event} [post]
func (h *SimulateHandler) run(generate func(*service.SimulationService, context.Context) (*models.SimulationResult, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Simulation == nil {
			Error(c, http.StatusInternalServerError, "simulation unavailable", nil)
			return
		}
		result, err := generate(h.Simulation, c.Request.Context())
		if err != nil {
			if errors.Is(err, repository.ErrEmpty) || errors.Is(err, repository.ErrNotFound) {
				Error(c, http.StatusServiceUnavailable, "simulation data unavailable", nil)
				return
			}
			if h.Logger != nil {
				h.Logger.Warn("simulation failed", zap.Error(err))
			}
			Error(c, http.StatusInternalServerError, "simulation failed", nil)
			return
		}
		Ok(c, result, nil)
	}
}
