package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mfcompass/internal/advisor"
	"mfcompass/internal/models"
)

type AnalyzeHandler struct {
	Advisor *advisor.Advisor
}

type analyzeRequest struct {
	Profile  models.UserProfile `json:"profile"`
	Holdings []models.Holding   `json:"holdings"`
}

func (h *AnalyzeHandler) Register(r *gin.Engine) {
	r.POST("/api/analyze", h.analyze)
}

// @Summary Generate a portfolio recommendation
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "profile and holdings"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/analyze [post]
func (h *AnalyzeHandler) analyze(c *gin.Context) {
	if h.Advisor == nil {
		Error(c, http.StatusInternalServerError, "advisor unavailable", nil)
		return
	}
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if msg, ok := validateProfile(req.Profile); !ok {
		Error(c, http.StatusBadRequest, msg, nil)
		return
	}
	rec := h.Advisor.Advise(c.Request.Context(), req.Profile, req.Holdings)
	Ok(c, rec, nil)
}

func validateProfile(p models.UserProfile) (string, bool) {
	if p.Age <= 0 {
		return "age must be positive", false
	}
	if p.MonthlyIncome.IsNegative() {
		return "monthly income must be non-negative", false
	}
	if p.GoalDuration <= 0 {
		return "goal duration must be positive", false
	}
	switch p.RiskType {
	case models.RiskConservative, models.RiskModerate, models.RiskAggressive:
	default:
		return "unknown risk type", false
	}
	return "", true
}
