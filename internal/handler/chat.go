package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mfcompass/internal/advisor"
	"mfcompass/internal/models"
	"mfcompass/internal/repository"
)

type ChatHandler struct {
	Advisor *advisor.Advisor
	Funds   repository.FundRepository
	Logger  *zap.Logger
}

type chatRequest struct {
	Message string                `json:"message"`
	Profile models.UserProfile    `json:"profile"`
	History []advisor.ChatMessage `json:"history"`
}

func (h *ChatHandler) Register(r *gin.Engine) {
	r.POST("/api/chat", h.chat)
}

// @Summary Ask the advisor a free-form question
// @Tags advisor
// @Accept json
// @Produce json
// @Param request body chatRequest true "message, profile and history"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/chat [post]
func (h *ChatHandler) chat(c *gin.Context) {
	if h.Advisor == nil {
		Error(c, http.StatusInternalServerError, "advisor unavailable", nil)
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		Error(c, http.StatusBadRequest, "message is required", nil)
		return
	}
	answer, err := h.Advisor.Chat(c.Request.Context(), h.Funds, req.Message, req.Profile, req.History)
	if err != nil {
		if errors.Is(err, advisor.ErrNotConfigured) {
			Error(c, http.StatusInternalServerError, "AI service is not configured", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.Warn("chat failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "failed to process chat message", nil)
		return
	}
	Ok(c, gin.H{"response": answer}, nil)
}
