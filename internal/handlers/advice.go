package handlers

import (
	"net/http"
	"strings"

	"edilmodern-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type AdviceHandler struct {
	Svc *services.AdviceService
}

func NewAdviceHandler(svc *services.AdviceService) *AdviceHandler {
	return &AdviceHandler{Svc: svc}
}

type adviceRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Ask inoltra la domanda all'assistente tecnico. Risponde sempre 200 con un
// testo: i fallimenti del servizio esterno diventano la frase di cortesia.
func (h *AdviceHandler) Ask(c *gin.Context) {
	var req adviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		userError(c, http.StatusBadRequest, "Scrivi una domanda per l'assistente tecnico.")
		return
	}

	advice := h.Svc.Advice(c.Request.Context(), prompt)
	c.JSON(http.StatusOK, gin.H{"advice": advice})
}
