package handlers

import (
	"net/http"
	"strings"
	"time"

	"edilmodern-erp/internal/models"
	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeadHandler struct {
	Store *store.Store
}

func NewLeadHandler(st *store.Store) *LeadHandler {
	return &LeadHandler{Store: st}
}

type leadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// Create riceve le richieste di contatto dal sito vetrina. Endpoint pubblico.
func (h *LeadHandler) Create(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	lead := models.Lead{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	h.Store.AddLead(lead)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Richiesta inviata! Ti ricontatteremo al più presto.",
	})
}

// List mostra le richieste arrivate (solo gestionale).
func (h *LeadHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Leads())
}
