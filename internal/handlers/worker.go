package handlers

import (
	"net/http"
	"strings"

	"edilmodern-erp/internal/models"
	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkerHandler struct {
	Store *store.Store
}

func NewWorkerHandler(st *store.Store) *WorkerHandler {
	return &WorkerHandler{Store: st}
}

type workerRequest struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsEmployer bool   `json:"isEmployer"`
}

func (h *WorkerHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Workers())
}

func (h *WorkerHandler) Create(c *gin.Context) {
	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	worker := models.Worker{
		ID:         uuid.NewString(),
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Role:       strings.TrimSpace(req.Role),
		Phone:      strings.TrimSpace(req.Phone),
		Email:      strings.TrimSpace(req.Email),
		IsEmployer: req.IsEmployer,
	}

	h.Store.ReplaceWorkers(append(h.Store.Workers(), worker))
	h.Store.AppendAudit("worker", worker.ID, "create",
		"Aggiunto alla squadra: "+worker.FirstName+" "+worker.LastName)

	c.JSON(http.StatusCreated, worker)
}

func (h *WorkerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req workerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	workers := h.Store.Workers()
	var updated *models.Worker
	for i := range workers {
		if workers[i].ID == id {
			workers[i] = models.Worker{
				ID:         id,
				FirstName:  strings.TrimSpace(req.FirstName),
				LastName:   strings.TrimSpace(req.LastName),
				Role:       strings.TrimSpace(req.Role),
				Phone:      strings.TrimSpace(req.Phone),
				Email:      strings.TrimSpace(req.Email),
				IsEmployer: req.IsEmployer,
			}
			updated = &workers[i]
			break
		}
	}
	if updated == nil {
		userError(c, http.StatusNotFound, "Lavoratore non trovato.")
		return
	}

	h.Store.ReplaceWorkers(workers)
	h.Store.AppendAudit("worker", id, "update",
		"Aggiornato lavoratore: "+updated.FirstName+" "+updated.LastName)

	c.JSON(http.StatusOK, *updated)
}

func (h *WorkerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	workers := h.Store.Workers()
	kept := workers[:0]
	found := false
	for _, w := range workers {
		if w.ID == id {
			found = true
			continue
		}
		kept = append(kept, w)
	}
	if !found {
		userError(c, http.StatusNotFound, "Lavoratore non trovato.")
		return
	}

	h.Store.ReplaceWorkers(kept)
	h.Store.AppendAudit("worker", id, "delete", "Rimosso lavoratore dalla squadra")

	c.Status(http.StatusNoContent)
}
