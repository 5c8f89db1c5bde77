package handlers

import (
	"net/http"

	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	Store *store.Store
}

func NewAuditHandler(st *store.Store) *AuditHandler {
	return &AuditHandler{Store: st}
}

// List restituisce le ultime operazioni registrate, dalla più recente.
func (h *AuditHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Audit())
}
