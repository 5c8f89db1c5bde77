package handlers

import (
	"net/http"
	"strings"

	"edilmodern-erp/internal/models"
	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	Store *store.Store
}

func NewClientHandler(st *store.Store) *ClientHandler {
	return &ClientHandler{Store: st}
}

type clientRequest struct {
	Name    string `json:"name" binding:"required"`
	VAT     string `json:"vat"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Notes   string `json:"notes"`
}

func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Clients())
}

// Detail restituisce il cliente insieme ai preventivi che lo referenziano.
func (h *ClientHandler) Detail(c *gin.Context) {
	id := c.Param("id")
	for _, cl := range h.Store.Clients() {
		if cl.ID == id {
			var related []models.Quote
			for _, q := range h.Store.Quotes() {
				if q.ClientID == id {
					related = append(related, q)
				}
			}
			c.JSON(http.StatusOK, gin.H{"client": cl, "quotes": related})
			return
		}
	}
	userError(c, http.StatusNotFound, "Cliente non trovato.")
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		userError(c, http.StatusBadRequest, "Il nome del cliente è obbligatorio.")
		return
	}

	client := models.Client{
		ID:      uuid.NewString(),
		Name:    name,
		VAT:     strings.TrimSpace(req.VAT),
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Notes:   strings.TrimSpace(req.Notes),
	}

	h.Store.ReplaceClients(append(h.Store.Clients(), client))
	h.Store.AppendAudit("client", client.ID, "create", "Creato cliente: "+client.Name)

	c.JSON(http.StatusCreated, client)
}

// Update sostituisce il record per intero (replace-by-id).
func (h *ClientHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		userError(c, http.StatusBadRequest, "Il nome del cliente è obbligatorio.")
		return
	}

	clients := h.Store.Clients()
	var updated *models.Client
	for i := range clients {
		if clients[i].ID == id {
			clients[i] = models.Client{
				ID:      id,
				Name:    name,
				VAT:     strings.TrimSpace(req.VAT),
				Address: strings.TrimSpace(req.Address),
				Phone:   strings.TrimSpace(req.Phone),
				Email:   strings.TrimSpace(req.Email),
				Notes:   strings.TrimSpace(req.Notes),
			}
			updated = &clients[i]
			break
		}
	}
	if updated == nil {
		userError(c, http.StatusNotFound, "Cliente non trovato.")
		return
	}

	h.Store.ReplaceClients(clients)
	h.Store.AppendAudit("client", id, "update", "Modificato cliente: "+updated.Name)

	c.JSON(http.StatusOK, *updated)
}

// Delete rimuove il cliente dall'anagrafica. I preventivi che lo citano NON
// vengono toccati: restano con il clientId orfano e la fotografia dei dati
// presa all'emissione. Incoerenza accettata, come nel gestionale originale.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	clients := h.Store.Clients()
	kept := clients[:0]
	found := false
	for _, cl := range clients {
		if cl.ID == id {
			found = true
			continue
		}
		kept = append(kept, cl)
	}
	if !found {
		userError(c, http.StatusNotFound, "Cliente non trovato.")
		return
	}

	h.Store.ReplaceClients(kept)
	h.Store.AppendAudit("client", id, "delete", "Eliminato cliente")

	c.Status(http.StatusNoContent)
}
