package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"edilmodern-erp/internal/middleware"
	"edilmodern-erp/internal/models"
	"edilmodern-erp/internal/pdf"
	"edilmodern-erp/internal/services"
	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	Store    *store.Store
	Renderer pdf.Renderer
}

func NewQuoteHandler(st *store.Store, renderer pdf.Renderer) *QuoteHandler {
	return &QuoteHandler{Store: st, Renderer: renderer}
}

// Gli importi viaggiano come stringhe, come nel form originale: un valore non
// numerico non è un errore, vale zero.
type quoteRequest struct {
	ClientID      string             `json:"clientId"`
	ClientName    string             `json:"clientName"`
	ClientAddress string             `json:"clientAddress"`
	ClientPhone   string             `json:"clientPhone"`
	Description   string             `json:"description"`
	Subtotal      string             `json:"subtotal"`
	TaxRate       string             `json:"taxRate"`
	Notes         string             `json:"notes"`
	Status        models.QuoteStatus `json:"status"`
}

func (h *QuoteHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Quotes())
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	// se il cliente viene dall'anagrafica, la fotografia si prende da lì
	clientID := strings.TrimSpace(req.ClientID)
	name := strings.TrimSpace(req.ClientName)
	address := strings.TrimSpace(req.ClientAddress)
	phone := strings.TrimSpace(req.ClientPhone)
	if clientID != "" && clientID != models.GuestClientID {
		for _, cl := range h.Store.Clients() {
			if cl.ID == clientID {
				name, address, phone = cl.Name, cl.Address, cl.Phone
				break
			}
		}
	}
	if clientID == "" {
		clientID = models.GuestClientID
	}

	if name == "" || strings.TrimSpace(req.Subtotal) == "" {
		userError(c, http.StatusBadRequest, "Dati minimi richiesti: Cliente e Importo Lavori.")
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusBozza
	}
	if !status.Valid() {
		userError(c, http.StatusBadRequest, "Stato preventivo non riconosciuto.")
		return
	}

	taxAmount, total := services.ComputeTotals(req.Subtotal, req.TaxRate)

	quote := models.Quote{
		ID:            uuid.NewString(),
		Number:        services.NextNumber(h.Store.Quotes(), time.Now().Year()),
		ClientID:      clientID,
		ClientName:    name,
		ClientAddress: address,
		ClientPhone:   phone,
		Description:   strings.TrimSpace(req.Description),
		Subtotal:      services.ParseAmount(req.Subtotal),
		TaxRate:       services.ParseAmount(req.TaxRate),
		TaxAmount:     taxAmount,
		Total:         total,
		Date:          time.Now().Format("02/01/2006"),
		Status:        status,
		Notes:         strings.TrimSpace(req.Notes),
	}

	// in archivio il documento più recente sta in testa
	h.Store.ReplaceQuotes(append([]models.Quote{quote}, h.Store.Quotes()...))
	h.Store.AppendAudit("quote", quote.ID, "create",
		fmt.Sprintf("Emesso preventivo %s per %s", quote.Number, quote.ClientName))

	c.JSON(http.StatusCreated, quote)
}

type statusRequest struct {
	Status models.QuoteStatus `json:"status" binding:"required"`
}

// UpdateStatus riassegna lo stato del preventivo. Nessun grafo di transizioni:
// qualsiasi stato dell'enum può seguire qualsiasi altro, anche all'indietro
// (ACCETTATO può tornare BOZZA), come nel gestionale originale.
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !req.Status.Valid() {
		userError(c, http.StatusBadRequest, "Stato preventivo non riconosciuto.")
		return
	}

	quotes := h.Store.Quotes()
	var updated *models.Quote
	for i := range quotes {
		if quotes[i].ID == id {
			quotes[i].Status = req.Status
			updated = &quotes[i]
			break
		}
	}
	if updated == nil {
		userError(c, http.StatusNotFound, "Preventivo non trovato.")
		return
	}

	h.Store.ReplaceQuotes(quotes)
	h.Store.AppendAudit("quote", id, "status_change",
		fmt.Sprintf("Preventivo %s → %s", updated.Number, updated.Status))

	c.JSON(http.StatusOK, *updated)
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	quotes := h.Store.Quotes()
	kept := quotes[:0]
	found := false
	for _, q := range quotes {
		if q.ID == id {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		userError(c, http.StatusNotFound, "Preventivo non trovato.")
		return
	}

	h.Store.ReplaceQuotes(kept)
	h.Store.AppendAudit("quote", id, "delete", "Eliminato preventivo dall'archivio")

	c.Status(http.StatusNoContent)
}

// ExportPDF scarica il preventivo impaginato.
func (h *QuoteHandler) ExportPDF(c *gin.Context) {
	id := c.Param("id")

	for _, q := range h.Store.Quotes() {
		if q.ID != id {
			continue
		}
		data, err := h.Renderer.RenderQuote(h.Store.Company(), q)
		if err != nil {
			middleware.Logger(c).Error("generazione PDF fallita", "number", q.Number, "err", err)
			userError(c, http.StatusInternalServerError, "Generazione del PDF non riuscita.")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(q)))
		c.Data(http.StatusOK, "application/pdf", data)
		return
	}
	userError(c, http.StatusNotFound, "Preventivo non trovato.")
}
