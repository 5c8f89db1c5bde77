package handlers

import (
	"net/http"
	"strings"

	"edilmodern-erp/internal/models"
	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	Store *store.Store
}

func NewCompanyHandler(st *store.Store) *CompanyHandler {
	return &CompanyHandler{Store: st}
}

type companyRequest struct {
	Name    string `json:"name" binding:"required"`
	VAT     string `json:"vat"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Logo    string `json:"logo"`
}

func (h *CompanyHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Company())
}

// Update sostituisce il profilo aziendale (singleton).
func (h *CompanyHandler) Update(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company := models.Company{
		Name:    strings.TrimSpace(req.Name),
		VAT:     strings.TrimSpace(req.VAT),
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Logo:    req.Logo,
	}

	h.Store.SetCompany(company)
	h.Store.AppendAudit("company", "", "update", "Aggiornato profilo aziendale: "+company.Name)

	c.JSON(http.StatusOK, company)
}
