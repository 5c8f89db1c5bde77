package models

import "github.com/shopspring/decimal"

type QuoteStatus string

const (
	StatusBozza     QuoteStatus = "BOZZA"
	StatusInviato   QuoteStatus = "INVIATO"
	StatusAccettato QuoteStatus = "ACCETTATO"
	StatusRespinto  QuoteStatus = "RESPINTO"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case StatusBozza, StatusInviato, StatusAccettato, StatusRespinto:
		return true
	}
	return false
}

// GuestClientID marca i preventivi compilati a mano, senza cliente in anagrafica.
const GuestClientID = "GUEST"

// Quote è un preventivo archiviato. I dati del cliente sono una fotografia
// presa al momento dell'emissione: il documento resta leggibile anche se il
// cliente viene modificato o eliminato dall'anagrafica.
type Quote struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	ClientID      string          `json:"clientId"`
	ClientName    string          `json:"clientName"`
	ClientAddress string          `json:"clientAddress"`
	ClientPhone   string          `json:"clientPhone"`
	Description   string          `json:"description"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	Total         decimal.Decimal `json:"total"`
	Date          string          `json:"date"`
	Status        QuoteStatus     `json:"status"`
	Notes         string          `json:"notes,omitempty"`
}
