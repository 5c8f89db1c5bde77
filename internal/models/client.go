package models

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	VAT     string `json:"vat,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Notes   string `json:"notes,omitempty"`
}
