package models

// Company è il profilo aziendale (singleton, sempre presente).
type Company struct {
	Name    string `json:"name"`
	VAT     string `json:"vat"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Logo    string `json:"logo,omitempty"`
}

// DefaultCompany restituisce il profilo con cui viene inizializzata
// un'installazione nuova.
func DefaultCompany() Company {
	return Company{Name: "EdilModern S.r.l."}
}
