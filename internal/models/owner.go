package models

// Owner è l'unico account amministrativo dell'installazione.
// L'hash della password viene conservato ma non ancora verificato al login:
// la verifica vera arriverà con il backend di autenticazione dedicato.
type Owner struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PasswordHash string `json:"passwordHash,omitempty"`
}
