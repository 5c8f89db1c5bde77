package models

import "time"

// AuditEntry — riga del giornale delle operazioni sul gestionale.
type AuditEntry struct {
	ID       string    `json:"id"`
	At       time.Time `json:"at"`
	Entity   string    `json:"entity"` // "client", "quote", "worker", "company"
	EntityID string    `json:"entityId"`
	Action   string    `json:"action"` // "create", "update", "delete", "status_change"
	Details  string    `json:"details"`
}
