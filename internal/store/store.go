package store

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"edilmodern-erp/internal/apperrors"
	"edilmodern-erp/internal/models"

	"github.com/google/uuid"
)

// Chiavi dei documenti persistiti. Cinque collezioni del gestionale originale
// più lead e giornale operazioni.
const (
	keyOwner   = "edil_erp_owner"
	keyCompany = "edil_erp_company"
	keyClients = "edil_erp_clients"
	keyQuotes  = "edil_erp_quotes"
	keyWorkers = "edil_erp_workers"
	keyLeads   = "edil_erp_leads"
	keyAudit   = "edil_erp_audit"
)

const auditLimit = 200

// Store possiede le collezioni in memoria per tutta la vita del processo.
// Ogni mutazione sostituisce la collezione per intero e viene seguita da un
// salvataggio consolidato di tutti i documenti. Il mutex preserva la garanzia
// "nessuna corsa lettura/scrittura" che nell'originale veniva gratis dal
// thread unico della UI.
type Store struct {
	mu  sync.RWMutex
	kv  *KV
	log *slog.Logger

	owner   *models.Owner
	company models.Company
	clients []models.Client
	quotes  []models.Quote
	workers []models.Worker
	leads   []models.Lead
	audit   []models.AuditEntry
}

// New carica le collezioni dall'archivio. Un documento assente o corrotto non
// blocca l'avvio: la collezione riparte vuota e gli altri documenti vengono
// caricati comunque.
func New(kv *KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, log: logger, company: models.DefaultCompany()}

	var owner models.Owner
	if s.loadDoc(keyOwner, &owner) && owner.ID != "" {
		s.owner = &owner
	}
	s.loadDoc(keyCompany, &s.company)
	s.loadDoc(keyClients, &s.clients)
	s.loadDoc(keyQuotes, &s.quotes)
	s.loadDoc(keyWorkers, &s.workers)
	s.loadDoc(keyLeads, &s.leads)
	s.loadDoc(keyAudit, &s.audit)
	return s
}

func (s *Store) loadDoc(key string, v any) bool {
	raw, ok, err := s.kv.Load(key)
	if err != nil {
		s.log.Warn("caricamento documento fallito", "key", key, "err", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// documento malformato: si riparte dal valore zero
		s.log.Warn("documento malformato, collezione reinizializzata", "key", key, "err", err)
		return false
	}
	return true
}

// saveAll riscrive tutti i documenti, come il passaggio di persistenza
// unificato dell'originale. I fallimenti vengono loggati e non propagati:
// la scrittura è fire-and-forget dal punto di vista del chiamante.
func (s *Store) saveAll() {
	if s.owner != nil {
		s.saveDoc(keyOwner, s.owner)
	}
	s.saveDoc(keyCompany, s.company)
	s.saveDoc(keyClients, s.clients)
	s.saveDoc(keyQuotes, s.quotes)
	s.saveDoc(keyWorkers, s.workers)
	s.saveDoc(keyLeads, s.leads)
	s.saveDoc(keyAudit, s.audit)
}

func (s *Store) saveDoc(key string, v any) {
	if err := s.kv.Save(key, v); err != nil {
		s.log.Error("salvataggio documento fallito", "key", key, "err", err)
	}
}

// TITOLARE

func (s *Store) Owner() (models.Owner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.owner == nil {
		return models.Owner{}, false
	}
	return *s.owner, true
}

// RegisterOwner registra il titolare. Operazione una tantum: se il titolare
// esiste già la registrazione viene rifiutata e il record resta intatto.
func (s *Store) RegisterOwner(o models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.owner != nil {
		return apperrors.ErrAlreadyRegistered
	}
	s.owner = &o
	s.saveAll()
	return nil
}

// AZIENDA

func (s *Store) Company() models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.company
}

func (s *Store) SetCompany(c models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.company = c
	s.saveAll()
}

// COLLEZIONI
//
// Le letture restituiscono copie; le mutazioni sostituiscono la collezione
// per intero. È il chiamante a calcolare la collezione nuova (append per la
// creazione, filter per l'eliminazione, map per l'aggiornamento).

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.clients)
}

func (s *Store) ReplaceClients(clients []models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = clients
	s.saveAll()
}

func (s *Store) Quotes() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.quotes)
}

func (s *Store) ReplaceQuotes(quotes []models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = quotes
	s.saveAll()
}

func (s *Store) Workers() []models.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.workers)
}

func (s *Store) ReplaceWorkers(workers []models.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = workers
	s.saveAll()
}

func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.leads)
}

func (s *Store) AddLead(l models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, l)
	s.saveAll()
}

// GIORNALE OPERAZIONI

// Audit restituisce le voci più recenti, dalla più nuova.
func (s *Store) Audit() []models.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.audit)
	slices.Reverse(out)
	if len(out) > auditLimit {
		out = out[:auditLimit]
	}
	return out
}

// AppendAudit registra un'operazione sul giornale. Best effort.
func (s *Store) AppendAudit(entity, entityID, action, details string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, models.AuditEntry{
		ID:       uuid.NewString(),
		At:       time.Now(),
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	})
	s.saveAll()
}
