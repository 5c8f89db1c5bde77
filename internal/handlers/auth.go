package handlers

import (
	"errors"
	"net/http"
	"strings"

	"edilmodern-erp/internal/apperrors"
	"edilmodern-erp/internal/middleware"
	"edilmodern-erp/internal/models"
	"edilmodern-erp/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{Store: st}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// Register configura il profilo del titolare. Operazione una tantum per
// installazione: se il titolare esiste già risponde 409 e non tocca nulla.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		userError(c, http.StatusInternalServerError, "Errore durante la registrazione.")
		return
	}

	owner := models.Owner{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
	}

	if err := h.Store.RegisterOwner(owner); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyRegistered) {
			userError(c, http.StatusConflict, "Installazione già configurata: titolare esistente.")
			return
		}
		userError(c, http.StatusInternalServerError, "Errore durante la registrazione.")
		return
	}

	if err := middleware.OpenSession(c, owner.ID); err != nil {
		middleware.Logger(c).Error("apertura sessione fallita", "err", err)
	}

	c.JSON(http.StatusCreated, ownerJSON(owner))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifica l'email contro il titolare registrato. La password viene
// accettata ma non confrontata: è il comportamento del gestionale originale,
// in attesa della verifica lato backend dedicato.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	owner, ok := h.Store.Owner()
	if !ok || !strings.EqualFold(owner.Email, strings.TrimSpace(req.Email)) {
		userError(c, http.StatusUnauthorized, "Accesso negato: credenziali non valide.")
		return
	}

	if err := middleware.OpenSession(c, owner.ID); err != nil {
		middleware.Logger(c).Error("apertura sessione fallita", "err", err)
		userError(c, http.StatusInternalServerError, "Errore durante l'accesso.")
		return
	}

	c.JSON(http.StatusOK, ownerJSON(owner))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.CloseSession(c)
	c.Status(http.StatusNoContent)
}

// Me restituisce il profilo del titolare in sessione.
func (h *AuthHandler) Me(c *gin.Context) {
	owner, ok := h.Store.Owner()
	if !ok {
		userError(c, http.StatusNotFound, "Nessun titolare registrato.")
		return
	}
	c.JSON(http.StatusOK, ownerJSON(owner))
}

// ownerJSON non espone mai l'hash della password.
func ownerJSON(o models.Owner) gin.H {
	return gin.H{
		"id":        o.ID,
		"email":     o.Email,
		"firstName": o.FirstName,
		"lastName":  o.LastName,
	}
}
