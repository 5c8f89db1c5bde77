package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionOwnerKey = "owner_id"

// RequireOwner protegge le rotte del gestionale: senza sessione attiva la
// richiesta si ferma qui.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get(sessionOwnerKey) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Accesso negato: sessione non valida.",
			})
			return
		}
		c.Next()
	}
}

// OpenSession lega la sessione corrente al titolare.
func OpenSession(c *gin.Context, ownerID string) error {
	sess := sessions.Default(c)
	sess.Set(sessionOwnerKey, ownerID)
	return sess.Save()
}

// CloseSession svuota la sessione; il record del titolare non viene toccato.
func CloseSession(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
}
