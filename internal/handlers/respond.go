package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindError — risposta uniforme per i payload che non passano il binding.
// Se l'errore viene dal validatore elenca i campi incriminati.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Dati non validi o incompleti.",
			"fields": fields,
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi o incompleti."})
}

func userError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
