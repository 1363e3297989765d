package api

import (
	"net/http"
	"time"

	"backend_jmtecnica/models"

	"github.com/gin-gonic/gin"
)

// respondError envia o envelope de erro padrão da API
func respondError(c *gin.Context, status int, mensagem string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   mensagem,
	})
}

// respondInternalError envia um erro 500 com a mensagem crua do erro.
// Aceitável para uma ferramenta interna; exposição pública exigiria
// redigir o conteúdo e registrar em log.
func respondInternalError(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, err.Error())
}

// ParseDate interpreta uma data YYYY-MM-DD; retorna zero se inválida
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(models.DateFormat, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// ParseTime normaliza um horário HH:MM; retorna nil se vazio ou inválido
func ParseTime(value string) *string {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(models.TimeFormat, value)
	if err != nil {
		return nil
	}
	normalizado := parsed.Format(models.TimeFormat)
	return &normalizado
}
