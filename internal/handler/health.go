package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/infra"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health verifica a conectividade com o banco; nunca expõe internals.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok": status == http.StatusOK,
			"db": dbStatus,
		})
	}
}

// Versao devolve a versão instalada e, quando o verificador responde,
// se existe release mais nova publicada.
func Versao(versao string, atualizador *infra.Atualizador) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := atualizador.Verificar(c.Request.Context())
		if err != nil {
			// Atualização é best-effort: sem rede o sistema segue operando.
			c.JSON(http.StatusOK, gin.H{
				"versao_atual": versao,
				"disponivel":   false,
				"erro":         "verificação de atualização indisponível",
			})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
