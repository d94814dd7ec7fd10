package middleware

import (
	"net/http"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler recolhe erros pendurados no contexto Gin ao fim da cadeia.
// O detalhe fica no log, amarrado ao request_id; o cliente recebe só a
// mensagem genérica.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("metodo", c.Request.Method).
			Str("rota", c.FullPath()).
			Err(c.Errors.Last().Err).
			Msg("erro não tratado")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			apierror.New("Erro interno do servidor"))
	}
}

// Recovery converte panics em 500, mantendo o processo de pé.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("rota", c.FullPath()).
					Interface("panic", r).
					Msg("panic recuperado")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apierror.New("Erro interno do servidor"))
			}
		}()
		c.Next()
	}
}

// Logger registra cada requisição com latência e request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("metodo", c.Request.Method).
			Str("rota", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("latencia", time.Since(inicio)).
			Msg("requisição")
	}
}
