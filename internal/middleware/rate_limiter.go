package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apierror"

	"github.com/gin-gonic/gin"
)

// Limitador de requisições por IP em janela deslizante. Cada instância carrega
// o próprio mapa de contadores; entradas de IPs que não voltam são varridas a
// cada passagem de limpeza para o mapa não crescer sem fim.

type janelaIP struct {
	contagem int
	expira   time.Time
}

type limitador struct {
	mu       sync.Mutex
	porIP    map[string]*janelaIP
	limite   int
	janela   time.Duration
	proxVarr time.Time
	mensagem string
}

func novoLimitador(limite int, janela time.Duration, mensagem string) *limitador {
	return &limitador{
		porIP:    make(map[string]*janelaIP),
		limite:   limite,
		janela:   janela,
		proxVarr: time.Now().Add(janela),
		mensagem: mensagem,
	}
}

// permitir conta a requisição e responde se ela cabe na janela do IP.
func (l *limitador) permitir(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	agora := time.Now()
	if agora.After(l.proxVarr) {
		for ip, j := range l.porIP {
			if agora.After(j.expira) {
				delete(l.porIP, ip)
			}
		}
		l.proxVarr = agora.Add(l.janela)
	}

	j, ok := l.porIP[ip]
	if !ok || agora.After(j.expira) {
		j = &janelaIP{expira: agora.Add(l.janela)}
		l.porIP[ip] = j
	}
	j.contagem++
	return j.contagem <= l.limite, j.expira
}

func (l *limitador) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, expira := l.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", expira.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensagem))
			return
		}
		c.Next()
	}
}

// RateLimiter limita a API inteira por IP.
func RateLimiter(limite int, janela time.Duration) gin.HandlerFunc {
	return novoLimitador(limite, janela,
		"Muitas requisições. Tente novamente em instantes.").handler()
}

// LoginRateLimiter aperta o funil do login: 20 tentativas por minuto por IP
// seguram força bruta de senha sem atrapalhar o uso normal do caixa.
func LoginRateLimiter() gin.HandlerFunc {
	return novoLimitador(20, time.Minute,
		"Muitas tentativas de login. Tente novamente em 1 minuto.").handler()
}
