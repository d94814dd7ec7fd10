package infra

import (
	"errors"
	"sync"
	"time"
)

// Disjuntor de chamadas externas. A verificação de atualização sai para a
// internet; quando o serviço remoto falha repetidamente, o disjuntor abre e
// as chamadas seguintes falham na hora em vez de segurar o endpoint /versao.
// Passada a espera, uma única chamada de teste decide se o circuito fecha.

// ErrCircuitoAberto indica que a chamada foi recusada sem ir à rede.
var ErrCircuitoAberto = errors.New("circuito aberto: chamadas externas suspensas")

type cbEstado int

const (
	cbFechado cbEstado = iota
	cbAberto
	cbMeioAberto
)

// CircuitBreakerConfig ajusta a sensibilidade do disjuntor.
type CircuitBreakerConfig struct {
	FalhasParaAbrir    int           // falhas seguidas até abrir
	SucessosParaFechar int           // sucessos seguidos no meio-aberto até fechar
	EsperaReteste      time.Duration // tempo aberto antes de liberar um teste
}

// CBConfigPadrao cobre o verificador de atualização: o GitHub fora do ar por
// alguns minutos não deve manter o circuito aberto além do necessário.
func CBConfigPadrao() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FalhasParaAbrir:    3,
		SucessosParaFechar: 1,
		EsperaReteste:      2 * time.Minute,
	}
}

type CircuitBreaker struct {
	mu          sync.Mutex
	cfg         CircuitBreakerConfig
	estado      cbEstado
	falhas      int
	sucessos    int
	ultimaFalha time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	padrao := CBConfigPadrao()
	if cfg.FalhasParaAbrir <= 0 {
		cfg.FalhasParaAbrir = padrao.FalhasParaAbrir
	}
	if cfg.SucessosParaFechar <= 0 {
		cfg.SucessosParaFechar = padrao.SucessosParaFechar
	}
	if cfg.EsperaReteste <= 0 {
		cfg.EsperaReteste = padrao.EsperaReteste
	}
	return &CircuitBreaker{cfg: cfg}
}

// Executar roda fn sob o disjuntor. Com o circuito aberto retorna
// ErrCircuitoAberto sem chamar fn.
func (cb *CircuitBreaker) Executar(fn func() error) error {
	if err := cb.liberar(); err != nil {
		return err
	}
	err := fn()
	cb.registrar(err)
	return err
}

// Estado expõe o estado corrente por nome, para logs e diagnóstico.
func (cb *CircuitBreaker) Estado() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.estadoCorrente() {
	case cbAberto:
		return "aberto"
	case cbMeioAberto:
		return "meio-aberto"
	default:
		return "fechado"
	}
}

// estadoCorrente promove aberto → meio-aberto quando a espera venceu.
// Chamar com o mutex tomado.
func (cb *CircuitBreaker) estadoCorrente() cbEstado {
	if cb.estado == cbAberto && time.Since(cb.ultimaFalha) >= cb.cfg.EsperaReteste {
		cb.estado = cbMeioAberto
		cb.sucessos = 0
	}
	return cb.estado
}

func (cb *CircuitBreaker) liberar() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.estadoCorrente() == cbAberto {
		return ErrCircuitoAberto
	}
	return nil
}

func (cb *CircuitBreaker) registrar(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.falhas++
		cb.ultimaFalha = time.Now()
		if cb.estado == cbMeioAberto || cb.falhas >= cb.cfg.FalhasParaAbrir {
			cb.estado = cbAberto
			cb.falhas = 0
			cb.sucessos = 0
		}
		return
	}

	switch cb.estado {
	case cbMeioAberto:
		cb.sucessos++
		if cb.sucessos >= cb.cfg.SucessosParaFechar {
			cb.estado = cbFechado
			cb.falhas = 0
			cb.sucessos = 0
		}
	default:
		cb.falhas = 0
	}
}
