package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitoAbreAposFalhasEFechaNoReteste(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FalhasParaAbrir:    2,
		SucessosParaFechar: 1,
		EsperaReteste:      10 * time.Millisecond,
	})
	falha := errors.New("rede fora do ar")

	require.Error(t, cb.Executar(func() error { return falha }))
	assert.Equal(t, "fechado", cb.Estado())
	require.Error(t, cb.Executar(func() error { return falha }))
	assert.Equal(t, "aberto", cb.Estado())

	// Aberto: a função nem é chamada.
	chamou := false
	err := cb.Executar(func() error { chamou = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitoAberto)
	assert.False(t, chamou)

	// Vencida a espera, um teste bem-sucedido fecha o circuito.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "meio-aberto", cb.Estado())
	require.NoError(t, cb.Executar(func() error { return nil }))
	assert.Equal(t, "fechado", cb.Estado())
}

func TestCircuitoMeioAbertoReabreComNovaFalha(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FalhasParaAbrir:    1,
		SucessosParaFechar: 1,
		EsperaReteste:      5 * time.Millisecond,
	})
	falha := errors.New("rede fora do ar")

	require.Error(t, cb.Executar(func() error { return falha }))
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, "meio-aberto", cb.Estado())

	// O teste falhou: volta direto para aberto.
	require.Error(t, cb.Executar(func() error { return falha }))
	assert.Equal(t, "aberto", cb.Estado())
	assert.ErrorIs(t, cb.Executar(func() error { return nil }), ErrCircuitoAberto)
}
