package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificarDetectaVersaoMaisNova(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/releases/v1.2.0"}`))
	}))
	defer srv.Close()

	a := NewAtualizador(srv.URL, "1.0.0", NewCircuitBreaker(CBConfigPadrao()))
	info, err := a.Verificar(context.Background())
	require.NoError(t, err)
	assert.True(t, info.Disponivel)
	assert.Equal(t, "1.2.0", info.VersaoDisponivel)
	assert.Equal(t, "https://example.com/releases/v1.2.0", info.URL)
}

func TestVerificarVersaoIgualOuMaisAntiga(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v1.0.0"}`))
	}))
	defer srv.Close()

	a := NewAtualizador(srv.URL, "1.0.1", NewCircuitBreaker(CBConfigPadrao()))
	info, err := a.Verificar(context.Background())
	require.NoError(t, err)
	assert.False(t, info.Disponivel)
	assert.Empty(t, info.VersaoDisponivel)
}

func TestVerificarServicoIndisponivelAbreCircuito(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cb := NewCircuitBreaker(CircuitBreakerConfig{FalhasParaAbrir: 2, EsperaReteste: time.Hour})
	a := NewAtualizador(srv.URL, "1.0.0", cb)

	for i := 0; i < 2; i++ {
		_, err := a.Verificar(context.Background())
		require.Error(t, err)
	}

	// Circuito aberto: a falha seguinte nem chega na rede.
	_, err := a.Verificar(context.Background())
	assert.ErrorIs(t, err, ErrCircuitoAberto)
}

func TestVersaoMaisNova(t *testing.T) {
	casos := []struct {
		remota, local string
		esperado      bool
	}{
		{"1.0.1", "1.0.0", true},
		{"2.0", "1.9.9", true},
		{"1.0.0", "1.0.0", false},
		{"1.0.0", "1.0.1", false},
		{"abc", "1.0.0", false},
		{"1.10.0", "1.9.0", true},
	}
	for _, caso := range casos {
		assert.Equal(t, caso.esperado, versaoMaisNova(caso.remota, caso.local),
			"remota=%s local=%s", caso.remota, caso.local)
	}
}
