package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ReleaseInfo is the subset of the GitHub releases API payload the update
// checker cares about.
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Atualizacao is the result surfaced to the presentation layer.
type Atualizacao struct {
	VersaoAtual     string `json:"versao_atual"`
	VersaoDisponivel string `json:"versao_disponivel,omitempty"`
	Disponivel      bool   `json:"disponivel"`
	URL             string `json:"url,omitempty"`
}

// Atualizador consulta a API de releases do GitHub para saber se existe uma
// versão mais nova do sistema. Falhas de rede passam pelo circuit breaker:
// com o GitHub fora do ar o endpoint responde rápido em vez de esperar timeout.
type Atualizador struct {
	url        string
	versao     string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewAtualizador(url, versaoAtual string, cb *CircuitBreaker) *Atualizador {
	return &Atualizador{
		url:        url,
		versao:     versaoAtual,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		cb:         cb,
	}
}

// Verificar checks the releases endpoint and compares versions.
func (a *Atualizador) Verificar(ctx context.Context) (*Atualizacao, error) {
	resultado := &Atualizacao{VersaoAtual: a.versao}

	err := a.cb.Executar(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
		if err != nil {
			return fmt.Errorf("atualizador: criar request: %w", err)
		}

		resp, err := a.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("atualizador: indisponível: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("atualizador: status %d", resp.StatusCode)
		}

		var release ReleaseInfo
		if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
			return fmt.Errorf("atualizador: decodificar resposta: %w", err)
		}

		remota := strings.TrimPrefix(strings.TrimSpace(release.TagName), "v")
		if remota == "" {
			return nil
		}
		if versaoMaisNova(remota, a.versao) {
			resultado.Disponivel = true
			resultado.VersaoDisponivel = remota
			resultado.URL = release.HTMLURL
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// versaoMaisNova compara versões "maior.menor.correção"; componentes ausentes
// valem zero, componentes não numéricos valem zero também.
func versaoMaisNova(remota, local string) bool {
	r := normalizarVersao(remota)
	l := normalizarVersao(local)
	for i := 0; i < 3; i++ {
		if r[i] != l[i] {
			return r[i] > l[i]
		}
	}
	return false
}

func normalizarVersao(v string) [3]int {
	var out [3]int
	partes := strings.Split(strings.TrimSpace(v), ".")
	for i := 0; i < len(partes) && i < 3; i++ {
		n, err := strconv.Atoi(partes[i])
		if err == nil {
			out[i] = n
		}
	}
	return out
}
