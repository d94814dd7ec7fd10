// Package moeda normaliza e formata valores monetários no padrão brasileiro.
// A camada de apresentação envia valores digitados livremente ("1.250,99",
// "10,50", "10.50"); Normalizar resolve a ambiguidade vírgula/ponto e devolve
// um decimal exato para o núcleo.
package moeda

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalizar converte um texto numérico com separador decimal vírgula ou
// ponto para decimal. Quando ambos aparecem, o ponto é tratado como separador
// de milhar ("1.250,99" → 1250.99). Texto vazio vale zero.
func Normalizar(texto string) (decimal.Decimal, error) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return decimal.Zero, nil
	}

	switch {
	case strings.Contains(texto, ".") && strings.Contains(texto, ","):
		// Formato brasileiro completo: ponto é milhar, vírgula é decimal.
		texto = strings.ReplaceAll(texto, ".", "")
		texto = strings.ReplaceAll(texto, ",", ".")
	case strings.Contains(texto, ","):
		texto = strings.ReplaceAll(texto, ",", ".")
	}

	valor, err := decimal.NewFromString(texto)
	if err != nil {
		return decimal.Zero, fmt.Errorf("'%s' não é um número válido", texto)
	}
	return valor, nil
}

// Formatar renderiza um decimal como moeda brasileira: 1234.5 → "R$ 1.234,50".
func Formatar(valor decimal.Decimal) string {
	texto := valor.StringFixed(2) // ex.: "-1234.50"

	negativo := strings.HasPrefix(texto, "-")
	texto = strings.TrimPrefix(texto, "-")

	partes := strings.SplitN(texto, ".", 2)
	inteiro, fracao := partes[0], partes[1]

	// Insere pontos de milhar da direita para a esquerda.
	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sinal, b.String(), fracao)
}
