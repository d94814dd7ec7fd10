package moeda

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"1.250,99", "1250.99"},
		{"10,50", "10.5"},
		{"10.50", "10.5"},
		{"0,99", "0.99"},
		{"1234", "1234"},
		{"  49,90  ", "49.9"},
		{"", "0"},
		{"-5,25", "-5.25"},
	}
	for _, caso := range casos {
		t.Run(caso.entrada, func(t *testing.T) {
			valor, err := Normalizar(caso.entrada)
			require.NoError(t, err)
			assert.True(t, valor.Equal(decimal.RequireFromString(caso.esperado)),
				"esperado %s, obtido %s", caso.esperado, valor)
		})
	}
}

func TestNormalizarTextoInvalido(t *testing.T) {
	for _, entrada := range []string{"abc", "12,34,56", "R$ 10"} {
		_, err := Normalizar(entrada)
		assert.Error(t, err, "entrada %q deveria falhar", entrada)
	}
}

func TestFormatar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"1234.5", "R$ 1.234,50"},
		{"0", "R$ 0,00"},
		{"999", "R$ 999,00"},
		{"1000", "R$ 1.000,00"},
		{"1250999.99", "R$ 1.250.999,99"},
		{"-42.1", "-R$ 42,10"},
	}
	for _, caso := range casos {
		assert.Equal(t, caso.esperado, Formatar(decimal.RequireFromString(caso.entrada)))
	}
}
