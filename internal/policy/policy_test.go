package policy

import (
	"testing"

	"github.com/FrankSCarvalho/sistema-pdv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAdministradorPodeTudo(t *testing.T) {
	ops := []Operacao{
		OpProdutoLer, OpProdutoEscrever, OpClienteLer, OpClienteEscrever,
		OpVendaRegistrar, OpVendaCancelar, OpVendaLer,
		OpEstoqueMovimentar, OpEstoqueLer, OpRelatorioLer, OpUsuarioGerenciar,
	}
	for _, op := range ops {
		assert.True(t, Permitido(model.NivelAdministrador, op), "admin negado em %s", op)
	}
}

func TestGerenteNaoMovimentaEstoqueNemGerenciaUsuarios(t *testing.T) {
	assert.True(t, Permitido(model.NivelGerente, OpProdutoEscrever))
	assert.True(t, Permitido(model.NivelGerente, OpVendaCancelar))
	assert.True(t, Permitido(model.NivelGerente, OpRelatorioLer))

	assert.False(t, Permitido(model.NivelGerente, OpEstoqueMovimentar))
	assert.False(t, Permitido(model.NivelGerente, OpUsuarioGerenciar))
}

func TestVendedorSoVendeEConsulta(t *testing.T) {
	assert.True(t, Permitido(model.NivelVendedor, OpVendaRegistrar))
	assert.True(t, Permitido(model.NivelVendedor, OpProdutoLer))
	assert.True(t, Permitido(model.NivelVendedor, OpClienteLer))

	assert.False(t, Permitido(model.NivelVendedor, OpVendaCancelar))
	assert.False(t, Permitido(model.NivelVendedor, OpProdutoEscrever))
	assert.False(t, Permitido(model.NivelVendedor, OpRelatorioLer))
	assert.False(t, Permitido(model.NivelVendedor, OpUsuarioGerenciar))
}

func TestNivelDesconhecidoNaoTemPermissao(t *testing.T) {
	assert.False(t, Permitido(0, OpProdutoLer))
	assert.False(t, Permitido(9, OpVendaRegistrar))
}
