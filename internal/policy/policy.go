// Package policy centraliza as regras de autorização por nível de acesso.
// A tabela é avaliada em memória, sem consulta ao banco.
package policy

import "github.com/FrankSCarvalho/sistema-pdv/internal/model"

// Operacao identifica uma ação protegida do sistema.
type Operacao string

const (
	OpProdutoLer        Operacao = "produto:ler"
	OpProdutoEscrever   Operacao = "produto:escrever"
	OpClienteLer        Operacao = "cliente:ler"
	OpClienteEscrever   Operacao = "cliente:escrever"
	OpVendaRegistrar    Operacao = "venda:registrar"
	OpVendaCancelar     Operacao = "venda:cancelar"
	OpVendaLer          Operacao = "venda:ler"
	OpEstoqueMovimentar Operacao = "estoque:movimentar"
	OpEstoqueLer        Operacao = "estoque:ler"
	OpRelatorioLer      Operacao = "relatorio:ler"
	OpUsuarioGerenciar  Operacao = "usuario:gerenciar"
)

var porNivel = map[int]map[Operacao]bool{
	model.NivelGerente: {
		OpProdutoLer:      true,
		OpProdutoEscrever: true,
		OpClienteLer:      true,
		OpClienteEscrever: true,
		OpVendaRegistrar:  true,
		OpVendaCancelar:   true,
		OpVendaLer:        true,
		OpEstoqueLer:      true,
		OpRelatorioLer:    true,
	},
	model.NivelVendedor: {
		OpProdutoLer:     true,
		OpClienteLer:     true,
		OpVendaRegistrar: true,
		OpVendaLer:       true,
	},
}

// Permitido decide se um nível de acesso pode executar a operação.
// Administradores passam em tudo.
func Permitido(nivel int, op Operacao) bool {
	if nivel == model.NivelAdministrador {
		return true
	}
	return porNivel[nivel][op]
}
