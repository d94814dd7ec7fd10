package service

import (
	"testing"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func novoProdutoService(t *testing.T) (ProdutoService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProdutoService(repository.NewProdutoRepository(db)), db
}

func strPtr(s string) *string { return &s }

func TestCriarProdutoComCodigoBarrasDuplicado(t *testing.T) {
	svc, _ := novoProdutoService(t)

	req := dto.CriarProdutoRequest{
		CodigoBarras: strPtr("7891234567890"),
		Nome:         "Camiseta Básica",
		PrecoVenda:   decimal.RequireFromString("49.90"),
		Estoque:      10,
	}
	_, err := svc.Criar(ctxTeste(), req)
	require.NoError(t, err)

	req.Nome = "Outra Camiseta"
	_, err = svc.Criar(ctxTeste(), req)
	assert.ErrorIs(t, err, apperr.ErrChaveDuplicada)
}

func TestCriarProdutosSemCodigoBarrasNaoColidem(t *testing.T) {
	svc, _ := novoProdutoService(t)

	for _, nome := range []string{"Avulso A", "Avulso B"} {
		_, err := svc.Criar(ctxTeste(), dto.CriarProdutoRequest{
			Nome:         nome,
			CodigoBarras: strPtr("   "), // vira NULL, índice único ignora
			PrecoVenda:   decimal.RequireFromString("5.00"),
		})
		require.NoError(t, err)
	}
}

func TestProdutoSoftDeleteEReativacao(t *testing.T) {
	svc, _ := novoProdutoService(t)

	criado, err := svc.Criar(ctxTeste(), dto.CriarProdutoRequest{
		CodigoBarras: strPtr("1112223334445"),
		Nome:         "Jaqueta",
		Tamanho:      "M",
		Cor:          "Preta",
		PrecoVenda:   decimal.RequireFromString("199.90"),
		Estoque:      4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jaqueta (M Preta)", criado.Rotulo)

	require.NoError(t, svc.Desativar(ctxTeste(), criado.ID))

	// Desativado some da listagem padrão e da busca por código.
	lista, err := svc.Listar(ctxTeste(), dto.ProdutoFilter{})
	require.NoError(t, err)
	assert.Zero(t, lista.Total)

	_, err = svc.BuscarPorCodigoBarras(ctxTeste(), "1112223334445")
	assert.ErrorIs(t, err, apperr.ErrNaoEncontrado)

	// Mas continua acessível por ID e aparece com incluir_inativos.
	porID, err := svc.BuscarPorID(ctxTeste(), criado.ID)
	require.NoError(t, err)
	assert.False(t, porID.Ativo)

	todos, err := svc.Listar(ctxTeste(), dto.ProdutoFilter{IncluirInativos: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), todos.Total)

	require.NoError(t, svc.Reativar(ctxTeste(), criado.ID))
	devolta, err := svc.BuscarPorCodigoBarras(ctxTeste(), "1112223334445")
	require.NoError(t, err)
	assert.True(t, devolta.Ativo)
}

func TestAtualizarProdutoNaoTocaEstoque(t *testing.T) {
	svc, db := novoProdutoService(t)

	criado, err := svc.Criar(ctxTeste(), dto.CriarProdutoRequest{
		Nome:       "Saia",
		PrecoVenda: decimal.RequireFromString("70.00"),
		Estoque:    12,
	})
	require.NoError(t, err)

	atualizado, err := svc.Atualizar(ctxTeste(), criado.ID, dto.AtualizarProdutoRequest{
		Nome:       "Saia Longa",
		PrecoVenda: decimal.RequireFromString("85.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Saia Longa", atualizado.Nome)
	assert.Equal(t, 12, atualizado.Estoque)
	assert.Equal(t, 12, estoqueAtual(t, db, criado.ID))
}

func TestListarProdutosOrdenacaoRestrita(t *testing.T) {
	svc, _ := novoProdutoService(t)

	for _, p := range []struct {
		nome  string
		preco string
	}{{"Zeta", "10.00"}, {"Alfa", "30.00"}, {"Miolo", "20.00"}} {
		_, err := svc.Criar(ctxTeste(), dto.CriarProdutoRequest{
			Nome:       p.nome,
			PrecoVenda: decimal.RequireFromString(p.preco),
		})
		require.NoError(t, err)
	}

	porPreco, err := svc.Listar(ctxTeste(), dto.ProdutoFilter{OrdenarPor: "preco_venda", Direcao: "desc"})
	require.NoError(t, err)
	require.Len(t, porPreco.Data, 3)
	assert.Equal(t, "Alfa", porPreco.Data[0].Nome)

	// Coluna fora da lista fechada não quebra nem injeta SQL: cai em nome ASC.
	malicioso, err := svc.Listar(ctxTeste(), dto.ProdutoFilter{
		OrdenarPor: "nome; DROP TABLE produtos--",
	})
	require.NoError(t, err)
	require.Len(t, malicioso.Data, 3)
	assert.Equal(t, "Alfa", malicioso.Data[0].Nome)

	// A tabela sobreviveu.
	depois, err := svc.Listar(ctxTeste(), dto.ProdutoFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), depois.Total)
}

func TestListarProdutosFiltroPrecoEmFormatoBrasileiro(t *testing.T) {
	svc, _ := novoProdutoService(t)

	for _, p := range []struct {
		nome  string
		preco string
	}{{"Barato", "9.90"}, {"Médio", "55.00"}, {"Caro", "1250.99"}} {
		_, err := svc.Criar(ctxTeste(), dto.CriarProdutoRequest{
			Nome:       p.nome,
			PrecoVenda: decimal.RequireFromString(p.preco),
		})
		require.NoError(t, err)
	}

	lista, err := svc.Listar(ctxTeste(), dto.ProdutoFilter{PrecoMin: "10,00", PrecoMax: "1.250,99"})
	require.NoError(t, err)
	require.Len(t, lista.Data, 2)
	assert.Equal(t, "Caro", lista.Data[0].Nome)
	assert.Equal(t, "Médio", lista.Data[1].Nome)
}

func TestCriarProdutoValidacoes(t *testing.T) {
	svc, _ := novoProdutoService(t)

	_, err := svc.Criar(ctxTeste(), dto.CriarProdutoRequest{Nome: "   "})
	assert.ErrorIs(t, err, apperr.ErrValidacao)

	_, err = svc.Criar(ctxTeste(), dto.CriarProdutoRequest{
		Nome:       "Negativo",
		PrecoVenda: decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, apperr.ErrValidacao)

	_, err = svc.Criar(ctxTeste(), dto.CriarProdutoRequest{Nome: "Estoque", Estoque: -5})
	assert.ErrorIs(t, err, apperr.ErrValidacao)
}
