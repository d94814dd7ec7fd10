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

func novoClienteService(t *testing.T) (ClienteService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewClienteService(repository.NewClienteRepository(db)), db
}

func TestCriarClienteCpfCnpjDuplicado(t *testing.T) {
	svc, _ := novoClienteService(t)

	_, err := svc.Criar(ctxTeste(), dto.CriarClienteRequest{
		Nome:    "Ana Souza",
		CpfCnpj: strPtr("123.456.789-00"),
	})
	require.NoError(t, err)

	_, err = svc.Criar(ctxTeste(), dto.CriarClienteRequest{
		Nome:    "Ana Homônima",
		CpfCnpj: strPtr("123.456.789-00"),
	})
	assert.ErrorIs(t, err, apperr.ErrChaveDuplicada)

	// CPF/CNPJ ausente nunca colide.
	for _, nome := range []string{"Sem Documento A", "Sem Documento B"} {
		_, err := svc.Criar(ctxTeste(), dto.CriarClienteRequest{Nome: nome})
		require.NoError(t, err)
	}
}

func TestClienteSoftDeleteEListagem(t *testing.T) {
	svc, _ := novoClienteService(t)

	criado, err := svc.Criar(ctxTeste(), dto.CriarClienteRequest{
		Nome:   "Bruno Lima",
		Cidade: "Fortaleza",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Desativar(ctxTeste(), criado.ID))

	ativos, err := svc.Listar(ctxTeste(), dto.ClienteFilter{})
	require.NoError(t, err)
	assert.Zero(t, ativos.Total)

	todos, err := svc.Listar(ctxTeste(), dto.ClienteFilter{IncluirInativos: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), todos.Total)

	require.NoError(t, svc.Reativar(ctxTeste(), criado.ID))
	devolta, err := svc.BuscarPorID(ctxTeste(), criado.ID)
	require.NoError(t, err)
	assert.True(t, devolta.Ativo)
}

func TestHistoricoComprasETotalGasto(t *testing.T) {
	db := newTestDB(t)
	clienteSvc := NewClienteService(repository.NewClienteRepository(db))
	vendaSvc := NewVendaService(
		repository.NewVendaRepository(db),
		repository.NewProdutoRepository(db),
		t.TempDir(),
	)

	cliente, err := clienteSvc.Criar(ctxTeste(), dto.CriarClienteRequest{Nome: "Carla Dias"})
	require.NoError(t, err)
	p := criarProdutoTeste(t, db, "Echarpe", "40.00", 30)

	registrar := func(qtd int) *dto.VendaResponse {
		resp, err := vendaSvc.Registrar(ctxTeste(), nil, dto.RegistrarVendaRequest{
			Itens:          []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: qtd}},
			FormaPagamento: "PIX",
			ClienteID:      &cliente.ID,
		})
		require.NoError(t, err)
		return resp
	}

	registrar(2)                               // 80.00
	cancelada := registrar(1)                  // 40.00, cancelada abaixo
	require.NoError(t, vendaSvc.Cancelar(ctxTeste(), cancelada.ID))

	historico, err := clienteSvc.HistoricoCompras(ctxTeste(), cliente.ID)
	require.NoError(t, err)
	require.Len(t, historico, 2)

	// Venda cancelada aparece no histórico mas não soma no total gasto.
	total, err := clienteSvc.TotalGasto(ctxTeste(), cliente.ID)
	require.NoError(t, err)
	assert.True(t, total.TotalGasto.Equal(decimal.RequireFromString("80.00")),
		"total gasto esperado 80.00, obtido %s", total.TotalGasto)

	_, err = clienteSvc.HistoricoCompras(ctxTeste(), 9999)
	assert.ErrorIs(t, err, apperr.ErrNaoEncontrado)
}

func TestAtualizarClienteInexistente(t *testing.T) {
	svc, _ := novoClienteService(t)
	_, err := svc.Atualizar(ctxTeste(), 77, dto.CriarClienteRequest{Nome: "Ninguém"})
	assert.ErrorIs(t, err, apperr.ErrNaoEncontrado)
}
