package service

import (
	"testing"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func novoRelatorioAmbiente(t *testing.T) (RelatorioService, VendaService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	vendaRepo := repository.NewVendaRepository(db)
	vendaSvc := NewVendaService(vendaRepo, repository.NewProdutoRepository(db), t.TempDir())
	return NewRelatorioService(vendaRepo), vendaSvc, db
}

func TestDashboardAgregaVendasDoDia(t *testing.T) {
	relSvc, vendaSvc, db := novoRelatorioAmbiente(t)

	caneca := criarProdutoTeste(t, db, "Caneca", "20.00", 50)
	quadro := criarProdutoTeste(t, db, "Quadro", "100.00", 10)

	vender := func(produtoID uint, qtd int, forma string) *dto.VendaResponse {
		resp, err := vendaSvc.Registrar(ctxTeste(), nil, dto.RegistrarVendaRequest{
			Itens:          []dto.ItemVendaRequest{{ProdutoID: produtoID, Quantidade: qtd}},
			FormaPagamento: forma,
		})
		require.NoError(t, err)
		return resp
	}

	vender(caneca.ID, 3, model.PagamentoDinheiro) // 60.00
	vender(quadro.ID, 1, model.PagamentoPix)      // 100.00
	anulada := vender(caneca.ID, 5, model.PagamentoPix)
	require.NoError(t, vendaSvc.Cancelar(ctxTeste(), anulada.ID))

	dash, err := relSvc.Dashboard(ctxTeste())
	require.NoError(t, err)

	// Canceladas ficam fora de todos os agregados.
	assert.Equal(t, int64(2), dash.Hoje.Quantidade)
	assert.True(t, dash.Hoje.Total.Equal(decimal.RequireFromString("160.00")),
		"total de hoje esperado 160.00, obtido %s", dash.Hoje.Total)
	assert.Equal(t, int64(2), dash.Estatisticas.TotalVendas)
	assert.Equal(t, int64(2), dash.Estatisticas.ProdutosAtivos)
	assert.True(t, dash.Estatisticas.FaturamentoTotal.Equal(decimal.RequireFromString("160.00")))

	require.NotEmpty(t, dash.TopProdutos)
	assert.Equal(t, "Caneca", dash.TopProdutos[0].Nome)
	assert.Equal(t, int64(3), dash.TopProdutos[0].Quantidade)

	require.Len(t, dash.FormasPagamento, 2)
	assert.Equal(t, model.PagamentoPix, dash.FormasPagamento[0].FormaPagamento)

	require.NotEmpty(t, dash.UltimosDias)
	hoje := time.Now().Format("2006-01-02")
	assert.Equal(t, hoje, dash.UltimosDias[len(dash.UltimosDias)-1].Dia)
}

func TestResumoPeriodoValidaIntervalo(t *testing.T) {
	relSvc, _, _ := novoRelatorioAmbiente(t)

	_, err := relSvc.ResumoPeriodo(ctxTeste(), "", "2026-01-31")
	assert.ErrorIs(t, err, apperr.ErrValidacao)

	_, err = relSvc.ResumoPeriodo(ctxTeste(), "2026-02-01", "2026-01-01")
	assert.ErrorIs(t, err, apperr.ErrValidacao)

	_, err = relSvc.ResumoPeriodo(ctxTeste(), "01/01/2026", "2026-01-31")
	assert.ErrorIs(t, err, apperr.ErrValidacao)

	vazio, err := relSvc.ResumoPeriodo(ctxTeste(), "2001-01-01", "2001-12-31")
	require.NoError(t, err)
	assert.Zero(t, vazio.Quantidade)
	assert.True(t, vazio.Total.IsZero())
}

func TestProdutosMaisVendidosLimiteSaneado(t *testing.T) {
	relSvc, vendaSvc, db := novoRelatorioAmbiente(t)
	p := criarProdutoTeste(t, db, "Pulseira", "12.00", 100)

	_, err := vendaSvc.Registrar(ctxTeste(), nil, dto.RegistrarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: p.ID, Quantidade: 4}},
		FormaPagamento: model.PagamentoDinheiro,
	})
	require.NoError(t, err)

	top, err := relSvc.ProdutosMaisVendidos(ctxTeste(), -3)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, p.ID, top[0].ProdutoID)
	assert.True(t, top[0].TotalVendido.Equal(decimal.RequireFromString("48.00")))
}
