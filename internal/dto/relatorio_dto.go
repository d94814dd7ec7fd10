package dto

import "github.com/shopspring/decimal"

// ResumoPeriodoResponse agrega vendas não canceladas de um intervalo.
type ResumoPeriodoResponse struct {
	Quantidade int64           `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

type FormaPagamentoTotalResponse struct {
	FormaPagamento string          `json:"forma_pagamento"`
	Quantidade     int64           `json:"quantidade"`
	Total          decimal.Decimal `json:"total"`
}

type ProdutoMaisVendidoResponse struct {
	ProdutoID   uint            `json:"produto_id"`
	Nome        string          `json:"nome"`
	Quantidade  int64           `json:"quantidade"`
	TotalVendido decimal.Decimal `json:"total_vendido"`
}

type VendaDiariaResponse struct {
	Dia        string          `json:"dia"` // 2006-01-02
	Quantidade int64           `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

type EstatisticasGeraisResponse struct {
	ProdutosAtivos   int64           `json:"produtos_ativos"`
	ClientesAtivos   int64           `json:"clientes_ativos"`
	TotalVendas      int64           `json:"total_vendas"`
	FaturamentoTotal decimal.Decimal `json:"faturamento_total"`
}

type DashboardResponse struct {
	Hoje            ResumoPeriodoResponse         `json:"hoje"`
	Mes             ResumoPeriodoResponse         `json:"mes"`
	TopProdutos     []ProdutoMaisVendidoResponse  `json:"top_produtos"`
	FormasPagamento []FormaPagamentoTotalResponse `json:"formas_pagamento"`
	UltimosDias     []VendaDiariaResponse         `json:"ultimos_dias"`
	Estatisticas    EstatisticasGeraisResponse    `json:"estatisticas"`
}
