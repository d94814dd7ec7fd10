package dto

import "github.com/shopspring/decimal"

type ItemVendaRequest struct {
	ProdutoID  uint `json:"produto_id" validate:"required"`
	Quantidade int  `json:"quantidade" validate:"required,gt=0"`
}

type RegistrarVendaRequest struct {
	Itens          []ItemVendaRequest `json:"itens" validate:"required,dive"`
	Desconto       decimal.Decimal    `json:"desconto" validate:"min=0"`
	FormaPagamento string             `json:"forma_pagamento" validate:"required"`
	Observacao     string             `json:"observacao"`
	ClienteID      *uint              `json:"cliente_id"`
}

type ItemVendaResponse struct {
	ProdutoID     uint            `json:"produto_id"`
	Produto       string          `json:"produto"` // rótulo resolvido na leitura
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type VendaResponse struct {
	ID             uint                `json:"id"`
	Data           string              `json:"data"`
	Itens          []ItemVendaResponse `json:"itens,omitempty"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	Desconto       decimal.Decimal     `json:"desconto"`
	Total          decimal.Decimal     `json:"total"`
	FormaPagamento string              `json:"forma_pagamento"`
	Observacao     string              `json:"observacao,omitempty"`
	ClienteID      *uint               `json:"cliente_id,omitempty"`
	UsuarioID      *uint               `json:"usuario_id,omitempty"`
	Cancelada      bool                `json:"cancelada"`
}

// VendaFilter filtra a listagem de cabeçalhos. Datas no formato 2006-01-02,
// intervalo inclusivo por dia de calendário.
type VendaFilter struct {
	De                string `form:"de"`
	Ate               string `form:"ate"`
	IncluirCanceladas bool   `form:"incluir_canceladas"`
}
