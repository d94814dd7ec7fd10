package dto

import "github.com/shopspring/decimal"

type CriarProdutoRequest struct {
	CodigoBarras *string         `json:"codigo_barras"`
	Nome         string          `json:"nome" validate:"required"`
	Categoria    string          `json:"categoria"`
	Tamanho      string          `json:"tamanho"`
	Cor          string          `json:"cor"`
	PrecoCusto   decimal.Decimal `json:"preco_custo" validate:"min=0"`
	PrecoVenda   decimal.Decimal `json:"preco_venda" validate:"min=0"`
	Estoque      int             `json:"estoque" validate:"min=0"`
}

// AtualizarProdutoRequest não carrega estoque: o contador só muda por
// movimentações e vendas, preservando a conservação do livro de estoque.
type AtualizarProdutoRequest struct {
	CodigoBarras *string         `json:"codigo_barras"`
	Nome         string          `json:"nome" validate:"required"`
	Categoria    string          `json:"categoria"`
	Tamanho      string          `json:"tamanho"`
	Cor          string          `json:"cor"`
	PrecoCusto   decimal.Decimal `json:"preco_custo" validate:"min=0"`
	PrecoVenda   decimal.Decimal `json:"preco_venda" validate:"min=0"`
}

// ProdutoFilter são os predicados opcionais da listagem. PrecoMin/PrecoMax
// chegam como texto livre ("10,50") e passam pelo normalizador de moeda.
type ProdutoFilter struct {
	Nome            string `form:"nome"`
	Categoria       string `form:"categoria"`
	CodigoBarras    string `form:"codigo_barras"`
	PrecoMin        string `form:"preco_min"`
	PrecoMax        string `form:"preco_max"`
	EstoqueMax      *int   `form:"estoque_max"`
	IncluirInativos bool   `form:"incluir_inativos"`
	OrdenarPor      string `form:"ordenar_por"`
	Direcao         string `form:"direcao"` // asc | desc
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
}

type ProdutoResponse struct {
	ID           uint            `json:"id"`
	CodigoBarras *string         `json:"codigo_barras,omitempty"`
	Nome         string          `json:"nome"`
	Rotulo       string          `json:"rotulo"`
	Categoria    string          `json:"categoria"`
	Tamanho      string          `json:"tamanho"`
	Cor          string          `json:"cor"`
	PrecoCusto   decimal.Decimal `json:"preco_custo"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	Estoque      int             `json:"estoque"`
	Ativo        bool            `json:"ativo"`
}

type ProdutoListResponse struct {
	Data  []ProdutoResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
