package dto

import "github.com/shopspring/decimal"

type CriarClienteRequest struct {
	Nome        string  `json:"nome" validate:"required"`
	CpfCnpj     *string `json:"cpf_cnpj"`
	Telefone    string  `json:"telefone"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Endereco    string  `json:"endereco"`
	Cidade      string  `json:"cidade"`
	Estado      string  `json:"estado"`
	Cep         string  `json:"cep"`
	Observacoes string  `json:"observacoes"`
}

type AtualizarClienteRequest = CriarClienteRequest

type ClienteFilter struct {
	Nome            string `form:"nome"`
	CpfCnpj         string `form:"cpf_cnpj"`
	Telefone        string `form:"telefone"`
	IncluirInativos bool   `form:"incluir_inativos"`
	OrdenarPor      string `form:"ordenar_por"`
	Direcao         string `form:"direcao"`
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
}

type ClienteResponse struct {
	ID           uint    `json:"id"`
	Nome         string  `json:"nome"`
	CpfCnpj      *string `json:"cpf_cnpj,omitempty"`
	Telefone     string  `json:"telefone"`
	Email        string  `json:"email"`
	Endereco     string  `json:"endereco"`
	Cidade       string  `json:"cidade"`
	Estado       string  `json:"estado"`
	Cep          string  `json:"cep"`
	Observacoes  string  `json:"observacoes"`
	Ativo        bool    `json:"ativo"`
	DataCadastro string  `json:"data_cadastro"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// CompraHistoricoResponse é uma linha do histórico de compras de um cliente.
type CompraHistoricoResponse struct {
	VendaID        uint            `json:"venda_id"`
	Data           string          `json:"data"`
	Total          decimal.Decimal `json:"total"`
	FormaPagamento string          `json:"forma_pagamento"`
	Cancelada      bool            `json:"cancelada"`
}

type TotalGastoResponse struct {
	ClienteID  uint            `json:"cliente_id"`
	TotalGasto decimal.Decimal `json:"total_gasto"`
}
