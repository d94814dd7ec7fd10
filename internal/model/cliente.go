package model

import "time"

// Cliente guarda o cadastro de clientes da loja. CpfCnpj é opcional mas
// único quando presente. Soft-delete via Ativo, como em Produto.
type Cliente struct {
	ID           uint    `gorm:"primaryKey"`
	Nome         string  `gorm:"index;not null"`
	CpfCnpj      *string `gorm:"column:cpf_cnpj;uniqueIndex"`
	Telefone     string
	Email        string
	Endereco     string
	Cidade       string
	Estado       string
	Cep          string
	Observacoes  string
	Ativo        bool      `gorm:"not null;default:true"`
	DataCadastro time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time
}

func (Cliente) TableName() string { return "clientes" }
