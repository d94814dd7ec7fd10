package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo da loja.
// Nunca é removido fisicamente: a desativação (Ativo=false) é o estado
// terminal de remoção, preservando o histórico de vendas e movimentações.
type Produto struct {
	ID           uint    `gorm:"primaryKey"`
	CodigoBarras *string `gorm:"uniqueIndex"`
	Nome         string  `gorm:"index;not null"`
	Categoria    string
	Tamanho      string
	Cor          string
	PrecoCusto   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PrecoVenda   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Estoque      int             `gorm:"not null;default:0"`
	Ativo        bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Produto) TableName() string { return "produtos" }

// Rotulo monta o nome de exibição usado em itens de venda e movimentações:
// "Camiseta (M Azul)". Resolvido na leitura, nunca armazenado.
func (p *Produto) Rotulo() string {
	if p.Tamanho == "" && p.Cor == "" {
		return p.Nome
	}
	return fmt.Sprintf("%s (%s %s)", p.Nome, p.Tamanho, p.Cor)
}
