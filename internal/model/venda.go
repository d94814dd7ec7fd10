package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas no PDV.
const (
	PagamentoDinheiro      = "DINHEIRO"
	PagamentoPix           = "PIX"
	PagamentoCartaoDebito  = "CARTAO_DEBITO"
	PagamentoCartaoCredito = "CARTAO_CREDITO"
)

// FormaPagamentoValida reports whether forma is one of the accepted enum values.
func FormaPagamentoValida(forma string) bool {
	switch forma {
	case PagamentoDinheiro, PagamentoPix, PagamentoCartaoDebito, PagamentoCartaoCredito:
		return true
	}
	return false
}

// Venda é o cabeçalho de uma venda. Total e Desconto são congelados no
// momento do registro (Total = Σ subtotal dos itens − Desconto) e nunca
// recalculados depois. Cancelada só transiciona false → true.
type Venda struct {
	ID             uint            `gorm:"primaryKey"`
	Data           time.Time       `gorm:"index;not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Desconto       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	FormaPagamento string          `gorm:"type:varchar(20);not null"`
	Observacao     string
	ClienteID      *uint `gorm:"index"`
	UsuarioID      *uint
	Cancelada      bool `gorm:"not null;default:false"`

	Itens   []ItemVenda `gorm:"foreignKey:VendaID"`
	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Usuario *Usuario    `gorm:"foreignKey:UsuarioID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda é uma linha da venda. PrecoUnitario é o preço do produto no
// momento da venda — alterações posteriores de preço não o afetam.
type ItemVenda struct {
	ID            uint            `gorm:"primaryKey"`
	VendaID       uint            `gorm:"index;not null"`
	ProdutoID     uint            `gorm:"index;not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
