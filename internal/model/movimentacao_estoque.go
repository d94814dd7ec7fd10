package model

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "ENTRADA"
	MovimentacaoSaida   = "SAIDA"
)

// MovimentacaoEstoque é o registro imutável do livro de estoque: toda
// ENTRADA/SAIDA manual gera uma linha aqui junto com a atualização do
// contador Estoque do produto, sempre na mesma transação. Vendas ajustam
// o estoque diretamente e não passam por esta tabela.
type MovimentacaoEstoque struct {
	ID         uint      `gorm:"primaryKey"`
	ProdutoID  uint      `gorm:"index;not null"`
	Tipo       string    `gorm:"type:varchar(10);not null"`
	Quantidade int       `gorm:"not null"`
	Data       time.Time `gorm:"index;not null"`
	Observacao string
	UsuarioID  *uint

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (MovimentacaoEstoque) TableName() string { return "movimentacoes_estoque" }
