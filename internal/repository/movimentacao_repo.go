package repository

import (
	"context"

	"github.com/FrankSCarvalho/sistema-pdv/internal/model"

	"gorm.io/gorm"
)

type MovimentacaoRepository interface {
	// CreateTx insere o registro do livro dentro da transação que também
	// ajusta o contador de estoque do produto.
	CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error
	// Listar devolve movimentações com o produto carregado, mais recentes
	// primeiro. produtoID nil lista todas.
	Listar(ctx context.Context, produtoID *uint) ([]model.MovimentacaoEstoque, error)

	DB() *gorm.DB
}

type movimentacaoRepo struct{ db *gorm.DB }

func NewMovimentacaoRepository(db *gorm.DB) MovimentacaoRepository {
	return &movimentacaoRepo{db: db}
}

func (r *movimentacaoRepo) DB() *gorm.DB { return r.db }

func (r *movimentacaoRepo) CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error {
	return translate("movimentacoes.create", tx.Create(m).Error)
}

func (r *movimentacaoRepo) Listar(ctx context.Context, produtoID *uint) ([]model.MovimentacaoEstoque, error) {
	var movs []model.MovimentacaoEstoque

	q := r.db.WithContext(ctx).Preload("Produto").Order("data DESC")
	if produtoID != nil {
		q = q.Where("produto_id = ?", *produtoID)
	}

	if err := q.Find(&movs).Error; err != nil {
		return nil, translate("movimentacoes.list", err)
	}
	return movs, nil
}
