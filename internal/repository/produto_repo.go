package repository

import (
	"context"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/moeda"

	"gorm.io/gorm"
)

// produtoSortColumns é a lista fechada de colunas de ordenação aceitas.
// Qualquer outro valor cai silenciosamente em "nome" — guarda deliberada
// contra injeção de SQL via parâmetro de ordenação.
var produtoSortColumns = map[string]string{
	"nome":        "nome",
	"categoria":   "categoria",
	"preco_venda": "preco_venda",
	"estoque":     "estoque",
	"created_at":  "created_at",
}

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	Update(ctx context.Context, p *model.Produto) error
	SoftDelete(ctx context.Context, id uint) error
	Reativar(ctx context.Context, id uint) error

	// Usados dentro de transações — o chamador passa a tx viva.
	FindByIDTx(tx *gorm.DB, id uint) (*model.Produto, error)
	UpdateEstoqueTx(tx *gorm.DB, id uint, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) DB() *gorm.DB { return r.db }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return translate("produtos.create", r.db.WithContext(ctx).Create(p).Error)
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate("produtos.find", err)
	}
	return &p, nil
}

func (r *produtoRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).
		Where("codigo_barras = ? AND ativo = ?", codigo, true).
		First(&p).Error
	if err != nil {
		return nil, translate("produtos.find_codigo", err)
	}
	return &p, nil
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})

	if !filter.IncluirInativos {
		q = q.Where("ativo = ?", true)
	}
	if filter.Nome != "" {
		q = q.Where("nome LIKE ?", "%"+filter.Nome+"%")
	}
	if filter.Categoria != "" {
		q = q.Where("categoria LIKE ?", "%"+filter.Categoria+"%")
	}
	if filter.CodigoBarras != "" {
		q = q.Where("codigo_barras = ?", filter.CodigoBarras)
	}
	if filter.PrecoMin != "" {
		if min, err := moeda.Normalizar(filter.PrecoMin); err == nil {
			q = q.Where("preco_venda >= ?", min)
		}
	}
	if filter.PrecoMax != "" {
		if max, err := moeda.Normalizar(filter.PrecoMax); err == nil {
			q = q.Where("preco_venda <= ?", max)
		}
	}
	if filter.EstoqueMax != nil {
		q = q.Where("estoque <= ?", *filter.EstoqueMax)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("produtos.count", err)
	}

	col, ok := produtoSortColumns[filter.OrdenarPor]
	if !ok {
		col = "nome"
	}
	dir := "ASC"
	if filter.Direcao == "desc" {
		dir = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order(col + " " + dir).Limit(filter.Limit).Offset(offset).Find(&produtos).Error
	if err != nil {
		return nil, 0, translate("produtos.list", err)
	}
	return produtos, total, nil
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	res := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"codigo_barras": p.CodigoBarras,
			"nome":          p.Nome,
			"categoria":     p.Categoria,
			"tamanho":       p.Tamanho,
			"cor":           p.Cor,
			"preco_custo":   p.PrecoCusto,
			"preco_venda":   p.PrecoVenda,
		})
	if res.Error != nil {
		return translate("produtos.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *produtoRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.setAtivo(ctx, id, false)
}

func (r *produtoRepo) Reativar(ctx context.Context, id uint) error {
	return r.setAtivo(ctx, id, true)
}

func (r *produtoRepo) setAtivo(ctx context.Context, id uint, ativo bool) error {
	res := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("id = ?", id).
		Update("ativo", ativo)
	if res.Error != nil {
		return translate("produtos.ativo", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Produto, error) {
	var p model.Produto
	if err := tx.First(&p, id).Error; err != nil {
		return nil, translate("produtos.find_tx", err)
	}
	return &p, nil
}

// UpdateEstoqueTx ajusta o contador dentro da própria instrução UPDATE.
// A cláusula `estoque + ? >= 0` é a última barreira contra saldo negativo:
// o UPDATE não encontra a linha quando o débito excederia o disponível.
func (r *produtoRepo) UpdateEstoqueTx(tx *gorm.DB, id uint, delta int) error {
	res := tx.Model(&model.Produto{}).
		Where("id = ? AND estoque + ? >= 0", id, delta).
		Update("estoque", gorm.Expr("estoque + ?", delta))
	if res.Error != nil {
		return translate("produtos.estoque", res.Error)
	}
	if res.RowsAffected == 0 {
		var p model.Produto
		if err := tx.First(&p, id).Error; err != nil {
			return translate("produtos.estoque", err)
		}
		return apperr.EstoqueInsuficiente(p.ID, p.Estoque, -delta)
	}
	return nil
}
