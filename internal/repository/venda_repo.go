package repository

import (
	"context"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaRepository interface {
	// CreateTx insere cabeçalho e itens na transação do chamador.
	CreateTx(tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uint) (*model.Venda, error)
	FindByIDTx(tx *gorm.DB, id uint) (*model.Venda, error)
	UpdateCanceladaTx(tx *gorm.DB, id uint) error
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, error)

	// Agregações de relatório — somente leitura, vendas canceladas excluídas.
	ResumoPeriodo(ctx context.Context, de, ate string) (dto.ResumoPeriodoResponse, error)
	TotaisPorFormaPagamento(ctx context.Context) ([]dto.FormaPagamentoTotalResponse, error)
	ProdutosMaisVendidos(ctx context.Context, limite int) ([]dto.ProdutoMaisVendidoResponse, error)
	VendasPorDia(ctx context.Context, dias int) ([]dto.VendaDiariaResponse, error)
	EstatisticasGerais(ctx context.Context) (dto.EstatisticasGeraisResponse, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return translate("vendas.create", tx.Create(v).Error)
}

func (r *vendaRepo) FindByID(ctx context.Context, id uint) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		First(&v, id).Error
	if err != nil {
		return nil, translate("vendas.find", err)
	}
	return &v, nil
}

func (r *vendaRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Venda, error) {
	var v model.Venda
	if err := tx.Preload("Itens").First(&v, id).Error; err != nil {
		return nil, translate("vendas.find_tx", err)
	}
	return &v, nil
}

func (r *vendaRepo) UpdateCanceladaTx(tx *gorm.DB, id uint) error {
	res := tx.Model(&model.Venda{}).Where("id = ?", id).Update("cancelada", true)
	if res.Error != nil {
		return translate("vendas.cancelar", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, error) {
	var vendas []model.Venda

	q := r.db.WithContext(ctx).Model(&model.Venda{})
	if !filter.IncluirCanceladas {
		q = q.Where("cancelada = ?", false)
	}
	if filter.De != "" {
		q = q.Where("DATE(data) >= ?", filter.De)
	}
	if filter.Ate != "" {
		q = q.Where("DATE(data) <= ?", filter.Ate)
	}

	if err := q.Order("data DESC").Find(&vendas).Error; err != nil {
		return nil, translate("vendas.list", err)
	}
	return vendas, nil
}

// ── Agregações ───────────────────────────────────────────────────────────────

func (r *vendaRepo) ResumoPeriodo(ctx context.Context, de, ate string) (dto.ResumoPeriodoResponse, error) {
	var row struct {
		Quantidade int64
		Total      decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS quantidade, COALESCE(SUM(total), 0) AS total
		FROM vendas
		WHERE cancelada = ? AND DATE(data) >= ? AND DATE(data) <= ?`,
		false, de, ate).Scan(&row).Error
	if err != nil {
		return dto.ResumoPeriodoResponse{}, translate("vendas.resumo", err)
	}
	return dto.ResumoPeriodoResponse{Quantidade: row.Quantidade, Total: row.Total}, nil
}

func (r *vendaRepo) TotaisPorFormaPagamento(ctx context.Context) ([]dto.FormaPagamentoTotalResponse, error) {
	var rows []dto.FormaPagamentoTotalResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT forma_pagamento, COUNT(*) AS quantidade, COALESCE(SUM(total), 0) AS total
		FROM vendas
		WHERE cancelada = ?
		GROUP BY forma_pagamento
		ORDER BY total DESC`, false).Scan(&rows).Error
	if err != nil {
		return nil, translate("vendas.formas_pagamento", err)
	}
	return rows, nil
}

func (r *vendaRepo) ProdutosMaisVendidos(ctx context.Context, limite int) ([]dto.ProdutoMaisVendidoResponse, error) {
	var rows []dto.ProdutoMaisVendidoResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT iv.produto_id AS produto_id,
		       p.nome AS nome,
		       SUM(iv.quantidade) AS quantidade,
		       COALESCE(SUM(iv.subtotal), 0) AS total_vendido
		FROM itens_venda iv
		JOIN vendas v ON v.id = iv.venda_id
		JOIN produtos p ON p.id = iv.produto_id
		WHERE v.cancelada = ?
		GROUP BY iv.produto_id, p.nome
		ORDER BY quantidade DESC
		LIMIT ?`, false, limite).Scan(&rows).Error
	if err != nil {
		return nil, translate("vendas.top_produtos", err)
	}
	return rows, nil
}

func (r *vendaRepo) VendasPorDia(ctx context.Context, dias int) ([]dto.VendaDiariaResponse, error) {
	inicio := time.Now().AddDate(0, 0, -(dias - 1)).Format("2006-01-02")

	var rows []dto.VendaDiariaResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT DATE(data) AS dia, COUNT(*) AS quantidade, COALESCE(SUM(total), 0) AS total
		FROM vendas
		WHERE cancelada = ? AND DATE(data) >= ?
		GROUP BY DATE(data)
		ORDER BY dia ASC`, false, inicio).Scan(&rows).Error
	if err != nil {
		return nil, translate("vendas.por_dia", err)
	}
	return rows, nil
}

func (r *vendaRepo) EstatisticasGerais(ctx context.Context) (dto.EstatisticasGeraisResponse, error) {
	var stats dto.EstatisticasGeraisResponse

	if err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("ativo = ?", true).Count(&stats.ProdutosAtivos).Error; err != nil {
		return stats, translate("estatisticas.produtos", err)
	}
	if err := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("ativo = ?", true).Count(&stats.ClientesAtivos).Error; err != nil {
		return stats, translate("estatisticas.clientes", err)
	}

	var row struct {
		Quantidade int64
		Total      decimal.Decimal
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS quantidade, COALESCE(SUM(total), 0) AS total
		FROM vendas WHERE cancelada = ?`, false).Scan(&row).Error
	if err != nil {
		return stats, translate("estatisticas.vendas", err)
	}
	stats.TotalVendas = row.Quantidade
	stats.FaturamentoTotal = row.Total
	return stats, nil
}
