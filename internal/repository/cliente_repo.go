package repository

import (
	"context"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var clienteSortColumns = map[string]string{
	"nome":          "nome",
	"cidade":        "cidade",
	"data_cadastro": "data_cadastro",
	"cpf_cnpj":      "cpf_cnpj",
}

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*model.Cliente, error)
	List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Update(ctx context.Context, c *model.Cliente) error
	SoftDelete(ctx context.Context, id uint) error
	Reativar(ctx context.Context, id uint) error

	// Histórico de compras do cliente (cabeçalhos, mais recentes primeiro).
	HistoricoCompras(ctx context.Context, clienteID uint) ([]model.Venda, error)
	// Soma das vendas não canceladas do cliente.
	TotalGasto(ctx context.Context, clienteID uint) (decimal.Decimal, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return translate("clientes.create", r.db.WithContext(ctx).Create(c).Error)
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate("clientes.find", err)
	}
	return &c, nil
}

func (r *clienteRepo) FindByCpfCnpj(ctx context.Context, cpfCnpj string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).
		Where("cpf_cnpj = ? AND ativo = ?", cpfCnpj, true).
		First(&c).Error
	if err != nil {
		return nil, translate("clientes.find_cpf", err)
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Cliente{})

	if !filter.IncluirInativos {
		q = q.Where("ativo = ?", true)
	}
	if filter.Nome != "" {
		q = q.Where("nome LIKE ?", "%"+filter.Nome+"%")
	}
	if filter.CpfCnpj != "" {
		q = q.Where("cpf_cnpj LIKE ?", "%"+filter.CpfCnpj+"%")
	}
	if filter.Telefone != "" {
		q = q.Where("telefone LIKE ?", "%"+filter.Telefone+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translate("clientes.count", err)
	}

	col, ok := clienteSortColumns[filter.OrdenarPor]
	if !ok {
		col = "nome"
	}
	dir := "ASC"
	if filter.Direcao == "desc" {
		dir = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order(col + " " + dir).Limit(filter.Limit).Offset(offset).Find(&clientes).Error
	if err != nil {
		return nil, 0, translate("clientes.list", err)
	}
	return clientes, total, nil
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"nome":        c.Nome,
			"cpf_cnpj":    c.CpfCnpj,
			"telefone":    c.Telefone,
			"email":       c.Email,
			"endereco":    c.Endereco,
			"cidade":      c.Cidade,
			"estado":      c.Estado,
			"cep":         c.Cep,
			"observacoes": c.Observacoes,
		})
	if res.Error != nil {
		return translate("clientes.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *clienteRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.setAtivo(ctx, id, false)
}

func (r *clienteRepo) Reativar(ctx context.Context, id uint) error {
	return r.setAtivo(ctx, id, true)
}

func (r *clienteRepo) setAtivo(ctx context.Context, id uint, ativo bool) error {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("id = ?", id).
		Update("ativo", ativo)
	if res.Error != nil {
		return translate("clientes.ativo", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNaoEncontrado
	}
	return nil
}

func (r *clienteRepo) HistoricoCompras(ctx context.Context, clienteID uint) ([]model.Venda, error) {
	var vendas []model.Venda
	err := r.db.WithContext(ctx).
		Where("cliente_id = ?", clienteID).
		Order("data DESC").
		Find(&vendas).Error
	if err != nil {
		return nil, translate("clientes.historico", err)
	}
	return vendas, nil
}

func (r *clienteRepo) TotalGasto(ctx context.Context, clienteID uint) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).
		Raw("SELECT COALESCE(SUM(total), 0) AS total FROM vendas WHERE cliente_id = ? AND cancelada = ?", clienteID, false).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, translate("clientes.total_gasto", err)
	}
	return row.Total, nil
}
