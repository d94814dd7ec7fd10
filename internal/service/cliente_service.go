package service

import (
	"context"
	"strings"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	BuscarPorCpfCnpj(ctx context.Context, cpfCnpj string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Desativar(ctx context.Context, id uint) error
	Reativar(ctx context.Context, id uint) error
	HistoricoCompras(ctx context.Context, id uint) ([]dto.CompraHistoricoResponse, error)
	TotalGasto(ctx context.Context, id uint) (*dto.TotalGastoResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return nil, apperr.Validacao("nome", "o nome do cliente é obrigatório")
	}

	c := &model.Cliente{
		Nome:        strings.TrimSpace(req.Nome),
		CpfCnpj:     normalizarChave(req.CpfCnpj),
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		Cep:         req.Cep,
		Observacoes: req.Observacoes,
		Ativo:       true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uint, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return nil, apperr.Validacao("nome", "o nome do cliente é obrigatório")
	}

	c := &model.Cliente{
		ID:          id,
		Nome:        strings.TrimSpace(req.Nome),
		CpfCnpj:     normalizarChave(req.CpfCnpj),
		Telefone:    req.Telefone,
		Email:       req.Email,
		Endereco:    req.Endereco,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		Cep:         req.Cep,
		Observacoes: req.Observacoes,
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.BuscarPorID(ctx, id)
}

func (s *clienteService) BuscarPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) BuscarPorCpfCnpj(ctx context.Context, cpfCnpj string) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByCpfCnpj(ctx, cpfCnpj)
	if err != nil {
		return nil, err
	}
	return clienteToResponse(c), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	clientes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		data = append(data, *clienteToResponse(&clientes[i]))
	}
	return &dto.ClienteListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *clienteService) Desativar(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *clienteService) Reativar(ctx context.Context, id uint) error {
	return s.repo.Reativar(ctx, id)
}

func (s *clienteService) HistoricoCompras(ctx context.Context, id uint) ([]dto.CompraHistoricoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	vendas, err := s.repo.HistoricoCompras(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CompraHistoricoResponse, 0, len(vendas))
	for _, v := range vendas {
		resp = append(resp, dto.CompraHistoricoResponse{
			VendaID:        v.ID,
			Data:           v.Data.Format(time.RFC3339),
			Total:          v.Total,
			FormaPagamento: v.FormaPagamento,
			Cancelada:      v.Cancelada,
		})
	}
	return resp, nil
}

func (s *clienteService) TotalGasto(ctx context.Context, id uint) (*dto.TotalGastoResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	total, err := s.repo.TotalGasto(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TotalGastoResponse{ClienteID: id, TotalGasto: total}, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:           c.ID,
		Nome:         c.Nome,
		CpfCnpj:      c.CpfCnpj,
		Telefone:     c.Telefone,
		Email:        c.Email,
		Endereco:     c.Endereco,
		Cidade:       c.Cidade,
		Estado:       c.Estado,
		Cep:          c.Cep,
		Observacoes:  c.Observacoes,
		Ativo:        c.Ativo,
		DataCadastro: c.DataCadastro.Format(time.RFC3339),
	}
}
