package service

import (
	"context"
	"strings"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	BuscarPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	BuscarPorCodigoBarras(ctx context.Context, codigo string) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	Desativar(ctx context.Context, id uint) error
	Reativar(ctx context.Context, id uint) error
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return nil, apperr.Validacao("nome", "o nome do produto é obrigatório")
	}
	if req.PrecoVenda.IsNegative() || req.PrecoCusto.IsNegative() {
		return nil, apperr.Validacao("preco", "preços não podem ser negativos")
	}
	if req.Estoque < 0 {
		return nil, apperr.Validacao("estoque", "estoque inicial não pode ser negativo")
	}

	p := &model.Produto{
		CodigoBarras: normalizarChave(req.CodigoBarras),
		Nome:         strings.TrimSpace(req.Nome),
		Categoria:    req.Categoria,
		Tamanho:      req.Tamanho,
		Cor:          req.Cor,
		PrecoCusto:   req.PrecoCusto,
		PrecoVenda:   req.PrecoVenda,
		Estoque:      req.Estoque,
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	if strings.TrimSpace(req.Nome) == "" {
		return nil, apperr.Validacao("nome", "o nome do produto é obrigatório")
	}
	if req.PrecoVenda.IsNegative() || req.PrecoCusto.IsNegative() {
		return nil, apperr.Validacao("preco", "preços não podem ser negativos")
	}

	p := &model.Produto{
		ID:           id,
		CodigoBarras: normalizarChave(req.CodigoBarras),
		Nome:         strings.TrimSpace(req.Nome),
		Categoria:    req.Categoria,
		Tamanho:      req.Tamanho,
		Cor:          req.Cor,
		PrecoCusto:   req.PrecoCusto,
		PrecoVenda:   req.PrecoVenda,
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.BuscarPorID(ctx, id)
}

func (s *produtoService) BuscarPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) BuscarPorCodigoBarras(ctx context.Context, codigo string) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByCodigoBarras(ctx, codigo)
	if err != nil {
		return nil, err
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		data = append(data, *produtoToResponse(&produtos[i]))
	}
	return &dto.ProdutoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *produtoService) Desativar(ctx context.Context, id uint) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *produtoService) Reativar(ctx context.Context, id uint) error {
	return s.repo.Reativar(ctx, id)
}

// normalizarChave trata string vazia ou só espaços como ausência de chave —
// o índice único ignora NULL, então produtos sem código de barras coexistem.
func normalizarChave(valor *string) *string {
	if valor == nil {
		return nil
	}
	v := strings.TrimSpace(*valor)
	if v == "" {
		return nil
	}
	return &v
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:           p.ID,
		CodigoBarras: p.CodigoBarras,
		Nome:         p.Nome,
		Rotulo:       p.Rotulo(),
		Categoria:    p.Categoria,
		Tamanho:      p.Tamanho,
		Cor:          p.Cor,
		PrecoCusto:   p.PrecoCusto,
		PrecoVenda:   p.PrecoVenda,
		Estoque:      p.Estoque,
		Ativo:        p.Ativo,
	}
}
