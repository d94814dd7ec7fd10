package service

import (
	"context"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"gorm.io/gorm"
)

// EstoqueService mantém o livro de movimentações: cada ENTRADA/SAIDA grava
// uma linha imutável e ajusta o contador do produto na mesma transação.
type EstoqueService interface {
	RegistrarEntrada(ctx context.Context, produtoID uint, quantidade int, observacao string, usuarioID *uint) error
	RegistrarSaida(ctx context.Context, produtoID uint, quantidade int, observacao string, usuarioID *uint) error
	ListarMovimentacoes(ctx context.Context, produtoID *uint) ([]dto.MovimentacaoResponse, error)
}

type estoqueService struct {
	repo        repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
}

func NewEstoqueService(repo repository.MovimentacaoRepository, produtoRepo repository.ProdutoRepository) EstoqueService {
	return &estoqueService{repo: repo, produtoRepo: produtoRepo}
}

func (s *estoqueService) RegistrarEntrada(ctx context.Context, produtoID uint, quantidade int, observacao string, usuarioID *uint) error {
	return s.registrar(ctx, produtoID, model.MovimentacaoEntrada, quantidade, observacao, usuarioID)
}

func (s *estoqueService) RegistrarSaida(ctx context.Context, produtoID uint, quantidade int, observacao string, usuarioID *uint) error {
	return s.registrar(ctx, produtoID, model.MovimentacaoSaida, quantidade, observacao, usuarioID)
}

func (s *estoqueService) registrar(ctx context.Context, produtoID uint, tipo string, quantidade int, observacao string, usuarioID *uint) error {
	if quantidade <= 0 {
		return apperr.ErrQuantidadeInvalida
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		produto, err := s.produtoRepo.FindByIDTx(tx, produtoID)
		if err != nil {
			return err
		}

		delta := quantidade
		if tipo == model.MovimentacaoSaida {
			if produto.Estoque < quantidade {
				return apperr.EstoqueInsuficiente(produto.ID, produto.Estoque, quantidade)
			}
			delta = -quantidade
		}

		mov := &model.MovimentacaoEstoque{
			ProdutoID:  produtoID,
			Tipo:       tipo,
			Quantidade: quantidade,
			Data:       time.Now(),
			Observacao: observacao,
			UsuarioID:  usuarioID,
		}
		if err := s.repo.CreateTx(tx, mov); err != nil {
			return err
		}
		return s.produtoRepo.UpdateEstoqueTx(tx, produtoID, delta)
	})
}

func (s *estoqueService) ListarMovimentacoes(ctx context.Context, produtoID *uint) ([]dto.MovimentacaoResponse, error) {
	movs, err := s.repo.Listar(ctx, produtoID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		rotulo := ""
		if m.Produto != nil {
			rotulo = m.Produto.Rotulo()
		}
		resp = append(resp, dto.MovimentacaoResponse{
			ID:         m.ID,
			ProdutoID:  m.ProdutoID,
			Produto:    rotulo,
			Tipo:       m.Tipo,
			Quantidade: m.Quantidade,
			Data:       m.Data.Format(time.RFC3339),
			Observacao: m.Observacao,
			UsuarioID:  m.UsuarioID,
		})
	}
	return resp, nil
}
