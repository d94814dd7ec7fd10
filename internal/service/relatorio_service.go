package service

import (
	"context"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"
)

type RelatorioService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	ResumoPeriodo(ctx context.Context, de, ate string) (*dto.ResumoPeriodoResponse, error)
	ProdutosMaisVendidos(ctx context.Context, limite int) ([]dto.ProdutoMaisVendidoResponse, error)
	TotaisPorFormaPagamento(ctx context.Context) ([]dto.FormaPagamentoTotalResponse, error)
}

type relatorioService struct {
	vendas repository.VendaRepository
}

func NewRelatorioService(vendas repository.VendaRepository) RelatorioService {
	return &relatorioService{vendas: vendas}
}

func (s *relatorioService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	hoje := time.Now().Format("2006-01-02")
	inicioMes := time.Now().Format("2006-01") + "-01"

	resumoHoje, err := s.vendas.ResumoPeriodo(ctx, hoje, hoje)
	if err != nil {
		return nil, err
	}
	resumoMes, err := s.vendas.ResumoPeriodo(ctx, inicioMes, hoje)
	if err != nil {
		return nil, err
	}
	top, err := s.vendas.ProdutosMaisVendidos(ctx, 5)
	if err != nil {
		return nil, err
	}
	formas, err := s.vendas.TotaisPorFormaPagamento(ctx)
	if err != nil {
		return nil, err
	}
	porDia, err := s.vendas.VendasPorDia(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats, err := s.vendas.EstatisticasGerais(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Hoje:            resumoHoje,
		Mes:             resumoMes,
		TopProdutos:     top,
		FormasPagamento: formas,
		UltimosDias:     porDia,
		Estatisticas:    stats,
	}, nil
}

func (s *relatorioService) ResumoPeriodo(ctx context.Context, de, ate string) (*dto.ResumoPeriodoResponse, error) {
	if de == "" || ate == "" {
		return nil, apperr.Validacao("periodo", "informe as datas inicial e final")
	}
	if err := validarData(de); err != nil {
		return nil, err
	}
	if err := validarData(ate); err != nil {
		return nil, err
	}
	if de > ate {
		return nil, apperr.Validacao("periodo", "data inicial posterior à data final")
	}

	resumo, err := s.vendas.ResumoPeriodo(ctx, de, ate)
	if err != nil {
		return nil, err
	}
	return &resumo, nil
}

func (s *relatorioService) ProdutosMaisVendidos(ctx context.Context, limite int) ([]dto.ProdutoMaisVendidoResponse, error) {
	if limite <= 0 || limite > 100 {
		limite = 10
	}
	return s.vendas.ProdutosMaisVendidos(ctx, limite)
}

func (s *relatorioService) TotaisPorFormaPagamento(ctx context.Context) ([]dto.FormaPagamentoTotalResponse, error) {
	return s.vendas.TotaisPorFormaPagamento(ctx)
}
