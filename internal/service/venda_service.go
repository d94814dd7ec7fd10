package service

import (
	"context"
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/apperr"
	"github.com/FrankSCarvalho/sistema-pdv/internal/dto"
	"github.com/FrankSCarvalho/sistema-pdv/internal/infra"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	Registrar(ctx context.Context, usuarioID *uint, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error)
	Cancelar(ctx context.Context, id uint) error
	Buscar(ctx context.Context, id uint) (*dto.VendaResponse, error)
	Listar(ctx context.Context, filter dto.VendaFilter) ([]dto.VendaResponse, error)
	GerarRecibo(ctx context.Context, id uint) (string, error)
}

type vendaService struct {
	repo        repository.VendaRepository
	produtoRepo repository.ProdutoRepository
	pdfPath     string
}

func NewVendaService(repo repository.VendaRepository, produtoRepo repository.ProdutoRepository, pdfPath string) VendaService {
	return &vendaService{repo: repo, produtoRepo: produtoRepo, pdfPath: pdfPath}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Registrar ────────────────────────────────────────────────────────────────
// Transação única: inserir cabeçalho + itens, validar e debitar o estoque de
// cada item com releitura dentro da própria transação. Qualquer falha desfaz
// a venda inteira — nenhum débito parcial de estoque sobrevive.

func (s *vendaService) Registrar(ctx context.Context, usuarioID *uint, req dto.RegistrarVendaRequest) (*dto.VendaResponse, error) {
	if len(req.Itens) == 0 {
		return nil, apperr.ErrVendaSemItens
	}
	if !model.FormaPagamentoValida(req.FormaPagamento) {
		return nil, apperr.Validacao("forma_pagamento", "forma de pagamento desconhecida")
	}
	if req.Desconto.IsNegative() {
		return nil, apperr.Validacao("desconto", "o desconto não pode ser negativo")
	}
	for _, item := range req.Itens {
		if item.Quantidade <= 0 {
			return nil, apperr.ErrQuantidadeInvalida
		}
	}

	var venda model.Venda
	var rotulos []string

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		type itemResolvido struct {
			produto  *model.Produto
			qtd      int
			preco    decimal.Decimal
			subtotal decimal.Decimal
		}

		// Releitura do estoque DENTRO da transação: o preço congelado e a
		// checagem de disponibilidade valem para o instante do registro.
		// A disponibilidade é conferida contra a soma acumulada por produto,
		// não por linha — duas linhas do mesmo produto dividem o mesmo saldo.
		resolvidos := make([]itemResolvido, 0, len(req.Itens))
		acumulado := make(map[uint]int, len(req.Itens))
		subtotal := decimal.Zero
		for _, item := range req.Itens {
			p, err := s.produtoRepo.FindByIDTx(tx, item.ProdutoID)
			if err != nil {
				return err
			}
			if !p.Ativo {
				return apperr.Validacao("produto", "produto inativo não pode ser vendido")
			}
			acumulado[p.ID] += item.Quantidade
			if p.Estoque < acumulado[p.ID] {
				return apperr.EstoqueInsuficiente(p.ID, p.Estoque, acumulado[p.ID])
			}
			linha := p.PrecoVenda.Mul(decimal.NewFromInt(int64(item.Quantidade)))
			subtotal = subtotal.Add(linha)
			resolvidos = append(resolvidos, itemResolvido{
				produto:  p,
				qtd:      item.Quantidade,
				preco:    p.PrecoVenda,
				subtotal: linha,
			})
		}

		if req.Desconto.GreaterThan(subtotal) {
			return apperr.Validacao("desconto", "o desconto não pode exceder o subtotal da venda")
		}

		venda = model.Venda{
			Data:           time.Now(),
			Total:          subtotal.Sub(req.Desconto),
			Desconto:       req.Desconto,
			FormaPagamento: req.FormaPagamento,
			Observacao:     req.Observacao,
			ClienteID:      req.ClienteID,
			UsuarioID:      usuarioID,
		}
		rotulos = rotulos[:0]
		for _, r := range resolvidos {
			venda.Itens = append(venda.Itens, model.ItemVenda{
				ProdutoID:     r.produto.ID,
				Quantidade:    r.qtd,
				PrecoUnitario: r.preco,
				Subtotal:      r.subtotal,
			})
			rotulos = append(rotulos, r.produto.Rotulo())
		}

		if err := s.repo.CreateTx(tx, &venda); err != nil {
			return err
		}

		for _, r := range resolvidos {
			if err := s.produtoRepo.UpdateEstoqueTx(tx, r.produto.ID, -r.qtd); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := vendaToResponse(&venda)
	// Os produtos já foram resolvidos dentro da transação; anota os rótulos
	// sem nova consulta.
	for i := range resp.Itens {
		resp.Itens[i].Produto = rotulos[i]
	}
	return resp, nil
}

// ── Cancelar ─────────────────────────────────────────────────────────────────
// Compensação: devolve a quantidade de cada item ao estoque e marca a venda
// como cancelada, tudo em uma transação. Cancelar duas vezes é erro.

func (s *vendaService) Cancelar(ctx context.Context, id uint) error {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if venda.Cancelada {
		return apperr.ErrVendaJaCancelada
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Releitura dentro da transação evita janela entre o guard acima e a
		// devolução do estoque.
		atual, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return err
		}
		if atual.Cancelada {
			return apperr.ErrVendaJaCancelada
		}

		for _, item := range atual.Itens {
			if err := s.produtoRepo.UpdateEstoqueTx(tx, item.ProdutoID, item.Quantidade); err != nil {
				return err
			}
		}
		return s.repo.UpdateCanceladaTx(tx, id)
	})
}

func (s *vendaService) Buscar(ctx context.Context, id uint) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := vendaToResponse(venda)
	for i := range venda.Itens {
		resp.Itens[i].Produto = rotuloDoItem(&venda.Itens[i])
	}
	return resp, nil
}

func (s *vendaService) Listar(ctx context.Context, filter dto.VendaFilter) ([]dto.VendaResponse, error) {
	if err := validarData(filter.De); err != nil {
		return nil, err
	}
	if err := validarData(filter.Ate); err != nil {
		return nil, err
	}

	vendas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Somente cabeçalhos — itens ficam de fora da listagem.
	resp := make([]dto.VendaResponse, 0, len(vendas))
	for i := range vendas {
		v := vendaToResponse(&vendas[i])
		v.Itens = nil
		resp = append(resp, *v)
	}
	return resp, nil
}

func (s *vendaService) GerarRecibo(ctx context.Context, id uint) (string, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return infra.GerarReciboPDF(venda, s.pdfPath)
}

func validarData(valor string) error {
	if valor == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", valor); err != nil {
		return apperr.Validacao("data", "use o formato AAAA-MM-DD")
	}
	return nil
}

func rotuloDoItem(item *model.ItemVenda) string {
	if item.Produto != nil {
		return item.Produto.Rotulo()
	}
	return ""
}

func vendaToResponse(v *model.Venda) *dto.VendaResponse {
	itens := make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		itens = append(itens, dto.ItemVendaResponse{
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}
	return &dto.VendaResponse{
		ID:             v.ID,
		Data:           v.Data.Format(time.RFC3339),
		Itens:          itens,
		Subtotal:       v.Total.Add(v.Desconto),
		Desconto:       v.Desconto,
		Total:          v.Total,
		FormaPagamento: v.FormaPagamento,
		Observacao:     v.Observacao,
		ClienteID:      v.ClienteID,
		UsuarioID:      v.UsuarioID,
		Cancelada:      v.Cancelada,
	}
}
