package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/FrankSCarvalho/sistema-pdv/internal/infra"
	"github.com/FrankSCarvalho/sistema-pdv/internal/model"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDeps reúne o banco e os repositórios usados pelos testes de serviço.
type testDeps struct {
	db          *gorm.DB
	vendaRepo   repository.VendaRepository
	produtoRepo repository.ProdutoRepository
}

// newTestDB abre um banco SQLite em memória com esquema migrado e admin
// padrão semeado. Cada teste usa um banco com nome próprio para isolar estado.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	nome := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := infra.NewDatabase(fmt.Sprintf("file:%s?mode=memory&cache=shared", nome))
	require.NoError(t, err)
	return db
}

func criarProdutoTeste(t *testing.T, db *gorm.DB, nome, preco string, estoque int) *model.Produto {
	t.Helper()
	p := &model.Produto{
		Nome:       nome,
		PrecoVenda: decimal.RequireFromString(preco),
		PrecoCusto: decimal.RequireFromString(preco).Div(decimal.NewFromInt(2)),
		Estoque:    estoque,
		Ativo:      true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func estoqueAtual(t *testing.T, db *gorm.DB, produtoID uint) int {
	t.Helper()
	var p model.Produto
	require.NoError(t, db.First(&p, produtoID).Error)
	return p.Estoque
}

func ctxTeste() context.Context { return context.Background() }
