package router

import (
	"time"

	"github.com/FrankSCarvalho/sistema-pdv/internal/config"
	"github.com/FrankSCarvalho/sistema-pdv/internal/handler"
	"github.com/FrankSCarvalho/sistema-pdv/internal/infra"
	"github.com/FrankSCarvalho/sistema-pdv/internal/middleware"
	"github.com/FrankSCarvalho/sistema-pdv/internal/policy"
	"github.com/FrankSCarvalho/sistema-pdv/internal/repository"
	"github.com/FrankSCarvalho/sistema-pdv/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New monta o grafo de dependências e devolve o engine Gin configurado.
// Grafo: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB, atualizador *infra.Atualizador) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Cadeia global de middlewares (a ordem importa)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Repositórios ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	movimentacaoRepo := repository.NewMovimentacaoRepository(db)

	// ── Serviços ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	produtoSvc := service.NewProdutoService(produtoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	vendaSvc := service.NewVendaService(vendaRepo, produtoRepo, cfg.PDFStoragePath)
	estoqueSvc := service.NewEstoqueService(movimentacaoRepo, produtoRepo)
	relatorioSvc := service.NewRelatorioService(vendaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	vendasH := handler.NewVendasHandler(vendaSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Rotas ────────────────────────────────────────────────────────────────

	// Públicas
	r.GET("/health", handler.Health(db))
	r.GET("/versao", handler.Versao(cfg.AppVersion, atualizador))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protegidas
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/senha", authH.AlterarMinhaSenha)

		prods := v1.Group("/produtos")
		{
			prods.GET("", middleware.RequirePermissao(policy.OpProdutoLer), produtosH.Listar)
			prods.GET("/:id", middleware.RequirePermissao(policy.OpProdutoLer), produtosH.BuscarPorID)
			prods.GET("/codigo/:codigo", middleware.RequirePermissao(policy.OpProdutoLer), produtosH.BuscarPorCodigoBarras)
			prods.POST("", middleware.RequirePermissao(policy.OpProdutoEscrever), produtosH.Criar)
			prods.PUT("/:id", middleware.RequirePermissao(policy.OpProdutoEscrever), produtosH.Atualizar)
			prods.DELETE("/:id", middleware.RequirePermissao(policy.OpProdutoEscrever), produtosH.Desativar)
			prods.PATCH("/:id/reativar", middleware.RequirePermissao(policy.OpProdutoEscrever), produtosH.Reativar)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", middleware.RequirePermissao(policy.OpClienteLer), clientesH.Listar)
			clientes.GET("/:id", middleware.RequirePermissao(policy.OpClienteLer), clientesH.BuscarPorID)
			clientes.GET("/:id/compras", middleware.RequirePermissao(policy.OpClienteLer), clientesH.HistoricoCompras)
			clientes.GET("/:id/total-gasto", middleware.RequirePermissao(policy.OpClienteLer), clientesH.TotalGasto)
			clientes.POST("", middleware.RequirePermissao(policy.OpClienteEscrever), clientesH.Criar)
			clientes.PUT("/:id", middleware.RequirePermissao(policy.OpClienteEscrever), clientesH.Atualizar)
			clientes.DELETE("/:id", middleware.RequirePermissao(policy.OpClienteEscrever), clientesH.Desativar)
			clientes.PATCH("/:id/reativar", middleware.RequirePermissao(policy.OpClienteEscrever), clientesH.Reativar)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", middleware.RequirePermissao(policy.OpVendaRegistrar), vendasH.Registrar)
			vendas.GET("", middleware.RequirePermissao(policy.OpVendaLer), vendasH.Listar)
			vendas.GET("/:id", middleware.RequirePermissao(policy.OpVendaLer), vendasH.Buscar)
			vendas.GET("/:id/recibo", middleware.RequirePermissao(policy.OpVendaLer), vendasH.Recibo)
			vendas.DELETE("/:id", middleware.RequirePermissao(policy.OpVendaCancelar), vendasH.Cancelar)
		}

		estoque := v1.Group("/estoque")
		{
			estoque.POST("/:id/entrada", middleware.RequirePermissao(policy.OpEstoqueMovimentar), estoqueH.Entrada)
			estoque.POST("/:id/saida", middleware.RequirePermissao(policy.OpEstoqueMovimentar), estoqueH.Saida)
			estoque.GET("/movimentacoes", middleware.RequirePermissao(policy.OpEstoqueLer), estoqueH.ListarMovimentacoes)
		}

		relatorios := v1.Group("/relatorios", middleware.RequirePermissao(policy.OpRelatorioLer))
		{
			relatorios.GET("/dashboard", relatoriosH.Dashboard)
			relatorios.GET("/periodo", relatoriosH.ResumoPeriodo)
			relatorios.GET("/produtos-mais-vendidos", relatoriosH.ProdutosMaisVendidos)
			relatorios.GET("/formas-pagamento", relatoriosH.FormasPagamento)
		}

		usuarios := v1.Group("/usuarios", middleware.RequirePermissao(policy.OpUsuarioGerenciar))
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Desativar)
			usuarios.PATCH("/:id/reativar", usuariosH.Reativar)
		}
	}

	return r
}
