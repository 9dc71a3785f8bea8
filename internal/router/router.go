package router

import (
	"strings"
	"time"

	"github.com/GodoyTECH/sistemapesqueiro/internal/config"
	"github.com/GodoyTECH/sistemapesqueiro/internal/handler"
	"github.com/GodoyTECH/sistemapesqueiro/internal/middleware"
	"github.com/GodoyTECH/sistemapesqueiro/internal/repository"
	"github.com/GodoyTECH/sistemapesqueiro/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers into the HTTP engine.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute))

	// ── Dependency wiring ────────────────────────────────────────────────────
	produtoRepo := repository.NewProdutoRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)
	comandaRepo := repository.NewComandaRepository(db)
	vendaRepo := repository.NewVendaRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	cacheTTL := time.Duration(cfg.CatalogCacheTTLSeconds) * time.Second
	produtoSvc := service.NewProdutoService(produtoRepo, rdb, cacheTTL)
	caixaSvc := service.NewCaixaService(caixaRepo)
	comandaSvc := service.NewComandaService(comandaRepo)
	vendaSvc := service.NewVendaService(vendaRepo, caixaRepo, comandaRepo, produtoRepo)
	reservaSvc := service.NewReservaService(reservaRepo)
	relatorioSvc := service.NewRelatorioService(relatorioRepo)

	produtoH := handler.NewProdutoHandler(produtoSvc)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	comandaH := handler.NewComandaHandler(comandaSvc)
	vendaH := handler.NewVendaHandler(vendaSvc)
	reservaH := handler.NewReservaHandler(reservaSvc)
	relatorioH := handler.NewRelatorioHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtoH.Criar)
			produtos.GET("", produtoH.Listar)
			produtos.GET("/:id", produtoH.Obter)
			produtos.PATCH("/:id", produtoH.Atualizar)
			produtos.DELETE("/:id", produtoH.Desativar)
			produtos.POST("/:id/reativar", produtoH.Reativar)
		}

		caixa := v1.Group("/caixa")
		{
			caixa.POST("/abrir", caixaH.Abrir)
			caixa.GET("/status", caixaH.Status)
			caixa.POST("/fechar", caixaH.Fechar)
			caixa.POST("/movimentos", caixaH.Movimento)
			caixa.GET("/movimentos", caixaH.Movimentos)
		}

		comandas := v1.Group("/comandas")
		{
			comandas.POST("", comandaH.Criar)
			comandas.GET("/:codigo", comandaH.Obter)
			comandas.POST("/:codigo/fechar", comandaH.Fechar)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", vendaH.Registrar)
			vendas.GET("", vendaH.Listar)
			vendas.GET("/:id", vendaH.Obter)
			vendas.GET("/:id/recibo", vendaH.Recibo)
		}

		tanques := v1.Group("/tanques")
		{
			tanques.POST("", reservaH.CriarTanque)
			tanques.GET("", reservaH.ListarTanques)
		}

		reservas := v1.Group("/reservas")
		{
			reservas.POST("", reservaH.CriarReserva)
			reservas.GET("", reservaH.ListarReservas)
		}

		v1.GET("/relatorios/vendas", relatorioH.Vendas)
	}

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}

	if cfg.AllowedOrigins == "" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	origins := strings.Split(cfg.AllowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
