package router

import (
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/config"
	"github.com/InhotaEverton/Aromas-Caf/internal/handler"
	"github.com/InhotaEverton/Aromas-Caf/internal/middleware"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"
	"github.com/InhotaEverton/Aromas-Caf/internal/service"
	"github.com/InhotaEverton/Aromas-Caf/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	priceHistoryRepo := repository.NewPriceHistoryRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo, priceHistoryRepo, rdb)
	customerSvc := service.NewCustomerService(customerRepo)
	registerSvc := service.NewRegisterService(sessionRepo)
	saleSvc := service.NewSaleService(saleRepo, productRepo, registerSvc, dispatcher, cfg)
	reportSvc := service.NewReportService(sessionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	userH := handler.NewUserHandler(authSvc)
	productH := handler.NewProductHandler(productSvc)
	customerH := handler.NewCustomerHandler(customerSvc)
	registerH := handler.NewRegisterHandler(registerSvc)
	saleH := handler.NewSaleHandler(saleSvc)
	reportH := handler.NewReportHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — capability checks declared per group
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog reads are open to any authenticated role
		v1.GET("/products", productH.Catalog)
		v1.GET("/products/all", productH.ListAll)
		v1.GET("/products/categories", productH.Categories)
		v1.GET("/products/:id", productH.Get)
		v1.GET("/products/:id/price-history", productH.PriceHistory)

		products := v1.Group("/products", middleware.RequireCapability(middleware.CapCatalogWrite))
		{
			products.POST("", productH.Create)
			products.PUT("/:id", productH.Update)
			products.DELETE("/:id", productH.Deactivate)
			products.POST("/:id/reactivate", productH.Reactivate)
		}

		customers := v1.Group("/customers", middleware.RequireCapability(middleware.CapCustomers))
		{
			customers.GET("", customerH.List)
			customers.GET("/:id", customerH.Get)
			customers.POST("", customerH.Create)
			customers.PUT("/:id", customerH.Update)
		}

		register := v1.Group("/register", middleware.RequireCapability(middleware.CapRegister))
		{
			register.POST("/open", registerH.Open)
			register.POST("/close", registerH.Close)
			register.GET("/current", registerH.Current)
			register.GET("/:id/summary", registerH.Summary)
		}
		v1.GET("/register/history", middleware.RequireCapability(middleware.CapReports), registerH.History)

		sales := v1.Group("/sales", middleware.RequireCapability(middleware.CapSell))
		{
			sales.POST("/checkout", saleH.Checkout)
			sales.GET("", saleH.List)
			sales.GET("/:id", saleH.Get)
			sales.GET("/:id/receipt", saleH.Receipt)
		}

		v1.GET("/reports", middleware.RequireCapability(middleware.CapReports), reportH.Get)

		users := v1.Group("/users", middleware.RequireCapability(middleware.CapUsers))
		{
			users.POST("", userH.Create)
			users.GET("", userH.List)
			users.PUT("/:id", userH.Update)
			users.DELETE("/:id", userH.Deactivate)
			users.POST("/:id/reactivate", userH.Reactivate)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
