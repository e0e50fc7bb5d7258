package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/infrastructure/auth"
	"github.com/warungin/backend/internal/infrastructure/logger"
	"github.com/warungin/backend/internal/interfaces/http/handler"
	"github.com/warungin/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every handler the router mounts
type Handlers struct {
	Health        *handler.HealthHandler
	Stock         *handler.StockHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Order         *handler.OrderHandler
	Finance       *handler.FinanceHandler
}

// Config holds router construction dependencies
type Config struct {
	Logger         *zap.Logger
	JWTService     *auth.JWTService
	Handlers       Handlers
	TracingEnabled bool
	ServiceName    string
	CORS           *middleware.CORSConfig
}

// New builds the gin engine with the full API surface under /api/v1.
// Health probes stay outside the versioned, authenticated group.
func New(cfg Config) *gin.Engine {
	if err := RegisterValidations(); err != nil {
		cfg.Logger.Warn("failed to register custom validations", zap.Error(err))
	}

	engine := gin.New()

	engine.Use(middleware.RequestID())
	if cfg.TracingEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	if cfg.CORS != nil {
		engine.Use(middleware.CORSWithConfig(*cfg.CORS))
	} else {
		engine.Use(middleware.CORS())
	}

	engine.GET("/health", cfg.Handlers.Health.Health)
	engine.GET("/ready", cfg.Handlers.Health.Ready)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuth(cfg.JWTService))

	registerStockRoutes(api, cfg.Handlers.Stock)
	registerDistributionRoutes(api, cfg.Handlers.PurchaseOrder, cfg.Handlers.Order)
	registerFinanceRoutes(api, cfg.Handlers.Finance)

	return engine
}

func registerStockRoutes(api *gin.RouterGroup, h *handler.StockHandler) {
	viewers := middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse, shared.RoleCourier)
	keepers := middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse)

	stocks := api.Group("/stocks")
	stocks.GET("", viewers, h.List)
	stocks.GET("/movements/history", viewers, h.History)
	stocks.GET("/alerts/low-stock", keepers, h.LowStockAlerts)
	stocks.GET("/valuation/total", keepers, h.Valuation)
	stocks.POST("/movement", keepers, h.RecordMovement)
	stocks.POST("/opname", keepers, h.PerformOpname)
	stocks.GET("/:warehouseId/:productId", viewers, h.FindOne)
}

func registerDistributionRoutes(api *gin.RouterGroup, po *handler.PurchaseOrderHandler, order *handler.OrderHandler) {
	keepers := middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse)

	purchaseOrders := api.Group("/purchase-orders")
	purchaseOrders.POST("", keepers, po.Create)
	purchaseOrders.GET("/:id", keepers, po.Get)
	purchaseOrders.POST("/:id/receive", keepers, po.Receive)

	orders := api.Group("/orders")
	orders.POST("", middleware.RequireRoles(shared.RoleAdmin, shared.RoleOutlet), order.Create)
	orders.GET("", middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse, shared.RoleOutlet), order.List)
	orders.GET("/:id", middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse, shared.RoleOutlet, shared.RoleCourier), order.Get)

	delivery := api.Group("/delivery-orders")
	delivery.PUT("/:id/assign-kurir", keepers, order.AssignKurir)
	delivery.PUT("/:id/start-delivery", middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse, shared.RoleCourier), order.StartDelivery)
	delivery.PUT("/:id/complete", middleware.RequireRoles(shared.RoleAdmin, shared.RoleOutlet, shared.RoleCourier), order.CompleteDelivery)
	delivery.PUT("/:id/cancel", keepers, order.Cancel)
}

func registerFinanceRoutes(api *gin.RouterGroup, h *handler.FinanceHandler) {
	collectors := middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse)
	viewers := middleware.RequireRoles(shared.RoleAdmin, shared.RoleWarehouse, shared.RoleOutlet)

	finance := api.Group("/finance")
	finance.GET("/receivables", viewers, h.ListReceivables)
	finance.GET("/receivables/aging", collectors, h.ReceivableAging)
	finance.GET("/receivables/warung/:id/status", viewers, h.WarungCreditStatus)
	finance.POST("/receivables/refresh-overdue", middleware.RequireRoles(shared.RoleAdmin), h.RefreshOverdue)
	finance.GET("/receivables/:id", viewers, h.GetReceivable)
	finance.POST("/payments", collectors, h.CreatePayment)
}
