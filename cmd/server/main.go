package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	distributionapp "github.com/warungin/backend/internal/application/distribution"
	financeapp "github.com/warungin/backend/internal/application/finance"
	inventoryapp "github.com/warungin/backend/internal/application/inventory"
	"github.com/warungin/backend/internal/infrastructure/auth"
	"github.com/warungin/backend/internal/infrastructure/config"
	"github.com/warungin/backend/internal/infrastructure/event"
	"github.com/warungin/backend/internal/infrastructure/logger"
	"github.com/warungin/backend/internal/infrastructure/persistence"
	"github.com/warungin/backend/internal/infrastructure/scheduler"
	"github.com/warungin/backend/internal/infrastructure/telemetry"
	"github.com/warungin/backend/internal/interfaces/http/handler"
	"github.com/warungin/backend/internal/interfaces/http/middleware"
	"github.com/warungin/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting warungin backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	if cfg.Telemetry.Enabled {
		dbTracing := telemetry.DefaultDBTracingConfig()
		dbTracing.Enabled = true
		dbTracing.DBName = cfg.Database.DBName
		if err := telemetry.NewDBTracingPlugin(dbTracing, log).Register(db.DB); err != nil {
			log.Fatal("failed to register database tracing", zap.Error(err))
		}
	}

	// repositories
	stockRepo := persistence.NewGormStockRepository(db.DB)
	movementRepo := persistence.NewGormStockMovementRepository(db.DB)
	opnameRepo := persistence.NewGormStockOpnameRepository(db.DB)
	poRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	warungRepo := persistence.NewGormWarungRepository(db.DB)
	receivableRepo := persistence.NewGormReceivableRepository(db.DB)

	// transaction scopes
	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	distributionScope := persistence.NewGormDistributionTransactionScope(db.DB)
	financeScope := persistence.NewGormFinanceTransactionScope(db.DB)

	// application services
	stockService := inventoryapp.NewStockLedgerService(inventoryScope, stockRepo, movementRepo, opnameRepo)
	poService := distributionapp.NewPurchaseOrderService(distributionScope, poRepo)
	orderService := distributionapp.NewOrderService(distributionScope, orderRepo)
	creditService := financeapp.NewCreditService(financeScope, receivableRepo, warungRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	// event bus: opens receivables on delivery and broadcasts to realtime
	// consumers, both after commit
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(financeapp.NewOrderInvoicedHandler(financeScope, log))

	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("error closing redis client", zap.Error(err))
			}
		}()
		eventBus.Subscribe(event.NewRedisBroadcaster(redisClient, log))
		log.Info("redis broadcaster attached", zap.String("addr", cfg.Redis.Addr()))
	}

	stockService.SetEventPublisher(eventBus)
	poService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)

	if cfg.Sweep.Enabled {
		sweepScheduler := scheduler.NewSweepScheduler(creditService, cfg.Sweep.Interval, log)
		if err := sweepScheduler.Start(ctx); err != nil {
			log.Fatal("failed to start overdue sweep scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := sweepScheduler.Stop(stopCtx); err != nil {
				log.Error("error stopping sweep scheduler", zap.Error(err))
			}
		}()
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}

	engine := router.New(router.Config{
		Logger:     log,
		JWTService: jwtService,
		Handlers: router.Handlers{
			Health:        handler.NewHealthHandler(db),
			Stock:         handler.NewStockHandler(stockService),
			PurchaseOrder: handler.NewPurchaseOrderHandler(poService),
			Order:         handler.NewOrderHandler(orderService),
			Finance:       handler.NewFinanceHandler(creditService),
		},
		TracingEnabled: cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		CORS:           &corsConfig,
	})
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shut down", zap.Error(err))
	}

	log.Info("server exited")
}
