package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"checkout_service/internal/adapter/http/handlers"
	"checkout_service/internal/adapter/http/routes"
	"checkout_service/internal/adapter/persistence/repository"
	"checkout_service/internal/config"
	"checkout_service/internal/infrastructure/database"
	"checkout_service/internal/infrastructure/logging"
	"checkout_service/internal/infrastructure/payments"
	"checkout_service/internal/usecase"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title           Checkout Service API
// @version         1.0
// @description     Storefront checkout (card and PIX settlement, orders, payment settings, products) backed by DynamoDB and Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, err := logging.New(cfg.Server.LogLevel, cfg.Server.GinMode)
	if err != nil {
		log.Fatalf("logger initialization error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("application terminated with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.NewDynamoDBClient(ctx, cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("dynamodb client: %w", err)
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.Dynamo.OrdersTable)
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Dynamo.ProductsTable)
	settingsRepo := repository.NewSettingsDynamoRepository(ddb, cfg.Dynamo.SettingsTable)

	gateway := payments.NewMercadoPagoGateway(cfg.Gateway.MockEnabled(), logger)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(
		settingsUseCase,
		productUseCase,
		orderUseCase,
		usecase.NewCardSettlementUseCase(gateway, cfg.Gateway.ProviderTimeout, logger),
		usecase.NewPixSettlementUseCase(gateway, cfg.Gateway.ProviderTimeout, cfg.Gateway.PixExpiration, cfg.Gateway.ManualPixExpiration, logger),
		usecase.NewSubmissionGuard(),
		logger,
	)

	router := routes.NewRouter(routes.Handlers{
		Checkout: handlers.NewCheckoutHandler(checkoutUseCase, logger),
		Orders:   handlers.NewOrderHandler(orderUseCase, logger),
		Settings: handlers.NewSettingsHandler(settingsUseCase, logger),
		Products: handlers.NewProductHandler(productUseCase),
	}, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting checkout server", zap.String("addr", server.Addr), zap.Bool("gateway_mock", cfg.Gateway.MockEnabled()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
