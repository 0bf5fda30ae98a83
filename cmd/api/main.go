package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "quoteportal/docs"
	"quoteportal/internal/adapter/http/handlers"
	"quoteportal/internal/adapter/http/routes"
	"quoteportal/internal/adapter/messaging"
	"quoteportal/internal/adapter/persistence/repository"
	"quoteportal/internal/config"
	"quoteportal/internal/infrastructure/broker"
	"quoteportal/internal/infrastructure/database"
	"quoteportal/internal/infrastructure/payments"
	"quoteportal/internal/usecase"
	"quoteportal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Quote Portal API
// @version         1.0
// @description     Products, quote requests with their quote/tracking/payment status, and Mercado Pago payments backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if err := run(log); err != nil {
		log.Fatal("api stopped", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return err
	}

	productRepo := repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	var publisher interfaces.IStatusPublisher = messaging.NoopPublisher{}
	if cfg.RabbitMQURL != "" {
		mq, err := broker.DialRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return err
		}
		defer mq.Close()

		pub, err := messaging.NewStatusPublisher(mq.Channel, cfg.EventsProducer)
		if err != nil {
			return err
		}
		publisher = pub
	} else {
		log.Info("RABBITMQ_URL not set; status events are not published")
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Warn("Mercado Pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	productUseCase := usecase.NewProductUseCase(productRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, productRepo, paymentRepo, publisher,
		usecase.WithStrictTracking(cfg.StrictTracking))
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, quoteUseCase, gateway, cfg.SandboxPayerEmail)

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(log, cfg.CORSAllowOrigins, routes.Handlers{
		Products: handlers.NewProductHandler(productUseCase),
		Quotes:   handlers.NewQuoteHandler(quoteUseCase),
		Payments: handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.Bool("strict_tracking", cfg.StrictTracking))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
