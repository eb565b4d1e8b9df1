package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/auth"
	appbilling "github.com/LieTttv/PDVomnierp-sub000/internal/application/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/receiving"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/usecase"
	"github.com/LieTttv/PDVomnierp-sub000/internal/infrastructure/fiscal"
	infrapdf "github.com/LieTttv/PDVomnierp-sub000/internal/infrastructure/pdf"
	"github.com/LieTttv/PDVomnierp-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/LieTttv/PDVomnierp-sub000/internal/interfaces/http"
	"github.com/LieTttv/PDVomnierp-sub000/pkg/config"
	"github.com/LieTttv/PDVomnierp-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	partyRepo := postgres.NewPartyRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	noticeRepo := postgres.NewNoticeRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	storeUC := usecase.NewStoreUseCase(storeRepo)
	noticeUC := usecase.NewNoticeUseCase(noticeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	partyUC := usecase.NewPartyUseCase(partyRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, partyRepo, productRepo)
	moduleSvc := usecase.NewModuleService(storeRepo)

	sessions := appbilling.NewDraftSessions()
	draftUC := appbilling.NewDraftUseCase(orderRepo, productRepo, sessions)
	transmitUC := appbilling.NewTransmitUseCase(
		sessions, txRunner,
		time.Duration(cfg.Billing.TransmissionDelayMS)*time.Millisecond,
		cfg.Billing.Series,
	)

	// Reimpresión de facturas: PDF (Maroto) y XML (etree)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlRenderer := fiscal.NewXMLRenderer()
	invoiceUC := appbilling.NewInvoiceUseCase(invoiceRepo, storeRepo, partyRepo, pdfGenerator, xmlRenderer)

	receiptUC := receiving.NewRegisterReceiptUseCase(txRunner, partyRepo, productRepo)
	stockQryUC := receiving.NewStockQueryUseCase(receiptRepo, stockRepo, movementRepo, productRepo)

	authUC := auth.NewAuthUseCase(userRepo, storeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StoreUC:    storeUC,
		NoticeUC:   noticeUC,
		ProductUC:  productUC,
		PartyUC:    partyUC,
		OrderUC:    orderUC,
		DraftUC:    draftUC,
		TransmitUC: transmitUC,
		InvoiceUC:  invoiceUC,
		ReceiptUC:  receiptUC,
		StockQryUC: stockQryUC,
		AuthUC:     authUC,
		ModuleSvc:  moduleSvc,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
