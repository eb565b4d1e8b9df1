package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/auth"
	appbilling "github.com/LieTttv/PDVomnierp-sub000/internal/application/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/receiving"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/usecase"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC    *usecase.StoreUseCase
	NoticeUC   *usecase.NoticeUseCase
	ProductUC  *usecase.ProductUseCase
	PartyUC    *usecase.PartyUseCase
	OrderUC    *usecase.OrderUseCase
	DraftUC    *appbilling.DraftUseCase
	TransmitUC *appbilling.TransmitUseCase
	InvoiceUC  *appbilling.InvoiceUseCase
	ReceiptUC  *receiving.RegisterReceiptUseCase
	StockQryUC *receiving.StockQueryUseCase
	AuthUC     *auth.AuthUseCase
	ModuleSvc  *usecase.ModuleService
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Consola HQ (solo usuarios master)
	hq := protected.Group("/hq", RequireMaster())
	storeHandler := NewStoreHandler(deps.StoreUC, deps.NoticeUC)
	hq.Post("/stores", storeHandler.Create)
	hq.Get("/stores", storeHandler.List)
	hq.Get("/stores/:id", storeHandler.GetByID)
	hq.Put("/stores/:id/status", storeHandler.SetStatus)
	hq.Post("/stores/:id/modules", storeHandler.ActivateModule)
	hq.Get("/stores/:id/modules", storeHandler.ListModules)
	hq.Post("/notices", storeHandler.PublishNotice)

	// Avisos (lectura para cualquier usuario autenticado)
	protected.Get("/notices", storeHandler.ListNotices)

	// Catálogo (módulo catalog)
	products := protected.Group("/products", RequireModule(entity.ModuleCatalog, deps.ModuleSvc))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequirePermission(entity.ModuleCatalog, entity.ActionCreate, deps.AuthUC), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequirePermission(entity.ModuleCatalog, entity.ActionEdit, deps.AuthUC), productHandler.Update)
	products.Delete("/:id", RequirePermission(entity.ModuleCatalog, entity.ActionDelete, deps.AuthUC), productHandler.Delete)

	// Entidades comerciales (módulo entities)
	parties := protected.Group("/parties", RequireModule(entity.ModuleEntities, deps.ModuleSvc))
	partyHandler := NewPartyHandler(deps.PartyUC)
	parties.Post("/", RequirePermission(entity.ModuleEntities, entity.ActionCreate, deps.AuthUC), partyHandler.Create)
	parties.Get("/", partyHandler.List)
	parties.Get("/:id", partyHandler.GetByID)
	parties.Put("/:id", RequirePermission(entity.ModuleEntities, entity.ActionEdit, deps.AuthUC), partyHandler.Update)

	// Órdenes de venta (módulo orders)
	orders := protected.Group("/orders", RequireModule(entity.ModuleOrders, deps.ModuleSvc))
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", RequirePermission(entity.ModuleOrders, entity.ActionCreate, deps.AuthUC), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)

	// Facturación (módulo billing)
	billing := protected.Group("/billing", RequireModule(entity.ModuleBilling, deps.ModuleSvc))
	billingHandler := NewBillingHandler(deps.DraftUC, deps.TransmitUC)
	drafts := billing.Group("/drafts", RequirePermission(entity.ModuleBilling, entity.ActionCreate, deps.AuthUC))
	drafts.Post("/", billingHandler.StartDraft)
	drafts.Get("/:id", billingHandler.GetDraft)
	drafts.Put("/:id/lines/quantity", billingHandler.UpdateQuantity)
	drafts.Delete("/:id/lines/:index", billingHandler.RemoveLine)
	drafts.Put("/:id/discount", billingHandler.SetDiscount)
	drafts.Put("/:id/freight-charge", billingHandler.SetFreightCharge)
	drafts.Put("/:id/payment", billingHandler.SetPayment)
	drafts.Put("/:id/freight", billingHandler.SetFreightInfo)
	drafts.Delete("/:id", billingHandler.Discard)
	drafts.Post("/:id/transmit", billingHandler.Transmit)

	// Facturas emitidas (módulo billing, solo lectura)
	invoices := protected.Group("/invoices", RequireModule(entity.ModuleBilling, deps.ModuleSvc))
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.ReprintPDF)
	invoices.Get("/:id/xml", invoiceHandler.ReprintXML)

	// Entradas de mercancía (módulo receiving)
	receiptsGroup := protected.Group("/receiving", RequireModule(entity.ModuleReceiving, deps.ModuleSvc))
	receiptHandler := NewReceiptHandler(deps.ReceiptUC, deps.StockQryUC)
	receiptsGroup.Post("/receipts", RequirePermission(entity.ModuleReceiving, entity.ActionCreate, deps.AuthUC), receiptHandler.Register)
	receiptsGroup.Get("/receipts", receiptHandler.List)
	receiptsGroup.Get("/receipts/:id", receiptHandler.GetByID)
	receiptsGroup.Get("/stock/:id", receiptHandler.StockLevel)
	receiptsGroup.Get("/kardex/:id", receiptHandler.Kardex)
}
