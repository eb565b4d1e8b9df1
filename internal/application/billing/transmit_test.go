package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/LieTttv/PDVomnierp-sub000/internal/application/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	domainbilling "github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/repository"
	"github.com/LieTttv/PDVomnierp-sub000/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: repos en memoria + casos de uso con demora cero
// ──────────────────────────────────────────────────────────────────────────────

type billingFixture struct {
	orders   *memory.OrderRepo
	invoices *memory.InvoiceRepo
	products *memory.ProductRepo
	sessions *appbilling.DraftSessions
	draftUC  *appbilling.DraftUseCase
	transmit *appbilling.TransmitUseCase
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()
	f := &billingFixture{
		orders:   memory.NewOrderRepository(),
		invoices: memory.NewInvoiceRepository(),
		products: memory.NewProductRepository(),
		sessions: appbilling.NewDraftSessions(),
	}
	tx := &memory.TxRunner{Orders: f.orders, Invoices: f.invoices, Products: f.products}
	f.draftUC = appbilling.NewDraftUseCase(f.orders, f.products, f.sessions)
	f.transmit = appbilling.NewTransmitUseCase(f.sessions, tx, 0, "1")
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedOrder crea producto + orden pendiente de facturar y devuelve la orden.
func (f *billingFixture) seedOrder(t *testing.T) *entity.Order {
	t.Helper()
	require.NoError(t, f.products.Create(&entity.Product{
		ID: "prod-1", StoreID: "store-1", SKU: "CAFE-500", Name: "Café 500g",
		Price: dec("29.90"), NetWeight: dec("0.5"), GrossWeight: dec("0.55"),
	}))
	order := &entity.Order{
		ID:      "order-1",
		StoreID: "store-1",
		PartyID: "party-1",
		Number:  "OV-1001",
		Status:  entity.OrderStatusPendingBilling,
		Items: []entity.OrderItem{
			{ID: "item-1", OrderID: "order-1", ProductID: "prod-1", ProductName: "Café 500g",
				Quantity: dec("10"), UnitPrice: dec("29.90"), TotalPrice: dec("299.00")},
		},
	}
	require.NoError(t, f.orders.Create(order))
	return order
}

func (f *billingFixture) startDraft(t *testing.T) *dto.DraftResponse {
	t.Helper()
	f.seedOrder(t)
	draft, err := f.draftUC.StartDraft(context.Background(), "store-1", "order-1")
	require.NoError(t, err)
	return draft
}

// ──────────────────────────────────────────────────────────────────────────────
// Transmisión exitosa
// ──────────────────────────────────────────────────────────────────────────────

func TestTransmit_GeneraFacturaYMarcaOrden(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	inv, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)

	// totales: 10 × 29.90 = 299.00, impuesto 18% = 53.82
	assert.True(t, inv.Subtotal.Equal(dec("299.00")))
	assert.True(t, inv.TotalAmount.Equal(dec("299.00")))
	assert.True(t, inv.TaxAmount.Equal(dec("53.82")))
	assert.Equal(t, int64(1), inv.Number)
	assert.Equal(t, "1", inv.Series)
	assert.Equal(t, entity.InvoiceStatusIssued, inv.Status)
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].TotalPrice.Equal(dec("299.00")))

	// la factura quedó persistida...
	persisted, err := f.invoices.GetByID(inv.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted)

	// ...y la orden quedó facturada
	order, err := f.orders.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusBilled, order.Status)

	// el borrador terminó en success
	state, err := f.draftUC.GetDraft("store-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domainbilling.StateSuccess), state.State)
}

func TestTransmit_ContadoVenceHoy(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	inv, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.IssueDate, inv.DueDate, "contado: vencimiento el mismo día de emisión")
}

// El vencimiento de la factura es la fecha de la última cuota del plazo.
func TestTransmit_VencimientoEsUltimaCuota(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	_, err := f.draftUC.SetPayment("store-1", draft.ID, dto.SetPaymentRequest{Term: domainbilling.TermFourWeekly})
	require.NoError(t, err)

	inv, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)

	assert.NotEqual(t, inv.IssueDate, inv.DueDate)
	assert.Equal(t, domainbilling.TermFourWeekly, inv.PaymentTerm)
	assert.Equal(t, domainbilling.MethodBankSlip, inv.PaymentMethod, "plazo con días fuerza boleto")
}

func TestTransmit_DescuentoYFleteEnTotales(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	_, err := f.draftUC.SetDiscount("store-1", draft.ID, dto.SetDiscountRequest{Discount: dec("19.00")})
	require.NoError(t, err)
	_, err = f.draftUC.SetFreightCharge("store-1", draft.ID, dto.SetFreightChargeRequest{FreightCharge: dec("20.00")})
	require.NoError(t, err)

	inv, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)

	// 299 − 19 + 20 = 300
	assert.True(t, inv.TotalAmount.Equal(dec("300.00")), "total = %s", inv.TotalAmount)
	assert.True(t, inv.TaxAmount.Equal(dec("54.00")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondición: al menos una línea
// ──────────────────────────────────────────────────────────────────────────────

func TestTransmit_BorradorVacioSeRechazaSinEfectos(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	// quitar la única línea deja el borrador vacío pero abierto
	_, err := f.draftUC.RemoveLine("store-1", draft.ID, 0)
	require.NoError(t, err)

	_, err = f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	assert.ErrorIs(t, err, domain.ErrEmptyDraft)

	// nada cambió: sin factura y la orden sigue pendiente
	invoices, err := f.invoices.ListByStore("store-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	order, err := f.orders.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendingBilling, order.Status)

	// el borrador sigue editable (en Review)
	state, err := f.draftUC.GetDraft("store-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domainbilling.StateReview), state.State)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados y aislamiento por tienda
// ──────────────────────────────────────────────────────────────────────────────

func TestTransmit_DobleTransmisionSeRechaza(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	_, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)

	// el borrador ya está en Success: segunda transmisión rechazada
	_, err = f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	assert.ErrorIs(t, err, domain.ErrDraftNotEditable)
}

func TestTransmit_OtraTiendaNoVeElBorrador(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	_, err := f.transmit.Transmit(context.Background(), "store-2", draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallo de persistencia: el borrador vuelve a Review para reintentar
// ──────────────────────────────────────────────────────────────────────────────

type failingTxRunner struct{ err error }

func (f *failingTxRunner) RunBilling(_ context.Context, _ func(repository.OrderRepository, repository.InvoiceRepository) error) error {
	return f.err
}

func TestTransmit_FalloDeTransaccionVuelveAReview(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	boom := errors.New("conexión perdida")
	broken := appbilling.NewTransmitUseCase(f.sessions, &failingTxRunner{err: boom}, 0, "1")

	_, err := broken.Transmit(context.Background(), "store-1", draft.ID)
	require.ErrorIs(t, err, boom)

	// la orden no cambió y no hay factura
	order, err := f.orders.GetByID("order-1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPendingBilling, order.Status)

	invoices, err := f.invoices.ListByStore("store-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	// el borrador volvió a Review: el operador puede reintentar
	state, err := f.draftUC.GetDraft("store-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domainbilling.StateReview), state.State)

	// el reintento con la transacción sana termina bien
	inv, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inv.Number)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sin clave de idempotencia: reabrir la orden produce otra factura
// ──────────────────────────────────────────────────────────────────────────────

func TestStartDraft_OrdenYaFacturadaSeRechaza(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	_, err := f.transmit.Transmit(context.Background(), "store-1", draft.ID)
	require.NoError(t, err)

	_, err = f.draftUC.StartDraft(context.Background(), "store-1", "order-1")
	assert.ErrorIs(t, err, domain.ErrOrderAlreadyBilled)
}

// Dos borradores abiertos ANTES de transmitir: ambos transmiten y salen dos
// facturas con números consecutivos (sin guardia de idempotencia).
func TestTransmit_DosBorradoresAbiertosGeneranDosFacturas(t *testing.T) {
	f := newBillingFixture(t)
	f.seedOrder(t)

	d1, err := f.draftUC.StartDraft(context.Background(), "store-1", "order-1")
	require.NoError(t, err)
	d2, err := f.draftUC.StartDraft(context.Background(), "store-1", "order-1")
	require.NoError(t, err)

	inv1, err := f.transmit.Transmit(context.Background(), "store-1", d1.ID)
	require.NoError(t, err)
	inv2, err := f.transmit.Transmit(context.Background(), "store-1", d2.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), inv1.Number)
	assert.Equal(t, int64(2), inv2.Number)

	invoices, err := f.invoices.ListByStore("store-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, invoices, 2, "la misma orden quedó facturada dos veces")
}

// ──────────────────────────────────────────────────────────────────────────────
// Descartar el borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscard_CierraSinPersistir(t *testing.T) {
	f := newBillingFixture(t)
	draft := f.startDraft(t)

	_, err := f.draftUC.SetDiscount("store-1", draft.ID, dto.SetDiscountRequest{Discount: dec("50.00")})
	require.NoError(t, err)

	f.draftUC.Discard("store-1", draft.ID)

	_, err = f.draftUC.GetDraft("store-1", draft.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// nada quedó persistido
	invoices, err := f.invoices.ListByStore("store-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, invoices)
}
