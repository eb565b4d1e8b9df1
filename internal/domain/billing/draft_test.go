package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// testOrder orden de dos líneas con productos de catálogo con pesos.
func testOrder() (*entity.Order, map[string]*entity.Product) {
	order := &entity.Order{
		ID:      "order-1",
		StoreID: "store-1",
		PartyID: "party-1",
		Status:  entity.OrderStatusPendingBilling,
		Items: []entity.OrderItem{
			{ProductID: "prod-1", ProductName: "Café 500g", Quantity: dec("10"), UnitPrice: dec("29.90")},
			{ProductID: "prod-2", ProductName: "Azúcar 1kg", Quantity: dec("4"), UnitPrice: dec("5.25")},
		},
	}
	products := map[string]*entity.Product{
		"prod-1": {ID: "prod-1", NetWeight: dec("0.5"), GrossWeight: dec("0.55")},
		"prod-2": {ID: "prod-2", NetWeight: dec("1"), GrossWeight: dec("1.05")},
	}
	return order, products
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción del borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestNewDraft_CopiaLineasYPesosDelCatalogo(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	assert.Equal(t, billing.StateReview, d.State)
	assert.Equal(t, billing.TermCash, d.PaymentTerm)
	assert.Equal(t, billing.MethodCash, d.PaymentMethod)
	require.Len(t, d.Lines, 2)

	assert.True(t, d.Lines[0].TotalPrice.Equal(dec("299.00")), "10 × 29.90")
	assert.True(t, d.Lines[1].TotalPrice.Equal(dec("21.00")), "4 × 5.25")
	assert.True(t, d.Lines[0].UnitNetWeight.Equal(dec("0.5")))

	// Pesos agregados desde el catálogo: 10×0.5 + 4×1 = 9, 10×0.55 + 4×1.05 = 9.7
	assert.True(t, d.Freight.NetWeight.Equal(dec("9")), "neto = %s", d.Freight.NetWeight)
	assert.True(t, d.Freight.GrossWeight.Equal(dec("9.7")), "bruto = %s", d.Freight.GrossWeight)
}

func TestNewDraft_ProductoFueraDeCatalogoPesaCero(t *testing.T) {
	order, _ := testOrder()
	d := billing.NewDraft(order, map[string]*entity.Product{})
	assert.True(t, d.Freight.NetWeight.IsZero())
	assert.True(t, d.Freight.GrossWeight.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición de cantidades
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_RecalculaTotalYPesos(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.UpdateQuantity(0, dec("3"))

	assert.True(t, d.Lines[0].Quantity.Equal(dec("3")))
	assert.True(t, d.Lines[0].TotalPrice.Equal(dec("89.70")), "3 × 29.90")
	// pesos recalculados: 3×0.5 + 4×1 = 5.5
	assert.True(t, d.Freight.NetWeight.Equal(dec("5.5")))
}

func TestUpdateQuantity_NegativaEsNoOp(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.UpdateQuantity(0, dec("-1"))

	assert.True(t, d.Lines[0].Quantity.Equal(dec("10")), "cantidad negativa no debe aplicarse")
	assert.True(t, d.Lines[0].TotalPrice.Equal(dec("299.00")))
}

func TestUpdateQuantity_IndiceFueraDeRangoEsNoOp(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.UpdateQuantity(5, dec("1"))
	d.UpdateQuantity(-1, dec("1"))

	assert.True(t, d.Subtotal().Equal(dec("320.00")), "el borrador no debe cambiar")
}

func TestUpdateQuantity_CeroEsValido(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.UpdateQuantity(0, decimal.Zero)

	assert.True(t, d.Lines[0].TotalPrice.IsZero(), "cantidad cero deja la línea en cero sin quitarla")
	require.Len(t, d.Lines, 2)
}

func TestRemoveLine_EliminaYRecalculaPesos(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.RemoveLine(0)

	require.Len(t, d.Lines, 1)
	assert.Equal(t, "prod-2", d.Lines[0].ProductID)
	assert.True(t, d.Freight.NetWeight.Equal(dec("4")), "solo quedan 4×1 kg")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pesos manuales vs recálculo
// ──────────────────────────────────────────────────────────────────────────────

// La edición manual de pesos se conserva mientras no se toquen las líneas...
func TestSetFreightInfo_PesosManualesSeConservan(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	f := d.Freight
	f.NetWeight = dec("99.999")
	f.GrossWeight = dec("111.111")
	f.VehiclePlate = "ABC1234"
	d.SetFreightInfo(f)

	assert.True(t, d.Freight.NetWeight.Equal(dec("99.999")))
	assert.Equal(t, "ABC1234", d.Freight.VehiclePlate)
}

// ...pero la siguiente mutación de líneas los pisa con el recálculo.
func TestSetFreightInfo_RecalculoPisaPesosManuales(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	f := d.Freight
	f.NetWeight = dec("99.999")
	f.VehiclePlate = "ABC1234"
	d.SetFreightInfo(f)

	d.UpdateQuantity(1, dec("2"))

	// 10×0.5 + 2×1 = 7; la edición manual se perdió
	assert.True(t, d.Freight.NetWeight.Equal(dec("7")),
		"el recálculo debe sobrescribir el peso manual, fue %s", d.Freight.NetWeight)
	// el resto de los datos logísticos editados no se toca
	assert.Equal(t, "ABC1234", d.Freight.VehiclePlate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Plazo y medio de pago
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPaymentTerm_PlazoConDiasFuerzaBoleto(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.SetPaymentMethod(billing.MethodCard)
	require.Equal(t, billing.MethodCard, d.PaymentMethod)

	d.SetPaymentTerm(billing.Term7And14Days)
	assert.Equal(t, billing.MethodBankSlip, d.PaymentMethod, "plazo con días fuerza boleto")

	// bloqueado: el cambio manual es no-op mientras el plazo siga seleccionado
	d.SetPaymentMethod(billing.MethodTransfer)
	assert.Equal(t, billing.MethodBankSlip, d.PaymentMethod)

	// volver a contado desbloquea el medio
	d.SetPaymentTerm(billing.TermCash)
	d.SetPaymentMethod(billing.MethodTransfer)
	assert.Equal(t, billing.MethodTransfer, d.PaymentMethod)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales del borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestDraft_TotalesConDescuentoYFlete(t *testing.T) {
	order, products := testOrder()
	d := billing.NewDraft(order, products)

	d.SetDiscount(dec("20.00"))
	d.SetFreightCharge(dec("15.00"))

	assert.True(t, d.Subtotal().Equal(dec("320.00")))
	assert.True(t, d.Total().Equal(dec("315.00")), "320 − 20 + 15")

	insts := d.Installments(testNow)
	require.Len(t, insts, 1, "contado es una sola cuota")
	assert.True(t, insts[0].Amount.Equal(dec("315.00")))
}
