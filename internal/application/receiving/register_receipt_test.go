package receiving_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LieTttv/PDVomnierp-sub000/internal/application/dto"
	"github.com/LieTttv/PDVomnierp-sub000/internal/application/receiving"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
	"github.com/LieTttv/PDVomnierp-sub000/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: repos en memoria con proveedor y producto sembrados
// ──────────────────────────────────────────────────────────────────────────────

type receivingFixture struct {
	parties  *memory.PartyRepo
	products *memory.ProductRepo
	stock    *memory.StockRepo
	moves    *memory.MovementRepo
	receipts *memory.ReceiptRepo
	uc       *receiving.RegisterReceiptUseCase
	queries  *receiving.StockQueryUseCase
}

func newReceivingFixture(t *testing.T) *receivingFixture {
	t.Helper()
	f := &receivingFixture{
		parties:  memory.NewPartyRepository(),
		products: memory.NewProductRepository(),
		stock:    memory.NewStockRepository(),
		moves:    memory.NewMovementRepository(),
		receipts: memory.NewReceiptRepository(),
	}
	tx := &memory.TxRunner{Products: f.products, Stock: f.stock, Moves: f.moves, Receipts: f.receipts}
	f.uc = receiving.NewRegisterReceiptUseCase(tx, f.parties, f.products)
	f.queries = receiving.NewStockQueryUseCase(f.receipts, f.stock, f.moves, f.products)

	require.NoError(t, f.parties.Create(&entity.Party{
		ID: "supplier-1", StoreID: "store-1", Kind: entity.PartyKindSupplier, Name: "Distribuidora Sur",
	}))
	require.NoError(t, f.products.Create(&entity.Product{
		ID: "prod-1", StoreID: "store-1", SKU: "CAFE-500", Name: "Café 500g",
		Unit: "UN", Cost: decimal.Zero,
	}))
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func cajas(qty, factor, cost string) dto.ReceiptItemRequest {
	return dto.ReceiptItemRequest{
		ProductID:        "prod-1",
		PurchasedQty:     dec(qty),
		PurchasedUnit:    "CX",
		ConversionFactor: dec(factor),
		UnitCost:         dec(cost),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada exitosa: conversión, existencia, costo y kardex
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterReceipt_ConvierteUnidadYSumaExistencia(t *testing.T) {
	f := newReceivingFixture(t)

	resp, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
		Number:     "NF-778",
		Items:      []dto.ReceiptItemRequest{cajas("3", "12", "4.50")},
	})
	require.NoError(t, err)

	// 3 cajas × 12 unidades = 36 en unidad de stock
	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Items[0].StockQuantity.Equal(dec("36")))

	level, err := f.stock.GetLevel("store-1", "prod-1")
	require.NoError(t, err)
	require.NotNil(t, level)
	assert.True(t, level.Quantity.Equal(dec("36")))

	// el costo promedio arranca en el costo de la entrada
	product, err := f.products.GetByID("prod-1")
	require.NoError(t, err)
	assert.True(t, product.Cost.Equal(dec("4.50")))

	// quedó el movimiento IN en el kardex, referenciando la recepción
	moves, err := f.moves.ListByProduct("store-1", "prod-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, entity.MovementIN, moves[0].Type)
	assert.True(t, moves[0].Quantity.Equal(dec("36")))
	assert.Equal(t, resp.ID, moves[0].Reference)
	assert.Equal(t, "user-1", moves[0].UserID)

	// y el documento de recepción persistido
	receipt, err := f.receipts.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "NF-778", receipt.Number)
	assert.Len(t, receipt.Items, 1)
}

func TestRegisterReceipt_PromedioPonderadoSobreExistenciaPrevia(t *testing.T) {
	f := newReceivingFixture(t)

	// primera entrada: 10 unidades a 4.00
	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
		Items:      []dto.ReceiptItemRequest{cajas("10", "1", "4.00")},
	})
	require.NoError(t, err)

	// segunda entrada: 10 unidades a 6.00 → promedio (40 + 60) / 20 = 5.00
	_, err = f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
		Items:      []dto.ReceiptItemRequest{cajas("10", "1", "6.00")},
	})
	require.NoError(t, err)

	product, err := f.products.GetByID("prod-1")
	require.NoError(t, err)
	assert.True(t, product.Cost.Equal(dec("5.00")), "costo = %s", product.Cost)

	level, err := f.stock.GetLevel("store-1", "prod-1")
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(dec("20")))
}

func TestRegisterReceipt_FactorNoPositivoEquivaleAUno(t *testing.T) {
	f := newReceivingFixture(t)

	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
		Items:      []dto.ReceiptItemRequest{cajas("5", "0", "2.00")},
	})
	require.NoError(t, err)

	level, err := f.stock.GetLevel("store-1", "prod-1")
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(dec("5")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas: recepciones, existencia y kardex
// ──────────────────────────────────────────────────────────────────────────────

func TestConsultas_RecepcionExistenciaYKardex(t *testing.T) {
	f := newReceivingFixture(t)

	resp, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
		Number:     "NF-901",
		Items:      []dto.ReceiptItemRequest{cajas("2", "12", "3.00")},
	})
	require.NoError(t, err)

	// recepción por ID
	receipt, err := f.queries.GetReceipt("store-1", resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "NF-901", receipt.Number)

	// otra tienda no la ve
	_, err = f.queries.GetReceipt("store-2", resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// listado de la tienda
	list, err := f.queries.ListReceipts("store-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// existencia del producto
	level, err := f.queries.StockLevel("store-1", "prod-1")
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(dec("24")))
	assert.Equal(t, "UN", level.Unit)

	// kardex con el movimiento IN
	moves, err := f.queries.Kardex("store-1", "prod-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, entity.MovementIN, moves[0].Type)
	assert.Equal(t, resp.ID, moves[0].Reference)
}

func TestStockLevel_ProductoSinEntradasEsCero(t *testing.T) {
	f := newReceivingFixture(t)

	level, err := f.queries.StockLevel("store-1", "prod-1")
	require.NoError(t, err)
	assert.True(t, level.Quantity.IsZero())
}

func TestKardex_ProductoInexistente(t *testing.T) {
	f := newReceivingFixture(t)

	_, err := f.queries.Kardex("store-1", "prod-fantasma", 10, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones: las entradas rechazadas no dejan rastro
// ──────────────────────────────────────────────────────────────────────────────

func (f *receivingFixture) assertSinEfectos(t *testing.T) {
	t.Helper()
	level, err := f.stock.GetLevel("store-1", "prod-1")
	require.NoError(t, err)
	assert.Nil(t, level, "no debería haber existencia registrada")

	moves, err := f.moves.ListByProduct("store-1", "prod-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, moves)

	receipts, err := f.receipts.ListByStore("store-1", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestRegisterReceipt_ProveedorInexistente(t *testing.T) {
	f := newReceivingFixture(t)

	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "no-existe",
		Items:      []dto.ReceiptItemRequest{cajas("1", "1", "1.00")},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.assertSinEfectos(t)
}

func TestRegisterReceipt_ClienteNoEsProveedor(t *testing.T) {
	f := newReceivingFixture(t)
	require.NoError(t, f.parties.Create(&entity.Party{
		ID: "client-1", StoreID: "store-1", Kind: entity.PartyKindClient, Name: "Cliente Final",
	}))

	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "client-1",
		Items:      []dto.ReceiptItemRequest{cajas("1", "1", "1.00")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.assertSinEfectos(t)
}

func TestRegisterReceipt_ProveedorDeOtraTienda(t *testing.T) {
	f := newReceivingFixture(t)
	require.NoError(t, f.parties.Create(&entity.Party{
		ID: "supplier-ajeno", StoreID: "store-2", Kind: entity.PartyKindSupplier, Name: "Otro",
	}))

	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-ajeno",
		Items:      []dto.ReceiptItemRequest{cajas("1", "1", "1.00")},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.assertSinEfectos(t)
}

func TestRegisterReceipt_ItemsInvalidos(t *testing.T) {
	f := newReceivingFixture(t)

	casos := []struct {
		nombre string
		item   dto.ReceiptItemRequest
	}{
		{"cantidad cero", cajas("0", "1", "1.00")},
		{"cantidad negativa", cajas("-2", "1", "1.00")},
		{"costo negativo", cajas("1", "1", "-0.50")},
		{"sin producto", dto.ReceiptItemRequest{PurchasedQty: dec("1"), ConversionFactor: dec("1"), UnitCost: dec("1.00")}},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
				SupplierID: "supplier-1",
				Items:      []dto.ReceiptItemRequest{c.item},
			})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	f.assertSinEfectos(t)
}

func TestRegisterReceipt_SinItems(t *testing.T) {
	f := newReceivingFixture(t)

	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterReceipt_ProductoInexistente(t *testing.T) {
	f := newReceivingFixture(t)

	item := cajas("1", "1", "1.00")
	item.ProductID = "prod-fantasma"
	_, err := f.uc.RegisterReceipt(context.Background(), "store-1", "user-1", dto.RegisterReceiptRequest{
		SupplierID: "supplier-1",
		Items:      []dto.ReceiptItemRequest{item},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.assertSinEfectos(t)
}
