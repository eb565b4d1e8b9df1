// Package fiscal construye la representación XML de la factura emitida
// (reimpresión del documento fiscal, sin firma digital).
package fiscal

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	appbilling "github.com/LieTttv/PDVomnierp-sub000/internal/application/billing"
	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/entity"
)

var _ appbilling.FiscalRenderer = (*XMLRenderer)(nil)

// XMLRenderer implementa billing.FiscalRenderer usando etree.
type XMLRenderer struct{}

// NewXMLRenderer construye el renderizador.
func NewXMLRenderer() *XMLRenderer {
	return &XMLRenderer{}
}

// RenderInvoiceXML genera el documento XML de la factura y devuelve sus bytes.
func (r *XMLRenderer) RenderInvoiceXML(
	inv *entity.Invoice,
	store *entity.Store,
	party *entity.Party,
) ([]byte, error) {
	if inv == nil || store == nil || party == nil {
		return nil, fmt.Errorf("fiscal: faltan factura, tienda o cliente")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateElement("ID").SetText(fmt.Sprintf("%s-%d", inv.Series, inv.Number))
	root.CreateElement("Series").SetText(inv.Series)
	root.CreateElement("Number").SetText(strconv.FormatInt(inv.Number, 10))
	root.CreateElement("IssueDate").SetText(inv.IssueDate.Format("2006-01-02"))
	root.CreateElement("DueDate").SetText(inv.DueDate.Format("2006-01-02"))
	root.CreateElement("LineCountNumeric").SetText(strconv.Itoa(len(inv.Items)))

	supplier := root.CreateElement("SupplierParty")
	supplier.CreateElement("Name").SetText(store.Name)
	supplier.CreateElement("TaxID").SetText(store.TaxID)
	supplier.CreateElement("Address").SetText(store.Address)

	customer := root.CreateElement("CustomerParty")
	customer.CreateElement("Name").SetText(party.Name)
	customer.CreateElement("TaxID").SetText(party.TaxID)
	customer.CreateElement("Address").SetText(party.Address)

	payment := root.CreateElement("PaymentMeans")
	payment.CreateElement("Term").SetText(inv.PaymentTerm)
	payment.CreateElement("Method").SetText(inv.PaymentMethod)

	transport := root.CreateElement("Transport")
	transport.CreateElement("FreightModality").SetText(inv.Freight.Modality)
	transport.CreateElement("DeclaredValue").SetText(inv.Freight.DeclaredValue.StringFixed(2))
	if inv.Freight.VehiclePlate != "" {
		transport.CreateElement("VehiclePlate").SetText(inv.Freight.VehiclePlate)
	}
	if inv.Freight.Species != "" {
		transport.CreateElement("Species").SetText(inv.Freight.Species)
	}
	transport.CreateElement("VolumeCount").SetText(strconv.Itoa(inv.Freight.VolumeCount))
	transport.CreateElement("NetWeight").SetText(inv.Freight.NetWeight.StringFixed(3))
	transport.CreateElement("GrossWeight").SetText(inv.Freight.GrossWeight.StringFixed(3))

	lines := root.CreateElement("InvoiceLines")
	for i, it := range inv.Items {
		line := lines.CreateElement("InvoiceLine")
		line.CreateElement("ID").SetText(strconv.Itoa(i + 1))
		line.CreateElement("ProductName").SetText(it.ProductName)
		line.CreateElement("Quantity").SetText(it.Quantity.String())
		line.CreateElement("UnitPrice").SetText(it.UnitPrice.StringFixed(2))
		line.CreateElement("LineTotal").SetText(it.TotalPrice.StringFixed(2))
	}

	totals := root.CreateElement("MonetaryTotal")
	totals.CreateElement("Subtotal").SetText(inv.Subtotal.StringFixed(2))
	totals.CreateElement("Discount").SetText(inv.Discount.StringFixed(2))
	totals.CreateElement("FreightCharge").SetText(inv.FreightCharge.StringFixed(2))
	totals.CreateElement("TaxAmount").SetText(inv.TaxAmount.StringFixed(2))
	totals.CreateElement("PayableAmount").SetText(inv.TotalAmount.StringFixed(2))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("fiscal: serializar XML: %w", err)
	}
	return out, nil
}
