package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Plazos de pago soportados. Lista fija, no configurable; un plazo desconocido
// se trata como contado (una cuota con vencimiento hoy).
const (
	TermCash       = "cash"
	Term7Days      = "7 days"
	Term7And14Days = "7 and 14 days"
	TermFourWeekly = "7,14,21,28 days"
)

// Medios de pago.
const (
	MethodCash     = "cash"
	MethodBankSlip = "bank_slip"
	MethodCard     = "card"
	MethodTransfer = "transfer"
)

// Installment una cuota del plan de pago: fecha de vencimiento y monto.
// Nunca se persiste por sí sola; solo la fecha de la última cuota termina
// como vencimiento de la factura generada.
type Installment struct {
	DueDate time.Time
	Amount  decimal.Decimal
}

// termOffsets días de vencimiento de cada cuota según el plazo.
func termOffsets(term string) []int {
	switch term {
	case Term7Days:
		return []int{7}
	case Term7And14Days:
		return []int{7, 14}
	case TermFourWeekly:
		return []int{7, 14, 21, 28}
	default: // contado o plazo desconocido
		return []int{0}
	}
}

// Schedule divide el total en cuotas iguales según el plazo.
// La división es decimal simple: la última cuota NO absorbe el residuo de
// redondeo.
func Schedule(total decimal.Decimal, term string, now time.Time) []Installment {
	offsets := termOffsets(term)
	amount := total.Div(decimal.NewFromInt(int64(len(offsets))))
	out := make([]Installment, len(offsets))
	for i, days := range offsets {
		out[i] = Installment{
			DueDate: now.AddDate(0, 0, days),
			Amount:  amount,
		}
	}
	return out
}

// TermForcesBankSlip regla de negocio: todo plazo que menciona "days" obliga
// el medio de pago a boleto bancario y bloquea el cambio manual mientras el
// plazo siga seleccionado.
func TermForcesBankSlip(term string) bool {
	return strings.Contains(term, "days")
}
