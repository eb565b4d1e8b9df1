package billing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LieTttv/PDVomnierp-sub000/internal/domain/billing"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Schedule — número de cuotas y vencimientos por plazo
// ──────────────────────────────────────────────────────────────────────────────

func TestSchedule_PlazosConocidos(t *testing.T) {
	total := decimal.RequireFromString("280.00")

	cases := []struct {
		name    string
		term    string
		offsets []int
	}{
		{"contado", billing.TermCash, []int{0}},
		{"7 días", billing.Term7Days, []int{7}},
		{"7 y 14 días", billing.Term7And14Days, []int{7, 14}},
		{"cuatro semanas", billing.TermFourWeekly, []int{7, 14, 21, 28}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := billing.Schedule(total, tc.term, testNow)
			require.Len(t, out, len(tc.offsets))
			for i, days := range tc.offsets {
				assert.Equal(t, testNow.AddDate(0, 0, days), out[i].DueDate,
					"vencimiento de la cuota %d", i+1)
			}
		})
	}
}

// Plazo desconocido: una sola cuota con vencimiento hoy (igual que contado).
func TestSchedule_PlazoDesconocidoEsContado(t *testing.T) {
	out := billing.Schedule(decimal.RequireFromString("100.00"), "plazo inventado", testNow)
	require.Len(t, out, 1)
	assert.Equal(t, testNow, out[0].DueDate)
	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("100.00")))
}

// División exacta: cuatro cuotas de 70 sobre un total de 280.
func TestSchedule_DivisionExacta(t *testing.T) {
	out := billing.Schedule(decimal.RequireFromString("280.00"), billing.TermFourWeekly, testNow)
	require.Len(t, out, 4)
	for i, inst := range out {
		assert.True(t, inst.Amount.Equal(decimal.RequireFromString("70")),
			"cuota %d debe ser 70, fue %s", i+1, inst.Amount)
	}
}

// División no exacta: el residuo NO se concilia en la última cuota; las dos
// cuotas son idénticas (decimal exacto de la división simple).
func TestSchedule_SinConciliacionDeResiduo(t *testing.T) {
	out := billing.Schedule(decimal.RequireFromString("100.01"), billing.Term7And14Days, testNow)
	require.Len(t, out, 2)
	assert.True(t, out[0].Amount.Equal(out[1].Amount),
		"las cuotas deben ser iguales: la última no absorbe el residuo")
	assert.True(t, out[0].Amount.Equal(decimal.RequireFromString("50.005")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TermForcesBankSlip
// ──────────────────────────────────────────────────────────────────────────────

func TestTermForcesBankSlip(t *testing.T) {
	assert.False(t, billing.TermForcesBankSlip(billing.TermCash), "contado no fuerza boleto")
	assert.True(t, billing.TermForcesBankSlip(billing.Term7Days))
	assert.True(t, billing.TermForcesBankSlip(billing.Term7And14Days))
	assert.True(t, billing.TermForcesBankSlip(billing.TermFourWeekly))
	// la regla es textual: cualquier plazo que mencione "days" fuerza boleto
	assert.True(t, billing.TermForcesBankSlip("45 days"))
	assert.False(t, billing.TermForcesBankSlip("45 dias"))
}
