package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains(t *testing.T) {
	start := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, time.November, 19, 23, 59, 59, int(999*time.Millisecond), time.Local)
	rng := &DateRange{Start: &start, End: &end}

	assert.True(t, rng.Contains(start), "início é inclusivo")
	assert.True(t, rng.Contains(end), "fim é inclusivo")
	assert.True(t, rng.Contains(time.Date(2025, time.November, 15, 12, 0, 0, 0, time.Local)))
	assert.False(t, rng.Contains(start.Add(-time.Millisecond)))
	assert.False(t, rng.Contains(end.Add(time.Millisecond)))
}

func TestDateRange_IlimitadoAceitaQualquerData(t *testing.T) {
	anyDate := time.Date(1999, time.January, 1, 0, 0, 0, 0, time.Local)

	var nilRange *DateRange
	assert.True(t, nilRange.Contains(anyDate))
	assert.True(t, (&DateRange{}).Contains(anyDate))

	onlyStart := time.Now()
	assert.True(t, (&DateRange{Start: &onlyStart}).Contains(anyDate), "ponta ausente torna o intervalo ilimitado")
}

func TestTotals_CalculateRatios(t *testing.T) {
	totals := &Totals{
		TotalRevenue:      150,
		TotalOrders:       3,
		TotalSpend:        30,
		TotalNewCustomers: 1,
	}

	totals.CalculateRatios()

	assert.InDelta(t, 50.0, totals.AverageTicket, 1e-9)
	assert.InDelta(t, 30.0, totals.CostPerAcquisition, 1e-9)
	assert.InDelta(t, 10.0, totals.CostPerOrder, 1e-9)
	assert.InDelta(t, 400.0, totals.ROIPercent, 1e-9)
}

func TestTotals_CalculateRatios_DivisoresZerados(t *testing.T) {
	totals := &Totals{
		TotalRevenue: 100,
		TotalSpend:   50,
	}

	totals.CalculateRatios()

	assert.Zero(t, totals.AverageTicket, "sem pedidos o ticket médio é 0")
	assert.Zero(t, totals.CostPerAcquisition, "sem clientes novos o CAC é 0, mesmo com gasto")
	assert.Zero(t, totals.CostPerOrder)

	semGasto := &Totals{TotalRevenue: 100}
	semGasto.CalculateRatios()
	assert.Zero(t, semGasto.ROIPercent, "sem investimento o ROI é 0")
}

func TestTotals_ROICemPorCento(t *testing.T) {
	totals := &Totals{TotalRevenue: 200, TotalSpend: 100}
	totals.CalculateRatios()
	assert.InDelta(t, 100.0, totals.ROIPercent, 1e-9)
}
