package domain

import (
	"time"

	"github.com/vfg2006/performance-dashboard-api/pkg/utils"
)

// DailyAggregate é um ponto da série diária combinada: vendas e investimento
// do mesmo dia acumulados sob a mesma chave. Um dia presente em apenas um dos
// feeds ainda gera uma entrada, com zero na medida ausente.
type DailyAggregate struct {
	DateKey    int64   `json:"date_key"`
	Label      string  `json:"label"` // DD/MM
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
	TotalSpend float64 `json:"total_spend"`
}

// ChannelSlice é uma fatia de distribuição por canal (faturamento ou
// pedidos). Fatias com valor zero não aparecem na distribuição.
type ChannelSlice struct {
	Channel string  `json:"channel"`
	Value   float64 `json:"value"`
}

// Totals reúne os somatórios do período filtrado e os KPIs derivados.
type Totals struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	TotalSpend        float64 `json:"total_spend"`
	TotalNewCustomers int     `json:"total_new_customers"`

	AverageTicket      float64 `json:"average_ticket"`
	CostPerAcquisition float64 `json:"cost_per_acquisition"`
	CostPerOrder       float64 `json:"cost_per_order"`
	ROIPercent         float64 `json:"roi_percent"`
}

// CalculateRatios deriva os KPIs a partir dos somatórios. Divisores zerados
// resultam em 0, nunca em NaN/Inf.
func (t *Totals) CalculateRatios() {
	t.AverageTicket = utils.SafeDiv(t.TotalRevenue, float64(t.TotalOrders))
	t.CostPerAcquisition = utils.SafeDiv(t.TotalSpend, float64(t.TotalNewCustomers))
	t.CostPerOrder = utils.SafeDiv(t.TotalSpend, float64(t.TotalOrders))

	if t.TotalSpend != 0 {
		t.ROIPercent = (t.TotalRevenue - t.TotalSpend) / t.TotalSpend * 100
	} else {
		t.ROIPercent = 0
	}
}

// DetailRow é uma linha da tabela de detalhamento (data + canal), ordenada
// por chave de dia e canal.
type DetailRow struct {
	Date       string  `json:"date"` // DD/MM/YYYY
	Channel    string  `json:"channel"`
	OrderCount int     `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// AppliedFilters descreve os filtros efetivamente aplicados ao snapshot.
type AppliedFilters struct {
	Period    Period     `json:"period"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Channels  []string   `json:"channels"`
}

// DashboardSnapshot é a visão completa consumida pela camada de apresentação.
// Estrutura recalculada integralmente a cada mudança de dados ou filtro;
// nenhum campo é mutado após a construção.
type DashboardSnapshot struct {
	Filters          AppliedFilters    `json:"filters"`
	DailySeries      []*DailyAggregate `json:"daily_series"`
	RevenueByChannel []*ChannelSlice   `json:"revenue_by_channel"`
	OrdersByChannel  []*ChannelSlice   `json:"orders_by_channel"`
	Totals           *Totals           `json:"totals"`
	DetailRows       []*DetailRow      `json:"detail_rows"`
	LastReloadAt     time.Time         `json:"last_reload_at"`
}
