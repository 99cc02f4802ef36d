package dashboarding

import (
	"sort"

	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

// buildDailySeries combina vendas e investimento do mesmo dia sob a mesma
// chave. Um dia presente em apenas um dos feeds ainda gera uma entrada,
// com zero na medida ausente. Saída ordenada por chave de dia.
func buildDailySeries(
	sales []*domain.SalesRecord,
	investments []*domain.InvestmentRecord,
) []*domain.DailyAggregate {
	byDay := make(map[int64]*domain.DailyAggregate)

	for _, r := range sales {
		agg, ok := byDay[r.DateKey]
		if !ok {
			agg = &domain.DailyAggregate{DateKey: r.DateKey, Label: r.DateLabel}
			byDay[r.DateKey] = agg
		}
		agg.Revenue += r.Revenue
		agg.OrderCount += r.OrderCount
	}

	for _, r := range investments {
		agg, ok := byDay[r.DateKey]
		if !ok {
			agg = &domain.DailyAggregate{DateKey: r.DateKey, Label: r.DateLabel}
			byDay[r.DateKey] = agg
		}
		agg.TotalSpend += r.TotalSpend
	}

	series := make([]*domain.DailyAggregate, 0, len(byDay))
	for _, agg := range byDay {
		series = append(series, agg)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].DateKey < series[j].DateKey
	})

	return series
}

// buildChannelDistribution acumula a medida por canal sobre as vendas já
// filtradas. Todos os canais selecionados entram zerados e os que
// permanecem em zero são removidos da saída, para que o gráfico de rosca
// nunca exiba fatia de 0%.
func buildChannelDistribution(
	sales []*domain.SalesRecord,
	selected []string,
	measure func(*domain.SalesRecord) float64,
) []*domain.ChannelSlice {
	order := append([]string(nil), selected...)
	values := make(map[string]float64, len(selected))
	for _, ch := range selected {
		values[ch] = 0
	}

	for _, r := range sales {
		if _, ok := values[r.Channel]; !ok {
			order = append(order, r.Channel)
		}
		values[r.Channel] += measure(r)
	}

	slices := make([]*domain.ChannelSlice, 0, len(order))
	for _, ch := range order {
		if values[ch] == 0 {
			continue
		}
		slices = append(slices, &domain.ChannelSlice{Channel: ch, Value: values[ch]})
	}

	return slices
}

// buildTotals soma os registros filtrados e deriva os KPIs com divisão
// segura.
func buildTotals(
	sales []*domain.SalesRecord,
	investments []*domain.InvestmentRecord,
) *domain.Totals {
	totals := &domain.Totals{}

	for _, r := range sales {
		totals.TotalRevenue += r.Revenue
		totals.TotalOrders += r.OrderCount
	}

	for _, r := range investments {
		totals.TotalSpend += r.TotalSpend
		totals.TotalNewCustomers += r.NewCustomers
	}

	totals.CalculateRatios()

	return totals
}

// buildDetailRows ordena as vendas filtradas por dia e canal para a tabela
// de detalhamento.
func buildDetailRows(sales []*domain.SalesRecord) []*domain.DetailRow {
	sorted := append([]*domain.SalesRecord(nil), sales...)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DateKey != sorted[j].DateKey {
			return sorted[i].DateKey < sorted[j].DateKey
		}
		return sorted[i].Channel < sorted[j].Channel
	})

	rows := make([]*domain.DetailRow, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, &domain.DetailRow{
			Date:       r.DateFull,
			Channel:    r.Channel,
			OrderCount: r.OrderCount,
			Revenue:    r.Revenue,
		})
	}

	return rows
}
