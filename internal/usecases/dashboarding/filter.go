package dashboarding

import (
	"time"

	"github.com/vfg2006/performance-dashboard-api/internal/domain"
	"github.com/vfg2006/performance-dashboard-api/pkg/utils"
)

// resolveRange calcula o intervalo efetivo de datas. No modo "últimos 7
// dias" a janela é ancorada no dia mais recente presente nos dados de
// vendas (ou, na falta deles, de investimento), não na data corrente.
func resolveRange(
	filters *domain.DashboardFilters,
	sales []*domain.SalesRecord,
	investments []*domain.InvestmentRecord,
) *domain.DateRange {
	rng := &domain.DateRange{}

	if filters.StartDate != nil {
		start := utils.StartOfDay(*filters.StartDate)
		rng.Start = &start
	}
	if filters.EndDate != nil {
		end := utils.EndOfDay(*filters.EndDate)
		rng.End = &end
	}

	if filters.Period != domain.PeriodLast7Days {
		return rng
	}

	var lastKey int64
	found := false

	for _, r := range sales {
		if !found || r.DateKey > lastKey {
			lastKey = r.DateKey
			found = true
		}
	}
	if !found {
		for _, r := range investments {
			if !found || r.DateKey > lastKey {
				lastKey = r.DateKey
				found = true
			}
		}
	}

	if !found {
		// Sem dados não há âncora: intervalo ilimitado
		return &domain.DateRange{}
	}

	lastDay := time.UnixMilli(lastKey).In(time.Local)
	start := utils.StartOfDay(lastDay.AddDate(0, 0, -6))
	end := utils.EndOfDay(lastDay)

	return &domain.DateRange{Start: &start, End: &end}
}

// filterSales aplica intervalo de datas e pertencimento à seleção de
// canais sobre os registros de venda.
func filterSales(records []*domain.SalesRecord, rng *domain.DateRange, channels map[string]bool) []*domain.SalesRecord {
	out := make([]*domain.SalesRecord, 0, len(records))
	for _, r := range records {
		if rng.Contains(r.Date) && channels[r.Channel] {
			out = append(out, r)
		}
	}
	return out
}

// filterInvestments aplica somente o intervalo de datas; o feed de
// investimento não tem dimensão de canal.
func filterInvestments(records []*domain.InvestmentRecord, rng *domain.DateRange) []*domain.InvestmentRecord {
	out := make([]*domain.InvestmentRecord, 0, len(records))
	for _, r := range records {
		if rng.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

func channelSet(channels []string) map[string]bool {
	set := make(map[string]bool, len(channels))
	for _, ch := range channels {
		set[ch] = true
	}
	return set
}
