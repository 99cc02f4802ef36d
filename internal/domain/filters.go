package domain

import "time"

// Period define o modo de periodicidade do dashboard.
type Period string

const (
	// PeriodLast7Days é a janela móvel de 7 dias ancorada no dado mais recente
	PeriodLast7Days Period = "7d"
	// PeriodCustom usa o intervalo de datas informado pelo usuário
	PeriodCustom Period = "custom"
)

// DateRange é um intervalo de datas inclusivo nas duas pontas. Start no
// início do dia e End no último milissegundo do dia. Pontas nulas significam
// intervalo ilimitado (todos os registros passam).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains verifica se a data pertence ao intervalo, comparando timestamps
// em milissegundos. Intervalo nulo ou sem pontas aceita qualquer data.
func (r *DateRange) Contains(d time.Time) bool {
	if r == nil || r.Start == nil || r.End == nil {
		return true
	}

	ts := d.UnixMilli()
	return ts >= r.Start.UnixMilli() && ts <= r.End.UnixMilli()
}

// DashboardFilters é o estado de filtro enviado pela camada de apresentação.
// Channels vazio significa "usar a seleção corrente de canais".
type DashboardFilters struct {
	Period    Period
	StartDate *time.Time
	EndDate   *time.Time
	Channels  []string
}
