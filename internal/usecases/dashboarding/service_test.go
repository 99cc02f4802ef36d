package dashboarding

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/performance-dashboard-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Dashboard: config.Dashboard{
			ReportYear:        2025,
			CanonicalChannels: []string{"Site", "Dream Team", "Marketplace", "Social"},
		},
	}
}

func rawRow(pairs ...string) domain.RawRow {
	row := domain.RawRow{Values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		row.Columns = append(row.Columns, pairs[i])
		row.Values[pairs[i]] = pairs[i+1]
	}
	return row
}

func salesRecord(day time.Time, channel string, orders int, revenue float64) *domain.SalesRecord {
	d := utils.StartOfDay(day)
	return &domain.SalesRecord{
		Date:       d,
		DateKey:    utils.DayKey(d),
		DateLabel:  utils.FormatShortBR(d),
		DateFull:   utils.FormatDateBR(d),
		Channel:    channel,
		OrderCount: orders,
		Revenue:    revenue,
	}
}

func investmentRecord(day time.Time, spend float64, newCustomers int) *domain.InvestmentRecord {
	d := utils.StartOfDay(day)
	return &domain.InvestmentRecord{
		Date:         d,
		DateKey:      utils.DayKey(d),
		DateLabel:    utils.FormatShortBR(d),
		TotalSpend:   spend,
		NewCustomers: newCustomers,
	}
}

// loadedService monta um serviço com registros já normalizados, sem passar
// pela recarga.
func loadedService(cfg *config.Config, sales []*domain.SalesRecord, investments []*domain.InvestmentRecord) *Service {
	s := NewService(cfg, nil, normalizing.NewService(cfg))
	s.sales = sales
	s.investments = investments
	s.loaded = true
	s.lastReloadAt = time.Now()
	s.selection.Replace(domain.ReconcileChannels(sales, cfg.Dashboard.CanonicalChannels))
	return s
}

func day(dd int) time.Time {
	return time.Date(2025, time.November, dd, 0, 0, 0, 0, time.Local)
}

func dateRange(start, end time.Time) (*time.Time, *time.Time) {
	return &start, &end
}

func TestSnapshot_SemDadosCarregados(t *testing.T) {
	service := NewService(testConfig(), nil, normalizing.NewService(testConfig()))

	_, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodCustom})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSnapshot_FimAFim(t *testing.T) {
	// Cenário de referência: dois canais no mesmo dia mais o investimento
	// do dia, intervalo cobrindo a data
	sales := []*domain.SalesRecord{
		salesRecord(day(11), "Site", 2, 100),
		salesRecord(day(11), "Social", 1, 50),
	}
	investments := []*domain.InvestmentRecord{
		investmentRecord(day(11), 30, 1),
	}

	service := loadedService(testConfig(), sales, investments)

	start, end := dateRange(day(11), day(11))
	snapshot, err := service.Snapshot(&domain.DashboardFilters{
		Period:    domain.PeriodCustom,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)

	require.Len(t, snapshot.DailySeries, 1)
	entry := snapshot.DailySeries[0]
	assert.InDelta(t, 150.0, entry.Revenue, 1e-9)
	assert.Equal(t, 3, entry.OrderCount)
	assert.InDelta(t, 30.0, entry.TotalSpend, 1e-9)
	assert.Equal(t, "11/11", entry.Label)

	totals := snapshot.Totals
	assert.InDelta(t, 150.0, totals.TotalRevenue, 1e-9)
	assert.Equal(t, 3, totals.TotalOrders)
	assert.InDelta(t, 30.0, totals.TotalSpend, 1e-9)
	assert.Equal(t, 1, totals.TotalNewCustomers)
	assert.InDelta(t, 50.0, totals.AverageTicket, 1e-9)
	assert.InDelta(t, 30.0, totals.CostPerAcquisition, 1e-9)
	assert.InDelta(t, 10.0, totals.CostPerOrder, 1e-9)
	assert.InDelta(t, 400.0, totals.ROIPercent, 1e-9)

	require.Len(t, snapshot.DetailRows, 2)
	assert.Equal(t, "Site", snapshot.DetailRows[0].Channel, "mesmo dia ordena por canal")
	assert.Equal(t, "Social", snapshot.DetailRows[1].Channel)
}

func TestSnapshot_JanelaUltimos7Dias(t *testing.T) {
	// Dias 1 a 10: a janela deve cobrir exatamente os dias 4 a 10
	var sales []*domain.SalesRecord
	for dd := 1; dd <= 10; dd++ {
		sales = append(sales, salesRecord(day(dd), "Site", 1, 10))
	}

	service := loadedService(testConfig(), sales, nil)

	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodLast7Days})
	require.NoError(t, err)

	require.Len(t, snapshot.DailySeries, 7)
	assert.Equal(t, utils.DayKey(day(4)), snapshot.DailySeries[0].DateKey)
	assert.Equal(t, utils.DayKey(day(10)), snapshot.DailySeries[6].DateKey)

	require.NotNil(t, snapshot.Filters.StartDate)
	require.NotNil(t, snapshot.Filters.EndDate)
	assert.True(t, utils.StartOfDay(day(4)).Equal(*snapshot.Filters.StartDate))
	assert.True(t, utils.EndOfDay(day(10)).Equal(*snapshot.Filters.EndDate))
}

func TestSnapshot_JanelaUltimos7DiasAncoraNoInvestimento(t *testing.T) {
	// Sem vendas, a âncora da janela vem do feed de investimento
	investments := []*domain.InvestmentRecord{
		investmentRecord(day(5), 10, 0),
		investmentRecord(day(9), 20, 0),
	}

	service := loadedService(testConfig(), nil, investments)

	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodLast7Days})
	require.NoError(t, err)

	require.NotNil(t, snapshot.Filters.EndDate)
	assert.True(t, utils.EndOfDay(day(9)).Equal(*snapshot.Filters.EndDate))
	assert.True(t, utils.StartOfDay(day(3)).Equal(*snapshot.Filters.StartDate))
}

func TestSnapshot_IntervaloIlimitado(t *testing.T) {
	sales := []*domain.SalesRecord{
		salesRecord(day(1), "Site", 1, 10),
		salesRecord(day(30), "Site", 1, 20),
	}

	service := loadedService(testConfig(), sales, nil)

	// Período custom sem datas: tudo passa
	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodCustom})
	require.NoError(t, err)
	assert.Len(t, snapshot.DailySeries, 2)
}

func TestSnapshot_DistribuicaoNuncaTemFatiaZero(t *testing.T) {
	sales := []*domain.SalesRecord{
		salesRecord(day(11), "Site", 2, 100),
		salesRecord(day(12), "Social", 1, 50),
	}

	service := loadedService(testConfig(), sales, nil)

	// Intervalo cobre apenas o dia 11: Social fica de fora e Marketplace
	// nunca teve registro
	start, end := dateRange(day(11), day(11))
	snapshot, err := service.Snapshot(&domain.DashboardFilters{
		Period:    domain.PeriodCustom,
		StartDate: start,
		EndDate:   end,
		Channels:  []string{"Site", "Social", "Marketplace"},
	})
	require.NoError(t, err)

	require.Len(t, snapshot.RevenueByChannel, 1)
	assert.Equal(t, "Site", snapshot.RevenueByChannel[0].Channel)
	assert.InDelta(t, 100.0, snapshot.RevenueByChannel[0].Value, 1e-9)

	require.Len(t, snapshot.OrdersByChannel, 1)
	assert.Equal(t, "Site", snapshot.OrdersByChannel[0].Channel)
	assert.InDelta(t, 2.0, snapshot.OrdersByChannel[0].Value, 1e-9)
}

func TestSnapshot_CanalForaDaSelecaoNaoContaNosTotais(t *testing.T) {
	sales := []*domain.SalesRecord{
		salesRecord(day(11), "Site", 2, 100),
		salesRecord(day(11), "WhatsApp", 5, 500), // canal fora da lista canônica
	}

	service := loadedService(testConfig(), sales, nil)

	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodCustom})
	require.NoError(t, err)

	// A seleção padrão só contém canais canônicos, então o canal
	// desconhecido desaparece das visões filtradas
	assert.InDelta(t, 100.0, snapshot.Totals.TotalRevenue, 1e-9)
	assert.Equal(t, 2, snapshot.Totals.TotalOrders)

	// Informando o canal explicitamente ele volta a contar
	snapshot, err = service.Snapshot(&domain.DashboardFilters{
		Period:   domain.PeriodCustom,
		Channels: []string{"WhatsApp"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 500.0, snapshot.Totals.TotalRevenue, 1e-9)
}

func TestSnapshot_DiaPresenteEmUmSoFeed(t *testing.T) {
	sales := []*domain.SalesRecord{
		salesRecord(day(11), "Site", 1, 100),
	}
	investments := []*domain.InvestmentRecord{
		investmentRecord(day(12), 40, 0),
	}

	service := loadedService(testConfig(), sales, investments)

	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodCustom})
	require.NoError(t, err)

	require.Len(t, snapshot.DailySeries, 2)

	assert.InDelta(t, 100.0, snapshot.DailySeries[0].Revenue, 1e-9)
	assert.Zero(t, snapshot.DailySeries[0].TotalSpend)

	assert.Zero(t, snapshot.DailySeries[1].Revenue)
	assert.InDelta(t, 40.0, snapshot.DailySeries[1].TotalSpend, 1e-9)
}

func TestToggleChannel(t *testing.T) {
	service := loadedService(testConfig(), []*domain.SalesRecord{
		salesRecord(day(11), "Site", 1, 10),
		salesRecord(day(11), "Social", 1, 10),
	}, nil)

	require.ElementsMatch(t, []string{"Site", "Social"}, service.SelectedChannels())

	assert.True(t, service.ToggleChannel("Site"))
	assert.Equal(t, []string{"Social"}, service.SelectedChannels())

	assert.False(t, service.ToggleChannel("Social"), "último canal selecionado não pode ser removido")
	assert.Equal(t, []string{"Social"}, service.SelectedChannels())

	assert.Equal(t, testConfig().Dashboard.CanonicalChannels, service.ResetChannels())
}

func TestReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := mocks.NewMockSheetsIntegrator(ctrl)

	cfg := testConfig()
	service := NewService(cfg, mockSheets, normalizing.NewService(cfg))

	consolidated := []domain.RawRow{
		rawRow("Data", "11/11/2025", "Canal", "site", "Pedidos", "2", "Faturamento", "100,00"),
		rawRow("Data", "11/11/2025", "Canal", "Social", "Pedidos", "1", "Faturamento", "50,00"),
		rawRow("Data", "inválida", "Canal", "Site", "Pedidos", "9", "Faturamento", "999,00"),
	}
	investment := []domain.RawRow{
		rawRow("Data", "11/11/2025", "Investimento Total", "30,00", "Clientes Novos", "1"),
	}

	mockSheets.EXPECT().FetchConsolidated(gomock.Any()).Return(consolidated, nil)
	mockSheets.EXPECT().FetchInvestment(gomock.Any()).Return(investment, nil)

	err := service.Reload(context.Background())
	require.NoError(t, err)

	assert.True(t, service.HasData())
	assert.False(t, service.LastReloadAt().IsZero())

	// A linha com data inválida foi descartada e a seleção padrão veio da
	// interseção (sem diferenciar maiúsculas) com a lista canônica
	assert.Equal(t, []string{"Site", "Social"}, service.SelectedChannels())

	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodCustom})
	require.NoError(t, err)
	assert.InDelta(t, 150.0, snapshot.Totals.TotalRevenue, 1e-9)
	assert.Equal(t, 3, snapshot.Totals.TotalOrders)
}

func TestReload_FalhaPreservaDadosAnteriores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSheets := mocks.NewMockSheetsIntegrator(ctrl)

	cfg := testConfig()
	service := NewService(cfg, mockSheets, normalizing.NewService(cfg))

	// Primeira recarga bem-sucedida
	mockSheets.EXPECT().FetchConsolidated(gomock.Any()).Return([]domain.RawRow{
		rawRow("Data", "11/11/2025", "Canal", "Site", "Pedidos", "2", "Faturamento", "100,00"),
	}, nil)
	mockSheets.EXPECT().FetchInvestment(gomock.Any()).Return([]domain.RawRow{}, nil)

	require.NoError(t, service.Reload(context.Background()))

	// Segunda recarga falha em um dos feeds
	mockSheets.EXPECT().FetchConsolidated(gomock.Any()).Return([]domain.RawRow{
		rawRow("Data", "12/11/2025", "Canal", "Site", "Pedidos", "7", "Faturamento", "700,00"),
	}, nil)
	mockSheets.EXPECT().FetchInvestment(gomock.Any()).Return(nil, errors.New("feed indisponível"))

	err := service.Reload(context.Background())
	require.Error(t, err)

	// Os dados da primeira recarga continuam visíveis
	snapshot, err := service.Snapshot(&domain.DashboardFilters{Period: domain.PeriodCustom})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, snapshot.Totals.TotalRevenue, 1e-9)
	assert.Equal(t, 2, snapshot.Totals.TotalOrders)
}
