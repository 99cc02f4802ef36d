package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/performance-dashboard-api/pkg/utils"
)

// ErrNoData indica que nenhum recarregamento completou com sucesso ainda.
var ErrNoData = errors.New("nenhum dado carregado ainda")

// Service mantém os conjuntos de registros normalizados em memória e deriva
// os snapshots do dashboard. Os registros são substituídos por inteiro a
// cada recarga bem-sucedida; uma recarga com falha preserva os dados
// anteriores. Registros nunca são mutados após a normalização.
type Service struct {
	cfg           *config.Config
	sheetsService sheets.SheetsIntegrator
	normalizer    *normalizing.Service

	mu           sync.RWMutex
	sales        []*domain.SalesRecord
	investments  []*domain.InvestmentRecord
	selection    *domain.ChannelSelection
	lastReloadAt time.Time
	loaded       bool
}

func NewService(
	cfg *config.Config,
	sheetsService sheets.SheetsIntegrator,
	normalizer *normalizing.Service,
) *Service {
	return &Service{
		cfg:           cfg,
		sheetsService: sheetsService,
		normalizer:    normalizer,
		selection:     domain.NewChannelSelection(cfg.Dashboard.CanonicalChannels),
	}
}

// Reload busca os dois feeds em paralelo e só efetiva o resultado quando
// ambos completam. Falha em qualquer um aborta a recarga inteira: nenhum
// dado parcial é efetivado.
func (s *Service) Reload(ctx context.Context) error {
	jobID, _ := utils.GenerateID()

	logger := logrus.WithField("reload_id", jobID)
	logger.Info("Iniciando recarga dos feeds do dashboard")

	startTime := time.Now()

	var (
		consolidatedRows []domain.RawRow
		investmentRows   []domain.RawRow
		consolidatedErr  error
		investmentErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		consolidatedRows, consolidatedErr = s.sheetsService.FetchConsolidated(ctx)
	}()

	go func() {
		defer wg.Done()
		investmentRows, investmentErr = s.sheetsService.FetchInvestment(ctx)
	}()

	wg.Wait()

	if consolidatedErr != nil {
		logger.WithError(consolidatedErr).Error("Erro ao buscar o feed consolidado")
		return errors.Wrap(consolidatedErr, "feed consolidado")
	}

	if investmentErr != nil {
		logger.WithError(investmentErr).Error("Erro ao buscar o feed de investimento")
		return errors.Wrap(investmentErr, "feed de investimento")
	}

	sales := s.normalizer.NormalizeSalesRows(consolidatedRows)
	investments := s.normalizer.NormalizeInvestmentRows(investmentRows)

	defaultSelection := domain.ReconcileChannels(sales, s.cfg.Dashboard.CanonicalChannels)

	s.mu.Lock()
	s.sales = sales
	s.investments = investments
	s.selection.Replace(defaultSelection)
	s.lastReloadAt = time.Now()
	s.loaded = true
	s.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"sales_rows":         len(consolidatedRows),
		"sales_records":      len(sales),
		"investment_rows":    len(investmentRows),
		"investment_records": len(investments),
		"default_channels":   defaultSelection,
		"duration":           time.Since(startTime).String(),
	}).Info("Recarga dos feeds concluída")

	return nil
}

// Snapshot recalcula todas as visões derivadas. Filtros sem canais
// explícitos usam a seleção corrente.
func (s *Service) Snapshot(filters *domain.DashboardFilters) (*domain.DashboardSnapshot, error) {
	if filters == nil {
		filters = &domain.DashboardFilters{Period: domain.PeriodCustom}
	}

	s.mu.RLock()
	if !s.loaded {
		s.mu.RUnlock()
		return nil, ErrNoData
	}

	sales := s.sales
	investments := s.investments
	lastReloadAt := s.lastReloadAt

	channels := filters.Channels
	if len(channels) == 0 {
		channels = s.selection.Selected()
	}
	s.mu.RUnlock()

	rng := resolveRange(filters, sales, investments)

	filteredSales := filterSales(sales, rng, channelSet(channels))
	filteredInvestments := filterInvestments(investments, rng)

	snapshot := &domain.DashboardSnapshot{
		Filters: domain.AppliedFilters{
			Period:    filters.Period,
			StartDate: rng.Start,
			EndDate:   rng.End,
			Channels:  channels,
		},
		DailySeries: buildDailySeries(filteredSales, filteredInvestments),
		RevenueByChannel: buildChannelDistribution(filteredSales, channels, func(r *domain.SalesRecord) float64 {
			return r.Revenue
		}),
		OrdersByChannel: buildChannelDistribution(filteredSales, channels, func(r *domain.SalesRecord) float64 {
			return float64(r.OrderCount)
		}),
		Totals:       buildTotals(filteredSales, filteredInvestments),
		DetailRows:   buildDetailRows(filteredSales),
		LastReloadAt: lastReloadAt,
	}

	return snapshot, nil
}

func (s *Service) CanonicalChannels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Canonical()
}

func (s *Service) SelectedChannels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection.Selected()
}

// ToggleChannel alterna a seleção de um canal canônico. Desmarcar o último
// canal selecionado é no-op e retorna false.
func (s *Service) ToggleChannel(channel string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Toggle(channel)
}

func (s *Service) ResetChannels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Reset()
	return s.selection.Selected()
}

func (s *Service) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Service) LastReloadAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReloadAt
}
