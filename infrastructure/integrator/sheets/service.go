package sheets

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_integrator.go -package=mocks

// SheetsIntegrator expõe os dois feeds CSV do dashboard.
type SheetsIntegrator interface {
	FetchConsolidated(ctx context.Context) ([]domain.RawRow, error)
	FetchInvestment(ctx context.Context) ([]domain.RawRow, error)
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchConsolidated busca as linhas brutas do feed consolidado de vendas.
func (s *SheetsService) FetchConsolidated(ctx context.Context) ([]domain.RawRow, error) {
	if s.cfg.Feeds.ConsolidatedCSVURL == "" {
		return nil, errors.New("URL do feed consolidado não configurada")
	}

	return s.Client.FetchRows(ctx, s.cfg.Feeds.ConsolidatedCSVURL)
}

// FetchInvestment busca as linhas brutas do feed de investimento em mídia.
func (s *SheetsService) FetchInvestment(ctx context.Context) ([]domain.RawRow, error) {
	if s.cfg.Feeds.InvestmentCSVURL == "" {
		return nil, errors.New("URL do feed de investimento não configurada")
	}

	return s.Client.FetchRows(ctx, s.cfg.Feeds.InvestmentCSVURL)
}
