package normalizing

import (
	"math"
	"strings"

	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
	"github.com/vfg2006/performance-dashboard-api/pkg/utils"
)

// Listas de nomes lógicos aceitos para cada campo dos feeds. A ordem define
// a prioridade na resolução.
var (
	dateCandidates    = []string{"data", "dia", "date"}
	channelCandidates = []string{"canal", "channel", "origem", "fonte"}
	orderCandidates   = []string{"pedidos", "orders", "qtd_pedidos", "qtd pedidos"}
	revenueCandidates = []string{"faturamento", "receita", "revenue", "vendas", "valor"}

	spendCandidates = []string{
		"investimento_total",
		"investimento total",
		"investimento",
		"midia",
		"gasto",
		"spend",
	}
	newCustomerCandidates = []string{
		"clientes_novos",
		"clientes novos",
		"novos_clientes",
		"new_customers",
		"clientes",
	}
)

// Service transforma linhas brutas dos CSVs em registros tipados. Toda a
// tolerância a dados frouxos (nomes de coluna, formatos localizados) fica
// concentrada aqui; depois da normalização os registros são imutáveis.
type Service struct {
	reportYear int
}

func NewService(cfg *config.Config) *Service {
	year := cfg.Dashboard.ReportYear
	if year == 0 {
		year = 2025
	}

	return &Service{reportYear: year}
}

// NormalizeSalesRows converte as linhas do feed consolidado em registros de
// venda. Linhas sem data interpretável ou sem canal são descartadas
// silenciosamente; os totais do dashboard simplesmente não as incluem.
func (s *Service) NormalizeSalesRows(rows []domain.RawRow) []*domain.SalesRecord {
	records := make([]*domain.SalesRecord, 0, len(rows))

	for _, row := range rows {
		rawDate, _ := ResolveField(row, dateCandidates)
		rawChannel, _ := ResolveField(row, channelCandidates)
		rawOrders, _ := ResolveField(row, orderCandidates)
		rawRevenue, _ := ResolveField(row, revenueCandidates)

		date := utils.ParseFlexibleDate(rawDate, s.reportYear)
		channel := strings.TrimSpace(rawChannel)

		if date == nil || channel == "" {
			continue
		}

		day := utils.StartOfDay(*date)

		records = append(records, &domain.SalesRecord{
			Date:       day,
			DateKey:    utils.DayKey(day),
			DateLabel:  utils.FormatShortBR(day),
			DateFull:   utils.FormatDateBR(day),
			Channel:    channel,
			OrderCount: int(math.Round(utils.ParseLocalizedNumber(rawOrders))),
			Revenue:    utils.ParseLocalizedNumber(rawRevenue),
		})
	}

	return records
}

// NormalizeInvestmentRows converte as linhas do feed de investimento.
// Somente a data é obrigatória: gasto e clientes novos ausentes degradam
// para zero, de modo que a linha ainda contribui para os somatórios (o CAC
// do período fica 0 via divisão segura quando não há clientes novos).
func (s *Service) NormalizeInvestmentRows(rows []domain.RawRow) []*domain.InvestmentRecord {
	records := make([]*domain.InvestmentRecord, 0, len(rows))

	for _, row := range rows {
		rawDate, _ := ResolveField(row, dateCandidates)
		rawSpend, _ := ResolveField(row, spendCandidates)
		rawNewCustomers, _ := ResolveField(row, newCustomerCandidates)

		date := utils.ParseFlexibleDate(rawDate, s.reportYear)
		if date == nil {
			continue
		}

		day := utils.StartOfDay(*date)

		records = append(records, &domain.InvestmentRecord{
			Date:         day,
			DateKey:      utils.DayKey(day),
			DateLabel:    utils.FormatShortBR(day),
			TotalSpend:   utils.ParseLocalizedNumber(rawSpend),
			NewCustomers: int(math.Round(utils.ParseLocalizedNumber(rawNewCustomers))),
		})
	}

	return records
}
