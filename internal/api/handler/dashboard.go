package handler

import (
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/performance-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/performance-dashboard-api/pkg/log"
	"github.com/vfg2006/performance-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetDashboard monta o snapshot do dashboard a partir dos filtros da query
// string: period (7d ou custom), start_date, end_date e channels (lista
// separada por vírgula).
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()

		period := domain.Period(query.Get("period"))
		if period == "" {
			period = domain.PeriodLast7Days
		}

		if period != domain.PeriodLast7Days && period != domain.PeriodCustom {
			logger.WithField("period", string(period)).Warn("dashboard: invalid period parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido. Valores aceitos: 7d, custom", nil)
			return
		}

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": query.Get("start_date"),
				"error":      err.Error(),
			}).Warn("dashboard: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida. Formato esperado: AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": query.Get("end_date"),
				"error":    err.Error(),
			}).Warn("dashboard: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida. Formato esperado: AAAA-MM-DD", nil)
			return
		}

		filters := &domain.DashboardFilters{
			Period:    period,
			StartDate: normalizeDateParam(startDate),
			EndDate:   normalizeDateParam(endDate),
			Channels:  splitChannels(query.Get("channels")),
		}

		snapshot, err := service.Snapshot(filters)
		if err != nil {
			if errors.Is(err, dashboarding.ErrNoData) {
				logger.Warn("dashboard: snapshot requested before any successful reload")
				apiErrors.WriteError(w, apiErrors.ErrNoDataLoaded, "Nenhum dado carregado ainda. Execute uma recarga dos feeds.", nil)
				return
			}

			logger.WithError(err).Error("dashboard: failed to build snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o snapshot do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ReloadDashboard dispara uma recarga síncrona dos dois feeds.
func ReloadDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: manual reload requested")

		if err := service.Reload(r.Context()); err != nil {
			logger.WithError(err).Error("dashboard: reload failed")
			apiErrors.WriteError(w, apiErrors.ErrFeedFetch, "Falha ao recarregar os feeds", err.Error())
			return
		}

		response := map[string]any{
			"message":        "Feeds recarregados com sucesso",
			"last_reload_at": service.LastReloadAt().Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

// normalizeDateParam converte o valor zero devolvido para parâmetro ausente
// em nil, que o filtro de datas trata como ponta ilimitada.
func normalizeDateParam(d *time.Time) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

func splitChannels(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	channels := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			channels = append(channels, trimmed)
		}
	}

	return channels
}
