package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/performance-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/performance-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/performance-dashboard-api/pkg/log"
)

type toggleChannelRequest struct {
	Channel string `json:"channel"`
}

// GetChannels retorna a lista canônica de canais e a seleção corrente.
func GetChannels(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"canonical": service.CanonicalChannels(),
			"selected":  service.SelectedChannels(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

// ToggleChannel alterna a seleção de um canal. Desmarcar o último canal
// selecionado não altera nada e é sinalizado em changed=false.
func ToggleChannel(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req toggleChannelRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("channels: invalid toggle request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		channel := strings.TrimSpace(req.Channel)
		if channel == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Canal não informado", nil)
			return
		}

		changed := service.ToggleChannel(channel)

		logger.WithFields(log.Fields{
			"channel": channel,
			"changed": changed,
		}).Info("channels: toggle applied")

		response := map[string]any{
			"changed":  changed,
			"selected": service.SelectedChannels(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

// ResetChannels volta a seleção para a lista canônica completa.
func ResetChannels(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		selected := service.ResetChannels()
		logger.Info("channels: selection reset to canonical list")

		response := map[string]any{
			"selected": selected,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}
