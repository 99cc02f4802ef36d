package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

// Dashboarder é o contrato consumido pelos handlers HTTP: recarga dos
// feeds, snapshot derivado e mutações da seleção de canais.
type Dashboarder interface {
	// Reload busca os dois feeds, normaliza e substitui os conjuntos de
	// registros por inteiro. Falha em qualquer feed aborta a recarga e
	// preserva os dados anteriores.
	Reload(ctx context.Context) error

	// Snapshot recalcula todas as visões derivadas a partir dos registros
	// correntes e dos filtros informados.
	Snapshot(filters *domain.DashboardFilters) (*domain.DashboardSnapshot, error)

	CanonicalChannels() []string
	SelectedChannels() []string

	// ToggleChannel alterna um canal canônico; retorna false quando nada
	// mudou (canal desconhecido ou tentativa de esvaziar a seleção).
	ToggleChannel(channel string) bool

	// ResetChannels volta a seleção para a lista canônica completa.
	ResetChannels() []string

	HasData() bool
	LastReloadAt() time.Time
}
