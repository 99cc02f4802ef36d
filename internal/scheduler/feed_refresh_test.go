package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/domain"
)

// stubDashboarder implementa dashboarding.Dashboarder para os testes do
// agendador sem envolver os feeds reais.
type stubDashboarder struct {
	reloads   atomic.Int32
	reloadErr error
	done      chan struct{}
}

func (s *stubDashboarder) Reload(ctx context.Context) error {
	s.reloads.Add(1)
	if s.done != nil {
		close(s.done)
	}
	return s.reloadErr
}

func (s *stubDashboarder) Snapshot(filters *domain.DashboardFilters) (*domain.DashboardSnapshot, error) {
	return nil, errors.New("não usado no teste")
}

func (s *stubDashboarder) CanonicalChannels() []string       { return nil }
func (s *stubDashboarder) SelectedChannels() []string        { return nil }
func (s *stubDashboarder) ToggleChannel(channel string) bool { return false }
func (s *stubDashboarder) ResetChannels() []string           { return nil }
func (s *stubDashboarder) HasData() bool                     { return s.reloads.Load() > 0 }
func (s *stubDashboarder) LastReloadAt() time.Time           { return time.Time{} }

func testRefreshConfig(enabled bool) *config.Config {
	return &config.Config{
		FeedRefresh: config.FeedRefresh{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestStart_DesabilitadoNaoAgenda(t *testing.T) {
	dash := &stubDashboarder{}
	service := NewFeedRefreshService(dash, testRefreshConfig(false))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Zero(t, dash.reloads.Load())
}

func TestTriggerManualRefresh(t *testing.T) {
	dash := &stubDashboarder{done: make(chan struct{})}
	service := NewFeedRefreshService(dash, testRefreshConfig(false))

	service.TriggerManualRefresh()

	select {
	case <-dash.done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executou dentro do prazo")
	}

	assert.Equal(t, int32(1), dash.reloads.Load())
}

func TestRefreshFeeds_RegistraErro(t *testing.T) {
	dash := &stubDashboarder{reloadErr: errors.New("feed indisponível")}
	service := NewFeedRefreshService(dash, testRefreshConfig(true))

	service.refreshFeeds(context.Background())

	status := service.GetStatus()
	assert.Equal(t, "feed indisponível", status["last_refresh_error"])
	assert.True(t, status["last_refresh_completed_at"].(time.Time).IsZero())
}

func TestGetStatus(t *testing.T) {
	dash := &stubDashboarder{}
	service := NewFeedRefreshService(dash, testRefreshConfig(true))

	service.refreshFeeds(context.Background())

	status := service.GetStatus()
	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, "*/15 * * * *", status["refresh_cron"])
	assert.Equal(t, true, status["has_data"])
	assert.Empty(t, status["last_refresh_error"])
	assert.False(t, status["last_refresh_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
}
