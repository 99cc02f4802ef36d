package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/performance-dashboard-api/internal/config"
	"github.com/vfg2006/performance-dashboard-api/internal/usecases/dashboarding"
)

// FeedRefreshConfig representa a configuração do agendador de recarga dos feeds
type FeedRefreshConfig struct {
	CronSchedule   string
	RefreshEnabled bool
}

// FeedRefreshService gerencia o agendamento e execução da recarga periódica
// dos feeds do dashboard
type FeedRefreshService struct {
	scheduler              *gocron.Scheduler
	config                 FeedRefreshConfig
	dashboardService       dashboarding.Dashboarder
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastRefreshError       string
}

// NewFeedRefreshService cria uma nova instância do serviço de recarga dos feeds
func NewFeedRefreshService(
	dashboardService dashboarding.Dashboarder,
	appConfig *config.Config,
) *FeedRefreshService {
	refreshConfig := FeedRefreshConfig{
		CronSchedule:   appConfig.FeedRefresh.CronSchedule,
		RefreshEnabled: appConfig.FeedRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.RefreshEnabled,
	}).Info("Configuração do agendador de recarga dos feeds carregada")

	return &FeedRefreshService{
		scheduler:        scheduler,
		config:           refreshConfig,
		dashboardService: dashboardService,
		refreshRunning:   false,
	}
}

// Start inicia o agendador
func (s *FeedRefreshService) Start(ctx context.Context) error {
	if !s.config.RefreshEnabled {
		logrus.Info("Recarga periódica dos feeds desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga dos feeds")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshFeeds(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga dos feeds: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga dos feeds")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshFeeds executa uma recarga completa dos feeds, ignorando a chamada
// quando outra recarga ainda está em andamento
func (s *FeedRefreshService) refreshFeeds(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga dos feeds já em andamento, ignorando")
		return
	}
	s.refreshRunning = true
	s.refreshMutex.Unlock()

	startTime := time.Now()
	s.lastRefreshStartedAt = startTime

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Iniciando recarga agendada dos feeds do dashboard")

	if err := s.dashboardService.Reload(ctx); err != nil {
		s.lastRefreshError = err.Error()
		logrus.WithError(err).Error("Erro na recarga agendada dos feeds")
		return
	}

	s.lastRefreshError = ""
	s.lastRefreshCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Recarga agendada dos feeds concluída")
}

// TriggerManualRefresh inicia manualmente uma recarga dos feeds
func (s *FeedRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Recarga dos feeds já em andamento, ignorando solicitação manual")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Iniciando recarga manual dos feeds")
	go s.refreshFeeds(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *FeedRefreshService) GetStatus() map[string]any {
	return map[string]any{
		"refresh_enabled":           s.config.RefreshEnabled,
		"refresh_cron":              s.config.CronSchedule,
		"has_data":                  s.dashboardService.HasData(),
		"last_reload_at":            s.dashboardService.LastReloadAt(),
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_refresh_error":        s.lastRefreshError,
	}
}
