package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
)

// DatasetRefreshConfig representa a configuração do agendador de recarga das fontes
type DatasetRefreshConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// DatasetRefreshService recarrega periodicamente as fontes configuradas, mantendo o cache aquecido
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	config              DatasetRefreshConfig
	refresher           dashboarding.DatasetRefresher
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

// NewDatasetRefreshService cria uma nova instância do serviço de recarga
func NewDatasetRefreshService(refresher dashboarding.DatasetRefresher, appConfig *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule:      appConfig.DatasetRefresh.CronSchedule,
		MaxConcurrentJobs: appConfig.DatasetRefresh.MaxConcurrentJobs,
		SyncEnabled:       appConfig.DatasetRefresh.Enabled,
	}
	if refreshConfig.MaxConcurrentJobs <= 0 {
		refreshConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"sync_enabled":        refreshConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga de fontes carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada de fontes desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de fontes")

	s.ctx = ctx

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAllSources()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de fontes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de fontes")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAllSources recarrega todas as fontes; só uma execução por vez
func (s *DatasetRefreshService) refreshAllSources() {
	startTime, ok := s.claimSync()
	if !ok {
		logrus.Info("Recarga de fontes já em andamento, ignorando")
		return
	}
	s.runSync(startTime)
}

// claimSync marca a recarga como em andamento sob o lock; false se outra já foi iniciada
func (s *DatasetRefreshService) claimSync() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return s.lastSyncStartedAt, true
}

// runSync executa uma recarga já reivindicada por claimSync e libera a marcação ao final
func (s *DatasetRefreshService) runSync(startTime time.Time) {
	failures := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncFailures = failures
		s.syncMutex.Unlock()
	}()

	sources := s.refresher.Sources()
	if len(sources) == 0 {
		logrus.Info("Nenhuma fonte configurada para recarga")
		return
	}

	failures = s.processSources(sources)

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"sources":  len(sources),
		"failures": failures,
	}).Info("Recarga de fontes concluída")
}

// processSources recarrega as fontes com no máximo MaxConcurrentJobs em paralelo e retorna o número de falhas
func (s *DatasetRefreshService) processSources(sources []string) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failures := 0

	for _, source := range sources {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(source string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := s.refresher.RefreshSource(s.ctx, source); err != nil {
				logrus.WithFields(logrus.Fields{
					"source": source,
					"error":  err.Error(),
				}).Error("Erro ao recarregar fonte")

				mu.Lock()
				failures++
				mu.Unlock()
				return
			}

			logrus.WithField("source", source).Debug("Fonte recarregada")
		}(source)
	}

	wg.Wait()
	return failures
}

// TriggerManualSync inicia manualmente uma recarga; retorna false se já houver uma em andamento
func (s *DatasetRefreshService) TriggerManualSync() bool {
	startTime, ok := s.claimSync()
	if !ok {
		logrus.Info("Recarga de fontes já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual de fontes")
	go s.runSync(startTime)
	return true
}

// IsRunning indica se há uma recarga em andamento
func (s *DatasetRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"sources":                len(s.refresher.Sources()),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
