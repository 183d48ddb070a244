// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/healthcard-api/infrastructure/repository"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/usecases/healthchecking"
)

// reportRetentionDays define por quantos dias o histórico de relatórios
// é mantido antes da limpeza pós-sincronização
const reportRetentionDays = 90

// ReportSyncConfig representa a configuração do agendador de relatórios
type ReportSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// ReportSyncService gerencia o agendamento e execução da geração de
// relatórios de saúde para todas as contas ativas
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	reportRepo          repository.ReportRepository
	healthService       healthchecking.HealthChecker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do serviço de sincronização de relatórios
func NewReportSyncService(
	reportRepo repository.ReportRepository,
	healthService healthchecking.HealthChecker,
	appConfig *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule:        appConfig.ReportSync.CronSchedule,
		RequestDelaySeconds: appConfig.ReportSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.ReportSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios de saúde carregada")

	return &ReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		reportRepo:    reportRepo,
		healthService: healthService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de relatórios de saúde desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de relatórios de saúde")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de relatórios de saúde: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de relatórios de saúde")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllReports gera relatórios de saúde para todas as contas ativas
func (s *ReportSyncService) syncAllReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de relatórios de saúde para todas as contas ativas")

	response, err := s.healthService.SyncReports()
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização de relatórios de saúde")
		return
	}

	s.cleanupOldReports()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"reports":  response.Quantity,
	}).Info("Sincronização de relatórios de saúde concluída")

	s.lastSyncCompletedAt = time.Now()
}

// cleanupOldReports remove execuções antigas, preservando o histórico recente
func (s *ReportSyncService) cleanupOldReports() {
	deleted, err := s.reportRepo.DeleteOlderThan(reportRetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar relatórios antigos")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":        deleted,
			"retention_days": reportRetentionDays,
		}).Info("Relatórios antigos removidos")
	}
}

// TriggerManualSync inicia manualmente uma sincronização de relatórios
func (s *ReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de relatórios de saúde")
	go s.syncAllReports()
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"retention_days":         reportRetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
