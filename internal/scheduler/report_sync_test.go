package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/healthcard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/domain"
	healthmocks "github.com/vfg2006/healthcard-api/internal/usecases/healthchecking/mocks"
	"go.uber.org/mock/gomock"
)

func schedulerConfig() *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			CronSchedule:        "0 3 * * *",
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
			Enabled:             true,
		},
	}
}

func TestSyncAllReports(t *testing.T) {
	t.Run("Delegação para o caso de uso e limpeza do histórico antigo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reportRepo := repomocks.NewMockReportRepository(ctrl)
		healthService := healthmocks.NewMockHealthChecker(ctrl)

		healthService.EXPECT().SyncReports().Return(&domain.SyncReportsResponse{
			Quantity: 2,
			Message:  "2 relatórios foram sincronizados com sucesso",
		}, nil)
		reportRepo.EXPECT().DeleteOlderThan(reportRetentionDays).Return(int64(3), nil)

		service := NewReportSyncService(reportRepo, healthService, schedulerConfig())
		service.syncAllReports()

		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha na sincronização não dispara a limpeza", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reportRepo := repomocks.NewMockReportRepository(ctrl)
		healthService := healthmocks.NewMockHealthChecker(ctrl)

		healthService.EXPECT().SyncReports().Return(nil, errors.New("connection refused"))

		service := NewReportSyncService(reportRepo, healthService, schedulerConfig())
		service.syncAllReports()

		assert.True(t, service.lastSyncCompletedAt.IsZero())
	})

	t.Run("Falha na limpeza não impede a conclusão da sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reportRepo := repomocks.NewMockReportRepository(ctrl)
		healthService := healthmocks.NewMockHealthChecker(ctrl)

		healthService.EXPECT().SyncReports().Return(&domain.SyncReportsResponse{Quantity: 1}, nil)
		reportRepo.EXPECT().DeleteOlderThan(reportRetentionDays).Return(int64(0), errors.New("deadlock detected"))

		service := NewReportSyncService(reportRepo, healthService, schedulerConfig())
		service.syncAllReports()

		assert.False(t, service.lastSyncCompletedAt.IsZero())
	})
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewReportSyncService(
		repomocks.NewMockReportRepository(ctrl),
		healthmocks.NewMockHealthChecker(ctrl),
		schedulerConfig(),
	)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, reportRetentionDays, status["retention_days"])
}
