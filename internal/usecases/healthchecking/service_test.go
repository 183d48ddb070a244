package healthchecking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googlemocks "github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads/mocks"
	metamocks "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/healthcard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	meta        *metamocks.MockIntegrator
	google      *googlemocks.MockIntegrator
	accountRepo *repomocks.MockAccountRepository
	reportRepo  *repomocks.MockReportRepository
}

func newServiceMocks(t *testing.T) *serviceMocks {
	ctrl := gomock.NewController(t)
	return &serviceMocks{
		meta:        metamocks.NewMockIntegrator(ctrl),
		google:      googlemocks.NewMockIntegrator(ctrl),
		accountRepo: repomocks.NewMockAccountRepository(ctrl),
		reportRepo:  repomocks.NewMockReportRepository(ctrl),
	}
}

func testConfig() *config.Config {
	return &config.Config{
		ReportSync: config.ReportSync{
			ReportTTLHours:      24,
			RequestDelaySeconds: 0,
			MaxConcurrentJobs:   2,
		},
	}
}

func metaAccount() *domain.Account {
	return &domain.Account{
		ID:         "abc123",
		ExternalID: "act_987",
		Name:       "Loja Exemplo",
		Platform:   domain.PlatformMeta,
		Status:     domain.AccountStatusActive,
	}
}

func TestGetReport(t *testing.T) {
	t.Run("Identificador vazio é rejeitado", func(t *testing.T) {
		m := newServiceMocks(t)
		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		_, err := service.GetReport("", false)

		var reportErr *ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Conta inexistente retorna erro com o identificador", func(t *testing.T) {
		m := newServiceMocks(t)
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(nil, nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		_, err := service.GetReport("abc123", false)

		var reportErr *ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Equal(t, "abc123", reportErr.AccountID)
	})

	t.Run("Falha no banco ao buscar a conta", func(t *testing.T) {
		m := newServiceMocks(t)
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(nil, errors.New("connection refused"))

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		_, err := service.GetReport("abc123", false)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})

	t.Run("Relatório em cache dentro do TTL é reaproveitado sem nova coleta", func(t *testing.T) {
		m := newServiceMocks(t)
		cached := &domain.Report{
			AccountID:   "abc123",
			Platform:    domain.PlatformMeta,
			GeneratedAt: time.Now().UTC().Add(-1 * time.Hour),
			HealthScore: 80,
		}
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(metaAccount(), nil)
		m.reportRepo.EXPECT().GetLatestByAccountID("abc123").Return(cached, nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo).WithCache(m.reportRepo)

		report, err := service.GetReport("abc123", false)

		require.NoError(t, err)
		assert.Equal(t, cached, report)
	})

	t.Run("Relatório vencido dispara nova coleta e persiste o resultado", func(t *testing.T) {
		m := newServiceMocks(t)
		stale := &domain.Report{
			AccountID:   "abc123",
			GeneratedAt: time.Now().UTC().Add(-48 * time.Hour),
		}
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(metaAccount(), nil)
		m.reportRepo.EXPECT().GetLatestByAccountID("abc123").Return(stale, nil)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)
		m.reportRepo.EXPECT().Save(gomock.Any(), "abc123", gomock.Any()).Return(nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo).WithCache(m.reportRepo)

		report, err := service.GetReport("abc123", false)

		require.NoError(t, err)
		assert.Len(t, report.Results, 18)
		assert.Equal(t, domain.PlatformMeta, report.Platform)
	})

	t.Run("Refresh força nova coleta mesmo com cache habilitado", func(t *testing.T) {
		m := newServiceMocks(t)
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(metaAccount(), nil)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)
		m.reportRepo.EXPECT().Save(gomock.Any(), "abc123", gomock.Any()).Return(nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo).WithCache(m.reportRepo)

		_, err := service.GetReport("abc123", true)

		require.NoError(t, err)
	})

	t.Run("Sem cache o relatório é gerado e não persistido", func(t *testing.T) {
		m := newServiceMocks(t)
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(metaAccount(), nil)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		report, err := service.GetReport("abc123", false)

		require.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("Falha ao persistir o relatório é propagada", func(t *testing.T) {
		m := newServiceMocks(t)
		m.accountRepo.EXPECT().GetAccountByID("abc123").Return(metaAccount(), nil)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)
		m.reportRepo.EXPECT().Save(gomock.Any(), "abc123", gomock.Any()).Return(errors.New("insert failed"))

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo).WithCache(m.reportRepo)

		_, err := service.GetReport("abc123", true)

		assert.ErrorIs(t, err, ErrSaveReport)
	})
}

func TestGenerateReport(t *testing.T) {
	t.Run("Conta Google usa o catálogo Google", func(t *testing.T) {
		m := newServiceMocks(t)
		account := &domain.Account{
			ID:         "g1",
			ExternalID: "1234567890",
			Name:       "Conta Google",
			Platform:   domain.PlatformGoogle,
		}
		m.google.EXPECT().AccountSnapshot("1234567890").Return(&domain.GoogleSnapshot{CustomerID: "1234567890"}, nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		report, err := service.GenerateReport(account)

		require.NoError(t, err)
		assert.Len(t, report.Results, 31)
		assert.Equal(t, domain.PlatformGoogle, report.Platform)
	})

	t.Run("Apelido da conta prevalece sobre o nome no relatório", func(t *testing.T) {
		m := newServiceMocks(t)
		account := metaAccount()
		nickname := "Loja SP"
		account.Nickname = &nickname
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		report, err := service.GenerateReport(account)

		require.NoError(t, err)
		assert.Equal(t, "Loja SP", report.AccountName)
	})

	t.Run("Falha na integração Meta vira erro de serviço externo", func(t *testing.T) {
		m := newServiceMocks(t)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(nil, errors.New("rate limited"))

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		_, err := service.GenerateReport(metaAccount())

		assert.ErrorIs(t, err, ErrMetaIntegration)
	})

	t.Run("Plataforma desconhecida é rejeitada", func(t *testing.T) {
		m := newServiceMocks(t)
		account := metaAccount()
		account.Platform = domain.Platform("tiktok")

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		_, err := service.GenerateReport(account)

		assert.ErrorIs(t, err, ErrUnknownPlatform)
	})
}

func TestSyncReports(t *testing.T) {
	t.Run("Conta com falha não interrompe a sincronização das demais", func(t *testing.T) {
		m := newServiceMocks(t)
		healthy := metaAccount()
		broken := &domain.Account{
			ID:         "def456",
			ExternalID: "act_000",
			Name:       "Conta Quebrada",
			Platform:   domain.PlatformMeta,
			Status:     domain.AccountStatusActive,
		}
		m.accountRepo.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return([]*domain.Account{healthy, broken}, nil)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)
		m.meta.EXPECT().AccountSnapshot("act_000").Return(nil, errors.New("token expired"))
		m.reportRepo.EXPECT().Save(gomock.Any(), "abc123", gomock.Any()).Return(nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo).WithCache(m.reportRepo)

		response, err := service.SyncReports()

		require.NoError(t, err)
		assert.Equal(t, 1, response.Quantity)
		assert.False(t, response.Error)
		assert.Contains(t, response.Message, "1 contas com falha")
	})

	t.Run("Conta sem external_id é pulada sem contar como falha", func(t *testing.T) {
		m := newServiceMocks(t)
		incomplete := &domain.Account{
			ID:       "ghi789",
			Name:     "Conta Sem Vínculo",
			Platform: domain.PlatformMeta,
			Status:   domain.AccountStatusActive,
		}
		m.accountRepo.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return([]*domain.Account{incomplete, metaAccount()}, nil)
		m.meta.EXPECT().AccountSnapshot("act_987").Return(&domain.MetaSnapshot{AccountID: "act_987"}, nil)
		m.reportRepo.EXPECT().Save(gomock.Any(), "abc123", gomock.Any()).Return(nil)

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo).WithCache(m.reportRepo)

		response, err := service.SyncReports()

		require.NoError(t, err)
		assert.Equal(t, 1, response.Quantity)
		assert.False(t, response.Error)
		assert.NotContains(t, response.Message, "falha")
	})

	t.Run("Falha ao listar as contas retorna erro", func(t *testing.T) {
		m := newServiceMocks(t)
		m.accountRepo.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return(nil, errors.New("connection refused"))

		service := NewService(testConfig(), m.meta, m.google, m.accountRepo)

		response, err := service.SyncReports()

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.True(t, response.Error)
	})
}
