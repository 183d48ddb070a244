package healthchecking

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/healthcard-api/infrastructure/repository"
	checksgoogle "github.com/vfg2006/healthcard-api/internal/checks/google"
	checksmeta "github.com/vfg2006/healthcard-api/internal/checks/meta"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/domain"
	"github.com/vfg2006/healthcard-api/pkg/apiErrors"
	"github.com/vfg2006/healthcard-api/pkg/utils"
)

type Service struct {
	cfg               *config.Config
	metaService       meta.Integrator
	googleService     googleads.Integrator
	accountRepository repository.AccountRepository
	reportRepository  repository.ReportRepository
	useCache          bool
}

func NewService(
	cfg *config.Config,
	metaService meta.Integrator,
	googleService googleads.Integrator,
	accountRepository repository.AccountRepository,
) *Service {
	return &Service{
		cfg:               cfg,
		metaService:       metaService,
		googleService:     googleService,
		accountRepository: accountRepository,
	}
}

// WithCache habilita a persistência dos relatórios: consultas passam a
// reutilizar o relatório mais recente dentro do TTL configurado
func (s *Service) WithCache(reportRepository repository.ReportRepository) *Service {
	s.reportRepository = reportRepository
	s.useCache = true

	return s
}

// GetReport retorna o relatório de saúde da conta. Com cache habilitado e
// refresh falso, um relatório dentro do TTL é reaproveitado sem nova coleta
func (s *Service) GetReport(accountID string, refresh bool) (*domain.Report, error) {
	if accountID == "" {
		return nil, NewReportError(ErrAccountIDRequired, apiErrors.ErrInvalidRequest, "O identificador da conta é obrigatório")
	}

	account, err := s.accountRepository.GetAccountByID(accountID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewReportErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, accountID, "Conta não encontrada")
	}

	if s.useCache && !refresh {
		report, err := s.cachedReport(account.ID)
		if err != nil {
			return nil, err
		}

		if report != nil {
			return report, nil
		}
	}

	report, err := s.GenerateReport(account)
	if err != nil {
		return nil, err
	}

	if s.useCache {
		if err := s.saveReport(account.ID, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// GenerateReport coleta o snapshot da plataforma da conta e executa o
// catálogo completo de verificações sobre ele
func (s *Service) GenerateReport(account *domain.Account) (*domain.Report, error) {
	var results []domain.CheckResult

	switch account.Platform {
	case domain.PlatformMeta:
		snapshot, err := s.metaService.AccountSnapshot(account.ExternalID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err,
			}).Error("Error collecting Meta snapshot")
			return nil, NewReportErrorWithID(ErrMetaIntegration, apiErrors.ErrExternalService, account.ID, err.Error())
		}

		results = checksmeta.RunAll(snapshot)
	case domain.PlatformGoogle:
		snapshot, err := s.googleService.AccountSnapshot(account.ExternalID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err,
			}).Error("Error collecting Google Ads snapshot")
			return nil, NewReportErrorWithID(ErrGoogleIntegration, apiErrors.ErrExternalService, account.ID, err.Error())
		}

		results = checksgoogle.RunAll(snapshot)
	default:
		return nil, NewReportErrorWithID(ErrUnknownPlatform, apiErrors.ErrInvalidRequest, account.ID, fmt.Sprintf("Plataforma desconhecida: %s", account.Platform))
	}

	report := &domain.Report{
		AccountID:   account.ID,
		AccountName: accountDisplayName(account),
		Platform:    account.Platform,
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		HealthScore: domain.CalculateHealthScore(results),
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"platform":     account.Platform,
		"checks":       len(results),
		"health_score": report.HealthScore,
	}).Info("Health report generated")

	return report, nil
}

// SyncReports gera e persiste relatórios para todas as contas ativas com um
// número limitado de workers concorrentes, respeitando o intervalo
// configurado entre requisições para não sobrecarregar as APIs das plataformas
func (s *Service) SyncReports() (*domain.SyncReportsResponse, error) {
	response := &domain.SyncReportsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar relatórios",
		Error:    true,
	}

	accounts, err := s.accountRepository.ListAccounts([]domain.AccountStatus{domain.AccountStatusActive})
	if err != nil {
		logrus.WithField("error", err).Error("Error getting active accounts from database")
		return response, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar contas ativas no banco de dados")
	}

	delay := time.Duration(s.cfg.ReportSync.RequestDelaySeconds) * time.Second

	maxWorkers := s.cfg.ReportSync.MaxConcurrentJobs
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var generated, failed int

	for _, account := range accounts {
		if account.ExternalID == "" {
			logrus.WithField("account_id", account.ID).Warn("Conta sem external_id. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(acc *domain.Account) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			err := s.syncAccountReport(acc)

			mu.Lock()
			if err != nil {
				failed++
			} else {
				generated++
			}
			mu.Unlock()

			// Aguardar antes de liberar o worker para a próxima conta
			if delay > 0 {
				time.Sleep(delay)
			}
		}(account)
	}

	wg.Wait()

	logrus.Infof("%d reports were successfully synced, %d failed", generated, failed)

	response.Quantity = generated
	response.Message = fmt.Sprintf("%d relatórios foram sincronizados com sucesso", generated)
	response.Error = false

	if failed > 0 {
		response.Message = fmt.Sprintf("%d relatórios sincronizados, %d contas com falha", generated, failed)
	}

	return response, nil
}

// syncAccountReport gera e persiste o relatório de uma conta durante a
// sincronização
func (s *Service) syncAccountReport(account *domain.Account) error {
	report, err := s.GenerateReport(account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"external_id": account.ExternalID,
			"error":       err,
		}).Warn("Skipping account after report generation failure")
		return err
	}

	if s.useCache {
		if err := s.saveReport(account.ID, report); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": account.ID,
				"error":      err,
			}).Warn("Skipping account after report persistence failure")
			return err
		}
	}

	logrus.WithFields(logrus.Fields{
		"account_id":   account.ID,
		"external_id":  account.ExternalID,
		"health_score": report.HealthScore,
		"checks":       len(report.Results),
	}).Info("Relatório de saúde gerado com sucesso para conta")

	return nil
}

// cachedReport retorna o relatório mais recente da conta quando ainda está
// dentro do TTL, ou nil quando uma nova coleta é necessária
func (s *Service) cachedReport(accountID string) (*domain.Report, error) {
	report, err := s.reportRepository.GetLatestByAccountID(accountID)
	if err != nil {
		logrus.Error("Error getting latest report on the repository:", err)
		return nil, NewReportErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar relatório no banco de dados")
	}

	if report == nil {
		return nil, nil
	}

	ttl := time.Duration(s.cfg.ReportSync.ReportTTLHours) * time.Hour
	if time.Since(report.GeneratedAt) > ttl {
		return nil, nil
	}

	return report, nil
}

func (s *Service) saveReport(accountID string, report *domain.Report) error {
	reportID, err := utils.GenerateID()
	if err != nil {
		return NewReportErrorWithID(ErrGenerateID, apiErrors.ErrInternalServer, accountID, "Falha ao gerar identificador único para relatório")
	}

	if err := s.reportRepository.Save(reportID, accountID, report); err != nil {
		logrus.Error("Error saving report on the repository:", err)
		return NewReportErrorWithID(ErrSaveReport, apiErrors.ErrDatabaseOperation, accountID, "Falha ao salvar relatório no banco de dados")
	}

	return nil
}

func accountDisplayName(account *domain.Account) string {
	if account.Nickname != nil && *account.Nickname != "" {
		return *account.Nickname
	}
	return account.Name
}
