package account

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/healthcard-api/infrastructure/repository"
	"github.com/vfg2006/healthcard-api/internal/domain"
	"github.com/vfg2006/healthcard-api/pkg/apiErrors"
	"github.com/vfg2006/healthcard-api/pkg/utils"
)

type AccountService interface {
	UpdateAccount(request *domain.UpdateAccountRequest) (*domain.Account, error)
	ListAdAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error)
	SyncAccounts() (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	metaService       meta.Integrator
	googleService     googleads.Integrator
}

func NewService(
	accountRepository repository.AccountRepository,
	metaService meta.Integrator,
	googleService googleads.Integrator,
) AccountService {
	return &Service{
		accountRepository: accountRepository,
		metaService:       metaService,
		googleService:     googleService,
	}
}

func (s *Service) ListAdAccounts(availableStatus []domain.AccountStatus) ([]*domain.AccountResponse, error) {
	accounts, err := s.accountRepository.ListAccounts(availableStatus)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// Transforma os accounts para o formato de resposta da API
	accountsResponse := make([]*domain.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		accountsResponse = append(accountsResponse, &domain.AccountResponse{
			ID:         account.ID,
			ExternalID: account.ExternalID,
			Name:       account.Name,
			Nickname:   account.Nickname,
			Platform:   account.Platform,
			Status:     account.Status,
		})
	}

	return accountsResponse, nil
}

// SyncAccounts importa as contas de anúncio das duas plataformas,
// criando apenas as que ainda não existem no banco
func (s *Service) SyncAccounts() (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
	}

	metaAccounts, err := s.metaService.ListAdAccounts()
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator meta:", err)
		return response, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}

	googleAccounts, err := s.googleService.ListAdAccounts()
	if err != nil {
		logrus.Error("Error getting ad accounts from integrator googleads:", err)
		return response, NewAccountError(ErrGoogleIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Google Ads")
	}

	existingAccounts, err := s.accountRepository.ListAccountsMap()
	if err != nil {
		logrus.WithField("error", err).Error("Error getting ad accounts from database")
		return response, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	accountsToCreate := make([]*domain.Account, 0)
	for _, acc := range append(metaAccounts, googleAccounts...) {
		compositeKey := fmt.Sprintf("%s:%s", acc.Platform, acc.ExternalID)

		if _, exists := existingAccounts[compositeKey]; exists {
			continue
		}

		accountID, err := utils.GenerateID()
		if err != nil {
			return response, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
		}

		acc.ID = accountID
		acc.Status = domain.AccountStatusActive

		accountsToCreate = append(accountsToCreate, acc)
	}

	if len(accountsToCreate) > 0 {
		if err := s.accountRepository.SaveOrUpdate(accountsToCreate); err != nil {
			return response, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
		}
	}

	quantity := len(accountsToCreate)

	logrus.Infof("%d accounts were successfully synced", quantity)

	response.Quantity = quantity
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", quantity)
	response.Error = false

	return response, nil
}

func (s *Service) UpdateAccount(request *domain.UpdateAccountRequest) (*domain.Account, error) {
	if request.ID == "" {
		return nil, ErrAccountIDRequired
	}

	// Busca a conta para verificar se existe
	account, err := s.accountRepository.GetAccountByID(request.ID)
	if err != nil {
		logrus.Error("Error getting account by id on the repository:", err)
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta no banco de dados")
	}

	if account == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrInvalidRequest, request.ID, "Conta não encontrada")
	}

	// Atualiza a conta no repositório
	if err := s.accountRepository.UpdateAccount(request); err != nil {
		logrus.Error("Error updating account on the repository:", err)
		return nil, NewAccountErrorWithID(ErrUpdateAccount, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar conta no banco de dados")
	}

	if request.Nickname != nil {
		account.Nickname = request.Nickname
	}
	if request.Status != nil {
		account.Status = domain.AccountStatus(*request.Status)
	}

	return account, nil
}
