package account

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	googlemocks "github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads/mocks"
	metamocks "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/vfg2006/healthcard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/healthcard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type accountMocks struct {
	repo   *repomocks.MockAccountRepository
	meta   *metamocks.MockIntegrator
	google *googlemocks.MockIntegrator
}

func newAccountMocks(t *testing.T) *accountMocks {
	ctrl := gomock.NewController(t)
	return &accountMocks{
		repo:   repomocks.NewMockAccountRepository(ctrl),
		meta:   metamocks.NewMockIntegrator(ctrl),
		google: googlemocks.NewMockIntegrator(ctrl),
	}
}

func TestSyncAccounts(t *testing.T) {
	t.Run("Apenas contas novas são criadas", func(t *testing.T) {
		m := newAccountMocks(t)
		m.meta.EXPECT().ListAdAccounts().Return([]*domain.Account{
			{ExternalID: "act_111", Name: "Meta Nova", Platform: domain.PlatformMeta},
			{ExternalID: "act_222", Name: "Meta Existente", Platform: domain.PlatformMeta},
		}, nil)
		m.google.EXPECT().ListAdAccounts().Return([]*domain.Account{
			{ExternalID: "333", Name: "Google Nova", Platform: domain.PlatformGoogle},
		}, nil)
		m.repo.EXPECT().ListAccountsMap().Return(map[string]struct{}{
			"meta:act_222": {},
		}, nil)
		m.repo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(accounts []*domain.Account) error {
			require.Len(t, accounts, 2)
			for _, acc := range accounts {
				assert.NotEmpty(t, acc.ID)
				assert.Equal(t, domain.AccountStatusActive, acc.Status)
			}
			return nil
		})

		service := NewService(m.repo, m.meta, m.google)

		response, err := service.SyncAccounts()

		require.NoError(t, err)
		assert.Equal(t, 2, response.Quantity)
		assert.False(t, response.Error)
	})

	t.Run("Nenhuma conta nova não chama o banco para salvar", func(t *testing.T) {
		m := newAccountMocks(t)
		m.meta.EXPECT().ListAdAccounts().Return([]*domain.Account{
			{ExternalID: "act_111", Name: "Meta", Platform: domain.PlatformMeta},
		}, nil)
		m.google.EXPECT().ListAdAccounts().Return(nil, nil)
		m.repo.EXPECT().ListAccountsMap().Return(map[string]struct{}{
			"meta:act_111": {},
		}, nil)

		service := NewService(m.repo, m.meta, m.google)

		response, err := service.SyncAccounts()

		require.NoError(t, err)
		assert.Equal(t, 0, response.Quantity)
	})

	t.Run("Falha na API do Meta interrompe a sincronização", func(t *testing.T) {
		m := newAccountMocks(t)
		m.meta.EXPECT().ListAdAccounts().Return(nil, errors.New("rate limited"))

		service := NewService(m.repo, m.meta, m.google)

		response, err := service.SyncAccounts()

		assert.ErrorIs(t, err, ErrMetaIntegration)
		assert.True(t, response.Error)
	})

	t.Run("Falha na API do Google Ads interrompe a sincronização", func(t *testing.T) {
		m := newAccountMocks(t)
		m.meta.EXPECT().ListAdAccounts().Return(nil, nil)
		m.google.EXPECT().ListAdAccounts().Return(nil, errors.New("invalid grant"))

		service := NewService(m.repo, m.meta, m.google)

		_, err := service.SyncAccounts()

		assert.ErrorIs(t, err, ErrGoogleIntegration)
	})
}

func TestUpdateAccount(t *testing.T) {
	t.Run("Conta inexistente retorna erro com o identificador", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().GetAccountByID("abc123").Return(nil, nil)

		service := NewService(m.repo, m.meta, m.google)

		_, err := service.UpdateAccount(&domain.UpdateAccountRequest{ID: "abc123"})

		var accountErr *AccountError
		require.ErrorAs(t, err, &accountErr)
		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Equal(t, "abc123", accountErr.AccountID)
	})

	t.Run("Identificador vazio é rejeitado sem consultar o banco", func(t *testing.T) {
		m := newAccountMocks(t)

		service := NewService(m.repo, m.meta, m.google)

		_, err := service.UpdateAccount(&domain.UpdateAccountRequest{})

		assert.ErrorIs(t, err, ErrAccountIDRequired)
	})

	t.Run("Apelido e status atualizados refletem na resposta", func(t *testing.T) {
		m := newAccountMocks(t)
		existing := &domain.Account{
			ID:       "abc123",
			Name:     "Loja Exemplo",
			Platform: domain.PlatformMeta,
			Status:   domain.AccountStatusActive,
		}
		nickname := "Loja SP"
		status := string(domain.AccountStatusInactive)
		request := &domain.UpdateAccountRequest{ID: "abc123", Nickname: &nickname, Status: &status}

		m.repo.EXPECT().GetAccountByID("abc123").Return(existing, nil)
		m.repo.EXPECT().UpdateAccount(request).Return(nil)

		service := NewService(m.repo, m.meta, m.google)

		account, err := service.UpdateAccount(request)

		require.NoError(t, err)
		assert.Equal(t, "Loja SP", *account.Nickname)
		assert.Equal(t, domain.AccountStatusInactive, account.Status)
	})
}

func TestListAdAccounts(t *testing.T) {
	t.Run("Contas são convertidas para o formato de resposta", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().
			ListAccounts([]domain.AccountStatus{domain.AccountStatusActive}).
			Return([]*domain.Account{
				{ID: "abc123", ExternalID: "act_111", Name: "Loja", Platform: domain.PlatformMeta, Status: domain.AccountStatusActive},
			}, nil)

		service := NewService(m.repo, m.meta, m.google)

		accounts, err := service.ListAdAccounts([]domain.AccountStatus{domain.AccountStatusActive})

		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "abc123", accounts[0].ID)
		assert.Equal(t, domain.PlatformMeta, accounts[0].Platform)
	})

	t.Run("Falha no banco retorna erro de listagem", func(t *testing.T) {
		m := newAccountMocks(t)
		m.repo.EXPECT().ListAccounts(gomock.Any()).Return(nil, errors.New("connection refused"))

		service := NewService(m.repo, m.meta, m.google)

		_, err := service.ListAdAccounts(nil)

		assert.ErrorIs(t, err, ErrFetchAccounts)
	})
}
