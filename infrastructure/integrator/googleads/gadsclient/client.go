package gadsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	gadsdomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/healthcard-api/internal/config"
)

// googleTokenURL é o endpoint de troca do refresh token por access token
const googleTokenURL = "https://oauth2.googleapis.com/token"

type Client interface {
	SearchStream(customerID, query string) ([]gadsdomain.Result, error)
	ListAccessibleAccounts() ([]gadsdomain.CustomerClient, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

// NewClient monta o cliente REST com o fluxo OAuth2 de refresh token.
// O oauth2.Client renova o access token automaticamente a cada expiração.
func NewClient(cfg *config.Config) Client {
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: googleTokenURL,
		},
	}

	token := &oauth2.Token{
		RefreshToken: cfg.Google.RefreshToken,
		Expiry:       time.Now().Add(-time.Hour),
	}

	httpClient := oauth2.NewClient(context.Background(), oauthCfg.TokenSource(context.Background(), token))
	httpClient.Timeout = 60 * time.Second

	return &GoogleAdsClient{
		Cfg:        cfg,
		httpClient: httpClient,
	}
}

type searchStreamRequest struct {
	Query string `json:"query"`
}

// SearchStream executa uma consulta GAQL via searchStream e concatena os
// lotes de resultados
func (c *GoogleAdsClient) SearchStream(customerID, query string) ([]gadsdomain.Result, error) {
	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.Cfg.Google.URL, customerID)

	payload, err := json.Marshal(searchStreamRequest{Query: query})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, requestURL, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.Cfg.Google.DeveloperToken)
	if c.Cfg.Google.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.Google.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, handleErrorResponse(resp.StatusCode, body)
	}

	// O searchStream retorna um array JSON de lotes
	var batches []gadsdomain.Batch
	if err := json.Unmarshal(body, &batches); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	var results []gadsdomain.Result
	for _, batch := range batches {
		results = append(results, batch.Results...)
	}

	return results, nil
}

// ListAccessibleAccounts lista as contas de cliente sob o MCC configurado,
// ignorando contas gerenciadoras
func (c *GoogleAdsClient) ListAccessibleAccounts() ([]gadsdomain.CustomerClient, error) {
	results, err := c.SearchStream(c.Cfg.Google.LoginCustomerID, QueryCustomerClients)
	if err != nil {
		return nil, err
	}

	var accounts []gadsdomain.CustomerClient
	for _, result := range results {
		if result.CustomerClient == nil || result.CustomerClient.Manager {
			continue
		}

		account := *result.CustomerClient
		if account.DescriptiveName == "" {
			account.DescriptiveName = "Account " + strconv.FormatInt(account.ID, 10)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func handleErrorResponse(statusCode int, body []byte) error {
	var errorResp gadsdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", statusCode, string(body))
	}

	if errorResp.IsAuthError() {
		// Refresh tokens de teste expiram em 7 dias e exigem novo consentimento
		return fmt.Errorf("refresh token do Google Ads inválido ou expirado, é necessário reautorizar: %s", errorResp.Error.Message)
	}

	return fmt.Errorf("erro na resposta da API. Status: %d, Mensagem: %s", statusCode, errorResp.Error.Message)
}
