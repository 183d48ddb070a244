package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/healthcard-api/internal/config"
)

// errRetryWithRotatedToken sinaliza que o token corrente foi rotacionado e a
// requisição deve ser repetida com o próximo token do pool
var errRetryWithRotatedToken = errors.New("token rotacionado por limite de requisições, por favor tente novamente")

type Client interface {
	GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error)
	GetActiveAdsByAccountID(accountID, datePreset string) ([]metadomain.Ad, error)
	GetActiveAdSetsByAccountID(accountID, datePreset string) ([]metadomain.AdSet, error)
}

type MetaClient struct {
	Cfg        *config.Config
	Tokens     *TokenPool
	httpClient *http.Client
}

func NewClient(cfg *config.Config, tokens *TokenPool) Client {
	client := &MetaClient{
		Cfg:    cfg,
		Tokens: tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return client
}

// doGET executa a requisição e manipula a resposta. O token informado é o
// mesmo embutido na URL pelo chamador e é ele que entra em cooldown se a
// resposta for de limite de requisições. Com workers concorrentes, marcar o
// token corrente resfriaria um token saudável quando o pool já rotacionou.
func (c *MetaClient) doGET(rawURL, token string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp, token)
}

// HandleResponse manipula a resposta HTTP e trata erros de limite de
// requisições e de token expirado
func (c *MetaClient) HandleResponse(resp *http.Response, token string) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return c.handleErrorResponse(resp.StatusCode, body, token)
}

func (c *MetaClient) handleErrorResponse(statusCode int, body []byte, token string) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil {
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", statusCode, string(body))
	}

	if errorResp.IsRateLimited() {
		c.Tokens.MarkRateLimited(token)

		// Se outro token estiver disponível, sinaliza para repetir a chamada
		if _, nextErr := c.Tokens.Current(); nextErr == nil {
			return nil, errRetryWithRotatedToken
		}

		return nil, ErrAllTokensCoolingDown
	}

	if errorResp.IsTokenExpired() {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			errorResp.Error.Code, errorResp.Error.ErrorSubcode)

		// Tokens de longa duração são estáticos; a renovação exige
		// reautorização manual do aplicativo
		return nil, fmt.Errorf("token da Meta expirado, é necessário reautorizar o aplicativo: %s", errorResp.Error.Message)
	}

	if containsTokenExpirationMessage(string(body)) {
		return nil, fmt.Errorf("token da Meta expirado, é necessário reautorizar o aplicativo: %s", errorResp.Error.Message)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Código: %d, Mensagem: %s",
		statusCode, errorResp.Error.Code, errorResp.Error.Message)
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}
