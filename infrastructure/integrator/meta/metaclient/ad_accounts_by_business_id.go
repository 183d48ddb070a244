package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdAccountsByBusinessID busca as contas de anúncio do Business Manager
func (c *MetaClient) GetAdAccountsByBusinessID(businessID string) ([]metadomain.AdAccount, error) {
	token, err := c.Tokens.Current()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", "id,name,account_status")
	params.Add("limit", "100")
	params.Add("access_token", token)

	requestURL := fmt.Sprintf("%s/%s/owned_ad_accounts?%s", c.Cfg.Meta.URL, businessID, params.Encode())

	var accounts []metadomain.AdAccount
	for requestURL != "" {
		body, err := c.doGET(requestURL, token)
		if err != nil {
			if errors.Is(err, errRetryWithRotatedToken) {
				return c.GetAdAccountsByBusinessID(businessID)
			}
			return nil, err
		}

		var response ResponseAdAccounts
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		accounts = append(accounts, response.Data...)

		requestURL = response.Paging.Next
	}

	if accounts == nil {
		return nil, errors.New("no data found")
	}

	return accounts, nil
}
