package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/domain"
)

const adSetFields = "id,name,effective_status,campaign{id,name,effective_status},optimization_goal," +
	"targeting{excluded_custom_audiences{id,name},custom_audiences{id,name},publisher_platforms," +
	"targeting_automation{advantage_audience},flexible_spec}"

type ResponseAdSets struct {
	Data   []metadomain.AdSet `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// GetActiveAdSetsByAccountID busca os conjuntos de anúncios ativos com
// impressões no período, com os campos de segmentação
func (c *MetaClient) GetActiveAdSetsByAccountID(accountID, datePreset string) ([]metadomain.AdSet, error) {
	idsWithDelivery, err := c.idsWithImpressions(accountID, "adset", datePreset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conjuntos com impressões: %w", err)
	}

	if len(idsWithDelivery) == 0 {
		logrus.WithField("account_id", accountID).Info("meta: nenhum conjunto com impressões no período")
		return nil, nil
	}

	token, err := c.Tokens.Current()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", adSetFields)
	params.Add("filtering", activeStatusFilter)
	params.Add("limit", "500")
	params.Add("access_token", token)

	requestURL := fmt.Sprintf("%s/act_%s/adsets?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	var adSets []metadomain.AdSet
	for requestURL != "" {
		body, err := c.doGET(requestURL, token)
		if err != nil {
			if errors.Is(err, errRetryWithRotatedToken) {
				return c.GetActiveAdSetsByAccountID(accountID, datePreset)
			}
			return nil, err
		}

		var response ResponseAdSets
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		for _, adSet := range response.Data {
			if _, ok := idsWithDelivery[adSet.ID]; ok {
				adSets = append(adSets, adSet)
			}
		}

		requestURL = response.Paging.Next
	}

	return adSets, nil
}
