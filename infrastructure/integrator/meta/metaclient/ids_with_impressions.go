package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/domain"
)

type insightIDRow struct {
	AdID        string `json:"ad_id"`
	AdsetID     string `json:"adset_id"`
	Impressions string `json:"impressions"`
}

type responseInsightIDs struct {
	Data   []insightIDRow    `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// idsWithImpressions retorna os IDs do nível informado (ad ou adset) que
// tiveram impressões no período. Anúncios ativos sem entrega ficam fora do
// snapshot.
func (c *MetaClient) idsWithImpressions(accountID, level, datePreset string) (map[string]struct{}, error) {
	token, err := c.Tokens.Current()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("level", level)
	params.Add("fields", level+"_id,impressions")
	params.Add("date_preset", datePreset)
	params.Add("limit", "500")
	params.Add("access_token", token)

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	ids := make(map[string]struct{})
	for requestURL != "" {
		body, err := c.doGET(requestURL, token)
		if err != nil {
			// Se o token foi rotacionado, repetir com o próximo token do pool
			if errors.Is(err, errRetryWithRotatedToken) {
				return c.idsWithImpressions(accountID, level, datePreset)
			}
			return nil, err
		}

		var response responseInsightIDs
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		for _, row := range response.Data {
			impressions, _ := strconv.Atoi(row.Impressions)
			if impressions <= 0 {
				continue
			}

			id := row.AdID
			if level == "adset" {
				id = row.AdsetID
			}
			if id != "" {
				ids[id] = struct{}{}
			}
		}

		requestURL = response.Paging.Next
	}

	return ids, nil
}
