package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/meta/domain"
)

const activeStatusFilter = `[{"field":"effective_status","operator":"IN","value":["ACTIVE"]}]`

// adFields são os campos aninhados necessários para as verificações de
// rastreamento, criativo, formato e audiência
const adFields = "id,name,effective_status,creative_asset_groups_spec," +
	"adset{id,name,effective_status,promoted_object}," +
	"campaign{id,name,effective_status}," +
	"tracking_specs{fb_pixel,application}," +
	"creative{id,effective_object_story_id,product_set_id,url_tags," +
	"asset_feed_spec{titles{text},bodies{text},descriptions{text},images{hash},videos{video_id},call_to_action_types,ad_formats}," +
	"object_story_spec{link_data{message,name,description,link,call_to_action{type},child_attachments{link,name,description,call_to_action{type}}}," +
	"video_data{title,message,video_id,call_to_action{type}}}}"

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetActiveAdsByAccountID busca os anúncios ativos com impressões no período,
// com os detalhes completos de criativo, conjunto e campanha
func (c *MetaClient) GetActiveAdsByAccountID(accountID, datePreset string) ([]metadomain.Ad, error) {
	idsWithDelivery, err := c.idsWithImpressions(accountID, "ad", datePreset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anúncios com impressões: %w", err)
	}

	if len(idsWithDelivery) == 0 {
		logrus.WithField("account_id", accountID).Info("meta: nenhum anúncio com impressões no período")
		return nil, nil
	}

	token, err := c.Tokens.Current()
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("fields", adFields)
	params.Add("filtering", activeStatusFilter)
	params.Add("limit", "100")
	params.Add("access_token", token)

	requestURL := fmt.Sprintf("%s/act_%s/ads?%s", c.Cfg.Meta.URL, accountID, params.Encode())

	var ads []metadomain.Ad
	for requestURL != "" {
		body, err := c.doGET(requestURL, token)
		if err != nil {
			if errors.Is(err, errRetryWithRotatedToken) {
				return c.GetActiveAdsByAccountID(accountID, datePreset)
			}
			return nil, err
		}

		var response ResponseAds
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		for _, ad := range response.Data {
			if _, ok := idsWithDelivery[ad.ID]; ok {
				ads = append(ads, ad)
			}
		}

		requestURL = response.Paging.Next
	}

	return ads, nil
}
