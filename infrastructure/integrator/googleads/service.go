package googleads

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	gadsdomain "github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/healthcard-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/vfg2006/healthcard-api/internal/config"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

// Integrator expõe a coleta de dados do Google Ads já normalizada
type Integrator interface {
	AccountSnapshot(customerID string) (*domain.GoogleSnapshot, error)
	ListAdAccounts() ([]*domain.Account, error)
}

type GoogleIntegrator struct {
	cfg    *config.Config
	Client gadsclient.Client
}

func New(cfg *config.Config, client gadsclient.Client) *GoogleIntegrator {
	return &GoogleIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// AccountSnapshot executa o conjunto fixo de consultas GAQL e monta o
// snapshot normalizado da conta
func (s *GoogleIntegrator) AccountSnapshot(customerID string) (*domain.GoogleSnapshot, error) {
	snapshot := &domain.GoogleSnapshot{
		CustomerID: customerID,
		FetchedAt:  time.Now().UTC(),
	}

	if err := s.collectCampaigns(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectAdGroups(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectKeywords(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectRSAs(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectCampaignAssets(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectCampaignCriteria(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectSharedSets(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectAssetGroups(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectAssetGroupAssets(customerID, snapshot); err != nil {
		return nil, err
	}
	if err := s.collectAppAds(customerID, snapshot); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"campaigns":   len(snapshot.Campaigns),
		"keywords":    len(snapshot.Keywords),
		"rsas":        len(snapshot.RSAs),
	}).Debug("googleads: account snapshot collected")

	return snapshot, nil
}

// ListAdAccounts lista as contas de cliente sob o MCC configurado
func (s *GoogleIntegrator) ListAdAccounts() ([]*domain.Account, error) {
	clients, err := s.Client.ListAccessibleAccounts()
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to list customer clients from API")
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(clients))
	for _, client := range clients {
		accounts = append(accounts, &domain.Account{
			ExternalID: strconv.FormatInt(client.ID, 10),
			Name:       client.DescriptiveName,
			Platform:   domain.PlatformGoogle,
			Status:     domain.AccountStatusActive,
		})
	}

	return accounts, nil
}

func (s *GoogleIntegrator) collectCampaigns(customerID string, snapshot *domain.GoogleSnapshot) error {
	goalLevels := make(map[string]string)

	goalRows, err := s.Client.SearchStream(customerID, gadsclient.QueryConversionGoalConfigs)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get conversion goal configs")
		return err
	}
	for _, row := range goalRows {
		if row.Campaign == nil || row.ConversionGoalCampaignConfig == nil {
			continue
		}
		goalLevels[formatID(row.Campaign.ID)] = row.ConversionGoalCampaignConfig.GoalConfigLevel
	}

	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryCampaigns)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get campaigns")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil {
			continue
		}

		campaign := domain.GoogleCampaignRow{
			ID:                formatID(row.Campaign.ID),
			Name:              row.Campaign.Name,
			ChannelType:       row.Campaign.AdvertisingChannelType,
			ChannelSubType:    row.Campaign.AdvertisingChannelSubType,
			UsesCampaignGoals: goalLevels[formatID(row.Campaign.ID)] == "CAMPAIGN",
		}

		if budget := row.CampaignBudget; budget != nil {
			campaign.LimitedByBudget = budget.HasRecommendedBudget
			campaign.BudgetMicros = budget.AmountMicros
			campaign.RecommendedBudgetMicros = budget.RecommendedBudgetAmountMicros
		}
		if geo := row.Campaign.GeoTargetTypeSetting; geo != nil {
			campaign.PositiveGeoTargetType = geo.PositiveGeoTargetType
		}
		if app := row.Campaign.AppCampaignSetting; app != nil {
			campaign.AppID = app.AppID
			campaign.AppStore = app.AppStore
			campaign.AppBiddingGoal = app.BiddingStrategyGoalType
		}
		if row.Metrics != nil {
			campaign.CostMicros = row.Metrics.CostMicros
		}

		snapshot.Campaigns = append(snapshot.Campaigns, campaign)
	}

	return nil
}

func (s *GoogleIntegrator) collectAdGroups(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryAdGroups)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get ad groups")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AdGroup == nil {
			continue
		}
		snapshot.AdGroups = append(snapshot.AdGroups, domain.GoogleAdGroupRow{
			CampaignID:   formatID(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
			ID:           formatID(row.AdGroup.ID),
			Name:         row.AdGroup.Name,
			ChannelType:  row.Campaign.AdvertisingChannelType,
		})
	}

	return nil
}

func (s *GoogleIntegrator) collectKeywords(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryKeywords)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get keywords")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AdGroup == nil || row.AdGroupCriterion == nil || row.AdGroupCriterion.Keyword == nil {
			continue
		}

		keyword := domain.GoogleKeywordRow{
			CampaignID:   formatID(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
			AdGroupID:    formatID(row.AdGroup.ID),
			AdGroupName:  row.AdGroup.Name,
			Text:         row.AdGroupCriterion.Keyword.Text,
			MatchType:    row.AdGroupCriterion.Keyword.MatchType,
			Negative:     row.AdGroupCriterion.Negative,
		}
		if quality := row.AdGroupCriterion.QualityInfo; quality != nil {
			keyword.QualityScore = quality.QualityScore
		}
		if row.Metrics != nil {
			keyword.CostMicros = row.Metrics.CostMicros
			keyword.Impressions = row.Metrics.Impressions
		}

		snapshot.Keywords = append(snapshot.Keywords, keyword)
	}

	return nil
}

func (s *GoogleIntegrator) collectRSAs(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryResponsiveSearchAds)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get responsive search ads")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AdGroup == nil || row.AdGroupAd == nil || row.AdGroupAd.Ad == nil {
			continue
		}

		rsa := domain.GoogleRSARow{
			CampaignID:   formatID(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
			AdGroupID:    formatID(row.AdGroup.ID),
			AdGroupName:  row.AdGroup.Name,
			AdID:         formatID(row.AdGroupAd.Ad.ID),
			AdStrength:   row.AdGroupAd.AdStrength,
		}
		if searchAd := row.AdGroupAd.Ad.ResponsiveSearchAd; searchAd != nil {
			rsa.Headlines = adTexts(searchAd.Headlines)
			rsa.Descriptions = adTexts(searchAd.Descriptions)
			rsa.Path1 = searchAd.Path1
			rsa.Path2 = searchAd.Path2
		}

		snapshot.RSAs = append(snapshot.RSAs, rsa)
	}

	return nil
}

func (s *GoogleIntegrator) collectCampaignAssets(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryCampaignAssets)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get campaign assets")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.CampaignAsset == nil {
			continue
		}

		asset := domain.GoogleCampaignAssetRow{
			CampaignID:   formatID(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
			FieldType:    row.CampaignAsset.FieldType,
		}
		if row.Asset != nil && row.Asset.SitelinkAsset != nil {
			asset.LinkText = row.Asset.SitelinkAsset.LinkText
		}

		snapshot.CampaignAssets = append(snapshot.CampaignAssets, asset)
	}

	return nil
}

func (s *GoogleIntegrator) collectCampaignCriteria(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryCampaignCriteria)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get campaign criteria")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.CampaignCriterion == nil {
			continue
		}

		criterion := domain.GoogleCampaignCriterionRow{
			CampaignID:   formatID(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
			Type:         row.CampaignCriterion.Type,
			Negative:     row.CampaignCriterion.Negative,
		}
		if keyword := row.CampaignCriterion.Keyword; keyword != nil {
			criterion.KeywordText = keyword.Text
		}
		if userList := row.CampaignCriterion.UserList; userList != nil {
			criterion.UserListName = userList.UserList
		}
		if interest := row.CampaignCriterion.UserInterest; interest != nil {
			criterion.UserInterestTaxonomy = interest.UserInterestCategory
		}
		if ageRange := row.CampaignCriterion.AgeRange; ageRange != nil {
			criterion.AgeRange = ageRange.Type
		}

		snapshot.CampaignCriteria = append(snapshot.CampaignCriteria, criterion)
	}

	return nil
}

func (s *GoogleIntegrator) collectSharedSets(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QuerySharedSets)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get shared sets")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.SharedSet == nil {
			continue
		}
		snapshot.SharedSets = append(snapshot.SharedSets, domain.GoogleSharedSetRow{
			CampaignID:    formatID(row.Campaign.ID),
			CampaignName:  row.Campaign.Name,
			SharedSetName: row.SharedSet.Name,
			SharedSetType: row.SharedSet.Type,
		})
	}

	return nil
}

func (s *GoogleIntegrator) collectAssetGroups(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryAssetGroups)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get asset groups")
		return err
	}

	signals, err := s.Client.SearchStream(customerID, gadsclient.QueryAssetGroupSignals)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get asset group signals")
		return err
	}

	filters, err := s.Client.SearchStream(customerID, gadsclient.QueryAssetGroupListingFilters)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get asset group listing filters")
		return err
	}

	themesByGroup := make(map[string][]string)
	for _, row := range signals {
		if row.AssetGroup == nil || row.AssetGroupSignal == nil || row.AssetGroupSignal.SearchTheme == nil {
			continue
		}
		if text := row.AssetGroupSignal.SearchTheme.Text; text != "" {
			groupID := formatID(row.AssetGroup.ID)
			themesByGroup[groupID] = append(themesByGroup[groupID], text)
		}
	}

	groupsWithFeed := make(map[string]struct{})
	for _, row := range filters {
		if row.AssetGroup != nil {
			groupsWithFeed[formatID(row.AssetGroup.ID)] = struct{}{}
		}
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AssetGroup == nil {
			continue
		}

		groupID := formatID(row.AssetGroup.ID)
		_, hasFeed := groupsWithFeed[groupID]

		snapshot.AssetGroups = append(snapshot.AssetGroups, domain.GoogleAssetGroupRow{
			CampaignID:            formatID(row.Campaign.ID),
			CampaignName:          row.Campaign.Name,
			ID:                    groupID,
			Name:                  row.AssetGroup.Name,
			Path1:                 row.AssetGroup.Path1,
			Path2:                 row.AssetGroup.Path2,
			SearchThemes:          themesByGroup[groupID],
			HasListingGroupFilter: hasFeed,
		})
	}

	return nil
}

func (s *GoogleIntegrator) collectAssetGroupAssets(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryAssetGroupAssets)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get asset group assets")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AssetGroup == nil || row.AssetGroupAsset == nil {
			continue
		}

		asset := domain.GoogleAssetGroupAssetRow{
			CampaignID:     formatID(row.Campaign.ID),
			CampaignName:   row.Campaign.Name,
			AssetGroupID:   formatID(row.AssetGroup.ID),
			AssetGroupName: row.AssetGroup.Name,
			FieldType:      row.AssetGroupAsset.FieldType,
		}
		if row.Asset != nil && row.Asset.CallToActionAsset != nil {
			asset.CallToAction = row.Asset.CallToActionAsset.CallToAction
		}

		snapshot.AssetGroupAssets = append(snapshot.AssetGroupAssets, asset)
	}

	return nil
}

func (s *GoogleIntegrator) collectAppAds(customerID string, snapshot *domain.GoogleSnapshot) error {
	rows, err := s.Client.SearchStream(customerID, gadsclient.QueryAppAds)
	if err != nil {
		logrus.WithError(err).Error("googleads: failed to get app ads")
		return err
	}

	for _, row := range rows {
		if row.Campaign == nil || row.AdGroup == nil || row.AdGroupAd == nil || row.AdGroupAd.Ad == nil {
			continue
		}

		appAd := domain.GoogleAppAdRow{
			CampaignID:   formatID(row.Campaign.ID),
			CampaignName: row.Campaign.Name,
			AdGroupID:    formatID(row.AdGroup.ID),
			AdGroupName:  row.AdGroup.Name,
			AdID:         formatID(row.AdGroupAd.Ad.ID),
		}
		if ad := row.AdGroupAd.Ad.AppAd; ad != nil {
			appAd.Headlines = adTexts(ad.Headlines)
			appAd.Descriptions = adTexts(ad.Descriptions)
		}

		snapshot.AppAds = append(snapshot.AppAds, appAd)
	}

	return nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func adTexts(assets []gadsdomain.AdTextAsset) []string {
	texts := make([]string, 0, len(assets))
	for _, asset := range assets {
		if asset.Text != "" {
			texts = append(texts, asset.Text)
		}
	}
	if len(texts) == 0 {
		return nil
	}
	return texts
}
