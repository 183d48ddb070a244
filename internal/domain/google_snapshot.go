package domain

import "time"

// Canais de campanha do Google Ads usados pelas verificações
const (
	GoogleChannelSearch         = "SEARCH"
	GoogleChannelPerformanceMax = "PERFORMANCE_MAX"
	GoogleChannelMultiChannel   = "MULTI_CHANNEL"
)

// GoogleCampaignRow é uma campanha habilitada com os campos de orçamento,
// metas de conversão e segmentação geográfica
type GoogleCampaignRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ChannelType    string `json:"channel_type"`
	ChannelSubType string `json:"channel_sub_type"`

	LimitedByBudget         bool  `json:"limited_by_budget"`
	BudgetMicros            int64 `json:"budget_micros"`
	RecommendedBudgetMicros int64 `json:"recommended_budget_micros"`

	// PRESENCE_OR_INTEREST vs PRESENCE
	PositiveGeoTargetType string `json:"positive_geo_target_type"`

	// Campanha usa metas de conversão da conta ou próprias
	UsesCampaignGoals bool `json:"uses_campaign_goals"`

	// Campos de campanhas de app
	AppID          string `json:"app_id,omitempty"`
	AppStore       string `json:"app_store,omitempty"`
	AppBiddingGoal string `json:"app_bidding_goal,omitempty"`

	CostMicros int64 `json:"cost_micros"`
}

func (c *GoogleCampaignRow) IsSearch() bool {
	return c.ChannelType == GoogleChannelSearch
}

func (c *GoogleCampaignRow) IsPerformanceMax() bool {
	return c.ChannelType == GoogleChannelPerformanceMax
}

// GoogleKeywordRow é uma palavra-chave de campanha de pesquisa
type GoogleKeywordRow struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdGroupID    string `json:"ad_group_id"`
	AdGroupName  string `json:"ad_group_name"`
	Text         string `json:"text"`
	MatchType    string `json:"match_type"`
	Negative     bool   `json:"negative"`
	CostMicros   int64  `json:"cost_micros"`
	QualityScore int    `json:"quality_score"`
	Impressions  int64  `json:"impressions"`
}

// GoogleRSARow é um anúncio responsivo de pesquisa habilitado
type GoogleRSARow struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdGroupID    string   `json:"ad_group_id"`
	AdGroupName  string   `json:"ad_group_name"`
	AdID         string   `json:"ad_id"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	Path1        string   `json:"path1"`
	Path2        string   `json:"path2"`
	AdStrength   string   `json:"ad_strength"`
}

// GoogleAdGroupRow é um grupo de anúncios habilitado
type GoogleAdGroupRow struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	ChannelType  string `json:"channel_type"`
}

// GoogleCampaignAssetRow é um recurso vinculado no nível da campanha
// (sitelink, callout, structured snippet)
type GoogleCampaignAssetRow struct {
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	FieldType    string `json:"field_type"`
	LinkText     string `json:"link_text"`
}

// GoogleCampaignCriterionRow é um critério de campanha: públicos em
// observação, exclusões de idade, palavras-chave negativas diretas
type GoogleCampaignCriterionRow struct {
	CampaignID           string `json:"campaign_id"`
	CampaignName         string `json:"campaign_name"`
	Type                 string `json:"type"`
	Negative             bool   `json:"negative"`
	KeywordText          string `json:"keyword_text,omitempty"`
	UserListName         string `json:"user_list_name,omitempty"`
	UserInterestTaxonomy string `json:"user_interest_taxonomy,omitempty"`
	AgeRange             string `json:"age_range,omitempty"`
}

// GoogleSharedSetRow é uma lista compartilhada vinculada à campanha
type GoogleSharedSetRow struct {
	CampaignID    string `json:"campaign_id"`
	CampaignName  string `json:"campaign_name"`
	SharedSetName string `json:"shared_set_name"`
	SharedSetType string `json:"shared_set_type"`
}

// GoogleAssetGroupRow é um grupo de recursos de uma campanha Performance Max
type GoogleAssetGroupRow struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Path1        string   `json:"path1"`
	Path2        string   `json:"path2"`
	SearchThemes []string `json:"search_themes"`
	// Grupo vinculado a feed de produtos (listing group filter)
	HasListingGroupFilter bool `json:"has_listing_group_filter"`
}

// GoogleAssetGroupAssetRow é um recurso dentro de um grupo de recursos,
// identificado pelo field type (HEADLINE, LONG_HEADLINE, DESCRIPTION,
// MARKETING_IMAGE, YOUTUBE_VIDEO, SITELINK, CALL_TO_ACTION_SELECTION...)
type GoogleAssetGroupAssetRow struct {
	CampaignID     string `json:"campaign_id"`
	CampaignName   string `json:"campaign_name"`
	AssetGroupID   string `json:"asset_group_id"`
	AssetGroupName string `json:"asset_group_name"`
	FieldType      string `json:"field_type"`
	CallToAction   string `json:"call_to_action,omitempty"`
}

// GoogleAppAdRow é um anúncio de campanha de app com as contagens de textos
type GoogleAppAdRow struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdGroupID    string   `json:"ad_group_id"`
	AdGroupName  string   `json:"ad_group_name"`
	AdID         string   `json:"ad_id"`
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// GoogleSnapshot é a fotografia imutável da conta Google Ads, normalizada
// a partir das consultas GAQL em uma única coleta
type GoogleSnapshot struct {
	CustomerID string    `json:"customer_id"`
	FetchedAt  time.Time `json:"fetched_at"`

	Campaigns        []GoogleCampaignRow          `json:"campaigns"`
	AdGroups         []GoogleAdGroupRow           `json:"ad_groups"`
	Keywords         []GoogleKeywordRow           `json:"keywords"`
	RSAs             []GoogleRSARow               `json:"rsas"`
	CampaignAssets   []GoogleCampaignAssetRow     `json:"campaign_assets"`
	CampaignCriteria []GoogleCampaignCriterionRow `json:"campaign_criteria"`
	SharedSets       []GoogleSharedSetRow         `json:"shared_sets"`
	AssetGroups      []GoogleAssetGroupRow        `json:"asset_groups"`
	AssetGroupAssets []GoogleAssetGroupAssetRow   `json:"asset_group_assets"`
	AppAds           []GoogleAppAdRow             `json:"app_ads"`
}

// SearchCampaigns retorna apenas as campanhas de pesquisa
func (s *GoogleSnapshot) SearchCampaigns() []GoogleCampaignRow {
	return s.campaignsByChannel(GoogleChannelSearch)
}

// PMaxCampaigns retorna apenas as campanhas Performance Max
func (s *GoogleSnapshot) PMaxCampaigns() []GoogleCampaignRow {
	return s.campaignsByChannel(GoogleChannelPerformanceMax)
}

// AppCampaigns retorna as campanhas de app (MULTI_CHANNEL)
func (s *GoogleSnapshot) AppCampaigns() []GoogleCampaignRow {
	return s.campaignsByChannel(GoogleChannelMultiChannel)
}

func (s *GoogleSnapshot) campaignsByChannel(channel string) []GoogleCampaignRow {
	campaigns := make([]GoogleCampaignRow, 0)
	for _, c := range s.Campaigns {
		if c.ChannelType == channel {
			campaigns = append(campaigns, c)
		}
	}
	return campaigns
}
