package gadsdomain

// Batch é um lote do searchStream da API REST do Google Ads
type Batch struct {
	Results   []Result `json:"results"`
	FieldMask string   `json:"fieldMask"`
	RequestID string   `json:"requestId"`
}

// Result é uma linha de resultado GAQL. Os recursos não selecionados pela
// consulta ficam nulos.
type Result struct {
	CustomerClient               *CustomerClient               `json:"customerClient,omitempty"`
	Campaign                     *Campaign                     `json:"campaign,omitempty"`
	CampaignBudget               *CampaignBudget               `json:"campaignBudget,omitempty"`
	ConversionGoalCampaignConfig *ConversionGoalCampaignConfig `json:"conversionGoalCampaignConfig,omitempty"`
	AdGroup                      *AdGroup                      `json:"adGroup,omitempty"`
	AdGroupAd                    *AdGroupAd                    `json:"adGroupAd,omitempty"`
	AdGroupCriterion             *AdGroupCriterion             `json:"adGroupCriterion,omitempty"`
	CampaignCriterion            *CampaignCriterion            `json:"campaignCriterion,omitempty"`
	CampaignAsset                *CampaignAsset                `json:"campaignAsset,omitempty"`
	SharedSet                    *SharedSet                    `json:"sharedSet,omitempty"`
	AssetGroup                   *AssetGroup                   `json:"assetGroup,omitempty"`
	AssetGroupAsset              *AssetGroupAsset              `json:"assetGroupAsset,omitempty"`
	AssetGroupSignal             *AssetGroupSignal             `json:"assetGroupSignal,omitempty"`
	Asset                        *Asset                        `json:"asset,omitempty"`
	Metrics                      *Metrics                      `json:"metrics,omitempty"`
}

type CustomerClient struct {
	ID              int64  `json:"id,string"`
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	Manager         bool   `json:"manager"`
	Status          string `json:"status"`
}

type Campaign struct {
	ResourceName              string                `json:"resourceName"`
	ID                        int64                 `json:"id,string"`
	Name                      string                `json:"name"`
	Status                    string                `json:"status"`
	AdvertisingChannelType    string                `json:"advertisingChannelType"`
	AdvertisingChannelSubType string                `json:"advertisingChannelSubType"`
	GeoTargetTypeSetting      *GeoTargetTypeSetting `json:"geoTargetTypeSetting,omitempty"`
	AppCampaignSetting        *AppCampaignSetting   `json:"appCampaignSetting,omitempty"`
}

type GeoTargetTypeSetting struct {
	PositiveGeoTargetType string `json:"positiveGeoTargetType"`
	NegativeGeoTargetType string `json:"negativeGeoTargetType"`
}

type AppCampaignSetting struct {
	AppID                   string `json:"appId"`
	AppStore                string `json:"appStore"`
	BiddingStrategyGoalType string `json:"biddingStrategyGoalType"`
}

type CampaignBudget struct {
	AmountMicros                  int64 `json:"amountMicros,string"`
	RecommendedBudgetAmountMicros int64 `json:"recommendedBudgetAmountMicros,string"`
	HasRecommendedBudget          bool  `json:"hasRecommendedBudget"`
}

type ConversionGoalCampaignConfig struct {
	GoalConfigLevel string `json:"goalConfigLevel"`
}

type AdGroup struct {
	ID     int64  `json:"id,string"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

type AdGroupAd struct {
	Status     string `json:"status"`
	AdStrength string `json:"adStrength"`
	Ad         *Ad    `json:"ad,omitempty"`
}

type Ad struct {
	ID                 int64               `json:"id,string"`
	Type               string              `json:"type"`
	ResponsiveSearchAd *ResponsiveSearchAd `json:"responsiveSearchAd,omitempty"`
	AppAd              *AppAd              `json:"appAd,omitempty"`
}

type ResponsiveSearchAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
	Path1        string        `json:"path1"`
	Path2        string        `json:"path2"`
}

type AppAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type AdGroupCriterion struct {
	Status      string       `json:"status"`
	Negative    bool         `json:"negative"`
	Keyword     *KeywordInfo `json:"keyword,omitempty"`
	QualityInfo *QualityInfo `json:"qualityInfo,omitempty"`
}

type KeywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type QualityInfo struct {
	QualityScore int `json:"qualityScore"`
}

type CampaignCriterion struct {
	CriterionID  int64             `json:"criterionId,string"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	Negative     bool              `json:"negative"`
	Keyword      *KeywordInfo      `json:"keyword,omitempty"`
	UserList     *UserListInfo     `json:"userList,omitempty"`
	UserInterest *UserInterestInfo `json:"userInterest,omitempty"`
	AgeRange     *AgeRangeInfo     `json:"ageRange,omitempty"`
}

type UserListInfo struct {
	UserList string `json:"userList"`
}

type UserInterestInfo struct {
	UserInterestCategory string `json:"userInterestCategory"`
}

type AgeRangeInfo struct {
	Type string `json:"type"`
}

type CampaignAsset struct {
	FieldType string `json:"fieldType"`
	Status    string `json:"status"`
}

type SharedSet struct {
	ID     int64  `json:"id,string"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

type AssetGroup struct {
	ID     int64  `json:"id,string"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Path1  string `json:"path1"`
	Path2  string `json:"path2"`
}

type AssetGroupAsset struct {
	FieldType string `json:"fieldType"`
	Status    string `json:"status"`
}

type AssetGroupSignal struct {
	SearchTheme *SearchThemeInfo `json:"searchTheme,omitempty"`
}

type SearchThemeInfo struct {
	Text string `json:"text"`
}

type Asset struct {
	ID                int64                  `json:"id,string"`
	Type              string                 `json:"type"`
	SitelinkAsset     *SitelinkAsset         `json:"sitelinkAsset,omitempty"`
	CallToActionAsset *CallToActionAssetInfo `json:"callToActionAsset,omitempty"`
}

type SitelinkAsset struct {
	LinkText string `json:"linkText"`
}

type CallToActionAssetInfo struct {
	CallToAction string `json:"callToAction"`
}

type Metrics struct {
	CostMicros  int64 `json:"costMicros,string"`
	Impressions int64 `json:"impressions,string"`
}

// ErrorResponse é o envelope de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// IsAuthError verifica se o erro exige reautorização do refresh token
func (e *ErrorResponse) IsAuthError() bool {
	return e.Error.Status == "UNAUTHENTICATED" || e.Error.Code == 401
}
