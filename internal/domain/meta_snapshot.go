package domain

import "time"

// ChildAttachment é um cartão de um anúncio em carrossel
type ChildAttachment struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Link         string `json:"link"`
	ImageHash    string `json:"image_hash"`
	VideoID      string `json:"video_id"`
	CallToAction string `json:"call_to_action"`
}

// MetaAdRow é um anúncio ativo já achatado: campos do anúncio, do conjunto
// e da campanha em um único registro, com os campos do criativo normalizados.
// Apenas anúncios cujo anúncio, conjunto E campanha estão ACTIVE entram no
// snapshot.
type MetaAdRow struct {
	AdID           string `json:"ad_id"`
	AdName         string `json:"ad_name"`
	AdStatus       string `json:"ad_status"`
	AdSetID        string `json:"adset_id"`
	AdSetName      string `json:"adset_name"`
	AdSetStatus    string `json:"adset_status"`
	CampaignID     string `json:"campaign_id"`
	CampaignName   string `json:"campaign_name"`
	CampaignStatus string `json:"campaign_status"`

	// Rastreamento
	URLTags        string   `json:"url_tags"`
	PixelIDs       []string `json:"pixel_ids"`
	ApplicationIDs []string `json:"application_ids"`

	// Criativo
	CreativeID       string            `json:"creative_id"`
	ProductSetID     string            `json:"product_set_id"`
	EffectiveStoryID string            `json:"effective_story_id"`
	HasAssetFeed     bool              `json:"has_asset_feed"`
	HasAssetGroups   bool              `json:"has_asset_groups"`
	Titles           []string          `json:"titles"`
	Bodies           []string          `json:"bodies"`
	Descriptions     []string          `json:"descriptions"`
	ImageHashes      []string          `json:"image_hashes"`
	VideoIDs         []string          `json:"video_ids"`
	CallToActions    []string          `json:"call_to_actions"`
	AdFormats        []string          `json:"ad_formats"`
	ChildAttachments []ChildAttachment `json:"child_attachments"`

	// Campos de object_story_spec, usados como fallback quando o criativo
	// não usa asset feed
	StoryLinkMessage     string `json:"story_link_message"`
	StoryLinkName        string `json:"story_link_name"`
	StoryLinkDescription string `json:"story_link_description"`
	StoryLinkCTA         string `json:"story_link_cta"`
	StoryVideoTitle      string `json:"story_video_title"`
	StoryVideoMessage    string `json:"story_video_message"`
	StoryVideoID         string `json:"story_video_id"`
	StoryVideoCTA        string `json:"story_video_cta"`
}

// IsCarousel indica anúncio em carrossel (cartões em child_attachments)
func (a *MetaAdRow) IsCarousel() bool {
	return len(a.ChildAttachments) > 0
}

// IsCatalogue indica anúncio de catálogo (vinculado a um product set)
func (a *MetaAdRow) IsCatalogue() bool {
	return a.ProductSetID != ""
}

// IsBoostedPost indica publicação impulsionada: referencia uma publicação
// existente e não carrega conteúdo próprio de asset feed
func (a *MetaAdRow) IsBoostedPost() bool {
	if a.EffectiveStoryID == "" {
		return false
	}
	return len(a.Titles) == 0 && len(a.Bodies) == 0 && len(a.Descriptions) == 0
}

// Headlines retorna os títulos do asset feed, com fallback para os campos
// da publicação quando o criativo não usa asset feed
func (a *MetaAdRow) Headlines() []string {
	if len(a.Titles) > 0 {
		return a.Titles
	}
	return nonEmpty(a.StoryLinkName, a.StoryVideoTitle)
}

// PrimaryTexts retorna os textos principais, com o mesmo fallback de Headlines
func (a *MetaAdRow) PrimaryTexts() []string {
	if len(a.Bodies) > 0 {
		return a.Bodies
	}
	return nonEmpty(a.StoryLinkMessage, a.StoryVideoMessage)
}

// DescriptionTexts retorna as descrições, com o mesmo fallback de Headlines
func (a *MetaAdRow) DescriptionTexts() []string {
	if len(a.Descriptions) > 0 {
		return a.Descriptions
	}
	return nonEmpty(a.StoryLinkDescription)
}

// CTAs retorna os call to action do asset feed ou da publicação
func (a *MetaAdRow) CTAs() []string {
	if len(a.CallToActions) > 0 {
		return a.CallToActions
	}
	return nonEmpty(a.StoryLinkCTA, a.StoryVideoCTA)
}

// HasVideo indica presença de vídeo no criativo
func (a *MetaAdRow) HasVideo() bool {
	if len(a.VideoIDs) > 0 || a.StoryVideoID != "" {
		return true
	}
	for _, child := range a.ChildAttachments {
		if child.VideoID != "" {
			return true
		}
	}
	return false
}

func nonEmpty(values ...string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// MetaAdSetRow é um conjunto de anúncios ativo com os campos de público
// e otimização usados pelas verificações de audiência
type MetaAdSetRow struct {
	AdSetID            string   `json:"adset_id"`
	AdSetName          string   `json:"adset_name"`
	AdSetStatus        string   `json:"adset_status"`
	CampaignID         string   `json:"campaign_id"`
	CampaignName       string   `json:"campaign_name"`
	CampaignStatus     string   `json:"campaign_status"`
	OptimizationGoal   string   `json:"optimization_goal"`
	PublisherPlatforms []string `json:"publisher_platforms"`
	CustomAudiences    []string `json:"custom_audiences"`
	ExcludedAudiences  []string `json:"excluded_audiences"`
	// Nomes dos públicos, usados para detectar lookalikes
	CustomAudienceNames []string `json:"custom_audience_names"`
	AdvantageAudience   bool     `json:"advantage_audience"`
	// Presença de segmentação por interesses (flexible_spec)
	HasInterestTargeting bool `json:"has_interest_targeting"`
}

// MetaSnapshot é a fotografia imutável da conta no momento da coleta.
// As verificações são funções puras sobre ele.
type MetaSnapshot struct {
	AccountID string         `json:"account_id"`
	FetchedAt time.Time      `json:"fetched_at"`
	Ads       []MetaAdRow    `json:"ads"`
	AdSets    []MetaAdSetRow `json:"adsets"`
}
