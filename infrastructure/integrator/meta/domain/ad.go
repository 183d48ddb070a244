package metadomain

// Ad representa um anúncio retornado pelo endpoint /act_<id>/ads com os
// campos aninhados de criativo, conjunto e campanha
type Ad struct {
	ID                      string         `json:"id"`
	Name                    string         `json:"name"`
	EffectiveStatus         string         `json:"effective_status"`
	AdSet                   AdSetRef       `json:"adset"`
	Campaign                CampaignRef    `json:"campaign"`
	TrackingSpecs           []TrackingSpec `json:"tracking_specs"`
	Creative                Creative       `json:"creative"`
	CreativeAssetGroupsSpec interface{}    `json:"creative_asset_groups_spec,omitempty"`
}

// AdSetRef é a referência resumida do conjunto de anúncios dentro do anúncio
type AdSetRef struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	EffectiveStatus string         `json:"effective_status"`
	PromotedObject  PromotedObject `json:"promoted_object"`
}

// CampaignRef é a referência resumida da campanha dentro do anúncio
type CampaignRef struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
}

type PromotedObject struct {
	PixelID      string `json:"pixel_id,omitempty"`
	ProductSetID string `json:"product_set_id,omitempty"`
}

// TrackingSpec carrega os pixels e aplicativos rastreados pelo anúncio
type TrackingSpec struct {
	FBPixel     []string `json:"fb_pixel,omitempty"`
	Application []string `json:"application,omitempty"`
}

type Creative struct {
	ID                     string          `json:"id"`
	URLTags                string          `json:"url_tags"`
	ProductSetID           string          `json:"product_set_id"`
	EffectiveObjectStoryID string          `json:"effective_object_story_id"`
	AssetFeedSpec          *AssetFeedSpec  `json:"asset_feed_spec,omitempty"`
	ObjectStorySpec        ObjectStorySpec `json:"object_story_spec"`
}

// AssetFeedSpec contém os ativos de criativo dinâmico enviados pelo
// anunciante (títulos, textos, descrições, mídias e CTAs)
type AssetFeedSpec struct {
	Titles            []AssetText  `json:"titles"`
	Bodies            []AssetText  `json:"bodies"`
	Descriptions      []AssetText  `json:"descriptions"`
	Images            []AssetImage `json:"images"`
	Videos            []AssetVideo `json:"videos"`
	CallToActionTypes []string     `json:"call_to_action_types"`
	AdFormats         []string     `json:"ad_formats"`
}

type AssetText struct {
	Text string `json:"text"`
}

type AssetImage struct {
	Hash string `json:"hash"`
}

type AssetVideo struct {
	VideoID string `json:"video_id"`
}

// ObjectStorySpec descreve o criativo de anúncios que usam uma publicação,
// com variação de link ou de vídeo
type ObjectStorySpec struct {
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

type LinkData struct {
	Message          string            `json:"message"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	Link             string            `json:"link"`
	CallToAction     *CallToAction     `json:"call_to_action,omitempty"`
	ChildAttachments []ChildAttachment `json:"child_attachments,omitempty"`
}

type VideoData struct {
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	VideoID      string        `json:"video_id"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

type CallToAction struct {
	Type string `json:"type"`
}

// ChildAttachment é um cartão de anúncio em carrossel
type ChildAttachment struct {
	Link         string        `json:"link"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}
