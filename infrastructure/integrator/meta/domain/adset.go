package metadomain

// AdSet representa um conjunto de anúncios retornado por /act_<id>/adsets
// com os campos de segmentação usados nas verificações de audiência
type AdSet struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	EffectiveStatus  string      `json:"effective_status"`
	Campaign         CampaignRef `json:"campaign"`
	OptimizationGoal string      `json:"optimization_goal"`
	Targeting        Targeting   `json:"targeting"`
}

type Targeting struct {
	PublisherPlatforms      []string             `json:"publisher_platforms"`
	CustomAudiences         []AudienceRef        `json:"custom_audiences"`
	ExcludedCustomAudiences []AudienceRef        `json:"excluded_custom_audiences"`
	FlexibleSpec            []FlexibleSpec       `json:"flexible_spec"`
	TargetingAutomation     *TargetingAutomation `json:"targeting_automation,omitempty"`
}

type AudienceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FlexibleSpec agrupa critérios de interesse e comportamento da segmentação
// detalhada
type FlexibleSpec struct {
	Interests []InterestRef `json:"interests,omitempty"`
	Behaviors []InterestRef `json:"behaviors,omitempty"`
}

type InterestRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TargetingAutomation indica se o público Advantage+ está habilitado.
// A API retorna 1 quando ativo.
type TargetingAutomation struct {
	AdvantageAudience int `json:"advantage_audience"`
}
