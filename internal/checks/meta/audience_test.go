package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func TestCheckAudienceNetworkUsage(t *testing.T) {
	t.Run("Metade dos conjuntos na Audience Network - atinge 50%, aviso", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{
			{AdSetID: "as1", PublisherPlatforms: []string{"facebook", "audience_network"}},
			{AdSetID: "as2", PublisherPlatforms: []string{"instagram"}},
		}

		result := CheckAudienceNetworkUsage(adsets)

		assert.Equal(t, domain.StatusWarning, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Abaixo de 50% - passa", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{
			{AdSetID: "as1", PublisherPlatforms: []string{"audience_network"}},
			{AdSetID: "as2", PublisherPlatforms: []string{"facebook"}},
			{AdSetID: "as3", PublisherPlatforms: []string{"instagram"}},
		}

		result := CheckAudienceNetworkUsage(adsets)

		assert.Equal(t, domain.StatusPass, result.Status)
	})
}

func TestCheckLookalikeUtilization(t *testing.T) {
	t.Run("Lookalike detectado pelo nome do público", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{
			{
				AdSetID:             "as1",
				CustomAudiences:     []string{"aud1"},
				CustomAudienceNames: []string{"Lookalike (BR, 1%) - Compradores"},
			},
		}

		result := CheckLookalikeUtilization(adsets)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Contains(t, result.Message, "Utilized")
	})

	t.Run("Público personalizado sem lookalike - aviso", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{
			{
				AdSetID:             "as1",
				CustomAudiences:     []string{"aud1"},
				CustomAudienceNames: []string{"Compradores 180d"},
			},
		}

		result := CheckLookalikeUtilization(adsets)

		assert.Equal(t, domain.StatusWarning, result.Status)
		assert.Equal(t, 0, result.Count)
	})
}

func TestCheckOptimizationGoalDiversity(t *testing.T) {
	tests := []struct {
		name           string
		adsets         []domain.MetaAdSetRow
		expectedStatus domain.CheckStatus
	}{
		{
			name: "OFFSITE_CONVERSIONS combinada com outra meta - passa",
			adsets: []domain.MetaAdSetRow{
				{AdSetID: "as1", OptimizationGoal: "OFFSITE_CONVERSIONS"},
				{AdSetID: "as2", OptimizationGoal: "LINK_CLICKS"},
			},
			expectedStatus: domain.StatusPass,
		},
		{
			name: "Duas metas sem conversões - ainda passa pela contagem",
			adsets: []domain.MetaAdSetRow{
				{AdSetID: "as1", OptimizationGoal: "REACH"},
				{AdSetID: "as2", OptimizationGoal: "LINK_CLICKS"},
			},
			expectedStatus: domain.StatusPass,
		},
		{
			name: "Uma única meta - aviso",
			adsets: []domain.MetaAdSetRow{
				{AdSetID: "as1", OptimizationGoal: "LINK_CLICKS"},
				{AdSetID: "as2", OptimizationGoal: "LINK_CLICKS"},
			},
			expectedStatus: domain.StatusWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckOptimizationGoalDiversity(tt.adsets)
			assert.Equal(t, tt.expectedStatus, result.Status)
		})
	}
}

func TestCheckAdvantageAudienceUsage(t *testing.T) {
	t.Run("Sem Advantage+ - informativo", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{{AdSetID: "as1"}}

		result := CheckAdvantageAudienceUsage(adsets)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Com Advantage+ - passa", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{{AdSetID: "as1", AdvantageAudience: true}}

		result := CheckAdvantageAudienceUsage(adsets)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 1, result.Count)
	})
}

func TestCheckCustomAudienceUsage(t *testing.T) {
	t.Run("Nenhum público personalizado - aviso", func(t *testing.T) {
		adsets := []domain.MetaAdSetRow{{AdSetID: "as1"}}

		result := CheckCustomAudienceUsage(adsets)

		assert.Equal(t, domain.StatusWarning, result.Status)
	})
}

func TestRunAll(t *testing.T) {
	t.Run("Snapshot vazio produz o catálogo completo como informativo", func(t *testing.T) {
		snapshot := &domain.MetaSnapshot{AccountID: "act_1"}

		results := RunAll(snapshot)

		assert.Len(t, results, 18)
		for _, result := range results {
			assert.Equal(t, domain.StatusInfo, result.Status, result.CheckID)
		}
	})

	t.Run("Mesmo snapshot produz sempre os mesmos resultados", func(t *testing.T) {
		snapshot := &domain.MetaSnapshot{
			AccountID: "act_1",
			Ads: []domain.MetaAdRow{
				{AdID: "a1", URLTags: "utm_source=fb", PixelIDs: []string{"px"}, ImageHashes: []string{"h"}},
			},
			AdSets: []domain.MetaAdSetRow{
				{AdSetID: "as1", OptimizationGoal: "OFFSITE_CONVERSIONS"},
			},
		}

		first := RunAll(snapshot)
		second := RunAll(snapshot)

		assert.Equal(t, first, second)
	})
}
