package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func campaignsWithLimited(limited, ok int) []domain.GoogleCampaignRow {
	campaigns := make([]domain.GoogleCampaignRow, 0, limited+ok)
	for i := 0; i < limited; i++ {
		campaigns = append(campaigns, domain.GoogleCampaignRow{
			ID:                      "lim",
			Name:                    "Limitada",
			LimitedByBudget:         true,
			BudgetMicros:            1_500_000,
			RecommendedBudgetMicros: 3_000_000,
		})
	}
	for i := 0; i < ok; i++ {
		campaigns = append(campaigns, domain.GoogleCampaignRow{ID: "ok", Name: "Saudável"})
	}
	return campaigns
}

func TestCheckLimitedByBudget(t *testing.T) {
	t.Run("Sem campanhas - resultado informativo", func(t *testing.T) {
		result := CheckLimitedByBudget(nil)

		assert.Equal(t, "limited_by_budget", result.CheckID)
		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Nenhuma limitada - passa", func(t *testing.T) {
		result := CheckLimitedByBudget(campaignsWithLimited(0, 5))

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
		assert.Nil(t, result.Details)
	})

	t.Run("Uma limitada em dez - atinge os 10%, falha", func(t *testing.T) {
		result := CheckLimitedByBudget(campaignsWithLimited(1, 9))

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 10, result.Total)
		assert.Equal(t, 10.0, result.Percentage)
	})

	t.Run("Uma limitada em onze - abaixo dos 10%, passa", func(t *testing.T) {
		result := CheckLimitedByBudget(campaignsWithLimited(1, 10))

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Detalhes convertem o orçamento de micros", func(t *testing.T) {
		result := CheckLimitedByBudget(campaignsWithLimited(1, 0))

		assert.NotNil(t, result.Details)
		assert.Equal(t, "1.50", result.Details.Rows[0][2])
		assert.Equal(t, "3.00", result.Details.Rows[0][3])
	})
}

func TestCheckConversionGoal(t *testing.T) {
	campaign := func(id string, campaignGoals bool) domain.GoogleCampaignRow {
		return domain.GoogleCampaignRow{ID: id, Name: "Campaign " + id, UsesCampaignGoals: campaignGoals}
	}

	tests := []struct {
		name           string
		campaigns      []domain.GoogleCampaignRow
		expectedStatus domain.CheckStatus
		expectedCount  int
	}{
		{
			name: "Todas com meta própria - passa",
			campaigns: []domain.GoogleCampaignRow{
				campaign("c1", true), campaign("c2", true),
			},
			expectedStatus: domain.StatusPass,
		},
		{
			name: "Uma em cinco na meta da conta - 20%, aviso",
			campaigns: []domain.GoogleCampaignRow{
				campaign("c1", false),
				campaign("c2", true), campaign("c3", true),
				campaign("c4", true), campaign("c5", true),
			},
			expectedStatus: domain.StatusWarning,
			expectedCount:  1,
		},
		{
			name: "Duas em cinco na meta da conta - 40%, falha",
			campaigns: []domain.GoogleCampaignRow{
				campaign("c1", false), campaign("c2", false),
				campaign("c3", true), campaign("c4", true), campaign("c5", true),
			},
			expectedStatus: domain.StatusFail,
			expectedCount:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckConversionGoal(tt.campaigns)

			assert.Equal(t, tt.expectedStatus, result.Status)
			assert.Equal(t, tt.expectedCount, result.Count)
			assert.Equal(t, len(tt.campaigns), result.Total)
		})
	}
}

func TestCheckLocationTargeting(t *testing.T) {
	campaign := func(id, geoType string) domain.GoogleCampaignRow {
		return domain.GoogleCampaignRow{ID: id, Name: "Campaign " + id, PositiveGeoTargetType: geoType}
	}

	t.Run("Todas com PRESENCE - passa", func(t *testing.T) {
		result := CheckLocationTargeting([]domain.GoogleCampaignRow{
			campaign("c1", "PRESENCE"),
			campaign("c2", "PRESENCE"),
		})

		assert.Equal(t, domain.StatusPass, result.Status)
	})

	t.Run("Uma em quatro com PRESENCE_OR_INTEREST - 25%, aviso", func(t *testing.T) {
		result := CheckLocationTargeting([]domain.GoogleCampaignRow{
			campaign("c1", "PRESENCE_OR_INTEREST"),
			campaign("c2", "PRESENCE"),
			campaign("c3", "PRESENCE"),
			campaign("c4", "PRESENCE"),
		})

		assert.Equal(t, domain.StatusWarning, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 25.0, result.Percentage)
		assert.Equal(t, "PRESENCE_OR_INTEREST", result.Details.Rows[0][2])
	})

	t.Run("Metade incorreta - acima do limite, falha", func(t *testing.T) {
		result := CheckLocationTargeting([]domain.GoogleCampaignRow{
			campaign("c1", "PRESENCE_OR_INTEREST"),
			campaign("c2", "PRESENCE"),
		})

		assert.Equal(t, domain.StatusFail, result.Status)
	})
}
