package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func appCampaign(id, biddingGoal string) domain.GoogleCampaignRow {
	return domain.GoogleCampaignRow{
		ID:             id,
		Name:           "App " + id,
		ChannelType:    domain.GoogleChannelMultiChannel,
		AppID:          "com.example.app",
		AppStore:       "GOOGLE_APP_STORE",
		AppBiddingGoal: biddingGoal,
	}
}

func TestCheckSingleInAppAction(t *testing.T) {
	t.Run("Sem campanhas de app - resultado informativo", func(t *testing.T) {
		result := CheckSingleInAppAction(nil)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Meta de conversão dentro do app - passa", func(t *testing.T) {
		campaigns := []domain.GoogleCampaignRow{
			appCampaign("c1", "OPTIMIZE_IN_APP_CONVERSIONS_TARGET_INSTALL_COST"),
		}

		result := CheckSingleInAppAction(campaigns)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Metade otimizando apenas instalações - 50%, aviso", func(t *testing.T) {
		campaigns := []domain.GoogleCampaignRow{
			appCampaign("c1", "OPTIMIZE_IN_APP_CONVERSIONS_TARGET_CONVERSION_COST"),
			appCampaign("c2", "OPTIMIZE_INSTALLS_TARGET_INSTALL_COST"),
		}

		result := CheckSingleInAppAction(campaigns)

		assert.Equal(t, domain.StatusWarning, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Meta ausente vira UNKNOWN nos detalhes", func(t *testing.T) {
		result := CheckSingleInAppAction([]domain.GoogleCampaignRow{appCampaign("c1", "")})

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, "UNKNOWN", result.Details.Rows[0][3])
	})
}

func TestCheckAppAssetCounts(t *testing.T) {
	appAd := func(adID string, headlines, descriptions int) domain.GoogleAppAdRow {
		ad := domain.GoogleAppAdRow{
			CampaignID:   "c1",
			CampaignName: "App 1",
			AdGroupID:    "ag1",
			AdGroupName:  "Grupo 1",
			AdID:         adID,
		}
		for i := 0; i < headlines; i++ {
			ad.Headlines = append(ad.Headlines, "H")
		}
		for i := 0; i < descriptions; i++ {
			ad.Descriptions = append(ad.Descriptions, "D")
		}
		return ad
	}

	t.Run("Cinco títulos e cinco descrições - passa", func(t *testing.T) {
		result := CheckAppAssetCounts([]domain.GoogleAppAdRow{appAd("a1", 5, 5)})

		assert.Equal(t, domain.StatusPass, result.Status)
	})

	t.Run("Quatro títulos - falha com o problema nos detalhes", func(t *testing.T) {
		result := CheckAppAssetCounts([]domain.GoogleAppAdRow{appAd("a1", 4, 5)})

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Contains(t, result.Details.Rows[0][5], "Headlines: 4")
	})

	t.Run("Sem anúncios de app - resultado informativo", func(t *testing.T) {
		result := CheckAppAssetCounts(nil)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})
}

func TestAppManualChecks(t *testing.T) {
	campaigns := []domain.GoogleCampaignRow{appCampaign("c1", "")}

	t.Run("DDL e custom store listing são sempre informativos", func(t *testing.T) {
		ddl := CheckDeferredDeepLinking(campaigns)
		listing := CheckCustomStoreListing(campaigns)

		assert.Equal(t, domain.StatusInfo, ddl.Status)
		assert.Equal(t, domain.StatusInfo, listing.Status)
		assert.Equal(t, 1, ddl.Total)
		assert.NotNil(t, ddl.Details)
	})
}

func TestGoogleRunAll(t *testing.T) {
	t.Run("Snapshot vazio produz o catálogo completo como informativo", func(t *testing.T) {
		snapshot := &domain.GoogleSnapshot{CustomerID: "123"}

		results := RunAll(snapshot)

		assert.Len(t, results, 31)
		for _, result := range results {
			assert.Equal(t, domain.StatusInfo, result.Status, result.CheckID)
		}
	})

	t.Run("Mesmo snapshot produz sempre os mesmos resultados", func(t *testing.T) {
		snapshot := &domain.GoogleSnapshot{
			CustomerID: "123",
			Campaigns: []domain.GoogleCampaignRow{
				{ID: "c1", Name: "Search 1", ChannelType: domain.GoogleChannelSearch, PositiveGeoTargetType: "PRESENCE", UsesCampaignGoals: true},
			},
		}

		first := RunAll(snapshot)
		second := RunAll(snapshot)

		assert.Equal(t, first, second)
	})
}
