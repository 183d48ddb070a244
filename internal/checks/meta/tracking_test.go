package meta

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func adWithTracking(id string, urlTags string, pixelIDs []string) domain.MetaAdRow {
	return domain.MetaAdRow{
		AdID:         id,
		AdName:       "Ad " + id,
		AdSetID:      "as1",
		AdSetName:    "Adset 1",
		CampaignID:   "c1",
		CampaignName: "Campaign 1",
		URLTags:      urlTags,
		PixelIDs:     pixelIDs,
	}
}

func TestCheckURLTagsPresence(t *testing.T) {
	tests := []struct {
		name           string
		ads            []domain.MetaAdRow
		expectedStatus domain.CheckStatus
		expectedCount  int
	}{
		{
			name:           "Sem anúncios - resultado informativo",
			ads:            nil,
			expectedStatus: domain.StatusInfo,
		},
		{
			name: "Todos os anúncios com URL tags - passa",
			ads: []domain.MetaAdRow{
				adWithTracking("a1", "utm_source=fb", nil),
				adWithTracking("a2", "utm_source=fb", nil),
			},
			expectedStatus: domain.StatusPass,
			expectedCount:  0,
		},
		{
			name: "Um de dez sem URL tags - abaixo do limite, aviso",
			ads: append(
				[]domain.MetaAdRow{adWithTracking("a1", "", []string{"px1"})},
				repeatAds(9, "utm_source=fb", nil)...,
			),
			expectedStatus: domain.StatusWarning,
			expectedCount:  1,
		},
		{
			name: "Dois de dez sem URL tags - atinge 20%, falha",
			ads: append(
				[]domain.MetaAdRow{
					adWithTracking("a1", "", nil),
					adWithTracking("a2", "", nil),
				},
				repeatAds(8, "utm_source=fb", nil)...,
			),
			expectedStatus: domain.StatusFail,
			expectedCount:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CheckURLTagsPresence(tt.ads)

			assert.Equal(t, "url_tags_presence", result.CheckID)
			assert.Equal(t, domain.CategoryTracking, result.Category)
			assert.Equal(t, tt.expectedStatus, result.Status)
			if tt.ads != nil {
				assert.Equal(t, tt.expectedCount, result.Count)
				assert.Equal(t, len(tt.ads), result.Total)
			}
		})
	}
}

func TestCheckPixelTracking(t *testing.T) {
	t.Run("Apenas anúncios de app - pixel não exigido, informativo", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			{AdID: "a1", ApplicationIDs: []string{"app1"}},
			{AdID: "a2", ApplicationIDs: []string{"app2"}},
		}

		result := CheckPixelTracking(ads)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Anúncios de app não entram no total", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			adWithTracking("a1", "", []string{"px1"}),
			{AdID: "a2", ApplicationIDs: []string{"app1"}},
		}

		result := CheckPixelTracking(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Todos sem pixel - falha", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			adWithTracking("a1", "utm_source=fb", nil),
			adWithTracking("a2", "", nil),
		}

		result := CheckPixelTracking(ads)

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 2, result.Count)
		assert.NotNil(t, result.Details)
		assert.Len(t, result.Details.Rows, 2)
	})
}

func TestCheckTrackingCoverage(t *testing.T) {
	t.Run("Anúncio com apenas pixel ainda conta como rastreado", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			adWithTracking("a1", "", []string{"px1"}),
			adWithTracking("a2", "utm_source=fb", nil),
		}

		result := CheckTrackingCoverage(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Um anúncio sem nenhum rastreamento em dez - atinge 10%, falha", func(t *testing.T) {
		ads := append(
			[]domain.MetaAdRow{adWithTracking("a1", "", nil)},
			repeatAds(9, "utm_source=fb", []string{"px1"})...,
		)

		result := CheckTrackingCoverage(ads)

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 10, result.Total)
		assert.Equal(t, 10.0, result.Percentage)
	})
}

func repeatAds(n int, urlTags string, pixelIDs []string) []domain.MetaAdRow {
	ads := make([]domain.MetaAdRow, 0, n)
	for i := 0; i < n; i++ {
		ads = append(ads, adWithTracking(fmt.Sprintf("ok%d", i), urlTags, pixelIDs))
	}
	return ads
}
