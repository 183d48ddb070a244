package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func standardAd(id string, headlines, bodies, descriptions, ctas []string) domain.MetaAdRow {
	return domain.MetaAdRow{
		AdID:          id,
		AdName:        "Ad " + id,
		AdSetName:     "Adset 1",
		CampaignName:  "Campaign 1",
		HasAssetFeed:  true,
		Titles:        headlines,
		Bodies:        bodies,
		Descriptions:  descriptions,
		CallToActions: ctas,
	}
}

func TestCheckHeadlineCount(t *testing.T) {
	t.Run("Anúncio com 2 títulos, 3 textos, pixel e sem CTA - títulos insuficientes", func(t *testing.T) {
		// Exemplo de referência do catálogo: 2 headlines < mínimo de 3
		ad := standardAd("a1",
			[]string{"Headline A", "Headline B"},
			[]string{"Body A", "Body B", "Body C"},
			[]string{"Desc A", "Desc B"},
			nil,
		)
		ad.PixelIDs = []string{"px1"}

		headline := CheckHeadlineCount([]domain.MetaAdRow{ad})
		assert.Equal(t, domain.StatusFail, headline.Status)
		assert.Equal(t, 1, headline.Count)

		primary := CheckPrimaryTextCount([]domain.MetaAdRow{ad})
		assert.Equal(t, domain.StatusPass, primary.Status)
		assert.Equal(t, 0, primary.Count)

		description := CheckDescriptionCount([]domain.MetaAdRow{ad})
		assert.Equal(t, domain.StatusPass, description.Status)

		cta := CheckCTAPresence([]domain.MetaAdRow{ad})
		assert.Equal(t, domain.StatusFail, cta.Status)
		assert.Equal(t, 1, cta.Count)
	})

	t.Run("Fallback para campos da publicação quando não há asset feed", func(t *testing.T) {
		ad := domain.MetaAdRow{
			AdID:          "a2",
			StoryLinkName: "Headline da publicação",
		}

		result := CheckHeadlineCount([]domain.MetaAdRow{ad})

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.NotNil(t, result.Details)
		assert.Equal(t, "1", result.Details.Rows[0][4])
	})

	t.Run("Carrossel, catálogo e impulsionado não entram na contagem", func(t *testing.T) {
		carousel := domain.MetaAdRow{
			AdID: "a3",
			ChildAttachments: []domain.ChildAttachment{
				{Name: "Card 1"}, {Name: "Card 2"},
			},
		}
		catalogue := domain.MetaAdRow{AdID: "a4", ProductSetID: "ps1"}
		boosted := domain.MetaAdRow{AdID: "a5", EffectiveStoryID: "123_456"}

		result := CheckHeadlineCount([]domain.MetaAdRow{carousel, catalogue, boosted})

		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Carrossel com mais de 5 cartões também fica fora da contagem", func(t *testing.T) {
		// A API do Meta aceita carrosséis de até 10 cartões
		carousel := domain.MetaAdRow{
			AdID: "a6",
			ChildAttachments: []domain.ChildAttachment{
				{Name: "Card 1"}, {Name: "Card 2"}, {Name: "Card 3"},
				{Name: "Card 4"}, {Name: "Card 5"}, {Name: "Card 6"},
			},
		}

		headline := CheckHeadlineCount([]domain.MetaAdRow{carousel})
		assert.Equal(t, domain.StatusInfo, headline.Status)

		primary := CheckPrimaryTextCount([]domain.MetaAdRow{carousel})
		assert.Equal(t, domain.StatusInfo, primary.Status)

		description := CheckDescriptionCount([]domain.MetaAdRow{carousel})
		assert.Equal(t, domain.StatusInfo, description.Status)
	})
}

func TestCheckMissingCopyElements(t *testing.T) {
	t.Run("Qualquer anúncio sem título ou texto principal falha", func(t *testing.T) {
		complete := standardAd("a1",
			[]string{"H1", "H2", "H3"},
			[]string{"B1", "B2", "B3"},
			nil, nil,
		)
		missingBody := standardAd("a2", []string{"H1"}, nil, nil, nil)

		result := CheckMissingCopyElements([]domain.MetaAdRow{complete, missingBody})

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 50.0, result.Percentage)
	})

	t.Run("Todos completos - passa", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			standardAd("a1", []string{"H1"}, []string{"B1"}, nil, nil),
		}

		result := CheckMissingCopyElements(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Nil(t, result.Details)
	})
}

func TestCheckCTAPresence(t *testing.T) {
	t.Run("CTA da publicação conta como presente", func(t *testing.T) {
		ad := domain.MetaAdRow{AdID: "a1", StoryLinkCTA: "LEARN_MORE"}

		result := CheckCTAPresence([]domain.MetaAdRow{ad})

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})
}
