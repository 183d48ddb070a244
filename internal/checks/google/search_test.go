package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func keyword(campaignID, adGroupID, text, matchType string, costMicros int64) domain.GoogleKeywordRow {
	return domain.GoogleKeywordRow{
		CampaignID:   campaignID,
		CampaignName: "Campaign " + campaignID,
		AdGroupID:    adGroupID,
		AdGroupName:  "AdGroup " + adGroupID,
		Text:         text,
		MatchType:    matchType,
		CostMicros:   costMicros,
		Impressions:  100,
	}
}

func TestCheckSpendSplit(t *testing.T) {
	t.Run("Distribuição 70:20:10 exata - passa", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis corrida", "EXACT", 70_000_000),
			keyword("c1", "ag1", "tenis", "PHRASE", 20_000_000),
			keyword("c1", "ag1", "calcados", "BROAD", 10_000_000),
		}

		result := CheckSpendSplit(keywords)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0.0, result.Percentage)
		assert.NotNil(t, result.Details)
	})

	t.Run("Exact dentro da tolerância de 5 pontos - passa", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis corrida", "EXACT", 65_000_000),
			keyword("c1", "ag1", "tenis", "PHRASE", 35_000_000),
		}

		result := CheckSpendSplit(keywords)

		assert.Equal(t, domain.StatusPass, result.Status)
	})

	t.Run("Exact abaixo da tolerância - falha", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis corrida", "EXACT", 40_000_000),
			keyword("c1", "ag1", "tenis", "BROAD", 60_000_000),
		}

		result := CheckSpendSplit(keywords)

		assert.Equal(t, domain.StatusFail, result.Status)
	})

	t.Run("Palavras negativas não entram no gasto", func(t *testing.T) {
		negative := keyword("c1", "ag1", "gratis", "BROAD", 999_000_000)
		negative.Negative = true
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis corrida", "EXACT", 80_000_000),
			keyword("c1", "ag1", "tenis", "PHRASE", 20_000_000),
			negative,
		}

		result := CheckSpendSplit(keywords)

		assert.Equal(t, domain.StatusPass, result.Status)
	})

	t.Run("Sem gasto - resultado informativo", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis", "EXACT", 0),
		}

		result := CheckSpendSplit(keywords)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})
}

func TestCheckAudienceObservation(t *testing.T) {
	campaigns := []domain.GoogleCampaignRow{
		{ID: "c1", Name: "Search 1", ChannelType: domain.GoogleChannelSearch},
	}

	t.Run("Campanha com os três públicos em observação - passa", func(t *testing.T) {
		criteria := []domain.GoogleCampaignCriterionRow{
			{CampaignID: "c1", Type: "USER_LIST", UserListName: "Visitantes 30d"},
			{CampaignID: "c1", Type: "USER_INTEREST", UserInterestTaxonomy: "In-Market Categories"},
			{CampaignID: "c1", Type: "USER_INTEREST", UserInterestTaxonomy: "Affinity Categories"},
		}

		result := CheckAudienceObservation(campaigns, criteria)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Públicos faltantes aparecem nos detalhes", func(t *testing.T) {
		criteria := []domain.GoogleCampaignCriterionRow{
			{CampaignID: "c1", Type: "USER_LIST", UserListName: "Visitantes 30d"},
		}

		result := CheckAudienceObservation(campaigns, criteria)

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, "Inmarket, Affinity", result.Details.Rows[0][2])
	})
}

func TestCheckRSACount(t *testing.T) {
	adGroups := []domain.GoogleAdGroupRow{
		{CampaignID: "c1", CampaignName: "Search 1", ID: "ag1", Name: "Grupo 1", ChannelType: domain.GoogleChannelSearch},
		{CampaignID: "c1", CampaignName: "Search 1", ID: "ag2", Name: "Grupo 2", ChannelType: domain.GoogleChannelSearch},
	}

	rsa := func(adGroupID, adID string, headlines ...string) domain.GoogleRSARow {
		return domain.GoogleRSARow{
			CampaignID: "c1",
			AdGroupID:  adGroupID,
			AdID:       adID,
			Headlines:  headlines,
		}
	}

	t.Run("Todos os grupos com 2 RSAs - passa", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			rsa("ag1", "a1", "H1"), rsa("ag1", "a2", "H2"),
			rsa("ag2", "a3", "H3"), rsa("ag2", "a4", "H4"),
		}

		result := CheckRSACount(adGroups, rsas)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Grupo com apenas 1 RSA - metade afetada, falha", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			rsa("ag1", "a1", "H1"), rsa("ag1", "a2", "H2"),
			rsa("ag2", "a3", "H3"),
		}

		result := CheckRSACount(adGroups, rsas)

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, "1", result.Details.Rows[0][3])
	})
}

func TestCheckUniqueRSARatio(t *testing.T) {
	t.Run("RSAs duplicados contam como um só - razão abaixo de 1, falha", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			{CampaignID: "c1", AdGroupID: "ag1", AdID: "a1", Headlines: []string{"H1", "H2"}, Descriptions: []string{"D1"}},
			{CampaignID: "c1", AdGroupID: "ag2", AdID: "a2", Headlines: []string{"H2", "H1"}, Descriptions: []string{"D1"}},
		}

		result := CheckUniqueRSARatio(rsas)

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("Um RSA distinto por grupo - razão 1:1, passa", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			{CampaignID: "c1", AdGroupID: "ag1", AdID: "a1", Headlines: []string{"H1"}},
			{CampaignID: "c1", AdGroupID: "ag2", AdID: "a2", Headlines: []string{"H2"}},
		}

		result := CheckUniqueRSARatio(rsas)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0.0, result.Percentage)
	})
}

func TestCheckCrossKeywordNegation(t *testing.T) {
	t.Run("Palavra do grupo negativada como Exact no outro - passa", func(t *testing.T) {
		negative := keyword("c1", "ag2", "tenis corrida", "EXACT", 0)
		negative.Negative = true
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis corrida", "EXACT", 0),
			keyword("c1", "ag2", "tenis casual", "EXACT", 0),
			negative,
		}

		result := CheckCrossKeywordNegation(keywords)

		// ag1->ag2 negativada; ag2->ag1 não: 1 de 2 em falta, 50%
		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 2, result.Total)
	})

	t.Run("Campanha com um único grupo - resultado informativo", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis", "EXACT", 0),
		}

		result := CheckCrossKeywordNegation(keywords)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Negativa Phrase não satisfaz a negativação cruzada", func(t *testing.T) {
		negative := keyword("c1", "ag2", "tenis corrida", "PHRASE", 0)
		negative.Negative = true
		keywords := []domain.GoogleKeywordRow{
			keyword("c1", "ag1", "tenis corrida", "EXACT", 0),
			keyword("c1", "ag2", "tenis casual", "EXACT", 0),
			negative,
		}

		result := CheckCrossKeywordNegation(keywords)

		assert.Equal(t, 2, result.Count)
	})
}

func TestCheckAdCopyQuality(t *testing.T) {
	rsaWithStrength := func(adID, strength string) domain.GoogleRSARow {
		return domain.GoogleRSARow{CampaignID: "c1", AdGroupID: "ag1", AdID: adID, AdStrength: strength}
	}

	t.Run("Todos Excellent ou Good - passa", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			rsaWithStrength("a1", "EXCELLENT"),
			rsaWithStrength("a2", "GOOD"),
		}

		result := CheckAdCopyQuality(rsas)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Metade abaixo de Good - 50%, aviso", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			rsaWithStrength("a1", "EXCELLENT"),
			rsaWithStrength("a2", "AVERAGE"),
		}

		result := CheckAdCopyQuality(rsas)

		assert.Equal(t, domain.StatusWarning, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Maioria Poor - falha", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			rsaWithStrength("a1", "POOR"),
			rsaWithStrength("a2", "POOR"),
			rsaWithStrength("a3", "GOOD"),
		}

		result := CheckAdCopyQuality(rsas)

		assert.Equal(t, domain.StatusFail, result.Status)
	})
}

func TestCheckSitelinks(t *testing.T) {
	campaigns := []domain.GoogleCampaignRow{
		{ID: "c1", Name: "Search 1", ChannelType: domain.GoogleChannelSearch},
	}

	sitelink := func(text string) domain.GoogleCampaignAssetRow {
		return domain.GoogleCampaignAssetRow{CampaignID: "c1", FieldType: "SITELINK", LinkText: text}
	}

	t.Run("Quatro sitelinks únicos - passa", func(t *testing.T) {
		assets := []domain.GoogleCampaignAssetRow{
			sitelink("Ofertas"), sitelink("Lançamentos"), sitelink("Contato"), sitelink("Sobre"),
		}

		result := CheckSitelinks(campaigns, assets)

		assert.Equal(t, domain.StatusPass, result.Status)
	})

	t.Run("Sitelinks duplicados contam uma vez - falha o mínimo", func(t *testing.T) {
		assets := []domain.GoogleCampaignAssetRow{
			sitelink("Ofertas"), sitelink("Ofertas"), sitelink("Contato"), sitelink("Sobre"),
		}

		result := CheckSitelinks(campaigns, assets)

		assert.Equal(t, 1, result.Count)
		assert.Equal(t, "3", result.Details.Rows[0][2])
	})
}

func TestCheckDisplayPath(t *testing.T) {
	t.Run("Path1 em branco conta como ausente", func(t *testing.T) {
		rsas := []domain.GoogleRSARow{
			{CampaignID: "c1", AdGroupID: "ag1", AdID: "a1", Path1: "ofertas"},
			{CampaignID: "c1", AdGroupID: "ag1", AdID: "a2", Path1: "   "},
		}

		result := CheckDisplayPath(rsas)

		assert.Equal(t, 1, result.Count)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, domain.StatusFail, result.Status)
	})
}

func TestCheckWeightedQualityScore(t *testing.T) {
	qsKeyword := func(adGroupName string, qs int, impressions int64) domain.GoogleKeywordRow {
		return domain.GoogleKeywordRow{
			CampaignID:   "c1",
			AdGroupID:    "ag1",
			AdGroupName:  adGroupName,
			Text:         "kw",
			MatchType:    "EXACT",
			QualityScore: qs,
			Impressions:  impressions,
		}
	}

	t.Run("Categorias acima dos limites - passa", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			qsKeyword("Brand - Institucional", 9, 1000),
			qsKeyword("Generic Shoes", 8, 1000),
			qsKeyword("Competitors", 6, 1000),
		}

		result := CheckWeightedQualityScore(keywords)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 0, result.Count)
	})

	t.Run("Brand abaixo de 9 - falha", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			qsKeyword("Branded Terms", 7, 1000),
		}

		result := CheckWeightedQualityScore(keywords)

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Média ponderada por impressões, não simples", func(t *testing.T) {
		// (5*100 + 9*900) / 1000 = 8.6 >= 7 para non-brand
		keywords := []domain.GoogleKeywordRow{
			qsKeyword("Generic A", 5, 100),
			qsKeyword("Generic B", 9, 900),
		}

		result := CheckWeightedQualityScore(keywords)

		assert.Equal(t, domain.StatusPass, result.Status)
	})

	t.Run("Sem palavras com índice de qualidade - informativo", func(t *testing.T) {
		keywords := []domain.GoogleKeywordRow{
			qsKeyword("Generic", 0, 1000),
		}

		result := CheckWeightedQualityScore(keywords)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})
}

func TestCheckKeywordsWithoutImpressions(t *testing.T) {
	withImpressions := func(n int) []domain.GoogleKeywordRow {
		keywords := make([]domain.GoogleKeywordRow, 0, n)
		for i := 0; i < n; i++ {
			keywords = append(keywords, keyword("c1", "ag1", "ok", "EXACT", 0))
		}
		return keywords
	}
	zero := keyword("c1", "ag1", "parada", "BROAD", 0)
	zero.Impressions = 0

	t.Run("Uma em dez sem impressões - 10%, passa", func(t *testing.T) {
		result := CheckKeywordsWithoutImpressions(append(withImpressions(9), zero))

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Duas em dez sem impressões - atinge os 20%, aviso", func(t *testing.T) {
		result := CheckKeywordsWithoutImpressions(append(withImpressions(8), zero, zero))

		assert.Equal(t, domain.StatusWarning, result.Status)
	})

	t.Run("Quatro em dez sem impressões - 40%, falha", func(t *testing.T) {
		result := CheckKeywordsWithoutImpressions(append(withImpressions(6), zero, zero, zero, zero))

		assert.Equal(t, domain.StatusFail, result.Status)
		assert.Equal(t, 40.0, result.Percentage)
	})
}
