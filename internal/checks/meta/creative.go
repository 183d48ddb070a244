package meta

import (
	"fmt"
	"strconv"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// RunCreativeChecks executa as verificações de criativo
func RunCreativeChecks(snapshot *domain.MetaSnapshot) []domain.CheckResult {
	return []domain.CheckResult{
		CheckHeadlineCount(snapshot.Ads),
		CheckPrimaryTextCount(snapshot.Ads),
		CheckDescriptionCount(snapshot.Ads),
		CheckMissingCopyElements(snapshot.Ads),
		CheckCTAPresence(snapshot.Ads),
	}
}

// standardAds exclui carrossel, catálogo e publicação impulsionada: esses
// formatos têm criativo fixo ou dinâmico e não contam variações de texto
func standardAds(ads []domain.MetaAdRow) []domain.MetaAdRow {
	standard := make([]domain.MetaAdRow, 0, len(ads))
	for _, ad := range ads {
		if ad.IsCarousel() || ad.IsCatalogue() || ad.IsBoostedPost() {
			continue
		}
		standard = append(standard, ad)
	}
	return standard
}

func noStandardAdsResult(checkID, name string) domain.CheckResult {
	return domain.CheckResult{
		CheckID:  checkID,
		Name:     name,
		Category: domain.CategoryCreative,
		Status:   domain.StatusInfo,
		Message:  "No standard ads to check (all are carousel/catalogue/boosted)",
	}
}

type variationCounter func(ad *domain.MetaAdRow) int

// checkVariationCount é a base das três verificações de variações de texto
func checkVariationCount(
	ads []domain.MetaAdRow,
	checkID, name, unit string,
	minimum int,
	failRatio float64,
	counter variationCounter,
) domain.CheckResult {
	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryCreative)
	}

	standard := standardAds(ads)
	if len(standard) == 0 {
		return noStandardAdsResult(checkID, name)
	}

	details := domain.NewDetailTable("Campaign", "Adset", "Ad Name", "Ad ID", "Count")

	count := 0
	for i := range standard {
		ad := &standard[i]
		n := counter(ad)
		if n >= minimum {
			continue
		}
		count++
		details.AddRow(ad.CampaignName, ad.AdSetName, ad.AdName, ad.AdID, strconv.Itoa(n))
	}

	total := len(standard)
	pct := percentage(count, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryCreative,
		Status:         statusByRatio(count, total, failRatio),
		Message:        fmt.Sprintf("%d out of %d ads have fewer than %d %s (%v%%)", count, total, minimum, unit, pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      fmt.Sprintf(">= %d %s", minimum, unit),
		Recommendation: fmt.Sprintf("Add at least %d %s variations to allow Meta to optimize performance", minimum, unit),
	}
	if count > 0 {
		result.Details = details
	}
	return result
}

// CheckHeadlineCount verifica se os anúncios têm variações suficientes de
// título (mínimo 3)
func CheckHeadlineCount(ads []domain.MetaAdRow) domain.CheckResult {
	return checkVariationCount(
		ads, "headline_count", "Headline Variations", "headlines",
		MinHeadlineCount, headlineFailRatio,
		func(ad *domain.MetaAdRow) int { return len(ad.Headlines()) },
	)
}

// CheckPrimaryTextCount verifica as variações de texto principal (mínimo 3)
func CheckPrimaryTextCount(ads []domain.MetaAdRow) domain.CheckResult {
	return checkVariationCount(
		ads, "primary_text_count", "Primary Text Variations", "primary texts",
		MinPrimaryTextCount, primaryTextFailRatio,
		func(ad *domain.MetaAdRow) int { return len(ad.PrimaryTexts()) },
	)
}

// CheckDescriptionCount verifica as variações de descrição (mínimo 2)
func CheckDescriptionCount(ads []domain.MetaAdRow) domain.CheckResult {
	return checkVariationCount(
		ads, "description_count", "Description Variations", "descriptions",
		MinDescriptionCount, descriptionFailRatio,
		func(ad *domain.MetaAdRow) int { return len(ad.DescriptionTexts()) },
	)
}

// CheckMissingCopyElements verifica anúncios sem título ou sem texto
// principal no asset feed. Qualquer ocorrência falha.
func CheckMissingCopyElements(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "missing_copy_elements"
	const name = "Missing Copy Elements"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryCreative)
	}

	details := domain.NewDetailTable("Campaign", "Adset", "Ad Name", "Ad ID")

	count := 0
	for _, ad := range ads {
		if len(ad.Titles) > 0 && len(ad.Bodies) > 0 {
			continue
		}
		count++
		details.AddRow(ad.CampaignName, ad.AdSetName, ad.AdName, ad.AdID)
	}

	total := len(ads)
	pct := percentage(count, total)

	status := domain.StatusPass
	if count > 0 {
		status = domain.StatusFail
	}

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryCreative,
		Status:         status,
		Message:        fmt.Sprintf("%d out of %d ads missing headlines or primary text (%v%%)", count, total, pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      "0%",
		Recommendation: "All ads should have both headlines and primary text",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}

// CheckCTAPresence verifica a presença de call to action, no asset feed ou
// nos campos da publicação
func CheckCTAPresence(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "cta_presence"
	const name = "Call-to-Action Presence"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryCreative)
	}

	details := domain.NewDetailTable("Campaign", "Adset", "Ad Name", "Ad ID")

	count := 0
	for _, ad := range ads {
		if len(ad.CTAs()) > 0 {
			continue
		}
		count++
		details.AddRow(ad.CampaignName, ad.AdSetName, ad.AdName, ad.AdID)
	}

	total := len(ads)
	pct := percentage(count, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryCreative,
		Status:         statusByRatio(count, total, ctaFailRatio),
		Message:        fmt.Sprintf("%d out of %d ads missing call-to-action (%v%%)", count, total, pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      "< 20%",
		Recommendation: "Add clear call-to-action buttons to drive user engagement",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}
