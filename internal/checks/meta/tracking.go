package meta

import (
	"fmt"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// RunTrackingChecks executa as verificações de rastreamento
func RunTrackingChecks(snapshot *domain.MetaSnapshot) []domain.CheckResult {
	return []domain.CheckResult{
		CheckURLTagsPresence(snapshot.Ads),
		CheckPixelTracking(snapshot.Ads),
		CheckTrackingCoverage(snapshot.Ads),
	}
}

// CheckURLTagsPresence verifica se os anúncios têm parâmetros de URL
// configurados para rastreamento
func CheckURLTagsPresence(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "url_tags_presence"
	const name = "URL Tags Presence"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryTracking)
	}

	details := domain.NewDetailTable(
		"Campaign", "Campaign ID", "Adset", "Adset ID", "Ad Name", "Ad ID",
		"URL Tags", "FB Pixel",
	)

	count := 0
	for _, ad := range ads {
		if ad.URLTags != "" {
			continue
		}
		count++
		details.AddRow(
			ad.CampaignName, ad.CampaignID, ad.AdSetName, ad.AdSetID,
			ad.AdName, ad.AdID,
			"Missing", presentOrMissing(len(ad.PixelIDs) > 0),
		)
	}

	total := len(ads)
	pct := percentage(count, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryTracking,
		Status:         statusByRatio(count, total, urlTagsFailRatio),
		Message:        fmt.Sprintf("%d out of %d active ads missing URL tags (%v%%)", count, total, pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      "< 20%",
		Recommendation: "Add URL parameters to track ad performance and conversions accurately",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}

// CheckPixelTracking verifica a presença do pixel nos anúncios que não são
// de aplicativo (anúncios de app não exigem pixel)
func CheckPixelTracking(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "pixel_tracking"
	const name = "Facebook Pixel Tracking"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryTracking)
	}

	nonAppAds := make([]domain.MetaAdRow, 0, len(ads))
	for _, ad := range ads {
		if len(ad.ApplicationIDs) == 0 {
			nonAppAds = append(nonAppAds, ad)
		}
	}

	if len(nonAppAds) == 0 {
		return domain.CheckResult{
			CheckID:  checkID,
			Name:     name,
			Category: domain.CategoryTracking,
			Status:   domain.StatusInfo,
			Message:  "All ads are app ads (pixel not required)",
		}
	}

	details := domain.NewDetailTable(
		"Campaign", "Adset", "Ad Name", "Ad ID", "FB Pixel", "URL Tags",
	)

	count := 0
	for _, ad := range nonAppAds {
		if len(ad.PixelIDs) > 0 {
			continue
		}
		count++
		details.AddRow(
			ad.CampaignName, ad.AdSetName, ad.AdName, ad.AdID,
			"Missing", presentOrMissing(ad.URLTags != ""),
		)
	}

	total := len(nonAppAds)
	pct := percentage(count, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryTracking,
		Status:         statusByRatio(count, total, pixelFailRatio),
		Message:        fmt.Sprintf("%d out of %d non-app ads missing pixel tracking (%v%%)", count, total, pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      "< 30%",
		Recommendation: "Install Facebook Pixel to track conversions and optimize ad delivery",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}

// CheckTrackingCoverage verifica a cobertura geral: anúncios sem nenhuma
// forma de rastreamento (sem URL tags E sem pixel)
func CheckTrackingCoverage(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "tracking_coverage"
	const name = "Overall Tracking Coverage"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryTracking)
	}

	details := domain.NewDetailTable(
		"Campaign", "Adset", "Ad Name", "Ad ID", "URL Tags", "FB Pixel",
	)

	count := 0
	for _, ad := range ads {
		if ad.URLTags != "" || len(ad.PixelIDs) > 0 {
			continue
		}
		count++
		details.AddRow(
			ad.CampaignName, ad.AdSetName, ad.AdName, ad.AdID,
			"Missing", "Missing",
		)
	}

	total := len(ads)
	pct := percentage(count, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryTracking,
		Status:         statusByRatio(count, total, coverageFailRatio),
		Message:        fmt.Sprintf("%d out of %d ads have NO tracking at all (%v%%)", count, total, pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      "< 10%",
		Recommendation: "Every ad should have at least URL tags or pixel tracking configured",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}
