package meta

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// RunAdFormatChecks executa as verificações de formato de anúncio
func RunAdFormatChecks(snapshot *domain.MetaSnapshot) []domain.CheckResult {
	return []domain.CheckResult{
		CheckAdFormatDistribution(snapshot.Ads),
		CheckVideoAdPresence(snapshot.Ads),
		CheckCarouselUsage(snapshot.Ads),
		CheckDCOUsage(snapshot.Ads),
	}
}

// determineAdType classifica o anúncio a partir do criativo normalizado
func determineAdType(ad *domain.MetaAdRow) string {
	for _, format := range ad.AdFormats {
		f := strings.ToUpper(strings.TrimSpace(format))
		if f != "" && f != "AUTOMATIC_FORMAT" {
			return f
		}
	}

	if ad.HasAssetGroups {
		return "DCO"
	}

	if ad.IsCarousel() {
		return "CAROUSEL"
	}

	if len(ad.ImageHashes) > 0 {
		return "IMAGE"
	}

	if len(ad.VideoIDs) > 0 || ad.StoryVideoID != "" {
		return "VIDEO"
	}

	return "UNKNOWN"
}

// CheckAdFormatDistribution verifica a diversidade de formatos: contas
// saudáveis usam ao menos 2 formatos diferentes
func CheckAdFormatDistribution(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "ad_format_distribution"
	const name = "Ad Format Distribution"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryAdFormat)
	}

	distribution := make(map[string]int)
	for i := range ads {
		distribution[determineAdType(&ads[i])]++
	}

	total := len(ads)
	uniqueFormats := len(distribution)

	status := domain.StatusWarning
	if uniqueFormats >= 2 {
		status = domain.StatusPass
	}

	formats := make([]string, 0, uniqueFormats)
	for format := range distribution {
		formats = append(formats, format)
	}
	sort.Strings(formats)

	parts := make([]string, 0, uniqueFormats)
	details := domain.NewDetailTable("Format", "Ads", "Share")
	for _, format := range formats {
		n := distribution[format]
		pct := percentage(n, total)
		parts = append(parts, fmt.Sprintf("%s: %d (%v%%)", format, n, pct))
		details.AddRow(format, fmt.Sprintf("%d", n), fmt.Sprintf("%v%%", pct))
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAdFormat,
		Status:         status,
		Message:        fmt.Sprintf("%d unique ad formats found: %s", uniqueFormats, strings.Join(parts, ", ")),
		Count:          uniqueFormats,
		Total:          total,
		Details:        details,
		Threshold:      ">= 2 formats",
		Recommendation: "Use diverse ad formats (Image, Video, Carousel, DCO) to reach different audiences effectively",
	}
}

// CheckVideoAdPresence verifica se a conta usa anúncios em vídeo
func CheckVideoAdPresence(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "video_usage"
	const name = "Video Ad Usage"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryAdFormat)
	}

	count := 0
	for _, ad := range ads {
		if len(ad.VideoIDs) > 0 || ad.StoryVideoID != "" {
			count++
		}
	}

	total := len(ads)
	pct := percentage(count, total)

	status := domain.StatusWarning
	if count > 0 {
		status = domain.StatusPass
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAdFormat,
		Status:         status,
		Message:        countMessage(count, total, "ads use video", pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Recommendation: "Consider adding video ads for better engagement and storytelling",
	}
}

// CheckCarouselUsage verifica se a conta usa anúncios em carrossel
func CheckCarouselUsage(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "carousel_usage"
	const name = "Carousel Ad Usage"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryAdFormat)
	}

	count := 0
	for i := range ads {
		if ads[i].IsCarousel() {
			count++
		}
	}

	total := len(ads)
	pct := percentage(count, total)

	status := domain.StatusInfo
	if count > 0 {
		status = domain.StatusPass
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAdFormat,
		Status:         status,
		Message:        countMessage(count, total, "ads use carousel format", pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Recommendation: "Use carousel ads to showcase multiple products or tell a story across cards",
	}
}

// CheckDCOUsage verifica o uso de Dynamic Creative Optimization
func CheckDCOUsage(ads []domain.MetaAdRow) domain.CheckResult {
	const checkID = "dco_usage"
	const name = "DCO (Dynamic Creative) Usage"

	if len(ads) == 0 {
		return noAdsResult(checkID, name, domain.CategoryAdFormat)
	}

	count := 0
	for _, ad := range ads {
		if ad.HasAssetGroups {
			count++
		}
	}

	total := len(ads)
	pct := percentage(count, total)

	status := domain.StatusWarning
	if count > 0 {
		status = domain.StatusPass
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAdFormat,
		Status:         status,
		Message:        countMessage(count, total, "ads use Dynamic Creative", pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Recommendation: "Use Dynamic Creative to let Meta automatically test and optimize creative combinations",
	}
}
