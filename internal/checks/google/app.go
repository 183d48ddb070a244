package google

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// Metas de lance que indicam otimização por ação dentro do app
var inAppGoalTypes = map[string]struct{}{
	"OPTIMIZE_IN_APP_CONVERSIONS_TARGET_CONVERSION_COST": {},
	"OPTIMIZE_IN_APP_CONVERSIONS_TARGET_INSTALL_COST":    {},
	"OPTIMIZE_RETURN_ON_ADVERTISING_SPEND":               {},
}

// RunAppChecks executa as verificações de campanhas de app. Deferred deep
// linking e custom store listing são informativas: dependem de configuração
// fora da API de anúncios.
func RunAppChecks(snapshot *domain.GoogleSnapshot) []domain.CheckResult {
	appCampaigns := snapshot.AppCampaigns()

	return []domain.CheckResult{
		CheckSingleInAppAction(appCampaigns),
		CheckAppAssetCounts(snapshot.AppAds),
		CheckDeferredDeepLinking(appCampaigns),
		CheckCustomStoreListing(appCampaigns),
	}
}

func noAppCampaignsResult(checkID, name string) domain.CheckResult {
	return infoResult(checkID, name, domain.CategoryApp, "No active App campaigns found")
}

// CheckSingleInAppAction verifica se as campanhas de app otimizam para uma
// única ação dentro do app
func CheckSingleInAppAction(campaigns []domain.GoogleCampaignRow) domain.CheckResult {
	const checkID = "app_single_in_app_action"
	const name = "Single In-App Action Optimization"

	if len(campaigns) == 0 {
		return noAppCampaignsResult(checkID, name)
	}

	details := domain.NewDetailTable("Campaign ID", "Campaign", "App ID", "Bidding Goal")

	compliant := 0
	affected := 0
	for _, c := range campaigns {
		goal := c.AppBiddingGoal
		if goal == "" {
			goal = "UNKNOWN"
		}
		if _, ok := inAppGoalTypes[goal]; ok {
			compliant++
			continue
		}
		affected++
		appID := c.AppID
		if appID == "" {
			appID = "N/A"
		}
		details.AddRow(c.ID, c.Name, appID, goal)
	}

	total := len(campaigns)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryApp,
		Status:         statusByScore(score, 50),
		Message:        compliantMessage(compliant, total, "App campaigns optimized on in-app action"),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      "Campaign bidding goal should be set to in-app conversion optimization",
		Recommendation: "Optimize each App campaign for a single in-app action event",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

// CheckAppAssetCounts verifica pelo menos 5 títulos e 5 descrições por
// anúncio de app
func CheckAppAssetCounts(ads []domain.GoogleAppAdRow) domain.CheckResult {
	const checkID = "app_asset_counts"
	const name = "Headlines/Descriptions >= 5 each (App)"

	if len(ads) == 0 {
		return infoResult(checkID, name, domain.CategoryApp, "No active App campaign ads found")
	}

	details := domain.NewDetailTable("Campaign", "Ad Group", "Ad ID", "Headlines", "Descriptions", "Issue")

	compliant := 0
	affected := 0
	for _, ad := range ads {
		headlines := len(ad.Headlines)
		descriptions := len(ad.Descriptions)

		issues := make([]string, 0, 2)
		if headlines < AppMinHeadlines {
			issues = append(issues, fmt.Sprintf("Headlines: %d (min %d)", headlines, AppMinHeadlines))
		}
		if descriptions < AppMinDescriptions {
			issues = append(issues, fmt.Sprintf("Descriptions: %d (min %d)", descriptions, AppMinDescriptions))
		}

		if len(issues) == 0 {
			compliant++
			continue
		}
		affected++
		details.AddRow(
			ad.CampaignName, ad.AdGroupName, ad.AdID,
			strconv.Itoa(headlines), strconv.Itoa(descriptions), strings.Join(issues, "; "),
		)
	}

	total := len(ads)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryApp,
		Status:         statusByScore(score, 10),
		Message:        compliantMessage(compliant, total, "App ads meet asset requirements"),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      fmt.Sprintf("Min: %d headlines, %d descriptions", AppMinHeadlines, AppMinDescriptions),
		Recommendation: "Provide the full set of text assets so Google can test more combinations",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

func appCampaignsInfoCheck(campaigns []domain.GoogleCampaignRow, checkID, name, message, threshold string) domain.CheckResult {
	if len(campaigns) == 0 {
		return noAppCampaignsResult(checkID, name)
	}

	details := domain.NewDetailTable("Campaign ID", "Campaign", "App ID", "App Store")
	for _, c := range campaigns {
		store := c.AppStore
		if store == "" {
			store = "Unknown"
		}
		details.AddRow(c.ID, c.Name, c.AppID, store)
	}

	return domain.CheckResult{
		CheckID:   checkID,
		Name:      name,
		Category:  domain.CategoryApp,
		Status:    domain.StatusInfo,
		Message:   fmt.Sprintf("Found %d App campaigns - %s", len(campaigns), message),
		Total:     len(campaigns),
		Details:   details,
		Threshold: threshold,
	}
}

// CheckDeferredDeepLinking é informativo: DDL é configurado no app, não na
// campanha
func CheckDeferredDeepLinking(campaigns []domain.GoogleCampaignRow) domain.CheckResult {
	return appCampaignsInfoCheck(campaigns,
		"app_deferred_deep_linking", "Deferred Deep Linking",
		"DDL check requires manual verification",
		"At least some campaigns should have DDL",
	)
}

// CheckCustomStoreListing é informativo: a listagem customizada é
// configurada na loja de aplicativos
func CheckCustomStoreListing(campaigns []domain.GoogleCampaignRow) domain.CheckResult {
	return appCampaignsInfoCheck(campaigns,
		"app_custom_store_listing", "Custom Store Listing",
		"Custom Store Listing requires manual verification",
		"At least one campaign should have custom store listing",
	)
}
