package google

import (
	"fmt"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// RunUniversalChecks executa as verificações aplicáveis a todos os tipos
// de campanha
func RunUniversalChecks(snapshot *domain.GoogleSnapshot) []domain.CheckResult {
	return []domain.CheckResult{
		CheckLimitedByBudget(snapshot.Campaigns),
		CheckConversionGoal(snapshot.Campaigns),
		CheckLocationTargeting(snapshot.Campaigns),
	}
}

// CheckLimitedByBudget verifica campanhas limitadas por orçamento.
// Devem ser menos de 10% das campanhas ativas.
func CheckLimitedByBudget(campaigns []domain.GoogleCampaignRow) domain.CheckResult {
	const checkID = "limited_by_budget"
	const name = "Limited by Budget Campaigns"

	if len(campaigns) == 0 {
		return infoResult(checkID, name, domain.CategoryUniversal, "No active campaigns found")
	}

	details := domain.NewDetailTable(
		"Campaign ID", "Campaign", "Current Budget", "Recommended Budget",
	)

	limited := 0
	for _, c := range campaigns {
		if !c.LimitedByBudget {
			continue
		}
		limited++
		details.AddRow(
			c.ID, c.Name,
			fmt.Sprintf("%.2f", float64(c.BudgetMicros)/1e6),
			fmt.Sprintf("%.2f", float64(c.RecommendedBudgetMicros)/1e6),
		)
	}

	total := len(campaigns)
	score := affectedScore(limited, total)

	status := domain.StatusFail
	if float64(limited) < float64(total)*LimitedBudgetThreshold {
		status = domain.StatusPass
	}

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryUniversal,
		Status:         status,
		Message:        fmt.Sprintf("%d/%d campaigns (%v%%) limited by budget", limited, total, score),
		Count:          limited,
		Total:          total,
		Percentage:     score,
		Threshold:      "< 10%",
		Recommendation: "Raise budgets or reallocate spend so campaigns are not constrained by budget",
	}
	if limited > 0 {
		result.Details = details
	}
	return result
}

// CheckConversionGoal verifica se as metas de conversão são específicas da
// campanha, não o padrão da conta
func CheckConversionGoal(campaigns []domain.GoogleCampaignRow) domain.CheckResult {
	const checkID = "conversion_goal"
	const name = "Conversion Goal - Campaign Specific"

	if len(campaigns) == 0 {
		return infoResult(checkID, name, domain.CategoryUniversal, "No active campaigns found")
	}

	details := domain.NewDetailTable("Campaign ID", "Campaign", "Goal Level")

	affected := 0
	for _, c := range campaigns {
		if c.UsesCampaignGoals {
			continue
		}
		affected++
		details.AddRow(c.ID, c.Name, "CUSTOMER")
	}

	total := len(campaigns)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryUniversal,
		Status:         statusByScore(score, 20),
		Message:        fmt.Sprintf("%d/%d campaigns missing campaign-specific conversion goals", affected, total),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      "All campaigns should have campaign-specific conversion goals",
		Recommendation: "Switch the conversion goals dropdown from Account Default to Campaign-specific",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

// CheckLocationTargeting verifica se a segmentação geográfica usa PRESENCE,
// não PRESENCE_OR_INTEREST
func CheckLocationTargeting(campaigns []domain.GoogleCampaignRow) domain.CheckResult {
	const checkID = "location_targeting"
	const name = "Location Targeting - Presence Only"

	if len(campaigns) == 0 {
		return infoResult(checkID, name, domain.CategoryUniversal, "No active campaigns found")
	}

	details := domain.NewDetailTable("Campaign ID", "Campaign", "Current Setting")

	affected := 0
	for _, c := range campaigns {
		if c.PositiveGeoTargetType == "PRESENCE" {
			continue
		}
		affected++
		details.AddRow(c.ID, c.Name, c.PositiveGeoTargetType)
	}

	total := len(campaigns)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryUniversal,
		Status:         statusByScore(score, 25),
		Message:        fmt.Sprintf("%d/%d campaigns have incorrect location targeting", affected, total),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      "All campaigns should use PRESENCE only",
		Recommendation: "Set location options to people in or regularly in your targeted locations",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}
