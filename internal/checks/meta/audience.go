package meta

import (
	"fmt"
	"strings"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// RunAudienceChecks executa as verificações de público e segmentação
func RunAudienceChecks(snapshot *domain.MetaSnapshot) []domain.CheckResult {
	return []domain.CheckResult{
		CheckAudienceNetworkUsage(snapshot.AdSets),
		CheckLookalikeUtilization(snapshot.AdSets),
		CheckInterestTargeting(snapshot.AdSets),
		CheckOptimizationGoalDiversity(snapshot.AdSets),
		CheckAdvantageAudienceUsage(snapshot.AdSets),
		CheckCustomAudienceUsage(snapshot.AdSets),
	}
}

// CheckAudienceNetworkUsage verifica o uso do posicionamento Audience
// Network. Uso excessivo pode indicar tráfego de baixa qualidade.
func CheckAudienceNetworkUsage(adsets []domain.MetaAdSetRow) domain.CheckResult {
	const checkID = "audience_network_usage"
	const name = "Audience Network Usage"

	if len(adsets) == 0 {
		return noAdSetsResult(checkID, name)
	}

	details := domain.NewDetailTable(
		"Campaign", "Adset", "Adset ID", "Platforms", "Optimization Goal",
	)

	count := 0
	for _, adset := range adsets {
		if !usesAudienceNetwork(adset.PublisherPlatforms) {
			continue
		}
		count++
		details.AddRow(
			adset.CampaignName, adset.AdSetName, adset.AdSetID,
			strings.Join(adset.PublisherPlatforms, ", "), adset.OptimizationGoal,
		)
	}

	total := len(adsets)
	pct := percentage(count, total)

	// Acima de 50% dos conjuntos vira aviso
	status := domain.StatusPass
	if float64(count) >= float64(total)*audienceNetworkWarnRatio {
		status = domain.StatusWarning
	}

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAudience,
		Status:         status,
		Message:        countMessage(count, total, "adsets use Audience Network", pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Threshold:      "< 50%",
		Recommendation: "Monitor Audience Network performance - it can expand reach but may have lower quality",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}

func usesAudienceNetwork(platforms []string) bool {
	for _, p := range platforms {
		if strings.Contains(strings.ToLower(p), "audience_network") {
			return true
		}
	}
	return false
}

// CheckLookalikeUtilization verifica se públicos semelhantes são usados
func CheckLookalikeUtilization(adsets []domain.MetaAdSetRow) domain.CheckResult {
	const checkID = "lookalike_usage"
	const name = "Lookalike Audience Usage"

	if len(adsets) == 0 {
		return noAdSetsResult(checkID, name)
	}

	details := domain.NewDetailTable(
		"Campaign", "Adset", "Adset ID", "Lookalike Audiences", "Optimization Goal",
	)

	count := 0
	for _, adset := range adsets {
		lookalikes := lookalikeNames(adset.CustomAudienceNames)
		if len(lookalikes) == 0 {
			continue
		}
		count++
		details.AddRow(
			adset.CampaignName, adset.AdSetName, adset.AdSetID,
			strings.Join(lookalikes, ", "), adset.OptimizationGoal,
		)
	}

	total := len(adsets)

	status := domain.StatusWarning
	utilized := "Not Utilized"
	if count > 0 {
		status = domain.StatusPass
		utilized = "Utilized"
	}

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAudience,
		Status:         status,
		Message:        fmt.Sprintf("Lookalike audiences: %s (%d adsets)", utilized, count),
		Count:          count,
		Total:          total,
		Percentage:     percentage(count, total),
		Recommendation: "Create Lookalike Audiences based on your best customers to expand reach efficiently",
	}
	if count > 0 {
		result.Details = details
	}
	return result
}

func lookalikeNames(names []string) []string {
	found := make([]string, 0)
	for _, n := range names {
		if strings.Contains(strings.ToLower(n), "lookalike") {
			found = append(found, n)
		}
	}
	return found
}

// CheckInterestTargeting verifica se a segmentação por interesses é usada
func CheckInterestTargeting(adsets []domain.MetaAdSetRow) domain.CheckResult {
	const checkID = "interest_targeting"
	const name = "Interest Targeting Usage"

	if len(adsets) == 0 {
		return noAdSetsResult(checkID, name)
	}

	count := 0
	for _, adset := range adsets {
		if adset.HasInterestTargeting {
			count++
		}
	}

	total := len(adsets)

	status := domain.StatusInfo
	utilized := "Not Utilized"
	if count > 0 {
		status = domain.StatusPass
		utilized = "Utilized"
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAudience,
		Status:         status,
		Message:        fmt.Sprintf("Interest targeting: %s (%d adsets)", utilized, count),
		Count:          count,
		Total:          total,
		Percentage:     percentage(count, total),
		Recommendation: "Use interest targeting to reach users based on their behaviors and preferences",
	}
}

// CheckOptimizationGoalDiversity verifica se mais de uma meta de otimização
// está em teste. OFFSITE_CONVERSIONS combinada com qualquer outra meta conta
// como diversidade boa.
func CheckOptimizationGoalDiversity(adsets []domain.MetaAdSetRow) domain.CheckResult {
	const checkID = "optimization_goal_diversity"
	const name = "Optimization Goal Diversity"

	if len(adsets) == 0 {
		return noAdSetsResult(checkID, name)
	}

	goals := make(map[string]int)
	for _, adset := range adsets {
		goal := strings.TrimSpace(adset.OptimizationGoal)
		if goal == "" {
			continue
		}
		goals[goal]++
	}

	unique := len(goals)
	_, hasOffsite := goals["OFFSITE_CONVERSIONS"]
	otherGoals := unique
	if hasOffsite {
		otherGoals--
	}

	var status domain.CheckStatus
	var message string
	switch {
	case hasOffsite && otherGoals >= 1:
		status = domain.StatusPass
		message = fmt.Sprintf("Good diversity: %d unique optimization goals", unique)
	case unique >= MinOptimizationGoals:
		status = domain.StatusPass
		message = fmt.Sprintf("%d unique optimization goals being tested", unique)
	default:
		status = domain.StatusWarning
		message = fmt.Sprintf("Limited diversity: only %d optimization goal(s)", unique)
	}

	details := domain.NewDetailTable("Optimization Goal", "Adsets")
	for goal, n := range goals {
		details.AddRow(goal, fmt.Sprintf("%d", n))
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAudience,
		Status:         status,
		Message:        message,
		Count:          unique,
		Total:          len(adsets),
		Details:        details,
		Threshold:      fmt.Sprintf(">= %d goals", MinOptimizationGoals),
		Recommendation: "Test multiple optimization goals (Conversions, Link Clicks, Reach, etc.) to find what works best",
	}
}

// CheckAdvantageAudienceUsage verifica o uso do Advantage+ Audience
func CheckAdvantageAudienceUsage(adsets []domain.MetaAdSetRow) domain.CheckResult {
	const checkID = "advantage_audience_usage"
	const name = "Advantage+ Audience Usage"

	if len(adsets) == 0 {
		return noAdSetsResult(checkID, name)
	}

	count := 0
	for _, adset := range adsets {
		if adset.AdvantageAudience {
			count++
		}
	}

	total := len(adsets)
	pct := percentage(count, total)

	status := domain.StatusInfo
	if count > 0 {
		status = domain.StatusPass
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAudience,
		Status:         status,
		Message:        countMessage(count, total, "adsets use Advantage+ Audience", pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Recommendation: "Enable Advantage+ Audience to let Meta automatically expand your targeting",
	}
}

// CheckCustomAudienceUsage verifica o uso de públicos personalizados
func CheckCustomAudienceUsage(adsets []domain.MetaAdSetRow) domain.CheckResult {
	const checkID = "custom_audience_usage"
	const name = "Custom Audience Usage"

	if len(adsets) == 0 {
		return noAdSetsResult(checkID, name)
	}

	count := 0
	for _, adset := range adsets {
		if len(adset.CustomAudiences) > 0 {
			count++
		}
	}

	total := len(adsets)
	pct := percentage(count, total)

	status := domain.StatusWarning
	if count > 0 {
		status = domain.StatusPass
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategoryAudience,
		Status:         status,
		Message:        countMessage(count, total, "adsets use Custom Audiences", pct),
		Count:          count,
		Total:          total,
		Percentage:     pct,
		Recommendation: "Create Custom Audiences from website visitors, customer lists, or app users for effective retargeting",
	}
}
