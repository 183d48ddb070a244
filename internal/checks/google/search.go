package google

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/healthcard-api/internal/domain"
	"github.com/vfg2006/healthcard-api/pkg/utils"
)

// Palavras nos nomes dos grupos que identificam a categoria do termo
var (
	brandKeywords      = []string{"brand", "branded"}
	competitorKeywords = []string{"competitor", "competitive", "comp"}
)

// RunSearchChecks executa as verificações de campanhas de pesquisa
func RunSearchChecks(snapshot *domain.GoogleSnapshot) []domain.CheckResult {
	searchCampaigns := snapshot.SearchCampaigns()
	searchAdGroups := adGroupsByChannel(snapshot.AdGroups, domain.GoogleChannelSearch)

	return []domain.CheckResult{
		CheckSpendSplit(snapshot.Keywords),
		CheckAudienceObservation(searchCampaigns, snapshot.CampaignCriteria),
		CheckRSACount(searchAdGroups, snapshot.RSAs),
		CheckUniqueRSARatio(snapshot.RSAs),
		CheckCrossKeywordNegation(snapshot.Keywords),
		CheckAdCopyQuality(snapshot.RSAs),
		CheckSitelinks(searchCampaigns, snapshot.CampaignAssets),
		CheckDisplayPath(snapshot.RSAs),
		CheckWeightedQualityScore(snapshot.Keywords),
		CheckKeywordsWithoutImpressions(snapshot.Keywords),
	}
}

func adGroupsByChannel(adGroups []domain.GoogleAdGroupRow, channel string) []domain.GoogleAdGroupRow {
	filtered := make([]domain.GoogleAdGroupRow, 0, len(adGroups))
	for _, ag := range adGroups {
		if ag.ChannelType == channel {
			filtered = append(filtered, ag)
		}
	}
	return filtered
}

// CheckSpendSplit verifica a distribuição de gasto 70:20:10 entre os tipos
// de correspondência (Exact:Phrase:Broad) nos últimos 30 dias
func CheckSpendSplit(keywords []domain.GoogleKeywordRow) domain.CheckResult {
	const checkID = "spend_split"
	const name = "Contribution of Spends - 70:20:10 (Exact:Phrase:Broad)"

	if len(keywords) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No keyword data found for search campaigns")
	}

	spendByMatchType := make(map[string]float64)
	var totalSpend float64
	for _, kw := range keywords {
		if kw.Negative {
			continue
		}
		spend := float64(kw.CostMicros) / 1e6
		spendByMatchType[kw.MatchType] += spend
		totalSpend += spend
	}

	if totalSpend == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No spend data found")
	}

	exactPct := spendByMatchType["EXACT"] / totalSpend
	phrasePct := spendByMatchType["PHRASE"] / totalSpend
	broadPct := spendByMatchType["BROAD"] / totalSpend

	exactOK := exactPct >= SpendSplitExact-SpendSplitTolerance

	status := domain.StatusFail
	if exactOK {
		status = domain.StatusPass
	}

	// A pontuação mede o desvio do alvo de 70% em Exact, amplificado
	deviation := utils.RoundWithTwoDecimalPlace(abs(exactPct*100-SpendSplitExact*100) * 2)
	if deviation > 100 {
		deviation = 100
	}

	details := domain.NewDetailTable("Match Type", "Spend", "Percentage", "Target")
	details.AddRow("EXACT", fmt.Sprintf("%.2f", spendByMatchType["EXACT"]), fmt.Sprintf("%.1f%%", exactPct*100), ">= 70%")
	details.AddRow("PHRASE", fmt.Sprintf("%.2f", spendByMatchType["PHRASE"]), fmt.Sprintf("%.1f%%", phrasePct*100), "~20%")
	details.AddRow("BROAD", fmt.Sprintf("%.2f", spendByMatchType["BROAD"]), fmt.Sprintf("%.1f%%", broadPct*100), "~10%")

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         status,
		Message:        fmt.Sprintf("Exact: %.1f%%, Phrase: %.1f%%, Broad: %.1f%%", exactPct*100, phrasePct*100, broadPct*100),
		Percentage:     deviation,
		Details:        details,
		Threshold:      "70:20:10 (Exact:Phrase:Broad)",
		Recommendation: "Concentrate spend on exact match keywords and use phrase and broad for discovery",
	}
}

// CheckAudienceObservation verifica se cada campanha de pesquisa observa os
// três tipos de público: remarketing, in-market e afinidade
func CheckAudienceObservation(campaigns []domain.GoogleCampaignRow, criteria []domain.GoogleCampaignCriterionRow) domain.CheckResult {
	const checkID = "audience_observation"
	const name = "Audience in Observation - Remarketing, Inmarket, Affinity"

	if len(campaigns) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No active search campaigns found")
	}

	type audienceFlags struct{ remarketing, inmarket, affinity bool }
	byCampaign := make(map[string]*audienceFlags)
	for _, c := range campaigns {
		byCampaign[c.ID] = &audienceFlags{}
	}

	for _, criterion := range criteria {
		flags, ok := byCampaign[criterion.CampaignID]
		if !ok {
			continue
		}
		switch criterion.Type {
		case "USER_LIST":
			flags.remarketing = true
		case "USER_INTEREST":
			taxonomy := strings.ToLower(criterion.UserInterestTaxonomy)
			if strings.Contains(taxonomy, "inmarket") || strings.Contains(taxonomy, "in-market") {
				flags.inmarket = true
			} else if strings.Contains(taxonomy, "affinity") {
				flags.affinity = true
			}
		}
	}

	details := domain.NewDetailTable("Campaign ID", "Campaign", "Missing Audiences")

	compliant := 0
	affected := 0
	for _, c := range campaigns {
		flags := byCampaign[c.ID]
		missing := make([]string, 0, 3)
		if !flags.remarketing {
			missing = append(missing, "Remarketing")
		}
		if !flags.inmarket {
			missing = append(missing, "Inmarket")
		}
		if !flags.affinity {
			missing = append(missing, "Affinity")
		}
		if len(missing) == 0 {
			compliant++
			continue
		}
		affected++
		details.AddRow(c.ID, c.Name, strings.Join(missing, ", "))
	}

	total := len(campaigns)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         statusByScore(score, 20),
		Message:        compliantMessage(compliant, total, "campaigns have all 3 audience types"),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      "All campaigns should have Remarketing, Inmarket, and Affinity",
		Recommendation: "Attach all three audience types in observation mode to gather bid signal data",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

// CheckRSACount verifica se cada grupo de anúncios tem pelo menos 2 RSAs
func CheckRSACount(adGroups []domain.GoogleAdGroupRow, rsas []domain.GoogleRSARow) domain.CheckResult {
	const checkID = "rsa_count"
	const name = "Number of RSAs - At least 2 per ad group"

	if len(adGroups) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No active search ad groups found")
	}

	rsaCount := make(map[string]int)
	for _, rsa := range rsas {
		rsaCount[rsa.CampaignID+"_"+rsa.AdGroupID]++
	}

	details := domain.NewDetailTable("Campaign", "Ad Group", "Ad Group ID", "RSAs")

	compliant := 0
	affected := 0
	for _, ag := range adGroups {
		n := rsaCount[ag.CampaignID+"_"+ag.ID]
		if n >= MinRSAsPerAdGroup {
			compliant++
			continue
		}
		affected++
		details.AddRow(ag.CampaignName, ag.Name, ag.ID, strconv.Itoa(n))
	}

	total := len(adGroups)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         statusByScore(score, 10),
		Message:        compliantMessage(compliant, total, fmt.Sprintf("ad groups have %d+ RSAs", MinRSAsPerAdGroup)),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      fmt.Sprintf("Each ad group should have at least %d RSAs", MinRSAsPerAdGroup),
		Recommendation: "Add a second responsive search ad to every ad group to let Google rotate variants",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

// rsaSignature identifica um RSA pelo conteúdo: títulos e descrições
// ordenados. RSAs com o mesmo conteúdo contam como um só.
func rsaSignature(rsa *domain.GoogleRSARow) string {
	headlines := append([]string(nil), rsa.Headlines...)
	descriptions := append([]string(nil), rsa.Descriptions...)
	sort.Strings(headlines)
	sort.Strings(descriptions)
	return strings.Join(headlines, "|") + "_" + strings.Join(descriptions, "|")
}

// CheckUniqueRSARatio verifica a razão entre RSAs únicos e grupos de
// anúncios, que deve ser pelo menos 1:1
func CheckUniqueRSARatio(rsas []domain.GoogleRSARow) domain.CheckResult {
	const checkID = "unique_rsa_ratio"
	const name = "Unique RSAs Ratio - At least 1:1"

	uniqueRSAs := make(map[string]struct{})
	adGroups := make(map[string]struct{})
	for i := range rsas {
		adGroups[rsas[i].CampaignID+"_"+rsas[i].AdGroupID] = struct{}{}
		uniqueRSAs[rsaSignature(&rsas[i])] = struct{}{}
	}

	if len(adGroups) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No search ad groups found")
	}

	uniqueCount := len(uniqueRSAs)
	adGroupCount := len(adGroups)
	ratio := float64(uniqueCount) / float64(adGroupCount)

	status := domain.StatusFail
	if ratio >= MinUniqueRSARatio {
		status = domain.StatusPass
	}

	gap := MinUniqueRSARatio - ratio
	if gap < 0 {
		gap = 0
	}
	score := utils.RoundWithTwoDecimalPlace(gap * 100)
	if score > 100 {
		score = 100
	}

	details := domain.NewDetailTable("Metric", "Value")
	details.AddRow("Unique RSAs", strconv.Itoa(uniqueCount))
	details.AddRow("Total Ad Groups", strconv.Itoa(adGroupCount))
	details.AddRow("Ratio", fmt.Sprintf("%.2f:1", ratio))

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         status,
		Message:        fmt.Sprintf("Unique RSAs: %d, Ad Groups: %d, Ratio: %.2f:1", uniqueCount, adGroupCount, ratio),
		Count:          uniqueCount,
		Total:          adGroupCount,
		Percentage:     score,
		Details:        details,
		Threshold:      fmt.Sprintf("Ratio should be at least %.0f:1", MinUniqueRSARatio),
		Recommendation: "Write distinct ad copy per ad group instead of duplicating the same RSA",
	}
}

// CheckCrossKeywordNegation verifica se as palavras-chave de um grupo são
// negativadas como Exact nos demais grupos da mesma campanha
func CheckCrossKeywordNegation(keywords []domain.GoogleKeywordRow) domain.CheckResult {
	const checkID = "cross_keyword_negation"
	const name = "Cross Keyword Negation"

	type adGroupInfo struct {
		name     string
		keywords map[string]struct{}
	}
	type campaignInfo struct {
		name      string
		adGroups  map[string]*adGroupInfo
		negatives map[string]map[string]struct{}
	}

	campaigns := make(map[string]*campaignInfo)

	campaignOf := func(kw *domain.GoogleKeywordRow) *campaignInfo {
		c, ok := campaigns[kw.CampaignID]
		if !ok {
			c = &campaignInfo{
				name:      kw.CampaignName,
				adGroups:  make(map[string]*adGroupInfo),
				negatives: make(map[string]map[string]struct{}),
			}
			campaigns[kw.CampaignID] = c
		}
		return c
	}

	for i := range keywords {
		kw := &keywords[i]
		c := campaignOf(kw)
		text := strings.ToLower(kw.Text)

		if kw.Negative {
			if kw.MatchType != "EXACT" {
				continue
			}
			if c.negatives[kw.AdGroupID] == nil {
				c.negatives[kw.AdGroupID] = make(map[string]struct{})
			}
			c.negatives[kw.AdGroupID][text] = struct{}{}
			continue
		}

		ag, ok := c.adGroups[kw.AdGroupID]
		if !ok {
			ag = &adGroupInfo{name: kw.AdGroupName, keywords: make(map[string]struct{})}
			c.adGroups[kw.AdGroupID] = ag
		}
		ag.keywords[text] = struct{}{}
	}

	details := domain.NewDetailTable("Campaign", "Source Ad Group", "Keyword", "Missing In Ad Group")

	totalChecks := 0
	passedChecks := 0
	const detailLimit = 100

	for _, c := range campaigns {
		if len(c.adGroups) < 2 {
			continue
		}
		for agID, ag := range c.adGroups {
			for keyword := range ag.keywords {
				for otherID, other := range c.adGroups {
					if otherID == agID {
						continue
					}
					totalChecks++
					if _, negated := c.negatives[otherID][keyword]; negated {
						passedChecks++
						continue
					}
					if len(details.Rows) < detailLimit {
						details.AddRow(c.name, ag.name, keyword, other.name)
					}
				}
			}
		}
	}

	if totalChecks == 0 {
		return infoResult(checkID, name, domain.CategorySearch,
			"No campaigns with multiple ad groups found for cross-negation")
	}

	score := affectedScore(totalChecks-passedChecks, totalChecks)

	status := domain.StatusFail
	switch {
	case score <= 10:
		status = domain.StatusPass
	case score <= 30:
		status = domain.StatusWarning
	}

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         status,
		Message:        fmt.Sprintf("%d/%d cross-negations in place (%v%% missing)", passedChecks, totalChecks, score),
		Count:          totalChecks - passedChecks,
		Total:          totalChecks,
		Percentage:     score,
		Threshold:      "Keywords from one ad group should be negated in other ad groups (within same campaign)",
		Recommendation: "Add exact-match negatives so ad groups do not compete for the same queries",
	}
	if totalChecks > passedChecks {
		result.Details = details
	}
	return result
}

// CheckAdCopyQuality verifica a distribuição de ad strength dos RSAs.
// A maioria deve ser Excellent ou Good.
func CheckAdCopyQuality(rsas []domain.GoogleRSARow) domain.CheckResult {
	const checkID = "ad_copy_quality"
	const name = "Ad Copy Quality - Ad Strength Distribution"

	if len(rsas) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No responsive search ads found")
	}

	strengthCounts := make(map[string]int)
	for _, rsa := range rsas {
		strength := rsa.AdStrength
		if strength == "" {
			strength = "UNKNOWN"
		}
		strengthCounts[strength]++
	}

	total := len(rsas)
	excellentGood := strengthCounts["EXCELLENT"] + strengthCounts["GOOD"]
	affected := total - excellentGood
	score := affectedScore(affected, total)

	status := domain.StatusFail
	switch {
	case score <= 30:
		status = domain.StatusPass
	case score <= 50:
		status = domain.StatusWarning
	}

	strengths := make([]string, 0, len(strengthCounts))
	for strength := range strengthCounts {
		strengths = append(strengths, strength)
	}
	sort.Strings(strengths)

	details := domain.NewDetailTable("Ad Strength", "Count", "Percentage")
	for _, strength := range strengths {
		n := strengthCounts[strength]
		details.AddRow(strength, strconv.Itoa(n), fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100))
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         status,
		Message:        fmt.Sprintf("Excellent/Good: %d/%d (%v%% below)", excellentGood, total, score),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Details:        details,
		Threshold:      "Majority of ads should have Excellent or Good strength",
		Recommendation: "Improve headline and description variety on ads rated Average or Poor",
	}
}

// CheckSitelinks verifica se cada campanha de pesquisa tem pelo menos 4
// sitelinks únicos
func CheckSitelinks(campaigns []domain.GoogleCampaignRow, assets []domain.GoogleCampaignAssetRow) domain.CheckResult {
	const checkID = "sitelinks"
	const name = "4 Unique Sitelinks per RSA"

	if len(campaigns) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No active search campaigns found")
	}

	uniqueSitelinks := make(map[string]map[string]struct{})
	for _, asset := range assets {
		if asset.FieldType != "SITELINK" || asset.LinkText == "" {
			continue
		}
		if uniqueSitelinks[asset.CampaignID] == nil {
			uniqueSitelinks[asset.CampaignID] = make(map[string]struct{})
		}
		uniqueSitelinks[asset.CampaignID][asset.LinkText] = struct{}{}
	}

	details := domain.NewDetailTable("Campaign ID", "Campaign", "Sitelinks")

	compliant := 0
	affected := 0
	for _, c := range campaigns {
		n := len(uniqueSitelinks[c.ID])
		if n >= MinSitelinks {
			compliant++
			continue
		}
		affected++
		details.AddRow(c.ID, c.Name, strconv.Itoa(n))
	}

	total := len(campaigns)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         statusByScore(score, 20),
		Message:        compliantMessage(compliant, total, fmt.Sprintf("campaigns have %d+ sitelinks", MinSitelinks)),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      fmt.Sprintf("Each campaign should have at least %d unique sitelinks", MinSitelinks),
		Recommendation: "Attach at least four sitelink assets with distinct link text per campaign",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

// CheckDisplayPath verifica se os RSAs têm display path preenchido
func CheckDisplayPath(rsas []domain.GoogleRSARow) domain.CheckResult {
	const checkID = "display_path"
	const name = "Display Path Added"

	if len(rsas) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No responsive search ads found")
	}

	details := domain.NewDetailTable("Campaign", "Ad Group", "Ad ID", "Path1", "Path2")

	compliant := 0
	affected := 0
	for _, rsa := range rsas {
		if strings.TrimSpace(rsa.Path1) != "" {
			compliant++
			continue
		}
		affected++
		path2 := rsa.Path2
		if path2 == "" {
			path2 = "-"
		}
		details.AddRow(rsa.CampaignName, rsa.AdGroupName, rsa.AdID, "Missing", path2)
	}

	total := len(rsas)
	score := affectedScore(affected, total)

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         statusByScore(score, 10),
		Message:        compliantMessage(compliant, total, "ads have display path set"),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      "All ads should have display path",
		Recommendation: "Fill path1 (and ideally path2) to make display URLs more relevant",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

type keywordCategory struct {
	threshold   float64
	totalWeight float64
	impressions int64
	keywords    int
}

func (c *keywordCategory) add(qualityScore int, impressions int64) {
	c.totalWeight += float64(qualityScore) * float64(impressions)
	c.impressions += impressions
	c.keywords++
}

func (c *keywordCategory) weightedAverage() (float64, bool) {
	if c.impressions == 0 {
		return 0, false
	}
	return c.totalWeight / float64(c.impressions), true
}

func adGroupNameMatches(name string, candidates []string) bool {
	lower := strings.ToLower(name)
	for _, candidate := range candidates {
		if strings.Contains(lower, candidate) {
			return true
		}
	}
	return false
}

// CheckWeightedQualityScore verifica o índice de qualidade médio ponderado
// por impressões: brand >= 9, non-brand >= 7, competitor >= 5. A categoria
// vem do nome do grupo de anúncios.
func CheckWeightedQualityScore(keywords []domain.GoogleKeywordRow) domain.CheckResult {
	const checkID = "quality_score"
	const name = "Weighted Average Quality Score"

	brand := &keywordCategory{threshold: QualityScoreBrand}
	nonBrand := &keywordCategory{threshold: QualityScoreNonBrand}
	competitor := &keywordCategory{threshold: QualityScoreCompetitor}

	evaluated := 0
	for _, kw := range keywords {
		if kw.Negative || kw.Impressions == 0 || kw.QualityScore == 0 {
			continue
		}
		evaluated++
		switch {
		case adGroupNameMatches(kw.AdGroupName, brandKeywords):
			brand.add(kw.QualityScore, kw.Impressions)
		case adGroupNameMatches(kw.AdGroupName, competitorKeywords):
			competitor.add(kw.QualityScore, kw.Impressions)
		default:
			nonBrand.add(kw.QualityScore, kw.Impressions)
		}
	}

	if evaluated == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No keywords with quality score found")
	}

	details := domain.NewDetailTable("Category", "Weighted QS", "Threshold", "Keywords")

	issues := 0
	var gapScores []float64

	format := func(label string, cat *keywordCategory) string {
		wqs, ok := cat.weightedAverage()
		if !ok {
			return "N/A"
		}
		details.AddRow(label, fmt.Sprintf("%.2f", wqs), fmt.Sprintf(">= %.0f", cat.threshold), strconv.Itoa(cat.keywords))
		if wqs < cat.threshold {
			issues++
		}
		gap := cat.threshold - wqs
		if gap < 0 {
			gap = 0
		}
		gapScore := gap / cat.threshold * 100 * 2
		if gapScore > 100 {
			gapScore = 100
		}
		gapScores = append(gapScores, gapScore)
		return fmt.Sprintf("%.2f", wqs)
	}

	brandStr := format("Brand", brand)
	nonBrandStr := format("Non-Brand", nonBrand)
	competitorStr := format("Competitor", competitor)

	status := domain.StatusFail
	if issues == 0 {
		status = domain.StatusPass
	}

	var score float64
	if len(gapScores) > 0 {
		for _, s := range gapScores {
			score += s
		}
		score = utils.RoundWithTwoDecimalPlace(score / float64(len(gapScores)))
	}

	return domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         status,
		Message:        fmt.Sprintf("Brand: %s, Non-Brand: %s, Competitor: %s", brandStr, nonBrandStr, competitorStr),
		Count:          issues,
		Total:          evaluated,
		Percentage:     score,
		Details:        details,
		Threshold:      "Brand>=9, Non-Brand>=7, Competitor>=5",
		Recommendation: "Improve ad relevance and landing page experience on low quality score keywords",
	}
}

// CheckKeywordsWithoutImpressions verifica o percentual de palavras-chave
// sem impressões nos últimos 30 dias
func CheckKeywordsWithoutImpressions(keywords []domain.GoogleKeywordRow) domain.CheckResult {
	const checkID = "keywords_without_impressions"
	const name = "Percentage of Keywords without Impressions"

	positives := make([]domain.GoogleKeywordRow, 0, len(keywords))
	for _, kw := range keywords {
		if !kw.Negative {
			positives = append(positives, kw)
		}
	}

	if len(positives) == 0 {
		return infoResult(checkID, name, domain.CategorySearch, "No keywords found for search campaigns")
	}

	details := domain.NewDetailTable("Campaign", "Ad Group", "Keyword", "Match Type")

	affected := 0
	for _, kw := range positives {
		if kw.Impressions > 0 {
			continue
		}
		affected++
		details.AddRow(kw.CampaignName, kw.AdGroupName, kw.Text, kw.MatchType)
	}

	total := len(positives)
	score := affectedScore(affected, total)

	status := domain.StatusFail
	switch {
	case score < 20:
		status = domain.StatusPass
	case score < 40:
		status = domain.StatusWarning
	}

	result := domain.CheckResult{
		CheckID:        checkID,
		Name:           name,
		Category:       domain.CategorySearch,
		Status:         status,
		Message:        fmt.Sprintf("%d/%d keywords (%v%%) have zero impressions", affected, total, score),
		Count:          affected,
		Total:          total,
		Percentage:     score,
		Threshold:      "< 20%",
		Recommendation: "Pause or rework keywords with no impressions to keep the account lean",
	}
	if affected > 0 {
		result.Details = details
	}
	return result
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
