// Package meta avalia o catálogo de verificações de saúde de contas Meta Ads.
// Cada verificação é uma função pura sobre o snapshot: mesmo snapshot, mesmo
// resultado. Nenhuma verificação retorna erro; sem dados ela degrada para INFO.
package meta

import (
	"fmt"

	"github.com/vfg2006/healthcard-api/internal/domain"
	"github.com/vfg2006/healthcard-api/pkg/utils"
)

// Limites do catálogo
const (
	MinHeadlineCount     = 3
	MinPrimaryTextCount  = 3
	MinDescriptionCount  = 2
	MinOptimizationGoals = 2

	// Proporções máximas de anúncios com problema antes de FAIL
	urlTagsFailRatio         = 0.2
	pixelFailRatio           = 0.3
	coverageFailRatio        = 0.1
	headlineFailRatio        = 0.3
	primaryTextFailRatio     = 0.3
	descriptionFailRatio     = 0.4
	ctaFailRatio             = 0.2
	audienceNetworkWarnRatio = 0.5
)

// RunAll executa todas as verificações Meta na ordem fixa do catálogo
func RunAll(snapshot *domain.MetaSnapshot) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, 18)
	results = append(results, RunTrackingChecks(snapshot)...)
	results = append(results, RunCreativeChecks(snapshot)...)
	results = append(results, RunAdFormatChecks(snapshot)...)
	results = append(results, RunAudienceChecks(snapshot)...)
	return results
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(count) / float64(total) * 100)
}

// statusByRatio aplica a régua comum do catálogo: zero ocorrências passa,
// abaixo da proporção limite avisa, a partir dela falha
func statusByRatio(count, total int, failRatio float64) domain.CheckStatus {
	if count == 0 {
		return domain.StatusPass
	}
	if float64(count) < float64(total)*failRatio {
		return domain.StatusWarning
	}
	return domain.StatusFail
}

func noAdsResult(checkID, name string, category domain.CheckCategory) domain.CheckResult {
	return domain.CheckResult{
		CheckID:  checkID,
		Name:     name,
		Category: category,
		Status:   domain.StatusInfo,
		Message:  "No ads to check",
	}
}

func noAdSetsResult(checkID, name string) domain.CheckResult {
	return domain.CheckResult{
		CheckID:  checkID,
		Name:     name,
		Category: domain.CategoryAudience,
		Status:   domain.StatusInfo,
		Message:  "No adsets to check",
	}
}

func presentOrMissing(present bool) string {
	if present {
		return "Present"
	}
	return "Missing"
}

func countMessage(count, total int, what string, pct float64) string {
	return fmt.Sprintf("%d out of %d %s (%v%%)", count, total, what, pct)
}
