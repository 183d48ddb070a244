// Package google avalia o catálogo de verificações de saúde de contas
// Google Ads. Todas as verificações são funções puras sobre o snapshot
// normalizado das consultas GAQL; nenhuma consulta adicional é feita
// durante a avaliação.
package google

import (
	"fmt"

	"github.com/vfg2006/healthcard-api/internal/domain"
	"github.com/vfg2006/healthcard-api/pkg/utils"
)

// Limites do catálogo
const (
	LimitedBudgetThreshold = 0.10

	SpendSplitExact     = 0.70
	SpendSplitPhrase    = 0.20
	SpendSplitBroad     = 0.10
	SpendSplitTolerance = 0.05

	MinRSAsPerAdGroup = 2
	MinUniqueRSARatio = 1.0
	MinSitelinks      = 4

	QualityScoreBrand      = 9.0
	QualityScoreNonBrand   = 7.0
	QualityScoreCompetitor = 5.0

	PMaxMinHeadlines     = 3
	PMaxMinLongHeadlines = 1
	PMaxMinDescriptions  = 2
	PMaxMinSitelinks     = 4
	PMaxMinImages        = 5
	PMaxMinVideos        = 1

	AppMinHeadlines    = 5
	AppMinDescriptions = 5
)

// RunAll executa todas as verificações Google na ordem fixa do catálogo
func RunAll(snapshot *domain.GoogleSnapshot) []domain.CheckResult {
	results := make([]domain.CheckResult, 0, 31)
	results = append(results, RunUniversalChecks(snapshot)...)
	results = append(results, RunSearchChecks(snapshot)...)
	results = append(results, RunPMaxChecks(snapshot)...)
	results = append(results, RunAppChecks(snapshot)...)
	return results
}

// affectedScore retorna a proporção de entidades afetadas em pontos
// percentuais. Pontuação baixa é boa.
func affectedScore(affected, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(affected) / float64(total) * 100)
}

// statusByScore aplica a régua invertida do catálogo: zero afetados passa,
// até o limite de aviso avisa, acima falha
func statusByScore(score, warnLimit float64) domain.CheckStatus {
	if score == 0 {
		return domain.StatusPass
	}
	if score <= warnLimit {
		return domain.StatusWarning
	}
	return domain.StatusFail
}

func infoResult(checkID, name string, category domain.CheckCategory, message string) domain.CheckResult {
	return domain.CheckResult{
		CheckID:  checkID,
		Name:     name,
		Category: category,
		Status:   domain.StatusInfo,
		Message:  message,
	}
}

func compliantMessage(compliant, total int, what string) string {
	return fmt.Sprintf("%d/%d %s", compliant, total, what)
}
