package domain

import (
	"time"
)

// CheckStatus representa o resultado de uma verificação de saúde
type CheckStatus string

const (
	StatusPass    CheckStatus = "PASS"
	StatusWarning CheckStatus = "WARNING"
	StatusFail    CheckStatus = "FAIL"
	// StatusInfo é usado quando a verificação não pode ser avaliada
	// (sem dados no snapshot ou verificação apenas informativa)
	StatusInfo CheckStatus = "INFO"
)

// CheckCategory agrupa as verificações por área
type CheckCategory string

const (
	CategoryTracking  CheckCategory = "tracking"
	CategoryCreative  CheckCategory = "creative"
	CategoryAdFormat  CheckCategory = "ad_format"
	CategoryAudience  CheckCategory = "audience"
	CategoryUniversal CheckCategory = "universal"
	CategorySearch    CheckCategory = "search"
	CategoryPMax      CheckCategory = "pmax"
	CategoryApp       CheckCategory = "app"
)

// DetailTable carrega as entidades afetadas por uma verificação,
// com colunas ordenadas para exportação em CSV/Excel
type DetailTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func NewDetailTable(columns ...string) *DetailTable {
	return &DetailTable{Columns: columns, Rows: make([][]string, 0)}
}

func (d *DetailTable) AddRow(values ...string) {
	d.Rows = append(d.Rows, values)
}

func (d *DetailTable) Empty() bool {
	return d == nil || len(d.Rows) == 0
}

// CheckResult é o veredito de uma única verificação sobre o snapshot.
// Cada verificação referencia apenas entidades presentes no snapshot
// e é determinística: o mesmo snapshot produz sempre o mesmo resultado.
type CheckResult struct {
	CheckID        string        `json:"check_id"`
	Name           string        `json:"name"`
	Category       CheckCategory `json:"category"`
	Status         CheckStatus   `json:"status"`
	Message        string        `json:"message"`
	Threshold      string        `json:"threshold,omitempty"`
	Recommendation string        `json:"recommendation,omitempty"`
	Count          int           `json:"count"`
	Total          int           `json:"total"`
	Percentage     float64       `json:"percentage"`
	Details        *DetailTable  `json:"details,omitempty"`
}

// Platform identifica a origem dos dados do relatório
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformGoogle Platform = "google"
)

// Report é o resultado completo de uma execução do healthcard
type Report struct {
	AccountID   string        `json:"account_id"`
	AccountName string        `json:"account_name"`
	Platform    Platform      `json:"platform"`
	GeneratedAt time.Time     `json:"generated_at"`
	Results     []CheckResult `json:"results"`
	HealthScore float64       `json:"health_score"`
}

// ResultsByCategory agrupa os resultados preservando a ordem do catálogo
func (r *Report) ResultsByCategory() map[CheckCategory][]CheckResult {
	grouped := make(map[CheckCategory][]CheckResult)
	for _, result := range r.Results {
		grouped[result.Category] = append(grouped[result.Category], result)
	}
	return grouped
}

// CalculateHealthScore calcula a pontuação geral de saúde da conta.
// Verificações informativas não entram no cálculo.
func CalculateHealthScore(results []CheckResult) float64 {
	weights := map[CheckStatus]float64{
		StatusPass:    1.0,
		StatusWarning: 0.7,
		StatusFail:    0.0,
	}

	var sum float64
	var counted int

	for _, result := range results {
		weight, ok := weights[result.Status]
		if !ok {
			continue
		}
		sum += weight * 100
		counted++
	}

	if counted == 0 {
		return 0
	}

	return sum / float64(counted)
}
