package healthchecking

import (
	"github.com/vfg2006/healthcard-api/internal/domain"
)

// HealthChecker é a interface do caso de uso principal: gerar e consultar
// os relatórios de saúde das contas
type HealthChecker interface {
	// GetReport retorna o relatório da conta. Usa o relatório em cache
	// quando dentro do TTL, a menos que refresh seja verdadeiro.
	GetReport(accountID string, refresh bool) (*domain.Report, error)

	// GenerateReport coleta o snapshot da conta e executa o catálogo
	// completo de verificações da plataforma
	GenerateReport(account *domain.Account) (*domain.Report, error)

	// SyncReports gera e persiste relatórios para todas as contas ativas
	SyncReports() (*domain.SyncReportsResponse, error)
}
