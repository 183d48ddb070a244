package exporting

import (
	"github.com/vfg2006/healthcard-api/internal/domain"
)

// Format identifica o formato do arquivo exportado
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
)

// Exporter serializa um relatório de saúde para download
type Exporter interface {
	// Export serializa o relatório no formato pedido e retorna o conteúdo
	// do arquivo junto com o content type HTTP adequado
	Export(report *domain.Report, format Format) ([]byte, string, error)
}
