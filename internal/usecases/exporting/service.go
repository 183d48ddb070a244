package exporting

import (
	"errors"
	"fmt"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

var (
	ErrNilReport         = errors.New("report is required")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

const (
	contentTypeCSV   = "text/csv"
	contentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// categoryOrder fixa a ordem das categorias na exportação, espelhando a
// ordem dos catálogos de verificação
var categoryOrder = []domain.CheckCategory{
	domain.CategoryTracking,
	domain.CategoryCreative,
	domain.CategoryAdFormat,
	domain.CategoryAudience,
	domain.CategoryUniversal,
	domain.CategorySearch,
	domain.CategoryPMax,
	domain.CategoryApp,
}

var categoryLabels = map[domain.CheckCategory]string{
	domain.CategoryTracking:  "Tracking",
	domain.CategoryCreative:  "Creative",
	domain.CategoryAdFormat:  "Ad Format",
	domain.CategoryAudience:  "Audience",
	domain.CategoryUniversal: "Universal",
	domain.CategorySearch:    "Search",
	domain.CategoryPMax:      "Performance Max",
	domain.CategoryApp:       "App",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Export(report *domain.Report, format Format) ([]byte, string, error) {
	if report == nil {
		return nil, "", ErrNilReport
	}

	switch format {
	case FormatCSV:
		content, err := writeCSV(report)
		return content, contentTypeCSV, err
	case FormatExcel:
		content, err := writeExcel(report)
		return content, contentTypeExcel, err
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Filename monta o nome de arquivo sugerido para o download
func Filename(report *domain.Report, format Format) string {
	return fmt.Sprintf("healthcard_%s_%s_%s.%s",
		report.Platform,
		report.AccountID,
		report.GeneratedAt.Format("2006-01-02"),
		format,
	)
}

func categoryLabel(category domain.CheckCategory) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return string(category)
}
