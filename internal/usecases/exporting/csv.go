package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

// csvHeader é o layout fixo da exportação: uma linha por verificação
var csvHeader = []string{
	"check_id",
	"name",
	"category",
	"status",
	"message",
	"threshold",
	"recommendation",
	"count",
	"total",
	"percentage",
}

// writeCSV serializa o relatório com uma linha por verificação, na ordem
// em que o catálogo produziu os resultados
func writeCSV(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("erro ao escrever o cabeçalho do CSV: %w", err)
	}

	for _, result := range report.Results {
		row := []string{
			result.CheckID,
			result.Name,
			string(result.Category),
			string(result.Status),
			result.Message,
			result.Threshold,
			result.Recommendation,
			strconv.Itoa(result.Count),
			strconv.Itoa(result.Total),
			strconv.FormatFloat(result.Percentage, 'f', -1, 64),
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("erro ao escrever a linha do CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o CSV: %w", err)
	}

	return buf.Bytes(), nil
}
