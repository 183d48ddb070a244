package exporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/healthcard-api/internal/domain"
)

const summarySheet = "Summary"

// writeExcel monta a planilha do relatório: uma aba Summary com a visão
// geral e uma aba por categoria com as verificações e as entidades
// afetadas das que não passaram
func writeExcel(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("erro ao renomear a aba inicial: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o estilo de cabeçalho: %w", err)
	}

	if err := writeSummarySheet(f, report, boldStyle); err != nil {
		return nil, err
	}

	grouped := report.ResultsByCategory()
	for _, category := range categoryOrder {
		results, ok := grouped[category]
		if !ok {
			continue
		}

		if err := writeCategorySheet(f, categoryLabel(category), results, boldStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o arquivo Excel: %w", err)
	}

	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, report *domain.Report, boldStyle int) error {
	rows := [][]interface{}{
		{"Account", report.AccountName},
		{"Platform", string(report.Platform)},
		{"Generated at", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
		{"Health score", report.HealthScore},
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever a aba Summary: %w", err)
		}
	}

	// Tabela de contagem por categoria
	headerRow := len(rows) + 2
	header := []interface{}{"Category", "Pass", "Warning", "Fail", "Info"}
	if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", headerRow), &header); err != nil {
		return fmt.Errorf("erro ao escrever a aba Summary: %w", err)
	}
	if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("E%d", headerRow), boldStyle); err != nil {
		return fmt.Errorf("erro ao aplicar o estilo na aba Summary: %w", err)
	}

	grouped := report.ResultsByCategory()
	line := headerRow + 1
	for _, category := range categoryOrder {
		results, ok := grouped[category]
		if !ok {
			continue
		}

		counts := map[domain.CheckStatus]int{}
		for _, result := range results {
			counts[result.Status]++
		}

		row := []interface{}{
			categoryLabel(category),
			counts[domain.StatusPass],
			counts[domain.StatusWarning],
			counts[domain.StatusFail],
			counts[domain.StatusInfo],
		}
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", line), &row); err != nil {
			return fmt.Errorf("erro ao escrever a aba Summary: %w", err)
		}
		line++
	}

	return nil
}

func writeCategorySheet(f *excelize.File, name string, results []domain.CheckResult, boldStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("erro ao criar a aba %s: %w", name, err)
	}

	header := []interface{}{"Check", "Status", "Message", "Threshold", "Recommendation"}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("erro ao escrever a aba %s: %w", name, err)
	}
	if err := f.SetCellStyle(name, "A1", "E1", boldStyle); err != nil {
		return fmt.Errorf("erro ao aplicar o estilo na aba %s: %w", name, err)
	}

	line := 2
	for _, result := range results {
		row := []interface{}{
			result.Name,
			string(result.Status),
			result.Message,
			result.Threshold,
			result.Recommendation,
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", line), &row); err != nil {
			return fmt.Errorf("erro ao escrever a aba %s: %w", name, err)
		}
		line++
	}

	// Entidades afetadas das verificações que não passaram
	for _, result := range results {
		if result.Status == domain.StatusPass || result.Details.Empty() {
			continue
		}

		line++
		title := []interface{}{result.Name}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", line), &title); err != nil {
			return fmt.Errorf("erro ao escrever a aba %s: %w", name, err)
		}
		if err := f.SetCellStyle(name, fmt.Sprintf("A%d", line), fmt.Sprintf("A%d", line), boldStyle); err != nil {
			return fmt.Errorf("erro ao aplicar o estilo na aba %s: %w", name, err)
		}
		line++

		columns := make([]interface{}, 0, len(result.Details.Columns))
		for _, column := range result.Details.Columns {
			columns = append(columns, column)
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", line), &columns); err != nil {
			return fmt.Errorf("erro ao escrever a aba %s: %w", name, err)
		}
		line++

		for _, detailRow := range result.Details.Rows {
			values := make([]interface{}, 0, len(detailRow))
			for _, value := range detailRow {
				values = append(values, value)
			}
			if err := f.SetSheetRow(name, fmt.Sprintf("A%d", line), &values); err != nil {
				return fmt.Errorf("erro ao escrever a aba %s: %w", name, err)
			}
			line++
		}
	}

	return nil
}
