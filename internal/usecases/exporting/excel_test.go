package exporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/healthcard-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestExportExcel(t *testing.T) {
	service := NewService()

	t.Run("Gera a aba Summary e uma aba por categoria presente", func(t *testing.T) {
		content, contentType, err := service.Export(sampleReport(), FormatExcel)
		require.NoError(t, err)
		assert.Equal(t, contentTypeExcel, contentType)

		f, err := excelize.OpenReader(bytes.NewReader(content))
		require.NoError(t, err)
		defer f.Close()

		sheets := f.GetSheetList()
		assert.Equal(t, []string{"Summary", "Tracking", "Ad Format"}, sheets)
	})

	t.Run("Summary traz a conta e a pontuação de saúde", func(t *testing.T) {
		content, _, err := service.Export(sampleReport(), FormatExcel)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(content))
		require.NoError(t, err)
		defer f.Close()

		account, err := f.GetCellValue("Summary", "B1")
		require.NoError(t, err)
		assert.Equal(t, "Loja Exemplo", account)

		score, err := f.GetCellValue("Summary", "B4")
		require.NoError(t, err)
		assert.Equal(t, "85", score)
	})

	t.Run("Aba da categoria lista as verificações e os detalhes das reprovadas", func(t *testing.T) {
		content, _, err := service.Export(sampleReport(), FormatExcel)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(content))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Tracking")
		require.NoError(t, err)

		assert.Equal(t, []string{"Check", "Status", "Message", "Threshold", "Recommendation"}, rows[0])
		assert.Equal(t, "URL Tags Presence", rows[1][0])
		assert.Equal(t, "PASS", rows[1][1])
		assert.Equal(t, "FAIL", rows[2][1])

		// Bloco de entidades afetadas do pixel: título, colunas e 3 linhas
		var flat []string
		for _, row := range rows[3:] {
			if len(row) > 0 {
				flat = append(flat, row[0])
			}
		}
		assert.Contains(t, flat, "Pixel Tracking")
		assert.Contains(t, flat, "Ad ID")
		assert.Contains(t, flat, "a3")
	})

	t.Run("Verificação aprovada não gera bloco de detalhes", func(t *testing.T) {
		report := &domain.Report{
			AccountID:   "abc123",
			AccountName: "Loja Exemplo",
			Platform:    domain.PlatformGoogle,
			Results: []domain.CheckResult{
				{
					CheckID:  "limited_by_budget",
					Name:     "Limited by Budget Campaigns",
					Category: domain.CategoryUniversal,
					Status:   domain.StatusPass,
					Message:  "0/5 campaigns limited",
					Details: &domain.DetailTable{
						Columns: []string{"Campaign"},
						Rows:    [][]string{{"não deveria aparecer"}},
					},
				},
			},
		}

		content, _, err := service.Export(report, FormatExcel)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(content))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Universal")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}
