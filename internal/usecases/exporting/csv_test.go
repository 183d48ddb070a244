package exporting

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		AccountID:   "abc123",
		AccountName: "Loja Exemplo",
		Platform:    domain.PlatformMeta,
		GeneratedAt: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		HealthScore: 85.0,
		Results: []domain.CheckResult{
			{
				CheckID:        "url_tags_presence",
				Name:           "URL Tags Presence",
				Category:       domain.CategoryTracking,
				Status:         domain.StatusPass,
				Message:        "10/10 ads have URL tags",
				Threshold:      "< 20%",
				Recommendation: "Keep URL tags on every ad",
				Total:          10,
			},
			{
				CheckID:    "pixel_tracking",
				Name:       "Pixel Tracking",
				Category:   domain.CategoryTracking,
				Status:     domain.StatusFail,
				Message:    "3/10 ads missing pixel",
				Count:      3,
				Total:      10,
				Percentage: 30.0,
				Details: &domain.DetailTable{
					Columns: []string{"Ad ID", "Ad"},
					Rows:    [][]string{{"a1", "Ad 1"}, {"a2", "Ad 2"}, {"a3", "Ad 3"}},
				},
			},
			{
				CheckID:  "video_ad_presence",
				Name:     "Video Ad Presence",
				Category: domain.CategoryAdFormat,
				Status:   domain.StatusInfo,
				Message:  "No ads found",
			},
		},
	}
}

func TestExportCSV(t *testing.T) {
	service := NewService()

	t.Run("Cada verificação vira exatamente uma linha com o status preservado", func(t *testing.T) {
		report := sampleReport()

		content, contentType, err := service.Export(report, FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, "text/csv", contentType)

		records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, len(report.Results)+1)

		assert.Equal(t, csvHeader, records[0])
		for i, result := range report.Results {
			row := records[i+1]
			assert.Equal(t, result.CheckID, row[0])
			assert.Equal(t, string(result.Status), row[3])
		}
	})

	t.Run("Contagens e percentual são serializados sem perda", func(t *testing.T) {
		content, _, err := service.Export(sampleReport(), FormatCSV)
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
		require.NoError(t, err)

		pixelRow := records[2]
		assert.Equal(t, "3", pixelRow[7])
		assert.Equal(t, "10", pixelRow[8])
		assert.Equal(t, "30", pixelRow[9])
	})

	t.Run("Mensagem com vírgula não quebra o parsing", func(t *testing.T) {
		report := sampleReport()
		report.Results[0].Message = "Exact: 70.0%, Phrase: 20.0%, Broad: 10.0%"

		content, _, err := service.Export(report, FormatCSV)
		require.NoError(t, err)

		records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, report.Results[0].Message, records[1][4])
	})

	t.Run("Relatório nulo é rejeitado", func(t *testing.T) {
		_, _, err := service.Export(nil, FormatCSV)

		assert.ErrorIs(t, err, ErrNilReport)
	})

	t.Run("Formato desconhecido é rejeitado", func(t *testing.T) {
		_, _, err := service.Export(sampleReport(), Format("pdf"))

		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}

func TestFilename(t *testing.T) {
	report := sampleReport()

	assert.Equal(t, "healthcard_meta_abc123_2025-06-15.csv", Filename(report, FormatCSV))
	assert.Equal(t, "healthcard_meta_abc123_2025-06-15.xlsx", Filename(report, FormatExcel))
}
