package meta

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/healthcard-api/internal/domain"
)

func TestDetermineAdType(t *testing.T) {
	tests := []struct {
		name     string
		ad       domain.MetaAdRow
		expected string
	}{
		{
			name:     "Formato explícito do asset feed tem prioridade",
			ad:       domain.MetaAdRow{AdFormats: []string{"SINGLE_IMAGE"}},
			expected: "SINGLE_IMAGE",
		},
		{
			name:     "AUTOMATIC_FORMAT é ignorado e cai na classificação por conteúdo",
			ad:       domain.MetaAdRow{AdFormats: []string{"AUTOMATIC_FORMAT"}, VideoIDs: []string{"v1"}},
			expected: "VIDEO",
		},
		{
			name:     "Asset groups classifica como DCO",
			ad:       domain.MetaAdRow{HasAssetGroups: true},
			expected: "DCO",
		},
		{
			name: "Cartões de carrossel classificam como CAROUSEL",
			ad: domain.MetaAdRow{ChildAttachments: []domain.ChildAttachment{
				{Name: "Card 1"}, {Name: "Card 2"}, {Name: "Card 3"},
			}},
			expected: "CAROUSEL",
		},
		{
			name:     "Imagem tem prioridade sobre vídeo",
			ad:       domain.MetaAdRow{ImageHashes: []string{"h1"}, VideoIDs: []string{"v1"}},
			expected: "IMAGE",
		},
		{
			name:     "Sem conteúdo identificável",
			ad:       domain.MetaAdRow{},
			expected: "UNKNOWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineAdType(&tt.ad))
		})
	}
}

func TestCheckAdFormatDistribution(t *testing.T) {
	t.Run("Um único formato - aviso", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			{AdID: "a1", ImageHashes: []string{"h1"}},
			{AdID: "a2", ImageHashes: []string{"h2"}},
		}

		result := CheckAdFormatDistribution(ads)

		assert.Equal(t, domain.StatusWarning, result.Status)
		assert.Equal(t, 1, result.Count)
	})

	t.Run("Dois formatos - passa", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			{AdID: "a1", ImageHashes: []string{"h1"}},
			{AdID: "a2", VideoIDs: []string{"v1"}},
		}

		result := CheckAdFormatDistribution(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 2, result.Count)
		assert.NotNil(t, result.Details)
	})
}

func TestCheckVideoAdPresence(t *testing.T) {
	t.Run("Seis de dez anúncios com vídeo - passa com 60%", func(t *testing.T) {
		ads := make([]domain.MetaAdRow, 0, 10)
		for i := 0; i < 6; i++ {
			ads = append(ads, domain.MetaAdRow{
				AdID:     fmt.Sprintf("v%d", i),
				VideoIDs: []string{"vid"},
			})
		}
		for i := 0; i < 4; i++ {
			ads = append(ads, domain.MetaAdRow{
				AdID:        fmt.Sprintf("i%d", i),
				ImageHashes: []string{"h"},
			})
		}

		result := CheckVideoAdPresence(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 6, result.Count)
		assert.Equal(t, 10, result.Total)
		assert.Equal(t, 60.0, result.Percentage)
	})

	t.Run("Nenhum vídeo - aviso", func(t *testing.T) {
		ads := []domain.MetaAdRow{{AdID: "a1", ImageHashes: []string{"h"}}}

		result := CheckVideoAdPresence(ads)

		assert.Equal(t, domain.StatusWarning, result.Status)
	})

	t.Run("Vídeo da publicação também conta", func(t *testing.T) {
		ads := []domain.MetaAdRow{{AdID: "a1", StoryVideoID: "123"}}

		result := CheckVideoAdPresence(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
	})
}

func TestCheckCarouselUsage(t *testing.T) {
	t.Run("Sem carrossel - informativo, não penaliza", func(t *testing.T) {
		ads := []domain.MetaAdRow{{AdID: "a1"}}

		result := CheckCarouselUsage(ads)

		assert.Equal(t, domain.StatusInfo, result.Status)
	})

	t.Run("Com carrossel - passa", func(t *testing.T) {
		ads := []domain.MetaAdRow{
			{AdID: "a1", ChildAttachments: []domain.ChildAttachment{{Name: "c1"}}},
		}

		result := CheckCarouselUsage(ads)

		assert.Equal(t, domain.StatusPass, result.Status)
		assert.Equal(t, 1, result.Count)
	})
}

func TestCheckDCOUsage(t *testing.T) {
	t.Run("Sem Dynamic Creative - aviso", func(t *testing.T) {
		ads := []domain.MetaAdRow{{AdID: "a1"}}

		result := CheckDCOUsage(ads)

		assert.Equal(t, domain.StatusWarning, result.Status)
	})
}
