package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

func TestSurveyUpsertOnCompositeKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	first := &models.Survey{Year: 2026, Category: "IKM", Quarter: 1, Percentage: 88.5}
	require.NoError(t, repo.Upsert(first))

	// kunci gabungan yang sama menimpa nilai lama
	second := &models.Survey{Year: 2026, Category: "IKM", Quarter: 1, Percentage: 91.2, ReportURL: "https://example.go.id/ikm-t1.pdf"}
	require.NoError(t, repo.Upsert(second))

	surveys, err := repo.GetAll(2026)
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, 91.2, surveys[0].Percentage)
	assert.Equal(t, "https://example.go.id/ikm-t1.pdf", surveys[0].ReportURL)

	// triwulan atau kategori berbeda jadi baris baru
	require.NoError(t, repo.Upsert(&models.Survey{Year: 2026, Category: "IKM", Quarter: 2, Percentage: 90}))
	require.NoError(t, repo.Upsert(&models.Survey{Year: 2026, Category: "IPK", Quarter: 1, Percentage: 85}))

	surveys, err = repo.GetAll(2026)
	require.NoError(t, err)
	assert.Len(t, surveys, 3)
}

func TestSurveyGetAllFilterByYear(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	require.NoError(t, repo.Upsert(&models.Survey{Year: 2025, Category: "IKM", Quarter: 4, Percentage: 87}))
	require.NoError(t, repo.Upsert(&models.Survey{Year: 2026, Category: "IKM", Quarter: 1, Percentage: 89}))

	surveys, err := repo.GetAll(2025)
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, 2025, surveys[0].Year)

	// tanpa filter: semua tahun, terbaru dulu
	surveys, err = repo.GetAll(0)
	require.NoError(t, err)
	require.Len(t, surveys, 2)
	assert.Equal(t, 2026, surveys[0].Year)
}

func TestSurveyDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	survey := &models.Survey{Year: 2026, Category: "IKM", Quarter: 1, Percentage: 88}
	require.NoError(t, repo.Upsert(survey))

	require.NoError(t, repo.Delete(survey.ID))
	assert.ErrorIs(t, repo.Delete(survey.ID), gorm.ErrRecordNotFound)
}
