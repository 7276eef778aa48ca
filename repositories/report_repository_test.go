package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

func seedCategory(t *testing.T, repo *ReportRepository, name, slug string) *models.ReportCategory {
	t.Helper()
	category := &models.ReportCategory{Name: name, Slug: slug, IsActive: true}
	require.NoError(t, repo.CreateCategory(category))
	return category
}

func seedLink(t *testing.T, repo *ReportRepository, categoryID uint, title string) *models.ReportLink {
	t.Helper()
	link := &models.ReportLink{CategoryID: categoryID, Title: title, URL: "https://example.go.id/doc.pdf", IsActive: true}
	require.NoError(t, repo.CreateLink(link))
	return link
}

func TestCategorySlugMustBeUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	seedCategory(t, repo, "DIPA", "dipa")

	dup := &models.ReportCategory{Name: "DIPA 2026", Slug: "dipa", IsActive: true}
	err := repo.CreateCategory(dup)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	// update yang menabrak slug lain juga ditolak
	other := seedCategory(t, repo, "LKjIP", "lkjip")
	other.Slug = "dipa"
	err = repo.UpdateCategory(other)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestTrackCategoryViewStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	category := seedCategory(t, repo, "DIPA", "dipa")

	require.NoError(t, repo.TrackCategoryView(category.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackCategoryView(category.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackCategoryView(category.ID, "10.0.0.2", "Mozilla/5.0"))

	stats, err := repo.GetCategoryViewStats(category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalViews)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
}

func TestTrackLinkViewStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	category := seedCategory(t, repo, "DIPA", "dipa")
	link := seedLink(t, repo, category.ID, "DIPA 2026")

	require.NoError(t, repo.TrackLinkView(link.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackLinkView(link.ID, "10.0.0.2", "Mozilla/5.0"))

	stats, err := repo.GetLinkViewStats(link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalViews)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
}

func TestTrackRejectsMissingEntity(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	err := repo.TrackCategoryView(999, "10.0.0.1", "Mozilla/5.0")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.TrackLinkView(999, "10.0.0.1", "Mozilla/5.0")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteCategoryCascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	category := seedCategory(t, repo, "DIPA", "dipa")
	link := seedLink(t, repo, category.ID, "DIPA 2026")
	require.NoError(t, repo.TrackCategoryView(category.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackLinkView(link.ID, "10.0.0.1", "Mozilla/5.0"))

	// kategori lain tidak boleh ikut terhapus
	other := seedCategory(t, repo, "LKjIP", "lkjip")
	otherLink := seedLink(t, repo, other.ID, "LKjIP 2026")

	require.NoError(t, repo.DeleteCategory(category.ID))

	var categories, links, views, linkViews int64
	db.Model(&models.ReportCategory{}).Count(&categories)
	db.Model(&models.ReportLink{}).Count(&links)
	db.Model(&models.ReportView{}).Count(&views)
	db.Model(&models.ReportLinkView{}).Count(&linkViews)

	assert.Equal(t, int64(1), categories)
	assert.Equal(t, int64(1), links)
	assert.Equal(t, int64(0), views)
	assert.Equal(t, int64(0), linkViews)

	remaining, err := repo.GetLinkByID(otherLink.ID)
	require.NoError(t, err)
	assert.Equal(t, "LKjIP 2026", remaining.Title)
}

func TestDeleteLinkRemovesItsViews(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	category := seedCategory(t, repo, "DIPA", "dipa")
	link := seedLink(t, repo, category.ID, "DIPA 2026")
	keep := seedLink(t, repo, category.ID, "DIPA 2025")
	require.NoError(t, repo.TrackLinkView(link.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackLinkView(keep.ID, "10.0.0.1", "Mozilla/5.0"))

	require.NoError(t, repo.DeleteLink(link.ID))

	var linkViews int64
	db.Model(&models.ReportLinkView{}).Count(&linkViews)
	assert.Equal(t, int64(1), linkViews)

	_, err := repo.GetLinkByID(link.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetCategoriesWithLinksOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	category := seedCategory(t, repo, "DIPA", "dipa")
	first := &models.ReportLink{CategoryID: category.ID, Title: "B", URL: "https://example.go.id/b.pdf", LinkOrder: 1, IsActive: true}
	second := &models.ReportLink{CategoryID: category.ID, Title: "A", URL: "https://example.go.id/a.pdf", LinkOrder: 0, IsActive: true}
	require.NoError(t, repo.CreateLink(first))
	require.NoError(t, repo.CreateLink(second))

	categories, err := repo.GetCategories(false, true)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Links, 2)
	assert.Equal(t, "A", categories[0].Links[0].Title)
	assert.Equal(t, "B", categories[0].Links[1].Title)
}

func TestGetAllViewSummaries(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	a := seedCategory(t, repo, "DIPA", "dipa")
	b := seedCategory(t, repo, "LKjIP", "lkjip")
	require.NoError(t, repo.TrackCategoryView(a.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackCategoryView(b.ID, "10.0.0.1", "Mozilla/5.0"))
	require.NoError(t, repo.TrackCategoryView(b.ID, "10.0.0.2", "Mozilla/5.0"))

	categories, links, err := repo.GetAllViewSummaries()
	require.NoError(t, err)

	require.Len(t, categories, 2)
	// terurut menurun berdasarkan total view
	assert.Equal(t, b.ID, categories[0].ID)
	assert.Equal(t, int64(2), categories[0].TotalViews)
	assert.Equal(t, a.ID, categories[1].ID)

	assert.NotNil(t, links)
	assert.Empty(t, links)
}
