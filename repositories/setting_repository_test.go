package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pn-nangabulik-backend/models"
)

func TestSettingUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)
	InvalidateSettingCache()

	require.NoError(t, repo.Upsert("wordpress_url", "https://berita.pn-nangabulik.go.id"))

	value, err := repo.Get("wordpress_url")
	require.NoError(t, err)
	assert.Equal(t, "https://berita.pn-nangabulik.go.id", value)

	// upsert kedua menimpa nilai, bukan menambah baris
	require.NoError(t, repo.Upsert("wordpress_url", "https://wp.pn-nangabulik.go.id"))

	value, err = repo.Get("wordpress_url")
	require.NoError(t, err)
	assert.Equal(t, "https://wp.pn-nangabulik.go.id", value)

	var count int64
	db.Model(&models.SiteSetting{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSettingUpsertMany(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)
	InvalidateSettingCache()

	require.NoError(t, repo.UpsertMany(map[string]string{
		"wordpress_url": "https://wp.pn-nangabulik.go.id",
		"contact_email": "info@pn-nangabulik.go.id",
	}))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "https://wp.pn-nangabulik.go.id", all["wordpress_url"])
	assert.Equal(t, "info@pn-nangabulik.go.id", all["contact_email"])
}

func TestSettingGetMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)
	InvalidateSettingCache()

	_, err := repo.Get("tidak_ada")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSettingCacheInvalidatedByUpsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingRepository(db)
	InvalidateSettingCache()

	require.NoError(t, repo.Upsert("contact_email", "lama@pn-nangabulik.go.id"))

	value, err := repo.GetCached("contact_email")
	require.NoError(t, err)
	assert.Equal(t, "lama@pn-nangabulik.go.id", value)

	// tulisan langsung ke tabel tidak terlihat selama cache hidup
	require.NoError(t, db.Model(&models.SiteSetting{}).
		Where(&models.SiteSetting{Key: "contact_email"}).
		Update("value", "langsung@pn-nangabulik.go.id").Error)

	value, err = repo.GetCached("contact_email")
	require.NoError(t, err)
	assert.Equal(t, "lama@pn-nangabulik.go.id", value)

	// upsert lewat repository meng-invalidate cache
	require.NoError(t, repo.Upsert("contact_email", "baru@pn-nangabulik.go.id"))

	value, err = repo.GetCached("contact_email")
	require.NoError(t, err)
	assert.Equal(t, "baru@pn-nangabulik.go.id", value)
}
