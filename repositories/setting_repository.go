package repositories

import (
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pn-nangabulik-backend/models"
)

// settingCacheTTL batas basi nilai setting yang di-cache di proses
const settingCacheTTL = 5 * time.Minute

type cachedValue struct {
	value     string
	fetchedAt time.Time
}

// settingCache state proses untuk setting yang sering dibaca (URL WordPress).
// Setiap tulisan setting meng-invalidate seluruh cache, jadi nilai basi hanya
// mungkin kalau penulis eksternal menulis langsung ke tabel (maks 5 menit).
type settingCache struct {
	mu     sync.RWMutex
	values map[string]cachedValue
}

var cache = &settingCache{values: make(map[string]cachedValue)}

func (c *settingCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.values[key]
	if !ok || time.Since(entry.fetchedAt) > settingCacheTTL {
		return "", false
	}
	return entry.value, true
}

func (c *settingCache) set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = cachedValue{value: value, fetchedAt: time.Now()}
}

func (c *settingCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]cachedValue)
}

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository(DB *gorm.DB) *SettingRepository {
	return &SettingRepository{DB: DB}
}

// GetAll mengembalikan seluruh setting sebagai map datar
func (r *SettingRepository) GetAll() (map[string]string, error) {
	var settings []models.SiteSetting
	if err := r.DB.Find(&settings).Error; err != nil {
		return nil, err
	}
	result := make(map[string]string, len(settings))
	for _, s := range settings {
		result[s.Key] = s.Value
	}
	return result, nil
}

func (r *SettingRepository) Get(key string) (string, error) {
	var setting models.SiteSetting
	// pakai kondisi struct supaya kolom "key" di-quote benar di semua driver
	if err := r.DB.Where(&models.SiteSetting{Key: key}).First(&setting).Error; err != nil {
		return "", err
	}
	return setting.Value, nil
}

// GetCached membaca lewat cache proses dengan TTL 5 menit
func (r *SettingRepository) GetCached(key string) (string, error) {
	if value, ok := cache.get(key); ok {
		return value, nil
	}
	value, err := r.Get(key)
	if err != nil {
		return "", err
	}
	cache.set(key, value)
	return value, nil
}

// Upsert create-or-update berdasar key, lalu invalidate cache
func (r *SettingRepository) Upsert(key, value string) error {
	setting := models.SiteSetting{Key: key, Value: value}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": time.Now()}),
	}).Create(&setting).Error
	if err != nil {
		return err
	}
	cache.invalidate()
	return nil
}

func (r *SettingRepository) UpsertMany(pairs map[string]string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range pairs {
			setting := models.SiteSetting{Key: key, Value: value}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"value": value, "updated_at": time.Now()}),
			}).Create(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	cache.invalidate()
	return nil
}

// InvalidateSettingCache untuk dipanggil dari tes dan seeder
func InvalidateSettingCache() {
	cache.invalidate()
}
