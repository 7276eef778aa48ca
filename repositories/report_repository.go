package repositories

import (
	"time"

	"gorm.io/gorm"

	"pn-nangabulik-backend/controllers/idgen"
	"pn-nangabulik-backend/models"
	"pn-nangabulik-backend/types"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(DB *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: DB}
}

// ===== Kategori =====

func (r *ReportRepository) GetCategories(onlyActive bool, withLinks bool) ([]models.ReportCategory, error) {
	var categories []models.ReportCategory
	q := r.DB.Order("category_order asc, id asc")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	if withLinks {
		q = q.Preload("Links", func(db *gorm.DB) *gorm.DB {
			return db.Order("link_order asc, id asc")
		})
	}
	err := q.Find(&categories).Error
	return categories, err
}

func (r *ReportRepository) GetCategoryByID(id uint) (*models.ReportCategory, error) {
	var category models.ReportCategory
	err := r.DB.First(&category, id).Error
	return &category, err
}

func (r *ReportRepository) CreateCategory(category *models.ReportCategory) error {
	err := r.DB.Create(category).Error
	if IsDuplicateKeyErr(err) {
		return ErrDuplicateSlug
	}
	return err
}

func (r *ReportRepository) UpdateCategory(category *models.ReportCategory) error {
	err := r.DB.Save(category).Error
	if IsDuplicateKeyErr(err) {
		return ErrDuplicateSlug
	}
	return err
}

// DeleteCategory cascade di level store: view event, link, lalu kategorinya,
// semua dalam satu transaksi
func (r *ReportRepository) DeleteCategory(id uint) error {
	var category models.ReportCategory
	if err := r.DB.First(&category, id).Error; err != nil {
		return err
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var linkIDs []uint
		if err := tx.Model(&models.ReportLink{}).
			Where("category_id = ?", id).
			Pluck("id", &linkIDs).Error; err != nil {
			return err
		}
		if len(linkIDs) > 0 {
			if err := tx.Where("link_id IN ?", linkIDs).
				Delete(&models.ReportLinkView{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.ReportView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.ReportLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ReportCategory{}, id).Error
	})
}

// ===== Link =====

func (r *ReportRepository) GetLinks(categoryID uint, onlyActive bool) ([]models.ReportLink, error) {
	var links []models.ReportLink
	q := r.DB.Order("link_order asc, id asc")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&links).Error
	return links, err
}

func (r *ReportRepository) GetLinkByID(id uint) (*models.ReportLink, error) {
	var link models.ReportLink
	err := r.DB.First(&link, id).Error
	return &link, err
}

func (r *ReportRepository) CreateLink(link *models.ReportLink) error {
	return r.DB.Create(link).Error
}

func (r *ReportRepository) UpdateLink(link *models.ReportLink) error {
	return r.DB.Save(link).Error
}

func (r *ReportRepository) DeleteLink(id uint) error {
	var link models.ReportLink
	if err := r.DB.First(&link, id).Error; err != nil {
		return err
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("link_id = ?", id).Delete(&models.ReportLinkView{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ReportLink{}, id).Error
	})
}

// ===== Tracking =====

func (r *ReportRepository) TrackCategoryView(categoryID uint, ip, userAgent string) error {
	if _, err := r.GetCategoryByID(categoryID); err != nil {
		return err
	}
	view := models.ReportView{
		ID:         types.SnowflakeID(idgen.GenerateID()),
		CategoryID: categoryID,
		IPAddress:  ip,
		UserAgent:  userAgent,
		CreatedAt:  time.Now(),
	}
	return r.DB.Create(&view).Error
}

func (r *ReportRepository) TrackLinkView(linkID uint, ip, userAgent string) error {
	if _, err := r.GetLinkByID(linkID); err != nil {
		return err
	}
	view := models.ReportLinkView{
		ID:        types.SnowflakeID(idgen.GenerateID()),
		LinkID:    linkID,
		IPAddress: ip,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	return r.DB.Create(&view).Error
}

// ViewStats total view dan jumlah pengunjung berbeda untuk satu entitas
type ViewStats struct {
	TotalViews     int64 `json:"total_views"`
	UniqueVisitors int64 `json:"unique_visitors"`
}

func (r *ReportRepository) GetCategoryViewStats(categoryID uint) (*ViewStats, error) {
	stats := &ViewStats{}
	if err := r.DB.Model(&models.ReportView{}).
		Where("category_id = ?", categoryID).
		Count(&stats.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.ReportView{}).
		Where("category_id = ?", categoryID).
		Distinct("ip_address").
		Count(&stats.UniqueVisitors).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *ReportRepository) GetLinkViewStats(linkID uint) (*ViewStats, error) {
	stats := &ViewStats{}
	if err := r.DB.Model(&models.ReportLinkView{}).
		Where("link_id = ?", linkID).
		Count(&stats.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.ReportLinkView{}).
		Where("link_id = ?", linkID).
		Distinct("ip_address").
		Count(&stats.UniqueVisitors).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// EntityViewSummary ringkasan per entitas untuk mode tanpa parameter
type EntityViewSummary struct {
	ID             uint  `json:"id"`
	TotalViews     int64 `json:"total_views"`
	UniqueVisitors int64 `json:"unique_visitors"`
}

func (r *ReportRepository) GetAllViewSummaries() (categories, links []EntityViewSummary, err error) {
	categorySQL := `
		SELECT category_id AS id,
			COUNT(*) AS total_views,
			COUNT(DISTINCT ip_address) AS unique_visitors
		FROM report_views GROUP BY category_id ORDER BY total_views DESC`
	if err = r.DB.Raw(categorySQL).Scan(&categories).Error; err != nil {
		return nil, nil, err
	}

	linkSQL := `
		SELECT link_id AS id,
			COUNT(*) AS total_views,
			COUNT(DISTINCT ip_address) AS unique_visitors
		FROM report_link_views GROUP BY link_id ORDER BY total_views DESC`
	if err = r.DB.Raw(linkSQL).Scan(&links).Error; err != nil {
		return nil, nil, err
	}

	if categories == nil {
		categories = []EntityViewSummary{}
	}
	if links == nil {
		links = []EntityViewSummary{}
	}
	return categories, links, nil
}
