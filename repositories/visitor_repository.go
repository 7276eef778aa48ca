package repositories

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pn-nangabulik-backend/config"
	"pn-nangabulik-backend/models"
)

type VisitorRepository struct {
	DB *gorm.DB
}

func NewVisitorRepository(DB *gorm.DB) *VisitorRepository {
	return &VisitorRepository{DB: DB}
}

// Midnight memotong waktu ke awal hari kalender waktu server
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Record mencatat satu kunjungan per (ip, path, hari). Insert ganda di hari
// yang sama bukan error: unique index yang menolak, kita anggap sukses.
func (r *VisitorRepository) Record(ip, path, userAgent string, at time.Time) error {
	visitor := models.Visitor{
		IPAddress: ip,
		Path:      path,
		UserAgent: userAgent,
		VisitDate: Midnight(at),
	}

	err := r.DB.Create(&visitor).Error
	if err != nil && IsDuplicateKeyErr(err) {
		return nil
	}
	if err != nil {
		config.Log.Error("Gagal mencatat kunjungan", zap.String("path", path), zap.Error(err))
	}
	return err
}

// GetStatistics menghitung semua jendela waktu terhadap satu snapshot "now".
// Batas jendela dihitung sekali di awal supaya today/yesterday dkk konsisten
// walaupun jam bergeser di tengah perhitungan.
func (r *VisitorRepository) GetStatistics(now time.Time) (*models.VisitorStatistics, error) {
	today := Midnight(now)
	yesterday := today.AddDate(0, 0, -1)

	// Minggu ISO: mulai Senin, Minggu dihitung hari ke-7
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, -(weekday - 1))
	lastWeekStart := weekStart.AddDate(0, 0, -7)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	stats := &models.VisitorStatistics{}

	type window struct {
		dest  *int64
		query *gorm.DB
	}

	model := func() *gorm.DB { return r.DB.Model(&models.Visitor{}) }
	windows := []window{
		{&stats.Today, model().Where("visit_date = ?", today)},
		{&stats.Yesterday, model().Where("visit_date = ?", yesterday)},
		{&stats.ThisWeek, model().Where("visit_date >= ?", weekStart)},
		{&stats.LastWeek, model().Where("visit_date >= ? AND visit_date < ?", lastWeekStart, weekStart)},
		{&stats.ThisMonth, model().Where("visit_date >= ?", monthStart)},
		{&stats.LastMonth, model().Where("visit_date >= ? AND visit_date < ?", lastMonthStart, monthStart)},
		{&stats.Total, model()},
	}

	for _, w := range windows {
		if err := w.query.Count(w.dest).Error; err != nil {
			return nil, err
		}
	}

	// Pengunjung online: IP berbeda yang insert-nya 5 menit terakhir
	if err := model().
		Where("created_at >= ?", now.Add(-5*time.Minute)).
		Distinct("ip_address").
		Count(&stats.OnlineUsers).Error; err != nil {
		return nil, err
	}

	// 20 path teratas sepanjang masa, dengan hitungan hari ini per path
	perPageSQL := `
		SELECT path,
			COUNT(*) AS total,
			COUNT(CASE WHEN visit_date = ? THEN 1 END) AS today,
			COUNT(DISTINCT CASE WHEN visit_date = ? THEN ip_address END) AS today_unique
		FROM visitors
		GROUP BY path
		ORDER BY total DESC, path ASC
		LIMIT 20`

	if err := r.DB.Raw(perPageSQL, today, today).Scan(&stats.PerPage).Error; err != nil {
		return nil, err
	}
	if stats.PerPage == nil {
		stats.PerPage = []models.PageStatistic{}
	}

	return stats, nil
}
