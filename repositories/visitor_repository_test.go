package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pn-nangabulik-backend/models"
)

func TestRecordDeduplicatesPerDay(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	now := time.Now()

	require.NoError(t, repo.Record("10.0.0.1", "/beranda", "Mozilla/5.0", now))
	// kunjungan kedua di hari yang sama: sukses tapi tidak menambah baris
	require.NoError(t, repo.Record("10.0.0.1", "/beranda", "Mozilla/5.0", now.Add(2*time.Hour)))

	var count int64
	db.Model(&models.Visitor{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// path lain dan IP lain tetap tercatat
	require.NoError(t, repo.Record("10.0.0.1", "/berita", "Mozilla/5.0", now))
	require.NoError(t, repo.Record("10.0.0.2", "/beranda", "Mozilla/5.0", now))

	db.Model(&models.Visitor{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestRecordSeparateDays(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	now := time.Now()
	require.NoError(t, repo.Record("10.0.0.1", "/beranda", "Mozilla/5.0", now))
	require.NoError(t, repo.Record("10.0.0.1", "/beranda", "Mozilla/5.0", now.AddDate(0, 0, -1)))

	var count int64
	db.Model(&models.Visitor{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

// statWindows batas jendela yang sama dengan yang dipakai GetStatistics,
// dihitung ulang di tes supaya ekspektasi tidak tergantung tanggal run
type statWindows struct {
	today, yesterday           time.Time
	weekStart, lastWeekStart   time.Time
	monthStart, lastMonthStart time.Time
}

func windowsFor(now time.Time) statWindows {
	today := Midnight(now)
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := today.AddDate(0, 0, -(weekday - 1))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return statWindows{
		today:          today,
		yesterday:      today.AddDate(0, 0, -1),
		weekStart:      weekStart,
		lastWeekStart:  weekStart.AddDate(0, 0, -7),
		monthStart:     monthStart,
		lastMonthStart: monthStart.AddDate(0, -1, 0),
	}
}

func TestGetStatisticsWindows(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	now := time.Now()
	w := windowsFor(now)

	visits := []struct {
		ip string
		at time.Time
	}{
		{"10.0.0.1", now},
		{"10.0.0.2", now},
		{"10.0.0.1", w.yesterday},
		{"10.0.0.3", w.weekStart},
		{"10.0.0.4", w.lastWeekStart},
		{"10.0.0.5", w.monthStart},
		{"10.0.0.6", w.lastMonthStart},
	}
	for _, v := range visits {
		require.NoError(t, repo.Record(v.ip, "/beranda", "Mozilla/5.0", v.at))
	}

	// ekspektasi dihitung dengan membucketkan tanggal yang sama
	var expected models.VisitorStatistics
	for _, v := range visits {
		d := Midnight(v.at)
		if d.Equal(w.today) {
			expected.Today++
		}
		if d.Equal(w.yesterday) {
			expected.Yesterday++
		}
		if !d.Before(w.weekStart) {
			expected.ThisWeek++
		}
		if !d.Before(w.lastWeekStart) && d.Before(w.weekStart) {
			expected.LastWeek++
		}
		if !d.Before(w.monthStart) {
			expected.ThisMonth++
		}
		if !d.Before(w.lastMonthStart) && d.Before(w.monthStart) {
			expected.LastMonth++
		}
		expected.Total++
	}

	stats, err := repo.GetStatistics(now)
	require.NoError(t, err)

	assert.Equal(t, expected.Today, stats.Today)
	assert.Equal(t, expected.Yesterday, stats.Yesterday)
	assert.Equal(t, expected.ThisWeek, stats.ThisWeek)
	assert.Equal(t, expected.LastWeek, stats.LastWeek)
	assert.Equal(t, expected.ThisMonth, stats.ThisMonth)
	assert.Equal(t, expected.LastMonth, stats.LastMonth)
	assert.Equal(t, expected.Total, stats.Total)

	// hari ini selalu bagian dari minggu dan bulan berjalan
	assert.GreaterOrEqual(t, stats.ThisWeek, stats.Today)
	assert.GreaterOrEqual(t, stats.ThisMonth, stats.Today)
}

func TestGetStatisticsOnlineUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	now := time.Now()
	// created_at diisi gorm saat insert, jadi semua baris ini "online"
	require.NoError(t, repo.Record("10.0.0.1", "/a", "Mozilla/5.0", now))
	require.NoError(t, repo.Record("10.0.0.1", "/b", "Mozilla/5.0", now))
	require.NoError(t, repo.Record("10.0.0.2", "/a", "Mozilla/5.0", now))

	stats, err := repo.GetStatistics(now)
	require.NoError(t, err)

	// IP yang sama di dua path tetap satu pengguna online
	assert.Equal(t, int64(2), stats.OnlineUsers)
}

func TestGetStatisticsPerPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	require.NoError(t, repo.Record("10.0.0.1", "/beranda", "Mozilla/5.0", now))
	require.NoError(t, repo.Record("10.0.0.2", "/beranda", "Mozilla/5.0", now))
	require.NoError(t, repo.Record("10.0.0.3", "/beranda", "Mozilla/5.0", yesterday))
	require.NoError(t, repo.Record("10.0.0.1", "/berita", "Mozilla/5.0", now))

	stats, err := repo.GetStatistics(now)
	require.NoError(t, err)

	require.Len(t, stats.PerPage, 2)
	// terurut menurun berdasarkan total
	assert.Equal(t, "/beranda", stats.PerPage[0].Path)
	assert.Equal(t, int64(3), stats.PerPage[0].Total)
	assert.Equal(t, int64(2), stats.PerPage[0].Today)
	assert.Equal(t, int64(2), stats.PerPage[0].TodayUnique)

	assert.Equal(t, "/berita", stats.PerPage[1].Path)
	assert.Equal(t, int64(1), stats.PerPage[1].Total)
}

func TestGetStatisticsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewVisitorRepository(db)

	stats, err := repo.GetStatistics(time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Total)
	assert.NotNil(t, stats.PerPage)
	assert.Empty(t, stats.PerPage)
}
