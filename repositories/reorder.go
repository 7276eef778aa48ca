package repositories

import (
	"gorm.io/gorm"
)

// OrderScope mendefinisikan satu lingkup sibling: tabel, kolom order, dan
// kondisi pembatas. Where kosong berarti seluruh tabel satu lingkup
// (hero slide, pejabat, faq, partner, survey link). Menu memakai parent_id.
type OrderScope struct {
	Table    string
	OrderCol string
	Where    string
	Args     []interface{}
}

type orderRow struct {
	ID  uint
	Ord int
}

// SwapOrder menukar nilai order item dengan tetangganya searah direction.
// Item yang sudah paling atas/bawah bukan error, cukup no-op.
// Kedua update dibungkus satu transaksi supaya urutan sibling tidak pernah
// setengah tertukar.
func SwapOrder(db *gorm.DB, sc OrderScope, id uint, direction string) error {
	if direction != "up" && direction != "down" {
		return ErrInvalidDirection
	}

	q := db.Table(sc.Table).Select(sc.OrderCol + " AS ord, id")
	if sc.Where != "" {
		q = q.Where(sc.Where, sc.Args...)
	}

	var rows []orderRow
	if err := q.Order(sc.OrderCol + " asc, id asc").Scan(&rows).Error; err != nil {
		return err
	}

	idx := -1
	for i, r := range rows {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return gorm.ErrRecordNotFound
	}

	j := idx - 1
	if direction == "down" {
		j = idx + 1
	}
	if j < 0 || j >= len(rows) {
		return nil
	}

	target, neighbor := rows[idx], rows[j]

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(sc.Table).Where("id = ?", target.ID).
			Update(sc.OrderCol, neighbor.Ord).Error; err != nil {
			return err
		}
		return tx.Table(sc.Table).Where("id = ?", neighbor.ID).
			Update(sc.OrderCol, target.Ord).Error
	})
}

// NextOrder menghitung default order untuk record baru: jumlah sibling saat ini
func NextOrder(db *gorm.DB, sc OrderScope) (int, error) {
	q := db.Table(sc.Table)
	if sc.Where != "" {
		q = q.Where(sc.Where, sc.Args...)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
