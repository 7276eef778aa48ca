package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrInvalidDirection = errors.New("direction harus up atau down")
	ErrDuplicateSlug    = errors.New("slug sudah dipakai kategori lain")
)

// IsDuplicateKeyErr cek pelanggaran unique constraint. TranslateError gorm
// menangani postgres/mysql; fallback string untuk sqlite dan sqlserver.
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "Duplicate entry")
}
