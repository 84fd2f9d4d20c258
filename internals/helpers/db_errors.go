// file: internals/helpers/db_errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation deteksi pelanggaran unique constraint dari Postgres.
// Cek pq.Error dulu; fallback substring supaya tetap jalan di driver lain
// (mis. sqlite saat test).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
