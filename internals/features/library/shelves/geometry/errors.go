// file: internals/features/library/shelves/geometry/errors.go
package geometry

import (
	"errors"
	"fmt"
)

// Sub-reason geometry error (machine-readable).
const (
	ReasonOverlap          = "overlap"
	ReasonBadRange         = "bad-range"
	ReasonNonDenseIndex    = "non-dense-index"
	ReasonAmbiguousMapping = "ambiguous-mapping"
)

// ErrInvalidGeometry: sentinel supaya caller bisa errors.Is tanpa peduli detail.
var ErrInvalidGeometry = errors.New("geometry: layout tidak valid")

// InvalidGeometryError membawa reason + lokasi (row/col) yang bermasalah.
// RowIndex / ColIndex = -1 kalau tidak relevan.
type InvalidGeometryError struct {
	Reason   string
	RowIndex int
	ColIndex int
	Detail   string
}

func (e *InvalidGeometryError) Error() string {
	if e.ColIndex >= 0 {
		return fmt.Sprintf("geometry: %s (row=%d col=%d): %s", e.Reason, e.RowIndex, e.ColIndex, e.Detail)
	}
	if e.RowIndex >= 0 {
		return fmt.Sprintf("geometry: %s (row=%d): %s", e.Reason, e.RowIndex, e.Detail)
	}
	return fmt.Sprintf("geometry: %s: %s", e.Reason, e.Detail)
}

func (e *InvalidGeometryError) Unwrap() error { return ErrInvalidGeometry }

func invalidf(reason string, rowIdx, colIdx int, format string, args ...any) error {
	return &InvalidGeometryError{
		Reason:   reason,
		RowIndex: rowIdx,
		ColIndex: colIdx,
		Detail:   fmt.Sprintf(format, args...),
	}
}

// ReasonOf mengambil sub-reason dari error geometry (kosong kalau bukan).
func ReasonOf(err error) string {
	var ge *InvalidGeometryError
	if errors.As(err, &ge) {
		return ge.Reason
	}
	return ""
}
