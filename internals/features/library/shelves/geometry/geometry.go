// file: internals/features/library/shelves/geometry/geometry.go
//
// Model geometri rak: baris & kolom dalam koordinat ternormalisasi [0,1].
// Slot = hasil kali kartesian baris x kolom. Semua fungsi di sini pure
// (tanpa DB, tanpa side effect) supaya gampang dites.
package geometry

import (
	"math"
	"sort"
)

// BoundsEpsilon: toleransi pergeseran bounds akibat re-normalisasi proporsional.
// Pergeseran <= epsilon dianggap slot yang sama; lebih dari itu dianggap
// perubahan material (placement di-displace, jangan menebak niat user).
const BoundsEpsilon = 1e-6

/* =======================================================
   INPUT & OUTPUT TYPES
   ======================================================= */

type ColumnInput struct {
	ColIndex int
	XStart   float64
	XEnd     float64
}

type RowInput struct {
	RowIndex int
	YStart   float64
	YEnd     float64
	Columns  []ColumnInput
}

// CellKey identitas logis satu sel grid (bukan identitas fisik/uuid).
type CellKey struct {
	Row int
	Col int
}

// Slot sel grid turunan: bounds y dari baris, bounds x dari kolom.
type Slot struct {
	RowIndex int
	ColIndex int
	XStart   float64
	XEnd     float64
	YStart   float64
	YEnd     float64
}

func (s Slot) Key() CellKey { return CellKey{Row: s.RowIndex, Col: s.ColIndex} }

/* =======================================================
   BUILD SLOTS
   ======================================================= */

// BuildSlots memvalidasi geometri lalu menghasilkan grid slot lengkap,
// urut row-major (rowIndex naik, lalu colIndex naik). Deterministik.
// Gagal dengan *InvalidGeometryError — tidak ada hasil parsial.
func BuildSlots(rows []RowInput) ([]Slot, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	sorted := make([]RowInput, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RowIndex < sorted[j].RowIndex })

	total := 0
	for _, r := range sorted {
		total += len(r.Columns)
	}

	slots := make([]Slot, 0, total)
	for _, r := range sorted {
		cols := make([]ColumnInput, len(r.Columns))
		copy(cols, r.Columns)
		sort.Slice(cols, func(i, j int) bool { return cols[i].ColIndex < cols[j].ColIndex })

		for _, col := range cols {
			slots = append(slots, Slot{
				RowIndex: r.RowIndex,
				ColIndex: col.ColIndex,
				XStart:   col.XStart,
				XEnd:     col.XEnd,
				YStart:   r.YStart,
				YEnd:     r.YEnd,
			})
		}
	}
	return slots, nil
}

/* =======================================================
   VALIDATION
   ======================================================= */

func validateRows(rows []RowInput) error {
	// Index baris harus permutasi padat 0..N-1
	seen := make(map[int]bool, len(rows))
	for _, r := range rows {
		if r.RowIndex < 0 || r.RowIndex >= len(rows) {
			return invalidf(ReasonNonDenseIndex, r.RowIndex, -1, "row index di luar 0..%d", len(rows)-1)
		}
		if seen[r.RowIndex] {
			return invalidf(ReasonNonDenseIndex, r.RowIndex, -1, "row index duplikat")
		}
		seen[r.RowIndex] = true
	}

	sorted := make([]RowInput, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RowIndex < sorted[j].RowIndex })

	for i, r := range sorted {
		if !validRange(r.YStart, r.YEnd) {
			return invalidf(ReasonBadRange, r.RowIndex, -1, "yStart=%v yEnd=%v harus 0<=start<end<=1", r.YStart, r.YEnd)
		}
		// urutan rowIndex harus konsisten dengan urutan yStart & tanpa overlap
		if i > 0 {
			prev := sorted[i-1]
			if r.YStart < prev.YEnd-BoundsEpsilon {
				return invalidf(ReasonOverlap, r.RowIndex, -1, "row %d (yStart=%v) overlap dengan row %d (yEnd=%v)", r.RowIndex, r.YStart, prev.RowIndex, prev.YEnd)
			}
		}
		if err := validateColumns(r); err != nil {
			return err
		}
	}
	return nil
}

func validateColumns(r RowInput) error {
	seen := make(map[int]bool, len(r.Columns))
	for _, c := range r.Columns {
		if c.ColIndex < 0 || c.ColIndex >= len(r.Columns) {
			return invalidf(ReasonNonDenseIndex, r.RowIndex, c.ColIndex, "col index di luar 0..%d", len(r.Columns)-1)
		}
		if seen[c.ColIndex] {
			return invalidf(ReasonNonDenseIndex, r.RowIndex, c.ColIndex, "col index duplikat")
		}
		seen[c.ColIndex] = true
	}

	cols := make([]ColumnInput, len(r.Columns))
	copy(cols, r.Columns)
	sort.Slice(cols, func(i, j int) bool { return cols[i].ColIndex < cols[j].ColIndex })

	for i, c := range cols {
		if !validRange(c.XStart, c.XEnd) {
			return invalidf(ReasonBadRange, r.RowIndex, c.ColIndex, "xStart=%v xEnd=%v harus 0<=start<end<=1", c.XStart, c.XEnd)
		}
		if i > 0 {
			prev := cols[i-1]
			if c.XStart < prev.XEnd-BoundsEpsilon {
				return invalidf(ReasonOverlap, r.RowIndex, c.ColIndex, "col %d (xStart=%v) overlap dengan col %d (xEnd=%v)", c.ColIndex, c.XStart, prev.ColIndex, prev.XEnd)
			}
		}
	}
	return nil
}

func validRange(start, end float64) bool {
	return start >= 0 && end <= 1 && start < end
}

/* =======================================================
   EQUIVALENCE
   ======================================================= */

// BoundsEquivalent: keempat sisi bergeser <= BoundsEpsilon → slot dianggap sama.
func BoundsEquivalent(a, b Slot) bool {
	return math.Abs(a.XStart-b.XStart) <= BoundsEpsilon &&
		math.Abs(a.XEnd-b.XEnd) <= BoundsEpsilon &&
		math.Abs(a.YStart-b.YStart) <= BoundsEpsilon &&
		math.Abs(a.YEnd-b.YEnd) <= BoundsEpsilon
}

// IndexByCell bikin index slot per CellKey. Key duplikat = geometri ambigu.
func IndexByCell(slots []Slot) (map[CellKey]Slot, error) {
	idx := make(map[CellKey]Slot, len(slots))
	for _, s := range slots {
		k := s.Key()
		if _, dup := idx[k]; dup {
			return nil, invalidf(ReasonAmbiguousMapping, k.Row, k.Col, "dua slot memakai cell yang sama")
		}
		idx[k] = s
	}
	return idx, nil
}
