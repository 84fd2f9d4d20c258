// file: internals/features/library/shelves/reconcile/reconcile.go
//
// Algoritma rekonsiliasi placement saat layout rak diganti.
// Pure function: tidak menyentuh DB. Service yang menerjemahkan hasilnya
// menjadi update placement di dalam satu transaksi.
package reconcile

import (
	"github.com/google/uuid"

	"rakku_backend/internals/features/library/shelves/geometry"
)

/* =======================================================
   INPUT & OUTPUT
   ======================================================= */

// PlacementView potret satu placement untuk kebutuhan diff.
// Cell = nil artinya placement sudah unplaced (tidak disentuh rekonsiliasi).
type PlacementView struct {
	PlacementID uuid.UUID
	ItemID      uuid.UUID
	Cell        *geometry.CellKey
}

// Binding: placement yang dipertahankan, di-rebind ke cell logisnya
// (id slot fisik boleh berganti, sel logisnya tidak).
type Binding struct {
	PlacementID uuid.UUID
	Cell        geometry.CellKey
}

type Result struct {
	Retained  []Binding
	Displaced []uuid.UUID // placement ids yang slot-nya harus dikosongkan
}

/* =======================================================
   RECONCILE
   ======================================================= */

// Reconcile memetakan placement lama ke slot set baru.
//
// Aturan identitas slot: cell (rowIndex,colIndex) sama DAN keempat bounds
// bergeser <= geometry.BoundsEpsilon → slot logis yang sama (retain).
// Cell hilang, atau bounds berubah material → displace.
// Hasil deterministik dan tidak tergantung urutan input.
func Reconcile(oldSlots, newSlots []geometry.Slot, placements []PlacementView) (Result, error) {
	oldIdx, err := geometry.IndexByCell(oldSlots)
	if err != nil {
		return Result{}, err
	}
	newIdx, err := geometry.IndexByCell(newSlots)
	if err != nil {
		return Result{}, err
	}

	res := Result{}
	for _, p := range placements {
		if p.Cell == nil {
			continue // sudah unplaced, biarkan
		}

		oldSlot, ok := oldIdx[*p.Cell]
		if !ok {
			// placement menunjuk cell yang tidak ada di geometri lama;
			// defensif: anggap slot-nya sudah hilang
			res.Displaced = append(res.Displaced, p.PlacementID)
			continue
		}

		newSlot, ok := newIdx[*p.Cell]
		if !ok {
			res.Displaced = append(res.Displaced, p.PlacementID)
			continue
		}

		if geometry.BoundsEquivalent(oldSlot, newSlot) {
			res.Retained = append(res.Retained, Binding{PlacementID: p.PlacementID, Cell: *p.Cell})
		} else {
			res.Displaced = append(res.Displaced, p.PlacementID)
		}
	}
	return res, nil
}
