// file: internals/features/library/shelves/reconcile/reconcile_test.go
package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rakku_backend/internals/features/library/shelves/geometry"
)

func slot(row, col int, x0, x1, y0, y1 float64) geometry.Slot {
	return geometry.Slot{RowIndex: row, ColIndex: col, XStart: x0, XEnd: x1, YStart: y0, YEnd: y1}
}

func placedAt(row, col int) PlacementView {
	cell := geometry.CellKey{Row: row, Col: col}
	return PlacementView{PlacementID: uuid.New(), ItemID: uuid.New(), Cell: &cell}
}

func displacedIDs(r Result) map[uuid.UUID]bool {
	out := map[uuid.UUID]bool{}
	for _, id := range r.Displaced {
		out[id] = true
	}
	return out
}

func retainedIDs(r Result) map[uuid.UUID]geometry.CellKey {
	out := map[uuid.UUID]geometry.CellKey{}
	for _, b := range r.Retained {
		out[b.PlacementID] = b.Cell
	}
	return out
}

func TestReconcile_RetainWhenUnchanged(t *testing.T) {
	old := []geometry.Slot{
		slot(0, 0, 0, 0.5, 0, 0.5),
		slot(0, 1, 0.5, 1, 0, 0.5),
	}
	p := placedAt(0, 1)

	res, err := Reconcile(old, old, []PlacementView{p})
	require.NoError(t, err)
	assert.Empty(t, res.Displaced)
	require.Len(t, res.Retained, 1)
	assert.Equal(t, geometry.CellKey{Row: 0, Col: 1}, retainedIDs(res)[p.PlacementID])
}

func TestReconcile_DisplaceWhenCellRemoved(t *testing.T) {
	// baris 0: 3 kolom → 2 kolom. Placement di (0,2) ter-displace,
	// placement di (0,1) bertahan.
	old := []geometry.Slot{
		slot(0, 0, 0, 0.33, 0, 1),
		slot(0, 1, 0.33, 0.66, 0, 1),
		slot(0, 2, 0.66, 1, 0, 1),
	}
	newSlots := []geometry.Slot{
		slot(0, 0, 0, 0.33, 0, 1),
		slot(0, 1, 0.33, 0.66, 0, 1),
	}
	pKeep := placedAt(0, 1)
	pGone := placedAt(0, 2)

	res, err := Reconcile(old, newSlots, []PlacementView{pKeep, pGone})
	require.NoError(t, err)
	assert.True(t, displacedIDs(res)[pGone.PlacementID])
	assert.Contains(t, retainedIDs(res), pKeep.PlacementID)
	assert.Len(t, res.Displaced, 1)
	assert.Len(t, res.Retained, 1)
}

func TestReconcile_DisplaceOnlyMateriallyChangedRow(t *testing.T) {
	// hanya bounds baris 2 yang berubah; baris 0,1,3 (geser <= epsilon)
	// harus bertahan.
	mk := func(r2y0, r2y1 float64, eps float64) []geometry.Slot {
		return []geometry.Slot{
			slot(0, 0, 0, 1, 0.00+eps, 0.25+eps),
			slot(1, 0, 0, 1, 0.25+eps, 0.50+eps),
			slot(2, 0, 0, 1, r2y0, r2y1),
			slot(3, 0, 0, 1, 0.75+eps, 1.00),
		}
	}
	old := mk(0.50, 0.75, 0)
	newSlots := mk(0.55, 0.70, geometry.BoundsEpsilon/4)

	ps := []PlacementView{placedAt(0, 0), placedAt(1, 0), placedAt(2, 0), placedAt(3, 0)}

	res, err := Reconcile(old, newSlots, ps)
	require.NoError(t, err)

	disp := displacedIDs(res)
	ret := retainedIDs(res)
	assert.True(t, disp[ps[2].PlacementID], "baris yang bounds-nya berubah material ter-displace")
	for _, i := range []int{0, 1, 3} {
		assert.Contains(t, ret, ps[i].PlacementID, "baris %d harus bertahan", i)
	}
}

func TestReconcile_UnplacedUntouched(t *testing.T) {
	old := []geometry.Slot{slot(0, 0, 0, 1, 0, 1)}
	unplaced := PlacementView{PlacementID: uuid.New(), ItemID: uuid.New(), Cell: nil}

	res, err := Reconcile(old, nil, []PlacementView{unplaced})
	require.NoError(t, err)
	assert.Empty(t, res.Displaced)
	assert.Empty(t, res.Retained)
}

func TestReconcile_OrphanSlotDisplaced(t *testing.T) {
	// placement menunjuk cell yang tidak ada di snapshot lama (defensif)
	p := placedAt(9, 9)
	res, err := Reconcile(nil, []geometry.Slot{slot(9, 9, 0, 1, 0, 1)}, []PlacementView{p})
	require.NoError(t, err)
	assert.True(t, displacedIDs(res)[p.PlacementID])
}

func TestReconcile_AmbiguousCellsRejected(t *testing.T) {
	dup := []geometry.Slot{
		slot(0, 0, 0, 0.5, 0, 1),
		slot(0, 0, 0.5, 1, 0, 1),
	}
	_, err := Reconcile(dup, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrInvalidGeometry)
	assert.Equal(t, geometry.ReasonAmbiguousMapping, geometry.ReasonOf(err))

	_, err = Reconcile(nil, dup, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrInvalidGeometry)
}

func TestReconcile_OrderIndependent(t *testing.T) {
	old := []geometry.Slot{
		slot(0, 0, 0, 0.5, 0, 0.5),
		slot(0, 1, 0.5, 1, 0, 0.5),
		slot(1, 0, 0, 0.5, 0.5, 1),
	}
	newSlots := []geometry.Slot{
		slot(0, 0, 0, 0.5, 0, 0.5),
		slot(0, 1, 0.5, 1, 0, 0.5),
	}
	ps := []PlacementView{placedAt(0, 0), placedAt(0, 1), placedAt(1, 0)}

	a, err := Reconcile(old, newSlots, ps)
	require.NoError(t, err)

	// input diacak
	oldR := []geometry.Slot{old[2], old[0], old[1]}
	newR := []geometry.Slot{newSlots[1], newSlots[0]}
	psR := []PlacementView{ps[2], ps[1], ps[0]}

	b, err := Reconcile(oldR, newR, psR)
	require.NoError(t, err)

	assert.Equal(t, displacedIDs(a), displacedIDs(b))
	assert.Equal(t, retainedIDs(a), retainedIDs(b))
}
