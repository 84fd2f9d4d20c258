// file: internals/features/library/shelves/geometry/geometry_test.go
package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoByGrid() []RowInput {
	return []RowInput{
		{
			RowIndex: 0, YStart: 0.0, YEnd: 0.5,
			Columns: []ColumnInput{
				{ColIndex: 0, XStart: 0.0, XEnd: 0.5},
				{ColIndex: 1, XStart: 0.5, XEnd: 1.0},
			},
		},
		{
			RowIndex: 1, YStart: 0.5, YEnd: 1.0,
			Columns: []ColumnInput{
				{ColIndex: 0, XStart: 0.0, XEnd: 0.3},
				{ColIndex: 1, XStart: 0.3, XEnd: 0.6},
				{ColIndex: 2, XStart: 0.6, XEnd: 1.0},
			},
		},
	}
}

func TestBuildSlots_RowMajorOrderAndBounds(t *testing.T) {
	slots, err := BuildSlots(twoByGrid())
	require.NoError(t, err)
	require.Len(t, slots, 5) // Σ kolom per baris

	wantCells := []CellKey{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1}, {1, 2},
	}
	seen := map[CellKey]bool{}
	for i, s := range slots {
		assert.Equal(t, wantCells[i], s.Key(), "urutan row-major")
		assert.False(t, seen[s.Key()], "cell unik")
		seen[s.Key()] = true
	}

	// slot mewarisi bounds baris & kolomnya
	assert.Equal(t, 0.5, slots[2].YStart)
	assert.Equal(t, 1.0, slots[2].YEnd)
	assert.Equal(t, 0.0, slots[2].XStart)
	assert.Equal(t, 0.3, slots[2].XEnd)
}

func TestBuildSlots_Deterministic(t *testing.T) {
	a, err := BuildSlots(twoByGrid())
	require.NoError(t, err)
	b, err := BuildSlots(twoByGrid())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildSlots_InputOrderIndependent(t *testing.T) {
	rows := twoByGrid()
	// balik urutan baris & kolom di input; hasil harus identik
	reversed := []RowInput{rows[1], rows[0]}
	reversed[0].Columns = []ColumnInput{rows[1].Columns[2], rows[1].Columns[0], rows[1].Columns[1]}

	a, err := BuildSlots(rows)
	require.NoError(t, err)
	b, err := BuildSlots(reversed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildSlots_EmptyLayout(t *testing.T) {
	slots, err := BuildSlots(nil)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// baris tanpa kolom juga sah
	slots, err = BuildSlots([]RowInput{{RowIndex: 0, YStart: 0, YEnd: 1}})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBuildSlots_Validation(t *testing.T) {
	cases := []struct {
		name   string
		rows   []RowInput
		reason string
	}{
		{
			name: "row overlap",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0.0, YEnd: 0.5},
				{RowIndex: 1, YStart: 0.4, YEnd: 1.0},
			},
			reason: ReasonOverlap,
		},
		{
			name: "row order tidak konsisten dengan yStart",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0.5, YEnd: 1.0},
				{RowIndex: 1, YStart: 0.0, YEnd: 0.4},
			},
			reason: ReasonOverlap,
		},
		{
			name: "column overlap dalam satu baris",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0, YEnd: 1, Columns: []ColumnInput{
					{ColIndex: 0, XStart: 0.0, XEnd: 0.6},
					{ColIndex: 1, XStart: 0.5, XEnd: 1.0},
				}},
			},
			reason: ReasonOverlap,
		},
		{
			name: "yStart >= yEnd",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0.5, YEnd: 0.5},
			},
			reason: ReasonBadRange,
		},
		{
			name: "bound di luar [0,1]",
			rows: []RowInput{
				{RowIndex: 0, YStart: -0.1, YEnd: 0.5},
			},
			reason: ReasonBadRange,
		},
		{
			name: "xEnd > 1",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0, YEnd: 1, Columns: []ColumnInput{
					{ColIndex: 0, XStart: 0.5, XEnd: 1.1},
				}},
			},
			reason: ReasonBadRange,
		},
		{
			name: "row index duplikat",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0.0, YEnd: 0.4},
				{RowIndex: 0, YStart: 0.5, YEnd: 1.0},
			},
			reason: ReasonNonDenseIndex,
		},
		{
			name: "row index bolong (tidak padat)",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0.0, YEnd: 0.4},
				{RowIndex: 2, YStart: 0.5, YEnd: 1.0},
			},
			reason: ReasonNonDenseIndex,
		},
		{
			name: "col index duplikat",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0, YEnd: 1, Columns: []ColumnInput{
					{ColIndex: 0, XStart: 0.0, XEnd: 0.4},
					{ColIndex: 0, XStart: 0.5, XEnd: 1.0},
				}},
			},
			reason: ReasonNonDenseIndex,
		},
		{
			name: "col index negatif",
			rows: []RowInput{
				{RowIndex: 0, YStart: 0, YEnd: 1, Columns: []ColumnInput{
					{ColIndex: -1, XStart: 0.0, XEnd: 0.4},
				}},
			},
			reason: ReasonNonDenseIndex,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := BuildSlots(tc.rows)
			require.Error(t, err)
			assert.Nil(t, slots, "tidak ada hasil parsial")
			assert.ErrorIs(t, err, ErrInvalidGeometry)
			assert.Equal(t, tc.reason, ReasonOf(err))
		})
	}
}

func TestBoundsEquivalent(t *testing.T) {
	base := Slot{RowIndex: 0, ColIndex: 0, XStart: 0.1, XEnd: 0.4, YStart: 0.2, YEnd: 0.5}

	shifted := base
	shifted.XStart += BoundsEpsilon / 2
	assert.True(t, BoundsEquivalent(base, shifted), "pergeseran <= epsilon dianggap sama")

	moved := base
	moved.YEnd += 0.01
	assert.False(t, BoundsEquivalent(base, moved), "pergeseran material dianggap beda")
}

func TestIndexByCell_DuplicateIsAmbiguous(t *testing.T) {
	slots := []Slot{
		{RowIndex: 0, ColIndex: 0},
		{RowIndex: 0, ColIndex: 0, XStart: 0.5},
	}
	_, err := IndexByCell(slots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	assert.Equal(t, ReasonAmbiguousMapping, ReasonOf(err))
}
