// file: internals/features/library/placements/service/placement_store_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"rakku_backend/internals/features/library/placements/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // satu koneksi supaya :memory: konsisten

	require.NoError(t, db.AutoMigrate(&model.PlacementModel{}))
	return db
}

func TestAssign_CreateAndIdempotent(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)
	ctx := context.Background()

	itemID := uuid.New()
	shelfID := uuid.New()
	slotID := uuid.New()

	p1, err := store.Assign(ctx, itemID, shelfID, slotID)
	require.NoError(t, err)
	require.NotNil(t, p1.PlacementSlotID)
	assert.Equal(t, slotID, *p1.PlacementSlotID)

	// idempoten: pasangan (item, slot) sama → sukses, tetap satu record
	p2, err := store.Assign(ctx, itemID, shelfID, slotID)
	require.NoError(t, err)
	assert.Equal(t, p1.PlacementID, p2.PlacementID)

	var n int64
	require.NoError(t, db.Model(&model.PlacementModel{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestAssign_SlotOccupied(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)
	ctx := context.Background()

	shelfID := uuid.New()
	slotID := uuid.New()
	first := uuid.New()

	_, err := store.Assign(ctx, first, shelfID, slotID)
	require.NoError(t, err)

	_, err = store.Assign(ctx, uuid.New(), shelfID, slotID)
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// placement pertama tidak tersentuh
	got, err := store.ByItem(ctx, first)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, slotID, *got.PlacementSlotID)
}

func TestAssign_ItemAlreadyPlaced(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)
	ctx := context.Background()

	itemID := uuid.New()
	shelfA := uuid.New()
	slotA := uuid.New()

	_, err := store.Assign(ctx, itemID, shelfA, slotA)
	require.NoError(t, err)

	// shelf lain
	_, err = store.Assign(ctx, itemID, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrItemAlreadyPlaced)

	// slot lain di shelf yang sama (masih placed) juga ditolak
	_, err = store.Assign(ctx, itemID, shelfA, uuid.New())
	assert.ErrorIs(t, err, ErrItemAlreadyPlaced)

	// placement awal utuh
	got, err := store.ByItem(ctx, itemID)
	require.NoError(t, err)
	assert.Equal(t, slotA, *got.PlacementSlotID)
}

func TestAssign_ReplaceAfterUnplaced(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)
	ctx := context.Background()

	itemID := uuid.New()
	shelfID := uuid.New()
	slotA := uuid.New()
	slotB := uuid.New()

	p, err := store.Assign(ctx, itemID, shelfID, slotA)
	require.NoError(t, err)

	require.NoError(t, store.MoveToUnplaced(ctx, p.PlacementID))

	got, err := store.ByItem(ctx, itemID)
	require.NoError(t, err)
	assert.Nil(t, got.PlacementSlotID, "slot kosong tapi shelf tetap")
	require.NotNil(t, got.PlacementShelfID)
	assert.Equal(t, shelfID, *got.PlacementShelfID)

	// re-placement manual ke slot baru di shelf yang sama
	p2, err := store.Assign(ctx, itemID, shelfID, slotB)
	require.NoError(t, err)
	assert.Equal(t, p.PlacementID, p2.PlacementID, "record yang sama di-upgrade")
	assert.Equal(t, slotB, *p2.PlacementSlotID)
}

func TestUnassign_NoopWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)
	ctx := context.Background()

	assert.NoError(t, store.Unassign(ctx, uuid.New()))
}

func TestMoveToUnplaced_UnknownID(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)

	err := store.MoveToUnplaced(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPlacementNotFound)
}

func TestDetachShelf(t *testing.T) {
	db := newTestDB(t)
	store := NewPlacementStore(db)
	ctx := context.Background()

	shelfID := uuid.New()
	_, err := store.Assign(ctx, uuid.New(), shelfID, uuid.New())
	require.NoError(t, err)
	_, err = store.Assign(ctx, uuid.New(), shelfID, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.DetachShelf(ctx, shelfID))

	left, err := store.ListByShelf(ctx, shelfID)
	require.NoError(t, err)
	assert.Empty(t, left, "tidak ada lagi placement yang menempel ke shelf")

	pool, err := store.ListUnplaced(ctx)
	require.NoError(t, err)
	assert.Len(t, pool, 2, "item balik ke pool unplaced, record tidak dihapus")
	for _, p := range pool {
		assert.Nil(t, p.PlacementShelfID)
		assert.Nil(t, p.PlacementSlotID)
	}
}
