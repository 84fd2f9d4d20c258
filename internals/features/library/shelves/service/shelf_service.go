// file: internals/features/library/shelves/service/shelf_service.go
//
// Orkestrasi rak: CRUD shelf + assign/remove item. Semua mutasi terhadap
// satu shelf diserialisasi lewat keyed mutex (ditambah transaksi DB) supaya
// replace-layout dan mutasi placement tidak saling interleave.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	itemModel "rakku_backend/internals/features/library/items/model"
	itemSvc "rakku_backend/internals/features/library/items/service"
	placementModel "rakku_backend/internals/features/library/placements/model"
	placementSvc "rakku_backend/internals/features/library/placements/service"
	"rakku_backend/internals/features/library/shelves/model"
	"rakku_backend/internals/helpers/lock"
)

type ShelfService struct {
	DB         *gorm.DB
	Items      itemSvc.Lookup
	Placements *placementSvc.PlacementStore

	locks *lock.KeyedMutex
}

func NewShelfService(db *gorm.DB, items itemSvc.Lookup, placements *placementSvc.PlacementStore) *ShelfService {
	return &ShelfService{
		DB:         db,
		Items:      items,
		Placements: placements,
		locks:      lock.NewKeyedMutex(),
	}
}

/* =======================================================
   COMPOSITE VIEWS
   ======================================================= */

// ShelfWithLayout: shelf + geometri + seluruh placement-nya (placed & unplaced).
type ShelfWithLayout struct {
	Shelf      model.ShelfModel
	Rows       []model.ShelfRowModel // kolom ikut (preload), urut index
	Slots      []model.ShelfSlotModel
	Placements []placementModel.PlacementModel
}

type PlacementWithItem struct {
	Placement placementModel.PlacementModel
	Item      *itemModel.ItemModel
}

type ShelfSummary struct {
	Shelf       model.ShelfModel
	SlotCount   int64
	ItemCount   int64 // semua placement di shelf (termasuk unplaced)
	PlacedCount int64
}

/* =======================================================
   CRUD SHELF
   ======================================================= */

func (s *ShelfService) CreateShelf(ctx context.Context, name string, description, photoURL *string, labels datatypes.JSON) (*model.ShelfModel, error) {
	m := model.ShelfModel{
		ShelfName:        name,
		ShelfDescription: description,
		ShelfPhotoURL:    photoURL,
		ShelfLabels:      labels,
	}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateShelfPatch: nil = tidak diubah.
type UpdateShelfPatch struct {
	Name        *string
	Description *string
	PhotoURL    *string
	Labels      datatypes.JSON
}

func (s *ShelfService) UpdateShelf(ctx context.Context, shelfID uuid.UUID, p UpdateShelfPatch) (*model.ShelfModel, error) {
	unlock := s.locks.Lock(shelfID)
	defer unlock()

	m, err := s.loadShelf(ctx, s.DB, shelfID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if p.Name != nil {
		updates["shelf_name"] = *p.Name
	}
	if p.Description != nil {
		updates["shelf_description"] = *p.Description
	}
	if p.PhotoURL != nil {
		updates["shelf_photo_url"] = *p.PhotoURL
	}
	if p.Labels != nil {
		updates["shelf_labels"] = p.Labels
	}
	if len(updates) == 0 {
		return m, nil
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.ShelfModel{}).
		Where("shelf_id = ?", shelfID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.loadShelf(ctx, s.DB, shelfID)
}

// DeleteShelf: soft delete shelf, geometri ikut dihapus, placement dilepas
// dari shelf & slot (item kembali ke pool unplaced — item TIDAK dihapus).
func (s *ShelfService) DeleteShelf(ctx context.Context, shelfID uuid.UUID) error {
	unlock := s.locks.Lock(shelfID)
	defer unlock()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.loadShelf(ctx, tx, shelfID); err != nil {
			return err
		}
		if err := s.deleteGeometry(ctx, tx, shelfID); err != nil {
			return err
		}
		if err := s.Placements.WithTx(tx).DetachShelf(ctx, shelfID); err != nil {
			return err
		}
		return tx.Delete(&model.ShelfModel{}, "shelf_id = ?", shelfID).Error
	})
}

func (s *ShelfService) GetShelf(ctx context.Context, shelfID uuid.UUID) (*ShelfWithLayout, error) {
	shelf, err := s.loadShelf(ctx, s.DB, shelfID)
	if err != nil {
		return nil, err
	}
	return s.composeLayout(ctx, s.DB, *shelf)
}

func (s *ShelfService) ListShelves(ctx context.Context) ([]ShelfSummary, error) {
	var shelves []model.ShelfModel
	if err := s.DB.WithContext(ctx).
		Order("shelf_created_at ASC").
		Find(&shelves).Error; err != nil {
		return nil, err
	}

	slotCounts, err := s.countByShelf(ctx, &model.ShelfSlotModel{}, "shelf_slot_shelf_id")
	if err != nil {
		return nil, err
	}
	itemCounts, err := s.countByShelf(ctx, &placementModel.PlacementModel{}, "placement_shelf_id")
	if err != nil {
		return nil, err
	}

	placedCounts := map[uuid.UUID]int64{}
	{
		var rows []shelfCount
		if err := s.DB.WithContext(ctx).
			Model(&placementModel.PlacementModel{}).
			Select("placement_shelf_id AS shelf_id, COUNT(*) AS n").
			Where("placement_shelf_id IS NOT NULL AND placement_slot_id IS NOT NULL").
			Group("placement_shelf_id").
			Scan(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			placedCounts[r.ShelfID] = r.N
		}
	}

	out := make([]ShelfSummary, 0, len(shelves))
	for _, sh := range shelves {
		out = append(out, ShelfSummary{
			Shelf:       sh,
			SlotCount:   slotCounts[sh.ShelfID],
			ItemCount:   itemCounts[sh.ShelfID],
			PlacedCount: placedCounts[sh.ShelfID],
		})
	}
	return out, nil
}

/* =======================================================
   ASSIGN / REMOVE ITEM
   ======================================================= */

// AssignItem menempatkan item katalog ke satu slot shelf.
// Urutan cek: shelf → item (kolaborator) → slot → invariant placement.
func (s *ShelfService) AssignItem(ctx context.Context, shelfID, slotID, itemID uuid.UUID) (*PlacementWithItem, error) {
	unlock := s.locks.Lock(shelfID)
	defer unlock()

	if _, err := s.loadShelf(ctx, s.DB, shelfID); err != nil {
		return nil, err
	}

	item, err := s.Items.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err // ErrItemNotFound dipropagasi apa adanya
	}

	var slot model.ShelfSlotModel
	if err := s.DB.WithContext(ctx).
		First(&slot, "shelf_slot_id = ? AND shelf_slot_shelf_id = ?", slotID, shelfID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	p, err := s.Placements.Assign(ctx, itemID, shelfID, slotID)
	if err != nil {
		return nil, err
	}
	return &PlacementWithItem{Placement: *p, Item: item}, nil
}

// RemoveItem melepas placement sebuah item (no-op kalau tidak ada).
func (s *ShelfService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	existing, err := s.Placements.ByItem(ctx, itemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if existing.PlacementShelfID != nil {
		unlock := s.locks.Lock(*existing.PlacementShelfID)
		defer unlock()
	}
	return s.Placements.Unassign(ctx, itemID)
}

// ListUnplaced: pool item yang menunggu penempatan manual.
func (s *ShelfService) ListUnplaced(ctx context.Context) ([]PlacementWithItem, error) {
	rows, err := s.Placements.ListUnplaced(ctx)
	if err != nil {
		return nil, err
	}
	return s.joinItems(ctx, rows)
}

/* =======================================================
   INTERNAL
   ======================================================= */

func (s *ShelfService) loadShelf(ctx context.Context, db *gorm.DB, shelfID uuid.UUID) (*model.ShelfModel, error) {
	var m model.ShelfModel
	err := db.WithContext(ctx).First(&m, "shelf_id = ?", shelfID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrShelfNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ShelfService) composeLayout(ctx context.Context, db *gorm.DB, shelf model.ShelfModel) (*ShelfWithLayout, error) {
	var rows []model.ShelfRowModel
	if err := db.WithContext(ctx).
		Preload("Columns", func(q *gorm.DB) *gorm.DB {
			return q.Order("shelf_column_index ASC")
		}).
		Where("shelf_row_shelf_id = ?", shelf.ShelfID).
		Order("shelf_row_index ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var slots []model.ShelfSlotModel
	if err := db.WithContext(ctx).
		Where("shelf_slot_shelf_id = ?", shelf.ShelfID).
		Order("shelf_slot_row_index ASC, shelf_slot_col_index ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	placements, err := s.Placements.WithTx(db).ListByShelf(ctx, shelf.ShelfID)
	if err != nil {
		return nil, err
	}

	return &ShelfWithLayout{
		Shelf:      shelf,
		Rows:       rows,
		Slots:      slots,
		Placements: placements,
	}, nil
}

func (s *ShelfService) deleteGeometry(ctx context.Context, tx *gorm.DB, shelfID uuid.UUID) error {
	if err := tx.WithContext(ctx).
		Where("shelf_column_shelf_id = ?", shelfID).
		Delete(&model.ShelfColumnModel{}).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).
		Where("shelf_row_shelf_id = ?", shelfID).
		Delete(&model.ShelfRowModel{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).
		Where("shelf_slot_shelf_id = ?", shelfID).
		Delete(&model.ShelfSlotModel{}).Error
}

func (s *ShelfService) joinItems(ctx context.Context, placements []placementModel.PlacementModel) ([]PlacementWithItem, error) {
	out := make([]PlacementWithItem, 0, len(placements))
	for _, p := range placements {
		item, err := s.Items.ItemByID(ctx, p.PlacementItemID)
		if err != nil && !errors.Is(err, itemSvc.ErrItemNotFound) {
			return nil, err
		}
		out = append(out, PlacementWithItem{Placement: p, Item: item})
	}
	return out, nil
}

type shelfCount struct {
	ShelfID uuid.UUID `gorm:"column:shelf_id"`
	N       int64     `gorm:"column:n"`
}

func (s *ShelfService) countByShelf(ctx context.Context, mdl any, col string) (map[uuid.UUID]int64, error) {
	var rows []shelfCount
	if err := s.DB.WithContext(ctx).
		Model(mdl).
		Select(col + " AS shelf_id, COUNT(*) AS n").
		Where(col + " IS NOT NULL").
		Group(col).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		out[r.ShelfID] = r.N
	}
	return out, nil
}
