// file: internals/features/library/shelves/service/layout_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rakku_backend/internals/features/library/shelves/geometry"
	"rakku_backend/internals/features/library/shelves/model"
	"rakku_backend/internals/features/library/shelves/reconcile"
)

// ReplaceLayout mengganti seluruh geometri shelf (satu-satunya pintu masuk
// rekonsiliasi). Baris/kolom TIDAK pernah dipatch parsial.
//
// All-or-nothing: geometri baru lolos validasi dan seluruh rekonsiliasi
// commit dalam satu transaksi, atau tidak ada yang berubah sama sekali.
// Balikannya shelf segar + daftar placement yang ter-displace (diserahkan ke
// caller untuk penempatan ulang manual; core tidak pernah menebak slot baru).
func (s *ShelfService) ReplaceLayout(ctx context.Context, shelfID uuid.UUID, rows []geometry.RowInput) (*ShelfWithLayout, []PlacementWithItem, error) {
	// Validasi geometri dulu, sebelum lock & transaksi — gagal di sini berarti
	// state lama tetap berlaku utuh.
	newSlots, err := geometry.BuildSlots(rows)
	if err != nil {
		return nil, nil, err
	}

	unlock := s.locks.Lock(shelfID)
	defer unlock()

	var displacedIDs []uuid.UUID

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.loadShelf(ctx, tx, shelfID); err != nil {
			return err
		}

		// Potret lama: slot + placement
		var oldSlotModels []model.ShelfSlotModel
		if err := tx.WithContext(ctx).
			Where("shelf_slot_shelf_id = ?", shelfID).
			Find(&oldSlotModels).Error; err != nil {
			return err
		}

		placements, err := s.Placements.WithTx(tx).ListByShelf(ctx, shelfID)
		if err != nil {
			return err
		}

		oldSlots := make([]geometry.Slot, 0, len(oldSlotModels))
		slotCell := make(map[uuid.UUID]geometry.CellKey, len(oldSlotModels))
		for _, sm := range oldSlotModels {
			oldSlots = append(oldSlots, sm.AsGeometry())
			slotCell[sm.ShelfSlotID] = sm.Cell()
		}

		views := make([]reconcile.PlacementView, 0, len(placements))
		for _, p := range placements {
			v := reconcile.PlacementView{PlacementID: p.PlacementID, ItemID: p.PlacementItemID}
			if p.PlacementSlotID != nil {
				if cell, ok := slotCell[*p.PlacementSlotID]; ok {
					c := cell
					v.Cell = &c
				}
				// slot id yatim (tidak ada di snapshot) dibiarkan Cell=nil:
				// rekonsiliasi memperlakukannya sebagai sudah unplaced
			}
			views = append(views, v)
		}

		rec, err := reconcile.Reconcile(oldSlots, newSlots, views)
		if err != nil {
			return err
		}

		// Ganti geometri utuh: hapus lama, tulis baru
		if err := s.deleteGeometry(ctx, tx, shelfID); err != nil {
			return err
		}
		cellToSlotID, err := s.insertGeometry(ctx, tx, shelfID, rows, newSlots)
		if err != nil {
			return err
		}

		// Retained: rebind ke id slot baru pada sel logis yang sama
		txStore := s.Placements.WithTx(tx)
		for _, b := range rec.Retained {
			if err := txStore.RebindSlot(ctx, b.PlacementID, cellToSlotID[b.Cell]); err != nil {
				return err
			}
		}
		for _, pid := range rec.Displaced {
			if err := txStore.MoveToUnplaced(ctx, pid); err != nil {
				return err
			}
		}

		displacedIDs = rec.Displaced
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	shelf, err := s.loadShelf(ctx, s.DB, shelfID)
	if err != nil {
		return nil, nil, err
	}
	layout, err := s.composeLayout(ctx, s.DB, *shelf)
	if err != nil {
		return nil, nil, err
	}

	displaced, err := s.displacedWithItems(ctx, displacedIDs)
	if err != nil {
		return nil, nil, err
	}
	return layout, displaced, nil
}

func (s *ShelfService) insertGeometry(ctx context.Context, tx *gorm.DB, shelfID uuid.UUID, rows []geometry.RowInput, slots []geometry.Slot) (map[geometry.CellKey]uuid.UUID, error) {
	for _, r := range rows {
		rowModel := model.ShelfRowModel{
			ShelfRowShelfID: shelfID,
			ShelfRowIndex:   r.RowIndex,
			ShelfRowYStart:  r.YStart,
			ShelfRowYEnd:    r.YEnd,
		}
		if err := tx.WithContext(ctx).Create(&rowModel).Error; err != nil {
			return nil, err
		}
		for _, c := range r.Columns {
			colModel := model.ShelfColumnModel{
				ShelfColumnRowID:   rowModel.ShelfRowID,
				ShelfColumnShelfID: shelfID,
				ShelfColumnIndex:   c.ColIndex,
				ShelfColumnXStart:  c.XStart,
				ShelfColumnXEnd:    c.XEnd,
			}
			if err := tx.WithContext(ctx).Create(&colModel).Error; err != nil {
				return nil, err
			}
		}
	}

	cellToSlotID := make(map[geometry.CellKey]uuid.UUID, len(slots))
	for _, gs := range slots {
		sm := model.ShelfSlotModel{
			ShelfSlotShelfID:  shelfID,
			ShelfSlotRowIndex: gs.RowIndex,
			ShelfSlotColIndex: gs.ColIndex,
			ShelfSlotXStart:   gs.XStart,
			ShelfSlotXEnd:     gs.XEnd,
			ShelfSlotYStart:   gs.YStart,
			ShelfSlotYEnd:     gs.YEnd,
		}
		if err := tx.WithContext(ctx).Create(&sm).Error; err != nil {
			return nil, err
		}
		cellToSlotID[gs.Key()] = sm.ShelfSlotID
	}
	return cellToSlotID, nil
}

func (s *ShelfService) displacedWithItems(ctx context.Context, placementIDs []uuid.UUID) ([]PlacementWithItem, error) {
	if len(placementIDs) == 0 {
		return []PlacementWithItem{}, nil
	}
	placements, err := s.Placements.ByIDs(ctx, placementIDs)
	if err != nil {
		return nil, err
	}
	return s.joinItems(ctx, placements)
}
