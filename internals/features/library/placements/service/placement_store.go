// file: internals/features/library/placements/service/placement_store.go
//
// PlacementStore = satu-satunya jalur tulis ke tabel placements.
// Komponen lain (termasuk rekonsiliasi layout) tidak boleh menyentuh record
// placement langsung; semua lewat method di sini supaya invariant
// "1 item = max 1 placement" & "1 slot = max 1 item" terjaga atomik.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rakku_backend/internals/features/library/placements/model"
)

type PlacementStore struct {
	DB *gorm.DB
}

func NewPlacementStore(db *gorm.DB) *PlacementStore {
	return &PlacementStore{DB: db}
}

// WithTx: store yang jalan di atas transaksi milik caller (dipakai service
// layout supaya rekonsiliasi + update placement satu transaksi).
func (s *PlacementStore) WithTx(tx *gorm.DB) *PlacementStore {
	return &PlacementStore{DB: tx}
}

/* =======================================================
   QUERIES
   ======================================================= */

// ByItem mengambil placement aktif sebuah item (nil kalau tidak ada).
func (s *PlacementStore) ByItem(ctx context.Context, itemID uuid.UUID) (*model.PlacementModel, error) {
	var m model.PlacementModel
	err := s.DB.WithContext(ctx).
		First(&m, "placement_item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// BySlot mengambil placement yang menempati sebuah slot (nil kalau kosong).
func (s *PlacementStore) BySlot(ctx context.Context, slotID uuid.UUID) (*model.PlacementModel, error) {
	var m model.PlacementModel
	err := s.DB.WithContext(ctx).
		First(&m, "placement_slot_id = ?", slotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ByIDs mengambil sekumpulan placement sekaligus (urut created_at).
func (s *PlacementStore) ByIDs(ctx context.Context, ids []uuid.UUID) ([]model.PlacementModel, error) {
	var out []model.PlacementModel
	err := s.DB.WithContext(ctx).
		Where("placement_id IN ?", ids).
		Order("placement_created_at ASC").
		Find(&out).Error
	return out, err
}

// ListByShelf: semua placement milik shelf, placed maupun unplaced.
func (s *PlacementStore) ListByShelf(ctx context.Context, shelfID uuid.UUID) ([]model.PlacementModel, error) {
	var out []model.PlacementModel
	err := s.DB.WithContext(ctx).
		Where("placement_shelf_id = ?", shelfID).
		Order("placement_created_at ASC").
		Find(&out).Error
	return out, err
}

// ListUnplaced: pool item yang belum punya slot (shelf apa pun / tanpa shelf).
func (s *PlacementStore) ListUnplaced(ctx context.Context) ([]model.PlacementModel, error) {
	var out []model.PlacementModel
	err := s.DB.WithContext(ctx).
		Where("placement_slot_id IS NULL").
		Order("placement_created_at ASC").
		Find(&out).Error
	return out, err
}

/* =======================================================
   MUTATIONS (atomik terhadap invariant §placements)
   ======================================================= */

// Assign menempatkan item ke slot.
//   - pasangan (item, slot) sudah persis sama → sukses idempoten.
//   - placement item masih unplaced di shelf yang sama → di-upgrade ke slot
//     (alur re-placement manual setelah displacement).
//   - item punya placement lain → ErrItemAlreadyPlaced (tanpa mutasi apa pun).
//   - slot ditempati item lain → ErrSlotOccupied (placement lama utuh).
func (s *PlacementStore) Assign(ctx context.Context, itemID, shelfID, slotID uuid.UUID) (*model.PlacementModel, error) {
	var out *model.PlacementModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txs := s.WithTx(tx)

		existing, err := txs.ByItem(ctx, itemID)
		if err != nil {
			return err
		}
		if existing != nil {
			sameShelf := existing.PlacementShelfID != nil && *existing.PlacementShelfID == shelfID
			if existing.PlacementSlotID != nil {
				if sameShelf && *existing.PlacementSlotID == slotID {
					out = existing // idempoten
					return nil
				}
				return ErrItemAlreadyPlaced
			}
			// unplaced: boleh ditempatkan ulang di shelf yang sama, atau
			// diadopsi dari pool tanpa-shelf; unplaced milik shelf lain tetap
			// harus di-Unassign dulu.
			if existing.PlacementShelfID != nil && !sameShelf {
				return ErrItemAlreadyPlaced
			}
		}

		occupant, err := txs.BySlot(ctx, slotID)
		if err != nil {
			return err
		}
		if occupant != nil && occupant.PlacementItemID != itemID {
			return ErrSlotOccupied
		}

		if existing != nil {
			res := tx.Model(&model.PlacementModel{}).
				Where("placement_id = ? AND placement_slot_id IS NULL", existing.PlacementID).
				Updates(map[string]any{
					"placement_shelf_id": shelfID,
					"placement_slot_id":  slotID,
				})
			if res.Error != nil {
				return res.Error
			}
			existing.PlacementShelfID = &shelfID
			existing.PlacementSlotID = &slotID
			out = existing
			return nil
		}

		m := model.PlacementModel{
			PlacementItemID:  itemID,
			PlacementShelfID: &shelfID,
			PlacementSlotID:  &slotID,
		}
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		out = &m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unassign menghapus placement item. Item tanpa placement = no-op, bukan error.
func (s *PlacementStore) Unassign(ctx context.Context, itemID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Where("placement_item_id = ?", itemID).
		Delete(&model.PlacementModel{}).Error
}

// MoveToUnplaced mengosongkan slot sebuah placement, asosiasi shelf tetap.
// Dipakai rekonsiliasi saat slot hilang dari geometri baru.
func (s *PlacementStore) MoveToUnplaced(ctx context.Context, placementID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Model(&model.PlacementModel{}).
		Where("placement_id = ?", placementID).
		Update("placement_slot_id", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlacementNotFound
	}
	return nil
}

// RebindSlot mengganti id slot placement (retain saat rekonsiliasi:
// sel logis sama, id slot fisik regenerasi).
func (s *PlacementStore) RebindSlot(ctx context.Context, placementID, newSlotID uuid.UUID) error {
	res := s.DB.WithContext(ctx).
		Model(&model.PlacementModel{}).
		Where("placement_id = ?", placementID).
		Update("placement_slot_id", newSlotID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPlacementNotFound
	}
	return nil
}

// DetachShelf: shelf dihapus → semua placement-nya dilepas dari shelf & slot
// (item kembali ke pool unplaced, record tidak dihapus).
func (s *PlacementStore) DetachShelf(ctx context.Context, shelfID uuid.UUID) error {
	return s.DB.WithContext(ctx).
		Model(&model.PlacementModel{}).
		Where("placement_shelf_id = ?", shelfID).
		Updates(map[string]any{
			"placement_shelf_id": nil,
			"placement_slot_id":  nil,
		}).Error
}
