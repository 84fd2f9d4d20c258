// file: internals/features/library/placements/model/placement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlacementModel merepresentasikan tabel placements.
//
// Satu tabel kanonik untuk SELURUH sistem, unik per item — ini yang menjamin
// invariant "satu item maksimal satu placement di mana pun" tanpa race window
// saat item pindah antar rak.
//
// ShelfID nullable: shelf dihapus → item balik ke pool unplaced, record tetap.
// SlotID nullable: placement tanpa slot = "unplaced" (menunggu penempatan manual).
type PlacementModel struct {
	PlacementID uuid.UUID `json:"placement_id" gorm:"type:uuid;primaryKey;column:placement_id"`

	PlacementItemID  uuid.UUID  `json:"placement_item_id" gorm:"type:uuid;not null;uniqueIndex:uq_placements_item;column:placement_item_id"`
	PlacementShelfID *uuid.UUID `json:"placement_shelf_id,omitempty" gorm:"type:uuid;index;column:placement_shelf_id"`
	PlacementSlotID  *uuid.UUID `json:"placement_slot_id,omitempty" gorm:"type:uuid;uniqueIndex:uq_placements_slot;column:placement_slot_id"`

	PlacementCreatedAt time.Time `json:"placement_created_at" gorm:"column:placement_created_at;autoCreateTime"`
	PlacementUpdatedAt time.Time `json:"placement_updated_at" gorm:"column:placement_updated_at;autoUpdateTime"`
}

func (PlacementModel) TableName() string { return "placements" }

func (m *PlacementModel) BeforeCreate(tx *gorm.DB) error {
	if m.PlacementID == uuid.Nil {
		m.PlacementID = uuid.New()
	}
	return nil
}

// IsPlaced: punya slot aktif.
func (m *PlacementModel) IsPlaced() bool { return m.PlacementSlotID != nil }
