// file: internals/features/library/shelves/model/shelf_slot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rakku_backend/internals/features/library/shelves/geometry"
)

// ShelfSlotModel merepresentasikan tabel shelf_slots.
// Slot = turunan (row x column), tidak pernah diedit langsung; dipersist
// supaya placement punya id slot yang stabil di antara dua edit layout.
type ShelfSlotModel struct {
	ShelfSlotID      uuid.UUID `json:"shelf_slot_id" gorm:"type:uuid;primaryKey;column:shelf_slot_id"`
	ShelfSlotShelfID uuid.UUID `json:"shelf_slot_shelf_id" gorm:"type:uuid;not null;column:shelf_slot_shelf_id;uniqueIndex:uq_shelf_slots_shelf_cell"`

	ShelfSlotRowIndex int `json:"shelf_slot_row_index" gorm:"not null;column:shelf_slot_row_index;uniqueIndex:uq_shelf_slots_shelf_cell"`
	ShelfSlotColIndex int `json:"shelf_slot_col_index" gorm:"not null;column:shelf_slot_col_index;uniqueIndex:uq_shelf_slots_shelf_cell"`

	ShelfSlotXStart float64 `json:"shelf_slot_x_start" gorm:"not null;column:shelf_slot_x_start"`
	ShelfSlotXEnd   float64 `json:"shelf_slot_x_end" gorm:"not null;column:shelf_slot_x_end"`
	ShelfSlotYStart float64 `json:"shelf_slot_y_start" gorm:"not null;column:shelf_slot_y_start"`
	ShelfSlotYEnd   float64 `json:"shelf_slot_y_end" gorm:"not null;column:shelf_slot_y_end"`

	ShelfSlotCreatedAt time.Time `json:"shelf_slot_created_at" gorm:"column:shelf_slot_created_at;autoCreateTime"`
}

func (ShelfSlotModel) TableName() string { return "shelf_slots" }

func (m *ShelfSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.ShelfSlotID == uuid.Nil {
		m.ShelfSlotID = uuid.New()
	}
	return nil
}

// Cell identitas logis slot ini.
func (m *ShelfSlotModel) Cell() geometry.CellKey {
	return geometry.CellKey{Row: m.ShelfSlotRowIndex, Col: m.ShelfSlotColIndex}
}

// AsGeometry konversi ke bentuk pure utk BuildSlots/Reconcile.
func (m *ShelfSlotModel) AsGeometry() geometry.Slot {
	return geometry.Slot{
		RowIndex: m.ShelfSlotRowIndex,
		ColIndex: m.ShelfSlotColIndex,
		XStart:   m.ShelfSlotXStart,
		XEnd:     m.ShelfSlotXEnd,
		YStart:   m.ShelfSlotYStart,
		YEnd:     m.ShelfSlotYEnd,
	}
}
