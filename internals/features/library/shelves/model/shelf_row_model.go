// file: internals/features/library/shelves/model/shelf_row_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShelfRowModel merepresentasikan tabel shelf_rows.
// Bounds y ternormalisasi [0,1]; index padat 0..N-1 per shelf.
// Baris TIDAK pernah dipatch parsial — selalu diganti utuh lewat replace layout.
type ShelfRowModel struct {
	ShelfRowID      uuid.UUID `json:"shelf_row_id" gorm:"type:uuid;primaryKey;column:shelf_row_id"`
	ShelfRowShelfID uuid.UUID `json:"shelf_row_shelf_id" gorm:"type:uuid;not null;column:shelf_row_shelf_id;uniqueIndex:uq_shelf_rows_shelf_index"`

	ShelfRowIndex  int     `json:"shelf_row_index" gorm:"not null;column:shelf_row_index;uniqueIndex:uq_shelf_rows_shelf_index"`
	ShelfRowYStart float64 `json:"shelf_row_y_start" gorm:"not null;column:shelf_row_y_start"`
	ShelfRowYEnd   float64 `json:"shelf_row_y_end" gorm:"not null;column:shelf_row_y_end"`

	ShelfRowCreatedAt time.Time `json:"shelf_row_created_at" gorm:"column:shelf_row_created_at;autoCreateTime"`

	Columns []ShelfColumnModel `json:"columns,omitempty" gorm:"foreignKey:ShelfColumnRowID;references:ShelfRowID"`
}

func (ShelfRowModel) TableName() string { return "shelf_rows" }

func (m *ShelfRowModel) BeforeCreate(tx *gorm.DB) error {
	if m.ShelfRowID == uuid.Nil {
		m.ShelfRowID = uuid.New()
	}
	return nil
}
