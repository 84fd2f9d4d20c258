// file: internals/features/library/shelves/model/shelf_column_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShelfColumnModel merepresentasikan tabel shelf_columns.
// Kolom milik satu baris; bounds x ternormalisasi [0,1], index padat per baris.
// ShelfColumnShelfID denormalisasi supaya cascade per shelf cukup satu WHERE.
type ShelfColumnModel struct {
	ShelfColumnID      uuid.UUID `json:"shelf_column_id" gorm:"type:uuid;primaryKey;column:shelf_column_id"`
	ShelfColumnRowID   uuid.UUID `json:"shelf_column_row_id" gorm:"type:uuid;not null;column:shelf_column_row_id;uniqueIndex:uq_shelf_columns_row_index"`
	ShelfColumnShelfID uuid.UUID `json:"shelf_column_shelf_id" gorm:"type:uuid;not null;index;column:shelf_column_shelf_id"`

	ShelfColumnIndex  int     `json:"shelf_column_index" gorm:"not null;column:shelf_column_index;uniqueIndex:uq_shelf_columns_row_index"`
	ShelfColumnXStart float64 `json:"shelf_column_x_start" gorm:"not null;column:shelf_column_x_start"`
	ShelfColumnXEnd   float64 `json:"shelf_column_x_end" gorm:"not null;column:shelf_column_x_end"`

	ShelfColumnCreatedAt time.Time `json:"shelf_column_created_at" gorm:"column:shelf_column_created_at;autoCreateTime"`
}

func (ShelfColumnModel) TableName() string { return "shelf_columns" }

func (m *ShelfColumnModel) BeforeCreate(tx *gorm.DB) error {
	if m.ShelfColumnID == uuid.Nil {
		m.ShelfColumnID = uuid.New()
	}
	return nil
}
