// file: internals/features/library/shelves/model/shelf_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShelfModel merepresentasikan tabel shelves (satu unit rak fisik).
type ShelfModel struct {
	ShelfID uuid.UUID `json:"shelf_id" gorm:"type:uuid;primaryKey;column:shelf_id"`

	ShelfName        string  `json:"shelf_name" gorm:"type:text;not null;column:shelf_name"`
	ShelfDescription *string `json:"shelf_description,omitempty" gorm:"type:text;column:shelf_description"`

	// Referensi foto (opaque; penyimpanan foto di luar scope service ini)
	ShelfPhotoURL *string `json:"shelf_photo_url,omitempty" gorm:"type:text;column:shelf_photo_url"`

	// Label bebas utk UI (JSONB)
	ShelfLabels datatypes.JSON `json:"shelf_labels" gorm:"type:jsonb;not null;default:'[]';column:shelf_labels"`

	ShelfCreatedAt time.Time      `json:"shelf_created_at" gorm:"column:shelf_created_at;autoCreateTime"`
	ShelfUpdatedAt time.Time      `json:"shelf_updated_at" gorm:"column:shelf_updated_at;autoUpdateTime"`
	ShelfDeletedAt gorm.DeletedAt `json:"shelf_deleted_at,omitempty" gorm:"column:shelf_deleted_at;index"`
}

func (ShelfModel) TableName() string { return "shelves" }

func (m *ShelfModel) BeforeCreate(tx *gorm.DB) error {
	if m.ShelfID == uuid.Nil {
		m.ShelfID = uuid.New()
	}
	if len(m.ShelfLabels) == 0 {
		m.ShelfLabels = datatypes.JSON([]byte("[]"))
	}
	return nil
}
