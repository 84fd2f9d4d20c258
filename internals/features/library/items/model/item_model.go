// file: internals/features/library/items/model/item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemModel merepresentasikan tabel items (katalog koleksi).
// Service rak hanya butuh lookup by id + cek eksistensi; pencarian, import
// CSV, dan deteksi duplikat sengaja tidak ada di service ini.
type ItemModel struct {
	ItemID uuid.UUID `json:"item_id" gorm:"type:uuid;primaryKey;column:item_id"`

	ItemName     string  `json:"item_name" gorm:"type:text;not null;column:item_name"`
	ItemCode     *string `json:"item_code,omitempty" gorm:"type:text;column:item_code"`
	ItemNotes    *string `json:"item_notes,omitempty" gorm:"type:text;column:item_notes"`
	ItemImageURL *string `json:"item_image_url,omitempty" gorm:"type:text;column:item_image_url"`

	ItemCreatedAt time.Time      `json:"item_created_at" gorm:"column:item_created_at;autoCreateTime"`
	ItemUpdatedAt time.Time      `json:"item_updated_at" gorm:"column:item_updated_at;autoUpdateTime"`
	ItemDeletedAt gorm.DeletedAt `json:"item_deleted_at,omitempty" gorm:"column:item_deleted_at;index"`
}

func (ItemModel) TableName() string { return "items" }

func (m *ItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.ItemID == uuid.Nil {
		m.ItemID = uuid.New()
	}
	return nil
}
