// file: internals/features/library/items/service/item_lookup.go
//
// Kolaborator katalog item. Core rak hanya mengonsumsi dua kontrak ini:
// ItemByID dan ItemExists — penyimpanan/pencarian/import item sepenuhnya
// urusan fitur items sendiri.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rakku_backend/internals/features/library/items/model"
)

// ErrItemNotFound dipropagasi apa adanya ke caller (tidak dibungkus ulang).
var ErrItemNotFound = errors.New("item: tidak ditemukan")

// Lookup kontrak yang dilihat service rak.
type Lookup interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*model.ItemModel, error)
	ItemExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ItemLookup struct {
	DB *gorm.DB
}

func NewItemLookup(db *gorm.DB) *ItemLookup {
	return &ItemLookup{DB: db}
}

func (s *ItemLookup) ItemByID(ctx context.Context, id uuid.UUID) (*model.ItemModel, error) {
	var m model.ItemModel
	err := s.DB.WithContext(ctx).First(&m, "item_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *ItemLookup) ItemExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("item_id = ?", id).
		Count(&n).Error
	return n > 0, err
}
