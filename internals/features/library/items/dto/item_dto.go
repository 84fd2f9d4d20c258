// file: internals/features/library/items/dto/item_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"rakku_backend/internals/features/library/items/model"
)

/* =======================================================
   REQUESTS
   ======================================================= */

type CreateItemRequest struct {
	ItemName     string  `json:"item_name" validate:"required,max=300"`
	ItemCode     *string `json:"item_code" validate:"omitempty,max=120"`
	ItemNotes    *string `json:"item_notes" validate:"omitempty"`
	ItemImageURL *string `json:"item_image_url" validate:"omitempty,url"`
}

func (r CreateItemRequest) ToModel() model.ItemModel {
	return model.ItemModel{
		ItemName:     r.ItemName,
		ItemCode:     r.ItemCode,
		ItemNotes:    r.ItemNotes,
		ItemImageURL: r.ItemImageURL,
	}
}

/* =======================================================
   RESPONSES
   ======================================================= */

type ItemResponse struct {
	ItemID       uuid.UUID `json:"item_id"`
	ItemName     string    `json:"item_name"`
	ItemCode     *string   `json:"item_code,omitempty"`
	ItemNotes    *string   `json:"item_notes,omitempty"`
	ItemImageURL *string   `json:"item_image_url,omitempty"`

	ItemCreatedAt time.Time `json:"item_created_at"`
	ItemUpdatedAt time.Time `json:"item_updated_at"`
}

func ToItemResponse(m model.ItemModel) ItemResponse {
	return ItemResponse{
		ItemID:        m.ItemID,
		ItemName:      m.ItemName,
		ItemCode:      m.ItemCode,
		ItemNotes:     m.ItemNotes,
		ItemImageURL:  m.ItemImageURL,
		ItemCreatedAt: m.ItemCreatedAt,
		ItemUpdatedAt: m.ItemUpdatedAt,
	}
}

func ToItemResponses(ms []model.ItemModel) []ItemResponse {
	out := make([]ItemResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToItemResponse(m))
	}
	return out
}
