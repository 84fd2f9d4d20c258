// file: internals/features/library/placements/dto/placement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	itemDTO "rakku_backend/internals/features/library/items/dto"
	"rakku_backend/internals/features/library/placements/model"
)

/* =======================================================
   REQUESTS
   ======================================================= */

type AssignItemRequest struct {
	ItemID uuid.UUID `json:"item_id" validate:"required"`
}

/* =======================================================
   RESPONSES
   ======================================================= */

type PlacementResponse struct {
	PlacementID       uuid.UUID  `json:"placement_id"`
	PlacementItemID   uuid.UUID  `json:"placement_item_id"`
	PlacementShelfID  *uuid.UUID `json:"placement_shelf_id,omitempty"`
	PlacementSlotID   *uuid.UUID `json:"placement_slot_id,omitempty"`
	PlacementIsPlaced bool       `json:"placement_is_placed"`

	PlacementCreatedAt time.Time `json:"placement_created_at"`
	PlacementUpdatedAt time.Time `json:"placement_updated_at"`
}

type PlacementWithItemResponse struct {
	PlacementResponse
	Item *itemDTO.ItemResponse `json:"item,omitempty"`
}

func ToPlacementResponse(m model.PlacementModel) PlacementResponse {
	return PlacementResponse{
		PlacementID:        m.PlacementID,
		PlacementItemID:    m.PlacementItemID,
		PlacementShelfID:   m.PlacementShelfID,
		PlacementSlotID:    m.PlacementSlotID,
		PlacementIsPlaced:  m.IsPlaced(),
		PlacementCreatedAt: m.PlacementCreatedAt,
		PlacementUpdatedAt: m.PlacementUpdatedAt,
	}
}

func ToPlacementResponses(ms []model.PlacementModel) []PlacementResponse {
	out := make([]PlacementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPlacementResponse(m))
	}
	return out
}
