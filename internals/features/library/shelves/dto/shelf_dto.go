// file: internals/features/library/shelves/dto/shelf_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	itemDTO "rakku_backend/internals/features/library/items/dto"
	placementDTO "rakku_backend/internals/features/library/placements/dto"
	"rakku_backend/internals/features/library/shelves/model"
	"rakku_backend/internals/features/library/shelves/service"
)

/* =======================================================
   REQUESTS
   ======================================================= */

type CreateShelfRequest struct {
	ShelfName        string   `json:"shelf_name" validate:"required,max=200"`
	ShelfDescription *string  `json:"shelf_description" validate:"omitempty"`
	ShelfPhotoURL    *string  `json:"shelf_photo_url" validate:"omitempty,url"`
	ShelfLabels      []string `json:"shelf_labels" validate:"omitempty,dive,printascii"`
}

func (r CreateShelfRequest) LabelsJSON() (datatypes.JSON, error) {
	if len(r.ShelfLabels) == 0 {
		return datatypes.JSON([]byte("[]")), nil
	}
	b, err := json.Marshal(r.ShelfLabels)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

type UpdateShelfRequest struct {
	ShelfName        *string  `json:"shelf_name" validate:"omitempty,max=200"`
	ShelfDescription *string  `json:"shelf_description" validate:"omitempty"`
	ShelfPhotoURL    *string  `json:"shelf_photo_url" validate:"omitempty,url"`
	ShelfLabels      []string `json:"shelf_labels" validate:"omitempty,dive,printascii"`
}

func (r UpdateShelfRequest) ToPatch() (service.UpdateShelfPatch, error) {
	p := service.UpdateShelfPatch{
		Name:        r.ShelfName,
		Description: r.ShelfDescription,
		PhotoURL:    r.ShelfPhotoURL,
	}
	if r.ShelfLabels != nil {
		b, err := json.Marshal(r.ShelfLabels)
		if err != nil {
			return p, err
		}
		p.Labels = datatypes.JSON(b)
	}
	return p, nil
}

/* =======================================================
   RESPONSES
   ======================================================= */

type ShelfResponse struct {
	ShelfID          uuid.UUID      `json:"shelf_id"`
	ShelfName        string         `json:"shelf_name"`
	ShelfDescription *string        `json:"shelf_description,omitempty"`
	ShelfPhotoURL    *string        `json:"shelf_photo_url,omitempty"`
	ShelfLabels      datatypes.JSON `json:"shelf_labels"`

	ShelfCreatedAt time.Time `json:"shelf_created_at"`
	ShelfUpdatedAt time.Time `json:"shelf_updated_at"`
}

type ColumnResponse struct {
	ShelfColumnID     uuid.UUID `json:"shelf_column_id"`
	ShelfColumnIndex  int       `json:"shelf_column_index"`
	ShelfColumnXStart float64   `json:"shelf_column_x_start"`
	ShelfColumnXEnd   float64   `json:"shelf_column_x_end"`
}

type RowResponse struct {
	ShelfRowID     uuid.UUID        `json:"shelf_row_id"`
	ShelfRowIndex  int              `json:"shelf_row_index"`
	ShelfRowYStart float64          `json:"shelf_row_y_start"`
	ShelfRowYEnd   float64          `json:"shelf_row_y_end"`
	Columns        []ColumnResponse `json:"columns"`
}

type SlotResponse struct {
	ShelfSlotID       uuid.UUID `json:"shelf_slot_id"`
	ShelfSlotRowIndex int       `json:"shelf_slot_row_index"`
	ShelfSlotColIndex int       `json:"shelf_slot_col_index"`
	ShelfSlotXStart   float64   `json:"shelf_slot_x_start"`
	ShelfSlotXEnd     float64   `json:"shelf_slot_x_end"`
	ShelfSlotYStart   float64   `json:"shelf_slot_y_start"`
	ShelfSlotYEnd     float64   `json:"shelf_slot_y_end"`
}

// ShelfWithLayoutResponse: shelf + geometri + placement (dipisah placed/unplaced
// biar UI tidak perlu filter sendiri).
type ShelfWithLayoutResponse struct {
	Shelf      ShelfResponse                    `json:"shelf"`
	Rows       []RowResponse                    `json:"rows"`
	Slots      []SlotResponse                   `json:"slots"`
	Placements []placementDTO.PlacementResponse `json:"placements"`
	Unplaced   []placementDTO.PlacementResponse `json:"unplaced"`
}

type ShelfSummaryResponse struct {
	ShelfResponse
	ShelfSlotCount   int64 `json:"shelf_slot_count"`
	ShelfItemCount   int64 `json:"shelf_item_count"`
	ShelfPlacedCount int64 `json:"shelf_placed_count"`
}

type ReplaceLayoutResponse struct {
	Shelf     ShelfWithLayoutResponse                  `json:"shelf"`
	Displaced []placementDTO.PlacementWithItemResponse `json:"displaced"`
}

/* =======================================================
   MAPPERS
   ======================================================= */

func ToShelfResponse(m model.ShelfModel) ShelfResponse {
	return ShelfResponse{
		ShelfID:          m.ShelfID,
		ShelfName:        m.ShelfName,
		ShelfDescription: m.ShelfDescription,
		ShelfPhotoURL:    m.ShelfPhotoURL,
		ShelfLabels:      m.ShelfLabels,
		ShelfCreatedAt:   m.ShelfCreatedAt,
		ShelfUpdatedAt:   m.ShelfUpdatedAt,
	}
}

func ToRowResponse(m model.ShelfRowModel) RowResponse {
	cols := make([]ColumnResponse, 0, len(m.Columns))
	for _, c := range m.Columns {
		cols = append(cols, ColumnResponse{
			ShelfColumnID:     c.ShelfColumnID,
			ShelfColumnIndex:  c.ShelfColumnIndex,
			ShelfColumnXStart: c.ShelfColumnXStart,
			ShelfColumnXEnd:   c.ShelfColumnXEnd,
		})
	}
	return RowResponse{
		ShelfRowID:     m.ShelfRowID,
		ShelfRowIndex:  m.ShelfRowIndex,
		ShelfRowYStart: m.ShelfRowYStart,
		ShelfRowYEnd:   m.ShelfRowYEnd,
		Columns:        cols,
	}
}

func ToSlotResponse(m model.ShelfSlotModel) SlotResponse {
	return SlotResponse{
		ShelfSlotID:       m.ShelfSlotID,
		ShelfSlotRowIndex: m.ShelfSlotRowIndex,
		ShelfSlotColIndex: m.ShelfSlotColIndex,
		ShelfSlotXStart:   m.ShelfSlotXStart,
		ShelfSlotXEnd:     m.ShelfSlotXEnd,
		ShelfSlotYStart:   m.ShelfSlotYStart,
		ShelfSlotYEnd:     m.ShelfSlotYEnd,
	}
}

func ToShelfWithLayoutResponse(v service.ShelfWithLayout) ShelfWithLayoutResponse {
	rows := make([]RowResponse, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, ToRowResponse(r))
	}
	slots := make([]SlotResponse, 0, len(v.Slots))
	for _, s := range v.Slots {
		slots = append(slots, ToSlotResponse(s))
	}

	placed := []placementDTO.PlacementResponse{}
	unplaced := []placementDTO.PlacementResponse{}
	for _, p := range v.Placements {
		resp := placementDTO.ToPlacementResponse(p)
		if p.IsPlaced() {
			placed = append(placed, resp)
		} else {
			unplaced = append(unplaced, resp)
		}
	}

	return ShelfWithLayoutResponse{
		Shelf:      ToShelfResponse(v.Shelf),
		Rows:       rows,
		Slots:      slots,
		Placements: placed,
		Unplaced:   unplaced,
	}
}

func ToPlacementWithItemResponse(v service.PlacementWithItem) placementDTO.PlacementWithItemResponse {
	resp := placementDTO.PlacementWithItemResponse{
		PlacementResponse: placementDTO.ToPlacementResponse(v.Placement),
	}
	if v.Item != nil {
		ir := itemDTO.ToItemResponse(*v.Item)
		resp.Item = &ir
	}
	return resp
}

func ToPlacementWithItemResponses(vs []service.PlacementWithItem) []placementDTO.PlacementWithItemResponse {
	out := make([]placementDTO.PlacementWithItemResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, ToPlacementWithItemResponse(v))
	}
	return out
}

func ToShelfSummaryResponse(v service.ShelfSummary) ShelfSummaryResponse {
	return ShelfSummaryResponse{
		ShelfResponse:    ToShelfResponse(v.Shelf),
		ShelfSlotCount:   v.SlotCount,
		ShelfItemCount:   v.ItemCount,
		ShelfPlacedCount: v.PlacedCount,
	}
}
