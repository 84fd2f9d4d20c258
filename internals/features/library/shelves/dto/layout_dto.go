// file: internals/features/library/shelves/dto/layout_dto.go
package dto

import (
	"rakku_backend/internals/features/library/shelves/geometry"
)

/* =======================================================
   REPLACE LAYOUT
   ======================================================= */

// Field angka pakai pointer + required supaya nilai 0 tetap lolos "required"
// (0 adalah index & koordinat yang sah).

type LayoutColumnRequest struct {
	ColIndex *int     `json:"col_index" validate:"required,min=0"`
	XStart   *float64 `json:"x_start" validate:"required,min=0,max=1"`
	XEnd     *float64 `json:"x_end" validate:"required,min=0,max=1"`
}

type LayoutRowRequest struct {
	RowIndex *int                  `json:"row_index" validate:"required,min=0"`
	YStart   *float64              `json:"y_start" validate:"required,min=0,max=1"`
	YEnd     *float64              `json:"y_end" validate:"required,min=0,max=1"`
	Columns  []LayoutColumnRequest `json:"columns" validate:"dive"`
}

// ReplaceLayoutRequest mengganti SELURUH geometri shelf sekali jalan.
// rows boleh kosong (= rak tanpa grid; semua placement ter-displace).
type ReplaceLayoutRequest struct {
	Rows []LayoutRowRequest `json:"rows" validate:"dive"`
}

// ToGeometry konversi ke input pure utk BuildSlots. Validasi struktural
// (required/min/max) sudah lewat validator; validasi semantik (overlap,
// index padat, start<end) urusan package geometry.
func (r ReplaceLayoutRequest) ToGeometry() []geometry.RowInput {
	rows := make([]geometry.RowInput, 0, len(r.Rows))
	for _, rr := range r.Rows {
		row := geometry.RowInput{
			RowIndex: *rr.RowIndex,
			YStart:   *rr.YStart,
			YEnd:     *rr.YEnd,
			Columns:  make([]geometry.ColumnInput, 0, len(rr.Columns)),
		}
		for _, cc := range rr.Columns {
			row.Columns = append(row.Columns, geometry.ColumnInput{
				ColIndex: *cc.ColIndex,
				XStart:   *cc.XStart,
				XEnd:     *cc.XEnd,
			})
		}
		rows = append(rows, row)
	}
	return rows
}
