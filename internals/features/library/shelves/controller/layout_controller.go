// file: internals/features/library/shelves/controller/layout_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "rakku_backend/internals/features/library/shelves/dto"
	helper "rakku_backend/internals/helpers"
)

/* ============================ REPLACE LAYOUT ============================ */

// ReplaceLayout mengganti seluruh baris/kolom rak sekali jalan (PUT).
// Geometri tidak valid → 422 + reason, state lama utuh.
// Sukses → rak segar + daftar placement yang ter-displace (buat UI minta
// penempatan ulang manual).
func (ctl *ShelfController) ReplaceLayout(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.ReplaceLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	layout, displaced, err := ctl.Service.ReplaceLayout(reqCtx(c), id, req.ToGeometry())
	if err != nil {
		return mapServiceError(c, err, map[string]any{"shelf_id": id})
	}

	return helper.JsonUpdated(c, "Layout diganti", dto.ReplaceLayoutResponse{
		Shelf:     dto.ToShelfWithLayoutResponse(*layout),
		Displaced: dto.ToPlacementWithItemResponses(displaced),
	})
}
