// file: internals/features/library/shelves/controller/shelf_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	itemSvc "rakku_backend/internals/features/library/items/service"
	placementSvc "rakku_backend/internals/features/library/placements/service"
	dto "rakku_backend/internals/features/library/shelves/dto"
	"rakku_backend/internals/features/library/shelves/geometry"
	svc "rakku_backend/internals/features/library/shelves/service"
	helper "rakku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type ShelfController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *svc.ShelfService
}

func NewShelfController(db *gorm.DB, v *validator.Validate, service *svc.ShelfService) *ShelfController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ShelfController{DB: db, Validate: v, Service: service}
}

// ambil context standar (kalau Fiber mendukung UserContext)
func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* =======================================================
   ERROR MAPPING (service error → HTTP)
   ======================================================= */

func mapServiceError(c *fiber.Ctx, err error, refs map[string]any) error {
	switch {
	case errors.Is(err, svc.ErrShelfNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "SHELF_NOT_FOUND", "Rak tidak ditemukan", refs)
	case errors.Is(err, svc.ErrSlotNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "SLOT_NOT_FOUND", "Slot tidak ditemukan di rak ini", refs)
	case errors.Is(err, itemSvc.ErrItemNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "ITEM_NOT_FOUND", "Item tidak ditemukan", refs)
	case errors.Is(err, placementSvc.ErrSlotOccupied):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "SLOT_OCCUPIED", "Slot sudah terisi item lain", refs)
	case errors.Is(err, placementSvc.ErrItemAlreadyPlaced):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "ITEM_ALREADY_PLACED", "Item sudah ditempatkan di tempat lain; lepas dulu placement-nya", refs)
	case errors.Is(err, geometry.ErrInvalidGeometry):
		code := "INVALID_GEOMETRY"
		if r := geometry.ReasonOf(err); r != "" {
			refs = withRef(refs, "reason", r)
		}
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, code, err.Error(), refs)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return helper.JsonError(c, fiber.StatusRequestTimeout, "Permintaan dibatalkan")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}

func withRef(refs map[string]any, k string, v any) map[string]any {
	if refs == nil {
		refs = map[string]any{}
	}
	refs[k] = v
	return refs
}

/* ============================ CREATE ============================ */

func (ctl *ShelfController) Create(c *fiber.Ctx) error {
	var req dto.CreateShelfRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	labels, err := req.LabelsJSON()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Label tidak valid")
	}

	m, err := ctl.Service.CreateShelf(reqCtx(c), req.ShelfName, req.ShelfDescription, req.ShelfPhotoURL, labels)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonCreated(c, "Rak dibuat", dto.ToShelfResponse(*m))
}

/* ============================ LIST ============================ */

func (ctl *ShelfController) List(c *fiber.Ctx) error {
	summaries, err := ctl.Service.ListShelves(reqCtx(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	out := make([]dto.ShelfSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.ToShelfSummaryResponse(s))
	}
	return helper.JsonList(c, "ok", out, nil)
}

/* ============================ DETAIL ============================ */

func (ctl *ShelfController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	v, err := ctl.Service.GetShelf(reqCtx(c), id)
	if err != nil {
		return mapServiceError(c, err, map[string]any{"shelf_id": id})
	}
	return helper.JsonOK(c, "ok", dto.ToShelfWithLayoutResponse(*v))
}

/* ============================ UPDATE ============================ */

func (ctl *ShelfController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateShelfRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	patch, err := req.ToPatch()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Label tidak valid")
	}

	m, err := ctl.Service.UpdateShelf(reqCtx(c), id, patch)
	if err != nil {
		return mapServiceError(c, err, map[string]any{"shelf_id": id})
	}
	return helper.JsonUpdated(c, "Rak diperbarui", dto.ToShelfResponse(*m))
}

/* ============================ DELETE ============================ */

// Delete: soft delete rak; item yang menempel balik ke pool unplaced.
func (ctl *ShelfController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctl.Service.DeleteShelf(reqCtx(c), id); err != nil {
		return mapServiceError(c, err, map[string]any{"shelf_id": id})
	}
	return helper.JsonDeleted(c, "Rak dihapus", fiber.Map{"shelf_id": id})
}
