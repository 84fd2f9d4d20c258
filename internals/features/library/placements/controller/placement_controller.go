// file: internals/features/library/placements/controller/placement_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	itemSvc "rakku_backend/internals/features/library/items/service"
	pdto "rakku_backend/internals/features/library/placements/dto"
	placementSvc "rakku_backend/internals/features/library/placements/service"
	shelfDTO "rakku_backend/internals/features/library/shelves/dto"
	shelfSvc "rakku_backend/internals/features/library/shelves/service"
	helper "rakku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

// PlacementController: assign/remove item lewat ShelfService (satu-satunya
// jalur yang menjaga serialisasi per-shelf).
type PlacementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Shelves  *shelfSvc.ShelfService
}

func NewPlacementController(db *gorm.DB, v *validator.Validate, shelves *shelfSvc.ShelfService) *PlacementController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &PlacementController{DB: db, Validate: v, Shelves: shelves}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

func mapPlacementError(c *fiber.Ctx, err error, refs map[string]any) error {
	switch {
	case errors.Is(err, shelfSvc.ErrShelfNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "SHELF_NOT_FOUND", "Rak tidak ditemukan", refs)
	case errors.Is(err, shelfSvc.ErrSlotNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "SLOT_NOT_FOUND", "Slot tidak ditemukan di rak ini", refs)
	case errors.Is(err, itemSvc.ErrItemNotFound):
		return helper.JsonErrorCode(c, fiber.StatusNotFound, "ITEM_NOT_FOUND", "Item tidak ditemukan", refs)
	case errors.Is(err, placementSvc.ErrSlotOccupied):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "SLOT_OCCUPIED", "Slot sudah terisi item lain", refs)
	case errors.Is(err, placementSvc.ErrItemAlreadyPlaced):
		return helper.JsonErrorCode(c, fiber.StatusConflict, "ITEM_ALREADY_PLACED", "Item sudah ditempatkan di tempat lain; lepas dulu placement-nya", refs)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}

/* ============================ ASSIGN ============================ */

// Assign menempatkan item katalog ke satu slot.
// Idempoten untuk pasangan (item, slot) yang sama.
func (ctl *PlacementController) Assign(c *fiber.Ctx) error {
	shelfID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rak tidak valid")
	}
	slotID, err := uuid.Parse(c.Params("slot_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID slot tidak valid")
	}

	var req pdto.AssignItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	refs := map[string]any{"shelf_id": shelfID, "slot_id": slotID, "item_id": req.ItemID}

	v, err := ctl.Shelves.AssignItem(reqCtx(c), shelfID, slotID, req.ItemID)
	if err != nil {
		return mapPlacementError(c, err, refs)
	}
	return helper.JsonCreated(c, "Item ditempatkan", shelfDTO.ToPlacementWithItemResponse(*v))
}

/* ============================ REMOVE ============================ */

// Remove melepas placement sebuah item. Item tanpa placement = tetap 200
// (no-op, bukan error).
func (ctl *PlacementController) Remove(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID item tidak valid")
	}

	if err := ctl.Shelves.RemoveItem(reqCtx(c), itemID); err != nil {
		return mapPlacementError(c, err, map[string]any{"item_id": itemID})
	}
	return helper.JsonDeleted(c, "Placement dilepas", fiber.Map{"item_id": itemID})
}

/* ============================ UNPLACED POOL ============================ */

func (ctl *PlacementController) ListUnplaced(c *fiber.Ctx) error {
	rows, err := ctl.Shelves.ListUnplaced(reqCtx(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonList(c, "ok", shelfDTO.ToPlacementWithItemResponses(rows), nil)
}
