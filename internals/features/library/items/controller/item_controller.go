// file: internals/features/library/items/controller/item_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "rakku_backend/internals/features/library/items/dto"
	"rakku_backend/internals/features/library/items/model"
	helper "rakku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

// ItemController: surface minimal katalog (create/get/list).
// Pencarian, import CSV, dan deteksi duplikat sengaja TIDAK ada di sini.
type ItemController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewItemController(db *gorm.DB, v *validator.Validate) *ItemController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	return &ItemController{DB: db, Validate: v}
}

func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

/* ============================ CREATE ============================ */

func (ctl *ItemController) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validasi gagal: "+err.Error())
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(reqCtx(c)).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode item sudah digunakan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data")
	}
	return helper.JsonCreated(c, "Item dibuat", dto.ToItemResponse(m))
}

/* ============================ DETAIL ============================ */

func (ctl *ItemController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.ItemModel
	if err := ctl.DB.WithContext(reqCtx(c)).First(&m, "item_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound, "ITEM_NOT_FOUND", "Item tidak ditemukan", map[string]any{"item_id": id})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return helper.JsonOK(c, "ok", dto.ToItemResponse(m))
}

/* ============================ LIST ============================ */

func (ctl *ItemController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.WithContext(reqCtx(c)).
		Model(&model.ItemModel{}).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	var rows []model.ItemModel
	if err := ctl.DB.WithContext(reqCtx(c)).
		Order("item_created_at ASC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(rows)
	return helper.JsonList(c, "ok", dto.ToItemResponses(rows), &pagination)
}
