// file: internals/features/library/items/route/item_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	itemCtl "rakku_backend/internals/features/library/items/controller"
)

// ItemRoutes — katalog minimal (create/get/list).
func ItemRoutes(api fiber.Router, db *gorm.DB) {
	ctl := itemCtl.NewItemController(db, nil)

	g := api.Group("/items")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
