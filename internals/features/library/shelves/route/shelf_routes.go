// file: internals/features/library/shelves/route/shelf_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	shelfCtl "rakku_backend/internals/features/library/shelves/controller"
	shelfSvc "rakku_backend/internals/features/library/shelves/service"
	"rakku_backend/internals/middlewares"
)

// ShelfRoutes — CRUD rak + replace layout.
// Service di-inject dari caller supaya keyed-lock per-shelf dibagi dengan
// route placement (satu instance untuk seluruh app).
func ShelfRoutes(api fiber.Router, db *gorm.DB, service *shelfSvc.ShelfService) {
	ctl := shelfCtl.NewShelfController(db, nil, service) // validator nil → default

	g := api.Group("/shelves")

	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	// Satu-satunya pintu masuk rekonsiliasi; limiter khusus karena operasi
	// ini menulis ulang seluruh geometri
	g.Put("/:id/layout", middlewares.LayoutRateLimiter(), ctl.ReplaceLayout)
}
