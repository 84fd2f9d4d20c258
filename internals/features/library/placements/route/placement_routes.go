// file: internals/features/library/placements/route/placement_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	placementCtl "rakku_backend/internals/features/library/placements/controller"
	shelfSvc "rakku_backend/internals/features/library/shelves/service"
)

// PlacementRoutes — assign/remove item + pool unplaced.
func PlacementRoutes(api fiber.Router, db *gorm.DB, shelves *shelfSvc.ShelfService) {
	ctl := placementCtl.NewPlacementController(db, nil, shelves)

	// nested di shelf: penempatan ke slot
	api.Post("/shelves/:id/slots/:slot_id/items", ctl.Assign)

	g := api.Group("/placements")
	g.Delete("/items/:item_id", ctl.Remove)
	g.Get("/unplaced", ctl.ListUnplaced)
}
