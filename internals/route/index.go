// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	itemRoute "rakku_backend/internals/features/library/items/route"
	itemSvc "rakku_backend/internals/features/library/items/service"
	placementRoute "rakku_backend/internals/features/library/placements/route"
	placementSvc "rakku_backend/internals/features/library/placements/service"
	shelfRoute "rakku_backend/internals/features/library/shelves/route"
	shelfSvc "rakku_backend/internals/features/library/shelves/service"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Satu instance service untuk seluruh app — keyed-lock per-shelf harus
	// dibagi antara route layout dan route placement.
	items := itemSvc.NewItemLookup(db)
	placements := placementSvc.NewPlacementStore(db)
	shelves := shelfSvc.NewShelfService(db, items, placements)

	api := app.Group("/api")

	log.Println("[INFO] Setting up ShelfRoutes...")
	shelfRoute.ShelfRoutes(api, db, shelves)

	log.Println("[INFO] Setting up PlacementRoutes...")
	placementRoute.PlacementRoutes(api, db, shelves)

	log.Println("[INFO] Setting up ItemRoutes...")
	itemRoute.ItemRoutes(api, db)
}
