package cartRoutes

import (
	"studio/config"
	cartController "studio/controllers/cart"
	"studio/middleware"
	cartValidator "studio/validators/cart"

	"github.com/gofiber/fiber/v2"
)

// SetupCartRoutes registers the cart routes. Add and remove are
// unauthenticated in the observed configuration; RequireOwnerForCartDelete
// puts the delete behind the token and an ownership check.
func SetupCartRoutes(app *fiber.App, ctrl *cartController.Controller) {
	cartGroup := app.Group("/carts")

	cartGroup.Get("/", middleware.Protected, ctrl.List)
	cartGroup.Post("/", cartValidator.AddItem(), ctrl.Add)

	if config.AppConfig.RequireOwnerForCartDelete {
		cartGroup.Delete("/:id", middleware.Protected, ctrl.Remove)
	} else {
		cartGroup.Delete("/:id", ctrl.Remove)
	}
}
