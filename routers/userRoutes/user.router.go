package userRoutes

import (
	"studio/config"
	userController "studio/controllers/user"
	"studio/middleware"
	"studio/store"
	userValidator "studio/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers the user management routes. The promotion
// endpoints are open in the observed configuration; the
// RequireAdminForPromotion toggle puts them behind the admin gate.
func SetupUserRoutes(app *fiber.App, ctrl *userController.Controller, users *store.UserStore) {
	userGroup := app.Group("/users")

	userGroup.Get("/", middleware.Protected, middleware.RequireAdmin(users), ctrl.List)
	userGroup.Get("/instructor", ctrl.Instructors)
	userGroup.Get("/admin/:email", middleware.Protected, ctrl.AdminCheck)
	userGroup.Get("/instructor/:email", middleware.Protected, ctrl.InstructorCheck)

	if config.AppConfig.RequireAdminForPromotion {
		userGroup.Patch("/admin/:id", middleware.Protected, middleware.RequireAdmin(users), ctrl.PromoteAdmin)
		userGroup.Patch("/instructor/:id", middleware.Protected, middleware.RequireAdmin(users), ctrl.PromoteInstructor)
	} else {
		userGroup.Patch("/admin/:id", ctrl.PromoteAdmin)
		userGroup.Patch("/instructor/:id", ctrl.PromoteInstructor)
	}

	userGroup.Post("/", userValidator.CreateUser(), ctrl.Create)
	userGroup.Delete("/:id", middleware.Protected, ctrl.Delete)
}
