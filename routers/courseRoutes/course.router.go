package courseRoutes

import (
	courseController "studio/controllers/course"
	"studio/middleware"
	"studio/store"
	courseValidator "studio/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App, ctrl *courseController.Controller, users *store.UserStore) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", ctrl.Published)
	courseGroup.Get("/instructor", ctrl.ByInstructor)
	courseGroup.Get("/pending", middleware.Protected, middleware.RequireAdmin(users), ctrl.Pending)
	courseGroup.Get("/approved", ctrl.Approved)

	// Moderation action; no guard in the observed configuration
	courseGroup.Patch("/admin/:id", courseValidator.SetStatus(), ctrl.SetStatus)

	// Submission keeps the original singular path
	app.Post("/course", middleware.Protected, middleware.RequireInstructor(users), courseValidator.SubmitCourse(), ctrl.Submit)
}
