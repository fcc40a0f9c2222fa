package authRoutes

import (
	authController "studio/controllers/auth"
	authValidator "studio/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authValidator.IssueToken(), authController.IssueToken)
}
