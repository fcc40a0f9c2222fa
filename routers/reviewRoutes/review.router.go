package reviewRoutes

import (
	newsletterController "studio/controllers/newsletter"
	reviewController "studio/controllers/review"
	"studio/middleware"
	newsletterValidator "studio/validators/newsletter"
	reviewValidator "studio/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, reviews *reviewController.Controller, newsletter *newsletterController.Controller) {
	app.Get("/reviews", reviews.List)
	app.Post("/reviews", middleware.Protected, reviewValidator.SubmitReview(), reviews.Submit)

	app.Post("/subscribe-email", newsletterValidator.Subscribe(), newsletter.Subscribe)
}
