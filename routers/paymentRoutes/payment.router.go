package paymentRoutes

import (
	paymentController "studio/controllers/payment"
	"studio/middleware"
	paymentValidator "studio/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App, ctrl *paymentController.Controller) {
	app.Post("/create-payment-intent", middleware.Protected, paymentValidator.CreateIntent(), ctrl.CreateIntent)
	app.Post("/payments", middleware.Protected, paymentValidator.Finalize(), ctrl.Finalize)
	app.Get("/enrolled", middleware.Protected, ctrl.History)
}
