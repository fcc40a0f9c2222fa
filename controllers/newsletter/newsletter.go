package newsletterController

import (
	"log"

	"studio/middleware"
	"studio/utils"
	newsletterValidator "studio/validators/newsletter"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Mailer utils.Mailer
}

func New(mailer utils.Mailer) *Controller {
	return &Controller{Mailer: mailer}
}

// Subscribe sends the fixed thank-you note and reports the outcome to the
// caller. No retry, no queueing.
func (ctrl *Controller) Subscribe(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubscribe").(*newsletterValidator.SubscribeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Mailer.SendThankYou(reqData.Email); err != nil {
		log.Printf("Email sending failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send thank you email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription successful", nil)
}
