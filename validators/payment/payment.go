package paymentValidator

import (
	"studio/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type IntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// FinalizeRequest is the post-payment payload. CourseIDs is the purchased
// list: it addresses cart lines for deletion and its first entry addresses
// the catalog for the seat update.
type FinalizeRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Price         float64  `json:"price" validate:"gte=0"`
	TransactionID string   `json:"transactionId" validate:"required"`
	CourseIDs     []uint   `json:"course" validate:"required,min=1"`
	CourseNames   []string `json:"courseNames"`
	Quantity      int      `json:"quantity"`
}

func CreateIntent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IntentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}

func Finalize() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(FinalizeRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
