package cartValidator

import (
	"studio/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AddItemRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	CourseID   uint    `json:"courseId" validate:"required"`
	CourseName string  `json:"courseName"`
	Image      string  `json:"image"`
	Price      float64 `json:"price" validate:"gte=0"`
}

func AddItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddItemRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}
