package courseValidator

import (
	"studio/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CourseDraft is an instructor's submission. Any status field in the body is
// ignored; submissions always enter the moderation queue as pending.
type CourseDraft struct {
	Title           string  `json:"name" validate:"required,min=3"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName" validate:"required"`
	InstructorEmail string  `json:"instructorEmail" validate:"required,email"`
	Price           float64 `json:"price" validate:"gte=0"`
	Seats           int     `json:"seats" validate:"gte=0"`
	Status          string  `json:"status"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

func SubmitCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseDraft)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// SetStatus only checks the status is present. The value itself is written
// verbatim, recognized or not.
func SetStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusUpdate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
