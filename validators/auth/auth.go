package authValidator

import (
	"studio/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// TokenRequest is the identity payload posted by the frontend after
// sign-in. Credentials live at the identity provider; this service only
// signs what it is given.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

func IssueToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TokenRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.FieldErrors(err))
		}

		c.Locals("validatedToken", reqData)
		return c.Next()
	}
}
