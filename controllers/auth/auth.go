package authController

import (
	"log"

	"studio/middleware"
	authValidator "studio/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// IssueToken signs a session token for the identity the frontend posts
// after sign-in. The identity provider has already checked credentials.
func IssueToken(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedToken").(*authValidator.TokenRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token issued successfully!", fiber.Map{
		"token": token,
	})
}
