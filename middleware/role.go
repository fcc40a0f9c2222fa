package middleware

import (
	"studio/models"
	"studio/store"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin returns a middleware that looks up the caller's user record
// and denies the request unless its stored role is exactly "admin". It must
// run after Protected, which puts the verified email in Locals.
func RequireAdmin(users *store.UserStore) fiber.Handler {
	return requireRole(users, models.RoleAdmin)
}

// RequireInstructor denies the request unless the stored role is exactly
// "instructor".
func RequireInstructor(users *store.UserStore) fiber.Handler {
	return requireRole(users, models.RoleInstructor)
}

func requireRole(users *store.UserStore, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "unauthorized access", nil)
		}

		user, err := users.FindByEmail(email)
		if err != nil || user.Role != role {
			// Absent record and role mismatch are both a plain 403
			return JsonResponse(c, fiber.StatusForbidden, false, "forbidden message", nil)
		}

		return c.Next()
	}
}
