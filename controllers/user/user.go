package userController

import (
	"log"
	"strconv"

	"studio/middleware"
	"studio/models"
	"studio/store"
	userValidator "studio/validators/user"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Users *store.UserStore
}

func New(users *store.UserStore) *Controller {
	return &Controller{Users: users}
}

// Create registers a user on first sign-in. Posting the same email again is
// a no-op that answers "User already exists".
func (ctrl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUser").(*userValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, err := ctrl.Users.FindByEmail(reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User already exists", nil)
	}

	user := models.User{
		Name:  reqData.Name,
		Email: reqData.Email,
		Photo: reqData.Photo,
	}

	if err := ctrl.Users.Create(&user); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User created successfully!", user)
}

// List returns all users. Admin only.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	users, err := ctrl.Users.All()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// Instructors returns every user holding the instructor role. Public.
func (ctrl *Controller) Instructors(c *fiber.Ctx) error {
	instructors, err := ctrl.Users.Instructors()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", instructors)
}

// AdminCheck reports whether the given email holds the admin role. When the
// requested email is not the caller's own, the answer is a flat false
// rather than an error.
func (ctrl *Controller) AdminCheck(c *fiber.Ctx) error {
	email := c.Params("email")

	if tokenEmail, _ := c.Locals("email").(string); tokenEmail != email {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin status fetched!", fiber.Map{
			"admin": false,
		})
	}

	user, err := ctrl.Users.FindByEmail(email)
	isAdmin := err == nil && user.Role == models.RoleAdmin

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin status fetched!", fiber.Map{
		"admin": isAdmin,
	})
}

// InstructorCheck mirrors AdminCheck for the instructor role.
func (ctrl *Controller) InstructorCheck(c *fiber.Ctx) error {
	email := c.Params("email")

	if tokenEmail, _ := c.Locals("email").(string); tokenEmail != email {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor status fetched!", fiber.Map{
			"instructor": false,
		})
	}

	user, err := ctrl.Users.FindByEmail(email)
	isInstructor := err == nil && user.Role == models.RoleInstructor

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor status fetched!", fiber.Map{
		"instructor": isInstructor,
	})
}

// PromoteAdmin sets a user's role to admin.
func (ctrl *Controller) PromoteAdmin(c *fiber.Ctx) error {
	return ctrl.promote(c, models.RoleAdmin)
}

// PromoteInstructor sets a user's role to instructor.
func (ctrl *Controller) PromoteInstructor(c *fiber.Ctx) error {
	return ctrl.promote(c, models.RoleInstructor)
}

func (ctrl *Controller) promote(c *fiber.Ctx, role string) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	matched, err := ctrl.Users.SetRole(uint(id), role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", fiber.Map{
		"matchedCount": matched,
	})
}

// Delete removes a user record.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	deleted, err := ctrl.Users.Delete(uint(id))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", fiber.Map{
		"deletedCount": deleted,
	})
}
