package cartController

import (
	"strconv"

	"studio/config"
	"studio/middleware"
	"studio/models"
	"studio/store"
	cartValidator "studio/validators/cart"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Carts *store.CartStore
}

func New(carts *store.CartStore) *Controller {
	return &Controller{Carts: carts}
}

// List returns the caller's cart lines. An empty email query answers an
// empty list; a mismatch with the token identity is forbidden.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", []models.CartItem{})
	}

	tokenEmail, _ := c.Locals("email").(string)
	if email != tokenEmail {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "forbidden access", nil)
	}

	items, err := ctrl.Carts.ForEmail(email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", items)
}

// Add inserts a cart line.
func (ctrl *Controller) Add(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCartItem").(*cartValidator.AddItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item := models.CartItem{
		Email:      reqData.Email,
		CourseID:   reqData.CourseID,
		CourseName: reqData.CourseName,
		Image:      reqData.Image,
		Price:      reqData.Price,
	}

	if err := ctrl.Carts.Add(&item); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add cart item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item added successfully!", item)
}

// Remove deletes a cart line by id. With RequireOwnerForCartDelete on, the
// line must belong to the token identity; the observed default skips the
// check entirely.
func (ctrl *Controller) Remove(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid cart item id!", nil)
	}

	if config.AppConfig.RequireOwnerForCartDelete {
		item, err := ctrl.Carts.FindByID(uint(id))
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
		}
		tokenEmail, _ := c.Locals("email").(string)
		if item.Email != tokenEmail {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "forbidden access", nil)
		}
	}

	deleted, err := ctrl.Carts.Delete(uint(id))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove cart item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item removed successfully!", fiber.Map{
		"deletedCount": deleted,
	})
}
