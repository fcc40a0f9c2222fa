package reviewController

import (
	"studio/middleware"
	"studio/models"
	"studio/store"
	reviewValidator "studio/validators/review"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Reviews *store.ReviewStore
}

func New(reviews *store.ReviewStore) *Controller {
	return &Controller{Reviews: reviews}
}

// List returns every review. Public.
func (ctrl *Controller) List(c *fiber.Ctx) error {
	reviews, err := ctrl.Reviews.All()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

// Submit appends a review under the token identity.
func (ctrl *Controller) Submit(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "unauthorized access", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.SubmitReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review := models.Review{
		CourseID: reqData.CourseID,
		Name:     reqData.Name,
		Email:    email,
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := ctrl.Reviews.Create(&review); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}
