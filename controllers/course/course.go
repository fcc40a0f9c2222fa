package courseController

import (
	"strconv"

	"studio/middleware"
	"studio/models"
	"studio/store"
	courseValidator "studio/validators/course"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Courses *store.CourseStore
	Carts   *store.CartStore
}

func New(courses *store.CourseStore, carts *store.CartStore) *Controller {
	return &Controller{Courses: courses, Carts: carts}
}

type publishedCourse struct {
	models.Course
	// Cart lines grouped by course, not paid enrollments. The figure the
	// original storefront shows; see DESIGN.md.
	EnrollmentCount int64 `json:"enrollmentCount"`
}

// Published lists every non-pending course annotated with the cart-derived
// enrollment count.
func (ctrl *Controller) Published(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.Published()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	counts, err := ctrl.Carts.CountByCourse()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	annotated := make([]publishedCourse, 0, len(courses))
	for _, course := range courses {
		annotated = append(annotated, publishedCourse{
			Course:          course,
			EnrollmentCount: counts[course.ID],
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", annotated)
}

// ByInstructor lists courses filtered by the email query; without it, all.
func (ctrl *Controller) ByInstructor(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.ByInstructor(c.Query("email"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// Pending lists the moderation queue. Admin only.
func (ctrl *Controller) Pending(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.ByStatus(models.StatusPending)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending courses fetched successfully!", courses)
}

// Approved lists approved courses. Public.
func (ctrl *Controller) Approved(c *fiber.Ctx) error {
	courses, err := ctrl.Courses.ByStatus(models.StatusApproved)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Approved courses fetched successfully!", courses)
}

// Submit adds an instructor's course to the moderation queue. The status is
// forced to pending no matter what the draft carried.
func (ctrl *Controller) Submit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseDraft)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:           reqData.Title,
		Image:           reqData.Image,
		InstructorName:  reqData.InstructorName,
		InstructorEmail: reqData.InstructorEmail,
		Price:           reqData.Price,
		Seats:           reqData.Seats,
		Status:          models.StatusPending,
	}

	if err := ctrl.Courses.Create(&course); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course submitted successfully!", course)
}

// SetStatus writes the posted status verbatim onto a course.
func (ctrl *Controller) SetStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedStatus").(*courseValidator.StatusUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	matched, err := ctrl.Courses.SetStatus(uint(id), reqData.Status)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course status updated!", fiber.Map{
		"matchedCount": matched,
	})
}
