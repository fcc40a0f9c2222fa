package paymentController

import (
	"encoding/json"
	"log"
	"math"
	"time"

	"studio/config"
	"studio/gateway"
	"studio/middleware"
	"studio/models"
	"studio/store"
	paymentValidator "studio/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Controller struct {
	Payments *store.PaymentStore
	Carts    *store.CartStore
	Courses  *store.CourseStore
	Gateway  gateway.Client
}

func New(payments *store.PaymentStore, carts *store.CartStore, courses *store.CourseStore, gw gateway.Client) *Controller {
	return &Controller{Payments: payments, Carts: carts, Courses: courses, Gateway: gw}
}

// CreateIntent registers a pending charge with the gateway and hands the
// client secret back. No money moves and nothing is persisted here; the
// client completes payment out of band.
func (ctrl *Controller) CreateIntent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedIntent").(*paymentValidator.IntentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	amount := int64(math.Round(reqData.Price * 100))

	intent, err := ctrl.Gateway.CreateIntent(c.Context(), amount)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment intent created!", fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

// Finalize runs the enrollment transaction after the client reports a
// completed payment:
//
//  1. with VerifyGatewayConfirmation on, re-check the intent with the
//     gateway before touching the database;
//  2. insert the payment record;
//  3. delete every cart line whose id is in the purchased list;
//  4. with SeatTracking on, reserve a seat on the first purchased id.
//
// The seat update is the only conditional step and it is not compensated:
// when it matches nothing the payment record and the cart deletion stand,
// and the caller gets a 400. A 400 from this endpoint means "payment
// recorded, inventory not reserved", not a clean no-op.
func (ctrl *Controller) Finalize(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*paymentValidator.FinalizeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if config.AppConfig.VerifyGatewayConfirmation {
		intent, err := ctrl.Gateway.RetrieveIntent(c.Context(), reqData.TransactionID)
		if err != nil {
			log.Printf("Error verifying payment intent %s: %v", reqData.TransactionID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
		}
		if intent.Status != gateway.IntentSucceeded {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment not confirmed by gateway!", nil)
		}
	}

	courseIDs, _ := json.Marshal(reqData.CourseIDs)
	courseNames, _ := json.Marshal(reqData.CourseNames)

	payment := models.Payment{
		ReceiptID:     uuid.NewString(),
		Email:         reqData.Email,
		Amount:        reqData.Price,
		TransactionID: reqData.TransactionID,
		CourseIDs:     datatypes.JSON(courseIDs),
		CourseNames:   datatypes.JSON(courseNames),
		Quantity:      reqData.Quantity,
		Date:          time.Now(),
	}

	if err := ctrl.Payments.Create(&payment); err != nil {
		log.Printf("Error saving payment record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	deleted, err := ctrl.Carts.DeleteByIDs(reqData.CourseIDs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}

	if !config.AppConfig.SeatTracking {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment recorded successfully!", fiber.Map{
			"insertResult": payment,
			"deleteResult": fiber.Map{"deletedCount": deleted},
		})
	}

	// Only the first purchased course is seat-checked.
	matched, err := ctrl.Courses.ReserveSeat(reqData.CourseIDs[0])
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update seats!", nil)
	}

	if matched == 0 {
		log.Printf("No seats available for course %d", reqData.CourseIDs[0])
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"status":  false,
			"message": "No seats available",
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment recorded successfully!", fiber.Map{
		"insertResult": payment,
		"deleteResult": fiber.Map{"deletedCount": deleted},
		"updateResult": fiber.Map{"matchedCount": matched},
	})
}

// History lists the caller's payment records.
func (ctrl *Controller) History(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "unauthorized access", nil)
	}

	payments, err := ctrl.Payments.ForEmail(email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully!", payments)
}
