package main

import (
	"log"

	"studio/config"
	cartController "studio/controllers/cart"
	courseController "studio/controllers/course"
	newsletterController "studio/controllers/newsletter"
	paymentController "studio/controllers/payment"
	reviewController "studio/controllers/review"
	userController "studio/controllers/user"
	"studio/database"
	"studio/gateway"
	"studio/routers/authRoutes"
	"studio/routers/cartRoutes"
	"studio/routers/courseRoutes"
	"studio/routers/paymentRoutes"
	"studio/routers/reviewRoutes"
	"studio/routers/userRoutes"
	"studio/store"
	"studio/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	carts := store.NewCartStore(db)
	payments := store.NewPaymentStore(db)
	reviews := store.NewReviewStore(db)

	stripe := gateway.NewStripeClient(config.AppConfig.StripeKey, config.AppConfig.StripeBaseURL)
	mailer := utils.NewSendGridMailer(config.AppConfig.SendGridKey, config.AppConfig.EmailSender)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app, userController.New(users), users)
	courseRoutes.SetupCourseRoutes(app, courseController.New(courses, carts), users)
	cartRoutes.SetupCartRoutes(app, cartController.New(carts))
	paymentRoutes.SetupPaymentRoutes(app, paymentController.New(payments, carts, courses, stripe))
	reviewRoutes.SetupReviewRoutes(app, reviewController.New(reviews), newsletterController.New(mailer))

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Studio is running")
	})

	log.Printf("Studio is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
